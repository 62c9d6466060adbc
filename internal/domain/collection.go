package domain

import (
	"sort"
	"sync"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// WarningSink receives placeholder problems found while resolving a
// translation.
type WarningSink interface {
	ReportPlaceholderMismatch(entryID, locale, detail string)
}

// Collection is the deduplicated set of string entries found by one scan
// pass. It is safe for concurrent use.
type Collection struct {
	mu       sync.RWMutex
	entries  map[string]*m.StringEntry
	warnings []m.Warning
	reported map[mismatchKey]bool
}

type mismatchKey struct {
	entryID string
	locale  string
}

// NewCollection returns an empty collection.
func NewCollection() *Collection {
	return &Collection{
		entries:  make(map[string]*m.StringEntry),
		reported: make(map[mismatchKey]bool),
	}
}

// BuildCollection merges the extractions of a scan into a new collection.
// Unresolved calls and file warnings become collection warnings.
func BuildCollection(result ScanResult) *Collection {
	c := NewCollection()

	for _, fe := range result.Files {
		for _, cs := range fe.Extraction.CallSites {
			c.Add(cs)
		}

		for _, u := range fe.Extraction.Unresolved {
			c.AddWarning(m.UnresolvedCallWarning{
				Function: u.Function,
				File:     u.File,
				Line:     u.Line,
				Reason:   u.Reason,
			})
		}
	}

	for _, w := range result.Warnings {
		c.AddWarning(w)
	}

	return c
}

// Add records a call site and returns the id of its entry.
func (c *Collection) Add(cs m.CallSite) string {
	id := m.EntryID(cs.Text, cs.Context)
	occ := m.Occurrence{File: cs.File, Line: cs.Line}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[id]
	if !ok {
		entry = &m.StringEntry{ID: id, Text: cs.Text, Context: cs.Context}
		c.entries[id] = entry
	}

	for _, existing := range entry.Occurrences {
		if existing == occ {
			return id
		}
	}

	entry.Occurrences = append(entry.Occurrences, occ)

	return id
}

// AddWarning records a warning that is not tied to an entry.
func (c *Collection) AddWarning(w m.Warning) {
	c.mu.Lock()
	c.warnings = append(c.warnings, w)
	c.mu.Unlock()
}

// Len returns the number of entries.
func (c *Collection) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}

// Entries returns copies of all entries ordered by text, then context.
func (c *Collection) Entries() []m.StringEntry {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]m.StringEntry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, copyEntry(e))
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Text != out[j].Text {
			return out[i].Text < out[j].Text
		}

		return out[i].Context < out[j].Context
	})

	return out
}

// Entry returns the entry with the given id.
func (c *Collection) Entry(id string) (m.StringEntry, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[id]
	if !ok {
		return m.StringEntry{}, false
	}

	return copyEntry(e), true
}

// Find returns the entry for text and context.
func (c *Collection) Find(text, context string) (m.StringEntry, bool) {
	return c.Entry(m.EntryID(text, context))
}

// Warnings returns the collection warnings followed by the warnings of each
// entry in entry order.
func (c *Collection) Warnings() []m.Warning {
	entries := c.Entries()

	c.mu.RLock()
	out := append([]m.Warning(nil), c.warnings...)
	c.mu.RUnlock()

	for _, e := range entries {
		out = append(out, e.Warnings...)
	}

	return out
}

// ReportPlaceholderMismatch attaches a placeholder warning to the entry. It
// records at most one warning per entry and locale.
func (c *Collection) ReportPlaceholderMismatch(entryID, locale, detail string) {
	key := mismatchKey{entryID: entryID, locale: locale}
	w := m.PlaceholderMismatchWarning{EntryID: entryID, Locale: locale, Detail: detail}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.reported[key] {
		return
	}

	c.reported[key] = true

	if e, ok := c.entries[entryID]; ok {
		e.Warnings = append(e.Warnings, w)
		return
	}

	c.warnings = append(c.warnings, w)
}

func copyEntry(e *m.StringEntry) m.StringEntry {
	out := *e
	out.Occurrences = append([]m.Occurrence(nil), e.Occurrences...)
	out.Warnings = append([]m.Warning(nil), e.Warnings...)

	return out
}
