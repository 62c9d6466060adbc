package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

func TestCollection_Add(t *testing.T) {
	c := NewCollection()

	id := c.Add(m.CallSite{Function: "t", Text: "Save", File: "a.php", Line: 3})
	assert.Equal(t, m.EntryID("Save", ""), id)

	assert.Equal(t, id, c.Add(m.CallSite{Function: "__", Text: "Save", File: "b.php", Line: 9}))
	assert.Equal(t, id, c.Add(m.CallSite{Function: "t", Text: "Save", File: "a.php", Line: 3}), "same occurrence twice")

	other := c.Add(m.CallSite{Function: "t", Text: "Save", Context: "dialog", File: "a.php", Line: 4})
	assert.NotEqual(t, id, other)

	assert.Equal(t, 2, c.Len())

	entry, ok := c.Entry(id)
	require.True(t, ok)
	assert.Equal(t, []m.Occurrence{{File: "a.php", Line: 3}, {File: "b.php", Line: 9}}, entry.Occurrences)

	found, ok := c.Find("Save", "dialog")
	require.True(t, ok)
	assert.Equal(t, other, found.ID)

	_, ok = c.Find("Missing", "")
	assert.False(t, ok)
}

func TestCollection_EntriesOrderAndCopies(t *testing.T) {
	c := NewCollection()
	c.Add(m.CallSite{Text: "beta", File: "x", Line: 1})
	c.Add(m.CallSite{Text: "alpha", Context: "z", File: "x", Line: 2})
	c.Add(m.CallSite{Text: "alpha", File: "x", Line: 3})

	entries := c.Entries()
	require.Len(t, entries, 3)
	assert.Equal(t, "alpha", entries[0].Text)
	assert.Empty(t, entries[0].Context)
	assert.Equal(t, "z", entries[1].Context)
	assert.Equal(t, "beta", entries[2].Text)

	entries[0].Occurrences[0].Line = 99

	again, _ := c.Find("alpha", "")
	assert.Equal(t, 3, again.Occurrences[0].Line)
}

func TestBuildCollection(t *testing.T) {
	result := ScanResult{
		Files: []m.FileExtraction{
			{
				File: m.File{ShortPath: "src/a.php"},
				Extraction: m.Extraction{
					CallSites:  []m.CallSite{{Function: "t", Text: "Hello", File: "src/a.php", Line: 1}},
					Unresolved: []m.UnresolvedCall{{Function: "t", File: "src/a.php", Line: 5, Reason: ReasonNoLiteral}},
				},
			},
			{
				File: m.File{ShortPath: "src/b.js"},
				Extraction: m.Extraction{
					CallSites: []m.CallSite{{Function: "t", Text: "Hello", File: "src/b.js", Line: 2}},
				},
			},
		},
		Warnings: []m.Warning{m.TokenizeFailedWarning{File: "src/c.py", Line: 4, Err: "boom"}},
	}

	c := BuildCollection(result)

	assert.Equal(t, 1, c.Len())

	entry, ok := c.Find("Hello", "")
	require.True(t, ok)
	assert.Len(t, entry.Occurrences, 2)

	warnings := c.Warnings()
	require.Len(t, warnings, 2)
	assert.Equal(t, m.UnresolvedCallWarning{Function: "t", File: "src/a.php", Line: 5, Reason: ReasonNoLiteral}, warnings[0])
	assert.Equal(t, m.WarningTokenizeFailed, warnings[1].Kind())
}

func TestCollection_ReportPlaceholderMismatch(t *testing.T) {
	c := NewCollection()
	id := c.Add(m.CallSite{Text: "%1$s files", File: "a", Line: 1})

	c.ReportPlaceholderMismatch(id, "de", "first")
	c.ReportPlaceholderMismatch(id, "de", "second")
	c.ReportPlaceholderMismatch(id, "fr", "third")
	c.ReportPlaceholderMismatch("unknown", "de", "orphan")

	entry, _ := c.Entry(id)
	require.Len(t, entry.Warnings, 2)
	assert.Equal(t, m.PlaceholderMismatchWarning{EntryID: id, Locale: "de", Detail: "first"}, entry.Warnings[0])

	warnings := c.Warnings()
	require.Len(t, warnings, 3)
	assert.Equal(t, "unknown", warnings[0].(m.PlaceholderMismatchWarning).EntryID)
}

func TestCollection_ConcurrentAdd(t *testing.T) {
	c := NewCollection()

	var wg sync.WaitGroup

	for i := range 16 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for line := range 50 {
				c.Add(m.CallSite{Text: "shared", File: "f", Line: i*100 + line})
			}
		}()
	}

	wg.Wait()

	entry, ok := c.Find("shared", "")
	require.True(t, ok)
	assert.Len(t, entry.Occurrences, 16*50)
}
