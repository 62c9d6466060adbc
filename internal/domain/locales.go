package domain

import (
	"context"
	"fmt"
	"log/slog"
	"maps"
	"slices"
	"sync"
	"sync/atomic"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

// Locales holds the active catalog of each namespace. Readers never lock:
// a switch loads a complete catalog and swaps the pointer.
type Locales struct {
	store adapter.TranslationStore
	group string
	base  string

	active map[m.Namespace]*atomic.Pointer[Catalog]

	// switchMu serializes switches; readers do not take it.
	switchMu sync.Mutex

	subMu       sync.Mutex
	nextSub     int
	subscribers map[int]func(m.LocaleChanged)
}

// NewLocales creates Locales for the given translation group. Every
// namespace starts at the base locale.
func NewLocales(store adapter.TranslationStore, group, base string) (*Locales, error) {
	canonical, err := adapter.CanonicalLocale(base)
	if err != nil {
		return nil, fmt.Errorf("base locale: %w", err)
	}

	l := &Locales{
		store:       store,
		group:       group,
		base:        canonical,
		active:      make(map[m.Namespace]*atomic.Pointer[Catalog]),
		subscribers: make(map[int]func(m.LocaleChanged)),
	}

	for _, ns := range []m.Namespace{m.NamespaceApplication, m.NamespaceContent} {
		p := &atomic.Pointer[Catalog]{}
		p.Store(NewCatalog(canonical, true, nil))
		l.active[ns] = p
	}

	return l, nil
}

// Base returns the base locale.
func (l *Locales) Base() string {
	return l.base
}

// Current returns the active catalog of ns, or nil for an unknown
// namespace.
func (l *Locales) Current(ns m.Namespace) *Catalog {
	p, ok := l.active[ns]
	if !ok {
		return nil
	}

	return p.Load()
}

// Switch makes locale active in ns and notifies subscribers once the new
// catalog is in place. Switching to the base locale loads nothing.
func (l *Locales) Switch(ctx context.Context, ns m.Namespace, locale string) error {
	p, ok := l.active[ns]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownNamespace, ns)
	}

	canonical, err := adapter.CanonicalLocale(locale)
	if err != nil {
		return err
	}

	l.switchMu.Lock()
	defer l.switchMu.Unlock()

	var next *Catalog

	if canonical == l.base {
		next = NewCatalog(canonical, true, nil)
	} else {
		texts, err := l.store.Load(ctx, l.group, canonical)
		if err != nil {
			return fmt.Errorf("load %s translations: %w", canonical, err)
		}

		next = NewCatalog(canonical, false, texts)
	}

	previous := p.Swap(next)

	slog.Debug("Switched locale", "namespace", ns, "previous", previous.Locale(), "current", canonical,
		"translations", next.Len())

	l.publish(m.LocaleChanged{Previous: previous.Locale(), Current: canonical, Namespace: ns})

	return nil
}

// Subscribe registers fn for locale changes. The returned function removes
// the subscription.
func (l *Locales) Subscribe(fn func(m.LocaleChanged)) (unsubscribe func()) {
	l.subMu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subscribers[id] = fn
	l.subMu.Unlock()

	return func() {
		l.subMu.Lock()
		delete(l.subscribers, id)
		l.subMu.Unlock()
	}
}

func (l *Locales) publish(ev m.LocaleChanged) {
	l.subMu.Lock()
	fns := make([]func(m.LocaleChanged), 0, len(l.subscribers))
	for _, id := range slices.Sorted(maps.Keys(l.subscribers)) {
		fns = append(fns, l.subscribers[id])
	}
	l.subMu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// Translate resolves text with the active catalog of ns.
func (l *Locales) Translate(t *Translator, ns m.Namespace, text, context string, args ...any) (string, error) {
	return t.Translate(l.Current(ns), text, context, args...)
}

var defaultLocales atomic.Pointer[Locales]

// Default returns the process-wide Locales set with SetDefault, or nil.
func Default() *Locales {
	return defaultLocales.Load()
}

// SetDefault installs l as the process-wide Locales.
func SetDefault(l *Locales) {
	defaultLocales.Store(l)
}
