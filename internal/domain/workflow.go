package domain

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/pmezard/go-difflib/difflib"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/controller"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

// ListArgs contains the arguments for listing entries.
type ListArgs struct {
	ScanArgs
	Group string
	// Locale adds a translation column when set.
	Locale       string
	ShowWarnings bool
}

// ExportArgs contains the arguments for exporting the collection.
type ExportArgs struct {
	ScanArgs
	Group string
	// Locales to include. Empty means every locale with a translation file.
	Locales []string
	Format  adapter.ExportFormat
	Output  io.Writer
}

// SetTranslationArgs contains the arguments for storing one translation.
type SetTranslationArgs struct {
	// Scan, when set, is used to check that the entry exists in the sources.
	Scan        *ScanArgs
	Group       string
	Locale      string
	Text        string
	Context     string
	Translation string
	// DryRun computes the change without writing it.
	DryRun bool
}

// TranslationChange describes the effect of SetTranslation.
type TranslationChange struct {
	EntryID  string
	Path     m.Path
	Previous string
	Existed  bool
	// Diff is the unified diff of the translation file.
	Diff string
}

// LookupArgs contains the arguments for a runtime lookup.
type LookupArgs struct {
	Group     string
	Base      string
	Locale    string
	Namespace m.Namespace
	Text      string
	Context   string
	Args      []any
}

// CoverageArgs contains the arguments for the translation coverage report.
type CoverageArgs struct {
	ScanArgs
	Group string
}

// LocaleCoverage summarises the translations of one locale against the
// collection.
type LocaleCoverage struct {
	Locale     string
	Translated int
	Total      int
	Orphaned   int
	Mismatched int
}

// Workflow is the API the commands are built on.
type Workflow interface {
	Scan(ctx context.Context, args ScanArgs) (*Collection, ScanResult, error)
	Report(ctx context.Context, args ScanArgs) error
	List(ctx context.Context, args ListArgs) error
	Export(ctx context.Context, args ExportArgs) error
	SetTranslation(ctx context.Context, args SetTranslationArgs) (TranslationChange, error)
	GetTranslation(ctx context.Context, group, locale, text, textContext string) (string, bool, error)
	Coverage(ctx context.Context, args CoverageArgs) ([]LocaleCoverage, error)
	Lookup(ctx context.Context, args LookupArgs) (string, error)
}

type workflow struct {
	adapter.TranslationStore
	adapter.ScanMetrics
	controller.UI

	scanner  Scanner
	exporter adapter.Exporter
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	scanner Scanner,
	store adapter.TranslationStore,
	exporter adapter.Exporter,
	metrics adapter.ScanMetrics,
	ui controller.UI,
) Workflow {
	return &workflow{
		TranslationStore: store,
		ScanMetrics:      metrics,
		UI:               ui,
		scanner:          scanner,
		exporter:         exporter,
	}
}

// Scan runs the scanner, builds the collection and records metrics.
func (w *workflow) Scan(ctx context.Context, args ScanArgs) (*Collection, ScanResult, error) {
	started := time.Now()

	result, err := w.scanner.Scan(ctx, args)
	if err != nil {
		slog.Error("Scan failed", "error", err)
		return nil, ScanResult{}, err
	}

	c := BuildCollection(result)

	w.Observe(observation(result, c, time.Since(started)))

	if err := w.Flush(); err != nil {
		slog.Warn("Failed to write scan metrics", "error", err)
	}

	return c, result, nil
}

func observation(result ScanResult, c *Collection, took time.Duration) adapter.ScanObservation {
	warnings := make(map[m.WarningKind]int)
	for _, warning := range c.Warnings() {
		warnings[warning.Kind()]++
	}

	return adapter.ScanObservation{
		Files:     result.Stats.Files,
		CacheHits: result.Stats.CacheHits,
		Tokenized: result.Stats.Tokenized,
		Pruned:    result.Stats.Pruned,
		Skipped:   result.Stats.Skipped,
		Entries:   c.Len(),
		Warnings:  warnings,
		Duration:  took,
	}
}

// Report scans and displays the summary and warnings.
func (w *workflow) Report(ctx context.Context, args ScanArgs) error {
	if err := w.Start(ctx, controller.WithScanMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	started := time.Now()

	c, result, err := w.Scan(ctx, args)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	warnings := c.Warnings()

	err = w.DisplayScanSummary(ctx, controller.ScanSummary{
		Files:     result.Stats.Files,
		CacheHits: result.Stats.CacheHits,
		Tokenized: result.Stats.Tokenized,
		Pruned:    result.Stats.Pruned,
		Skipped:   result.Stats.Skipped,
		Entries:   c.Len(),
		Warnings:  len(warnings),
		Duration:  time.Since(started),
	})
	if err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if err := w.DisplayWarnings(ctx, warnings); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

// List scans and displays every entry, optionally with its translation.
func (w *workflow) List(ctx context.Context, args ListArgs) error {
	title := fmt.Sprintf("Entries of %s", args.Group)

	if args.Locale != "" {
		locale, err := adapter.CanonicalLocale(args.Locale)
		if err != nil {
			return err
		}

		args.Locale = locale
		title = fmt.Sprintf("Entries of %s (%s)", args.Group, locale)
	}

	if err := w.Start(ctx, controller.WithListMode(), controller.WithTitle(title)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	c, _, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	var translations map[string]string

	if args.Locale != "" {
		translations, err = w.Load(ctx, args.Group, args.Locale)
		if err != nil {
			return fmt.Errorf("load translations: %w", err)
		}

		checkTranslations(c, args.Locale, translations)
	}

	entries := c.Entries()
	views := make([]controller.EntryView, 0, len(entries))

	for _, entry := range entries {
		text, ok := translations[entry.ID]
		views = append(views, controller.EntryView{Entry: entry, Translation: text, Translated: ok})
	}

	if err := w.DisplayEntries(ctx, args.Locale, views); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	if args.ShowWarnings {
		if err := w.DisplayWarnings(ctx, c.Warnings()); err != nil {
			return fmt.Errorf("display: %w", err)
		}
	}

	w.Wait(ctx)

	return nil
}

// checkTranslations reports translations referencing placeholders their
// entry does not define and returns how many did.
func checkTranslations(c *Collection, locale string, translations map[string]string) int {
	mismatched := 0

	for id, text := range translations {
		entry, ok := c.Entry(id)
		if !ok {
			continue
		}

		if err := ValidatePlaceholders(entry.Text, text); err != nil {
			c.ReportPlaceholderMismatch(id, locale, err.Error())
			mismatched++
		}
	}

	return mismatched
}

// Export scans and writes the collection with its translations.
func (w *workflow) Export(ctx context.Context, args ExportArgs) error {
	c, _, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return fmt.Errorf("scan: %w", err)
	}

	locales := args.Locales
	if len(locales) == 0 {
		locales, err = w.Locales(ctx, args.Group)
		if err != nil {
			return fmt.Errorf("list locales: %w", err)
		}
	}

	translations := make(map[string]map[string]string, len(locales))

	for _, locale := range locales {
		canonical, err := adapter.CanonicalLocale(locale)
		if err != nil {
			return err
		}

		texts, err := w.Load(ctx, args.Group, canonical)
		if err != nil {
			return fmt.Errorf("load %s translations: %w", canonical, err)
		}

		checkTranslations(c, canonical, texts)
		translations[canonical] = texts
	}

	err = w.exporter.Export(args.Output, args.Format, adapter.ExportInput{
		Group:        args.Group,
		Entries:      c.Entries(),
		Warnings:     c.Warnings(),
		Translations: translations,
	})
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}

	slog.Debug("Exported collection", "group", args.Group, "entries", c.Len(), "locales", len(translations))

	return nil
}

// SetTranslation stores the translation of text in locale. The translation
// may only use placeholders the text defines.
func (w *workflow) SetTranslation(ctx context.Context, args SetTranslationArgs) (TranslationChange, error) {
	locale, err := adapter.CanonicalLocale(args.Locale)
	if err != nil {
		return TranslationChange{}, err
	}

	id := m.EntryID(args.Text, args.Context)

	if args.Scan != nil {
		c, _, err := w.Scan(ctx, *args.Scan)
		if err != nil {
			return TranslationChange{}, fmt.Errorf("scan: %w", err)
		}

		if _, ok := c.Entry(id); !ok {
			return TranslationChange{}, fmt.Errorf("%w: %q", ErrUnknownEntry, args.Text)
		}
	}

	if err := ValidatePlaceholders(args.Text, args.Translation); err != nil {
		return TranslationChange{}, fmt.Errorf("translation of %q: %w", args.Text, err)
	}

	current, err := w.Load(ctx, args.Group, locale)
	if err != nil {
		return TranslationChange{}, fmt.Errorf("load translations: %w", err)
	}

	change := TranslationChange{EntryID: id, Path: w.Path(args.Group, locale)}
	change.Previous, change.Existed = current[id]

	next := make(map[string]string, len(current)+1)
	for k, v := range current {
		next[k] = v
	}

	next[id] = args.Translation

	change.Diff, err = translationDiff(string(change.Path), args.Group, locale, current, next)
	if err != nil {
		return TranslationChange{}, err
	}

	if args.DryRun {
		return change, nil
	}

	if err := w.Set(ctx, args.Group, locale, id, args.Translation); err != nil {
		return TranslationChange{}, fmt.Errorf("store translation: %w", err)
	}

	slog.Debug("Stored translation", "entry", id, "locale", locale, "replaced", change.Existed)

	return change, nil
}

func translationDiff(path, group, locale string, before, after map[string]string) (string, error) {
	var a, b bytes.Buffer

	if err := adapter.EncodeTranslations(&a, group, locale, before); err != nil {
		return "", err
	}

	if err := adapter.EncodeTranslations(&b, group, locale, after); err != nil {
		return "", err
	}

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(a.String()),
		B:        difflib.SplitLines(b.String()),
		FromFile: path,
		ToFile:   path,
		Context:  3,
	})
}

// GetTranslation returns the stored translation of text in locale.
func (w *workflow) GetTranslation(ctx context.Context, group, locale, text, textContext string) (string, bool, error) {
	translations, err := w.Load(ctx, group, locale)
	if err != nil {
		return "", false, err
	}

	translated, ok := translations[m.EntryID(text, textContext)]

	return translated, ok, nil
}

// Coverage scans and compares every locale's translations with the
// collection.
func (w *workflow) Coverage(ctx context.Context, args CoverageArgs) ([]LocaleCoverage, error) {
	c, _, err := w.Scan(ctx, args.ScanArgs)
	if err != nil {
		return nil, fmt.Errorf("scan: %w", err)
	}

	locales, err := w.Locales(ctx, args.Group)
	if err != nil {
		return nil, fmt.Errorf("list locales: %w", err)
	}

	out := make([]LocaleCoverage, 0, len(locales))

	for _, locale := range locales {
		translations, err := w.Load(ctx, args.Group, locale)
		if err != nil {
			return nil, fmt.Errorf("load %s translations: %w", locale, err)
		}

		cov := LocaleCoverage{Locale: locale, Total: c.Len()}
		cov.Mismatched = checkTranslations(c, locale, translations)

		for id := range translations {
			if _, ok := c.Entry(id); ok {
				cov.Translated++
			} else {
				cov.Orphaned++
			}
		}

		out = append(out, cov)
	}

	slices.SortFunc(out, func(a, b LocaleCoverage) int {
		return strings.Compare(a.Locale, b.Locale)
	})

	return out, nil
}

// Lookup resolves text in locale the way an application would at runtime.
func (w *workflow) Lookup(ctx context.Context, args LookupArgs) (string, error) {
	locales, err := NewLocales(w.TranslationStore, args.Group, args.Base)
	if err != nil {
		return "", err
	}

	ns := args.Namespace
	if ns == "" {
		ns = m.NamespaceContent
	}

	if args.Locale != "" {
		if err := locales.Switch(ctx, ns, args.Locale); err != nil {
			return "", err
		}
	}

	return locales.Translate(NewTranslator(nil), ns, args.Text, args.Context, args.Args...)
}
