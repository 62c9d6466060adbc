package domain_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"glotscan.dev/pkg/glotscan/internal/adapter"
	"glotscan.dev/pkg/glotscan/internal/controller"
	controllermocks "glotscan.dev/pkg/glotscan/internal/controller/mocks"
	domain "glotscan.dev/pkg/glotscan/internal/domain"
	"glotscan.dev/pkg/glotscan/internal/domain/tokenizers"
	m "glotscan.dev/pkg/glotscan/internal/model"
)

type fixture struct {
	root    string
	store   *adapter.LocalTranslationStore
	metrics *adapter.PrometheusScanMetrics
	ui      *controllermocks.MockUI
	wf      domain.Workflow
	args    domain.ScanArgs
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	root := t.TempDir()
	write := func(name, content string) {
		path := filepath.Join(root, name)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}

	write("index.php", "<?php\necho t('Found %1$s items in %2$s pages.');\necho t('Save');\n")
	write("js/app.js", "alert(t('Save'));\nalert(t(label));\n")

	state := t.TempDir()

	f := &fixture{
		root:    root,
		store:   adapter.NewLocalTranslationStore(m.Path(filepath.Join(state, "translations"))),
		metrics: adapter.NewPrometheusScanMetrics(""),
		ui:      controllermocks.NewMockUI(t),
		args: domain.ScanArgs{
			Roots:    []m.SourceRoot{{Name: "app", Path: m.Path(root)}},
			UseCache: true,
		},
	}

	scanner := domain.NewScanner(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewLocalCacheStore(m.Path(filepath.Join(state, "cache.gob"))),
		tokenizers.NewRegistry(),
		domain.NewDetector(nil),
	)

	f.wf = domain.NewWorkflow(scanner, f.store, adapter.NewDocumentExporter(), f.metrics, f.ui)

	return f
}

func TestWorkflow_Scan(t *testing.T) {
	f := newFixture(t)

	c, result, err := f.wf.Scan(context.Background(), f.args)
	require.NoError(t, err)

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 2, result.Stats.Files)

	save, ok := c.Find("Save", "")
	require.True(t, ok)
	assert.Len(t, save.Occurrences, 2)

	warnings := c.Warnings()
	require.Len(t, warnings, 1)
	assert.Equal(t, m.WarningUnresolvedCall, warnings[0].Kind())

	expected := `
# HELP glotscan_collection_entries Distinct string entries in the collection
# TYPE glotscan_collection_entries gauge
glotscan_collection_entries 2
`
	require.NoError(t, testutil.GatherAndCompare(f.metrics.Registry(), strings.NewReader(expected),
		"glotscan_collection_entries"))
}

func TestWorkflow_Report(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ui.EXPECT().Start(ctx, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().DisplayScanSummary(ctx, mock.MatchedBy(func(s controller.ScanSummary) bool {
		return s.Files == 2 && s.Entries == 2 && s.Warnings == 1 && s.Tokenized == 2
	})).Return(nil).Once()
	f.ui.EXPECT().DisplayWarnings(ctx, mock.MatchedBy(func(ws []m.Warning) bool {
		return len(ws) == 1
	})).Return(nil).Once()
	f.ui.EXPECT().Close(ctx).Return().Once()

	require.NoError(t, f.wf.Report(ctx, f.args))
}

func TestWorkflow_Report_StartError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	startErr := errors.New("no terminal")
	f.ui.EXPECT().Start(ctx, mock.Anything).Return(startErr).Once()

	err := f.wf.Report(ctx, f.args)
	require.ErrorIs(t, err, startErr)
}

func TestWorkflow_List(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	pagesID := m.EntryID("Found %1$s items in %2$s pages.", "")
	require.NoError(t, f.store.Set(ctx, "app", "de", m.EntryID("Save", ""), "Speichern"))
	require.NoError(t, f.store.Set(ctx, "app", "de", pagesID, "%3$s Seiten"))

	f.ui.EXPECT().Start(ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().DisplayEntries(ctx, "de", mock.Anything).
		Run(func(_ context.Context, _ string, entries []controller.EntryView) {
			require.Len(t, entries, 2)
			assert.Equal(t, "Found %1$s items in %2$s pages.", entries[0].Entry.Text)
			assert.Equal(t, "Save", entries[1].Entry.Text)
			assert.True(t, entries[1].Translated)
			assert.Equal(t, "Speichern", entries[1].Translation)
			require.Len(t, entries[0].Entry.Warnings, 1)
			assert.Equal(t, m.WarningPlaceholderMismatch, entries[0].Entry.Warnings[0].Kind())
		}).Return(nil).Once()
	f.ui.EXPECT().DisplayWarnings(ctx, mock.MatchedBy(func(ws []m.Warning) bool {
		return len(ws) == 2
	})).Return(nil).Once()
	f.ui.EXPECT().Wait(ctx).Return().Once()
	f.ui.EXPECT().Close(ctx).Return().Once()

	require.NoError(t, f.wf.List(ctx, domain.ListArgs{ScanArgs: f.args, Group: "app", Locale: "de", ShowWarnings: true}))
}

func TestWorkflow_List_DisplayError(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	f.ui.EXPECT().Start(ctx, mock.Anything, mock.Anything).Return(nil).Once()
	f.ui.EXPECT().DisplayEntries(ctx, "", mock.Anything).Return(errors.New("broken pipe")).Once()
	f.ui.EXPECT().Close(ctx).Return().Once()

	err := f.wf.List(ctx, domain.ListArgs{ScanArgs: f.args, Group: "app"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "display: broken pipe")
}

func TestWorkflow_Export(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, "app", "fr", m.EntryID("Save", ""), "Enregistrer"))

	var out bytes.Buffer

	err := f.wf.Export(ctx, domain.ExportArgs{ScanArgs: f.args, Group: "app", Format: adapter.FormatJSON, Output: &out})
	require.NoError(t, err)

	var doc adapter.ExportDocument
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))

	assert.Equal(t, "app", doc.Group)
	assert.Equal(t, []string{"fr"}, doc.Locales)
	require.Len(t, doc.Entries, 2)
	assert.Equal(t, map[string]string{"fr": "Enregistrer"}, doc.Entries[1].Translations)
	require.Len(t, doc.Warnings, 1)
	assert.Equal(t, string(m.WarningUnresolvedCall), doc.Warnings[0].Kind)
}

func TestWorkflow_SetTranslation(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	text := "Found %1$s items in %2$s pages."

	change, err := f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Scan:        &f.args,
		Group:       "app",
		Locale:      "de_de",
		Text:        text,
		Translation: "%2$s Seiten mit %1$s Einträgen.",
		DryRun:      true,
	})
	require.NoError(t, err)
	assert.False(t, change.Existed)
	assert.Contains(t, change.Diff, "+"+m.EntryID(text, "")+` = "%2$s Seiten mit %1$s Einträgen."`)
	assert.Equal(t, f.store.Path("app", "de-DE"), change.Path)

	_, ok, err := f.wf.GetTranslation(ctx, "app", "de-DE", text, "")
	require.NoError(t, err)
	assert.False(t, ok, "dry run writes nothing")

	_, err = f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Group: "app", Locale: "de-DE", Text: text, Translation: "%2$s Seiten mit %1$s Einträgen.",
	})
	require.NoError(t, err)

	got, ok, err := f.wf.GetTranslation(ctx, "app", "de-DE", text, "")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "%2$s Seiten mit %1$s Einträgen.", got)

	change, err = f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Group: "app", Locale: "de-DE", Text: text, Translation: "%1$s Einträge",
	})
	require.NoError(t, err)
	assert.True(t, change.Existed)
	assert.Equal(t, "%2$s Seiten mit %1$s Einträgen.", change.Previous)
}

func TestWorkflow_SetTranslation_Rejects(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Scan: &f.args, Group: "app", Locale: "de", Text: "Not in sources", Translation: "x",
	})
	require.ErrorIs(t, err, domain.ErrUnknownEntry)

	_, err = f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Group: "app", Locale: "de", Text: "%1$s pages", Translation: "%2$s Seiten",
	})
	require.ErrorIs(t, err, domain.ErrPlaceholderIndex)

	_, err = f.wf.SetTranslation(ctx, domain.SetTranslationArgs{
		Group: "app", Locale: "??", Text: "Save", Translation: "x",
	})
	require.ErrorIs(t, err, adapter.ErrInvalidLocale)
}

func TestWorkflow_Coverage(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	require.NoError(t, f.store.Set(ctx, "app", "fr", m.EntryID("Save", ""), "Enregistrer"))
	require.NoError(t, f.store.Set(ctx, "app", "fr", m.EntryID("Removed", ""), "Supprimé"))
	require.NoError(t, f.store.Set(ctx, "app", "de", m.EntryID("Found %1$s items in %2$s pages.", ""), "%4$s"))

	coverage, err := f.wf.Coverage(ctx, domain.CoverageArgs{ScanArgs: f.args, Group: "app"})
	require.NoError(t, err)

	assert.Equal(t, []domain.LocaleCoverage{
		{Locale: "de", Translated: 1, Total: 2, Mismatched: 1},
		{Locale: "fr", Translated: 1, Total: 2, Orphaned: 1},
	}, coverage)
}

func TestWorkflow_Lookup(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	text := "Found %1$s items in %2$s pages."

	require.NoError(t, f.store.Set(ctx, "app", "de", m.EntryID(text, ""), "Auf %2$s Seiten %1$s Einträge."))

	got, err := f.wf.Lookup(ctx, domain.LookupArgs{Group: "app", Base: "en", Text: text, Args: []any{50, 6}})
	require.NoError(t, err)
	assert.Equal(t, "Found 50 items in 6 pages.", got)

	got, err = f.wf.Lookup(ctx, domain.LookupArgs{Group: "app", Base: "en", Locale: "de", Text: text, Args: []any{"50", "6"}})
	require.NoError(t, err)
	assert.Equal(t, "Auf 6 Seiten 50 Einträge.", got)

	_, err = f.wf.Lookup(ctx, domain.LookupArgs{Group: "app", Base: "en", Locale: "de", Text: text, Args: []any{"50"}})
	require.ErrorIs(t, err, domain.ErrArgumentCount)
}
