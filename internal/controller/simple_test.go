package controller

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

func newTestCommand() (*cobra.Command, *bytes.Buffer) {
	var out bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&out)

	return cmd, &out
}

func sampleEntries() []EntryView {
	hello := m.StringEntry{
		ID:          m.EntryID("Hello", ""),
		Text:        "Hello",
		Occurrences: []m.Occurrence{{File: "a.php", Line: 1}, {File: "b.js", Line: 4}},
	}
	open := m.StringEntry{
		ID:          m.EntryID("Open", "menu"),
		Text:        "Open",
		Context:     "menu",
		Occurrences: []m.Occurrence{{File: "a.php", Line: 7}},
	}

	return []EntryView{
		{Entry: hello, Translation: "Hallo", Translated: true},
		{Entry: open},
	}
}

func TestSimpleUI_DisplayEntries(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(ctx, WithListMode(), WithTitle("Entries of app")))
	require.NoError(t, ui.DisplayEntries(ctx, "de", sampleEntries()))
	ui.Wait(ctx)
	ui.Close(ctx)

	text := out.String()
	assert.Contains(t, text, "Entries of app")
	assert.Contains(t, text, m.EntryID("Hello", "")[:8])
	assert.Contains(t, text, "Hallo")
	assert.Contains(t, text, "menu")
	assert.Contains(t, text, "TOTAL ENTRIES 2")
	assert.Contains(t, text, "1 TRANSLATED")
}

func TestSimpleUI_DisplayScanSummary(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.Start(ctx, WithScanMode()))
	require.NoError(t, ui.DisplayScanSummary(ctx, ScanSummary{
		Files: 12, CacheHits: 10, Tokenized: 2, Entries: 31, Warnings: 1, Duration: 1500 * time.Millisecond,
	}))

	text := out.String()
	assert.Contains(t, text, "TOKENIZED")
	assert.Contains(t, text, "31")
	assert.Contains(t, text, "Scanned in 1.5s")
}

func TestSimpleUI_DisplayWarnings(t *testing.T) {
	ctx := context.Background()
	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.NoError(t, ui.DisplayWarnings(ctx, nil))
	assert.Empty(t, out.String())

	require.NoError(t, ui.DisplayWarnings(ctx, []m.Warning{
		m.UnresolvedCallWarning{Function: "t", File: "a.php", Line: 3, Reason: "no literal argument"},
		m.UnreadableFileWarning{File: "b.php", Err: "permission denied"},
		m.PlaceholderMismatchWarning{EntryID: "abc", Locale: "de", Detail: "%3$"},
	}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "Warnings (3):", lines[0])
	assert.Equal(t, "  a.php:3: call to t has no literal text argument: no literal argument", lines[1])
	assert.Equal(t, "  b.php: cannot read file: permission denied", lines[2])
	assert.Equal(t, "  translation abc for de: %3$", lines[3])
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	cmd, out := newTestCommand()
	ui := NewSimpleUI(cmd)

	require.ErrorIs(t, ui.Start(ctx), context.Canceled)
	require.ErrorIs(t, ui.DisplayText(ctx, "hidden"), context.Canceled)
	assert.Empty(t, out.String())
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, `line\nbreak`, truncate("line\nbreak"))

	long := strings.Repeat("x", maxCellWidth+10)
	got := []rune(truncate(long))
	assert.Len(t, got, maxCellWidth)
	assert.Equal(t, '…', got[len(got)-1])
}
