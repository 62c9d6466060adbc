package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// maxCellWidth truncates long texts in tables.
const maxCellWidth = 60

// SimpleUI implements UI using cobra Command's output.
type SimpleUI struct {
	cmd *cobra.Command
	cfg StartConfig
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.cfg = newStartConfig(options)
	if s.cfg.title != "" {
		s.printf("%s\n", s.cfg.title)
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayScanSummary prints the scan counters.
func (s *SimpleUI) DisplayScanSummary(ctx context.Context, summary ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderSummaryTable(summary))

	return nil
}

// DisplayEntries prints one row per entry.
func (s *SimpleUI) DisplayEntries(ctx context.Context, locale string, entries []EntryView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderEntriesTable(locale, entries))

	return nil
}

// DisplayWarnings prints one line per warning.
func (s *SimpleUI) DisplayWarnings(ctx context.Context, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(warnings) == 0 {
		return nil
	}

	s.printf("\n%s", renderWarnings(warnings))

	return nil
}

// DisplayText prints text on its own line.
func (s *SimpleUI) DisplayText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s\n", text)

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func renderSummaryTable(summary ScanSummary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Files", "Cached", "Tokenized", "Pruned", "Skipped", "Entries", "Warnings"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.Append([]string{
		fmt.Sprintf("%d", summary.Files),
		fmt.Sprintf("%d", summary.CacheHits),
		fmt.Sprintf("%d", summary.Tokenized),
		fmt.Sprintf("%d", summary.Pruned),
		fmt.Sprintf("%d", summary.Skipped),
		fmt.Sprintf("%d", summary.Entries),
		fmt.Sprintf("%d", summary.Warnings),
	})
	table.Render()

	if summary.Duration > 0 {
		fmt.Fprintf(&tableBuffer, "Scanned in %s\n", summary.Duration.Round(time.Millisecond))
	}

	return tableBuffer.String()
}

func renderEntriesTable(locale string, entries []EntryView) string {
	var tableBuffer bytes.Buffer

	header := []string{"ID", "Text", "Context", "Occurrences"}
	if locale != "" {
		header = append(header, locale)
	}

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	translated := 0

	for _, view := range entries {
		row := []string{
			shortID(view.Entry.ID),
			truncate(view.Entry.Text),
			truncate(view.Entry.Context),
			fmt.Sprintf("%d", len(view.Entry.Occurrences)),
		}

		if locale != "" {
			cell := "-"
			if view.Translated {
				cell = truncate(view.Translation)
				translated++
			}

			row = append(row, cell)
		}

		table.Append(row)
	}

	footer := []string{"", fmt.Sprintf("Total Entries %d", len(entries)), "", ""}
	if locale != "" {
		footer = append(footer, fmt.Sprintf("%d translated", translated))
	}

	table.SetFooter(footer)
	table.Render()

	return tableBuffer.String()
}

func renderWarnings(warnings []m.Warning) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Warnings (%d):\n", len(warnings))

	for _, w := range warnings {
		file, line := w.Position()

		switch {
		case file != "" && line > 0:
			fmt.Fprintf(&b, "  %s:%d: %s\n", file, line, w.Message())
		case file != "":
			fmt.Fprintf(&b, "  %s: %s\n", file, w.Message())
		default:
			fmt.Fprintf(&b, "  %s\n", w.Message())
		}
	}

	return b.String()
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}

	return id
}

// truncate flattens line breaks and shortens s to maxCellWidth runes.
func truncate(s string) string {
	s = strings.NewReplacer("\r", `\r`, "\n", `\n`, "\t", `\t`).Replace(s)

	runes := []rune(s)
	if len(runes) <= maxCellWidth {
		return s
	}

	return string(runes[:maxCellWidth-1]) + "…"
}
