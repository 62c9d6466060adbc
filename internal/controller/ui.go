// Package controller provides the terminal output of glotscan commands.
package controller

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeScan StartMode = iota
	ModeList
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode  StartMode
	title string
}

// WithScanMode sets the UI to scan summary mode.
func WithScanMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeScan
	}
}

// WithListMode sets the UI to entry listing mode. Interactive UIs page the
// listing.
func WithListMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeList
	}
}

// WithTitle sets the heading shown above the output.
func WithTitle(title string) StartOption {
	return func(c *StartConfig) {
		c.title = title
	}
}

func newStartConfig(options []StartOption) StartConfig {
	var cfg StartConfig
	for _, opt := range options {
		opt(&cfg)
	}

	return cfg
}

// ScanSummary is what the UI shows after a scan.
type ScanSummary struct {
	Files     int
	CacheHits int
	Tokenized int
	Pruned    int
	Skipped   int
	Entries   int
	Warnings  int
	Duration  time.Duration
}

// EntryView is one listed entry with its translation in the selected
// locale, if any.
type EntryView struct {
	Entry       m.StringEntry
	Translation string
	Translated  bool
}

// UI defines the interface for displaying scan results and entries.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayScanSummary(ctx context.Context, summary ScanSummary) error
	DisplayEntries(ctx context.Context, locale string, entries []EntryView) error
	DisplayWarnings(ctx context.Context, warnings []m.Warning) error
	DisplayText(ctx context.Context, text string) error
}

// NewUI returns the TUI when writing to a terminal and SimpleUI otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether w is a terminal.
func IsTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of w, or ok=false when w is not a terminal.
func terminalSize(w io.Writer) (width, height int, ok bool) {
	f, isFile := w.(*os.File)
	if !isFile {
		return 0, 0, false
	}

	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0, 0, false
	}

	return width, height, true
}
