package controller

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	m "glotscan.dev/pkg/glotscan/internal/model"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	footerStyle  = lipgloss.NewStyle().Faint(true)
)

// TUI implements UI for terminals. Listings taller than the terminal are
// shown in a scrollable pager once Wait is called.
type TUI struct {
	cmd *cobra.Command
	cfg StartConfig

	mu       sync.Mutex
	sections []string
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start initializes the UI.
func (p *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.cfg = newStartConfig(options)
	p.sections = nil

	return nil
}

// Close finalizes the UI.
func (p *TUI) Close(_ context.Context) {}

// DisplayScanSummary shows the scan counters.
func (p *TUI) DisplayScanSummary(ctx context.Context, summary ScanSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.add(renderSummaryTable(summary))

	return nil
}

// DisplayEntries shows one row per entry.
func (p *TUI) DisplayEntries(ctx context.Context, locale string, entries []EntryView) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.add(renderEntriesTable(locale, entries))

	return nil
}

// DisplayWarnings shows the warnings highlighted.
func (p *TUI) DisplayWarnings(ctx context.Context, warnings []m.Warning) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(warnings) == 0 {
		return nil
	}

	p.add(warningStyle.Render(strings.TrimRight(renderWarnings(warnings), "\n")) + "\n")

	return nil
}

// DisplayText shows text on its own line.
func (p *TUI) DisplayText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.add(text + "\n")

	return nil
}

// add prints section right away outside list mode and buffers it for the
// pager otherwise.
func (p *TUI) add(section string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.cfg.mode != ModeList {
		p.printHeader()
		_, _ = fmt.Fprint(p.cmd.OutOrStdout(), section)

		return
	}

	p.sections = append(p.sections, section)
}

// printHeader prints the title once per Start.
func (p *TUI) printHeader() {
	if p.cfg.title == "" {
		return
	}

	_, _ = fmt.Fprintln(p.cmd.OutOrStdout(), titleStyle.Render(p.cfg.title))
	p.cfg.title = ""
}

// Wait shows the buffered listing, paging it when it does not fit the
// terminal, and returns once the user quits the pager.
func (p *TUI) Wait(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}

	p.mu.Lock()
	content := strings.Join(p.sections, "\n")
	title := p.cfg.title
	p.sections = nil
	p.mu.Unlock()

	if content == "" {
		return
	}

	out := p.cmd.OutOrStdout()

	_, height, ok := terminalSize(out)
	if !ok || lipgloss.Height(content)+pagerChrome <= height {
		p.mu.Lock()
		p.printHeader()
		p.mu.Unlock()

		_, _ = fmt.Fprint(out, content)

		return
	}

	program := tea.NewProgram(newPagerModel(title, content), tea.WithOutput(out), tea.WithAltScreen(),
		tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		slog.Error("Failed to run pager", "error", err)
		_, _ = fmt.Fprint(out, content)
	}
}

// pagerChrome is the number of lines the pager uses around the viewport.
const pagerChrome = 2

// pagerModel is the Bubble Tea model scrolling a rendered listing.
type pagerModel struct {
	title    string
	content  string
	viewport viewport.Model
	ready    bool
	quitting bool
}

func newPagerModel(title, content string) pagerModel {
	return pagerModel{title: title, content: content}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := max(msg.Height-pagerChrome, 1)

		if !pm.ready {
			pm.viewport = viewport.New(msg.Width, height)
			pm.viewport.SetContent(pm.content)
			pm.ready = true
		} else {
			pm.viewport.Width = msg.Width
			pm.viewport.Height = height
		}

		return pm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			pm.quitting = true
			return pm, tea.Quit
		}
	}

	var cmd tea.Cmd
	pm.viewport, cmd = pm.viewport.Update(msg)

	return pm, cmd
}

func (pm pagerModel) View() string {
	if pm.quitting {
		return ""
	}

	if !pm.ready {
		return "Loading..."
	}

	title := pm.title
	if title == "" {
		title = "glotscan"
	}

	footer := fmt.Sprintf("%3.f%%  ↑/↓ scroll, q to quit", pm.viewport.ScrollPercent()*100)

	return titleStyle.Render(title) + "\n" + pm.viewport.View() + "\n" + footerStyle.Render(footer)
}
