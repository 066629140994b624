package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/zitie/internal/clipboard"
	"github.com/f3rmion/zitie/internal/grid"
	"github.com/f3rmion/zitie/internal/poem"
	"github.com/f3rmion/zitie/internal/render"
)

// Config is what the preview needs to lay out and print a sheet.
type Config struct {
	Grid    grid.Grid
	Record  poem.Record
	Options poem.Options
	Image   render.Image
	OutPath string // PNG written by the print key
}

// printedMsg reports the result of a PNG export.
type printedMsg struct {
	path string
	err  error
}

// Clipboard messages
type clearCopiedMsg struct{}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return clearCopiedMsg{}
	})
}

// Model is the bubbletea model of the sheet preview.
type Model struct {
	cfg    Config
	opts   poem.Options
	layout grid.Layout
	err    error
	theme  render.Theme

	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width  int
	height int
	ready  bool

	status string
	copied bool
	copy   func(string) error
}

// New lays out cfg.Record and returns a preview model. A record that cannot be
// laid out is not an error here; the preview shows the placeholder instead.
func New(cfg Config) Model {
	m := Model{
		cfg:   cfg,
		opts:  cfg.Options,
		theme: SheetTheme(),
		keys:  newKeyMap(),
		help:  help.New(),
		copy:  clipboard.Write,
	}
	m.layout, m.err = cfg.Grid.Compose(cfg.Record, cfg.Options)
	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Translation):
			m.opts.Translation = !m.opts.Translation
			m.relayout()
			return m, nil
		case key.Matches(msg, m.keys.Pinyin):
			m.opts.PY = !m.opts.PY
			m.layout = m.layout.WithPhonetics(m.opts.PY)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Border):
			m.opts.Border = !m.opts.Border
			m.layout = m.layout.WithBorder(m.opts.Border)
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Print):
			if m.err != nil {
				return m, nil
			}
			m.status = "Printing " + m.cfg.OutPath + "..."
			m.refresh()
			return m, m.print()
		case key.Matches(msg, m.keys.Copy):
			if m.err != nil {
				return m, nil
			}
			if err := m.copy(render.Text(m.layout)); err != nil {
				m.status = fmt.Sprintf("Copy failed: %v", err)
				m.refresh()
				return m, nil
			}
			m.copied = true
			return m, clearCopiedAfter(2 * time.Second)
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, 1)
			m.ready = true
		}
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case printedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Print failed: %v", msg.err)
		} else {
			m.status = "Saved " + msg.path
		}
		m.refresh()
		return m, nil

	case clearCopiedMsg:
		m.copied = false
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// relayout recomposes the sheet after a toggle that adds or removes rows.
func (m *Model) relayout() {
	m.layout, m.err = m.cfg.Grid.Compose(m.cfg.Record, m.opts)
	m.refresh()
}

// refresh sizes the viewport around the header and footer and redraws the sheet.
func (m *Model) refresh() {
	if m.ready {
		m.resize()
		m.viewport.SetContent(m.sheet())
	}
}

func (m *Model) resize() {
	if !m.ready {
		return
	}
	used := lipgloss.Height(m.header()) + lipgloss.Height(m.footer()) + 1 // divider
	m.viewport.Width = m.width
	m.viewport.Height = max(1, m.height-used)
}

// print writes the current layout as a PNG page in the background.
func (m Model) print() tea.Cmd {
	layout, img, path := m.layout, m.cfg.Image, m.cfg.OutPath
	return func() tea.Msg {
		f, err := os.Create(path)
		if err != nil {
			return printedMsg{path: path, err: fmt.Errorf("creating %s: %w", path, err)}
		}
		if err := img.WritePNG(f, layout); err != nil {
			f.Close()
			os.Remove(path)
			return printedMsg{path: path, err: err}
		}
		return printedMsg{path: path, err: f.Close()}
	}
}

func (m Model) sheet() string {
	if m.err != nil {
		return PlaceholderStyle.Render(poem.Placeholder) + "\n" + ErrorStyle.Render(m.err.Error())
	}
	return render.Terminal(m.layout, m.theme)
}

func (m Model) header() string {
	var b strings.Builder
	title := m.cfg.Record.Title
	if title == "" {
		title = "字帖"
	}
	b.WriteString(TitleStyle.Render(title))
	if author := m.cfg.Record.AuthorLine(); author != "" {
		b.WriteString("  " + SubtitleStyle.Render(author))
	}
	b.WriteString("  " + toggle("译文", m.opts.Translation))
	b.WriteString(" " + toggle("拼音", m.opts.PY))
	b.WriteString(" " + toggle("边框", m.opts.Border))
	if m.copied {
		b.WriteString("  " + CopiedStyle.Render("Copied!"))
	}
	if m.err == nil && m.layout.Advisory != "" && m.opts.PY {
		b.WriteString("\n" + AdvisoryStyle.Render(m.layout.Advisory))
	}
	return b.String()
}

func (m Model) footer() string {
	var lines []string
	if m.status != "" {
		lines = append(lines, HelpStyle.Render(m.status))
	}
	lines = append(lines, m.help.View(m.keys))
	return strings.Join(lines, "\n")
}

func toggle(label string, on bool) string {
	if on {
		return ToggleOnStyle.Render("[x] " + label)
	}
	return ToggleOffStyle.Render("[ ] " + label)
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	divider := DividerStyle.Render(strings.Repeat("─", max(m.width, 1)))
	return lipgloss.JoinVertical(lipgloss.Left, m.header(), divider, m.viewport.View(), m.footer())
}

// Options returns the current display toggles.
func (m Model) Options() poem.Options {
	return m.opts
}

// Layout returns the sheet as currently displayed.
func (m Model) Layout() grid.Layout {
	return m.layout
}

// Run starts the preview in the alternate screen.
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}
