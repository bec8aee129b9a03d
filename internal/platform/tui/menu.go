package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// MenuModel is the level picker.
type MenuModel struct {
	levels   []*level.Level
	stats    map[string]*storage.LevelStats
	cursor   int
	width    int
	height   int
	keys     KeyMap
	quitting bool
	selected *level.Level
	scores   bool // True if the user asked for the scoreboard
}

// NewMenuModel creates a level picker over opts.Levels.
func NewMenuModel(opts Options) MenuModel {
	m := MenuModel{
		levels: opts.Levels,
		width:  opts.Runtime.ScreenW,
		height: opts.Runtime.ScreenH,
		keys:   DefaultKeyMap(),
	}
	if opts.Store != nil {
		stats, err := opts.Store.Stats()
		if err != nil {
			opts.logger().Warn("could not read level stats", "err", err)
		}
		m.stats = stats
	}
	return m
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}
	return m, nil
}

func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Scores) {
		m.scores = true
		return m, tea.Quit
	}

	switch m.keys.Action(msg) {
	case core.ActionQuit, core.ActionBack:
		m.quitting = true
		return m, tea.Quit
	case core.ActionUp, core.ActionLeft:
		if m.cursor > 0 {
			m.cursor--
		}
	case core.ActionDown, core.ActionRight:
		if m.cursor < len(m.levels)-1 {
			m.cursor++
		}
	case core.ActionConfirm, core.ActionLaunch:
		if len(m.levels) > 0 {
			m.selected = m.levels[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("A R K A N O I D"), m.width))
	b.WriteString("\n\n")
	b.WriteString(centerText("Select a level", m.width))
	b.WriteString("\n\n")

	if len(m.levels) == 0 {
		b.WriteString(centerText(dimStyle.Render("No levels found."), m.width))
		b.WriteString("\n")
	}

	for i, lvl := range m.levels {
		line := fmt.Sprintf("  %-20s %s", lvl.Name, m.record(lvl.ID))
		if i == m.cursor {
			line = cursorStyle.Render("> " + line[2:])
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(centerText(dimStyle.Render("↑/↓: Navigate  |  Enter: Play  |  Tab: Scores  |  Q: Quit"), m.width))
	b.WriteString("\n")
	return b.String()
}

// record summarizes past runs on a level.
func (m MenuModel) record(id string) string {
	st, ok := m.stats[id]
	if !ok {
		return dimStyle.Render("new")
	}
	mark := ""
	if st.Wins > 0 {
		mark = " ✓"
	}
	return fmt.Sprintf("best %6d%s", st.HighScore, mark)
}

// Selected returns the chosen level, or nil if none selected.
func (m MenuModel) Selected() *level.Level {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.scores
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	return strings.Repeat(" ", (width-w)/2) + text
}
