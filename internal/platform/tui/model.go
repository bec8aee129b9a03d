package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

// Options configures the rounds started from the terminal UI.
type Options struct {
	Levels  []*level.Level
	Config  config.ArkanoidConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // Optional
	Player  string
	Logger  *log.Logger // Optional, defaults to the package logger
}

func (o Options) logger() *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.Default()
}

// Terminals only report presses, so a steering key keeps the paddle moving
// for a short while and auto-repeat extends it.
const steerHold = 250 * time.Millisecond

const hudHeight = 1

// GameModel plays one level.
type GameModel struct {
	opts     Options
	round    uint64
	level    *level.Level
	state    *arkanoid.State
	rng      *arkanoid.SimpleRNG
	speedFor *config.DifficultyManager
	screen   *core.Screen
	keys     KeyMap
	help     help.Model

	steer     float64
	steerLeft int // Frames before steer drops back to zero
	launch    bool
	paused    bool
	saved     bool
	best      int

	quitting   bool
	backToMenu bool
	exitOnBack bool // Standalone rounds have no menu to return to
}

// NewGameModel creates a round on lvl.
func NewGameModel(opts Options, lvl *level.Level) GameModel {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = 60
	}
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}

	m := GameModel{
		opts:     opts,
		round:    nextRound(),
		level:    lvl,
		speedFor: config.NewDifficultyManager(opts.Config.Difficulty),
		screen:   core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 0)),
		keys:     DefaultKeyMap(),
		help:     help.New(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.reset()

	if opts.Store != nil {
		best, err := opts.Store.HighScore(lvl.ID)
		if err != nil {
			opts.logger().Warn("could not read high score", "level", lvl.ID, "err", err)
		}
		m.best = best
	}
	return m
}

// reset starts the level over with the same seed sequence.
func (m *GameModel) reset() {
	m.state = arkanoid.NewState(m.level, arkanoid.ConfigFrom(m.opts.Config))
	m.rng = arkanoid.NewSimpleRNG(m.opts.Runtime.Seed)
	m.steer, m.steerLeft = 0, 0
	m.launch = false
	m.paused = false
	m.saved = false
}

// Init starts the frame loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.round, m.opts.Runtime.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 0))
		m.help.Width = msg.Width
		return m, nil
	case TickMsg:
		if msg.Round != m.round {
			return m, nil
		}
		return m.handleTick()
	}
	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.keys.Action(msg) {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionLeft:
		m.steerTo(-1)
	case core.ActionRight:
		m.steerTo(1)
	case core.ActionLaunch:
		m.launch = true
	case core.ActionPause:
		if !m.state.Over() {
			m.paused = !m.paused
		}
	case core.ActionRestart:
		if m.paused || m.state.Over() {
			m.reset()
		}
	case core.ActionBack:
		if m.paused || m.state.Over() {
			m.backToMenu = true
			if m.exitOnBack {
				return m, tea.Quit
			}
			return m, nil
		}
		m.paused = true
	}
	return m, nil
}

func (m *GameModel) steerTo(dir float64) {
	m.steer = dir
	m.steerLeft = max(int(steerHold.Seconds()*float64(m.opts.Runtime.TickRate)), 1)
}

func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting || m.backToMenu {
		return m, nil
	}
	if !m.paused {
		m.step()
	}
	return m, tickCmd(m.round, m.opts.Runtime.TickRate)
}

// step feeds the held input into the simulation and advances one frame.
func (m *GameModel) step() {
	if m.state.Over() {
		m.finish()
		return
	}

	m.state.Input(m.steer)
	if m.launch {
		m.state.Launch()
		m.launch = false
	}
	if m.speedFor.IsEnabled() {
		m.state.SetBaseSpeed(m.speedFor.Speed(m.opts.Config.Physics.BallSpeed, m.state.Score()))
	}
	m.state.Update(m.opts.Runtime.FrameTime(), m.rng)

	if m.steerLeft > 0 {
		m.steerLeft--
		if m.steerLeft == 0 {
			m.steer = 0
		}
	}
	if m.state.Over() {
		m.finish()
	}
}

// finish records the round once.
func (m *GameModel) finish() {
	if m.saved {
		return
	}
	m.saved = true
	m.best = max(m.best, m.state.Score())

	if m.opts.Store == nil || (m.state.Score() == 0 && !m.state.Won()) {
		return
	}
	run := storage.Run{
		LevelID:   m.level.ID,
		Player:    m.opts.Player,
		Score:     m.state.Score(),
		Won:       m.state.Won(),
		LivesLeft: m.state.Lives(),
		Ticks:     m.state.Tick(),
	}
	if _, err := m.opts.Store.SaveRun(run); err != nil {
		m.opts.logger().Error("could not save run", "level", run.LevelID, "err", err)
		return
	}
	m.opts.logger().Debug("run saved", "level", run.LevelID, "score", run.Score, "won", run.Won)
}

// View renders the HUD, the play field and the key help.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()

	field := core.NewRect(0, hudHeight, m.screen.Width(), max(m.screen.Height()-hudHeight, 0))
	canvas := NewCanvas(m.screen, field)
	m.state.Render(canvas, canvas.Context(m.state.Width(), m.state.Height()))
	m.drawBanner(field)

	return RenderScreen(m.screen) + "\n" + m.help.View(m.keys)
}

func (m GameModel) drawHUD() {
	lives := strings.Repeat("♥", max(m.state.Lives(), 0))
	left := fmt.Sprintf(" %s  Score %d  Best %d", m.level.Name, m.state.Score(), max(m.best, m.state.Score()))
	m.screen.DrawTextColor(0, 0, left, core.ColorText)

	right := lives
	if n := m.state.ActiveCount(arkanoid.BonusSlow); n > 0 {
		right = fmt.Sprintf("%s x%d  %s", string(arkanoid.BonusSlow.Glyph()), n, lives)
	}
	m.screen.DrawTextColor(m.screen.Width()-lipgloss.Width(right)-1, 0, right, core.ColorLives)
}

func (m GameModel) drawBanner(field core.Rect) {
	var text string
	color := core.ColorNotice
	switch {
	case m.state.Won():
		text = fmt.Sprintf(" LEVEL CLEAR  %d points  r: replay  esc: menu ", m.state.Score())
		color = core.ColorWin
	case !m.state.Alive():
		text = fmt.Sprintf(" GAME OVER  %d points  r: retry  esc: menu ", m.state.Score())
		color = core.ColorLose
	case m.paused:
		text = " PAUSED  p: resume  r: restart  esc: menu "
	default:
		return
	}
	m.screen.DrawTextCentered(field.Y+field.H/2, text, color)
}

// IsQuitting returns true if the user asked to leave the program.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if the user asked to go back to the level menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run plays lvl in its own Bubble Tea program.
func Run(opts Options, lvl *level.Level) error {
	m := NewGameModel(opts, lvl)
	m.exitOnBack = true

	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
