package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

func testOptions() Options {
	return Options{
		Levels:  level.Builtin(),
		Config:  config.DefaultArkanoidConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Logger:  log.New(io.Discard),
	}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func send(t *testing.T, m GameModel, msg tea.Msg) GameModel {
	t.Helper()
	next, _ := m.Update(msg)
	g, ok := next.(GameModel)
	if !ok {
		t.Fatalf("Update returned %T, expected GameModel", next)
	}
	return g
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	return send(t, m, TickMsg{Round: m.round})
}

func TestGameModelSteeringDecays(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())

	m = send(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if m.steer != -1 {
		t.Fatalf("steer = %v, expected -1", m.steer)
	}

	hold := int(steerHold.Seconds() * 60)
	for range hold - 1 {
		m = tick(t, m)
	}
	if m.steer != -1 {
		t.Errorf("steer dropped after %d frames, expected it held for %d", hold-1, hold)
	}
	m = tick(t, m)
	if m.steer != 0 {
		t.Errorf("steer = %v after %d frames, expected 0", m.steer, hold)
	}
	if m.state.Tick() != uint64(hold) {
		t.Errorf("Tick() = %d, expected %d", m.state.Tick(), hold)
	}
}

func TestGameModelPause(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())

	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if m.state.Tick() != 0 {
		t.Errorf("paused model simulated %d frames", m.state.Tick())
	}
	if !strings.Contains(m.View(), "PAUSED") {
		t.Error("paused view has no banner")
	}

	m = send(t, m, runeKey('p'))
	m = tick(t, m)
	if m.state.Tick() != 1 {
		t.Errorf("Tick() = %d after resume, expected 1", m.state.Tick())
	}
}

func TestGameModelIgnoresStaleTicks(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())

	m = send(t, m, TickMsg{Round: m.round + 1})
	if m.state.Tick() != 0 {
		t.Errorf("a tick from another round advanced the state")
	}
}

func TestGameModelBackPausesFirst(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = send(t, m, esc)
	if !m.paused || m.BackToMenu() {
		t.Fatalf("first esc: paused = %v, back = %v, expected a pause", m.paused, m.BackToMenu())
	}
	m = send(t, m, esc)
	if !m.BackToMenu() {
		t.Error("second esc should leave the round")
	}
}

func TestGameModelRestart(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())
	for range 5 {
		m = tick(t, m)
	}

	m = send(t, m, runeKey('r'))
	if m.state.Tick() != 5 {
		t.Error("restart should be ignored while playing")
	}

	m = send(t, m, runeKey('p'))
	m = send(t, m, runeKey('r'))
	if m.state.Tick() != 0 || m.paused {
		t.Errorf("after restart Tick() = %d, paused = %v, expected a fresh round", m.state.Tick(), m.paused)
	}
}

func TestGameModelQuit(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())

	next, cmd := m.Update(runeKey('q'))
	if !next.(GameModel).IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("q should return tea.Quit")
	}
	if next.View() != "" {
		t.Error("a quitting model should render nothing")
	}
}

func TestGameModelSavesRunOnce(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Only unbreakable bricks: the round is won before the first frame.
	lvl := level.MustParse("wall", "Wall", []string{"XX"})

	opts := testOptions()
	opts.Store = store
	opts.Player = "tester"
	m := NewGameModel(opts, lvl)

	m = tick(t, m)
	m = tick(t, m)

	runs, err := store.TopRuns("wall", 10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("saved %d runs, expected 1", len(runs))
	}
	if !runs[0].Won || runs[0].Player != "tester" || runs[0].LivesLeft != 3 {
		t.Errorf("run = %+v, expected a win by tester with 3 lives", runs[0])
	}
	if !strings.Contains(m.View(), "LEVEL CLEAR") {
		t.Error("won view has no banner")
	}
}

func TestGameModelView(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())
	view := m.View()

	for _, want := range []string{"Default", "Score 0", "♥♥♥", "█", "●"} {
		if !strings.Contains(view, want) {
			t.Errorf("view is missing %q", want)
		}
	}
}

func TestGameModelResize(t *testing.T) {
	m := NewGameModel(testOptions(), level.Default())
	m = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
}

func sessionSend(t *testing.T, m SessionModel, msg tea.Msg) SessionModel {
	t.Helper()
	next, _ := m.Update(msg)
	s, ok := next.(SessionModel)
	if !ok {
		t.Fatalf("Update returned %T, expected SessionModel", next)
	}
	return s
}

func TestSessionFlow(t *testing.T) {
	m := NewSessionModel(testOptions())
	esc := tea.KeyMsg{Type: tea.KeyEsc}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.mode != modeGame {
		t.Fatalf("mode = %v after enter, expected the game", m.mode)
	}
	if m.game.level.ID != "02-pyramid" {
		t.Errorf("playing %s, expected 02-pyramid", m.game.level.ID)
	}

	m = sessionSend(t, m, esc)
	m = sessionSend(t, m, esc)
	if m.mode != modeMenu {
		t.Fatalf("mode = %v after leaving the round, expected the menu", m.mode)
	}
	if m.menu.cursor != 1 {
		t.Errorf("menu cursor = %d, expected it on the level just played", m.menu.cursor)
	}

	m = sessionSend(t, m, tea.KeyMsg{Type: tea.KeyTab})
	if m.mode != modeScores {
		t.Fatalf("mode = %v after tab, expected the scoreboard", m.mode)
	}
	if !strings.Contains(m.View(), "No runs recorded yet") {
		t.Error("empty scoreboard view has no placeholder")
	}

	m = sessionSend(t, m, esc)
	if m.mode != modeMenu {
		t.Fatalf("mode = %v after esc, expected the menu", m.mode)
	}

	next, cmd := m.Update(runeKey('q'))
	if !next.(SessionModel).quitting || cmd == nil {
		t.Error("q in the menu should end the session")
	}
}

func TestMenuShowsRecords(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := store.SaveRun(storage.Run{LevelID: "01-classic", Score: 420, Won: true}); err != nil {
		t.Fatalf("SaveRun() failed: %v", err)
	}

	opts := testOptions()
	opts.Store = store
	view := NewMenuModel(opts).View()

	if !strings.Contains(view, "420 ✓") {
		t.Errorf("menu does not show the cleared record:\n%s", view)
	}
	if !strings.Contains(view, "new") {
		t.Errorf("menu does not mark unplayed levels:\n%s", view)
	}
}

func TestKeyMapActions(t *testing.T) {
	keys := DefaultKeyMap()

	tests := []struct {
		msg      tea.KeyMsg
		expected core.Action
	}{
		{tea.KeyMsg{Type: tea.KeyLeft}, core.ActionLeft},
		{runeKey('a'), core.ActionLeft},
		{tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{runeKey('d'), core.ActionRight},
		{runeKey(' '), core.ActionLaunch},
		{tea.KeyMsg{Type: tea.KeyEnter}, core.ActionConfirm},
		{tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{runeKey('p'), core.ActionPause},
		{runeKey('r'), core.ActionRestart},
		{runeKey('q'), core.ActionQuit},
		{tea.KeyMsg{Type: tea.KeyCtrlC}, core.ActionQuit},
		{runeKey('z'), core.ActionNone},
	}

	for _, tt := range tests {
		if got := keys.Action(tt.msg); got != tt.expected {
			t.Errorf("Action(%q) = %v, expected %v", tt.msg.String(), got, tt.expected)
		}
	}
}
