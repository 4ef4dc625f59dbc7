package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/registry"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

// scriptedGame ends the round after a fixed number of ticks.
type scriptedGame struct {
	ticks  int
	endAt  int
	seen   []core.InputFrame
	board  []int
	over   bool
	paused bool
	resets int
}

func (g *scriptedGame) ID() string    { return "scripted" }
func (g *scriptedGame) Title() string { return "Scripted" }

func (g *scriptedGame) Reset(core.RuntimeConfig) {
	g.resets++
	g.ticks, g.over, g.paused = 0, false, false
}

func (g *scriptedGame) Step(in core.InputFrame) core.StepResult {
	g.seen = append(g.seen, in.Clone())
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if in.Has(core.ActionRestart) && g.over {
		g.ticks, g.over = 0, false
		return core.StepResult{State: g.State()}
	}
	var sounds []core.SoundEvent
	if !g.over && !g.paused {
		g.ticks++
		if in.Has(core.ActionShoot) {
			sounds = append(sounds, core.SoundEvent{Sound: core.SoundLaser, Volume: 0.5})
		}
		if g.ticks >= g.endAt {
			g.over = true
			sounds = append(sounds, core.SoundEvent{Sound: core.SoundGameOver, Volume: 1})
		}
	}
	return core.StepResult{State: g.State(), Sounds: sounds}
}

func (g *scriptedGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "scripted")
}

func (g *scriptedGame) State() core.GameState {
	return core.GameState{Score: g.ticks * 10, Wave: 5, GameOver: g.over, Paused: g.paused || g.over}
}

func (g *scriptedGame) SetHighScores(scores []int) { g.board = scores }

func (g *scriptedGame) RunStats() registry.RunStats {
	return registry.RunStats{Score: g.ticks * 10, Wave: 5, Kills: 2, Duration: float64(g.ticks) / 60}
}

type recordingSink struct {
	played []core.Sound
}

func (s *recordingSink) Play(ev core.SoundEvent) { s.played = append(s.played, ev.Sound) }

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m GameModel) GameModel {
	t.Helper()
	next, _ := m.Update(TickMsg{})
	return next.(GameModel)
}

func press(t *testing.T, m GameModel, msg tea.KeyMsg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func TestGameModelSeedsHighScores(t *testing.T) {
	store := openStore(t)
	store.SaveScore("scripted", 300)
	store.SaveScore("scripted", 700)

	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	if g.resets != 1 {
		t.Errorf("Reset called %d times, want 1", g.resets)
	}
	if len(g.board) != 2 || g.board[0] != 700 || g.board[1] != 300 {
		t.Errorf("board = %v, want [700 300]", g.board)
	}
}

func TestGameModelHeldKeysAndSound(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	sink := &recordingSink{}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}, WithSound(sink))
	m.Init()

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	for i := 0; i < 3; i++ {
		m = tick(t, m)
	}

	for i, in := range g.seen {
		if !in.Has(core.ActionShoot) {
			t.Errorf("frame %d: shoot not held", i)
		}
	}
	if len(sink.played) != 3 {
		t.Errorf("played %v, want three lasers", sink.played)
	}
}

func TestGameModelSavesRoundOnce(t *testing.T) {
	store := openStore(t)
	g := &scriptedGame{endAt: 5}
	m := NewGameModel(g, store, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 42})
	m.Init()

	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	if !m.State().GameOver {
		t.Fatal("round did not end")
	}

	scores, err := store.TopScores("scripted", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 50 {
		t.Errorf("scores = %v, want one score of 50", scores)
	}

	runs, err := store.RecentRuns("scripted", 10)
	if err != nil {
		t.Fatalf("RecentRuns() failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want 1", len(runs))
	}
	if runs[0].Seed != 42 || runs[0].Kills != 2 || runs[0].Wave != 5 {
		t.Errorf("run = %+v", runs[0])
	}

	// Restart and finish a second round
	m, _ = press(t, m, runeKey('r'))
	for i := 0; i < 10; i++ {
		m = tick(t, m)
	}
	runs, _ = store.RecentRuns("scripted", 10)
	if len(runs) != 2 {
		t.Errorf("runs after second round = %d, want 2", len(runs))
	}
}

func TestGameModelBackOnlyWhenHalted(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()
	m = tick(t, m)

	m, _ = press(t, m, runeKey('b'))
	if m.BackToMenu() {
		t.Fatal("back accepted while running")
	}

	m, _ = press(t, m, runeKey('p'))
	m = tick(t, m)
	if !m.State().Paused {
		t.Fatal("game did not pause")
	}
	m, cmd := press(t, m, runeKey('b'))
	if !m.BackToMenu() {
		t.Error("back refused while paused")
	}
	if cmd != nil {
		t.Error("session model should not quit the program on back")
	}
}

func TestGameModelQuit(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1})
	m.Init()

	m, cmd := press(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q did not quit")
	}
	if m.View() != "" {
		t.Error("view not empty after quit")
	}
}

func TestGameModelView(t *testing.T) {
	g := &scriptedGame{endAt: 100}
	m := NewGameModel(g, nil, core.RuntimeConfig{ScreenW: 20, ScreenH: 3, TickRate: 60, Seed: 1})
	m.Init()

	view := m.View()
	if !strings.HasPrefix(view, "scripted") {
		t.Errorf("view = %q", view)
	}
	if strings.Count(view, "\n") != 2 {
		t.Errorf("view has %d line breaks, want 2", strings.Count(view, "\n"))
	}
}

func TestRenderScreenKeepsPlainRuns(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "abc")
	s.SetColor(4, 1, '*', core.ColorBrightRed)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2", len(lines))
	}
	if lines[0] != "abc   " {
		t.Errorf("first line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "*") {
		t.Errorf("second line lost its colored cell: %q", lines[1])
	}
}
