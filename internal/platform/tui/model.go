package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-defender/internal/core"
	"github.com/vovakirdan/tui-defender/internal/highscore"
	"github.com/vovakirdan/tui-defender/internal/registry"
	"github.com/vovakirdan/tui-defender/internal/storage"
)

// GameModel is the Bubble Tea model that drives one game: fixed-rate
// ticks, held-key input, sound output and score persistence.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	sink       core.SoundSink
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       *HeldKeys
	keyMapper  *KeyMapper
	gameState  core.GameState
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone programs exit instead of switching views
	scoreSaved bool // Whether the round has been persisted
}

// GameOption customizes a GameModel.
type GameOption func(*GameModel)

// WithSound routes the game's sound cues to sink.
func WithSound(sink core.SoundSink) GameOption {
	return func(m *GameModel) {
		if sink != nil {
			m.sink = sink
		}
	}
}

// WithLogger sets the logger used for persistence failures.
func WithLogger(l *log.Logger) GameOption {
	return func(m *GameModel) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewGameModel creates a model for the given game. store may be nil.
func NewGameModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}

	m := GameModel{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		sink:      core.SilentSink{},
		logger:    log.New(os.Stderr),
		config:    cfg,
		keys:      NewHeldKeys(),
		keyMapper: NewKeyMapper(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init resets the game, seeds its high score board and starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.loadHighScores()
	return tickCmd(m.config.TickRate)
}

func (m GameModel) loadHighScores() {
	keeper, ok := m.game.(registry.ScoreKeeper)
	if !ok || m.store == nil {
		return
	}
	scores, err := m.store.TopScoreValues(m.game.ID(), highscore.Limit)
	if err != nil {
		m.logger.Warn("could not load high scores", "game", m.game.ID(), "error", err)
		return
	}
	keeper.SetHighScores(scores)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The world has its own coordinate space; only the view changes.
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	// Back to menu is only offered while the simulation is halted
	if action == core.ActionBack && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	m.keys.Press(action)
	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	if m.backToMenu {
		return m, nil
	}

	in := m.keys.Next()
	wasOver := m.gameState.GameOver

	result := m.game.Step(in)
	m.gameState = result.State

	for _, ev := range result.Sounds {
		m.sink.Play(ev)
	}

	if wasOver && !m.gameState.GameOver {
		// Restarted
		m.scoreSaved = false
		m.keys.Release()
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRound()
		m.scoreSaved = true
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRound persists the finished round. Failures are logged; the game
// continues regardless.
func (m GameModel) saveRound() {
	if m.store == nil {
		return
	}
	if m.gameState.Score > 0 {
		if _, err := m.store.SaveScore(m.game.ID(), m.gameState.Score); err != nil {
			m.logger.Warn("could not save score", "error", err)
		}
	}

	reporter, ok := m.game.(registry.RunReporter)
	if !ok {
		return
	}
	st := reporter.RunStats()
	_, err := m.store.SaveRun(storage.RunRecord{
		GameID:      m.game.ID(),
		Seed:        m.config.Seed,
		Score:       st.Score,
		Wave:        st.Wave,
		Kills:       st.Kills,
		Rescues:     st.Rescues,
		PersonsLost: st.PersonsLost,
		Mutations:   st.Mutations,
		Duration:    st.Duration,
	})
	if err != nil {
		m.logger.Warn("could not save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".defender", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("could not save screenshot", "error", err)
	}
}

// View renders the current state to a string for display.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

// State returns the state after the most recent tick.
func (m GameModel) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program for a single game.
// Returns true when the player asked to go back to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...GameOption) (backToMenu bool, err error) {
	model := NewGameModel(game, store, cfg, opts...)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if gm, ok := final.(GameModel); ok {
		return gm.BackToMenu(), nil
	}
	return false, nil
}
