package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/games/brawler"
	"github.com/vovakirdan/tui-brawler/internal/registry"
	"github.com/vovakirdan/tui-brawler/internal/replay"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

// Options configures the side effects of a game model.
type Options struct {
	// Logger receives run and combat events. Nil discards them.
	Logger *log.Logger

	// ReplayDir is where finished runs are written. Empty disables recording.
	ReplayDir string
}

// recordable is implemented by drivers that expose their simulation.
type recordable interface {
	SetStepObserver(fn brawler.StepObserver)
	Session() *brawler.Session
}

// runState is shared by every copy of a Model, so Init can start a run
// even though Bubble Tea models are values.
type runState struct {
	recorder *replay.Recorder
	finished bool // Score and replay handled for the current run
}

// Model is the Bubble Tea model for playing one driver.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	opts       Options
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	help       help.Model
	run        *runState
	quitting   bool
	backToMenu bool
}

// NewModel creates a new Bubble Tea model for the given driver.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 0)),
		store:      store,
		config:     cfg,
		opts:       opts,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		help:       h,
		run:        &runState{},
	}
}

// Init starts the first run and the tick loop.
func (m Model) Init() tea.Cmd {
	m.startRun()
	return tickCmd(m.config.TickRate)
}

// startRun resets the driver and hooks up recording and event logging.
func (m Model) startRun() {
	m.game.Reset(m.config)
	m.run.recorder = nil
	m.run.finished = false

	logger := m.opts.Logger
	if r, ok := m.game.(recordable); ok {
		var rec *replay.Recorder
		if m.opts.ReplayDir != "" {
			rec = replay.NewRecorder(m.game.ID(), r.Session())
			m.run.recorder = rec
		}
		r.SetStepObserver(func(cmd brawler.Command, res brawler.StepResult) {
			if rec != nil {
				rec.Record(cmd, res)
			}
			logEvents(logger, res.Events)
		})
	}

	state := m.game.State()
	logger.Info("run started",
		"game", m.game.ID(),
		"seed", m.config.Seed,
		"character", state.Character,
		"difficulty", state.Difficulty,
	)
}

// logEvents writes one step's events: phase changes at info, the rest at debug.
func logEvents(logger *log.Logger, events []brawler.Event) {
	for _, e := range events {
		if e.Kind == brawler.EventPhase {
			logger.Info("phase changed", "tick", e.Tick, "phase", e.Phase)
			continue
		}
		logger.Debug(e.String(), "tick", e.Tick, "kind", e.Kind)
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keyMapper.Keys().Screenshot) {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	switch {
	case isQuit:
		m.quitting = true
		return m, tea.Quit

	case action == core.ActionBack:
		// Leaving mid-fight takes a pause first
		if m.gameState.GameOver || m.gameState.Paused {
			m.backToMenu = true
			return m, tea.Quit
		}
		return m, nil

	case action == core.ActionRestart && !m.gameState.GameOver:
		return m, nil

	case action != core.ActionNone:
		m.inputFrame.Set(action)
	}

	return m, nil
}

// handleResize processes window resize events. The run carries on; the
// arena is rescaled on the next render.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-1, 0))
	m.help.Width = msg.Width
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = time.Now().UnixNano()
		m.startRun()
		m.gameState = m.game.State()
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	if m.gameState.GameOver && !m.run.finished {
		m.finishRun()
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// finishRun saves the score and replay of a run that just ended. Failures
// are logged; the game carries on regardless.
func (m Model) finishRun() {
	m.run.finished = true
	st := m.gameState
	logger := m.opts.Logger

	outcome := storage.OutcomeDefeat
	if st.Victory {
		outcome = storage.OutcomeVictory
	}
	logger.Info("run ended", "game", m.game.ID(), "outcome", outcome, "score", st.Score, "level", st.Level)

	if m.store != nil && st.Score > 0 {
		_, err := m.store.SaveScore(storage.ScoreEntry{
			GameID:     m.game.ID(),
			Score:      st.Score,
			Character:  st.Character,
			Difficulty: st.Difficulty,
			Level:      st.Level,
			Outcome:    outcome,
		})
		if err != nil {
			logger.Warn("could not save score", "error", err)
		}
	}

	rec := m.run.recorder
	r, ok := m.game.(recordable)
	if rec == nil || !ok {
		return
	}
	rec.Finish(r.Session())
	data := rec.Data()
	path := filepath.Join(m.opts.ReplayDir, replay.FileName(data))
	if err := rec.Save(path); err != nil {
		logger.Warn("could not save replay", "error", err)
		return
	}
	logger.Info("replay saved", "path", path, "steps", data.Steps())

	if m.store != nil {
		err := m.store.SaveReplay(storage.ReplayRecord{
			ID:        data.ID,
			GameID:    data.GameID,
			Path:      path,
			Character: data.Archetype,
			Score:     st.Score,
			Steps:     data.Steps(),
		})
		if err != nil {
			logger.Warn("could not index replay", "error", err)
		}
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	dir := filepath.Join(home, ".brawler", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("could not create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("could not save screenshot", "error", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// State returns the last state reported by the driver.
func (m Model) State() core.GameState {
	return m.gameState
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Run starts the Bubble Tea program with the given driver.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts Options) error {
	model := NewModel(game, store, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
