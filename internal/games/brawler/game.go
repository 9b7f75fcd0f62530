package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

// Driver IDs as registered with the platform.
const (
	IDRealTime  = "brawler"
	IDTurnBased = "brawler-turns"
)

func init() {
	registry.Register(IDRealTime, func() registry.Game { return New() })
	registry.Register(IDTurnBased, func() registry.Game { return NewTurnBased() })
}

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI or menu
var difficultyPreset = config.DifficultyNormal

// archetypeID stores the selected character
var archetypeID string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficulty(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetArchetype selects the character for the next Reset.
// Unknown IDs fall back to the first configured archetype.
func SetArchetype(id string) {
	archetypeID = id
}

// LoadConfig loads the brawler config the same way Reset does.
func LoadConfig(turnBased bool) config.BrawlerConfig {
	cfg, err := config.LoadBrawler(configPath)
	if err != nil {
		cfg = config.DefaultBrawlerConfig()
	}
	if turnBased {
		config.ApplyTurnBasedProfile(&cfg)
	}
	return cfg
}

// StepObserver is called after every step the game takes.
type StepObserver func(cmd Command, res StepResult)

// Game adapts a Session to the platform's per-tick game interface.
type Game struct {
	turnBased bool
	session   *Session
	runtime   core.RuntimeConfig
	paused    bool
	observer  StepObserver

	// Per-instance selection; falls back to the package defaults when unset.
	archetype  string
	difficulty config.DifficultyPreset

	// Set by Render; the simulation holds while the player can't see it.
	screenTooSmall bool
}

// New creates the real-time driver: one step per tick, NoOp when idle.
func New() *Game {
	return &Game{}
}

// NewTurnBased creates the turn-based driver: one step per player action.
func NewTurnBased() *Game {
	return &Game{turnBased: true}
}

// ID returns the unique identifier for this driver.
func (g *Game) ID() string {
	if g.turnBased {
		return IDTurnBased
	}
	return IDRealTime
}

// Title returns the display name for this driver.
func (g *Game) Title() string {
	if g.turnBased {
		return "Brawler (Turn-Based)"
	}
	return "Brawler"
}

// TurnBased reports whether the game only advances on player actions.
func (g *Game) TurnBased() bool {
	return g.turnBased
}

// Reset starts a new run with the selected character and difficulty.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.paused = false

	cfg := LoadConfig(g.turnBased)
	session, err := NewSession(cfg, runtime.Seed)
	if err != nil {
		cfg = config.DefaultBrawlerConfig()
		if g.turnBased {
			config.ApplyTurnBasedProfile(&cfg)
		}
		session, _ = NewSession(cfg, runtime.Seed) //nolint:errcheck // defaults always validate
	}

	archetype, difficulty := archetypeID, difficultyPreset
	if g.archetype != "" {
		archetype = g.archetype
	}
	if g.difficulty != "" {
		difficulty = g.difficulty
	}
	if _, ok := cfg.Archetype(archetype); !ok {
		archetype = cfg.Archetypes[0].ID
	}
	if err := session.Reset(archetype, difficulty); err != nil {
		//nolint:errcheck // archetype checked above, normal always parses
		session.Reset(archetype, config.DifficultyNormal)
	}

	g.session = session
}

// Choose sets the character and difficulty for this instance's next Reset,
// overriding SetArchetype and SetDifficultyPreset.
func (g *Game) Choose(archetype string, difficulty config.DifficultyPreset) {
	g.archetype = archetype
	g.difficulty = difficulty
}

// SetStepObserver registers fn to be called after every step.
func (g *Game) SetStepObserver(fn StepObserver) {
	g.observer = fn
}

// Session returns the underlying simulation.
func (g *Game) Session() *Session {
	return g.session
}

// Step maps one frame of input to a command and advances the session.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.session.Phase().Terminal() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	cmd, ok := CommandFromInput(in)
	if !ok && g.turnBased {
		return core.StepResult{State: g.State()}
	}

	res, err := g.session.Step(cmd)
	if err != nil {
		return core.StepResult{State: g.State()}
	}
	if g.observer != nil {
		g.observer(cmd, res)
	}

	return core.StepResult{State: g.State(), Advanced: true}
}

// State returns the platform-facing summary of the run.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Phase: PhaseMenu.String()}
	}
	phase := g.session.Phase()
	return core.GameState{
		Score:      g.session.Score(),
		Level:      g.session.Level(),
		Phase:      phase.String(),
		Character:  g.session.Archetype(),
		Difficulty: string(g.session.Difficulty()),
		GameOver:   phase.Terminal(),
		Victory:    phase == PhaseVictory,
		Paused:     g.paused,
	}
}
