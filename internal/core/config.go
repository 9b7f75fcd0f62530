package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState is the platform-facing summary of a running game.
// Returned by Game.State() so the platform can save scores and show banners
// without knowing game internals.
type GameState struct {
	Score      int    // Current score
	Level      int    // Current level or wave (1-based, 0 if not applicable)
	Phase      string // Game-specific phase label, e.g. "playing"
	Character  string // Selected character ID, empty before selection
	Difficulty string // Difficulty preset name
	GameOver   bool   // Whether the game has ended (defeat or victory)
	Victory    bool   // Whether the game ended in a win
	Paused     bool   // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	// Advanced reports whether the simulation actually moved forward.
	// Turn-based games return false on ticks without a player action.
	Advanced bool
}
