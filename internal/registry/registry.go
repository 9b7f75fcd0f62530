// Package registry provides a global registry for game drivers.
// Drivers register themselves in init() functions, allowing the platform
// to discover and instantiate them without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Game is the interface every driver over the simulation implements.
// Drivers contain pure logic with no external dependencies (especially no Bubble Tea).
// The platform handles input mapping, timing, and rendering.
type Game interface {
	// ID returns a unique identifier (e.g., "brawler", "brawler-turns").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display.
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after game over.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step is called once per platform tick with the actions pressed during it.
	// Real-time drivers advance every call; turn-based drivers only when an
	// action maps to a command (StepResult.Advanced reports which).
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// The screen is pre-cleared before this call.
	Render(dst *core.Screen)

	// State returns the current game state (score, level, outcome).
	State() core.GameState
}

// Paced is implemented by drivers that only advance on player actions.
type Paced interface {
	TurnBased() bool
}

// GameInfo contains metadata about a registered driver.
type GameInfo struct {
	ID        string
	Title     string
	TurnBased bool
}

// Pacing returns a short label for how the driver advances.
func (i GameInfo) Pacing() string {
	if i.TurnBased {
		return "turn-based"
	}
	return "real-time"
}

// Factory is a function that creates a new instance of a driver.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	infos     = make(map[string]GameInfo)
	mu        sync.RWMutex
)

// Register adds a driver factory to the registry.
// Typically called from a package init() function.
// Panics if a driver with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Read metadata from a temporary instance
	g := f()
	info := GameInfo{ID: id, Title: g.Title()}
	if p, ok := g.(Paced); ok {
		info.TurnBased = p.TurnBased()
	}
	infos[id] = info
}

// List returns information about all registered drivers, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(infos))
	for _, info := range infos {
		result = append(result, info)
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new driver by its ID.
// Returns an error if the ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Info returns the metadata of a registered driver.
func Info(id string) (GameInfo, bool) {
	mu.RLock()
	defer mu.RUnlock()

	info, ok := infos[id]
	return info, ok
}

// Exists checks if a driver with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
