package tui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/storage"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func openTestStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 100, ScreenH: 36, TickRate: 60, Seed: 7}
}

// fakeGame is a scripted driver for testing the platform side.
type fakeGame struct {
	state  core.GameState
	resets int
	steps  int
	last   core.InputFrame
}

func (f *fakeGame) ID() string    { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }

func (f *fakeGame) Reset(core.RuntimeConfig) {
	f.resets++
	f.state = core.GameState{Phase: "playing", Level: 1}
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.steps++
	f.last = in.Clone()
	return core.StepResult{State: f.state, Advanced: true}
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "fake")
}

func (f *fakeGame) State() core.GameState { return f.state }
