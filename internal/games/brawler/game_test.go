package brawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
	"github.com/vovakirdan/tui-brawler/internal/registry"
)

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 12345}
}

func frame(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

func withSelection(t *testing.T, archetype, difficulty string) {
	t.Helper()
	SetArchetype(archetype)
	SetDifficultyPreset(difficulty)
	t.Cleanup(func() {
		SetArchetype("")
		SetDifficultyPreset("")
	})
}

func TestDriversRegistered(t *testing.T) {
	for _, id := range []string{IDRealTime, IDTurnBased} {
		require.True(t, registry.Exists(id), id)
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestCommandFromInput(t *testing.T) {
	tests := []struct {
		name     string
		in       core.InputFrame
		expected Command
		ok       bool
	}{
		{"idle", frame(), CmdNoOp, false},
		{"pause only", frame(core.ActionPause), CmdNoOp, false},
		{"left", frame(core.ActionLeft), CmdMoveLeft, true},
		{"right", frame(core.ActionRight), CmdMoveRight, true},
		{"up", frame(core.ActionUp), CmdMoveUp, true},
		{"down", frame(core.ActionDown), CmdMoveDown, true},
		{"jump beats move", frame(core.ActionLeft, core.ActionJump), CmdJump, true},
		{"attack beats all", frame(core.ActionJump, core.ActionRight, core.ActionAttack), CmdAttack, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, ok := CommandFromInput(tt.in)
			assert.Equal(t, tt.expected, cmd)
			assert.Equal(t, tt.ok, ok)
		})
	}
}

func TestRealTimeStepsEveryTick(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(frame())
	assert.True(t, res.Advanced)
	assert.Equal(t, 1, g.Session().Tick())

	g.Step(frame(core.ActionRight))
	assert.Equal(t, 2, g.Session().Tick())
	assert.Equal(t, 104.0, g.Session().Player().X, "one move at base speed")
}

func TestTurnBasedStepsOnActionOnly(t *testing.T) {
	g := NewTurnBased()
	g.Reset(testRuntime())

	assert.Equal(t, 3, g.Session().Config().Combat.CooldownTicks)
	assert.Equal(t, 3.0, g.Session().Config().Player.MoveScale)

	for range 10 {
		res := g.Step(frame())
		assert.False(t, res.Advanced)
	}
	assert.Equal(t, 0, g.Session().Tick())

	res := g.Step(frame(core.ActionRight))
	assert.True(t, res.Advanced)
	assert.Equal(t, 1, g.Session().Tick())
}

func TestPauseHoldsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	res := g.Step(frame(core.ActionPause))
	assert.True(t, res.State.Paused)
	assert.False(t, res.Advanced)

	for range 5 {
		g.Step(frame(core.ActionRight))
	}
	assert.Equal(t, 0, g.Session().Tick())

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused)
	assert.True(t, res.Advanced)
}

func TestStepObserver(t *testing.T) {
	g := NewTurnBased()
	g.Reset(testRuntime())

	var seen []Command
	g.SetStepObserver(func(cmd Command, res StepResult) {
		seen = append(seen, cmd)
		assert.Equal(t, len(seen), res.Tick)
	})

	g.Step(frame(core.ActionLeft))
	g.Step(frame())
	g.Step(frame(core.ActionAttack))

	assert.Equal(t, []Command{CmdMoveLeft, CmdAttack}, seen)
}

func TestSelectionApplied(t *testing.T) {
	withSelection(t, config.ArchetypeSpeed, "hard")

	g := New()
	g.Reset(testRuntime())

	state := g.State()
	assert.Equal(t, config.ArchetypeSpeed, state.Character)
	assert.Equal(t, "hard", state.Difficulty)
	assert.Equal(t, "playing", state.Phase)
	assert.Equal(t, 1, state.Level)
	assert.Equal(t, 90, g.Session().Player().MaxHealth)
}

func TestUnknownSelectionFallsBack(t *testing.T) {
	withSelection(t, "wizard", "nightmare")

	g := New()
	g.Reset(testRuntime())

	state := g.State()
	assert.Equal(t, config.ArchetypeTank, state.Character)
	assert.Equal(t, "normal", state.Difficulty)
}

func TestChooseOverridesPackageSelection(t *testing.T) {
	withSelection(t, config.ArchetypeSpeed, "hard")

	g := New()
	g.Choose(config.ArchetypeBalancedB, config.DifficultyEasy)
	g.Reset(testRuntime())

	state := g.State()
	assert.Equal(t, config.ArchetypeBalancedB, state.Character)
	assert.Equal(t, "easy", state.Difficulty)
	assert.Equal(t, 0.7, g.Session().DamageModifier())
}

func TestStateReportsGameOver(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.session.player.Health = 0

	res := g.Step(frame())
	assert.True(t, res.State.GameOver)
	assert.False(t, res.State.Victory)

	res = g.Step(frame(core.ActionPause))
	assert.False(t, res.State.Paused, "no pausing a finished run")
	assert.False(t, res.Advanced)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 400)
	for i := range inputs {
		switch {
		case i%7 == 0:
			inputs[i] = frame(core.ActionAttack)
		case i%5 < 3:
			inputs[i] = frame(core.ActionRight)
		default:
			inputs[i] = frame()
		}
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testRuntime())
		for _, in := range inputs {
			g.Step(in)
		}
		return g.Session().Snapshot()
	}

	s1, s2 := run(), run()
	assert.Equal(t, s1.Hash(), s2.Hash())
}
