package brawler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

func TestHealthBarWidth(t *testing.T) {
	tests := []struct {
		ratio    float64
		width    int
		expected int
	}{
		{1, 10, 10},
		{0, 10, 0},
		{0.5, 10, 5},
		{0.99, 10, 9},
		{-0.5, 10, 0},
		{1.5, 10, 10},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, HealthBarWidth(tt.ratio, tt.width), "ratio %v", tt.ratio)
	}
}

func TestRenderPlaying(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.Step(frame())

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	out := dst.String()

	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "Level 1/3")
	assert.Contains(t, out, "Enemies: 3")
	assert.Contains(t, out, "HP 120/120")
	assert.Contains(t, out, string(PlayerChar))
	assert.Contains(t, out, string(EnemyChar))
	assert.Contains(t, out, "Phase: playing", "log shows the latest events")
	assert.False(t, g.screenTooSmall)
}

func TestRenderPlayerColor(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	dst := core.NewScreen(80, 24)
	g.Render(dst)

	found := false
	for y := 0; y < dst.Height() && !found; y++ {
		for x := 0; x < dst.Width(); x++ {
			if c := dst.GetCell(x, y); c.Rune == PlayerChar {
				assert.Equal(t, ColorPlayer, c.Color)
				found = true
				break
			}
		}
	}
	assert.True(t, found, "player glyph drawn")
}

func TestRenderTooSmallHoldsSimulation(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	dst := core.NewScreen(20, 10)
	g.Render(dst)
	assert.Contains(t, dst.String(), "Window too small")

	res := g.Step(frame(core.ActionRight))
	assert.False(t, res.Advanced)
	assert.Equal(t, 0, g.Session().Tick())
}

func TestRenderBanners(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	g.session.player.Health = 0
	g.Step(frame())

	dst := core.NewScreen(80, 24)
	g.Render(dst)
	assert.Contains(t, dst.String(), "GAME OVER")

	g = New()
	g.Reset(testRuntime())
	g.Step(frame(core.ActionPause))
	g.Render(dst)
	assert.Contains(t, dst.String(), "PAUSED")
}

func TestRenderDeadEnemyBarIsEmpty(t *testing.T) {
	dst := core.NewScreen(80, 24)
	view := newArenaView(dst, 800, 600)
	e := EntitySnapshot{Role: RoleEnemy, X: 400, Y: 300, Width: 40, Height: 60, Health: 0, MaxHealth: 30}

	renderEntity(dst, view, e)

	r := view.rect(e)
	row := dst.Row(r.Y - 1)
	assert.False(t, strings.ContainsRune(row, BarFull))
	assert.True(t, strings.ContainsRune(row, BarEmpty))
}
