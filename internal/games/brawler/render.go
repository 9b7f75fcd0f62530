package brawler

import (
	"fmt"

	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar = '█'
	EnemyChar  = '▓'
	StrikeChar = '*'
	GroundChar = '─'
	BarFull    = '■'
	BarEmpty   = '·'
)

// Layout constants
const (
	minScreenW = 40
	minScreenH = 18
	hudRows    = 2 // Score line and player status line
	logRows    = 5 // Action log lines shown under the arena
)

// arenaView maps arena units onto the character grid inside the arena box.
type arenaView struct {
	inner  core.Rect
	scaleX float64
	scaleY float64
}

func newArenaView(dst *core.Screen, arenaW, arenaH float64) arenaView {
	box := core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-logRows)
	inner := core.NewRect(box.X+1, box.Y+1, box.W-2, box.H-2)
	return arenaView{
		inner:  inner,
		scaleX: float64(inner.W) / arenaW,
		scaleY: float64(inner.H) / arenaH,
	}
}

func (v arenaView) col(x float64) int {
	return v.inner.X + int(x*v.scaleX)
}

func (v arenaView) row(y float64) int {
	return v.inner.Y + int(y*v.scaleY)
}

// rect converts an entity box to cells, at least one cell in each direction
// and clipped to the arena interior.
func (v arenaView) rect(e EntitySnapshot) core.Rect {
	x0, y0 := v.col(e.X), v.row(e.Y)
	x1, y1 := max(v.col(e.X+e.Width), x0+1), max(v.row(e.Y+e.Height), y0+1)

	x0 = core.Clamp(x0, v.inner.X, v.inner.Right()-1)
	y0 = core.Clamp(y0, v.inner.Y, v.inner.Bottom()-1)
	x1 = core.Clamp(x1, x0+1, v.inner.Right())
	y1 = core.Clamp(y1, y0+1, v.inner.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.screenTooSmall = dst.Width() < minScreenW || dst.Height() < minScreenH
	if g.screenTooSmall {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small", ColorWarning)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH), core.ColorDefault)
		return
	}
	if g.session == nil {
		return
	}

	cfg := g.session.Config()
	view := newArenaView(dst, cfg.Arena.Width, cfg.Arena.Height)

	g.renderHUD(dst)
	dst.DrawBox(core.NewRect(0, hudRows, dst.Width(), dst.Height()-hudRows-logRows), core.ColorGray)
	dst.DrawHLine(view.inner.X, view.row(cfg.Arena.GroundLevel+cfg.Arena.EntityHeight), view.inner.W, GroundChar, core.ColorGray)

	for _, e := range g.session.Enemies() {
		renderEntity(dst, view, e)
	}
	renderEntity(dst, view, g.session.Player())

	g.renderLog(dst)
	g.renderOverlay(dst, view)
}

// Render colors
const (
	ColorWarning = core.ColorYellow
	ColorPlayer  = core.ColorCyan
	ColorEnemy   = core.ColorRed
)

// renderHUD draws score, level, and the player's status.
func (g *Game) renderHUD(dst *core.Screen) {
	s := g.session
	cfg := s.Config()

	dst.DrawTextColor(1, 0, fmt.Sprintf("Score: %d", s.Score()), core.ColorYellow)
	dst.DrawTextCentered(0, fmt.Sprintf("Level %d/%d", s.Level(), cfg.Waves.MaxLevel), core.ColorWhite)
	enemies := fmt.Sprintf("Enemies: %d", len(s.Enemies()))
	dst.DrawText(dst.Width()-len(enemies)-1, 0, enemies)

	p := s.Player()
	name := s.Archetype()
	if a, ok := cfg.Archetype(name); ok {
		name = a.Name
	}
	status := fmt.Sprintf("%s  HP %d/%d ", name, p.Health, p.MaxHealth)
	dst.DrawTextColor(1, 1, status, ColorPlayer)

	barX := 1 + len([]rune(status))
	barW := 10
	drawBar(dst, barX, 1, barW, p.HealthRatio())

	cd := "Ready"
	if p.Cooldown > 0 {
		cd = fmt.Sprintf("CD %d", p.Cooldown)
	}
	right := fmt.Sprintf("%s  %s", cd, s.Difficulty().Title())
	if g.turnBased {
		right = fmt.Sprintf("Turn %d  %s", s.Tick(), right)
	}
	dst.DrawText(dst.Width()-len(right)-1, 1, right)
}

// HealthBarWidth returns the filled cells of a bar of width w.
// Never negative, never more than w.
func HealthBarWidth(ratio float64, w int) int {
	return core.Clamp(int(ratio*float64(w)), 0, w)
}

func healthColor(ratio float64) core.Color {
	switch {
	case ratio > 0.5:
		return core.ColorGreen
	case ratio > 0.25:
		return core.ColorYellow
	default:
		return core.ColorRed
	}
}

func drawBar(dst *core.Screen, x, y, w int, ratio float64) {
	filled := HealthBarWidth(ratio, w)
	dst.DrawHLine(x, y, filled, BarFull, healthColor(ratio))
	dst.DrawHLine(x+filled, y, w-filled, BarEmpty, core.ColorGray)
}

// renderEntity draws an entity box with its health bar and strike marker.
func renderEntity(dst *core.Screen, view arenaView, e EntitySnapshot) {
	r := view.rect(e)

	glyph, color := EnemyChar, ColorEnemy
	if e.Role == RolePlayer {
		glyph, color = PlayerChar, ColorPlayer
	}
	dst.DrawRect(r, glyph, color)

	if r.Y-1 >= view.inner.Y {
		drawBar(dst, r.X, r.Y-1, max(r.W, 3), e.HealthRatio())
	}

	if e.IsAttacking {
		x := r.Right()
		if e.Facing == FacingLeft {
			x = r.X - 1
		}
		if x >= view.inner.X && x < view.inner.Right() {
			dst.SetColor(x, r.Y+r.H/2, StrikeChar, core.ColorYellow)
		}
	}
}

// renderLog draws the most recent log entries under the arena.
func (g *Game) renderLog(dst *core.Screen) {
	entries := g.session.Log()
	if len(entries) > logRows {
		entries = entries[len(entries)-logRows:]
	}

	top := dst.Height() - logRows
	for i, e := range entries {
		color := core.ColorGray
		if e.Kind == EventAttack && e.Outcome == OutcomeHit {
			if e.Actor == PlayerID {
				color = core.ColorGreen
			} else {
				color = core.ColorRed
			}
		} else if e.Kind == EventWave || e.Kind == EventLevelUp {
			color = core.ColorYellow
		}
		dst.DrawTextColor(1, top+i, e.String(), color)
	}
}

// renderOverlay draws pause and end-of-run banners.
func (g *Game) renderOverlay(dst *core.Screen, view arenaView) {
	var lines []string
	color := core.ColorWhite

	switch {
	case g.session.Phase() == PhaseVictory:
		lines = []string{"VICTORY!", fmt.Sprintf("Final score: %d", g.session.Score()), "R restart · Q quit"}
		color = core.ColorGreen
	case g.session.Phase() == PhaseGameOver:
		lines = []string{"GAME OVER", fmt.Sprintf("Score: %d  Level: %d", g.session.Score(), g.session.Level()), "R restart · Q quit"}
		color = core.ColorRed
	case g.paused:
		lines = []string{"PAUSED", "P to resume"}
	default:
		return
	}

	width := 0
	for _, l := range lines {
		width = max(width, len([]rune(l)))
	}
	width += 4

	mid := view.inner.Y + view.inner.H/2
	box := core.NewRect((dst.Width()-width)/2, mid-len(lines)/2-1, width, len(lines)+2)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, color)
	for i, l := range lines {
		dst.DrawTextCentered(box.Y+1+i, l, color)
	}
}
