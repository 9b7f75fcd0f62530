package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Direction is a unit step on one arena axis.
type Direction int

const (
	DirNone Direction = iota
	DirLeft
	DirRight
	DirUp
	DirDown
)

// delta returns the unit vector of the direction.
func (d Direction) delta() (dx, dy float64) {
	switch d {
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	default:
		return 0, 0
	}
}

// Physics applies gravity, jumps, and bounded movement inside the arena.
type Physics struct {
	Arena   config.ArenaConfig
	Gravity float64
	JumpV   float64
}

// NewPhysics creates physics rules from config.
func NewPhysics(cfg config.BrawlerConfig) Physics {
	return Physics{
		Arena:   cfg.Arena,
		Gravity: cfg.Physics.Gravity,
		JumpV:   cfg.Physics.JumpPower,
	}
}

// ApplyGravity advances an airborne entity by one tick and lands it on
// the ground line. Grounded entities are left untouched.
func (p Physics) ApplyGravity(e *Entity) {
	if e.OnGround {
		return
	}

	e.VelocityY += p.Gravity
	e.Pos.Y += e.VelocityY

	// Arena ceiling
	if e.Pos.Y < 0 {
		e.Pos.Y = 0
		e.VelocityY = max(e.VelocityY, 0)
	}

	if e.Pos.Y >= p.Arena.GroundLevel {
		e.Pos.Y = p.Arena.GroundLevel
		e.VelocityY = 0
		e.OnGround = true
		e.IsJumping = false
	}
}

// Jump launches a grounded entity upward. Returns false, changing nothing,
// when the entity is already airborne.
func (p Physics) Jump(e *Entity) bool {
	if !e.OnGround {
		return false
	}
	e.VelocityY = -p.JumpV
	e.OnGround = false
	e.IsJumping = true
	return true
}

// Move steps an entity speed units in dir, clamped to the arena.
// Horizontal moves stay within [0, width-entityWidth] and turn the entity.
// Vertical moves change lane within [0, groundLevel] and require footing;
// they are ignored while airborne.
func (p Physics) Move(e *Entity, dir Direction, speed float64) {
	dx, dy := dir.delta()

	if dx != 0 {
		e.Pos.X = core.ClampF(e.Pos.X+dx*speed, 0, p.Arena.Width-e.Width)
		if dx < 0 {
			e.Facing = FacingLeft
		} else {
			e.Facing = FacingRight
		}
	}

	if dy != 0 && e.OnGround {
		e.Pos.Y = core.ClampF(e.Pos.Y+dy*speed, 0, p.Arena.GroundLevel)
	}
}

// Distance returns the Euclidean distance between entity centers.
func Distance(a, b *Entity) float64 {
	return b.Center().Sub(a.Center()).Len()
}

// InRange reports whether two entities' centers are within threshold.
// Combat and AI both use this test.
func InRange(a, b *Entity, threshold float64) bool {
	return Distance(a, b) <= threshold
}
