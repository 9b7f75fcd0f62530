package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// Role tags which side an entity fights on. Behavior that differs between
// the player and enemies (stat table, AI) is selected by this tag.
type Role int

const (
	RolePlayer Role = iota
	RoleEnemy
)

func (r Role) String() string {
	if r == RolePlayer {
		return "player"
	}
	return "enemy"
}

// Facing is the horizontal direction an entity last moved or attacked in.
// It is advisory only: range checks never consult it.
type Facing int

const (
	FacingRight Facing = iota
	FacingLeft
)

func (f Facing) String() string {
	if f == FacingLeft {
		return "left"
	}
	return "right"
}

// Entity is a fighter in the arena.
// Position is the top-left corner of the entity's box in arena units, with y
// growing downward. Only vertical velocity exists; horizontal motion is
// applied directly by moves.
type Entity struct {
	ID        int
	Role      Role
	Archetype string // Player archetype ID, empty for enemies

	Pos       core.Vec2
	Width     float64
	Height    float64
	VelocityY float64

	Health      int
	MaxHealth   int
	AttackPower int
	MoveSpeed   int

	IsAttacking bool
	Cooldown    int // Ticks until the next attack is allowed
	IsJumping   bool
	OnGround    bool
	Facing      Facing

	swung bool // Set when IsAttacking was raised during the current step
}

func newEntity(id int, role Role, stats config.StatBlock, pos core.Vec2, arena config.ArenaConfig) *Entity {
	return &Entity{
		ID:          id,
		Role:        role,
		Pos:         pos,
		Width:       arena.EntityWidth,
		Height:      arena.EntityHeight,
		Health:      stats.MaxHealth,
		MaxHealth:   stats.MaxHealth,
		AttackPower: stats.AttackPower,
		MoveSpeed:   stats.MoveSpeed,
		OnGround:    true,
		Facing:      FacingRight,
	}
}

// TakeDamage subtracts amount from health, keeping it within [0, MaxHealth].
// Negative amounts heal.
func (e *Entity) TakeDamage(amount int) {
	e.Health = core.Clamp(e.Health-amount, 0, e.MaxHealth)
}

// Heal restores amount health, capped at MaxHealth.
func (e *Entity) Heal(amount int) {
	e.TakeDamage(-amount)
}

// IsAlive reports whether the entity has health left.
func (e *Entity) IsAlive() bool {
	return e.Health > 0
}

// HealthRatio returns health as a fraction of MaxHealth in [0, 1].
func (e *Entity) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return core.ClampF(float64(e.Health)/float64(e.MaxHealth), 0, 1)
}

// Box returns the entity's collision box.
func (e *Entity) Box() core.Box {
	return core.Box{X: e.Pos.X, Y: e.Pos.Y, W: e.Width, H: e.Height}
}

// Center returns the center of the entity's box.
func (e *Entity) Center() core.Vec2 {
	return e.Box().Center()
}
