package brawler

import (
	"math"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

// Tactic is the tier an enemy's decision fell into.
type Tactic int

const (
	TacticAttack Tactic = iota
	TacticChase
	TacticWander
)

func (t Tactic) String() string {
	switch t {
	case TacticAttack:
		return "attack"
	case TacticChase:
		return "chase"
	default:
		return "wander"
	}
}

// AI decides what an enemy does each step. It keeps no state of its own;
// every decision is a function of the two entities and the session RNG.
type AI struct {
	ChaseThreshold float64
	WanderChance   float64
	JumpChance     float64
	AttackRange    float64
}

// NewAI creates enemy AI rules from config.
func NewAI(cfg config.BrawlerConfig) AI {
	return AI{
		ChaseThreshold: cfg.AI.ChaseThreshold,
		WanderChance:   cfg.AI.WanderChance,
		JumpChance:     cfg.AI.JumpChance,
		AttackRange:    cfg.Combat.AttackRange,
	}
}

// Decide picks the first tier that applies:
// attack when in range with cooldown ready, chase when farther than the
// chase threshold, otherwise wander.
func (ai AI) Decide(enemy, player *Entity) Tactic {
	dist := Distance(enemy, player)
	switch {
	case dist <= ai.AttackRange && enemy.Cooldown == 0:
		return TacticAttack
	case dist > ai.ChaseThreshold:
		return TacticChase
	default:
		return TacticWander
	}
}

// ChaseDirection returns the step toward the player along the axis of
// greatest separation. Horizontal wins ties.
func ChaseDirection(enemy, player *Entity) Direction {
	d := player.Center().Sub(enemy.Center())
	if math.Abs(d.X) >= math.Abs(d.Y) {
		if d.X < 0 {
			return DirLeft
		}
		return DirRight
	}
	if d.Y < 0 {
		return DirUp
	}
	return DirDown
}

// WanderRoll is the outcome of an idle enemy's random draws.
type WanderRoll struct {
	Move Direction // DirNone when staying put
	Jump bool
}

// Wander draws an idle move and an independent jump attempt.
// Draw order is fixed (wander chance, direction, jump chance) so that runs
// with equal seeds stay identical.
func (ai AI) Wander(rng *RNG, onGround bool) WanderRoll {
	var roll WanderRoll
	if rng.Float64() < ai.WanderChance {
		switch rng.Intn(3) {
		case 0:
			roll.Move = DirLeft
		case 1:
			roll.Move = DirRight
		}
	}
	if rng.Float64() < ai.JumpChance && onGround {
		roll.Jump = true
	}
	return roll
}
