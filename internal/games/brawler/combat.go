package brawler

import (
	"github.com/vovakirdan/tui-brawler/internal/config"
)

// Outcome is the result tag of an attack attempt.
type Outcome int

const (
	OutcomeHit Outcome = iota
	OutcomeOnCooldown
	OutcomeOutOfRange
)

func (o Outcome) String() string {
	switch o {
	case OutcomeHit:
		return "hit"
	case OutcomeOnCooldown:
		return "on_cooldown"
	case OutcomeOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// AttackResult reports an attack attempt. Damage is zero unless the
// outcome is OutcomeHit.
type AttackResult struct {
	Outcome Outcome
	Damage  int
}

// Combat resolves attacks between two entities.
type Combat struct {
	Range         float64
	CooldownTicks int
}

// NewCombat creates combat rules from config.
func NewCombat(cfg config.BrawlerConfig) Combat {
	return Combat{
		Range:         cfg.Combat.AttackRange,
		CooldownTicks: cfg.Combat.CooldownTicks,
	}
}

// AttemptAttack resolves one swing of attacker at defender.
// Checks run in order: cooldown, then range. On a hit the attacker enters
// cooldown and the defender loses int(attackPower * modifier) health.
// A nil defender is out of range. Only attacker and defender are mutated.
func (c Combat) AttemptAttack(attacker, defender *Entity, modifier float64) AttackResult {
	if attacker.Cooldown > 0 {
		return AttackResult{Outcome: OutcomeOnCooldown}
	}
	if defender == nil || !InRange(attacker, defender, c.Range) {
		return AttackResult{Outcome: OutcomeOutOfRange}
	}

	damage := max(int(float64(attacker.AttackPower)*modifier), 0)

	attacker.IsAttacking = true
	attacker.swung = true
	attacker.Cooldown = c.CooldownTicks
	if defender.Center().X < attacker.Center().X {
		attacker.Facing = FacingLeft
	} else if defender.Center().X > attacker.Center().X {
		attacker.Facing = FacingRight
	}

	defender.TakeDamage(damage)

	return AttackResult{Outcome: OutcomeHit, Damage: damage}
}
