package brawler

import (
	"fmt"
)

// EventKind classifies entries in the step log.
type EventKind int

const (
	EventAttack   EventKind = iota // An attack attempt with its outcome
	EventJump                      // An entity left the ground
	EventDefeat                    // An enemy was removed from the wave
	EventWave                      // A wave was cleared and its points credited
	EventLevelUp                   // The next level started
	EventPhase                     // The session changed phase
)

func (k EventKind) String() string {
	switch k {
	case EventAttack:
		return "attack"
	case EventJump:
		return "jump"
	case EventDefeat:
		return "defeat"
	case EventWave:
		return "wave"
	case EventLevelUp:
		return "level_up"
	case EventPhase:
		return "phase"
	default:
		return "unknown"
	}
}

// NoTarget marks an event without a defender.
const NoTarget = -1

// Event is one structured entry of the combat and AI log.
// Fields that do not apply to a kind are left zero (Target is NoTarget).
type Event struct {
	Tick    int
	Kind    EventKind
	Actor   int // Entity that acted; 0 is always the player
	Target  int
	Outcome Outcome
	Damage  int
	Level   int
	Points  int
	Phase   Phase
}

// String renders the event as a short log line.
func (e Event) String() string {
	switch e.Kind {
	case EventAttack:
		switch e.Outcome {
		case OutcomeHit:
			return fmt.Sprintf("%s hit %s for %d", entityName(e.Actor), entityName(e.Target), e.Damage)
		case OutcomeOnCooldown:
			return fmt.Sprintf("%s attack on cooldown", entityName(e.Actor))
		default:
			return fmt.Sprintf("%s attack out of range", entityName(e.Actor))
		}
	case EventJump:
		return fmt.Sprintf("%s jumped", entityName(e.Actor))
	case EventDefeat:
		return fmt.Sprintf("%s defeated (+%d)", entityName(e.Actor), e.Points)
	case EventWave:
		return fmt.Sprintf("Wave %d cleared: %d points", e.Level, e.Points)
	case EventLevelUp:
		return fmt.Sprintf("Level %d begins", e.Level)
	case EventPhase:
		return fmt.Sprintf("Phase: %s", e.Phase)
	default:
		return e.Kind.String()
	}
}

func entityName(id int) string {
	switch {
	case id == PlayerID:
		return "Player"
	case id == NoTarget:
		return "nobody"
	default:
		return fmt.Sprintf("Enemy %d", id)
	}
}
