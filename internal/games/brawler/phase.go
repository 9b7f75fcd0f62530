package brawler

import (
	"fmt"
)

// Phase is the state of the session's game state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseLevelComplete
	PhaseGameOver
	PhaseVictory
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseLevelComplete:
		return "level_complete"
	case PhaseGameOver:
		return "gameover"
	case PhaseVictory:
		return "victory"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Terminal reports whether the phase ends a run.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseVictory
}

// transitions lists every legal phase edge.
var transitions = map[Phase][]Phase{
	PhaseMenu:          {PhasePlaying},
	PhasePlaying:       {PhaseGameOver, PhaseLevelComplete},
	PhaseLevelComplete: {PhasePlaying, PhaseVictory},
	PhaseGameOver:      {PhaseMenu},
	PhaseVictory:       {PhaseMenu},
}

// CanTransition reports whether from -> to is a legal edge.
func CanTransition(from, to Phase) bool {
	for _, p := range transitions[from] {
		if p == to {
			return true
		}
	}
	return false
}
