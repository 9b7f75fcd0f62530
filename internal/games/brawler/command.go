package brawler

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

var (
	// ErrInvalidCommand is returned when a command is unknown or the
	// session is not in a phase that accepts it. State is never changed.
	ErrInvalidCommand = errors.New("invalid command")

	// ErrInvalidConfig is returned when a session is built from a config
	// or archetype that breaks the simulation's entry conditions.
	ErrInvalidConfig = config.ErrInvalidConfig
)

// Command is the player's intent for one step.
type Command int

const (
	CmdNoOp Command = iota
	CmdMoveLeft
	CmdMoveRight
	CmdMoveUp
	CmdMoveDown
	CmdAttack
	CmdJump
)

var commandNames = [...]string{
	CmdNoOp:      "noop",
	CmdMoveLeft:  "left",
	CmdMoveRight: "right",
	CmdMoveUp:    "up",
	CmdMoveDown:  "down",
	CmdAttack:    "attack",
	CmdJump:      "jump",
}

// Valid reports whether c is a known command.
func (c Command) Valid() bool {
	return c >= CmdNoOp && int(c) < len(commandNames)
}

func (c Command) String() string {
	if !c.Valid() {
		return fmt.Sprintf("command(%d)", int(c))
	}
	return commandNames[c]
}

// ParseCommand converts a command name back into a Command.
func ParseCommand(s string) (Command, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range commandNames {
		if name == s {
			return Command(i), nil
		}
	}
	return CmdNoOp, fmt.Errorf("%w: %q", ErrInvalidCommand, s)
}

// direction maps movement commands to a physics direction.
func (c Command) direction() Direction {
	switch c {
	case CmdMoveLeft:
		return DirLeft
	case CmdMoveRight:
		return DirRight
	case CmdMoveUp:
		return DirUp
	case CmdMoveDown:
		return DirDown
	default:
		return DirNone
	}
}

// CommandFromInput picks the command for a frame of platform input.
// When several actions are held, attack wins over jump, and jump over
// movement. ok is false when no gameplay action is present.
func CommandFromInput(in core.InputFrame) (cmd Command, ok bool) {
	switch {
	case in.Has(core.ActionAttack):
		return CmdAttack, true
	case in.Has(core.ActionJump):
		return CmdJump, true
	case in.Has(core.ActionLeft):
		return CmdMoveLeft, true
	case in.Has(core.ActionRight):
		return CmdMoveRight, true
	case in.Has(core.ActionUp):
		return CmdMoveUp, true
	case in.Has(core.ActionDown):
		return CmdMoveDown, true
	default:
		return CmdNoOp, false
	}
}
