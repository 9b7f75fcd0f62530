package config

import (
	"fmt"
	"strings"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the difficulty presets in menu order.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// ParseDifficulty converts a CLI/menu string into a preset.
// An empty string selects normal.
func ParseDifficulty(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// Title returns the display name of the preset.
func (p DifficultyPreset) Title() string {
	switch p {
	case DifficultyEasy:
		return "Easy"
	case DifficultyHard:
		return "Hard"
	default:
		return "Normal"
	}
}

// DifficultyTable scales enemy damage output per preset.
type DifficultyTable struct {
	Easy   float64 `yaml:"easy"`
	Normal float64 `yaml:"normal"`
	Hard   float64 `yaml:"hard"`
}

// Modifier returns the enemy damage multiplier for a preset.
// Unknown presets fall back to normal.
func (t DifficultyTable) Modifier(p DifficultyPreset) float64 {
	switch p {
	case DifficultyEasy:
		return t.Easy
	case DifficultyHard:
		return t.Hard
	default:
		return t.Normal
	}
}
