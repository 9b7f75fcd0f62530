package config

import (
	_ "embed"
)

//go:embed defaults/brawler.yaml
var defaultBrawlerYAML []byte

// Archetype IDs shipped with the default configuration.
const (
	ArchetypeTank      = "tank"
	ArchetypeBalancedA = "balanced-a"
	ArchetypeSpeed     = "speed"
	ArchetypeBalancedB = "balanced-b"
)

// DefaultBrawlerConfig returns the built-in brawler configuration.
// It mirrors defaults/brawler.yaml and is the fallback when that fails to parse.
func DefaultBrawlerConfig() BrawlerConfig {
	return BrawlerConfig{
		Arena: ArenaConfig{
			Width:        800,
			Height:       600,
			GroundLevel:  500,
			EntityWidth:  40,
			EntityHeight: 60,
		},
		Physics: PhysicsConfig{
			Gravity:   0.8,
			JumpPower: 15,
		},
		Combat: CombatConfig{
			AttackRange:    60,
			CooldownTicks:  20,
			PointsPerEnemy: 100,
		},
		AI: AIConfig{
			ChaseThreshold: 80,
			WanderChance:   0.30,
			JumpChance:     0.05,
		},
		Waves: WaveConfig{
			BaseSize:    2,
			MaxLevel:    3,
			LevelUpHeal: 30,
			SpawnMinX:   400,
			SpawnMaxX:   700,
		},
		Player: PlayerConfig{
			StartX:    100,
			MoveScale: 1,
		},
		Enemy: StatBlock{AttackPower: 8, MoveSpeed: 2, MaxHealth: 30},
		Archetypes: []ArchetypeConfig{
			{ID: ArchetypeTank, Name: "Tank", Description: "High attack, slow speed, most health",
				StatBlock: StatBlock{AttackPower: 15, MoveSpeed: 4, MaxHealth: 120}},
			{ID: ArchetypeBalancedA, Name: "Balanced A", Description: "Balanced stats, good all-rounder",
				StatBlock: StatBlock{AttackPower: 12, MoveSpeed: 5, MaxHealth: 100}},
			{ID: ArchetypeSpeed, Name: "Speed", Description: "Fast movement, lower health",
				StatBlock: StatBlock{AttackPower: 10, MoveSpeed: 6, MaxHealth: 90}},
			{ID: ArchetypeBalancedB, Name: "Balanced B", Description: "Balanced speed and attack",
				StatBlock: StatBlock{AttackPower: 11, MoveSpeed: 5, MaxHealth: 95}},
		},
		Difficulty: DifficultyTable{Easy: 0.7, Normal: 1.0, Hard: 1.3},
		TurnBased: TurnBasedProfile{
			CooldownTicks: 3,
			MoveScale:     3,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBrawlerYAML
}
