// Package config provides YAML-based game configuration loading and
// difficulty tables for the brawler.
package config

// BrawlerConfig contains all tuning for the beat-'em-up simulation.
// Every field has a default (see DefaultBrawlerConfig); YAML files only
// need to carry the values they override.
type BrawlerConfig struct {
	Arena      ArenaConfig       `yaml:"arena"`
	Physics    PhysicsConfig     `yaml:"physics"`
	Combat     CombatConfig      `yaml:"combat"`
	AI         AIConfig          `yaml:"ai"`
	Waves      WaveConfig        `yaml:"waves"`
	Player     PlayerConfig      `yaml:"player"`
	Enemy      StatBlock         `yaml:"enemy"`
	Archetypes []ArchetypeConfig `yaml:"archetypes"`
	Difficulty DifficultyTable   `yaml:"difficulty"`
	TurnBased  TurnBasedProfile  `yaml:"turn_based"`
}

// ArenaConfig defines the fixed playfield in arena units.
type ArenaConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	GroundLevel  float64 `yaml:"ground_level"` // Largest y an entity's top edge can reach
	EntityWidth  float64 `yaml:"entity_width"`
	EntityHeight float64 `yaml:"entity_height"`
}

// PhysicsConfig defines vertical motion.
type PhysicsConfig struct {
	Gravity   float64 `yaml:"gravity"`    // Added to velocity every airborne tick
	JumpPower float64 `yaml:"jump_power"` // Initial upward velocity of a jump
}

// CombatConfig defines attack gating and scoring.
type CombatConfig struct {
	AttackRange    float64 `yaml:"attack_range"`   // Center-to-center reach
	CooldownTicks  int     `yaml:"cooldown_ticks"` // Ticks between successive attacks
	PointsPerEnemy int     `yaml:"points_per_enemy"`
}

// AIConfig defines the enemy decision procedure.
type AIConfig struct {
	ChaseThreshold float64 `yaml:"chase_threshold"` // Chase when farther than this
	WanderChance   float64 `yaml:"wander_chance"`   // Per-step probability of a wander move
	JumpChance     float64 `yaml:"jump_chance"`     // Per-step probability of a wander jump
}

// WaveConfig defines level progression.
type WaveConfig struct {
	BaseSize    int     `yaml:"base_size"` // Wave size is level + base_size
	MaxLevel    int     `yaml:"max_level"`
	LevelUpHeal int     `yaml:"level_up_heal"`
	SpawnMinX   float64 `yaml:"spawn_min_x"`
	SpawnMaxX   float64 `yaml:"spawn_max_x"`
}

// PlayerConfig defines player placement and movement scaling.
type PlayerConfig struct {
	StartX    float64 `yaml:"start_x"`
	MoveScale float64 `yaml:"move_scale"` // Multiplier on archetype move speed
}

// StatBlock is the fixed stat bundle of a character.
type StatBlock struct {
	AttackPower int `yaml:"attack_power"`
	MoveSpeed   int `yaml:"move_speed"`
	MaxHealth   int `yaml:"max_health"`
}

// ArchetypeConfig is a selectable player character.
type ArchetypeConfig struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	StatBlock   `yaml:",inline"`
}

// TurnBasedProfile holds the overrides applied when the game is driven
// one action at a time instead of every frame.
type TurnBasedProfile struct {
	CooldownTicks int     `yaml:"cooldown_ticks"`
	MoveScale     float64 `yaml:"move_scale"`
}

// Archetype looks up an archetype by ID.
func (c BrawlerConfig) Archetype(id string) (ArchetypeConfig, bool) {
	for _, a := range c.Archetypes {
		if a.ID == id {
			return a, true
		}
	}
	return ArchetypeConfig{}, false
}
