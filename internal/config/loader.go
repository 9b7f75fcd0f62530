package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when a configuration violates the
// simulation's entry conditions.
var ErrInvalidConfig = errors.New("invalid config")

// LoadBrawler loads the brawler configuration.
// Search order: customPath -> ~/.brawler/configs/brawler.yaml -> ./configs/brawler.yaml -> embedded default
func LoadBrawler(customPath string) (BrawlerConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return DefaultBrawlerConfig(), fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return DefaultBrawlerConfig(), fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return DefaultBrawlerConfig(), fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("brawler.yaml"); userCfgPath != "" {
		if cfg, ok := tryLoad(userCfgPath); ok {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, ok := tryLoad(filepath.Join("configs", "brawler.yaml")); ok {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBrawlerYAML)
	if err != nil {
		return DefaultBrawlerConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they contain.
func Parse(data []byte) (BrawlerConfig, error) {
	cfg := DefaultBrawlerConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return DefaultBrawlerConfig(), err
	}
	return cfg, nil
}

// tryLoad reads an optional config file; unreadable or invalid files are skipped.
func tryLoad(path string) (BrawlerConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BrawlerConfig{}, false
	}
	cfg, err := Parse(data)
	if err != nil || cfg.Validate() != nil {
		return BrawlerConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".brawler", "configs", filename)
}

// Validate checks the invariants the simulation assumes on entry.
// All violations are reported together, each wrapping ErrInvalidConfig.
func (c BrawlerConfig) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
	}

	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		fail("arena must have positive size, got %gx%g", c.Arena.Width, c.Arena.Height)
	}
	if c.Arena.EntityWidth <= 0 || c.Arena.EntityHeight <= 0 {
		fail("entities must have positive size, got %gx%g", c.Arena.EntityWidth, c.Arena.EntityHeight)
	}
	if c.Arena.EntityWidth > c.Arena.Width {
		fail("entity width %g exceeds arena width %g", c.Arena.EntityWidth, c.Arena.Width)
	}
	if c.Arena.GroundLevel < 0 || c.Arena.GroundLevel > c.Arena.Height {
		fail("ground_level %g outside arena height %g", c.Arena.GroundLevel, c.Arena.Height)
	}
	if c.Physics.Gravity <= 0 {
		fail("gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.JumpPower < 0 {
		fail("jump_power must not be negative, got %g", c.Physics.JumpPower)
	}
	if c.Combat.AttackRange < 0 {
		fail("attack_range must not be negative, got %g", c.Combat.AttackRange)
	}
	if c.Combat.CooldownTicks < 0 {
		fail("cooldown_ticks must not be negative, got %d", c.Combat.CooldownTicks)
	}
	if c.Combat.PointsPerEnemy < 0 {
		fail("points_per_enemy must not be negative, got %d", c.Combat.PointsPerEnemy)
	}
	if !validChance(c.AI.WanderChance) || !validChance(c.AI.JumpChance) {
		fail("ai chances must be within [0, 1], got wander=%g jump=%g", c.AI.WanderChance, c.AI.JumpChance)
	}
	if c.Waves.MaxLevel < 1 {
		fail("max_level must be at least 1, got %d", c.Waves.MaxLevel)
	}
	if c.Waves.BaseSize+1 < 1 {
		fail("base_size %d leaves level 1 without enemies", c.Waves.BaseSize)
	}
	if c.Waves.SpawnMinX > c.Waves.SpawnMaxX {
		fail("spawn_min_x %g greater than spawn_max_x %g", c.Waves.SpawnMinX, c.Waves.SpawnMaxX)
	}
	if c.Player.MoveScale <= 0 {
		fail("player move_scale must be positive, got %g", c.Player.MoveScale)
	}
	if err := c.Enemy.validate(); err != nil {
		fail("enemy: %v", err)
	}
	if len(c.Archetypes) == 0 {
		fail("at least one archetype is required")
	}
	seen := make(map[string]bool, len(c.Archetypes))
	for _, a := range c.Archetypes {
		if a.ID == "" {
			fail("archetype with empty id")
			continue
		}
		if seen[a.ID] {
			fail("duplicate archetype %q", a.ID)
		}
		seen[a.ID] = true
		if err := a.validate(); err != nil {
			fail("archetype %q: %v", a.ID, err)
		}
	}
	for _, p := range Presets() {
		if m := c.Difficulty.Modifier(p); m < 0 {
			fail("difficulty %s modifier must not be negative, got %g", p, m)
		}
	}

	return errors.Join(errs...)
}

func (s StatBlock) validate() error {
	if s.MaxHealth <= 0 {
		return fmt.Errorf("max_health must be positive, got %d", s.MaxHealth)
	}
	if s.AttackPower < 0 || s.MoveSpeed < 0 {
		return fmt.Errorf("attack_power and move_speed must not be negative, got %d/%d", s.AttackPower, s.MoveSpeed)
	}
	return nil
}

func validChance(p float64) bool {
	return p >= 0 && p <= 1
}

// ApplyTurnBasedProfile adapts the config for a driver that advances one
// step per player action: shorter cooldowns and longer strides.
func ApplyTurnBasedProfile(cfg *BrawlerConfig) {
	if cfg.TurnBased.CooldownTicks > 0 {
		cfg.Combat.CooldownTicks = cfg.TurnBased.CooldownTicks
	}
	if cfg.TurnBased.MoveScale > 0 {
		cfg.Player.MoveScale = cfg.TurnBased.MoveScale
	}
}
