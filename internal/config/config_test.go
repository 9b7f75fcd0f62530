package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	parsed, err := Parse(DefaultYAML())
	require.NoError(t, err)
	assert.Equal(t, DefaultBrawlerConfig(), parsed)
}

func TestDefaultBrawlerConfigIsValid(t *testing.T) {
	assert.NoError(t, DefaultBrawlerConfig().Validate())
}

func TestDefaultArchetypes(t *testing.T) {
	cfg := DefaultBrawlerConfig()

	tests := []struct {
		id                    string
		attack, speed, health int
	}{
		{ArchetypeTank, 15, 4, 120},
		{ArchetypeBalancedA, 12, 5, 100},
		{ArchetypeSpeed, 10, 6, 90},
		{ArchetypeBalancedB, 11, 5, 95},
	}

	for _, tt := range tests {
		a, ok := cfg.Archetype(tt.id)
		require.True(t, ok, "archetype %s", tt.id)
		assert.Equal(t, tt.attack, a.AttackPower, tt.id)
		assert.Equal(t, tt.speed, a.MoveSpeed, tt.id)
		assert.Equal(t, tt.health, a.MaxHealth, tt.id)
	}

	_, ok := cfg.Archetype("wizard")
	assert.False(t, ok)
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte("combat:\n  cooldown_ticks: 5\n"))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Combat.CooldownTicks)
	assert.Equal(t, 60.0, cfg.Combat.AttackRange, "untouched keys keep defaults")
	assert.Len(t, cfg.Archetypes, 4)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte("arena: [not, a, map"))
	assert.Error(t, err)
}

func TestValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BrawlerConfig)
	}{
		{"zero arena", func(c *BrawlerConfig) { c.Arena.Width = 0 }},
		{"negative entity", func(c *BrawlerConfig) { c.Arena.EntityHeight = -1 }},
		{"ground below arena", func(c *BrawlerConfig) { c.Arena.GroundLevel = 900 }},
		{"zero gravity", func(c *BrawlerConfig) { c.Physics.Gravity = 0 }},
		{"negative cooldown", func(c *BrawlerConfig) { c.Combat.CooldownTicks = -1 }},
		{"wander chance above one", func(c *BrawlerConfig) { c.AI.WanderChance = 1.5 }},
		{"no levels", func(c *BrawlerConfig) { c.Waves.MaxLevel = 0 }},
		{"inverted spawn range", func(c *BrawlerConfig) { c.Waves.SpawnMinX = 800; c.Waves.SpawnMaxX = 100 }},
		{"enemy without health", func(c *BrawlerConfig) { c.Enemy.MaxHealth = 0 }},
		{"archetype without health", func(c *BrawlerConfig) { c.Archetypes[0].MaxHealth = 0 }},
		{"duplicate archetype", func(c *BrawlerConfig) { c.Archetypes[1].ID = c.Archetypes[0].ID }},
		{"no archetypes", func(c *BrawlerConfig) { c.Archetypes = nil }},
		{"negative modifier", func(c *BrawlerConfig) { c.Difficulty.Hard = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultBrawlerConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestLoadBrawlerCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "brawler.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ai:\n  chase_threshold: 150\n"), 0o644))

	cfg, err := LoadBrawler(path)
	require.NoError(t, err)
	assert.Equal(t, 150.0, cfg.AI.ChaseThreshold)
}

func TestLoadBrawlerCustomPathErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadBrawler(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("enemy:\n  max_health: 0\n"), 0o644))
	cfg, err := LoadBrawler(bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidConfig))
	assert.Equal(t, DefaultBrawlerConfig(), cfg, "falls back to defaults on error")
}

func TestApplyTurnBasedProfile(t *testing.T) {
	cfg := DefaultBrawlerConfig()
	ApplyTurnBasedProfile(&cfg)

	assert.Equal(t, 3, cfg.Combat.CooldownTicks)
	assert.Equal(t, 3.0, cfg.Player.MoveScale)
	assert.NoError(t, cfg.Validate())
}

func TestParseDifficulty(t *testing.T) {
	tests := []struct {
		in       string
		expected DifficultyPreset
		wantErr  bool
	}{
		{"", DifficultyNormal, false},
		{"easy", DifficultyEasy, false},
		{"Normal", DifficultyNormal, false},
		{" HARD ", DifficultyHard, false},
		{"nightmare", "", true},
	}

	for _, tt := range tests {
		got, err := ParseDifficulty(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.expected, got, tt.in)
	}
}

func TestDifficultyModifier(t *testing.T) {
	table := DefaultBrawlerConfig().Difficulty

	assert.Equal(t, 0.7, table.Modifier(DifficultyEasy))
	assert.Equal(t, 1.0, table.Modifier(DifficultyNormal))
	assert.Equal(t, 1.3, table.Modifier(DifficultyHard))
	assert.Equal(t, 1.0, table.Modifier("bogus"))
}
