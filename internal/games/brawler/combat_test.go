package brawler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

func testCombat() Combat {
	return NewCombat(config.DefaultBrawlerConfig())
}

func TestTankHitsEnemy(t *testing.T) {
	c := testCombat()
	tank := testEntity(RolePlayer, 100)
	enemy := testEntity(RoleEnemy, 140) // 40 apart

	res := c.AttemptAttack(tank, enemy, 1.0)

	assert.Equal(t, OutcomeHit, res.Outcome)
	assert.Equal(t, 15, res.Damage)
	assert.Equal(t, 15, enemy.Health)
	assert.Equal(t, 20, tank.Cooldown)
	assert.True(t, tank.IsAttacking)
}

func TestAttackOnCooldown(t *testing.T) {
	c := testCombat()
	tank := testEntity(RolePlayer, 100)
	enemy := testEntity(RoleEnemy, 140)
	tank.Cooldown = 5

	res := c.AttemptAttack(tank, enemy, 1.0)

	assert.Equal(t, OutcomeOnCooldown, res.Outcome)
	assert.Equal(t, 0, res.Damage)
	assert.Equal(t, 30, enemy.Health)
	assert.Equal(t, 5, tank.Cooldown, "rejection leaves cooldown alone")
	assert.False(t, tank.IsAttacking)
}

func TestAttackCooldownCheckedBeforeRange(t *testing.T) {
	c := testCombat()
	tank := testEntity(RolePlayer, 100)
	enemy := testEntity(RoleEnemy, 600)
	tank.Cooldown = 1

	assert.Equal(t, OutcomeOnCooldown, c.AttemptAttack(tank, enemy, 1.0).Outcome)
}

func TestAttackOutOfRange(t *testing.T) {
	c := testCombat()
	tank := testEntity(RolePlayer, 100)
	enemy := testEntity(RoleEnemy, 161) // 61 apart

	res := c.AttemptAttack(tank, enemy, 1.0)

	assert.Equal(t, OutcomeOutOfRange, res.Outcome)
	assert.Equal(t, 0, res.Damage)
	assert.Equal(t, 30, enemy.Health)
	assert.Equal(t, 0, tank.Cooldown)
}

func TestAttackWithoutDefender(t *testing.T) {
	c := testCombat()
	tank := testEntity(RolePlayer, 100)

	assert.Equal(t, OutcomeOutOfRange, c.AttemptAttack(tank, nil, 1.0).Outcome)
}

func TestEnemyDamageScalesWithDifficulty(t *testing.T) {
	table := config.DefaultBrawlerConfig().Difficulty

	tests := []struct {
		preset   config.DifficultyPreset
		expected int
	}{
		{config.DifficultyEasy, 5},   // int(8 * 0.7)
		{config.DifficultyNormal, 8}, // int(8 * 1.0)
		{config.DifficultyHard, 10},  // int(8 * 1.3)
	}

	for _, tt := range tests {
		c := testCombat()
		enemy := testEntity(RoleEnemy, 140)
		player := testEntity(RolePlayer, 100)

		res := c.AttemptAttack(enemy, player, table.Modifier(tt.preset))
		assert.Equal(t, tt.expected, res.Damage, tt.preset)
		assert.Equal(t, 120-tt.expected, player.Health, tt.preset)
	}
}

func TestAttackTurnsAttacker(t *testing.T) {
	c := testCombat()
	enemy := testEntity(RoleEnemy, 140)
	player := testEntity(RolePlayer, 100)
	enemy.Facing = FacingRight

	c.AttemptAttack(enemy, player, 1.0)
	assert.Equal(t, FacingLeft, enemy.Facing)
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "hit", OutcomeHit.String())
	assert.Equal(t, "on_cooldown", OutcomeOnCooldown.String())
	assert.Equal(t, "out_of_range", OutcomeOutOfRange.String())
}
