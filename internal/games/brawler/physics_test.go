package brawler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vovakirdan/tui-brawler/internal/config"
)

func testPhysics() Physics {
	return NewPhysics(config.DefaultBrawlerConfig())
}

func TestJumpAndLand(t *testing.T) {
	p := testPhysics()
	e := testEntity(RolePlayer, 100)

	assert.True(t, p.Jump(e))
	assert.Equal(t, -15.0, e.VelocityY)
	assert.False(t, e.OnGround)
	assert.True(t, e.IsJumping)

	p.ApplyGravity(e)
	assert.InDelta(t, -14.2, e.VelocityY, 1e-9)
	assert.InDelta(t, 500-14.2, e.Pos.Y, 1e-9)

	for i := 0; i < 100 && !e.OnGround; i++ {
		p.ApplyGravity(e)
		assert.LessOrEqual(t, e.Pos.Y, 500.0)
	}

	assert.True(t, e.OnGround, "entity should land")
	assert.False(t, e.IsJumping)
	assert.Equal(t, 500.0, e.Pos.Y)
	assert.Equal(t, 0.0, e.VelocityY)
}

func TestJumpRejectedWhenAirborne(t *testing.T) {
	p := testPhysics()
	e := testEntity(RolePlayer, 100)
	e.OnGround = false
	e.VelocityY = -3

	assert.False(t, p.Jump(e))
	assert.Equal(t, -3.0, e.VelocityY, "velocity must not change")
}

func TestGravityIgnoresGroundedEntity(t *testing.T) {
	p := testPhysics()
	e := testEntity(RoleEnemy, 100)
	e.Pos.Y = 300 // Walked up a lane

	p.ApplyGravity(e)
	assert.Equal(t, 300.0, e.Pos.Y)
	assert.Equal(t, 0.0, e.VelocityY)
}

func TestGravityCeiling(t *testing.T) {
	p := testPhysics()
	e := testEntity(RolePlayer, 100)
	e.Pos.Y = 5
	p.Jump(e)

	p.ApplyGravity(e)
	assert.Equal(t, 0.0, e.Pos.Y)
	assert.GreaterOrEqual(t, e.VelocityY, 0.0)
}

func TestMoveClampsToArena(t *testing.T) {
	tests := []struct {
		name      string
		x, y      float64
		dir       Direction
		speed     float64
		expectedX float64
		expectedY float64
	}{
		{"left inside", 100, 500, DirLeft, 5, 95, 500},
		{"left wall", 3, 500, DirLeft, 5, 0, 500},
		{"right inside", 100, 500, DirRight, 5, 105, 500},
		{"right wall", 758, 500, DirRight, 5, 760, 500},
		{"up lane", 100, 500, DirUp, 5, 100, 495},
		{"up top", 100, 2, DirUp, 5, 100, 0},
		{"down below ground", 100, 500, DirDown, 5, 100, 500},
		{"down inside", 100, 300, DirDown, 5, 100, 305},
		{"none", 100, 500, DirNone, 5, 100, 500},
	}

	p := testPhysics()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := testEntity(RolePlayer, tt.x)
			e.Pos.Y = tt.y
			p.Move(e, tt.dir, tt.speed)
			assert.Equal(t, tt.expectedX, e.Pos.X)
			assert.Equal(t, tt.expectedY, e.Pos.Y)
		})
	}
}

func TestMoveSetsFacing(t *testing.T) {
	p := testPhysics()
	e := testEntity(RolePlayer, 100)

	p.Move(e, DirLeft, 1)
	assert.Equal(t, FacingLeft, e.Facing)

	p.Move(e, DirUp, 1)
	assert.Equal(t, FacingLeft, e.Facing, "vertical moves keep facing")

	p.Move(e, DirRight, 1)
	assert.Equal(t, FacingRight, e.Facing)
}

func TestVerticalMoveIgnoredWhileAirborne(t *testing.T) {
	p := testPhysics()
	e := testEntity(RolePlayer, 100)
	p.Jump(e)
	p.ApplyGravity(e)
	y := e.Pos.Y

	p.Move(e, DirDown, 5)
	assert.Equal(t, y, e.Pos.Y)

	p.Move(e, DirRight, 5)
	assert.Equal(t, 105.0, e.Pos.X, "horizontal air control still works")
}

func TestInRange(t *testing.T) {
	a := testEntity(RolePlayer, 100)
	b := testEntity(RoleEnemy, 140)

	assert.Equal(t, 40.0, Distance(a, b))
	assert.True(t, InRange(a, b, 60))

	b.Pos.X = 160
	assert.True(t, InRange(a, b, 60), "range is inclusive")

	b.Pos.X = 161
	assert.False(t, InRange(a, b, 60))

	// Euclidean, not per-axis
	b.Pos.X = 150
	b.Pos.Y = a.Pos.Y - 40
	assert.InDelta(t, 64.03, Distance(a, b), 0.01)
	assert.False(t, InRange(a, b, 60))
}
