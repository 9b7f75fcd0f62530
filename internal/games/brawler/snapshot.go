package brawler

import (
	"math"
)

// EntitySnapshot is a read-only copy of an entity for renderers and logs.
type EntitySnapshot struct {
	ID          int
	Role        Role
	X, Y        float64
	Width       float64
	Height      float64
	VelocityY   float64
	Health      int
	MaxHealth   int
	AttackPower int
	MoveSpeed   int
	IsAttacking bool
	Cooldown    int
	IsJumping   bool
	OnGround    bool
	Facing      Facing
}

func snapshotOf(e *Entity) EntitySnapshot {
	return EntitySnapshot{
		ID:          e.ID,
		Role:        e.Role,
		X:           e.Pos.X,
		Y:           e.Pos.Y,
		Width:       e.Width,
		Height:      e.Height,
		VelocityY:   e.VelocityY,
		Health:      e.Health,
		MaxHealth:   e.MaxHealth,
		AttackPower: e.AttackPower,
		MoveSpeed:   e.MoveSpeed,
		IsAttacking: e.IsAttacking,
		Cooldown:    e.Cooldown,
		IsJumping:   e.IsJumping,
		OnGround:    e.OnGround,
		Facing:      e.Facing,
	}
}

// HealthRatio returns health as a fraction of MaxHealth in [0, 1].
func (e EntitySnapshot) HealthRatio() float64 {
	if e.MaxHealth <= 0 {
		return 0
	}
	return max(0, min(1, float64(e.Health)/float64(e.MaxHealth)))
}

// StepResult reports the session after one step.
type StepResult struct {
	Tick    int
	Phase   Phase
	Level   int
	Score   int
	Player  EntitySnapshot
	Enemies []EntitySnapshot
	Events  []Event // Events produced by this step only
}

func (s *Session) result(events []Event) StepResult {
	return StepResult{
		Tick:    s.tick,
		Phase:   s.phase,
		Level:   s.level,
		Score:   s.score,
		Player:  s.Player(),
		Enemies: s.Enemies(),
		Events:  events,
	}
}

// Snapshot contains the complete simulation state in primitive form,
// used for determinism checks and replay verification.
type Snapshot struct {
	Tick       int
	Phase      Phase
	Level      int
	Score      int
	Defeated   int
	NextID     int
	Archetype  string
	Difficulty string
	Player     EntitySnapshot
	Enemies    []EntitySnapshot
	RNGState   uint64
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Tick:       s.tick,
		Phase:      s.phase,
		Level:      s.level,
		Score:      s.score,
		Defeated:   s.defeated,
		NextID:     s.nextID,
		Archetype:  s.Archetype(),
		Difficulty: string(s.difficulty),
		Player:     s.Player(),
		Enemies:    s.Enemies(),
		RNGState:   s.rng.State(),
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := uint64(snap.Tick)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Phase)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Level)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score)    //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Defeated) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.NextID)   //#nosec G115 -- hash computation
	for _, r := range snap.Archetype + "/" + snap.Difficulty {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	h = hashEntity(h, snap.Player)
	for _, e := range snap.Enemies {
		h = hashEntity(h, e)
	}

	return h*31 + snap.RNGState
}

func hashEntity(h uint64, e EntitySnapshot) uint64 {
	for _, v := range []int{e.ID, e.Health, e.MaxHealth, e.Cooldown, int(e.Facing)} {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}
	for _, f := range []float64{e.X, e.Y, e.VelocityY} {
		h = h*31 + math.Float64bits(f)
	}
	for _, b := range []bool{e.IsAttacking, e.IsJumping, e.OnGround} {
		if b {
			h = h*31 + 1
		} else {
			h *= 31
		}
	}
	return h
}
