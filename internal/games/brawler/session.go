// Package brawler implements a side-scrolling beat-'em-up: a fixed arena
// where the player fights escalating waves of enemies.
//
// The simulation lives in Session and advances only through Step, one
// command at a time, with no timers of its own. Game wraps a session for
// the platform, either stepping every tick (real-time) or once per player
// action (turn-based).
package brawler

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-brawler/internal/config"
	"github.com/vovakirdan/tui-brawler/internal/core"
)

// PlayerID is the entity ID of the player. Enemies are numbered from 1 in
// spawn order across the whole run.
const PlayerID = 0

// LogCapacity is the number of events kept in the rolling action log.
const LogCapacity = 10

// Session owns the full state of one run. It is not safe for concurrent
// use; hosts sharing a session between goroutines must serialize Step.
type Session struct {
	cfg     config.BrawlerConfig
	physics Physics
	combat  Combat
	ai      AI
	seed    int64
	rng     *RNG

	phase      Phase
	player     *Entity
	enemies    []*Entity // Spawn order
	level      int
	score      int
	tick       int
	defeated   int // Enemies pruned during the current wave
	nextID     int
	difficulty config.DifficultyPreset
	modifier   float64

	pending []Event // Events of the step in progress
	log     []Event
}

// NewSession validates cfg and returns a session waiting in the menu.
func NewSession(cfg config.BrawlerConfig, seed int64) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("brawler: cannot create session: %w", err)
	}
	s := &Session{
		cfg:     cfg,
		physics: NewPhysics(cfg),
		combat:  NewCombat(cfg),
		ai:      NewAI(cfg),
		seed:    seed,
	}
	s.clear()
	return s, nil
}

// clear puts the session into its pristine menu state.
func (s *Session) clear() {
	s.rng = NewRNG(s.seed)
	s.phase = PhaseMenu
	s.player = nil
	s.enemies = nil
	s.level = 1
	s.score = 0
	s.tick = 0
	s.defeated = 0
	s.nextID = PlayerID + 1
	s.difficulty = config.DifficultyNormal
	s.modifier = s.cfg.Difficulty.Modifier(config.DifficultyNormal)
	s.pending = nil
	s.log = nil
}

// Reset starts a new run with the chosen archetype and difficulty.
// From a terminal phase the session passes through the menu first.
// Resetting a run in progress is rejected with ErrInvalidCommand.
func (s *Session) Reset(archetype string, difficulty config.DifficultyPreset) error {
	a, ok := s.cfg.Archetype(archetype)
	if !ok {
		return fmt.Errorf("%w: unknown archetype %q", ErrInvalidConfig, archetype)
	}
	preset, err := config.ParseDifficulty(string(difficulty))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	switch s.phase {
	case PhaseMenu:
	case PhaseGameOver, PhaseVictory:
		s.setPhase(PhaseMenu)
	default:
		return fmt.Errorf("%w: reset while %s", ErrInvalidCommand, s.phase)
	}

	s.clear()
	s.difficulty = preset
	s.modifier = s.cfg.Difficulty.Modifier(preset)

	arena := s.cfg.Arena
	start := core.Vec2{
		X: core.ClampF(s.cfg.Player.StartX, 0, arena.Width-arena.EntityWidth),
		Y: arena.GroundLevel,
	}
	s.player = newEntity(PlayerID, RolePlayer, a.StatBlock, start, arena)
	s.player.Archetype = a.ID

	s.spawnWave()
	s.setPhase(PhasePlaying)
	s.flush()
	return nil
}

// ReturnToMenu leaves a finished run. Only legal from GameOver or Victory.
func (s *Session) ReturnToMenu() error {
	if !s.phase.Terminal() {
		return fmt.Errorf("%w: return to menu while %s", ErrInvalidCommand, s.phase)
	}
	s.setPhase(PhaseMenu)
	s.clear()
	return nil
}

// Step advances the simulation by one command. Outside the Playing phase,
// or for an unknown command, it returns ErrInvalidCommand and changes nothing.
func (s *Session) Step(cmd Command) (StepResult, error) {
	if s.phase != PhasePlaying {
		return s.result(nil), fmt.Errorf("%w: %s while %s", ErrInvalidCommand, cmd, s.phase)
	}
	if !cmd.Valid() {
		return s.result(nil), fmt.Errorf("%w: %s", ErrInvalidCommand, cmd)
	}

	s.tick++

	// A player already down ends the run whatever was queued.
	if !s.player.IsAlive() {
		s.setPhase(PhaseGameOver)
		return s.result(s.flush()), nil
	}

	s.applyCommand(cmd)
	s.applyGravity()
	s.runAI()
	s.pruneDefeated()
	s.evaluatePhase()
	s.tickCooldowns()

	return s.result(s.flush()), nil
}

// applyCommand executes the player's command.
func (s *Session) applyCommand(cmd Command) {
	p := s.player
	switch cmd {
	case CmdMoveLeft, CmdMoveRight, CmdMoveUp, CmdMoveDown:
		s.physics.Move(p, cmd.direction(), float64(p.MoveSpeed)*s.cfg.Player.MoveScale)
	case CmdJump:
		if s.physics.Jump(p) {
			s.emit(Event{Kind: EventJump, Actor: p.ID, Target: NoTarget})
		}
	case CmdAttack:
		target := s.nearestEnemy()
		res := s.combat.AttemptAttack(p, target, 1.0)
		s.emitAttack(p, target, res)
	}
}

// nearestEnemy returns the closest live enemy, earliest spawn on ties,
// or nil when the wave is empty.
func (s *Session) nearestEnemy() *Entity {
	var nearest *Entity
	best := math.Inf(1)
	for _, e := range s.enemies {
		if !e.IsAlive() {
			continue
		}
		if d := Distance(s.player, e); d < best {
			best = d
			nearest = e
		}
	}
	return nearest
}

func (s *Session) applyGravity() {
	s.physics.ApplyGravity(s.player)
	for _, e := range s.enemies {
		if e.IsAlive() {
			s.physics.ApplyGravity(e)
		}
	}
}

// runAI lets every live enemy act, in spawn order.
func (s *Session) runAI() {
	for _, e := range s.enemies {
		if !e.IsAlive() {
			continue
		}
		if !s.player.IsAlive() {
			return
		}

		switch s.ai.Decide(e, s.player) {
		case TacticAttack:
			res := s.combat.AttemptAttack(e, s.player, s.modifier)
			s.emitAttack(e, s.player, res)
		case TacticChase:
			s.physics.Move(e, ChaseDirection(e, s.player), float64(e.MoveSpeed))
		case TacticWander:
			roll := s.ai.Wander(s.rng, e.OnGround)
			if roll.Move != DirNone {
				s.physics.Move(e, roll.Move, float64(e.MoveSpeed))
			}
			if roll.Jump {
				s.physics.Jump(e)
			}
		}
	}
}

// pruneDefeated removes dead enemies and credits their points.
func (s *Session) pruneDefeated() {
	points := s.cfg.Combat.PointsPerEnemy
	alive := s.enemies[:0]
	for _, e := range s.enemies {
		if e.IsAlive() {
			alive = append(alive, e)
			continue
		}
		s.score += points
		s.defeated++
		s.emit(Event{Kind: EventDefeat, Actor: e.ID, Target: NoTarget, Points: points, Level: s.level})
	}
	clear(s.enemies[len(alive):])
	s.enemies = alive
}

// evaluatePhase applies end-of-step transitions.
func (s *Session) evaluatePhase() {
	if !s.player.IsAlive() {
		s.setPhase(PhaseGameOver)
		return
	}
	if len(s.enemies) > 0 {
		return
	}

	s.setPhase(PhaseLevelComplete)
	s.emit(Event{
		Kind:   EventWave,
		Actor:  PlayerID,
		Target: NoTarget,
		Level:  s.level,
		Points: s.defeated * s.cfg.Combat.PointsPerEnemy,
	})

	if s.level >= s.cfg.Waves.MaxLevel {
		s.setPhase(PhaseVictory)
		return
	}

	s.level++
	s.player.Heal(s.cfg.Waves.LevelUpHeal)
	s.spawnWave()
	s.emit(Event{Kind: EventLevelUp, Actor: PlayerID, Target: NoTarget, Level: s.level})
	s.setPhase(PhasePlaying)
}

// tickCooldowns counts every cooldown down and lowers attack flags that
// were not raised this step.
func (s *Session) tickCooldowns() {
	tick := func(e *Entity) {
		if e.Cooldown > 0 {
			e.Cooldown--
		}
		if !e.swung {
			e.IsAttacking = false
		}
		e.swung = false
	}
	tick(s.player)
	for _, e := range s.enemies {
		tick(e)
	}
}

// WaveSize returns the number of enemies spawned at a level.
func (s *Session) WaveSize(level int) int {
	return level + s.cfg.Waves.BaseSize
}

// spawnWave replaces the enemy list with a fresh wave for the current level.
func (s *Session) spawnWave() {
	arena := s.cfg.Arena
	waves := s.cfg.Waves
	n := s.WaveSize(s.level)
	span := int(waves.SpawnMaxX - waves.SpawnMinX)

	s.enemies = make([]*Entity, 0, n)
	for range n {
		x := waves.SpawnMinX + float64(s.rng.Intn(span+1))
		pos := core.Vec2{
			X: core.ClampF(x, 0, arena.Width-arena.EntityWidth),
			Y: arena.GroundLevel,
		}
		e := newEntity(s.nextID, RoleEnemy, s.cfg.Enemy, pos, arena)
		e.Facing = FacingLeft
		s.nextID++
		s.enemies = append(s.enemies, e)
	}
	s.defeated = 0
}

// setPhase moves along a legal edge. Any other edge is a bug in the
// director, not a runtime condition.
func (s *Session) setPhase(to Phase) {
	if !CanTransition(s.phase, to) {
		panic(fmt.Sprintf("brawler: illegal phase transition %s -> %s", s.phase, to))
	}
	s.phase = to
	s.emit(Event{Kind: EventPhase, Actor: PlayerID, Target: NoTarget, Phase: to, Level: s.level})
}

func (s *Session) emitAttack(attacker, defender *Entity, res AttackResult) {
	target := NoTarget
	if defender != nil {
		target = defender.ID
	}
	s.emit(Event{
		Kind:    EventAttack,
		Actor:   attacker.ID,
		Target:  target,
		Outcome: res.Outcome,
		Damage:  res.Damage,
	})
}

// emit records an event for the current step and the rolling log.
// Repeated identical rejections collapse into one log line.
func (s *Session) emit(e Event) {
	e.Tick = s.tick
	s.pending = append(s.pending, e)

	if n := len(s.log); n > 0 && isRepeatRejection(s.log[n-1], e) {
		s.log[n-1] = e
		return
	}
	s.log = append(s.log, e)
	if len(s.log) > LogCapacity {
		s.log = append(s.log[:0], s.log[len(s.log)-LogCapacity:]...)
	}
}

func isRepeatRejection(prev, next Event) bool {
	return prev.Kind == EventAttack && next.Kind == EventAttack &&
		prev.Outcome != OutcomeHit && prev.Outcome == next.Outcome &&
		prev.Actor == next.Actor
}

// flush hands out the events of the finished step.
func (s *Session) flush() []Event {
	events := s.pending
	s.pending = nil
	return events
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Level returns the current level, starting at 1.
func (s *Session) Level() int { return s.level }

// Score returns the points earned this run.
func (s *Session) Score() int { return s.score }

// Tick returns the number of steps taken this run.
func (s *Session) Tick() int { return s.tick }

// Difficulty returns the difficulty preset of the run.
func (s *Session) Difficulty() config.DifficultyPreset { return s.difficulty }

// DamageModifier returns the multiplier applied to enemy hits on the player.
func (s *Session) DamageModifier() float64 { return s.modifier }

// Config returns the configuration the session was built with.
func (s *Session) Config() config.BrawlerConfig { return s.cfg }

// Seed returns the RNG seed used for every run of this session.
func (s *Session) Seed() int64 { return s.seed }

// Archetype returns the player's archetype ID, or "" in the menu.
func (s *Session) Archetype() string {
	if s.player == nil {
		return ""
	}
	return s.player.Archetype
}

// Player returns a snapshot of the player. It is the zero value in the menu.
func (s *Session) Player() EntitySnapshot {
	if s.player == nil {
		return EntitySnapshot{}
	}
	return snapshotOf(s.player)
}

// Enemies returns snapshots of the current wave in spawn order.
func (s *Session) Enemies() []EntitySnapshot {
	out := make([]EntitySnapshot, len(s.enemies))
	for i, e := range s.enemies {
		out[i] = snapshotOf(e)
	}
	return out
}

// Log returns the most recent events, oldest first.
func (s *Session) Log() []Event {
	out := make([]Event, len(s.log))
	copy(out, s.log)
	return out
}
