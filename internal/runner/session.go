// Package runner implements the simulation kernel of an endless runner:
// player physics and animation, obstacle scheduling and motion, collision,
// scoring and the speed ramp.
//
// Everything is driven by Session.Step, called once per fixed tick by an
// external driver. Nothing here blocks, logs or touches the terminal.
package runner

import (
	"fmt"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Phase is the session state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	if p == PhaseGameOver {
		return "GameOver"
	}
	return "Playing"
}

// WorldState is the global part of the simulation.
type WorldState struct {
	Speed   float64 // Non-decreasing within a session, capped at Speed.Max
	Score   int     // Obstacles cleared
	Phase   Phase
	GroundX float64 // Ground strip scroll offset, in (-GroundWidth, 0]
}

// StepResult describes what happened during one tick.
type StepResult struct {
	World   WorldState
	Spawned bool // A new obstacle entered this tick
	Cleared int  // Obstacles that left the screen this tick
	Crashed bool // This tick ended the session
}

// Session owns one player, the world state and the active obstacles.
// It is not safe for concurrent use; the driver calls it from one goroutine.
type Session struct {
	cfg   config.Config
	rng   RandomSource
	decor RandomSource

	player    *Player
	world     WorldState
	obstacles []Obstacle
	clouds    []Cloud
	spawner   *Spawner

	ticks int
	best  int
}

// Option customizes a Session.
type Option func(*Session)

// WithRandom sets the gameplay random source (spawn timing and selection).
func WithRandom(src RandomSource) Option {
	return func(s *Session) {
		s.rng = src
	}
}

// WithDecorRandom sets the random source used for clouds, keeping the
// gameplay draw sequence independent of decoration.
func WithDecorRandom(src RandomSource) Option {
	return func(s *Session) {
		s.decor = src
	}
}

// NewSession validates cfg and starts a session in the Playing phase.
// Draws come from sources seeded with seed unless overridden by options.
func NewSession(cfg config.Config, seed int64, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("runner: %w", err)
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = NewSeededSource(seed)
	}
	if s.decor == nil {
		s.decor = NewSeededSource(seed + 1)
	}

	s.clouds = make([]Cloud, cfg.Clouds.Count)
	for i := range s.clouds {
		s.clouds[i] = newCloud(cfg, s.decor)
	}
	s.spawner = NewSpawner(cfg, s.rng)
	s.reset()
	return s, nil
}

// reset puts the session into a fresh Playing state.
func (s *Session) reset() {
	s.player = NewPlayer(s.cfg)
	s.obstacles = nil
	s.world = WorldState{
		Speed:   s.cfg.Speed.Initial,
		Phase:   PhasePlaying,
		GroundX: s.world.GroundX,
	}
}

// Restart begins a new run after a game over. It reports whether the
// session was restarted; it is ignored while Playing.
func (s *Session) Restart() bool {
	if s.world.Phase != PhaseGameOver {
		return false
	}
	s.reset()
	s.spawner.Reset()
	return true
}

// Step advances the simulation by one tick. A finished session is frozen
// until Restart.
func (s *Session) Step(in core.Intents) StepResult {
	if s.world.Phase != PhasePlaying {
		return StepResult{World: s.world}
	}
	s.ticks++
	var res StepResult

	s.scroll()
	for i := range s.clouds {
		s.clouds[i].update(s.cfg, s.decor)
	}

	if in.JumpRequested {
		s.player.Jump()
	}
	s.player.Update(in)

	if ob, ok := s.spawner.MaybeSpawn(s.world.Score); ok {
		s.obstacles = append(s.obstacles, ob)
		res.Spawned = true
	}

	res.Cleared = s.advanceObstacles()

	if s.collides() {
		s.player.Kill()
		s.world.Phase = PhaseGameOver
		res.Crashed = true
	}

	res.World = s.world
	return res
}

func (s *Session) scroll() {
	s.world.GroundX -= s.world.Speed
	if s.world.GroundX <= -s.cfg.World.GroundWidth {
		s.world.GroundX += s.cfg.World.GroundWidth
	}
}

// advanceObstacles moves every obstacle at this tick's speed and keeps the
// ones still on screen. Each one that leaves scores exactly once.
func (s *Session) advanceObstacles() int {
	speed := s.world.Speed
	kept := make([]Obstacle, 0, len(s.obstacles))
	cleared := 0

	for _, ob := range s.obstacles {
		ob.Update(speed)
		if ob.Passed() {
			cleared++
			s.award()
			continue
		}
		kept = append(kept, ob)
	}

	s.obstacles = kept
	return cleared
}

// award scores one cleared obstacle and applies the speed ramp.
func (s *Session) award() {
	s.world.Score++
	if s.world.Score > s.best {
		s.best = s.world.Score
	}
	if s.world.Score%s.cfg.Speed.Every == 0 {
		s.world.Speed = min(s.world.Speed+s.cfg.Speed.Step, s.cfg.Speed.Max)
	}
}

// collides reports whether any obstacle hits the player.
// The first hit settles it; the rest are not examined.
func (s *Session) collides() bool {
	hitbox := s.player.Hitbox()
	margin := s.cfg.Obstacles.HitboxMargin
	for _, ob := range s.obstacles {
		if hitbox.Intersects(ob.Hitbox(margin)) {
			return true
		}
	}
	return false
}

// World returns the current world state.
func (s *Session) World() WorldState {
	return s.world
}

// Config returns the configuration the session runs with.
func (s *Session) Config() config.Config {
	return s.cfg
}
