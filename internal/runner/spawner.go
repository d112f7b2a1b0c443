package runner

import "github.com/vovakirdan/dino-runner/internal/config"

// Spawner schedules obstacle births. Each waiting period lasts a number of
// ticks drawn uniformly from [Spawn.MinTicks, Spawn.MaxTicks] when the period
// starts; the tick that reaches it produces one obstacle.
type Spawner struct {
	cfg config.Config
	rng RandomSource

	counter   int
	threshold int
}

// NewSpawner creates a spawner and starts its first waiting period.
func NewSpawner(cfg config.Config, rng RandomSource) *Spawner {
	s := &Spawner{cfg: cfg, rng: rng}
	s.Reset()
	return s
}

// Reset clears the tick counter and draws a fresh waiting period.
// The random source is not rewound, so a restarted session sees new draws.
func (s *Spawner) Reset() {
	s.counter = 0
	s.threshold = s.rng.IntRange(s.cfg.Spawn.MinTicks, s.cfg.Spawn.MaxTicks)
}

// MaybeSpawn advances the timer by one tick and returns a new obstacle
// when the waiting period is over.
func (s *Spawner) MaybeSpawn(score int) (Obstacle, bool) {
	s.counter++
	if s.counter < s.threshold {
		return Obstacle{}, false
	}

	ob := s.pick(score)
	s.Reset()
	return ob, true
}

// pick selects the obstacle type and variant.
func (s *Spawner) pick(score int) Obstacle {
	sp := s.cfg.Spawn
	obs := s.cfg.Obstacles
	u := s.rng.Float64()

	switch {
	case score > sp.BirdMinScore && u < sp.BirdChance:
		return newBird(s.cfg, s.rng.IntRange(0, len(obs.BirdBands)-1))
	case u < sp.SmallChance:
		return newSmallCactus(s.cfg, s.rng.IntRange(1, len(obs.Small)))
	default:
		return newLargeCactus(s.cfg, s.rng.IntRange(1, len(obs.Large)))
	}
}

// Remaining returns how many ticks are left in the current waiting period.
func (s *Spawner) Remaining() int {
	return s.threshold - s.counter
}
