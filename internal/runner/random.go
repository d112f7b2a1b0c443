package runner

import "math/rand"

// RandomSource supplies the uniform draws the simulation needs.
// Sessions take it as a capability so tests can script exact sequences.
type RandomSource interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
}

// SeededSource is a RandomSource backed by math/rand.
// The same seed always yields the same draw sequence.
type SeededSource struct {
	rng *rand.Rand
}

// NewSeededSource creates a reproducible random source.
func NewSeededSource(seed int64) *SeededSource {
	return &SeededSource{rng: rand.New(rand.NewSource(seed))}
}

// Float64 returns a uniform draw in [0, 1).
func (s *SeededSource) Float64() float64 {
	return s.rng.Float64()
}

// IntRange returns a uniform integer in [lo, hi].
func (s *SeededSource) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.Intn(hi-lo+1)
}
