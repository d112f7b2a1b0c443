package config

import (
	_ "embed"
)

//go:embed defaults/runner.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
// It matches defaults/runner.yaml.
func Default() Config {
	return Config{
		World: World{
			Width:       1000,
			Height:      400,
			GroundY:     380,
			GroundWidth: 2400,
		},
		Physics: Physics{
			Gravity:          0.6,
			JumpVelocity:     -12,
			ShortHopVelocity: -3,
		},
		Player: Player{
			X:          50,
			FrameTicks: 6,
			RunFrames:  2,
			DuckFrames: 2,
			Run:        Size{W: 44, H: 47},
			Duck:       Size{W: 59, H: 30},
			Jump:       Size{W: 44, H: 47},
			Dead:       Size{W: 44, H: 47},
		},
		Obstacles: Obstacles{
			Small:          []Size{{W: 17, H: 35}, {W: 34, H: 35}, {W: 51, H: 35}},
			Large:          []Size{{W: 25, H: 50}, {W: 50, H: 50}},
			Bird:           Size{W: 46, H: 40},
			BirdBands:      []float64{375, 345, 310},
			BirdFrames:     2,
			BirdFrameTicks: 11,
			HitboxMargin:   5,
		},
		Spawn: Spawn{
			MinTicks:     60,
			MaxTicks:     100,
			BirdMinScore: 10,
			BirdChance:   0.2,
			SmallChance:  0.6,
		},
		Speed: Speed{
			Initial: 5,
			Max:     13,
			Step:    0.5,
			Every:   5,
		},
		Clouds: Clouds{
			Count:         3,
			MinY:          50,
			MaxY:          150,
			MinSpeed:      1,
			MaxSpeed:      3,
			RespawnSpread: 300,
			Size:          Size{W: 46, H: 14},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
