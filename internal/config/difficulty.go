package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value into a preset. Empty means no preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", s)
	}
}

// ApplyPreset adjusts the speed ramp for a difficulty preset.
// Normal and empty leave the configuration as loaded.
func ApplyPreset(cfg *Config, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Speed.Initial *= 0.8
		cfg.Speed.Step *= 0.5
	case DifficultyHard:
		cfg.Speed.Initial *= 1.4
		cfg.Speed.Step *= 1.5
	case DifficultyFixed:
		cfg.Speed.Step = 0
	}
	if cfg.Speed.Initial > cfg.Speed.Max {
		cfg.Speed.Initial = cfg.Speed.Max
	}
}
