// Package config provides YAML-based runner configuration loading,
// validation and difficulty presets.
//
// A Config is an immutable value: the simulation copies it at construction,
// so differently tuned sessions can run side by side.
package config

// Config contains all tunables of the runner simulation.
type Config struct {
	World     World     `yaml:"world"`
	Physics   Physics   `yaml:"physics"`
	Player    Player    `yaml:"player"`
	Obstacles Obstacles `yaml:"obstacles"`
	Spawn     Spawn     `yaml:"spawn"`
	Speed     Speed     `yaml:"speed"`
	Clouds    Clouds    `yaml:"clouds"`
}

// World defines the playfield in world units (sprite pixels).
type World struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	GroundY     float64 `yaml:"ground_y"`     // Baseline the player lands on
	GroundWidth float64 `yaml:"ground_width"` // Length of one ground strip before it repeats
}

// Physics defines the vertical motion of the player. Y grows downward.
type Physics struct {
	Gravity          float64 `yaml:"gravity"`            // Added to velocity every airborne tick
	JumpVelocity     float64 `yaml:"jump_velocity"`      // Launch velocity, negative = up
	ShortHopVelocity float64 `yaml:"short_hop_velocity"` // Ascent is clamped here once jump is released
}

// Size is a sprite bounding box.
type Size struct {
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Player defines the player character.
type Player struct {
	X          float64 `yaml:"x"`
	RunOffset  float64 `yaml:"run_offset"`  // Height above the ground baseline while running
	DuckOffset float64 `yaml:"duck_offset"` // Height above the ground baseline while ducking
	FrameTicks int     `yaml:"frame_ticks"` // Ticks per run/duck animation frame
	RunFrames  int     `yaml:"run_frames"`
	DuckFrames int     `yaml:"duck_frames"`
	Run        Size    `yaml:"run"`
	Duck       Size    `yaml:"duck"`
	Jump       Size    `yaml:"jump"`
	Dead       Size    `yaml:"dead"`
}

// Obstacles defines obstacle sprites and hitboxes.
// Small and Large list one size per grouped-sprite count (index 0 = one cactus).
type Obstacles struct {
	Small          []Size    `yaml:"small"`
	Large          []Size    `yaml:"large"`
	Bird           Size      `yaml:"bird"`
	BirdBands      []float64 `yaml:"bird_bands"` // Bottom y of each flight band, low to high
	BirdFrames     int       `yaml:"bird_frames"`
	BirdFrameTicks int       `yaml:"bird_frame_ticks"`
	HitboxMargin   float64   `yaml:"hitbox_margin"` // Inset applied on every side of every hitbox
}

// Spawn defines obstacle scheduling.
type Spawn struct {
	MinTicks     int     `yaml:"min_ticks"` // Inclusive lower bound of the waiting period
	MaxTicks     int     `yaml:"max_ticks"` // Inclusive upper bound of the waiting period
	BirdMinScore int     `yaml:"bird_min_score"`
	BirdChance   float64 `yaml:"bird_chance"`
	SmallChance  float64 `yaml:"small_chance"`
}

// Speed defines the world speed and its ramp.
type Speed struct {
	Initial float64 `yaml:"initial"`
	Max     float64 `yaml:"max"`
	Step    float64 `yaml:"step"`  // Added each time the score reaches a multiple of Every
	Every   int     `yaml:"every"` // Score interval between speed steps
}

// Clouds defines the decorative background layer.
type Clouds struct {
	Count         int  `yaml:"count"`
	MinY          int  `yaml:"min_y"`
	MaxY          int  `yaml:"max_y"`
	MinSpeed      int  `yaml:"min_speed"`
	MaxSpeed      int  `yaml:"max_speed"`
	RespawnSpread int  `yaml:"respawn_spread"` // Max extra distance beyond the right edge on respawn
	Size          Size `yaml:"size"`
}

// MaxJumpExtent returns how far above the baseline a fully held jump rises.
func (p Physics) MaxJumpExtent() float64 {
	if p.Gravity <= 0 || p.JumpVelocity >= 0 {
		return 0
	}
	extent := 0.0
	for v := p.JumpVelocity + p.Gravity; v < 0; v += p.Gravity {
		extent -= v
	}
	return extent
}
