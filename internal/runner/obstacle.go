package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Kind identifies the obstacle type.
type Kind int

const (
	KindSmallCactus Kind = iota
	KindLargeCactus
	KindBird
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindSmallCactus:
		return "SmallCactus"
	case KindLargeCactus:
		return "LargeCactus"
	case KindBird:
		return "Bird"
	default:
		return "Unknown"
	}
}

// Obstacle is a moving hazard. It is a plain value: the session keeps
// obstacles in a slice and nothing else references them.
//
// Variant is the grouped-sprite count for cacti (1-based) and the flight
// band index for birds (0 = lowest).
type Obstacle struct {
	Kind    Kind
	Variant int
	X       float64 // Left edge
	Bottom  float64
	Size    config.Size

	frame      int
	frameTimer int
	frames     int
	frameTicks int
}

// newSmallCactus builds a group of 1..len(Small) small cacti.
func newSmallCactus(cfg config.Config, group int) Obstacle {
	return Obstacle{
		Kind:    KindSmallCactus,
		Variant: group,
		X:       cfg.World.Width,
		Bottom:  cfg.World.GroundY,
		Size:    cfg.Obstacles.Small[group-1],
	}
}

// newLargeCactus builds a group of 1..len(Large) large cacti.
func newLargeCactus(cfg config.Config, group int) Obstacle {
	return Obstacle{
		Kind:    KindLargeCactus,
		Variant: group,
		X:       cfg.World.Width,
		Bottom:  cfg.World.GroundY,
		Size:    cfg.Obstacles.Large[group-1],
	}
}

// newBird builds a bird flying in the given band.
func newBird(cfg config.Config, band int) Obstacle {
	return Obstacle{
		Kind:       KindBird,
		Variant:    band,
		X:          cfg.World.Width,
		Bottom:     cfg.Obstacles.BirdBands[band],
		Size:       cfg.Obstacles.Bird,
		frames:     cfg.Obstacles.BirdFrames,
		frameTicks: cfg.Obstacles.BirdFrameTicks,
	}
}

// Update moves the obstacle left by the world speed. Birds also flap.
func (o *Obstacle) Update(speed float64) {
	o.X -= speed

	if o.Kind != KindBird {
		return
	}
	o.frameTimer++
	if o.frameTimer >= o.frameTicks {
		o.frameTimer = 0
		o.frame = (o.frame + 1) % o.frames
	}
}

// Bounds returns the sprite rectangle.
func (o Obstacle) Bounds() core.Rect {
	return core.BottomAnchored(o.X, o.Bottom, o.Size.W, o.Size.H)
}

// Hitbox returns the collision rectangle inset by margin on every side.
func (o Obstacle) Hitbox(margin float64) core.Rect {
	return o.Bounds().Inset(margin)
}

// Passed reports whether the right edge has left the screen.
func (o Obstacle) Passed() bool {
	return o.X+o.Size.W < 0
}

// Frame returns the animation frame (always 0 for cacti).
func (o Obstacle) Frame() int {
	return o.frame
}
