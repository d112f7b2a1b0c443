package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Cloud is background decoration. It has no effect on gameplay.
type Cloud struct {
	X, Y  float64
	Speed int
}

// newCloud places a cloud off the right edge. Its speed is drawn once and
// kept for the cloud's lifetime.
func newCloud(cfg config.Config, rng RandomSource) Cloud {
	var c Cloud
	c.respawn(cfg, rng)
	c.Speed = rng.IntRange(cfg.Clouds.MinSpeed, cfg.Clouds.MaxSpeed)
	return c
}

func (c *Cloud) respawn(cfg config.Config, rng RandomSource) {
	cl := cfg.Clouds
	c.X = cfg.World.Width + float64(rng.IntRange(0, cl.RespawnSpread))
	c.Y = float64(rng.IntRange(cl.MinY, cl.MaxY))
}

// update drifts the cloud left and recycles it once it is off-screen.
func (c *Cloud) update(cfg config.Config, rng RandomSource) {
	c.X -= float64(c.Speed)
	if c.X+cfg.Clouds.Size.W < 0 {
		c.respawn(cfg, rng)
	}
}

// Bounds returns the cloud rectangle.
func (c Cloud) Bounds(size config.Size) core.Rect {
	return core.NewRect(c.X, c.Y, size.W, size.H)
}
