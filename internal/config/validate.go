package config

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is returned (wrapped) for any configuration that would let
// the simulation run in a degenerate state.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Validate checks the configuration and reports every problem found.
func (c Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.World.Width > 0 && c.World.Height > 0, "world size must be positive, got %vx%v", c.World.Width, c.World.Height)
	check(c.World.GroundY > 0 && c.World.GroundY <= c.World.Height, "world.ground_y %v outside (0, %v]", c.World.GroundY, c.World.Height)
	check(c.World.GroundWidth > 0, "world.ground_width must be positive, got %v", c.World.GroundWidth)

	check(c.Physics.Gravity > 0, "physics.gravity must be positive, got %v", c.Physics.Gravity)
	check(c.Physics.JumpVelocity < 0, "physics.jump_velocity must be negative, got %v", c.Physics.JumpVelocity)
	check(c.Physics.ShortHopVelocity <= 0 && c.Physics.ShortHopVelocity > c.Physics.JumpVelocity,
		"physics.short_hop_velocity must be in (%v, 0], got %v", c.Physics.JumpVelocity, c.Physics.ShortHopVelocity)

	m := c.Obstacles.HitboxMargin
	check(m >= 0, "obstacles.hitbox_margin must not be negative, got %v", m)

	p := c.Player
	check(p.RunOffset >= 0 && p.DuckOffset >= 0, "player offsets must not be negative")
	check(p.FrameTicks > 0, "player.frame_ticks must be positive, got %d", p.FrameTicks)
	check(p.RunFrames > 0, "player.run_frames must not be empty")
	check(p.DuckFrames > 0, "player.duck_frames must not be empty")
	poses := []struct {
		name string
		size Size
	}{{"run", p.Run}, {"duck", p.Duck}, {"jump", p.Jump}, {"dead", p.Dead}}
	for _, pose := range poses {
		check(pose.size.W > 2*m && pose.size.H > 2*m, "player.%s size %vx%v leaves no hitbox after margin %v",
			pose.name, pose.size.W, pose.size.H, m)
	}

	o := c.Obstacles
	check(len(o.Small) > 0, "obstacles.small must not be empty")
	check(len(o.Large) > 0, "obstacles.large must not be empty")
	check(len(o.BirdBands) > 0, "obstacles.bird_bands must not be empty")
	check(o.BirdFrames > 0, "obstacles.bird_frames must not be empty")
	check(o.BirdFrameTicks > 0, "obstacles.bird_frame_ticks must be positive, got %d", o.BirdFrameTicks)
	for i, s := range o.Small {
		check(s.W > 2*m && s.H > 2*m, "obstacles.small[%d] size %vx%v leaves no hitbox", i, s.W, s.H)
	}
	for i, s := range o.Large {
		check(s.W > 2*m && s.H > 2*m, "obstacles.large[%d] size %vx%v leaves no hitbox", i, s.W, s.H)
	}
	check(o.Bird.W > 2*m && o.Bird.H > 2*m, "obstacles.bird size %vx%v leaves no hitbox", o.Bird.W, o.Bird.H)

	s := c.Spawn
	check(s.MinTicks >= 1 && s.MinTicks <= s.MaxTicks, "spawn range [%d, %d] is malformed", s.MinTicks, s.MaxTicks)
	check(s.BirdChance >= 0 && s.BirdChance <= 1, "spawn.bird_chance %v outside [0, 1]", s.BirdChance)
	check(s.SmallChance >= 0 && s.SmallChance <= 1, "spawn.small_chance %v outside [0, 1]", s.SmallChance)

	v := c.Speed
	check(v.Initial >= 0 && v.Max >= 0 && v.Step >= 0, "speed values must not be negative")
	check(v.Initial <= v.Max, "speed.initial %v exceeds speed.max %v", v.Initial, v.Max)
	check(v.Every > 0, "speed.every must be positive, got %d", v.Every)

	cl := c.Clouds
	check(cl.Count >= 0, "clouds.count must not be negative")
	if cl.Count > 0 {
		check(cl.MinY <= cl.MaxY, "clouds y range [%d, %d] is malformed", cl.MinY, cl.MaxY)
		check(cl.MinSpeed >= 1 && cl.MinSpeed <= cl.MaxSpeed, "clouds speed range [%d, %d] is malformed", cl.MinSpeed, cl.MaxSpeed)
		check(cl.Size.W > 0 && cl.Size.H > 0, "clouds size %vx%v must be positive", cl.Size.W, cl.Size.H)
		check(cl.RespawnSpread >= 0, "clouds.respawn_spread must not be negative")
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrInvalidConfig, errors.Join(errs...))
}
