package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// Autopilot produces intents for headless runs. It jumps over obstacles that
// reach the running hitbox, ducks under ones that only reach it standing up,
// and ignores the rest. It is a demo driver, not a perfect player.
type Autopilot struct {
	runHitbox  core.Rect
	duckHitbox core.Rect
	leadTicks  float64
}

// NewAutopilot builds an autopilot for the given configuration.
func NewAutopilot(cfg config.Config) *Autopilot {
	p := cfg.Player
	ground := cfg.World.GroundY
	m := cfg.Obstacles.HitboxMargin
	return &Autopilot{
		runHitbox:  core.BottomAnchored(p.X, ground-p.RunOffset, p.Run.W, p.Run.H).Inset(m),
		duckHitbox: core.BottomAnchored(p.X, ground-p.DuckOffset, p.Duck.W, p.Duck.H).Inset(m),
		leadTicks:  6,
	}
}

// Next decides the intents for the coming tick.
func (a *Autopilot) Next(snap Snapshot) core.Intents {
	if snap.Player.Dead {
		return core.Idle()
	}
	if snap.Player.State == StateJumping {
		return core.Intents{JumpHeld: true}
	}

	lookahead := snap.World.Speed * a.leadTicks
	for _, ob := range snap.Obstacles {
		gap := ob.Hitbox.X - a.runHitbox.Right()
		if ob.Hitbox.Right() <= a.runHitbox.X || gap > lookahead {
			continue
		}
		switch {
		case ob.Hitbox.Bottom() <= a.runHitbox.Y:
			continue // passes overhead
		case ob.Hitbox.Bottom() <= a.duckHitbox.Y:
			return core.Intents{DuckHeld: true}
		case gap >= 0:
			return core.Jump()
		}
	}
	return core.Idle()
}
