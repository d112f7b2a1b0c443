package runner

import (
	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

// PlayerState is the single active state of the player character.
type PlayerState int

const (
	StateRunning PlayerState = iota
	StateDucking
	StateJumping
	StateDead
)

// String returns a human-readable name for the state.
func (s PlayerState) String() string {
	switch s {
	case StateRunning:
		return "Running"
	case StateDucking:
		return "Ducking"
	case StateJumping:
		return "Jumping"
	case StateDead:
		return "Dead"
	default:
		return "Unknown"
	}
}

// Player is the runner: fixed x, vertical physics and a small animation
// state machine. Y is the bottom edge of the sprite.
type Player struct {
	cfg     config.Player
	physics config.Physics
	groundY float64
	margin  float64

	state      PlayerState
	y          float64
	vy         float64
	runFrame   int
	duckFrame  int
	frameTimer int
	bounds     core.Rect
}

// NewPlayer creates a player standing on the ground.
func NewPlayer(cfg config.Config) *Player {
	p := &Player{
		cfg:     cfg.Player,
		physics: cfg.Physics,
		groundY: cfg.World.GroundY,
		margin:  cfg.Obstacles.HitboxMargin,
		state:   StateRunning,
	}
	p.y = p.groundY - p.cfg.RunOffset
	p.updateBounds()
	return p
}

// Jump launches the player if it is running on the ground.
// Jumping, ducking and dead players ignore it.
func (p *Player) Jump() {
	if p.state != StateRunning {
		return
	}
	p.state = StateJumping
	p.vy = p.physics.JumpVelocity
}

// Kill puts the player into the terminal Dead state.
func (p *Player) Kill() {
	p.state = StateDead
	p.vy = 0
	p.updateBounds()
}

// Update advances the player by one tick.
func (p *Player) Update(in core.Intents) {
	switch {
	case p.state == StateDead:
		return

	case p.state == StateJumping:
		p.vy += p.physics.Gravity
		p.y += p.vy

		// Releasing jump early cuts the ascent short.
		if p.vy < p.physics.ShortHopVelocity && !in.JumpHeld {
			p.vy = p.physics.ShortHopVelocity
		}

		if p.y >= p.groundY {
			p.y = p.groundY
			p.vy = 0
			p.state = StateRunning
		}

	case in.DuckHeld:
		p.state = StateDucking
		p.y = p.groundY - p.cfg.DuckOffset
		if p.tickAnimation() {
			p.duckFrame = (p.duckFrame + 1) % p.cfg.DuckFrames
		}

	default:
		p.state = StateRunning
		p.y = p.groundY - p.cfg.RunOffset
		if p.tickAnimation() {
			p.runFrame = (p.runFrame + 1) % p.cfg.RunFrames
		}
	}

	p.updateBounds()
}

// tickAnimation advances the shared frame timer and reports whether
// the active animation should move to its next frame.
func (p *Player) tickAnimation() bool {
	p.frameTimer++
	if p.frameTimer < p.cfg.FrameTicks {
		return false
	}
	p.frameTimer = 0
	return true
}

func (p *Player) updateBounds() {
	size := p.spriteSize()
	p.bounds = core.BottomAnchored(p.cfg.X, p.y, size.W, size.H)
}

func (p *Player) spriteSize() config.Size {
	switch p.state {
	case StateDucking:
		return p.cfg.Duck
	case StateJumping:
		return p.cfg.Jump
	case StateDead:
		return p.cfg.Dead
	default:
		return p.cfg.Run
	}
}

// State returns the active state.
func (p *Player) State() PlayerState { return p.state }

// Y returns the bottom edge of the player sprite.
func (p *Player) Y() float64 { return p.y }

// Velocity returns the vertical velocity (negative = rising).
func (p *Player) Velocity() float64 { return p.vy }

// Bounds returns the sprite bounds for the current pose.
func (p *Player) Bounds() core.Rect { return p.bounds }

// Hitbox returns the inset collision rectangle.
func (p *Player) Hitbox() core.Rect { return p.bounds.Inset(p.margin) }

// Frame returns the animation frame of the current pose.
// Jump and dead poses have a single frame.
func (p *Player) Frame() int {
	switch p.state {
	case StateRunning:
		return p.runFrame
	case StateDucking:
		return p.duckFrame
	default:
		return 0
	}
}
