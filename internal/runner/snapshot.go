package runner

import "github.com/vovakirdan/dino-runner/internal/core"

// PlayerView is a read-only view of the player for rendering.
type PlayerView struct {
	State  PlayerState
	Frame  int // Animation frame within the state's pose
	Y      float64
	Bounds core.Rect
	Hitbox core.Rect
	Dead   bool
}

// ObstacleView is a read-only view of one obstacle.
type ObstacleView struct {
	Kind    Kind
	Variant int
	Frame   int
	Bounds  core.Rect
	Hitbox  core.Rect
}

// Snapshot is everything the presentation layer needs for one frame.
// It shares no memory with the session.
type Snapshot struct {
	Player    PlayerView
	Obstacles []ObstacleView // Spawn order
	Clouds    []core.Rect
	World     WorldState
	Tick      int // Ticks simulated since the session was created
	Best      int // Best score of this session, across restarts
}

// Snapshot captures the current state.
func (s *Session) Snapshot() Snapshot {
	margin := s.cfg.Obstacles.HitboxMargin

	snap := Snapshot{
		Player: PlayerView{
			State:  s.player.State(),
			Frame:  s.player.Frame(),
			Y:      s.player.Y(),
			Bounds: s.player.Bounds(),
			Hitbox: s.player.Hitbox(),
			Dead:   s.player.State() == StateDead,
		},
		Obstacles: make([]ObstacleView, len(s.obstacles)),
		Clouds:    make([]core.Rect, len(s.clouds)),
		World:     s.world,
		Tick:      s.ticks,
		Best:      s.best,
	}

	for i, ob := range s.obstacles {
		snap.Obstacles[i] = ObstacleView{
			Kind:    ob.Kind,
			Variant: ob.Variant,
			Frame:   ob.Frame(),
			Bounds:  ob.Bounds(),
			Hitbox:  ob.Hitbox(margin),
		}
	}
	for i, c := range s.clouds {
		snap.Clouds[i] = c.Bounds(s.cfg.Clouds.Size)
	}

	return snap
}
