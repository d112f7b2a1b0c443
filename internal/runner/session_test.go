package runner

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/dino-runner/internal/config"
	"github.com/vovakirdan/dino-runner/internal/core"
)

func newTestSession(t *testing.T, cfg config.Config, opts ...Option) *Session {
	t.Helper()
	s, err := NewSession(cfg, 1, opts...)
	require.NoError(t, err)
	return s
}

// quietConfig never spawns during a test of a few hundred ticks.
func quietConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.MinTicks = 100000
	cfg.Spawn.MaxTicks = 100000
	return cfg
}

// skyConfig spawns only birds flying far above the player.
func skyConfig() config.Config {
	cfg := config.Default()
	cfg.Spawn.BirdMinScore = -1
	cfg.Spawn.BirdChance = 1
	cfg.Obstacles.BirdBands = []float64{200}
	return cfg
}

func TestNewSessionRejectsInvalidConfig(t *testing.T) {
	cfg := config.Default()
	cfg.Player.RunFrames = 0

	_, err := NewSession(cfg, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewSessionInitialState(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg)
	snap := s.Snapshot()

	assert.Equal(t, PhasePlaying, snap.World.Phase)
	assert.Equal(t, cfg.Speed.Initial, snap.World.Speed)
	assert.Zero(t, snap.World.Score)
	assert.Empty(t, snap.Obstacles)
	assert.Len(t, snap.Clouds, cfg.Clouds.Count)
	assert.Equal(t, StateRunning, snap.Player.State)
}

func TestSessionFirstSpawnAtScriptedTick(t *testing.T) {
	src := &scriptedSource{ints: []int{80}}
	s := newTestSession(t, config.Default(), WithRandom(src))

	for tick := 1; tick < 80; tick++ {
		res := s.Step(core.Idle())
		require.False(t, res.Spawned, "tick %d", tick)
	}
	res := s.Step(core.Idle())
	assert.True(t, res.Spawned)
	assert.Len(t, s.Snapshot().Obstacles, 1)
}

func TestSessionScoresEachObstacleOnce(t *testing.T) {
	cfg := skyConfig()
	s := newTestSession(t, cfg)

	spawned, cleared := 0, 0
	prevSpeed := s.World().Speed
	for tick := 0; tick < 6000; tick++ {
		res := s.Step(core.Idle())
		require.Equal(t, PhasePlaying, res.World.Phase, "sky birds never collide")

		if res.Spawned {
			spawned++
		}
		cleared += res.Cleared

		snap := s.Snapshot()
		require.Equal(t, spawned, snap.World.Score+len(snap.Obstacles), "tick %d", tick)
		require.Equal(t, cleared, snap.World.Score)

		require.GreaterOrEqual(t, snap.World.Speed, prevSpeed, "speed never decreases")
		require.LessOrEqual(t, snap.World.Speed, cfg.Speed.Max)
		prevSpeed = snap.World.Speed

		steps := float64(snap.World.Score / cfg.Speed.Every)
		require.Equal(t, min(cfg.Speed.Initial+steps*cfg.Speed.Step, cfg.Speed.Max), snap.World.Speed)
	}
	assert.Greater(t, cleared, 25)
}

func TestSessionSpeedRampExample(t *testing.T) {
	s := newTestSession(t, config.Default())
	for i := 0; i < 25; i++ {
		s.award()
	}
	assert.Equal(t, 25, s.World().Score)
	assert.Equal(t, 7.5, s.World().Speed)
}

func TestSessionSpeedClampedAtMax(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg)
	for i := 0; i < 500; i++ {
		s.award()
	}
	assert.Equal(t, cfg.Speed.Max, s.World().Speed)
}

func TestSessionObstacleRemovedAfterLeftEdge(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	ob := newBird(skyConfig(), 0)
	ob.X = -ob.Size.W + cfg.Speed.Initial // right edge lands exactly on zero
	s.obstacles = []Obstacle{ob}

	res := s.Step(core.Idle())
	assert.Zero(t, res.Cleared, "right edge at zero has not passed yet")
	assert.Len(t, s.obstacles, 1)

	res = s.Step(core.Idle())
	assert.Equal(t, 1, res.Cleared)
	assert.Empty(t, s.obstacles)
	assert.Equal(t, 1, res.World.Score)
}

func TestSessionCollisionEndsSession(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	cactus := newLargeCactus(cfg, 1)
	cactus.X = 50
	s.obstacles = []Obstacle{cactus}

	res := s.Step(core.Idle())
	assert.True(t, res.Crashed)
	assert.Equal(t, PhaseGameOver, res.World.Phase)

	snap := s.Snapshot()
	assert.True(t, snap.Player.Dead)
	assert.Equal(t, StateDead, snap.Player.State)
}

func TestSessionNoCollisionWithoutOverlap(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	// After one tick the cactus hitbox starts exactly at the player hitbox's right edge.
	cactus := newLargeCactus(cfg, 1)
	cactus.X = 89
	s.obstacles = []Obstacle{cactus}

	res := s.Step(core.Idle())
	require.False(t, res.Crashed)
	assert.Equal(t, s.Snapshot().Player.Hitbox.Right(), s.Snapshot().Obstacles[0].Hitbox.X)

	res = s.Step(core.Idle())
	assert.True(t, res.Crashed, "one more tick produces overlap")
}

func TestSessionFullOverlapAlwaysCollides(t *testing.T) {
	cfg := quietConfig()
	// An obstacle the exact size of the running player.
	cfg.Obstacles.Large = []config.Size{cfg.Player.Run}
	s := newTestSession(t, cfg)

	ob := newLargeCactus(cfg, 1)
	ob.X = cfg.Player.X + cfg.Speed.Initial
	s.obstacles = []Obstacle{ob}

	res := s.Step(core.Idle())
	require.True(t, res.Crashed)
	assert.Equal(t, s.Snapshot().Player.Hitbox, s.Snapshot().Obstacles[0].Hitbox)
}

func TestSessionFirstCollisionTerminates(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	a := newLargeCactus(cfg, 1)
	a.X = 50
	b := newSmallCactus(cfg, 1)
	b.X = 60
	s.obstacles = []Obstacle{a, b}

	res := s.Step(core.Idle())
	assert.True(t, res.Crashed)
	assert.Len(t, s.obstacles, 2, "obstacles are kept for the game over screen")
}

func TestSessionFrozenAfterGameOver(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	cactus := newLargeCactus(cfg, 1)
	cactus.X = 50
	s.obstacles = []Obstacle{cactus}
	s.Step(core.Idle())
	require.Equal(t, PhaseGameOver, s.World().Phase)

	before := s.Snapshot()
	for i := 0; i < 10; i++ {
		res := s.Step(core.Jump())
		assert.False(t, res.Crashed)
	}
	assert.Equal(t, before, s.Snapshot())
}

func TestSessionRestart(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	assert.False(t, s.Restart(), "restart is ignored while playing")

	for i := 0; i < 12; i++ {
		s.award()
	}
	for i := 0; i < 30; i++ {
		s.Step(core.Idle())
	}
	cactus := newLargeCactus(cfg, 1)
	cactus.X = 50
	s.obstacles = []Obstacle{cactus}
	s.Step(core.Idle())
	require.Equal(t, PhaseGameOver, s.World().Phase)

	require.True(t, s.Restart())

	snap := s.Snapshot()
	assert.Equal(t, PhasePlaying, snap.World.Phase)
	assert.Zero(t, snap.World.Score)
	assert.Equal(t, cfg.Speed.Initial, snap.World.Speed)
	assert.Empty(t, snap.Obstacles)
	assert.Equal(t, StateRunning, snap.Player.State)
	assert.Equal(t, cfg.World.GroundY, snap.Player.Y)
	assert.Zero(t, s.spawner.counter, "spawn timer restarts")
	assert.Equal(t, 12, snap.Best, "best score survives a restart")
}

func TestSessionPlayerStaysWithinJumpBand(t *testing.T) {
	cfg := config.Default()
	s := newTestSession(t, cfg)
	ground := cfg.World.GroundY
	extent := cfg.Physics.MaxJumpExtent()
	input := rand.New(rand.NewSource(5))

	for tick := 0; tick < 5000; tick++ {
		in := core.Intents{
			JumpRequested: input.Intn(20) == 0,
			JumpHeld:      input.Intn(3) != 0,
			DuckHeld:      input.Intn(10) == 0,
		}
		res := s.Step(in)
		if res.World.Phase == PhaseGameOver {
			s.Restart()
			continue
		}
		y := s.Snapshot().Player.Y
		require.GreaterOrEqual(t, y, ground-extent-1e-6, "tick %d", tick)
		require.LessOrEqual(t, y, ground, "tick %d", tick)
	}
}

func TestSessionDeterminism(t *testing.T) {
	cfg := config.Default()

	run := func() []Snapshot {
		s, err := NewSession(cfg, 12345)
		require.NoError(t, err)
		pilot := NewAutopilot(cfg)

		var snaps []Snapshot
		for tick := 0; tick < 3000; tick++ {
			res := s.Step(pilot.Next(s.Snapshot()))
			if res.World.Phase == PhaseGameOver {
				s.Restart()
			}
			if tick%100 == 0 {
				snaps = append(snaps, s.Snapshot())
			}
		}
		return snaps
	}

	assert.Equal(t, run(), run())
}

func TestSessionGroundScrollWraps(t *testing.T) {
	cfg := quietConfig()
	s := newTestSession(t, cfg)

	for i := 0; i < 1000; i++ {
		s.Step(core.Idle())
		x := s.World().GroundX
		require.LessOrEqual(t, x, 0.0)
		require.Greater(t, x, -cfg.World.GroundWidth)
	}
}

func TestCloudsUseDecorSource(t *testing.T) {
	cfg := config.Default()
	gameplay := &scriptedSource{ints: []int{80}}
	s := newTestSession(t, cfg, WithRandom(gameplay), WithDecorRandom(NewSeededSource(3)))

	require.Len(t, s.clouds, cfg.Clouds.Count)
	for _, c := range s.clouds {
		assert.GreaterOrEqual(t, c.X, cfg.World.Width)
		assert.GreaterOrEqual(t, c.Speed, cfg.Clouds.MinSpeed)
	}
	assert.Equal(t, 80, s.spawner.Remaining(), "clouds did not consume gameplay draws")
}

func TestCloudKeepsSpeedOnRespawn(t *testing.T) {
	cfg := config.Default()
	// x offset, y, speed for the first placement; x offset, y for the respawn.
	src := &scriptedSource{ints: []int{0, 60, 2, 100, 120}}
	c := newCloud(cfg, src)
	require.Equal(t, Cloud{X: cfg.World.Width, Y: 60, Speed: 2}, c)

	respawned := false
	for i := 0; i < 1000 && !respawned; i++ {
		c.update(cfg, src)
		respawned = c.X >= cfg.World.Width
	}
	require.True(t, respawned)
	assert.Equal(t, Cloud{X: cfg.World.Width + 100, Y: 120, Speed: 2}, c)
}
