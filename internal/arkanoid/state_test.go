package arkanoid

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

type testLevel struct {
	bricks []Brick
}

func (l testLevel) Bricks() []Brick  { return l.bricks }
func (l testLevel) Width() float64  { return 800 }
func (l testLevel) Height() float64 { return 600 }

// farLevel keeps one breakable brick in the top right corner, out of the
// serve trajectory for the first few frames.
func farLevel() testLevel {
	return testLevel{bricks: []Brick{BrickAt(BrickSimple, 9, 0)}}
}

// fullLevel is a ten by six wall with a hard top row.
func fullLevel() testLevel {
	var bricks []Brick
	for row := range 6 {
		for col := range 10 {
			kind := BrickSimple
			if row == 0 {
				kind = BrickHard
			}
			bricks = append(bricks, BrickAt(kind, col, row))
		}
	}
	return testLevel{bricks: bricks}
}

// fixedRand replays a constant roll.
type fixedRand struct {
	f float64
	n int
}

func (r fixedRand) Float64() float64 { return r.f }
func (r fixedRand) IntN(n int) int   { return r.n % n }

func TestStateServeIntegration(t *testing.T) {
	s := NewState(fullLevel(), DefaultConfig())
	require.Len(t, s.balls, 1)

	s.Update(0.01, NewSimpleRNG(1))

	require.Len(t, s.balls, 1)
	assert.InDelta(t, 103.54, s.balls[0].Position.X, 0.005)
	assert.InDelta(t, 353.54, s.balls[0].Position.Y, 0.005)
	assert.Equal(t, uint64(1), s.Tick())
}

func TestStateInitialLayout(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(fullLevel(), cfg)

	assert.Equal(t, geom.Pt(400, 570), s.paddle.Position)
	assert.Equal(t, cfg.Lives, s.Lives())
	assert.Len(t, s.bricks, 60)
	assert.Len(t, s.walls, 4)
	assert.True(t, s.Alive())
	assert.False(t, s.Won())
}

func TestStateOwnsItsBricks(t *testing.T) {
	lvl := farLevel()
	s := NewState(lvl, DefaultConfig())
	s.bricks[0].Damage()

	assert.Equal(t, uint8(1), lvl.bricks[0].HitPoints, "the level keeps its own copy")
}

func TestBallLossRespawn(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)
	s.balls[0].Position = geom.Pt(400, 650)

	s.Update(0.01, NewSimpleRNG(1))

	assert.Equal(t, cfg.Lives-1, s.Lives())
	require.Len(t, s.balls, 1)
	assert.Equal(t, geom.Pt(100, 350), s.balls[0].Position)
	assert.InDelta(t, math.Pi/4, s.balls[0].Velocity.Angle, 1e-9)
	assert.InDelta(t, cfg.BaseSpeed, s.balls[0].Velocity.Norm, 1e-9)
	assert.True(t, s.Alive())
}

func TestLastLifeLost(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Lives = 1
	s := NewState(farLevel(), cfg)
	s.balls[0].Position = geom.Pt(400, 650)

	s.Update(0.01, NewSimpleRNG(1))

	assert.False(t, s.Alive())
	assert.Equal(t, 0, s.Lives())
	assert.Empty(t, s.balls)
	assert.True(t, s.Over())

	before := s.Snapshot()
	s.Update(0.01, NewSimpleRNG(1))
	after := s.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash(), "a lost round is frozen")
}

func TestLosingOneOfSeveralBallsCostsNothing(t *testing.T) {
	s := NewState(farLevel(), DefaultConfig())
	extra := s.balls[0]
	extra.Position = geom.Pt(400, 650)
	s.balls = append(s.balls, extra)

	s.Update(0.01, NewSimpleRNG(1))

	assert.Equal(t, 3, s.Lives())
	assert.Len(t, s.balls, 1)
}

func TestWinWithoutBreakableBricks(t *testing.T) {
	lvl := testLevel{bricks: []Brick{BrickAt(BrickSuper, 4, 2), BrickAt(BrickSuper, 5, 2)}}
	s := NewState(lvl, DefaultConfig())

	assert.True(t, s.Won())
	assert.True(t, s.Alive())

	s.Update(0.01, NewSimpleRNG(1))
	assert.Equal(t, uint64(0), s.Tick(), "a won round is frozen")
}

func TestWinEmptyLevel(t *testing.T) {
	s := NewState(testLevel{}, DefaultConfig())
	assert.True(t, s.Won())
}

func TestSlowStacking(t *testing.T) {
	cfg := DefaultConfig()

	for k := 1; k <= 4; k++ {
		s := NewState(farLevel(), cfg)
		for range k {
			s.activate(BonusSlow)
		}

		s.Update(0.001, NewSimpleRNG(1))
		assert.Equal(t, k, s.ActiveCount(BonusSlow))
		for _, b := range s.balls {
			assert.InDelta(t, cfg.BaseSpeed/float64(k+1), b.Velocity.Norm, 1e-9, "k=%d", k)
		}

		// Let exactly one instance run out during the next frame.
		s.active[0].Timer = 0.0005
		s.Update(0.001, NewSimpleRNG(1))
		assert.Equal(t, k-1, s.ActiveCount(BonusSlow))
		assert.Len(t, s.active, k-1, "expired entries are purged")
		for _, b := range s.balls {
			assert.InDelta(t, cfg.BaseSpeed/float64(k), b.Velocity.Norm, 1e-9, "k=%d after expiry", k)
		}
	}
}

func TestSetBaseSpeed(t *testing.T) {
	s := NewState(farLevel(), DefaultConfig())
	s.activate(BonusSlow)

	s.SetBaseSpeed(900)
	s.SetBaseSpeed(-1)
	assert.Equal(t, 900.0, s.BaseSpeed(), "non-positive speeds are ignored")

	s.Update(0.001, NewSimpleRNG(1))
	assert.InDelta(t, 450, s.balls[0].Velocity.Norm, 1e-9, "slow still halves the new speed")
	assert.Equal(t, 900.0, s.serveBall().BaseSpeed)
}

func TestSlowAppliesToEveryBall(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)
	s.divide()
	require.Len(t, s.balls, 3)

	s.activate(BonusSlow)
	s.Update(0.001, NewSimpleRNG(1))

	for _, b := range s.balls {
		assert.InDelta(t, cfg.BaseSpeed/2, b.Velocity.Norm, 1e-9)
	}
}

func TestDivideFansOutAndCaps(t *testing.T) {
	cfg := DefaultConfig()
	cfg.MaxBalls = 3
	s := NewState(farLevel(), cfg)

	s.activate(BonusDivide)
	require.Len(t, s.balls, 3)
	assert.InDelta(t, math.Pi/4, s.balls[0].Velocity.Angle, 1e-9)
	assert.InDelta(t, math.Pi/4+cfg.DivideAngle, s.balls[1].Velocity.Angle, 1e-9)
	assert.InDelta(t, math.Pi/4-cfg.DivideAngle, s.balls[2].Velocity.Angle, 1e-9)
	for _, b := range s.balls {
		assert.Equal(t, s.balls[0].Position, b.Position)
	}

	s.activate(BonusDivide)
	assert.Len(t, s.balls, 3, "divide never exceeds the cap")
}

func TestDivideDefaultCap(t *testing.T) {
	s := NewState(farLevel(), DefaultConfig())

	counts := []int{3, 9, 12, 12}
	for _, want := range counts {
		s.activate(BonusDivide)
		assert.Len(t, s.balls, want)
	}
}

func TestInstantBonuses(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)

	s.activate(BonusLife)
	assert.Equal(t, cfg.Lives+1, s.Lives())

	s.activate(BonusExpand)
	assert.InDelta(t, cfg.PaddleWidth+cfg.PaddleGrowth, s.paddle.Width, 1e-9)
	assert.Empty(t, s.active, "instant bonuses leave no timer behind")
}

func TestBonusPitWinsOverPaddle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)
	s.paddle.Position = geom.Pt(400, 595)
	s.falling = []FallingBonus{{Type: BonusLife, Position: geom.Pt(400, 590), Speed: cfg.FallSpeed, Radius: cfg.BonusRadius}}

	s.Update(0.001, NewSimpleRNG(1))

	assert.Empty(t, s.falling)
	assert.Equal(t, cfg.Lives, s.Lives(), "a bonus touching the pit is discarded even over the paddle")
}

func TestBonusCaughtByPaddle(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)
	s.falling = []FallingBonus{{Type: BonusLife, Position: geom.Pt(400, 560), Speed: cfg.FallSpeed, Radius: cfg.BonusRadius}}

	s.Update(0.001, NewSimpleRNG(1))

	assert.Empty(t, s.falling)
	assert.Equal(t, cfg.Lives+1, s.Lives())
}

func TestBonusKeepsFalling(t *testing.T) {
	cfg := DefaultConfig()
	s := NewState(farLevel(), cfg)
	s.falling = []FallingBonus{{Type: BonusSlow, Position: geom.Pt(200, 100), Speed: cfg.FallSpeed, Radius: cfg.BonusRadius}}

	s.Update(0.01, NewSimpleRNG(1))

	require.Len(t, s.falling, 1)
	assert.InDelta(t, 102.0, s.falling[0].Position.Y, 1e-9)
}

func TestBrickBreakScoresAndSpawns(t *testing.T) {
	tests := []struct {
		name    string
		rng     fixedRand
		spawned bool
	}{
		{"lucky roll spawns", fixedRand{f: 0.1, n: 2}, true},
		{"unlucky roll spawns nothing", fixedRand{f: 0.9, n: 2}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			brick := NewBrick(BrickSimple, geom.Pt(400, 300), 78, 28)
			s := NewState(testLevel{bricks: []Brick{brick}}, DefaultConfig())
			s.balls[0] = NewBall(geom.Pt(400, 279), geom.Down, 8, 500)

			s.Update(0.01, tc.rng)

			assert.Empty(t, s.bricks)
			assert.Equal(t, 10, s.Score())
			assert.True(t, s.Won())
			require.Len(t, s.balls, 1)
			assert.InDelta(t, 3*math.Pi/2, s.balls[0].Velocity.Angle, 1e-9)
			assert.InDelta(t, 278.0, s.balls[0].Position.Y, 1e-9)

			if !tc.spawned {
				assert.Empty(t, s.falling)
				return
			}
			require.Len(t, s.falling, 1)
			assert.Equal(t, BonusDivide, s.falling[0].Type)
			assert.InDelta(t, 302.0, s.falling[0].Position.Y, 1e-9)
		})
	}
}

func TestHardBrickTakesTwoHits(t *testing.T) {
	brick := NewBrick(BrickHard, geom.Pt(400, 300), 78, 28)
	s := NewState(testLevel{bricks: []Brick{brick}}, DefaultConfig())
	s.balls[0] = NewBall(geom.Pt(400, 279), geom.Down, 8, 500)

	s.Update(0.01, fixedRand{f: 0.9})

	require.Len(t, s.bricks, 1)
	assert.Equal(t, uint8(1), s.bricks[0].HitPoints)
	assert.Equal(t, 0, s.Score())
}

func TestCornerHitBouncesBallOut(t *testing.T) {
	brick := BrickAt(BrickHard, 4, 5)
	s := NewState(testLevel{bricks: []Brick{brick}}, DefaultConfig())
	s.balls[0] = NewBall(geom.Pt(301, 171), math.Pi/4, 8, 500)

	for range 10 {
		s.Update(0.01, fixedRand{f: 0.9})
	}

	require.Len(t, s.bricks, 1)
	assert.Equal(t, uint8(1), s.bricks[0].HitPoints, "one corner strike is one hit")
	assert.Equal(t, 0, s.Score())

	require.Len(t, s.balls, 1)
	ball := s.balls[0]
	assert.InDelta(t, 5*math.Pi/4, ball.Velocity.Angle, 1e-9, "ball leaves up and to the left")
	assert.Less(t, ball.Position.X, brick.Shape().Left())
	assert.Less(t, ball.Position.Y, brick.Shape().Top())
}

func TestBallBouncesOffWalls(t *testing.T) {
	tests := []struct {
		name  string
		start geom.Point
		angle float64
		want  float64
		pos   geom.Point
	}{
		{"right wall", geom.Pt(795, 300), geom.Right, math.Pi, geom.Pt(792, 300)},
		{"left wall", geom.Pt(5, 300), geom.Left, 0, geom.Pt(8, 300)},
		{"ceiling", geom.Pt(300, 5), geom.Up, math.Pi / 2, geom.Pt(300, 8)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewState(farLevel(), DefaultConfig())
			s.balls[0] = NewBall(tc.start, tc.angle, 8, 500)

			s.Update(0.01, NewSimpleRNG(1))

			require.Len(t, s.balls, 1)
			assert.InDelta(t, tc.want, s.balls[0].Velocity.Angle, 1e-9)
			assert.InDelta(t, tc.pos.X, s.balls[0].Position.X, 1e-9)
			assert.InDelta(t, tc.pos.Y, s.balls[0].Position.Y, 1e-9)
		})
	}
}

func TestBallBouncesOffPaddle(t *testing.T) {
	s := NewState(farLevel(), DefaultConfig())
	s.balls[0] = NewBall(geom.Pt(400, 550), geom.Down, 8, 500)

	s.Update(0.01, NewSimpleRNG(1))

	// Paddle top at 562, the ball dips to 555+8 and is pushed back to 554.
	require.Len(t, s.balls, 1)
	assert.InDelta(t, 3*math.Pi/2, s.balls[0].Velocity.Angle, 1e-9)
	assert.InDelta(t, 554.0, s.balls[0].Position.Y, 1e-9)
}

func TestPaddleStopsAtWall(t *testing.T) {
	s := NewState(farLevel(), DefaultConfig())
	s.paddle.Position.X = 790

	s.Update(0.001, NewSimpleRNG(1))

	assert.InDelta(t, 760.0, s.paddle.Position.X, 1e-9)
}

func TestServeHoldAndLaunch(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ServeHold = 1
	s := NewState(farLevel(), cfg)

	require.True(t, s.balls[0].Held())
	assert.Equal(t, s.anchor(), s.balls[0].Position)

	s.Input(1)
	for range 4 {
		s.Update(0.01, NewSimpleRNG(1))
	}
	// Balls integrate before the paddle, so a held ball trails it by a frame.
	prev := s.anchor()
	s.Update(0.01, NewSimpleRNG(1))
	assert.Greater(t, s.paddle.Position.X, prev.X)
	assert.Equal(t, prev, s.balls[0].Position, "a held ball tracks the paddle")
	assert.Len(t, s.balls, 1)

	s.Launch()
	before := s.balls[0].Position
	s.Update(0.01, NewSimpleRNG(1))
	assert.NotEqual(t, before, s.balls[0].Position)
	assert.False(t, s.balls[0].Held())
}

func TestStateDeterminism(t *testing.T) {
	run := func(seed int64) uint64 {
		s := NewState(fullLevel(), DefaultConfig())
		rng := NewSimpleRNG(seed)
		for i := range 3000 {
			s.Input(math.Sin(float64(i) / 40))
			s.Update(1.0/60, rng)
		}
		snap := s.Snapshot()
		return snap.Hash()
	}

	assert.Equal(t, run(42), run(42), "same seed and inputs give the same round")
}

func TestStateAcceptsStdlibRand(t *testing.T) {
	s := NewState(fullLevel(), DefaultConfig())
	rng := rand.New(rand.NewPCG(1, 2))
	for range 600 {
		s.Update(1.0/60, rng)
	}
	assert.LessOrEqual(t, len(s.balls), DefaultConfig().MaxBalls)
}

func TestConfigFromDefaults(t *testing.T) {
	want := DefaultConfig()
	got := ConfigFrom(config.DefaultArkanoidConfig())

	assert.InDelta(t, want.ServeAngle, got.ServeAngle, 1e-12)
	assert.InDelta(t, want.DivideAngle, got.DivideAngle, 1e-12)
	got.ServeAngle, got.DivideAngle = want.ServeAngle, want.DivideAngle
	assert.Equal(t, want, got)
}

type recorder struct {
	calls []string
	rects []geom.Point
}

func (r *recorder) FillRect(center geom.Point, w, h float64, color core.Color) {
	r.calls = append(r.calls, "rect")
	r.rects = append(r.rects, center)
}

func (r *recorder) FillCircle(center geom.Point, radius float64, color core.Color) {
	r.calls = append(r.calls, "circle")
}

func (r *recorder) DrawLine(from, to geom.Point, color core.Color) {
	r.calls = append(r.calls, "line")
}

func TestRenderOrder(t *testing.T) {
	lvl := testLevel{bricks: []Brick{BrickAt(BrickSimple, 0, 0), BrickAt(BrickHard, 1, 0)}}
	s := NewState(lvl, DefaultConfig())
	s.falling = []FallingBonus{{Type: BonusSlow, Position: geom.Pt(10, 10), Speed: 200, Radius: 12}}

	r := &recorder{}
	s.Render(r, NewRenderContext(Size{800, 600}, Size{800, 600}))

	want := []string{"rect", "rect", "line", "line", "line", "line", "circle", "circle", "rect"}
	assert.Equal(t, want, r.calls)
	assert.Equal(t, geom.Pt(400, 570), r.rects[len(r.rects)-1], "paddle is drawn last")
}

func TestRenderContextFit(t *testing.T) {
	base := Size{800, 600}

	rc := NewRenderContext(base, Size{400, 400})
	assert.InDelta(t, 0.5, rc.Scale, 1e-9)
	assert.Equal(t, geom.Pt(0, 50), rc.Offset)
	assert.Equal(t, geom.Pt(400, 350), rc.Translate(geom.Pt(800, 600)))
	assert.InDelta(t, 40.0, rc.ScaleLen(80), 1e-9)

	rc.Fit(Size{1600, 600})
	assert.InDelta(t, 1.0, rc.Scale, 1e-9)
	assert.Equal(t, geom.Pt(400, 0), rc.Offset)
}
