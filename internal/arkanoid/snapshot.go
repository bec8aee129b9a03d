package arkanoid

import "math"

// Snapshot is a read-only copy of the round, flattened to primitive values.
type Snapshot struct {
	Tick  uint64
	Lives int
	Score int
	Alive bool
	Won   bool

	PaddleX     float64
	PaddleY     float64
	PaddleV     float64
	PaddleWidth float64

	// Each ball is 5 floats: X, Y, Angle, Norm, Hold
	BallCount int
	BallData  []float64

	// Each brick is 4 values: X, Y, HitPoints, Kind
	BrickCount int
	BrickData  []float64

	// Each falling bonus is 3 values: Type, X, Y
	FallingCount int
	FallingData  []float64

	// Each active bonus is 2 values: Type, Timer
	ActiveCount int
	ActiveData  []float64
}

// Snapshot returns the current state as a Snapshot.
func (s *State) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(s.balls)*5)
	for _, b := range s.balls {
		ballData = append(ballData, b.Position.X, b.Position.Y, b.Velocity.Angle, b.Velocity.Norm, b.Hold)
	}

	brickData := make([]float64, 0, len(s.bricks)*4)
	for _, b := range s.bricks {
		brickData = append(brickData, b.Center.X, b.Center.Y, float64(b.HitPoints), float64(b.Kind))
	}

	fallingData := make([]float64, 0, len(s.falling)*3)
	for _, f := range s.falling {
		fallingData = append(fallingData, float64(f.Type), f.Position.X, f.Position.Y)
	}

	activeData := make([]float64, 0, len(s.active)*2)
	for _, a := range s.active {
		activeData = append(activeData, float64(a.Type), a.Timer)
	}

	return Snapshot{
		Tick:  s.tick,
		Lives: s.lives,
		Score: s.score,
		Alive: s.Alive(),
		Won:   s.Won(),

		PaddleX:     s.paddle.Position.X,
		PaddleY:     s.paddle.Position.Y,
		PaddleV:     s.paddle.Velocity,
		PaddleWidth: s.paddle.Width,

		BallCount:    len(s.balls),
		BallData:     ballData,
		BrickCount:   len(s.bricks),
		BrickData:    brickData,
		FallingCount: len(s.falling),
		FallingData:  fallingData,
		ActiveCount:  len(s.active),
		ActiveData:   activeData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats contribute their exact bit patterns.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + boolBits(snap.Alive)
	h = h*31 + boolBits(snap.Won)
	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.PaddleY)
	h = h*31 + math.Float64bits(snap.PaddleV)
	h = h*31 + math.Float64bits(snap.PaddleWidth)

	for _, group := range [][]float64{snap.BallData, snap.BrickData, snap.FallingData, snap.ActiveData} {
		h = h*31 + uint64(len(group))
		for _, v := range group {
			h = h*31 + math.Float64bits(v)
		}
	}
	return h
}

func boolBits(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}
