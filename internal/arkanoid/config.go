// Package arkanoid implements the play-field simulation: balls, the paddle,
// bricks, walls and bonuses, stepped one frame at a time by State.
//
// The package is pure. It never touches the terminal, the clock or a global
// random source; the frame loop supplies the time step, the steering input
// and a Rand on every call.
package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/config"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Config holds the tuning constants of a simulation. All lengths are in
// play-field pixels, all durations in seconds.
type Config struct {
	// Ball
	BaseSpeed  float64 // Ball speed with no Slow bonus active
	BallRadius float64

	// Serve
	Lives         int
	ServePosition geom.Point
	ServeAngle    float64
	ServeHold     float64 // Seconds a fresh ball stays glued to the paddle

	// Paddle
	PaddleOffset       float64 // Distance from the pit to the paddle center
	PaddleWidth        float64
	PaddleGrowth       float64
	PaddleMaxWidth     float64
	PaddleThickness    float64
	PaddleAcceleration float64
	PaddleFriction     float64
	PaddleEpsilon      float64 // Velocities below this snap to zero

	// Bonuses
	SpawnChance   float64 // Probability of a bonus when a brick breaks
	FallSpeed     float64
	BonusRadius   float64
	BonusDuration float64 // Lifetime of timed bonuses
	DivideAngle   float64
	MaxBalls      int
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		BaseSpeed:  500,
		BallRadius: 8,

		Lives:         3,
		ServePosition: geom.Pt(100, 350),
		ServeAngle:    math.Pi / 4,
		ServeHold:     0,

		PaddleOffset:       30,
		PaddleWidth:        80,
		PaddleGrowth:       20,
		PaddleMaxWidth:     160,
		PaddleThickness:    16,
		PaddleAcceleration: 5000,
		PaddleFriction:     10,
		PaddleEpsilon:      1,

		SpawnChance:   0.25,
		FallSpeed:     200,
		BonusRadius:   12,
		BonusDuration: 10,
		DivideAngle:   math.Pi / 6,
		MaxBalls:      12,
	}
}

// ConfigFrom maps a loaded configuration file onto simulation constants.
// Angles in the file are in degrees. The ball speed starts at the
// configured difficulty level.
func ConfigFrom(c config.ArkanoidConfig) Config {
	return Config{
		BaseSpeed:  config.NewDifficultyManager(c.Difficulty).Speed(c.Physics.BallSpeed, 0),
		BallRadius: c.Physics.BallRadius,

		Lives:         c.Gameplay.Lives,
		ServePosition: geom.Pt(c.Gameplay.ServeX, c.Gameplay.ServeY),
		ServeAngle:    c.Gameplay.ServeAngleDeg * math.Pi / 180,
		ServeHold:     c.Gameplay.ServeHold,

		PaddleOffset:       c.Gameplay.PaddleOffset,
		PaddleWidth:        c.Physics.PaddleWidth,
		PaddleGrowth:       c.Physics.PaddleGrowth,
		PaddleMaxWidth:     c.Physics.PaddleMaxWidth,
		PaddleThickness:    c.Physics.PaddleThickness,
		PaddleAcceleration: c.Physics.PaddleAcceleration,
		PaddleFriction:     c.Physics.PaddleFriction,
		PaddleEpsilon:      c.Physics.PaddleEpsilon,

		SpawnChance:   c.Bonus.SpawnChance,
		FallSpeed:     c.Bonus.FallSpeed,
		BonusRadius:   c.Bonus.Radius,
		BonusDuration: c.Bonus.Duration,
		DivideAngle:   c.Bonus.DivideAngleDeg * math.Pi / 180,
		MaxBalls:      c.Bonus.MaxBalls,
	}
}
