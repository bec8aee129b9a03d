package config

import (
	_ "embed"
)

//go:embed defaults/arkanoid.yaml
var defaultArkanoidYAML []byte

// DefaultArkanoidConfig returns the default configuration.
func DefaultArkanoidConfig() ArkanoidConfig {
	return ArkanoidConfig{
		Physics: ArkanoidPhysics{
			BallSpeed:          500,
			BallRadius:         8,
			PaddleWidth:        80,
			PaddleGrowth:       20,
			PaddleMaxWidth:     160,
			PaddleThickness:    16,
			PaddleAcceleration: 5000,
			PaddleFriction:     10,
			PaddleEpsilon:      1,
		},
		Bonus: ArkanoidBonus{
			SpawnChance:    0.25,
			FallSpeed:      200,
			Radius:         12,
			Duration:       10,
			DivideAngleDeg: 30,
			MaxBalls:       12,
		},
		Gameplay: ArkanoidGameplay{
			Lives:         3,
			ServeX:        100,
			ServeY:        350,
			ServeAngleDeg: 45,
			ServeHold:     0,
			PaddleOffset:  30,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 2000,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultArkanoidYAML
}
