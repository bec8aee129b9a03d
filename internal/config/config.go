// Package config provides YAML-based game configuration loading and
// difficulty management for arkanoid.
package config

import (
	"errors"
	"fmt"
)

// ArkanoidConfig contains all configuration for the simulation.
// Lengths are play-field pixels, durations are seconds, angles are degrees.
type ArkanoidConfig struct {
	Physics    ArkanoidPhysics  `yaml:"physics"`
	Bonus      ArkanoidBonus    `yaml:"bonus"`
	Gameplay   ArkanoidGameplay `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// ArkanoidPhysics defines ball and paddle motion.
type ArkanoidPhysics struct {
	BallSpeed          float64 `yaml:"ball_speed"`
	BallRadius         float64 `yaml:"ball_radius"`
	PaddleWidth        float64 `yaml:"paddle_width"`
	PaddleGrowth       float64 `yaml:"paddle_growth"`
	PaddleMaxWidth     float64 `yaml:"paddle_max_width"`
	PaddleThickness    float64 `yaml:"paddle_thickness"`
	PaddleAcceleration float64 `yaml:"paddle_acceleration"`
	PaddleFriction     float64 `yaml:"paddle_friction"`
	PaddleEpsilon      float64 `yaml:"paddle_epsilon"`
}

// ArkanoidBonus defines bonus spawning and effects.
type ArkanoidBonus struct {
	SpawnChance    float64 `yaml:"spawn_chance"` // 0.0 to 1.0 per destroyed brick
	FallSpeed      float64 `yaml:"fall_speed"`
	Radius         float64 `yaml:"radius"`
	Duration       float64 `yaml:"duration"`
	DivideAngleDeg float64 `yaml:"divide_angle"`
	MaxBalls       int     `yaml:"max_balls"`
}

// ArkanoidGameplay defines lives and serving.
type ArkanoidGameplay struct {
	Lives         int     `yaml:"lives"`
	ServeX        float64 `yaml:"serve_x"`
	ServeY        float64 `yaml:"serve_y"`
	ServeAngleDeg float64 `yaml:"serve_angle"`
	ServeHold     float64 `yaml:"serve_hold"`
	PaddleOffset  float64 `yaml:"paddle_offset"` // Paddle center distance above the pit
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// ApplyArkanoidPreset applies a difficulty preset to the configuration.
// Easy also hands out an extra life and more bonuses.
func ApplyArkanoidPreset(cfg *ArkanoidConfig, preset DifficultyPreset) {
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	}
	switch preset {
	case DifficultyEasy:
		cfg.Gameplay.Lives++
		cfg.Bonus.SpawnChance = min(1, cfg.Bonus.SpawnChance*1.5)
	case DifficultyHard:
		cfg.Bonus.SpawnChance *= 0.5
	}
}

// Validate rejects configurations the simulation cannot run with.
func (c ArkanoidConfig) Validate() error {
	var errs []error
	positive := []struct {
		name string
		v    float64
	}{
		{"physics.ball_speed", c.Physics.BallSpeed},
		{"physics.ball_radius", c.Physics.BallRadius},
		{"physics.paddle_width", c.Physics.PaddleWidth},
		{"physics.paddle_max_width", c.Physics.PaddleMaxWidth},
		{"physics.paddle_thickness", c.Physics.PaddleThickness},
		{"physics.paddle_acceleration", c.Physics.PaddleAcceleration},
		{"bonus.fall_speed", c.Bonus.FallSpeed},
		{"bonus.radius", c.Bonus.Radius},
		{"bonus.duration", c.Bonus.Duration},
	}
	for _, p := range positive {
		if !(p.v > 0) {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", p.name, p.v))
		}
	}

	if c.Physics.PaddleMaxWidth < c.Physics.PaddleWidth {
		errs = append(errs, fmt.Errorf("physics.paddle_max_width %v is below paddle_width %v",
			c.Physics.PaddleMaxWidth, c.Physics.PaddleWidth))
	}
	if c.Physics.PaddleFriction < 0 || c.Physics.PaddleEpsilon < 0 || c.Physics.PaddleGrowth < 0 {
		errs = append(errs, errors.New("physics: friction, epsilon and growth must not be negative"))
	}
	if c.Bonus.SpawnChance < 0 || c.Bonus.SpawnChance > 1 {
		errs = append(errs, fmt.Errorf("bonus.spawn_chance must be within [0, 1], got %v", c.Bonus.SpawnChance))
	}
	if c.Bonus.MaxBalls < 1 {
		errs = append(errs, fmt.Errorf("bonus.max_balls must be at least 1, got %d", c.Bonus.MaxBalls))
	}
	if c.Gameplay.Lives < 1 {
		errs = append(errs, fmt.Errorf("gameplay.lives must be at least 1, got %d", c.Gameplay.Lives))
	}
	if c.Gameplay.ServeHold < 0 {
		errs = append(errs, fmt.Errorf("gameplay.serve_hold must not be negative, got %v", c.Gameplay.ServeHold))
	}
	if l := c.Difficulty.InitialLevel; l < 0 || l > 1 {
		errs = append(errs, fmt.Errorf("difficulty.initial_level must be within [0, 1], got %v", l))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}
