package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// BonusType identifies a bonus effect.
type BonusType int

const (
	BonusSlow   BonusType = iota // Timed: slows every ball, stacks
	BonusExpand                  // Instant: widens the paddle
	BonusDivide                  // Instant: splits every ball in three
	BonusLife                    // Instant: extra life
	bonusTypeCount
)

// RandomBonusType draws a type uniformly.
func RandomBonusType(rng Rand) BonusType {
	return BonusType(rng.IntN(int(bonusTypeCount)))
}

// String returns the name of the bonus type.
func (t BonusType) String() string {
	switch t {
	case BonusSlow:
		return "Slow"
	case BonusExpand:
		return "Expand"
	case BonusDivide:
		return "Divide"
	case BonusLife:
		return "Life"
	default:
		return "?"
	}
}

// Glyph returns the display character for a bonus type.
func (t BonusType) Glyph() rune {
	switch t {
	case BonusSlow:
		return 'S'
	case BonusExpand:
		return 'E'
	case BonusDivide:
		return 'D'
	case BonusLife:
		return '♥'
	default:
		return '?'
	}
}

// Color returns the display color for a bonus type.
func (t BonusType) Color() core.Color {
	switch t {
	case BonusSlow:
		return core.ColorBonusSlow
	case BonusExpand:
		return core.ColorBonusExpand
	case BonusDivide:
		return core.ColorBonusDivide
	case BonusLife:
		return core.ColorBonusLife
	default:
		return core.ColorDefault
	}
}

// Timed reports whether the bonus lives on as an ActiveBonus after pickup.
func (t BonusType) Timed() bool {
	return t == BonusSlow
}

// FallingBonus drops from a destroyed brick toward the pit.
type FallingBonus struct {
	Type     BonusType
	Position geom.Point
	Speed    float64
	Radius   float64
}

// Update moves the bonus straight down.
func (f *FallingBonus) Update(dt float64) {
	f.Position.Y += f.Speed * dt
}

// Shape returns the collision circle.
func (f *FallingBonus) Shape() shape.Circle {
	return shape.NewCircle(f.Position, f.Radius)
}

// ActiveBonus is a picked-up timed effect.
type ActiveBonus struct {
	Type  BonusType
	Timer float64
}

// Active reports whether time remains on the effect.
func (a *ActiveBonus) Active() bool {
	return a.Timer > 0
}

// Update burns down the timer.
func (a *ActiveBonus) Update(dt float64) {
	a.Timer -= dt
}
