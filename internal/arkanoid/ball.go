package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// Ball is a moving disc.
type Ball struct {
	Position  geom.Point
	Velocity  geom.PolarVector
	Radius    float64
	BaseSpeed float64
	Color     core.Color

	// Hold is the remaining time the ball stays glued to the paddle.
	Hold float64
}

// NewBall creates a ball travelling at base speed along angle.
func NewBall(pos geom.Point, angle, radius, baseSpeed float64) Ball {
	return Ball{
		Position:  pos,
		Velocity:  geom.Polar(angle, baseSpeed),
		Radius:    radius,
		BaseSpeed: baseSpeed,
		Color:     core.ColorBall,
	}
}

// Held reports whether the ball is still glued to the paddle.
func (b *Ball) Held() bool {
	return b.Hold > 0
}

// Update integrates the position over dt. A held ball only burns down its
// hold timer and sits on anchor.
func (b *Ball) Update(dt float64, anchor geom.Point) {
	if b.Held() {
		b.Hold -= dt
		b.Position = anchor
		return
	}
	b.Position = b.Position.Add(b.Velocity.Scale(dt).Point())
}

// Bounce reflects the heading about the collision normal and pushes the ball
// out of penetration along that normal.
func (b *Ball) Bounce(c shape.Collision) {
	b.Velocity.Angle = geom.Reflect(b.Velocity.Angle, c.Normal)
	b.Position = b.Position.Add(geom.Polar(c.Normal, c.Depth).Point())
}

// Speed sets the norm from the number of active Slow bonuses.
func (b *Ball) Speed(activeCount int) {
	b.Velocity.Norm = b.BaseSpeed / float64(activeCount+1)
}

// Rotate turns the heading by angle.
func (b *Ball) Rotate(angle float64) {
	b.Velocity.Angle += angle
}

// Shape returns the collision circle.
func (b *Ball) Shape() shape.Circle {
	return shape.NewCircle(b.Position, b.Radius)
}
