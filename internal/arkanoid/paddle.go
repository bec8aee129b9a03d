package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// Paddle is the player-controlled bar. It only moves along x.
type Paddle struct {
	Position geom.Point
	Velocity float64
	Width    float64
	Input    float64 // Steering intent in [-1, 1]

	thickness    float64
	growth       float64
	maxWidth     float64
	acceleration float64
	friction     float64
	epsilon      float64
}

// NewPaddle creates a resting paddle centered at pos.
func NewPaddle(pos geom.Point, cfg Config) Paddle {
	return Paddle{
		Position:     pos,
		Width:        cfg.PaddleWidth,
		thickness:    cfg.PaddleThickness,
		growth:       cfg.PaddleGrowth,
		maxWidth:     cfg.PaddleMaxWidth,
		acceleration: cfg.PaddleAcceleration,
		friction:     cfg.PaddleFriction,
		epsilon:      cfg.PaddleEpsilon,
	}
}

// SetInput stores the steering intent, clamped to [-1, 1].
func (p *Paddle) SetInput(x float64) {
	if math.IsNaN(x) {
		x = 0
	}
	p.Input = geom.Clamp(x, -1, 1)
}

// Update applies acceleration and friction, then integrates the position.
func (p *Paddle) Update(dt float64) {
	accel := p.Input*p.acceleration - p.Velocity*p.friction
	p.Velocity += accel * dt
	if math.Abs(p.Velocity) < p.epsilon {
		p.Velocity = 0
	}
	p.Position.X += p.Velocity * dt
}

// Bounce reverses the paddle and pushes it back along the normal's x axis.
func (p *Paddle) Bounce(c shape.Collision) {
	p.Velocity = -p.Velocity
	p.Position.X += geom.Polar(c.Normal, c.Depth).X()
}

// Grow widens the paddle up to its maximum width.
func (p *Paddle) Grow() {
	p.Width = math.Min(p.Width+p.growth, p.maxWidth)
}

// Thickness returns the paddle height.
func (p *Paddle) Thickness() float64 {
	return p.thickness
}

// Top returns the y coordinate of the paddle's upper face.
func (p *Paddle) Top() float64 {
	return p.Position.Y - p.thickness/2
}

// Shape returns the collision rectangle.
func (p *Paddle) Shape() shape.Rect {
	return shape.NewRect(p.Position, p.Width, p.thickness)
}
