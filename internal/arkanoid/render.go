package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Renderer receives draw calls in target coordinates.
type Renderer interface {
	FillRect(center geom.Point, w, h float64, color core.Color)
	FillCircle(center geom.Point, r float64, color core.Color)
	DrawLine(from, to geom.Point, color core.Color)
}

// Size is a width and height pair.
type Size struct {
	Width, Height float64
}

// RenderContext maps play-field coordinates onto a target surface, keeping
// the aspect ratio and centering the field inside the target.
type RenderContext struct {
	Scale  float64
	Offset geom.Point
	base   Size
}

// NewRenderContext fits base into size.
func NewRenderContext(base, size Size) RenderContext {
	rc := RenderContext{base: base}
	rc.Fit(size)
	return rc
}

// Fit recomputes the scale and letterbox offset for a new target size.
func (rc *RenderContext) Fit(size Size) {
	rc.Scale = minScale(rc.base, size)
	rc.Offset = geom.Pt(
		(size.Width-rc.base.Width*rc.Scale)/2,
		(size.Height-rc.base.Height*rc.Scale)/2,
	)
}

func minScale(base, size Size) float64 {
	if base.Width <= 0 || base.Height <= 0 {
		return 1
	}
	return math.Min(size.Width/base.Width, size.Height/base.Height)
}

// ScaleLen converts a play-field length into target units.
func (rc RenderContext) ScaleLen(px float64) float64 {
	return px * rc.Scale
}

// Translate converts a play-field point into target coordinates.
func (rc RenderContext) Translate(p geom.Point) geom.Point {
	return p.Scale(rc.Scale).Add(rc.Offset)
}

// Render emits draw calls for bricks, walls, falling bonuses, balls and the
// paddle, in that order. It does not modify the state.
func (s *State) Render(target Renderer, ctx RenderContext) {
	for i := range s.bricks {
		b := &s.bricks[i]
		target.FillRect(ctx.Translate(b.Center), ctx.ScaleLen(b.Width), ctx.ScaleLen(b.Height), b.Color())
	}

	for _, w := range s.walls {
		from, to := w.segment()
		color := core.ColorWall
		if w.Pit() {
			color = core.ColorPit
		}
		target.DrawLine(ctx.Translate(from), ctx.Translate(to), color)
	}

	for i := range s.falling {
		f := &s.falling[i]
		target.FillCircle(ctx.Translate(f.Position), ctx.ScaleLen(f.Radius), f.Type.Color())
	}

	for i := range s.balls {
		b := &s.balls[i]
		target.FillCircle(ctx.Translate(b.Position), ctx.ScaleLen(b.Radius), b.Color)
	}

	target.FillRect(
		ctx.Translate(s.paddle.Position),
		ctx.ScaleLen(s.paddle.Width),
		ctx.ScaleLen(s.paddle.Thickness()),
		core.ColorPaddle,
	)
}

// segment returns the visible extent of the wall line.
func (w Wall) segment() (geom.Point, geom.Point) {
	c := w.Shape.Center
	if w.Height == 0 {
		return geom.Pt(c.X-w.Width/2, c.Y), geom.Pt(c.X+w.Width/2, c.Y)
	}
	return geom.Pt(c.X, c.Y-w.Height/2), geom.Pt(c.X, c.Y+w.Height/2)
}
