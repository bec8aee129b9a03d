package tui

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Canvas draws simulation shapes into an area of a Screen.
//
// Terminal cells are roughly twice as tall as they are wide, so the canvas
// exposes a surface of one unit per column and two units per row. Shapes are
// clipped to the area; wall lines are clamped onto its border so the field
// edge stays visible.
type Canvas struct {
	screen *core.Screen
	area   core.Rect
}

// NewCanvas returns a canvas over area of s.
func NewCanvas(s *core.Screen, area core.Rect) *Canvas {
	return &Canvas{screen: s, area: area}
}

// Context fits a play field of the given size onto the canvas surface.
func (c *Canvas) Context(width, height float64) arkanoid.RenderContext {
	return arkanoid.NewRenderContext(
		arkanoid.Size{Width: width, Height: height},
		arkanoid.Size{Width: float64(c.area.W), Height: float64(c.area.H * 2)},
	)
}

// plot sets a cell given area-relative coordinates.
func (c *Canvas) plot(x, y int, r rune, color core.Color) {
	if x < 0 || x >= c.area.W || y < 0 || y >= c.area.H {
		return
	}
	c.screen.SetColor(c.area.X+x, c.area.Y+y, r, color)
}

// FillRect draws a block. Blocks three or more cells wide get half-block
// ends so that neighbours stay apart.
func (c *Canvas) FillRect(center geom.Point, w, h float64, color core.Color) {
	x0, x1 := span(center.X-w/2, center.X+w/2)
	y0, y1 := span((center.Y-h/2)/2, (center.Y+h/2)/2)

	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			r := '█'
			if x1-x0 >= 3 {
				switch x {
				case x0:
					r = '▐'
				case x1 - 1:
					r = '▌'
				}
			}
			c.plot(x, y, r, color)
		}
	}
}

// FillCircle marks the cell under the center, plus every cell whose center
// lies within radius.
func (c *Canvas) FillCircle(center geom.Point, radius float64, color core.Color) {
	cx, cy := cellOf(center)
	c.plot(cx, cy, '●', color)

	reach := int(radius)
	for dy := -reach / 2; dy <= reach/2; dy++ {
		for dx := -reach; dx <= reach; dx++ {
			if float64(dx*dx+4*dy*dy) <= radius*radius {
				c.plot(cx+dx, cy+dy, '●', color)
			}
		}
	}
}

// DrawLine draws axis-aligned lines with box-drawing runes and anything else
// as a dotted trail.
func (c *Canvas) DrawLine(from, to geom.Point, color core.Color) {
	fx, fy := cellOf(from)
	tx, ty := cellOf(to)

	switch {
	case fy == ty:
		y := core.Clamp(fy, 0, c.area.H-1)
		for x := max(min(fx, tx), 0); x <= min(max(fx, tx), c.area.W-1); x++ {
			c.plot(x, y, '─', color)
		}
	case fx == tx:
		x := core.Clamp(fx, 0, c.area.W-1)
		for y := max(min(fy, ty), 0); y <= min(max(fy, ty), c.area.H-1); y++ {
			c.plot(x, y, '│', color)
		}
	default:
		steps := max(abs(tx-fx), abs(ty-fy))
		for i := 0; i <= steps; i++ {
			p := from.Add(to.Sub(from).Scale(float64(i) / float64(steps)))
			x, y := cellOf(p)
			c.plot(x, y, '·', color)
		}
	}
}

// cellOf maps a surface point onto the cell that contains it.
func cellOf(p geom.Point) (int, int) {
	return int(math.Floor(p.X)), int(math.Floor(p.Y / 2))
}

// span rounds a surface interval to cells, never narrower than one.
func span(lo, hi float64) (int, int) {
	a, b := int(math.Round(lo)), int(math.Round(hi))
	if b <= a {
		b = a + 1
	}
	return a, b
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
