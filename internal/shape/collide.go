package shape

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Collide dispatches on the kinds of a and b. Pairs without a collision
// routine report no collision.
func Collide(a, b Shape) (Collision, bool) {
	switch {
	case a.Kind == KindCircle && b.Kind == KindCircle:
		return CircleCircle(a.Circle, b.Circle)
	case a.Kind == KindCircle && b.Kind == KindRect:
		return CircleRect(a.Circle, b.Rect)
	case a.Kind == KindRect && b.Kind == KindCircle:
		return RectCircle(a.Rect, b.Circle)
	case a.Kind == KindRect && b.Kind == KindPoint:
		return RectPoint(a.Rect, b.Point)
	case a.Kind == KindCircle && b.Kind == KindPoint:
		return CirclePoint(a.Circle, b.Point)
	case a.Kind == KindWall && b.Kind == KindCircle:
		return WallCircle(a.Wall, b.Circle)
	case a.Kind == KindWall && b.Kind == KindRect:
		return WallRect(a.Wall, b.Rect)
	}
	return Collision{}, false
}

// CircleCircle overlaps when the centers are closer than the summed radii.
// The normal points from b's center toward a's center.
func CircleCircle(a, b Circle) (Collision, bool) {
	d := a.Center.Sub(b.Center).Polar()
	sum := a.Radius + b.Radius
	if d.Norm < sum {
		return Collision{Normal: d.Angle, Depth: sum - d.Norm}, true
	}
	return Collision{}, false
}

// CirclePoint overlaps when p lies strictly inside c.
// The normal points from p toward the circle's center.
func CirclePoint(c Circle, p geom.Point) (Collision, bool) {
	d := c.Center.Sub(p).Polar()
	if d.Norm < c.Radius {
		return Collision{Normal: d.Angle, Depth: c.Radius - d.Norm}, true
	}
	return Collision{}, false
}

// RectPoint reports the face of r nearest to p when p is strictly inside.
// The normal points out of that face, so a point nearest the left face gets
// Left. Ties resolve in the order top, bottom, right, left.
func RectPoint(r Rect, p geom.Point) (Collision, bool) {
	diff := p.Sub(r.Center)
	dTop := r.Height/2 + diff.Y
	dBottom := r.Height/2 - diff.Y
	dRight := r.Width/2 - diff.X
	dLeft := r.Width/2 + diff.X

	if dTop <= 0 || dBottom <= 0 || dRight <= 0 || dLeft <= 0 {
		return Collision{}, false
	}

	m := math.Min(math.Min(dTop, dBottom), math.Min(dRight, dLeft))
	switch m {
	case dTop:
		return Collision{Normal: geom.Up, Depth: dTop}, true
	case dBottom:
		return Collision{Normal: geom.Down, Depth: dBottom}, true
	case dRight:
		return Collision{Normal: geom.Right, Depth: dRight}, true
	default:
		return Collision{Normal: geom.Left, Depth: dLeft}, true
	}
}

// RectCircle tests a circle against a rectangle: a cheap bounding check,
// then the two radius-grown capsules through the faces, then the four
// rounded corners. Faces are always tried before corners. Every normal
// points away from the rectangle, so moving the circle by Depth along it
// separates the two.
func RectCircle(r Rect, c Circle) (Collision, bool) {
	if r.Center.Sub(c.Center).Norm() > r.OuterRadius()+c.Radius {
		return Collision{}, false
	}

	tall := Rect{Center: r.Center, Width: r.Width, Height: r.Height + 2*c.Radius}
	if col, ok := RectPoint(tall, c.Center); ok {
		return col, true
	}

	wide := Rect{Center: r.Center, Width: r.Width + 2*c.Radius, Height: r.Height}
	if col, ok := RectPoint(wide, c.Center); ok {
		return col, true
	}

	corners := [4]geom.Point{
		{X: r.Left(), Y: r.Top()},
		{X: r.Right(), Y: r.Top()},
		{X: r.Left(), Y: r.Bottom()},
		{X: r.Right(), Y: r.Bottom()},
	}
	for _, corner := range corners {
		if col, ok := CirclePoint(Circle{Center: corner, Radius: c.Radius}, c.Center); ok {
			// Point away from the corner, toward the circle's center.
			col.Normal = geom.NormalizeAngle(col.Normal + math.Pi)
			return col, true
		}
	}

	return Collision{}, false
}

// CircleRect delegates to RectCircle and returns its normal unchanged.
func CircleRect(c Circle, r Rect) (Collision, bool) {
	return RectCircle(r, c)
}

// WallCircle overlaps when the circle's near edge crosses the wall line.
func WallCircle(w HalfPlaneWall, c Circle) (Collision, bool) {
	var depth float64
	switch w.Orientation {
	case Top:
		edge := c.Center.Y - c.Radius
		if !(edge < w.Center.Y) {
			return Collision{}, false
		}
		depth = math.Abs(w.Center.Y - edge)
	case Bottom:
		edge := c.Center.Y + c.Radius
		if !(edge > w.Center.Y) {
			return Collision{}, false
		}
		depth = math.Abs(edge - w.Center.Y)
	case Left:
		edge := c.Center.X - c.Radius
		if !(edge < w.Center.X) {
			return Collision{}, false
		}
		depth = math.Abs(w.Center.X - edge)
	case Right:
		edge := c.Center.X + c.Radius
		if !(edge > w.Center.X) {
			return Collision{}, false
		}
		depth = math.Abs(edge - w.Center.X)
	default:
		return Collision{}, false
	}
	return Collision{Normal: w.Orientation.Normal(), Depth: depth}, true
}

// WallRect is WallCircle using the rectangle's half extents.
func WallRect(w HalfPlaneWall, r Rect) (Collision, bool) {
	switch w.Orientation {
	case Top:
		if r.Top() < w.Center.Y {
			return Collision{Normal: geom.Down, Depth: w.Center.Y - r.Top()}, true
		}
	case Bottom:
		if r.Bottom() > w.Center.Y {
			return Collision{Normal: geom.Up, Depth: r.Bottom() - w.Center.Y}, true
		}
	case Left:
		if r.Left() < w.Center.X {
			return Collision{Normal: geom.Right, Depth: w.Center.X - r.Left()}, true
		}
	case Right:
		if r.Right() > w.Center.X {
			return Collision{Normal: geom.Left, Depth: r.Right() - w.Center.X}, true
		}
	}
	return Collision{}, false
}
