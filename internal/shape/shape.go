// Package shape implements the collision geometry of the play field: circles,
// axis-aligned rectangles and infinite half-plane walls, plus the pairwise
// Collide protocol that reports a separation normal and penetration depth.
//
// Shapes are plain values recomputed from entity state every frame; nothing
// here is cached between frames.
package shape

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Collision describes an overlap between two shapes.
// Normal is the direction of separation in radians and Depth is the distance
// to travel along it to separate the shapes. A zero Depth is a valid
// touching contact.
type Collision struct {
	Normal float64
	Depth  float64
}

// Circle is a disc.
type Circle struct {
	Center geom.Point
	Radius float64
}

// NewCircle builds a circle and panics on a non-positive radius.
func NewCircle(center geom.Point, radius float64) Circle {
	if !(radius > 0) || math.IsInf(radius, 0) {
		panic(fmt.Sprintf("shape: invalid circle radius %v", radius))
	}
	return Circle{Center: center, Radius: radius}
}

// Rect is an axis-aligned rectangle defined by its center and full extents.
type Rect struct {
	Center geom.Point
	Width  float64
	Height float64
}

// NewRect builds a rectangle and panics on non-positive extents.
func NewRect(center geom.Point, width, height float64) Rect {
	if !(width > 0) || !(height > 0) || math.IsInf(width, 0) || math.IsInf(height, 0) {
		panic(fmt.Sprintf("shape: invalid rect extents %vx%v", width, height))
	}
	return Rect{Center: center, Width: width, Height: height}
}

// OuterRadius is the half-diagonal of the rectangle.
func (r Rect) OuterRadius() float64 {
	return math.Hypot(r.Width/2, r.Height/2)
}

// Left returns the x coordinate of the left edge.
func (r Rect) Left() float64 { return r.Center.X - r.Width/2 }

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.Center.X + r.Width/2 }

// Top returns the y coordinate of the top edge.
func (r Rect) Top() float64 { return r.Center.Y - r.Height/2 }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Center.Y + r.Height/2 }

// Orientation selects which side of the play field a wall bounds.
type Orientation int

const (
	Top Orientation = iota
	Bottom
	Left
	Right
)

// String returns the orientation name.
func (o Orientation) String() string {
	switch o {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Normal returns the fixed direction a wall pushes overlapping shapes.
func (o Orientation) Normal() float64 {
	switch o {
	case Top:
		return geom.Down
	case Bottom:
		return geom.Up
	case Left:
		return geom.Right
	default:
		return geom.Left
	}
}

// HalfPlaneWall is an infinite boundary line. Top and Bottom walls sit at
// Center.Y, Left and Right walls sit at Center.X.
type HalfPlaneWall struct {
	Orientation Orientation
	Center      geom.Point
}

// Kind tags the active variant of a Shape.
type Kind int

const (
	KindPoint Kind = iota
	KindCircle
	KindRect
	KindWall
)

// Shape is a tagged union over the supported shape kinds.
type Shape struct {
	Kind   Kind
	Point  geom.Point
	Circle Circle
	Rect   Rect
	Wall   HalfPlaneWall
}

// OfPoint wraps a point.
func OfPoint(p geom.Point) Shape { return Shape{Kind: KindPoint, Point: p} }

// OfCircle wraps a circle.
func OfCircle(c Circle) Shape { return Shape{Kind: KindCircle, Circle: c} }

// OfRect wraps a rectangle.
func OfRect(r Rect) Shape { return Shape{Kind: KindRect, Rect: r} }

// OfWall wraps a half-plane wall.
func OfWall(w HalfPlaneWall) Shape { return Shape{Kind: KindWall, Wall: w} }
