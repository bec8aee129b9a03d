// Package geom provides the 2D point and polar vector math the simulation is
// built on. Coordinates are screen-oriented: x grows to the right, y grows
// downward, angles are in radians measured from the positive x axis.
package geom

import "math"

// Cardinal directions expressed as angles in screen space.
const (
	Up    = -math.Pi / 2
	Down  = math.Pi / 2
	Left  = math.Pi
	Right = 0.0
)

// Point is a Cartesian position or displacement.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + o.
func (p Point) Add(o Point) Point {
	return Point{X: p.X + o.X, Y: p.Y + o.Y}
}

// Sub returns p - o.
func (p Point) Sub(o Point) Point {
	return Point{X: p.X - o.X, Y: p.Y - o.Y}
}

// Scale multiplies both components by k.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// Norm returns the Euclidean length of p.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Polar converts p into polar form.
func (p Point) Polar() PolarVector {
	return FromPoint(p)
}

// PolarVector is a velocity or displacement in polar form.
// Norm is expected to be non-negative.
type PolarVector struct {
	Angle float64
	Norm  float64
}

// Polar is shorthand for PolarVector{Angle: angle, Norm: norm}.
func Polar(angle, norm float64) PolarVector {
	return PolarVector{Angle: angle, Norm: norm}
}

// FromPoint converts a Cartesian displacement into polar form.
func FromPoint(p Point) PolarVector {
	return PolarVector{
		Angle: math.Atan2(p.Y, p.X),
		Norm:  math.Hypot(p.X, p.Y),
	}
}

// X returns the horizontal component.
func (v PolarVector) X() float64 {
	return v.Norm * math.Cos(v.Angle)
}

// Y returns the vertical component.
func (v PolarVector) Y() float64 {
	return v.Norm * math.Sin(v.Angle)
}

// Point converts v into Cartesian form.
func (v PolarVector) Point() Point {
	return Point{X: v.X(), Y: v.Y()}
}

// Add sums two vectors through their Cartesian forms.
func (v PolarVector) Add(o PolarVector) PolarVector {
	return FromPoint(v.Point().Add(o.Point()))
}

// Scale multiplies the norm by k, leaving the angle untouched.
func (v PolarVector) Scale(k float64) PolarVector {
	return PolarVector{Angle: v.Angle, Norm: v.Norm * k}
}

// NormalizeAngle maps a finite angle into [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	// math.Mod of a tiny negative value can round up to exactly 2π.
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// Reflect bounces a heading theta off a surface whose collision normal is
// normal. The normal follows the direction-of-separation convention, so the
// result is -theta + 2·normal + π, normalized into [0, 2π).
func Reflect(theta, normal float64) float64 {
	return NormalizeAngle(-theta + 2*normal + math.Pi)
}

// Clamp restricts a value to [lo, hi].
func Clamp(val, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, val))
}
