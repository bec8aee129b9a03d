package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// Wall is one boundary of the play field.
type Wall struct {
	Width  float64
	Height float64
	Shape  shape.HalfPlaneWall
}

// Bounce reports whether the wall reflects. Only the pit does not.
func (w Wall) Bounce() bool {
	return w.Shape.Orientation != shape.Bottom
}

// Pit reports whether the wall is the bottom removal boundary.
func (w Wall) Pit() bool {
	return !w.Bounce()
}

// MakeWalls builds the top, left and right walls and the pit for a field of
// the given size, in that order.
func MakeWalls(width, height float64) []Wall {
	return []Wall{
		{Width: width, Height: 0, Shape: shape.HalfPlaneWall{Orientation: shape.Top, Center: geom.Pt(width/2, 0)}},
		{Width: 0, Height: height, Shape: shape.HalfPlaneWall{Orientation: shape.Left, Center: geom.Pt(0, height/2)}},
		{Width: 0, Height: height, Shape: shape.HalfPlaneWall{Orientation: shape.Right, Center: geom.Pt(width, height/2)}},
		{Width: width, Height: 0, Shape: shape.HalfPlaneWall{Orientation: shape.Bottom, Center: geom.Pt(width/2, height)}},
	}
}
