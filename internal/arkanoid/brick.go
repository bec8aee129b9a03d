package arkanoid

import (
	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
	"github.com/vovakirdan/tui-arkanoid/internal/shape"
)

// Brick grid layout in play-field pixels.
const (
	BrickCellWidth  = 80.0
	BrickCellHeight = 30.0
	BrickPadding    = 2.0
	BrickTopOffset  = 40.0
)

// BrickKind is the declarative brick type found in level files.
type BrickKind int

const (
	BrickSimple BrickKind = iota // One hit
	BrickHard                    // Two hits
	BrickSuper                   // Unbreakable
)

// String returns the kind name.
func (k BrickKind) String() string {
	switch k {
	case BrickSimple:
		return "simple"
	case BrickHard:
		return "hard"
	case BrickSuper:
		return "super"
	default:
		return "unknown"
	}
}

// Brick is a static block. Unbreakable bricks stay alive forever.
type Brick struct {
	Center    geom.Point
	Width     float64
	Height    float64
	Breakable bool
	HitPoints uint8
	Kind      BrickKind
}

// NewBrick creates a brick of the given kind.
func NewBrick(kind BrickKind, center geom.Point, width, height float64) Brick {
	b := Brick{
		Center: center,
		Width:  width,
		Height: height,
		Kind:   kind,
	}
	switch kind {
	case BrickHard:
		b.Breakable = true
		b.HitPoints = 2
	case BrickSuper:
		b.Breakable = false
		b.HitPoints = 0
	default:
		b.Breakable = true
		b.HitPoints = 1
	}
	return b
}

// BrickAt places a brick in grid cell (col, row).
func BrickAt(kind BrickKind, col, row int) Brick {
	center := geom.Pt(
		(float64(col)+0.5)*BrickCellWidth,
		BrickTopOffset+(float64(row)+0.5)*BrickCellHeight,
	)
	return NewBrick(kind, center, BrickCellWidth-BrickPadding, BrickCellHeight-BrickPadding)
}

// Damage removes one hit point from a breakable brick. Other bricks and
// exhausted bricks are left untouched.
func (b *Brick) Damage() {
	if b.Breakable && b.HitPoints > 0 {
		b.HitPoints--
	}
}

// Alive reports whether the brick is still in play.
func (b *Brick) Alive() bool {
	return b.HitPoints > 0 || !b.Breakable
}

// Points is the score for destroying a brick of this kind.
func (b *Brick) Points() int {
	switch b.Kind {
	case BrickSimple:
		return 10
	case BrickHard:
		return 20
	default:
		return 0
	}
}

// Color returns the display color; hard bricks fade as they take damage.
func (b *Brick) Color() core.Color {
	switch {
	case !b.Breakable:
		return core.ColorBrickSuper
	case b.Kind == BrickHard && b.HitPoints > 1:
		return core.ColorBrickHard
	case b.Kind == BrickHard:
		return core.ColorBrickCracked
	default:
		return core.ColorBrick
	}
}

// Shape returns the collision rectangle.
func (b *Brick) Shape() shape.Rect {
	return shape.NewRect(b.Center, b.Width, b.Height)
}
