// Package level builds brick layouts for the simulation: the built-in
// campaign written as ASCII maps, and level files loaded from disk.
package level

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-arkanoid/internal/arkanoid"
)

// Play-field size shared by every level.
const (
	FieldWidth  = 800.0
	FieldHeight = 600.0
)

// Grid limits. Rows stop well above the paddle.
const (
	MaxCols = int(FieldWidth / arkanoid.BrickCellWidth)
	MaxRows = 12
)

// Level is a playable brick layout. It satisfies arkanoid.Level.
type Level struct {
	ID       string
	Name     string
	FilePath string // Empty for built-in levels

	bricks   []arkanoid.Brick
	occupied map[cell]bool
}

// cell is a (col, row) grid position.
type cell struct{ col, row int }

// Bricks returns the initial bricks.
func (l *Level) Bricks() []arkanoid.Brick { return l.bricks }

// Width returns the play-field width.
func (l *Level) Width() float64 { return FieldWidth }

// Height returns the play-field height.
func (l *Level) Height() float64 { return FieldHeight }

// Breakable returns the number of bricks that must be destroyed to win.
func (l *Level) Breakable() int {
	n := 0
	for _, b := range l.bricks {
		if b.Breakable {
			n++
		}
	}
	return n
}

// Parse creates a Level from an ASCII map.
// Characters:
//
//	'#' = simple brick (one hit)
//	'H' = hard brick (two hits)
//	'X' = super brick (unbreakable)
//	'.' or ' ' = empty
func Parse(id, name string, lines []string) (*Level, error) {
	lvl := &Level{ID: id, Name: name}
	if err := lvl.addRows(lines); err != nil {
		return nil, err
	}
	return lvl, nil
}

// MustParse is Parse for layouts known to be valid.
func MustParse(id, name string, lines []string) *Level {
	lvl, err := Parse(id, name, lines)
	if err != nil {
		panic(err)
	}
	return lvl
}

func (l *Level) addRows(lines []string) error {
	if len(lines) > MaxRows {
		return fmt.Errorf("level %s: %d rows, at most %d allowed", l.ID, len(lines), MaxRows)
	}
	for row, line := range lines {
		if len(line) > MaxCols {
			return fmt.Errorf("level %s: row %d is %d wide, at most %d allowed", l.ID, row, len(line), MaxCols)
		}
		for col := range len(line) {
			ch := line[col]
			if ch == '.' || ch == ' ' {
				continue
			}
			kind, ok := kindForRune(ch)
			if !ok {
				return fmt.Errorf("level %s: unknown brick %q at row %d col %d", l.ID, ch, row, col)
			}
			if err := l.place(kind, col, row); err != nil {
				return err
			}
		}
	}
	return nil
}

func (l *Level) addBrick(kindName string, col, row int) error {
	kind, ok := ParseKind(kindName)
	if !ok {
		return fmt.Errorf("level %s: unknown brick type %q", l.ID, kindName)
	}
	if col < 0 || col >= MaxCols || row < 0 || row >= MaxRows {
		return fmt.Errorf("level %s: brick at (%d, %d) is off the grid", l.ID, col, row)
	}
	return l.place(kind, col, row)
}

// place adds a brick to an empty grid cell.
func (l *Level) place(kind arkanoid.BrickKind, col, row int) error {
	at := cell{col, row}
	if l.occupied[at] {
		return fmt.Errorf("level %s: cell (%d, %d) already holds a brick", l.ID, col, row)
	}
	if l.occupied == nil {
		l.occupied = make(map[cell]bool)
	}
	l.occupied[at] = true
	l.bricks = append(l.bricks, arkanoid.BrickAt(kind, col, row))
	return nil
}

func kindForRune(ch byte) (arkanoid.BrickKind, bool) {
	switch ch {
	case '#':
		return arkanoid.BrickSimple, true
	case 'H', 'h':
		return arkanoid.BrickHard, true
	case 'X', 'x':
		return arkanoid.BrickSuper, true
	default:
		return 0, false
	}
}

// ParseKind maps a brick type name from a level file to its kind.
func ParseKind(name string) (arkanoid.BrickKind, bool) {
	switch strings.ToLower(name) {
	case "simple":
		return arkanoid.BrickSimple, true
	case "hard":
		return arkanoid.BrickHard, true
	case "super":
		return arkanoid.BrickSuper, true
	default:
		return 0, false
	}
}

// Default is a ten by six wall of simple bricks.
func Default() *Level {
	lvl := &Level{ID: "default", Name: "Default"}
	for col := range 10 {
		for row := range 6 {
			_ = lvl.place(arkanoid.BrickSimple, col, row)
		}
	}
	return lvl
}
