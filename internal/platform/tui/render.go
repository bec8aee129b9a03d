package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
)

// ANSI 256-color codes per palette slot. The default slot keeps the
// terminal's own foreground.
var ansiCodes = [core.ColorCount]string{
	core.ColorDefault: "",

	core.ColorWall:   "7",
	core.ColorPit:    "1",
	core.ColorBall:   "15",
	core.ColorPaddle: "15",

	core.ColorBrick:        "14",
	core.ColorBrickHard:    "11",
	core.ColorBrickCracked: "208",
	core.ColorBrickSuper:   "245",

	core.ColorBonusSlow:   "1",
	core.ColorBonusExpand: "2",
	core.ColorBonusDivide: "4",
	core.ColorBonusLife:   "6",

	core.ColorText:   "15",
	core.ColorLives:  "1",
	core.ColorNotice: "11",
	core.ColorWin:    "10",
	core.ColorLose:   "9",
}

var cellStyles = func() []lipgloss.Style {
	styles := make([]lipgloss.Style, len(ansiCodes))
	for i, code := range ansiCodes {
		styles[i] = lipgloss.NewStyle()
		if code != "" {
			styles[i] = styles[i].Foreground(lipgloss.Color(code))
		}
	}
	return styles
}()

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(cellStyles) {
		return cellStyles[c]
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Runs of equally colored cells share one escape sequence.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteByte('\n')
		}

		for x := 0; x < s.Width(); {
			color := s.GetCell(x, y).Color
			run.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
			}
			sb.WriteString(styleFor(color).Render(run.String()))
		}
	}
	return sb.String()
}
