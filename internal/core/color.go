package core

// Color is a palette slot. Slots name what is drawn, not a hue; the
// platform decides how each slot looks on a terminal.
type Color uint8

const (
	ColorDefault Color = iota

	// Play field
	ColorWall
	ColorPit
	ColorBall
	ColorPaddle

	// Bricks by kind and damage
	ColorBrick        // One-hit brick
	ColorBrickHard    // Hard brick, untouched
	ColorBrickCracked // Hard brick with one hit left
	ColorBrickSuper

	// Falling bonuses
	ColorBonusSlow
	ColorBonusExpand
	ColorBonusDivide
	ColorBonusLife

	// HUD and banners
	ColorText
	ColorLives
	ColorNotice
	ColorWin
	ColorLose

	ColorCount
)
