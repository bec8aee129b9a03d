package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the given level, or the first campaign level.

Controls:
  Left/Right, A/D  - Move the paddle
  Space            - Launch a held ball
  P                - Pause
  R                - Restart (paused or after the round)
  Esc              - Pause, then leave
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - Slow start, an extra life and more bonuses
  normal - Ball speeds up with the score
  hard   - Fast start and fewer bonuses
  fixed  - No speed-up during the round

Examples:
  arkanoid play
  arkanoid play 05-fortress --difficulty hard
  arkanoid play walls --levels-dir ./my-levels
  arkanoid play --config ./arkanoid.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	opts, cleanup, err := session()
	if err != nil {
		return err
	}
	defer cleanup()

	if len(opts.Levels) == 0 {
		return fmt.Errorf("no levels available")
	}
	lvl := opts.Levels[0]
	if len(args) == 1 {
		var ok bool
		if lvl, ok = level.Find(opts.Levels, args[0]); !ok {
			return fmt.Errorf("unknown level %q, run 'arkanoid levels' to see available levels", args[0])
		}
	}

	return tui.Run(opts, lvl)
}
