package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
)

// runMenu is the root command: menu, round, scoreboard, repeat.
func runMenu(_ *cobra.Command, _ []string) error {
	opts, cleanup, err := session()
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.RunSession(opts)
}
