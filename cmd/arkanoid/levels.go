package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/level"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long: `Shows the built-in campaign followed by the levels found in --levels-dir.
Files that fail to load are reported and skipped.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	levels, err := loadLevels(logger)
	if err != nil {
		return err
	}
	printLevels(cmd.OutOrStdout(), levels)
	return nil
}

func printLevels(out io.Writer, levels []*level.Level) {
	if len(levels) == 0 {
		fmt.Fprintln(out, "No levels available.")
		return
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tBRICKS\tBREAKABLE\tSOURCE")
	for _, lvl := range levels {
		source := lvl.FilePath
		if source == "" {
			source = "built-in"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\n", lvl.ID, lvl.Name, len(lvl.Bricks()), lvl.Breakable(), source)
	}
	tw.Flush()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'arkanoid play <id>' to play a level.")
}
