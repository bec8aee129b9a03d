package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-arkanoid/internal/level"
	"github.com/vovakirdan/tui-arkanoid/internal/platform/tui"
	"github.com/vovakirdan/tui-arkanoid/internal/storage"
)

var flagScoresTUI bool

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show high scores",
	Long: `Display the top 10 runs for a level, or a summary of every level
played so far. With --tui the interactive scoreboard opens instead.

Examples:
  arkanoid scores
  arkanoid scores 01-classic
  arkanoid scores --tui`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagScoresTUI, "tui", false, "Open the interactive scoreboard")
}

func runScores(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}
	levels, err := loadLevels(logger)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening scores database: %w", err)
	}
	defer store.Close()

	if flagScoresTUI {
		w, h := terminalSize()
		return tui.RunScoreboard(store, levels, w, h)
	}

	out := cmd.OutOrStdout()
	if len(args) == 0 {
		return printSummary(out, store, levels)
	}

	lvl, ok := level.Find(levels, args[0])
	if !ok {
		return fmt.Errorf("unknown level %q, run 'arkanoid levels' to see available levels", args[0])
	}
	return printRuns(out, store, lvl)
}

func printRuns(out io.Writer, store *storage.Store, lvl *level.Level) error {
	runs, err := store.TopRuns(lvl.ID, 10)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "High Scores - %s\n\n", lvl.Name)
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintf(out, "\nPlay 'arkanoid play %s' to set the first high score!\n", lvl.ID)
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "RANK\tPLAYER\tSCORE\tRESULT\tDATE")
	for i, r := range runs {
		result := "lost"
		if r.Won {
			result = "cleared"
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\n", i+1, r.Player, r.Score, result, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func printSummary(out io.Writer, store *storage.Store, levels []*level.Level) error {
	stats, err := store.Stats()
	if err != nil {
		return err
	}
	if len(stats) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "LEVEL\tRUNS\tWINS\tBEST\tAVERAGE")
	for _, lvl := range levels {
		st, ok := stats[lvl.ID]
		if !ok {
			continue
		}
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\t%.0f\n", lvl.Name, st.Runs, st.Wins, st.HighScore, st.AvgScore)
	}
	return tw.Flush()
}
