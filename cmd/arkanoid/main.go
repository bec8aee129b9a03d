// arkanoid plays brick-breaking levels in the terminal.
//
// Usage:
//
//	arkanoid                    - Pick a level from the menu
//	arkanoid play [level]       - Play a level directly
//	arkanoid levels             - List available levels
//	arkanoid scores [level]     - Show high scores
//	arkanoid serve              - Start SSH server for remote play
//	arkanoid config             - Print the default configuration
//
// Global flags:
//
//	--fps <rate>           - Set tick rate (default: 60)
//	--seed <value>         - Set bonus RNG seed for reproducible rounds
//	--db <path>            - Set database path (default: ~/.arkanoid/scores.db)
//	--config <path>        - Load a configuration file
//	--difficulty <preset>  - easy, normal, hard or fixed
//	--levels-dir <dir>     - Add level files from a directory
//	--log-level <level>    - debug, info, warn or error
//	--log-file <path>      - Write logs to a file while the UI is up
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	flagFPS        int
	flagSeed       int64
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arkanoid",
	Short: "Arkanoid - break bricks in your terminal",
	Long: `Arkanoid is a terminal brick breaker with bouncing balls, falling
bonuses and a built-in campaign. Extra levels can be written as YAML,
TOML or JSON files.

Available commands:
  play     - Play a level directly
  levels   - Show all available levels
  scores   - View high scores
  serve    - Start SSH server for remote play
  config   - Print the default configuration

Examples:
  arkanoid
  arkanoid play 03-checker --difficulty hard
  arkanoid levels --levels-dir ./my-levels
  arkanoid serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runMenu,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.Int64Var(&flagSeed, "seed", 0, "Bonus RNG seed (0 = random based on time)")
	pf.StringVar(&flagDBPath, "db", "~/.arkanoid/scores.db", "Path to scores database")
	pf.StringVar(&flagConfig, "config", "", "Path to a custom config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level files")
	pf.StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&flagLogFile, "log-file", "", "Log file used while the UI is running (default: discard)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
