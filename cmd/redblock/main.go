// redblock is Red Block Rescue, a terminal game about steering an
// autonomous red block onto a switch and into a caged target.
//
// Usage:
//
//	redblock play              - Play a round
//	redblock menu              - Start the interactive menu
//	redblock serve             - Start SSH server for remote play
//	redblock scores            - Show high scores and recent runs
//	redblock generate          - Generate a level and show how it was picked
//	redblock levels            - List saved levels
//	redblock config            - Print or check the game configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible levels
//	--db <path>        - Set database path (default: ~/.redblock/redblock.db)
//	--log-file <path>  - Write logs to a file
//	--log-level <lvl>  - Log level: debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/redblock/internal/games/redblock"
	"github.com/vovakirdan/redblock/internal/platform/tui"
	"github.com/vovakirdan/redblock/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagLogFile  string
	flagLogLevel string

	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	closeLog()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "redblock",
	Short: "Red Block Rescue - steer the red block home in your terminal",
	Long: `Red Block Rescue is a terminal game. Bump the autonomous red block
with your blue block to steer it onto the magenta switch. The switch opens
the green target zone, starts a countdown and releases hazards. Bring the
red block into the target before time runs out.

Available commands:
  play      - Play directly
  menu      - Interactive menu with high scores
  serve     - Start SSH server for remote play
  scores    - View high scores and recent runs
  generate  - Generate a level, preview it and optionally save it
  levels    - List saved levels
  config    - Print or check the game configuration

Examples:
  redblock play
  redblock play --seed 42
  redblock play --level ./levels/tricky.yaml
  redblock menu
  redblock serve --ssh :2222
  redblock generate --seed 7 --save`,
	SilenceUsage:      true,
	PersistentPreRunE: setupLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to scores database")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(configCmd)
}

// setupLogging sends game and platform logs to --log-file. Without it
// they are discarded, since the game owns the terminal.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("--fps must be positive, got %d", flagFPS)
	}

	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("--log-level: %w", err)
	}
	if flagLogFile == "" {
		return nil
	}

	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	logFile = f

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "redblock",
		Level:           level,
	})
	redblock.SetLogger(logger)
	tui.SetLogger(logger)
	logger.Debug("logging started", "command", cmd.Name())
	return nil
}

func closeLog() {
	if logFile != nil {
		logFile.Close()
	}
}

// newGame is the factory the platform uses for every round.
func newGame() tui.Game {
	return redblock.New()
}
