package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/redblock/internal/core"
	"github.com/vovakirdan/redblock/internal/games/redblock"
	"github.com/vovakirdan/redblock/internal/games/redblock/levels"
	"github.com/vovakirdan/redblock/internal/platform/tui"
	"github.com/vovakirdan/redblock/internal/storage"
)

var (
	flagConfig string
	flagLevel  string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Red Block Rescue",
	Long: `Start playing Red Block Rescue.

Controls:
  Arrows/WASD  - Move the blue block
  Enter/Space  - Start, next level, try again
  P            - Pause
  B/Esc        - Leave the game
  Ctrl+S       - Save a screenshot to ~/.redblock/screenshots
  Q/Ctrl+C     - Quit

Each round starts on a freshly generated level. With --level, every round
replays the saved layout instead; pass a file path or the ID of a level
in ~/.redblock/levels.

Examples:
  redblock play
  redblock play --seed 42
  redblock play --config ./my-redblock.yaml
  redblock play --level ./levels/tricky.yaml
  redblock play --level 4b0c7c2e-3f3a-4d53-9d55-0d1c3f0a8a11`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagLevel, "level", "", "Level file or saved level ID to replay")
}

// levelsDir is where generated levels are saved and looked up by ID.
func levelsDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".redblock", "levels")
	}
	return filepath.Join(home, ".redblock", "levels")
}

// resolveLevel turns a --level value into a file path. Existing files win;
// anything else is looked up by ID among the saved levels.
func resolveLevel(arg string) (string, error) {
	if arg == "" {
		return "", nil
	}
	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}
	f, err := levels.NewLoader(levelsDir()).LoadByID(arg)
	if err != nil {
		return "", fmt.Errorf("no level file or saved level %q: %w", arg, err)
	}
	return f.FilePath, nil
}

// applyGameFlags passes --config and --level to the game package.
func applyGameFlags() error {
	path, err := resolveLevel(flagLevel)
	if err != nil {
		return err
	}
	redblock.SetConfigPath(flagConfig)
	redblock.SetLevelPath(path)
	return nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the scores database. The game still works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	if _, err := tui.Run(newGame(), store, runtimeConfig()); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}
