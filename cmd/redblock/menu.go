package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redblock/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start Red Block Rescue with a menu",
	Long: `Start the game in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select. Leaving a game with
B or Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - High scores
  Q            - Quit

Examples:
  redblock menu
  redblock menu --fps 30
  redblock menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	menuCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	menuCmd.Flags().StringVar(&flagLevel, "level", "", "Level file or saved level ID to replay")
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameFlags(); err != nil {
		return err
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	probe := newGame()
	cfg := runtimeConfig()
	fixedSeed := cfg.Seed != 0

	// Menu loop
	for {
		menuResult, err := tui.RunMenu(probe.Title(), probe.ID(), store, cfg)
		if err != nil {
			return fmt.Errorf("menu: %w", err)
		}

		// Update config with any size changes
		cfg = menuResult.Config

		switch menuResult.Choice {
		case tui.MenuChoiceScores:
			goBack, sbErr := tui.RunScoreboard(probe.ID(), probe.Title(), store, cfg.ScreenW, cfg.ScreenH)
			if sbErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", sbErr)
			}
			if !goBack {
				return nil
			}

		case tui.MenuChoicePlay:
			if !fixedSeed {
				cfg.Seed = time.Now().UnixNano()
			}
			back, runErr := tui.Run(newGame(), store, cfg)
			if runErr != nil {
				return fmt.Errorf("error running game: %w", runErr)
			}
			if !back {
				return nil
			}

		default:
			return nil
		}
	}
}
