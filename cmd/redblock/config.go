package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redblock/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the built-in default configuration as YAML. Save it as
~/.redblock/configs/redblock.yaml or ./configs/redblock.yaml and edit it to
tune the game; missing keys keep their defaults.

Examples:
  redblock config > ~/.redblock/configs/redblock.yaml
  redblock config --check ./my-redblock.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate this config file instead of printing defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagCheck == "" {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadRedBlock(flagCheck)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s is valid: %.0fx%.0f arena, %ds countdown, %d-%d obstacles\n",
		flagCheck, cfg.Arena.Width, cfg.Arena.Height, cfg.Switch.CountdownMs/1000,
		cfg.Level.MinObstacles, cfg.Level.MaxObstacles)
	return nil
}
