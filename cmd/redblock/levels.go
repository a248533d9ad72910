package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/redblock/internal/games/redblock/levels"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List saved levels",
	Long: `Shows the levels saved in ~/.redblock/levels by 'redblock generate --save'.
Invalid files are skipped.

Run 'redblock play --level <id>' to replay one.`,
	Args: cobra.NoArgs,
	RunE: runLevels,
}

func runLevels(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	files, err := levels.NewLoader(levelsDir()).LoadAll()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if len(files) == 0 {
		fmt.Fprintln(out, "No saved levels.")
		fmt.Fprintln(out, "Run 'redblock generate --save' to save one.")
		return nil
	}

	// Calculate column widths
	maxNameLen := 4 // "Name" header
	for _, f := range files {
		maxNameLen = max(maxNameLen, len(f.Name))
	}

	fmt.Fprintf(out, "  %-36s  %-*s  %s\n", "ID", maxNameLen, "Name", "Path")
	fmt.Fprintf(out, "  %-36s  %-*s  %s\n", "--", maxNameLen, "----", "----")
	for _, f := range files {
		fmt.Fprintf(out, "  %-36s  %-*s  %d\n", f.ID, maxNameLen, f.Name, f.PathLength)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'redblock play --level <id>' to replay a level.")
	return nil
}
