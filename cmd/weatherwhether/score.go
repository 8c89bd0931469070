package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weatherwhether/internal/scene"
	"github.com/vovakirdan/weatherwhether/internal/storage"
)

var flagReset bool

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Show the high score",
	Long: `Display the best score stored in the database.

Examples:
  weatherwhether score
  weatherwhether score --db ./scores.db
  weatherwhether score --reset`,
	Args: cobra.NoArgs,
	RunE: runScore,
}

func init() {
	scoreCmd.Flags().BoolVar(&flagReset, "reset", false, "Delete the stored high score")
}

func runScore(cmd *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("error opening scores database: %w", err)
	}
	defer store.Close()

	out := cmd.OutOrStdout()

	if flagReset {
		if err := store.ClearHighScore(scene.GameID); err != nil {
			return err
		}
		fmt.Fprintln(out, "High score cleared.")
		return nil
	}

	entry, err := store.Entry(scene.GameID)
	if err != nil {
		return err
	}

	if entry == nil {
		fmt.Fprintln(out, "No high score recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Play 'weatherwhether play' to set the first one!")
		return nil
	}

	fmt.Fprintf(out, "High Score: %d\n", entry.Score)
	if !entry.UpdatedAt.IsZero() {
		fmt.Fprintf(out, "Set on:     %s\n", entry.UpdatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}
