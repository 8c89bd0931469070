package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/weatherwhether/internal/quiz"
	"github.com/vovakirdan/weatherwhether/internal/weather"
)

var flagShowBounds bool

var questionsCmd = &cobra.Command{
	Use:   "questions",
	Short: "List the question table",
	Long: `Shows the questions a game samples from, with the labels that bound
each answer.

With --bounds, also prints the accepted range over the stub week.`,
	Args: cobra.NoArgs,
	RunE: runQuestions,
}

func init() {
	questionsCmd.Flags().BoolVar(&flagShowBounds, "bounds", false, "Show the accepted range over the stub week")
}

func runQuestions(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	var labels quiz.RankedLabels
	if flagShowBounds {
		week, err := weather.NewStub(cfg.Weather.Base).Week()
		if err != nil {
			return err
		}
		if labels, err = quiz.Labels(week); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "Questions (%d per game):\n\n", cfg.Rounds.Rounds)
	fmt.Fprintf(out, "  %-3s  %-8s  %-8s  %s\n", "ID", "Low", "High", "Text")
	fmt.Fprintf(out, "  %-3s  %-8s  %-8s  %s\n", "--", "---", "----", "----")

	for _, q := range cfg.Questions {
		fmt.Fprintf(out, "  %-3d  %-8s  %-8s  %s\n", q.ID, q.Low, q.High, q.Text)
		if flagShowBounds {
			iv, err := quiz.Bounds(labels, q)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "  %-3s  accepts %d..%d\n", "", iv.Low, iv.High)
		}
	}
	return nil
}
