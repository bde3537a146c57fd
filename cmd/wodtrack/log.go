// ABOUTME: CLI commands for logging, listing, and deleting results.
// ABOUTME: Logging also reports any goals the result achieves.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	logVariant  string
	logReps     int
	logDistance float64
	logCalories float64
	logAt       string

	logsVariant string
	logsLimit   int
)

var logCmd = &cobra.Command{
	Use:     "log <exercise> <score>",
	Aliases: []string{"l"},
	Short:   "Log a result",
	Long: `Log a performance result for an exercise.

The score is entered in the exercise's native units:

  time         4:55 or 1:02:30
  rounds_reps  12+7 (12 rounds plus 7 reps)
  everything else: a plain number

If the result meets an active goal for the exercise, the goal is marked
achieved automatically.

EXAMPLES:

  wodtrack log Fran 4:55 --variant rx
  wodtrack log "Back Squat" 140 --reps 1
  wodtrack log Row 1:32 --distance 500
  wodtrack log Row 3:00 --calories 50
  wodtrack log Cindy 18+4 --at 2026-08-20`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := track.ResolveExercise(args[0])
		if err != nil {
			return err
		}

		score, err := models.ParseScore(args[1], ex.ScoreType)
		if err != nil {
			return err
		}

		l := models.NewPerformanceLog(ex.ID, score, args[1])

		if logVariant != "" {
			if !models.IsValidVariant(logVariant) {
				return fmt.Errorf("unknown variant: %s\nValid variants: rx_plus, rx, scaled", logVariant)
			}
			l.WithVariant(models.Variant(logVariant))
		}
		if logReps > 0 {
			l.WithReps(logReps)
		}
		if logDistance > 0 && logCalories > 0 {
			return fmt.Errorf("a result carries either --distance or --calories, not both")
		}
		if logDistance > 0 {
			if !ex.MetricKind.SupportsDistance() {
				return fmt.Errorf("%s does not track distance", ex.Name)
			}
			l.WithDistance(logDistance)
		}
		if logCalories > 0 {
			if !ex.MetricKind.SupportsCalories() {
				return fmt.Errorf("%s does not track calories", ex.Name)
			}
			l.WithCalories(logCalories)
		}
		if logAt != "" {
			t, err := parseTime(logAt)
			if err != nil {
				return fmt.Errorf("invalid timestamp: %s", logAt)
			}
			l.WithRecordedAt(t)
		}

		achieved, err := track.LogResult(l)
		if err != nil {
			return fmt.Errorf("failed to log result: %w", err)
		}

		color.Green("✓ Logged %s for %s", models.FormatScore(l.Score, ex.ScoreType), ex.Name)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(l.ID.String()[:8]),
			color.New(color.Faint).Sprint(l.RecordedAt.Format("2006-01-02 15:04")))

		for _, g := range achieved {
			color.Green("★ Goal achieved: %s %s (target date %s)",
				ex.Name,
				models.FormatScore(g.TargetScore, ex.ScoreType),
				g.TargetDate.Format("2006-01-02"))
		}

		return nil
	},
}

var logsCmd = &cobra.Command{
	Use:     "logs <exercise>",
	Aliases: []string{"history"},
	Short:   "List results for an exercise",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := track.ResolveExercise(args[0])
		if err != nil {
			return err
		}

		var variant *models.Variant
		if logsVariant != "" {
			if !models.IsValidVariant(logsVariant) {
				return fmt.Errorf("unknown variant: %s", logsVariant)
			}
			v := models.Variant(logsVariant)
			variant = &v
		}

		logs, err := repo.ListLogs(ex.ID, variant, logsLimit)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}

		if len(logs) == 0 {
			fmt.Println("No results found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, l := range logs {
			fmt.Printf("%s %s %s%s\n",
				faint.Sprint(l.ID.String()[:8]),
				faint.Sprint(l.RecordedAt.Format("2006-01-02 15:04")),
				padRight(models.FormatScore(l.Score, ex.ScoreType), 10),
				logDetail(l))
		}

		return nil
	},
}

// logDetail renders the qualifiers attached to a result.
func logDetail(l *models.PerformanceLog) string {
	faint := color.New(color.Faint)
	var parts []string
	if l.Variant != "" {
		parts = append(parts, string(l.Variant))
	}
	if l.Reps != nil {
		parts = append(parts, fmt.Sprintf("%d-rep", *l.Reps))
	}
	if l.DistanceMeters != nil {
		parts = append(parts, fmt.Sprintf("%gm", *l.DistanceMeters))
	}
	if l.Calories != nil {
		parts = append(parts, fmt.Sprintf("%g cal", *l.Calories))
	}
	if len(parts) == 0 {
		return ""
	}
	out := ""
	for i, p := range parts {
		if i > 0 {
			out += " "
		}
		out += p
	}
	return faint.Sprintf(" (%s)", out)
}

var deleteLogCmd = &cobra.Command{
	Use:     "delete <log-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete a logged result",
	Long: `Delete a logged result by its ID or ID prefix.

The ID prefix is shown in the first column of 'wodtrack logs' output.
This permanently deletes the result. There is no undo. Goals it achieved
stay achieved; achievement is not retracted.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		l, err := repo.GetLog(args[0])
		if err != nil {
			return fmt.Errorf("log not found: %s", args[0])
		}

		if err := repo.DeleteLog(args[0]); err != nil {
			return fmt.Errorf("failed to delete log: %w", err)
		}

		color.Yellow("✗ Deleted result %s", l.DisplayScore)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(l.ID.String()[:8]),
			color.New(color.Faint).Sprint(l.RecordedAt.Format("2006-01-02 15:04")))

		return nil
	},
}

func parseTime(s string) (time.Time, error) {
	formats := []string{
		"2006-01-02 15:04",
		"2006-01-02T15:04",
		"2006-01-02",
		time.RFC3339,
	}
	for _, f := range formats {
		if t, err := time.Parse(f, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time format")
}

func init() {
	logCmd.Flags().StringVar(&logVariant, "variant", "", "variant qualifier (rx_plus, rx, scaled)")
	logCmd.Flags().IntVar(&logReps, "reps", 0, "rep scheme (1 for a 1-rep max)")
	logCmd.Flags().Float64Var(&logDistance, "distance", 0, "distance marker in meters")
	logCmd.Flags().Float64Var(&logCalories, "calories", 0, "calorie count")
	logCmd.Flags().StringVar(&logAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")

	logsCmd.Flags().StringVar(&logsVariant, "variant", "", "filter by variant")
	logsCmd.Flags().IntVarP(&logsLimit, "limit", "n", 20, "max number of results")

	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(deleteLogCmd)
}
