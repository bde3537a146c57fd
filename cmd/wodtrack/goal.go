// ABOUTME: CLI commands for managing goals.
// ABOUTME: Supports add, list, progress, and cancel subcommands.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/analytics"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	goalVariant string
	goalReps    int
	goalStatus  string
)

var goalCmd = &cobra.Command{
	Use:     "goal",
	Aliases: []string{"g"},
	Short:   "Manage goals",
	Long: `Set target scores with deadlines and track progress toward them.

A goal names an exercise, a target score in the exercise's native units,
and a target date. Optional filters restrict which results count:
--variant only counts results of that variant, --reps only counts
results at that rep scheme.

Goals achieve themselves: the moment a qualifying result is logged, the
goal flips to achieved. 'goal progress' shows how you are pacing based on
a trend fit over your recent results.

EXAMPLES:

  wodtrack goal add Fran 4:30 2026-12-01 --variant rx
  wodtrack goal add "Back Squat" 160 2027-03-01 --reps 1
  wodtrack goal list
  wodtrack goal list --status achieved
  wodtrack goal progress a1b2c3d4
  wodtrack goal cancel a1b2c3d4`,
}

var goalAddCmd = &cobra.Command{
	Use:   "add <exercise> <target-score> <target-date>",
	Short: "Set a goal",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ex, err := track.ResolveExercise(args[0])
		if err != nil {
			return err
		}

		target, err := models.ParseScore(args[1], ex.ScoreType)
		if err != nil {
			return err
		}
		date, err := time.Parse("2006-01-02", args[2])
		if err != nil {
			return fmt.Errorf("invalid target date: %s (use YYYY-MM-DD)", args[2])
		}

		g := models.NewGoal(ex.ID, target, date)
		if goalVariant != "" {
			if !models.IsValidVariant(goalVariant) {
				return fmt.Errorf("unknown variant: %s", goalVariant)
			}
			g.WithVariant(models.Variant(goalVariant))
		}
		if goalReps > 0 {
			g.WithReps(goalReps)
		}

		if err := repo.CreateGoal(g); err != nil {
			return fmt.Errorf("failed to create goal: %w", err)
		}

		color.Green("✓ Goal set: %s %s by %s", ex.Name, models.FormatScore(target, ex.ScoreType), args[2])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprint(g.ID.String()[:8]))

		return nil
	},
}

var goalListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		var status *models.GoalStatus
		if goalStatus != "" {
			st := models.GoalStatus(goalStatus)
			switch st {
			case models.GoalActive, models.GoalAchieved, models.GoalCancelled:
			default:
				return fmt.Errorf("unknown status: %s (use active, achieved, or cancelled)", goalStatus)
			}
			status = &st
		}

		goals, err := repo.ListGoals(status)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}

		if len(goals) == 0 {
			fmt.Println("No goals found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, g := range goals {
			ex, err := repo.GetExercise(g.ExerciseID.String())
			if err != nil {
				continue
			}
			statusStr := string(g.Status)
			switch g.Status {
			case models.GoalAchieved:
				statusStr = color.GreenString("achieved")
			case models.GoalCancelled:
				statusStr = faint.Sprint("cancelled")
			}
			fmt.Printf("%s %s %s by %s  %s%s\n",
				faint.Sprint(g.ID.String()[:8]),
				padRight(ex.Name, 20),
				models.FormatScore(g.TargetScore, ex.ScoreType),
				g.TargetDate.Format("2006-01-02"),
				statusStr,
				goalFilters(g))
		}

		return nil
	},
}

// goalFilters renders a goal's variant/reps restrictions.
func goalFilters(g *models.Goal) string {
	faint := color.New(color.Faint)
	switch {
	case g.Variant != "" && g.Reps != nil:
		return faint.Sprintf(" (%s, %d-rep)", g.Variant, *g.Reps)
	case g.Variant != "":
		return faint.Sprintf(" (%s)", g.Variant)
	case g.Reps != nil:
		return faint.Sprintf(" (%d-rep)", *g.Reps)
	}
	return ""
}

var goalProgressCmd = &cobra.Command{
	Use:   "progress <goal-id>",
	Short: "Show progress and trend projection",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		report, err := track.GoalProgress(args[0], time.Now())
		if err != nil {
			return err
		}
		ex := report.Exercise
		g := report.Goal

		fmt.Printf("%s: %s by %s\n",
			color.New(color.Bold).Sprint(ex.Name),
			models.FormatScore(g.TargetScore, ex.ScoreType),
			g.TargetDate.Format("2006-01-02"))

		if g.Status == models.GoalAchieved {
			when := ""
			if g.AchievedAt != nil {
				when = " on " + g.AchievedAt.Format("2006-01-02")
			}
			color.Green("★ Achieved%s", when)
			return nil
		}

		if report.CurrentBest != nil {
			fmt.Printf("Current best: %s\n", models.FormatScore(report.CurrentBest.Score, ex.ScoreType))
		} else {
			fmt.Println("Current best: none yet")
		}
		fmt.Printf("Progress: %.0f%%\n", report.Progress)

		switch report.Projection.Trend {
		case analytics.TrendNoData:
			fmt.Println("Trend: not enough data to project")
		case analytics.TrendAhead:
			color.Green("Trend: ahead of schedule (projected %s)",
				report.Projection.ProjectedDate.Format("2006-01-02"))
		case analytics.TrendOnTrack:
			color.Green("Trend: on track (projected %s)",
				report.Projection.ProjectedDate.Format("2006-01-02"))
		case analytics.TrendBehind:
			if report.Projection.ProjectedDate != nil {
				color.Yellow("⚠ Trend: behind (projected %s)",
					report.Projection.ProjectedDate.Format("2006-01-02"))
			} else {
				color.Yellow("⚠ Trend: behind (recent results are not improving)")
			}
		}

		return nil
	},
}

var goalCancelCmd = &cobra.Command{
	Use:   "cancel <goal-id>",
	Short: "Cancel a goal",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := repo.GetGoal(args[0])
		if err != nil {
			return err
		}
		if !g.IsActive() {
			return fmt.Errorf("goal is already %s", g.Status)
		}

		g.MarkCancelled()
		if err := repo.UpdateGoal(g); err != nil {
			return fmt.Errorf("failed to cancel goal: %w", err)
		}

		color.Yellow("✗ Goal cancelled")
		return nil
	},
}

func init() {
	goalAddCmd.Flags().StringVar(&goalVariant, "variant", "", "only count results of this variant")
	goalAddCmd.Flags().IntVar(&goalReps, "reps", 0, "only count results at this rep scheme")
	goalListCmd.Flags().StringVarP(&goalStatus, "status", "s", "", "filter by status (active, achieved, cancelled)")

	goalCmd.AddCommand(goalAddCmd)
	goalCmd.AddCommand(goalListCmd)
	goalCmd.AddCommand(goalProgressCmd)
	goalCmd.AddCommand(goalCancelCmd)
	rootCmd.AddCommand(goalCmd)
}
