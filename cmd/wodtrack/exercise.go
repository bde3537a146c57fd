// ABOUTME: CLI commands for managing the exercise catalog.
// ABOUTME: Supports add, list, and delete subcommands.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exerciseMetric   string
	exerciseCategory string
)

var exerciseCmd = &cobra.Command{
	Use:     "exercise",
	Aliases: []string{"ex"},
	Short:   "Manage the exercise catalog",
	Long: `Manage the catalog of exercises you track.

Every exercise declares how it is scored, which determines how results
compare and what counts as a PR:

  time         lower is better (5:00 beats 5:30)
  load         higher is better
  reps         higher is better
  rounds_reps  higher is better (13+2 beats 12+7)
  distance     higher is better
  calories     higher is better

CATEGORIES:

  benchmark, lift, monostructural, skill, custom

METRIC KINDS (timed monostructural work):

  distance            results carry a distance marker (500m row, 1 mile run)
  calories            results carry a calorie count (50 cal bike)
  distance_calories   both families on one exercise (erg machines)

EXAMPLES:

  wodtrack exercise add Fran benchmark time
  wodtrack exercise add "Back Squat" lift load
  wodtrack exercise add Row monostructural time --metric distance_calories
  wodtrack exercise list --category lift
  wodtrack exercise delete a1b2c3d4`,
}

var exerciseAddCmd = &cobra.Command{
	Use:   "add <name> <category> <score-type>",
	Short: "Add an exercise",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		name, category, scoreType := args[0], args[1], args[2]

		if !models.IsValidCategory(category) {
			return fmt.Errorf("unknown category: %s\nValid categories: benchmark, lift, monostructural, skill, custom", category)
		}
		if !models.IsValidScoreType(scoreType) {
			return fmt.Errorf("unknown score type: %s\nValid types: time, load, reps, rounds_reps, distance, calories", scoreType)
		}

		e := models.NewExercise(name, models.Category(category), models.ScoreType(scoreType))
		if exerciseMetric != "" {
			if !models.IsValidMetricKind(exerciseMetric) {
				return fmt.Errorf("unknown metric kind: %s\nValid kinds: distance, calories, distance_calories", exerciseMetric)
			}
			e.WithMetricKind(models.MetricKind(exerciseMetric))
		}

		if err := repo.CreateExercise(e); err != nil {
			return fmt.Errorf("failed to create exercise: %w", err)
		}

		color.Green("✓ Added %s", e.Name)
		fmt.Printf("  %s %s, scored by %s\n",
			color.New(color.Faint).Sprint(e.ID.String()[:8]),
			e.Category, e.ScoreType)

		return nil
	},
}

var exerciseListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List exercises",
	RunE: func(cmd *cobra.Command, args []string) error {
		var category *models.Category
		if exerciseCategory != "" {
			if !models.IsValidCategory(exerciseCategory) {
				return fmt.Errorf("unknown category: %s", exerciseCategory)
			}
			c := models.Category(exerciseCategory)
			category = &c
		}

		exercises, err := repo.ListExercises(category)
		if err != nil {
			return fmt.Errorf("failed to list exercises: %w", err)
		}

		if len(exercises) == 0 {
			fmt.Println("No exercises found.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, e := range exercises {
			metric := ""
			if e.MetricKind != models.MetricNone {
				metric = faint.Sprintf(" [%s]", e.MetricKind)
			}
			fmt.Printf("%s %s %s %s%s\n",
				faint.Sprint(e.ID.String()[:8]),
				padRight(e.Name, 20),
				padRight(string(e.Category), 14),
				e.ScoreType,
				metric)
		}

		return nil
	},
}

var exerciseShowCmd = &cobra.Command{
	Use:   "show <name-or-id>",
	Short: "Show an exercise and its activity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := track.ResolveExercise(args[0])
		if err != nil {
			return err
		}

		fmt.Printf("%s\n", color.New(color.Bold).Sprint(e.Name))
		fmt.Printf("ID: %s\n", e.ID.String())
		fmt.Printf("Category: %s\n", e.Category)
		fmt.Printf("Scored by: %s\n", e.ScoreType)
		if e.MetricKind != models.MetricNone {
			fmt.Printf("Metric kind: %s\n", e.MetricKind)
		}
		fmt.Printf("Added: %s\n", e.CreatedAt.Format("2006-01-02"))

		logs, err := repo.ListLogs(e.ID, nil, 0)
		if err != nil {
			return fmt.Errorf("failed to list logs: %w", err)
		}
		goals, err := repo.ListGoalsForExercise(e.ID, nil)
		if err != nil {
			return fmt.Errorf("failed to list goals: %w", err)
		}
		fmt.Printf("Results logged: %d\n", len(logs))
		fmt.Printf("Goals: %d\n", len(goals))

		return nil
	},
}

var exerciseDeleteCmd = &cobra.Command{
	Use:     "delete <name-or-id>",
	Aliases: []string{"del", "rm"},
	Short:   "Delete an exercise and all its data",
	Long: `Delete an exercise by name, ID, or ID prefix.

CAUTION:

  This also deletes every logged result and goal for the exercise.
  There is no undo.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := track.ResolveExercise(args[0])
		if err != nil {
			return err
		}

		if err := repo.DeleteExercise(e.ID.String()); err != nil {
			return fmt.Errorf("failed to delete exercise: %w", err)
		}

		color.Yellow("✗ Deleted %s and all its results and goals", e.Name)
		return nil
	},
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	exerciseAddCmd.Flags().StringVar(&exerciseMetric, "metric", "", "metric kind (distance, calories, distance_calories)")
	exerciseListCmd.Flags().StringVarP(&exerciseCategory, "category", "c", "", "filter by category")

	exerciseCmd.AddCommand(exerciseAddCmd)
	exerciseCmd.AddCommand(exerciseListCmd)
	exerciseCmd.AddCommand(exerciseShowCmd)
	exerciseCmd.AddCommand(exerciseDeleteCmd)
	rootCmd.AddCommand(exerciseCmd)
}
