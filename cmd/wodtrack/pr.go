// ABOUTME: CLI command for showing personal records.
// ABOUTME: Renders grouped bests the way the results get compared.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/spf13/cobra"
)

var prVariant string

var prCmd = &cobra.Command{
	Use:   "pr <exercise>",
	Short: "Show personal records",
	Long: `Show personal records for an exercise.

Results are grouped the way they compare:

  plain exercises        one overall best (per variant for benchmarks)
  load exercises         best per rep scheme (1-rep max, 3-rep max, ...)
  distance exercises     best time per exact distance (500m, 2000m, ...)
  calorie exercises      best calorie count per exact time
  dual-metric exercises  both distance and calorie groups

Within each group, the best result is listed first and the rest of the
history follows newest-first.

EXAMPLES:

  wodtrack pr Fran
  wodtrack pr Fran --variant rx
  wodtrack pr "Back Squat"
  wodtrack pr Row`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var variant *models.Variant
		if prVariant != "" {
			if !models.IsValidVariant(prVariant) {
				return fmt.Errorf("unknown variant: %s", prVariant)
			}
			v := models.Variant(prVariant)
			variant = &v
		}

		summary, err := track.PRSummary(args[0], variant)
		if err != nil {
			return err
		}
		ex := summary.Exercise

		fmt.Printf("%s (%s, scored by %s)\n", color.New(color.Bold).Sprint(ex.Name), ex.Category, ex.ScoreType)

		if len(summary.Groups) == 0 {
			fmt.Println("No results logged yet.")
			return nil
		}

		if summary.Best != nil {
			color.Green("★ Best: %s", models.FormatScore(summary.Best.Score, ex.ScoreType))
		}

		faint := color.New(color.Faint)
		for _, g := range summary.Groups {
			fmt.Printf("\n%s\n", color.New(color.Bold).Sprint(g.Label))
			for i, l := range g.Logs {
				marker := " "
				if i == 0 {
					marker = color.GreenString("★")
				}
				fmt.Printf("%s %s %s %s%s\n",
					marker,
					faint.Sprint(l.ID.String()[:8]),
					faint.Sprint(l.RecordedAt.Format("2006-01-02")),
					models.FormatScore(l.Score, ex.ScoreType),
					logDetail(l))
			}
		}

		return nil
	},
}

func init() {
	prCmd.Flags().StringVar(&prVariant, "variant", "", "restrict to one variant (rx_plus, rx, scaled)")
	rootCmd.AddCommand(prCmd)
}
