// ABOUTME: CLI command for daily check-ins.
// ABOUTME: Records training days with metrics or rest days, one per date.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	checkinEnergy   int
	checkinSoreness int
	checkinSleep    float64
	checkinRest     bool
	checkinDate     string
)

var checkinCmd = &cobra.Command{
	Use:   "checkin",
	Short: "Record today's check-in",
	Long: `Record how today went: either a training day with energy, soreness,
and sleep, or a rest day.

One check-in per calendar date; saving again for the same date replaces
the earlier record. Training metrics feed the recovery score:

  --energy     1 (wiped out) to 5 (fresh)
  --soreness   1 (none) to 5 (very sore)
  --sleep      last night's sleep in hours

EXAMPLES:

  wodtrack checkin --energy 4 --soreness 2 --sleep 7.5
  wodtrack checkin --rest
  wodtrack checkin --energy 3 --soreness 3 --sleep 6 --date 2026-08-27`,
	RunE: func(cmd *cobra.Command, args []string) error {
		date := checkinDate
		if date == "" {
			date = time.Now().Format(models.DateLayout)
		}

		var c *models.CheckIn
		if checkinRest {
			if cmd.Flags().Changed("energy") || cmd.Flags().Changed("soreness") || cmd.Flags().Changed("sleep") {
				return fmt.Errorf("--rest does not take energy, soreness, or sleep")
			}
			c = models.NewRestCheckIn(date)
		} else {
			if !cmd.Flags().Changed("energy") || !cmd.Flags().Changed("soreness") || !cmd.Flags().Changed("sleep") {
				return fmt.Errorf("a training check-in requires --energy, --soreness, and --sleep (or use --rest)")
			}
			c = models.NewTrainingCheckIn(date, checkinEnergy, checkinSoreness, checkinSleep)
		}

		if err := repo.UpsertCheckIn(c); err != nil {
			return fmt.Errorf("failed to save check-in: %w", err)
		}

		if checkinRest {
			color.Green("✓ Rest day recorded for %s", date)
		} else {
			color.Green("✓ Training day recorded for %s", date)
			fmt.Printf("  energy %d/5, soreness %d/5, sleep %gh\n",
				checkinEnergy, checkinSoreness, checkinSleep)
		}

		return nil
	},
}

func init() {
	checkinCmd.Flags().IntVar(&checkinEnergy, "energy", 0, "energy level 1-5")
	checkinCmd.Flags().IntVar(&checkinSoreness, "soreness", 0, "soreness level 1-5")
	checkinCmd.Flags().Float64Var(&checkinSleep, "sleep", 0, "last night's sleep in hours")
	checkinCmd.Flags().BoolVar(&checkinRest, "rest", false, "record a rest day")
	checkinCmd.Flags().StringVar(&checkinDate, "date", "", "check-in date (YYYY-MM-DD), defaults to today")

	rootCmd.AddCommand(checkinCmd)
}
