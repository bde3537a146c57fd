// ABOUTME: CLI command for today's recovery assessment.
// ABOUTME: Renders fatigue points, alert level, and contributing reasons.
package main

import (
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/wodtrack/internal/analytics"
	"github.com/spf13/cobra"
)

var recoveryCmd = &cobra.Command{
	Use:   "recovery",
	Short: "Show today's recovery status",
	Long: `Show today's fatigue assessment, computed from your recent check-ins.

Fatigue points accrue from:
- consecutive training days without a rest day
- low energy, high soreness, and sleep deficit on today's check-in

The total maps to an alert level:

  0-2   none      fresh
  3-5   info      normal training fatigue
  6-8   warning   consider backing off
  9+    critical  take a rest day

The score is recomputed from check-in history each time; nothing is
persisted. Check in first ('wodtrack checkin') for today's metrics to
count.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		now := time.Now()
		report, err := track.TodayRecovery(now)
		if err != nil {
			return fmt.Errorf("failed to compute recovery: %w", err)
		}

		fmt.Printf("Recovery for %s\n", now.Format("2006-01-02"))
		if report.CheckIn == nil {
			fmt.Println(color.New(color.Faint).Sprint("No check-in for today yet."))
		}
		if report.ConsecutiveDays > 0 {
			fmt.Printf("Consecutive training days: %d\n", report.ConsecutiveDays)
		}

		fmt.Printf("Fatigue points: %g\n", report.Score.Total)
		switch report.Score.Level {
		case analytics.AlertNone:
			color.Green("✓ Fresh — no fatigue flags")
		case analytics.AlertInfo:
			fmt.Println("Normal training fatigue.")
		case analytics.AlertWarning:
			color.Yellow("⚠ Elevated fatigue — consider backing off")
		case analytics.AlertCritical:
			color.Red("✗ High fatigue — take a rest day")
		}

		for _, r := range report.Score.Reasons {
			fmt.Printf("  - %s\n", r)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(recoveryCmd)
}
