// ABOUTME: Recovery fatigue scoring: weighted points, alert levels, reasons.
// ABOUTME: Streak counting walks check-ins backward until a rest day or gap.
package analytics

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
)

// Config carries the user-tunable recovery thresholds.
type Config struct {
	// MinSleepHours is the sleep threshold below which deficit points
	// accrue.
	MinSleepHours float64
	// GapResetDays is the largest gap (in days) between two check-ins
	// that still counts as a continued streak.
	GapResetDays int
}

// DefaultConfig returns the stock recovery thresholds.
func DefaultConfig() Config {
	return Config{
		MinSleepHours: 7,
		GapResetDays:  2,
	}
}

// AlertLevel classifies a fatigue total for display.
type AlertLevel string

const (
	AlertNone     AlertLevel = "none"
	AlertInfo     AlertLevel = "info"
	AlertWarning  AlertLevel = "warning"
	AlertCritical AlertLevel = "critical"
)

const (
	streakPointCap  = 4.0
	sleepPointCap   = 6.0
	sleepPointsPerH = 2.0
)

// RecoveryScore is the derived fatigue assessment for one day. It is
// recomputed on demand and never persisted.
type RecoveryScore struct {
	Total   float64
	Level   AlertLevel
	Reasons []string
}

// Score converts today's check-in plus a consecutive-training-day count
// into fatigue points, an alert level, and user-facing reasons.
//
// Streak points accrue regardless of today's entry; energy, soreness,
// and sleep points only apply when today is a logged training day. The
// reason thresholds are deliberately decoupled from the point formulas:
// mid-scale values earn points without surfacing a reason.
func Score(checkIn *models.CheckIn, consecutiveDays int, cfg Config) RecoveryScore {
	var total float64
	var reasons []string

	if consecutiveDays >= 1 {
		total += math.Min(float64(consecutiveDays-1), streakPointCap)
	}
	if consecutiveDays >= 2 {
		if consecutiveDays >= 4 {
			reasons = append(reasons, "4+ consecutive training days without rest")
		} else {
			reasons = append(reasons, fmt.Sprintf("%d consecutive training days", consecutiveDays))
		}
	}

	if checkIn == nil || !checkIn.IsTraining() {
		return RecoveryScore{Total: total, Level: levelFor(total), Reasons: reasons}
	}

	energy := *checkIn.Energy
	total += float64(5 - energy)
	if energy <= 2 {
		reasons = append(reasons, fmt.Sprintf("low energy (%d/5)", energy))
	}

	soreness := *checkIn.Soreness
	total += float64(soreness - 1)
	if soreness >= 4 {
		reasons = append(reasons, fmt.Sprintf("high soreness (%d/5)", soreness))
	}

	sleep := *checkIn.SleepHours
	if deficit := cfg.MinSleepHours - sleep; deficit > 0 {
		total += math.Min(deficit*sleepPointsPerH, sleepPointCap)
		if deficit >= 2 {
			reasons = append(reasons, fmt.Sprintf("significant sleep deficit (%gh, need %gh)", sleep, cfg.MinSleepHours))
		} else {
			reasons = append(reasons, fmt.Sprintf("slightly under-rested (%gh, need %gh)", sleep, cfg.MinSleepHours))
		}
	}

	return RecoveryScore{Total: total, Level: levelFor(total), Reasons: reasons}
}

// levelFor maps a fatigue total onto contiguous alert bands.
func levelFor(total float64) AlertLevel {
	switch {
	case total <= 2:
		return AlertNone
	case total <= 5:
		return AlertInfo
	case total <= 8:
		return AlertWarning
	default:
		return AlertCritical
	}
}

// ConsecutiveTrainingDays counts unbroken training days walking backward
// from today. Counting stops at the first rest-day record or when the
// gap between two consecutive check-in dates exceeds cfg.GapResetDays.
// A record for today itself is optional; counting starts at the most
// recent record on or before today.
func ConsecutiveTrainingDays(checkIns []*models.CheckIn, today time.Time, cfg Config) int {
	todayStr := today.Format(models.DateLayout)

	sorted := make([]*models.CheckIn, 0, len(checkIns))
	for _, c := range checkIns {
		if _, err := c.Day(); err != nil || c.Date > todayStr {
			continue
		}
		sorted = append(sorted, c)
	}
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	count := 0
	var prev *time.Time
	for _, c := range sorted {
		day, _ := c.Day()
		if prev != nil {
			gapDays := int(prev.Sub(day).Hours() / 24)
			if gapDays > cfg.GapResetDays {
				break
			}
		}
		if !c.IsTraining() {
			break
		}
		count++
		prev = &day
	}
	return count
}
