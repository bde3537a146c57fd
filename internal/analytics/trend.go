// ABOUTME: Goal pacing: OLS trend projection, progress percent, achievement.
// ABOUTME: Regression runs over log index, not calendar time, by design.
package analytics

import (
	"sort"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
)

// Trend labels how a goal is pacing against its target date.
type Trend string

const (
	TrendAhead   Trend = "ahead"
	TrendOnTrack Trend = "on_track"
	TrendBehind  Trend = "behind"
	TrendNoData  Trend = "no_data"
)

// trendWindow is the number of most recent logs the regression sees.
const trendWindow = 5

// onTrackSlackDays is the tolerance band around the target date.
const onTrackSlackDays = 7

// Projection is the outcome of a trend fit. ProjectedDate is nil for
// no_data and for a behind verdict caused by a non-improving slope.
type Projection struct {
	Trend         Trend
	ProjectedDate *time.Time
}

// ProjectTrend fits a least-squares line through the most recent logs
// (at most trendWindow, oldest first, x = 0-based index) and solves it
// for the target score. The projected achievement date is the expected
// days-to-target from now, using the average spacing between the
// window's logs.
func ProjectTrend(logs []*models.PerformanceLog, targetScore float64, targetDate time.Time, st models.ScoreType, now time.Time) Projection {
	if len(logs) < 2 {
		return Projection{Trend: TrendNoData}
	}

	sorted := make([]*models.PerformanceLog, len(logs))
	copy(sorted, logs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RecordedAt.Before(sorted[j].RecordedAt)
	})
	if len(sorted) > trendWindow {
		sorted = sorted[len(sorted)-trendWindow:]
	}

	n := float64(len(sorted))
	var sumX, sumY, sumXY, sumXX float64
	for i, l := range sorted {
		x := float64(i)
		sumX += x
		sumY += l.Score
		sumXY += x * l.Score
		sumXX += x * x
	}
	slope := (n*sumXY - sumX*sumY) / (n*sumXX - sumX*sumX)
	intercept := (sumY - slope*sumX) / n

	if slope == 0 {
		return Projection{Trend: TrendNoData}
	}

	improving := slope > 0
	if st.LowerIsBetter() {
		improving = slope < 0
	}
	if !improving {
		return Projection{Trend: TrendBehind}
	}

	lastIndex := n - 1
	xTarget := (targetScore - intercept) / slope
	logsNeeded := xTarget - lastIndex

	span := sorted[len(sorted)-1].RecordedAt.Sub(sorted[0].RecordedAt)
	daysPerLog := span.Hours() / 24 / lastIndex
	daysToTarget := logsNeeded * daysPerLog

	projected := now.Add(time.Duration(daysToTarget * 24 * float64(time.Hour)))

	slack := onTrackSlackDays * 24 * time.Hour
	var trend Trend
	switch {
	case targetDate.Sub(projected) >= slack:
		trend = TrendAhead
	case projected.Sub(targetDate) <= slack:
		trend = TrendOnTrack
	default:
		trend = TrendBehind
	}
	return Projection{Trend: trend, ProjectedDate: &projected}
}

// Progress returns how close the current best is to the target as a
// percentage clamped into [0, 100]. A missing or zero current best
// reads as 0% rather than producing an inverted ratio.
func Progress(currentBest *float64, targetScore float64, st models.ScoreType) float64 {
	if currentBest == nil || *currentBest == 0 {
		return 0
	}
	var pct float64
	if st.LowerIsBetter() {
		pct = targetScore / *currentBest * 100
	} else {
		pct = *currentBest / targetScore * 100
	}
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}

// IsAchieved reports whether a score satisfies a target under the score
// type's direction of improvement.
func IsAchieved(score, targetScore float64, st models.ScoreType) bool {
	if st.LowerIsBetter() {
		return score <= targetScore
	}
	return score >= targetScore
}
