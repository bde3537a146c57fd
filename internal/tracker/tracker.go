// ABOUTME: Thin stateful controller over the repository and analytics core.
// ABOUTME: Owns fetch/recompute concerns so the analytics layer stays pure.
package tracker

import (
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/analytics"
	"github.com/harperreed/wodtrack/internal/models"
	"github.com/harperreed/wodtrack/internal/storage"
)

// checkInWindowDays bounds how much history the streak walk considers.
const checkInWindowDays = 60

// Tracker coordinates storage reads/writes with the pure computation
// layer. Every computation runs from scratch on a fresh snapshot.
type Tracker struct {
	repo     storage.Repository
	recovery analytics.Config
}

// New creates a Tracker over a repository with the given recovery
// thresholds.
func New(repo storage.Repository, recovery analytics.Config) *Tracker {
	return &Tracker{repo: repo, recovery: recovery}
}

// ResolveExercise finds an exercise by name first, then by ID prefix.
func (t *Tracker) ResolveExercise(nameOrID string) (*models.Exercise, error) {
	if e, err := t.repo.GetExerciseByName(nameOrID); err == nil {
		return e, nil
	}
	e, err := t.repo.GetExercise(nameOrID)
	if err != nil {
		return nil, fmt.Errorf("no exercise matching %q", nameOrID)
	}
	return e, nil
}

// LogResult records a performance and checks it against every active
// goal for the same exercise whose variant/reps filters match. Matching
// goals are flagged achieved as a side effect of logging; the achieved
// goals are returned so callers can surface them.
func (t *Tracker) LogResult(l *models.PerformanceLog) ([]*models.Goal, error) {
	ex, err := t.repo.GetExercise(l.ExerciseID.String())
	if err != nil {
		return nil, fmt.Errorf("log result: %w", err)
	}

	if err := t.repo.CreateLog(l); err != nil {
		return nil, err
	}

	status := models.GoalActive
	goals, err := t.repo.ListGoalsForExercise(ex.ID, &status)
	if err != nil {
		return nil, fmt.Errorf("check goals: %w", err)
	}

	var achieved []*models.Goal
	for _, g := range goals {
		if !g.Matches(l) {
			continue
		}
		if !analytics.IsAchieved(l.Score, g.TargetScore, ex.ScoreType) {
			continue
		}
		g.MarkAchieved(l.RecordedAt)
		if err := t.repo.UpdateGoal(g); err != nil {
			return achieved, fmt.Errorf("mark goal achieved: %w", err)
		}
		achieved = append(achieved, g)
	}
	return achieved, nil
}

// PRSummary is an exercise's computed best values and grouped history.
type PRSummary struct {
	Exercise          *models.Exercise
	Best              *models.PerformanceLog
	BestByDistance    map[float64]*models.PerformanceLog
	BestByCalorieTime map[float64]*models.PerformanceLog
	Groups            []analytics.LogGroup
}

// PRSummary computes the best values and grouped history for an
// exercise, optionally restricted to one variant. An exercise with no
// logs yields an empty summary, not an error.
func (t *Tracker) PRSummary(nameOrID string, variant *models.Variant) (*PRSummary, error) {
	ex, err := t.ResolveExercise(nameOrID)
	if err != nil {
		return nil, err
	}

	logs, err := t.repo.ListLogs(ex.ID, variant, 0)
	if err != nil {
		return nil, err
	}

	s := &PRSummary{Exercise: ex}
	switch {
	case ex.MetricKind == models.MetricDistanceCalories:
		s.BestByDistance = analytics.BestByDistance(logs)
		s.BestByCalorieTime = analytics.BestByTimeForCalories(logs)
		s.Best = analytics.BestForDualMetric(logs, ex.ScoreType)
	case ex.MetricKind == models.MetricByDistance:
		s.BestByDistance = analytics.BestByDistance(logs)
	case ex.MetricKind == models.MetricByCalories:
		s.BestByCalorieTime = analytics.BestByTimeForCalories(logs)
	default:
		s.Best = analytics.BestOverall(logs, ex.ScoreType, nil)
	}
	s.Groups = analytics.GroupLogs(logs, ex)
	return s, nil
}

// GoalReport is a goal's computed progress and pacing.
type GoalReport struct {
	Goal        *models.Goal
	Exercise    *models.Exercise
	CurrentBest *models.PerformanceLog
	Progress    float64
	Projection  analytics.Projection
}

// GoalProgress computes progress percentage and trend projection for a
// goal against the logs its filters admit.
func (t *Tracker) GoalProgress(idOrPrefix string, now time.Time) (*GoalReport, error) {
	g, err := t.repo.GetGoal(idOrPrefix)
	if err != nil {
		return nil, err
	}
	ex, err := t.repo.GetExercise(g.ExerciseID.String())
	if err != nil {
		return nil, err
	}

	all, err := t.repo.ListLogs(ex.ID, nil, 0)
	if err != nil {
		return nil, err
	}
	var logs []*models.PerformanceLog
	for _, l := range all {
		if g.Matches(l) {
			logs = append(logs, l)
		}
	}

	report := &GoalReport{Goal: g, Exercise: ex}
	report.CurrentBest = analytics.BestOverall(logs, ex.ScoreType, nil)

	var current *float64
	if report.CurrentBest != nil {
		current = &report.CurrentBest.Score
	}
	report.Progress = analytics.Progress(current, g.TargetScore, ex.ScoreType)
	report.Projection = analytics.ProjectTrend(logs, g.TargetScore, g.TargetDate, ex.ScoreType, now)
	return report, nil
}

// RecoveryReport is the day's computed recovery state.
type RecoveryReport struct {
	CheckIn         *models.CheckIn // nil when today has no record
	ConsecutiveDays int
	Score           analytics.RecoveryScore
}

// TodayRecovery scores today's fatigue from the check-in history.
func (t *Tracker) TodayRecovery(now time.Time) (*RecoveryReport, error) {
	checkIns, err := t.repo.ListCheckIns(checkInWindowDays)
	if err != nil {
		return nil, err
	}

	var today *models.CheckIn
	todayStr := now.Format(models.DateLayout)
	for _, c := range checkIns {
		if c.Date == todayStr {
			today = c
			break
		}
	}

	days := analytics.ConsecutiveTrainingDays(checkIns, now, t.recovery)
	return &RecoveryReport{
		CheckIn:         today,
		ConsecutiveDays: days,
		Score:           analytics.Score(today, days, t.recovery),
	}, nil
}
