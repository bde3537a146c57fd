// ABOUTME: Exercise catalog model with ScoreType and MetricKind enums.
// ABOUTME: Score direction and metric grouping both hang off these types.
package models

import (
	"time"

	"github.com/google/uuid"
)

// ScoreType is the unit/direction family an exercise is scored in.
type ScoreType string

const (
	ScoreTime       ScoreType = "time"        // seconds, lower is better
	ScoreLoad       ScoreType = "load"        // weight, higher is better
	ScoreReps       ScoreType = "reps"        // count, higher is better
	ScoreRoundsReps ScoreType = "rounds_reps" // rounds*100+reps, higher is better
	ScoreDistance   ScoreType = "distance"    // meters, higher is better
	ScoreCalories   ScoreType = "calories"    // count, higher is better
)

// AllScoreTypes returns all valid score types.
var AllScoreTypes = []ScoreType{
	ScoreTime, ScoreLoad, ScoreReps, ScoreRoundsReps, ScoreDistance, ScoreCalories,
}

// IsValidScoreType checks if a string is a valid score type.
func IsValidScoreType(s string) bool {
	for _, st := range AllScoreTypes {
		if string(st) == s {
			return true
		}
	}
	return false
}

// LowerIsBetter reports whether a smaller score beats a larger one.
// Only time-scored exercises improve downward.
func (st ScoreType) LowerIsBetter() bool {
	return st == ScoreTime
}

// BetterThan reports whether score a strictly beats score b under this
// score type. Equal scores are never "better", so reductions using it
// keep the first-encountered candidate on ties.
func (st ScoreType) BetterThan(a, b float64) bool {
	if st.LowerIsBetter() {
		return a < b
	}
	return a > b
}

// MetricKind tags how a monostructural exercise can be logged.
// It replaces name-substring sniffing ("row", "bike", ...) with an
// explicit variant set at catalog-entry time.
type MetricKind string

const (
	MetricNone             MetricKind = "none"
	MetricByDistance       MetricKind = "distance"
	MetricByCalories       MetricKind = "calories"
	MetricDistanceCalories MetricKind = "distance_calories"
)

// IsValidMetricKind checks if a string is a valid metric kind.
func IsValidMetricKind(s string) bool {
	switch MetricKind(s) {
	case MetricNone, MetricByDistance, MetricByCalories, MetricDistanceCalories:
		return true
	}
	return false
}

// SupportsDistance reports whether logs may carry a distance marker.
func (mk MetricKind) SupportsDistance() bool {
	return mk == MetricByDistance || mk == MetricDistanceCalories
}

// SupportsCalories reports whether logs may carry a calorie count.
func (mk MetricKind) SupportsCalories() bool {
	return mk == MetricByCalories || mk == MetricDistanceCalories
}

// Category groups exercises for browsing.
type Category string

const (
	CategoryBenchmark      Category = "benchmark"
	CategoryLift           Category = "lift"
	CategoryMonostructural Category = "monostructural"
	CategorySkill          Category = "skill"
	CategoryCustom         Category = "custom"
)

// IsValidCategory checks if a string is a valid category.
func IsValidCategory(s string) bool {
	switch Category(s) {
	case CategoryBenchmark, CategoryLift, CategoryMonostructural, CategorySkill, CategoryCustom:
		return true
	}
	return false
}

// Exercise is a catalog entry results are logged against.
// The catalog is read-only from the analytics layer's point of view.
type Exercise struct {
	ID         uuid.UUID
	Name       string
	Category   Category
	ScoreType  ScoreType
	MetricKind MetricKind
	CreatedAt  time.Time
}

// NewExercise creates a new Exercise with generated UUID and current timestamp.
func NewExercise(name string, category Category, scoreType ScoreType) *Exercise {
	return &Exercise{
		ID:         uuid.New(),
		Name:       name,
		Category:   category,
		ScoreType:  scoreType,
		MetricKind: MetricNone,
		CreatedAt:  time.Now(),
	}
}

// WithMetricKind sets the metric kind for monostructural exercises.
func (e *Exercise) WithMetricKind(mk MetricKind) *Exercise {
	e.MetricKind = mk
	return e
}
