// ABOUTME: Tests for Exercise model, ScoreType direction, and MetricKind.
// ABOUTME: Validates comparison semantics and constructor defaults.
package models

import (
	"testing"
)

func TestScoreTypeLowerIsBetter(t *testing.T) {
	if !ScoreTime.LowerIsBetter() {
		t.Error("time should be lower-is-better")
	}
	for _, st := range []ScoreType{ScoreLoad, ScoreReps, ScoreRoundsReps, ScoreDistance, ScoreCalories} {
		if st.LowerIsBetter() {
			t.Errorf("%s should be higher-is-better", st)
		}
	}
}

func TestScoreTypeBetterThan(t *testing.T) {
	tests := []struct {
		name string
		st   ScoreType
		a, b float64
		want bool
	}{
		{"faster time wins", ScoreTime, 295, 330, true},
		{"slower time loses", ScoreTime, 330, 295, false},
		{"equal time is not better", ScoreTime, 295, 295, false},
		{"heavier load wins", ScoreLoad, 140, 135, true},
		{"equal load is not better", ScoreLoad, 140, 140, false},
		{"more rounds wins", ScoreRoundsReps, 1302, 1207, true},
		{"more partial reps wins", ScoreRoundsReps, 1208, 1207, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.st.BetterThan(tt.a, tt.b); got != tt.want {
				t.Errorf("BetterThan(%g, %g) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestIsValidScoreType(t *testing.T) {
	for _, s := range []string{"time", "load", "reps", "rounds_reps", "distance", "calories"} {
		if !IsValidScoreType(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if IsValidScoreType("points") {
		t.Error("points should be invalid")
	}
}

func TestMetricKindSupport(t *testing.T) {
	tests := []struct {
		kind     MetricKind
		distance bool
		calories bool
	}{
		{MetricNone, false, false},
		{MetricByDistance, true, false},
		{MetricByCalories, false, true},
		{MetricDistanceCalories, true, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.SupportsDistance(); got != tt.distance {
				t.Errorf("SupportsDistance = %v, want %v", got, tt.distance)
			}
			if got := tt.kind.SupportsCalories(); got != tt.calories {
				t.Errorf("SupportsCalories = %v, want %v", got, tt.calories)
			}
		})
	}
}

func TestNewExercise(t *testing.T) {
	e := NewExercise("Fran", CategoryBenchmark, ScoreTime)

	if e.ID.String() == "" {
		t.Error("expected UUID to be set")
	}
	if e.Name != "Fran" {
		t.Errorf("Name = %s, want Fran", e.Name)
	}
	if e.MetricKind != MetricNone {
		t.Errorf("MetricKind = %s, want none", e.MetricKind)
	}
	if e.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}

	e.WithMetricKind(MetricDistanceCalories)
	if e.MetricKind != MetricDistanceCalories {
		t.Errorf("MetricKind = %s, want distance_calories", e.MetricKind)
	}
}
