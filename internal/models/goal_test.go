// ABOUTME: Tests for Goal lifecycle and log-matching filters.
// ABOUTME: Terminal states must be immutable once reached.
package models

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGoalLifecycle(t *testing.T) {
	g := NewGoal(uuid.New(), 270, time.Now().AddDate(0, 3, 0))

	if !g.IsActive() {
		t.Error("new goal should be active")
	}

	at := time.Now()
	g.MarkAchieved(at)
	if g.Status != GoalAchieved {
		t.Errorf("Status = %s, want achieved", g.Status)
	}
	if g.AchievedAt == nil || !g.AchievedAt.Equal(at) {
		t.Error("AchievedAt not recorded")
	}

	// Terminal: cancelling an achieved goal is a no-op
	g.MarkCancelled()
	if g.Status != GoalAchieved {
		t.Error("achieved goal must stay achieved")
	}
}

func TestGoalCancelTerminal(t *testing.T) {
	g := NewGoal(uuid.New(), 270, time.Now().AddDate(0, 3, 0))
	g.MarkCancelled()
	if g.Status != GoalCancelled {
		t.Errorf("Status = %s, want cancelled", g.Status)
	}

	g.MarkAchieved(time.Now())
	if g.Status != GoalCancelled {
		t.Error("cancelled goal must stay cancelled")
	}
	if g.AchievedAt != nil {
		t.Error("cancelled goal must not record AchievedAt")
	}
}

func TestGoalMatches(t *testing.T) {
	exID := uuid.New()
	rxSingle := NewPerformanceLog(exID, 140, "140").WithVariant(VariantRx).WithReps(1)
	scaledSingle := NewPerformanceLog(exID, 140, "140").WithVariant(VariantScaled).WithReps(1)
	rxTriple := NewPerformanceLog(exID, 140, "140").WithVariant(VariantRx).WithReps(3)
	bare := NewPerformanceLog(exID, 140, "140")

	tests := []struct {
		name string
		goal *Goal
		log  *PerformanceLog
		want bool
	}{
		{"no filters match anything", NewGoal(exID, 140, time.Now()), bare, true},
		{"variant filter matches", NewGoal(exID, 140, time.Now()).WithVariant(VariantRx), rxSingle, true},
		{"variant filter rejects", NewGoal(exID, 140, time.Now()).WithVariant(VariantRx), scaledSingle, false},
		{"variant filter rejects unqualified", NewGoal(exID, 140, time.Now()).WithVariant(VariantRx), bare, false},
		{"reps filter matches", NewGoal(exID, 140, time.Now()).WithReps(1), rxSingle, true},
		{"reps filter rejects other scheme", NewGoal(exID, 140, time.Now()).WithReps(1), rxTriple, false},
		{"reps filter rejects missing reps", NewGoal(exID, 140, time.Now()).WithReps(1), bare, false},
		{"both filters must match", NewGoal(exID, 140, time.Now()).WithVariant(VariantRx).WithReps(1), rxTriple, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.goal.Matches(tt.log); got != tt.want {
				t.Errorf("Matches = %v, want %v", got, tt.want)
			}
		})
	}
}
