// ABOUTME: Goal model with active/achieved/cancelled lifecycle.
// ABOUTME: Optional variant/reps filters scope which logs count toward a goal.
package models

import (
	"time"

	"github.com/google/uuid"
)

// GoalStatus is a goal's lifecycle state. Achieved and cancelled are terminal.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalAchieved  GoalStatus = "achieved"
	GoalCancelled GoalStatus = "cancelled"
)

// Goal is a target score the user wants to reach by a date.
type Goal struct {
	ID          uuid.UUID
	ExerciseID  uuid.UUID
	TargetScore float64
	TargetDate  time.Time
	Status      GoalStatus
	AchievedAt  *time.Time
	Variant     Variant // when set, only logs with this variant count
	Reps        *int    // when set, only logs with this rep scheme count
	CreatedAt   time.Time
}

// NewGoal creates an active Goal with generated UUID and current timestamp.
func NewGoal(exerciseID uuid.UUID, targetScore float64, targetDate time.Time) *Goal {
	return &Goal{
		ID:          uuid.New(),
		ExerciseID:  exerciseID,
		TargetScore: targetScore,
		TargetDate:  targetDate,
		Status:      GoalActive,
		CreatedAt:   time.Now(),
	}
}

// WithVariant restricts the goal to logs of the given variant.
func (g *Goal) WithVariant(v Variant) *Goal {
	g.Variant = v
	return g
}

// WithReps restricts the goal to logs of the given rep scheme.
func (g *Goal) WithReps(reps int) *Goal {
	g.Reps = &reps
	return g
}

// IsActive reports whether the goal can still be edited or achieved.
func (g *Goal) IsActive() bool {
	return g.Status == GoalActive
}

// Matches reports whether a log satisfies the goal's variant/reps filters.
// The exercise match is the caller's responsibility.
func (g *Goal) Matches(l *PerformanceLog) bool {
	if g.Variant != "" && l.Variant != g.Variant {
		return false
	}
	if g.Reps != nil {
		if l.Reps == nil || *l.Reps != *g.Reps {
			return false
		}
	}
	return true
}

// MarkAchieved transitions an active goal to achieved at the given time.
// Terminal goals are left untouched.
func (g *Goal) MarkAchieved(at time.Time) {
	if !g.IsActive() {
		return
	}
	g.Status = GoalAchieved
	g.AchievedAt = &at
}

// MarkCancelled transitions an active goal to cancelled.
func (g *Goal) MarkCancelled() {
	if !g.IsActive() {
		return
	}
	g.Status = GoalCancelled
}
