// ABOUTME: Goal CRUD operations for SQLite storage.
// ABOUTME: Goals update in place for status transitions and active edits.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/models"

	"github.com/google/uuid"
)

const goalColumns = `id, exercise_id, target_score, target_date, status, achieved_at, variant, reps, created_at`

// CreateGoal stores a new goal.
func (d *DB) CreateGoal(g *models.Goal) error {
	query := `
		INSERT INTO goals (` + goalColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		g.ID.String(),
		g.ExerciseID.String(),
		g.TargetScore,
		g.TargetDate.Format(time.RFC3339),
		string(g.Status),
		formatTimePtr(g.AchievedAt),
		string(g.Variant),
		g.Reps,
		g.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create goal: %w", err)
	}
	return nil
}

// GetGoal retrieves a goal by ID or ID prefix.
func (d *DB) GetGoal(idOrPrefix string) (*models.Goal, error) {
	id, err := d.resolveID("goals", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + goalColumns + ` FROM goals WHERE id = ?`
	g, err := scanGoal(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, err
	}
	return g, nil
}

// ListGoals retrieves goals with optional status filtering, newest first.
func (d *DB) ListGoals(status *models.GoalStatus) ([]*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals`
	var args []interface{}
	if status != nil {
		query += " WHERE status = ?"
		args = append(args, string(*status))
	}
	query += " ORDER BY created_at DESC"
	return d.queryGoals(query, args...)
}

// ListGoalsForExercise retrieves an exercise's goals with optional
// status filtering, newest first.
func (d *DB) ListGoalsForExercise(exerciseID uuid.UUID, status *models.GoalStatus) ([]*models.Goal, error) {
	query := `SELECT ` + goalColumns + ` FROM goals WHERE exercise_id = ?`
	args := []interface{}{exerciseID.String()}
	if status != nil {
		query += " AND status = ?"
		args = append(args, string(*status))
	}
	query += " ORDER BY created_at DESC"
	return d.queryGoals(query, args...)
}

// UpdateGoal persists goal edits and status transitions.
func (d *DB) UpdateGoal(g *models.Goal) error {
	query := `
		UPDATE goals
		SET target_score = ?, target_date = ?, status = ?, achieved_at = ?, variant = ?, reps = ?
		WHERE id = ?
	`
	result, err := d.db.Exec(query,
		g.TargetScore,
		g.TargetDate.Format(time.RFC3339),
		string(g.Status),
		formatTimePtr(g.AchievedAt),
		string(g.Variant),
		g.Reps,
		g.ID.String(),
	)
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", g.ID)
	}
	return nil
}

func (d *DB) queryGoals(query string, args ...interface{}) ([]*models.Goal, error) {
	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	defer rows.Close()

	var goals []*models.Goal
	for rows.Next() {
		g, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, g)
	}
	return goals, rows.Err()
}

func scanGoal(s rowScanner) (*models.Goal, error) {
	var g models.Goal
	var idStr, exerciseIDStr, targetDate, status, variant, createdAt string
	var achievedAt sql.NullString
	var reps sql.NullInt64

	err := s.Scan(&idStr, &exerciseIDStr, &g.TargetScore, &targetDate, &status,
		&achievedAt, &variant, &reps, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan goal: %w", err)
	}

	g.ID, _ = uuid.Parse(idStr)
	g.ExerciseID, _ = uuid.Parse(exerciseIDStr)
	g.TargetDate, _ = time.Parse(time.RFC3339, targetDate)
	g.Status = models.GoalStatus(status)
	g.Variant = models.Variant(variant)
	if achievedAt.Valid {
		t, err := time.Parse(time.RFC3339, achievedAt.String)
		if err == nil {
			g.AchievedAt = &t
		}
	}
	if reps.Valid {
		r := int(reps.Int64)
		g.Reps = &r
	}
	g.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &g, nil
}

func formatTimePtr(t *time.Time) interface{} {
	if t == nil {
		return nil
	}
	return t.Format(time.RFC3339)
}
