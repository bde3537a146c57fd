// ABOUTME: Performance log CRUD operations for SQLite storage.
// ABOUTME: Logs are append-only: insert, list, and delete, never update.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/models"

	"github.com/google/uuid"
)

const logColumns = `id, exercise_id, score, display_score, variant, reps, distance_meters, calories, recorded_at, created_at`

// CreateLog stores a new performance log.
func (d *DB) CreateLog(l *models.PerformanceLog) error {
	query := `
		INSERT INTO logs (` + logColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		l.ID.String(),
		l.ExerciseID.String(),
		l.Score,
		l.DisplayScore,
		string(l.Variant),
		l.Reps,
		l.DistanceMeters,
		l.Calories,
		l.RecordedAt.Format(time.RFC3339),
		l.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create log: %w", err)
	}
	return nil
}

// GetLog retrieves a log by ID or ID prefix.
func (d *DB) GetLog(idOrPrefix string) (*models.PerformanceLog, error) {
	id, err := d.resolveID("logs", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `SELECT ` + logColumns + ` FROM logs WHERE id = ?`
	l, err := scanLog(d.db.QueryRow(query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("not found: %s", idOrPrefix)
		}
		return nil, err
	}
	return l, nil
}

// ListLogs retrieves all logs for an exercise, optionally filtered by
// variant. Results are sorted by RecordedAt descending (most recent
// first).
func (d *DB) ListLogs(exerciseID uuid.UUID, variant *models.Variant, limit int) ([]*models.PerformanceLog, error) {
	query := `SELECT ` + logColumns + ` FROM logs WHERE exercise_id = ?`
	args := []interface{}{exerciseID.String()}

	if variant != nil {
		query += " AND variant = ?"
		args = append(args, string(*variant))
	}
	query += " ORDER BY recorded_at DESC"
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}
	defer rows.Close()

	var logs []*models.PerformanceLog
	for rows.Next() {
		l, err := scanLog(rows)
		if err != nil {
			return nil, err
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

// DeleteLog removes a log by ID or prefix.
func (d *DB) DeleteLog(idOrPrefix string) error {
	id, err := d.resolveID("logs", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM logs WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

func scanLog(s rowScanner) (*models.PerformanceLog, error) {
	var l models.PerformanceLog
	var idStr, exerciseIDStr, variant, recordedAt, createdAt string
	var reps sql.NullInt64
	var distance, calories sql.NullFloat64

	err := s.Scan(&idStr, &exerciseIDStr, &l.Score, &l.DisplayScore, &variant,
		&reps, &distance, &calories, &recordedAt, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan log: %w", err)
	}

	l.ID, _ = uuid.Parse(idStr)
	l.ExerciseID, _ = uuid.Parse(exerciseIDStr)
	l.Variant = models.Variant(variant)
	if reps.Valid {
		r := int(reps.Int64)
		l.Reps = &r
	}
	if distance.Valid {
		l.DistanceMeters = &distance.Float64
	}
	if calories.Valid {
		l.Calories = &calories.Float64
	}
	l.RecordedAt, _ = time.Parse(time.RFC3339, recordedAt)
	l.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &l, nil
}
