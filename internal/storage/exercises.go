// ABOUTME: Exercise catalog CRUD operations for SQLite storage.
// ABOUTME: Implements Repository interface methods for exercises.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wodtrack/internal/models"

	"github.com/google/uuid"
)

// CreateExercise stores a new catalog entry.
func (d *DB) CreateExercise(e *models.Exercise) error {
	query := `
		INSERT INTO exercises (id, name, category, score_type, metric_kind, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := d.db.Exec(query,
		e.ID.String(),
		e.Name,
		string(e.Category),
		string(e.ScoreType),
		string(e.MetricKind),
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("create exercise: %w", err)
	}
	return nil
}

// GetExercise retrieves an exercise by ID or ID prefix.
func (d *DB) GetExercise(idOrPrefix string) (*models.Exercise, error) {
	id, err := d.resolveID("exercises", idOrPrefix)
	if err != nil {
		return nil, err
	}

	query := `
		SELECT id, name, category, score_type, metric_kind, created_at
		FROM exercises
		WHERE id = ?
	`
	return scanExercise(d.db.QueryRow(query, id))
}

// GetExerciseByName retrieves an exercise by its exact name,
// case-insensitively.
func (d *DB) GetExerciseByName(name string) (*models.Exercise, error) {
	query := `
		SELECT id, name, category, score_type, metric_kind, created_at
		FROM exercises
		WHERE name = ? COLLATE NOCASE
	`
	e, err := scanExercise(d.db.QueryRow(query, name))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no exercise named %q", name)
		}
		return nil, err
	}
	return e, nil
}

// ListExercises retrieves catalog entries with optional category filtering,
// sorted by name.
func (d *DB) ListExercises(category *models.Category) ([]*models.Exercise, error) {
	var query string
	var args []interface{}

	if category != nil {
		query = `
			SELECT id, name, category, score_type, metric_kind, created_at
			FROM exercises
			WHERE category = ?
			ORDER BY name
		`
		args = append(args, string(*category))
	} else {
		query = `
			SELECT id, name, category, score_type, metric_kind, created_at
			FROM exercises
			ORDER BY name
		`
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}
	defer rows.Close()

	var exercises []*models.Exercise
	for rows.Next() {
		e, err := scanExercise(rows)
		if err != nil {
			return nil, err
		}
		exercises = append(exercises, e)
	}
	return exercises, rows.Err()
}

// DeleteExercise removes a catalog entry and, via cascade, its logs and
// goals.
func (d *DB) DeleteExercise(idOrPrefix string) error {
	id, err := d.resolveID("exercises", idOrPrefix)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	result, err := d.db.Exec("DELETE FROM exercises WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete exercise: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("not found: %s", idOrPrefix)
	}
	return nil
}

// resolveID finds a full ID in the given table from a prefix.
func (d *DB) resolveID(table, idOrPrefix string) (string, error) {
	// If it looks like a full UUID, use it directly
	if len(idOrPrefix) == 36 && strings.Count(idOrPrefix, "-") == 4 {
		return idOrPrefix, nil
	}

	// Search by prefix
	query := fmt.Sprintf(`SELECT id FROM %s WHERE id LIKE ? || '%%'`, table)
	rows, err := d.db.Query(query, idOrPrefix)
	if err != nil {
		return "", fmt.Errorf("resolve ID: %w", err)
	}
	defer rows.Close()

	var matches []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return "", fmt.Errorf("scan ID: %w", err)
		}
		matches = append(matches, id)
	}
	if err := rows.Err(); err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "", fmt.Errorf("not found: %s", idOrPrefix)
	}
	if len(matches) > 1 {
		return "", fmt.Errorf("ambiguous prefix %s: matches multiple records", idOrPrefix)
	}

	return matches[0], nil
}

// rowScanner covers both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanExercise(s rowScanner) (*models.Exercise, error) {
	var e models.Exercise
	var idStr, category, scoreType, metricKind, createdAt string

	if err := s.Scan(&idStr, &e.Name, &category, &scoreType, &metricKind, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan exercise: %w", err)
	}

	e.ID, _ = uuid.Parse(idStr)
	e.Category = models.Category(category)
	e.ScoreType = models.ScoreType(scoreType)
	e.MetricKind = models.MetricKind(metricKind)
	e.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &e, nil
}
