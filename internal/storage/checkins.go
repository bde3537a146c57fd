// ABOUTME: Daily check-in operations for SQLite storage.
// ABOUTME: Keyed by calendar date; re-saving a date overwrites in place.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
)

// UpsertCheckIn saves a check-in, replacing any existing record for the
// same date. The most recent save wins; a date is never both training
// and rest.
func (d *DB) UpsertCheckIn(c *models.CheckIn) error {
	if err := c.Validate(); err != nil {
		return fmt.Errorf("upsert check-in: %w", err)
	}

	query := `
		INSERT INTO checkins (date, type, energy, soreness, sleep_hours, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET
			type = excluded.type,
			energy = excluded.energy,
			soreness = excluded.soreness,
			sleep_hours = excluded.sleep_hours,
			created_at = excluded.created_at
	`
	_, err := d.db.Exec(query,
		c.Date,
		string(c.Type),
		c.Energy,
		c.Soreness,
		c.SleepHours,
		c.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("upsert check-in: %w", err)
	}
	return nil
}

// GetCheckIn retrieves the check-in for a calendar date, if any.
func (d *DB) GetCheckIn(date string) (*models.CheckIn, error) {
	query := `
		SELECT date, type, energy, soreness, sleep_hours, created_at
		FROM checkins
		WHERE date = ?
	`
	c, err := scanCheckIn(d.db.QueryRow(query, date))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("no check-in for %s", date)
		}
		return nil, err
	}
	return c, nil
}

// ListCheckIns retrieves check-ins ordered by date descending.
func (d *DB) ListCheckIns(limit int) ([]*models.CheckIn, error) {
	query := `
		SELECT date, type, energy, soreness, sleep_hours, created_at
		FROM checkins
		ORDER BY date DESC
	`
	var args []interface{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := d.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}
	defer rows.Close()

	var checkIns []*models.CheckIn
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		checkIns = append(checkIns, c)
	}
	return checkIns, rows.Err()
}

func scanCheckIn(s rowScanner) (*models.CheckIn, error) {
	var c models.CheckIn
	var typ, createdAt string
	var energy, soreness sql.NullInt64
	var sleepHours sql.NullFloat64

	err := s.Scan(&c.Date, &typ, &energy, &soreness, &sleepHours, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan check-in: %w", err)
	}

	c.Type = models.CheckInType(typ)
	if energy.Valid {
		e := int(energy.Int64)
		c.Energy = &e
	}
	if soreness.Valid {
		v := int(soreness.Int64)
		c.Soreness = &v
	}
	if sleepHours.Valid {
		c.SleepHours = &sleepHours.Float64
	}
	c.CreatedAt, _ = time.Parse(time.RFC3339, createdAt)
	return &c, nil
}
