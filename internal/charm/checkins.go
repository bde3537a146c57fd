// ABOUTME: Daily check-in and export operations for Charm KV storage.
// ABOUTME: Check-ins key on the calendar date, so saves upsert naturally.
package charm

import (
	"fmt"
	"sort"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
	"github.com/harperreed/wodtrack/internal/storage"
)

// UpsertCheckIn saves a check-in, replacing any existing record for the
// same date.
func (c *Client) UpsertCheckIn(ci *models.CheckIn) error {
	if err := ci.Validate(); err != nil {
		return fmt.Errorf("upsert check-in: %w", err)
	}
	data, err := marshalJSON(ci)
	if err != nil {
		return fmt.Errorf("marshal check-in: %w", err)
	}
	return c.set(checkInPrefix+ci.Date, data)
}

// GetCheckIn retrieves the check-in for a calendar date, if any.
func (c *Client) GetCheckIn(date string) (*models.CheckIn, error) {
	data, err := c.get(checkInPrefix + date)
	if err != nil || data == nil {
		return nil, fmt.Errorf("no check-in for %s", date)
	}
	ci, err := unmarshalJSON[models.CheckIn](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal check-in: %w", err)
	}
	return ci, nil
}

// ListCheckIns retrieves check-ins ordered by date descending.
func (c *Client) ListCheckIns(limit int) ([]*models.CheckIn, error) {
	allData, err := c.listByPrefix(checkInPrefix)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	var checkIns []*models.CheckIn
	for _, data := range allData {
		ci, err := unmarshalJSON[models.CheckIn](data)
		if err != nil {
			continue // Skip invalid entries
		}
		checkIns = append(checkIns, ci)
	}

	sort.Slice(checkIns, func(i, j int) bool {
		return checkIns[i].Date > checkIns[j].Date
	})
	if limit > 0 && len(checkIns) > limit {
		checkIns = checkIns[:limit]
	}
	return checkIns, nil
}

// GetAllData retrieves all data for export.
func (c *Client) GetAllData() (*storage.ExportData, error) {
	exercises, err := c.ListExercises(nil)
	if err != nil {
		return nil, err
	}

	var logs []*models.PerformanceLog
	for _, e := range exercises {
		exLogs, err := c.ListLogs(e.ID, nil, 0)
		if err != nil {
			return nil, err
		}
		logs = append(logs, exLogs...)
	}

	goals, err := c.ListGoals(nil)
	if err != nil {
		return nil, err
	}
	checkIns, err := c.ListCheckIns(0)
	if err != nil {
		return nil, err
	}

	return &storage.ExportData{
		Version:    "1.0",
		ExportedAt: time.Now(),
		Tool:       "wodtrack",
		Exercises:  exercises,
		Logs:       logs,
		Goals:      goals,
		CheckIns:   checkIns,
	}, nil
}

// ImportData imports data from an export file.
func (c *Client) ImportData(data *storage.ExportData) error {
	for _, e := range data.Exercises {
		if err := c.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, l := range data.Logs {
		if err := c.CreateLog(l); err != nil {
			return fmt.Errorf("import log: %w", err)
		}
	}
	for _, g := range data.Goals {
		if err := c.CreateGoal(g); err != nil {
			return fmt.Errorf("import goal: %w", err)
		}
	}
	for _, ci := range data.CheckIns {
		if err := c.UpsertCheckIn(ci); err != nil {
			return fmt.Errorf("import check-in: %w", err)
		}
	}
	return nil
}
