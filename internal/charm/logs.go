// ABOUTME: Performance log operations for Charm KV storage.
// ABOUTME: Logs are append-only; listing sorts client-side by date.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/wodtrack/internal/models"

	"github.com/google/uuid"
)

// CreateLog stores a new performance log in the KV store.
func (c *Client) CreateLog(l *models.PerformanceLog) error {
	data, err := marshalJSON(l)
	if err != nil {
		return fmt.Errorf("marshal log: %w", err)
	}
	return c.set(logPrefix+l.ID.String(), data)
}

// GetLog retrieves a log by ID or ID prefix.
func (c *Client) GetLog(idOrPrefix string) (*models.PerformanceLog, error) {
	data, err := c.getByIDPrefix(logPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get log: %w", err)
	}
	l, err := unmarshalJSON[models.PerformanceLog](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal log: %w", err)
	}
	return l, nil
}

// ListLogs retrieves an exercise's logs with optional variant filtering.
// Results are sorted by RecordedAt descending (most recent first).
func (c *Client) ListLogs(exerciseID uuid.UUID, variant *models.Variant, limit int) ([]*models.PerformanceLog, error) {
	allData, err := c.listByPrefix(logPrefix)
	if err != nil {
		return nil, fmt.Errorf("list logs: %w", err)
	}

	var logs []*models.PerformanceLog
	for _, data := range allData {
		l, err := unmarshalJSON[models.PerformanceLog](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if l.ExerciseID != exerciseID {
			continue
		}
		if variant != nil && l.Variant != *variant {
			continue
		}
		logs = append(logs, l)
	}

	sort.Slice(logs, func(i, j int) bool {
		return logs[i].RecordedAt.After(logs[j].RecordedAt)
	})
	if limit > 0 && len(logs) > limit {
		logs = logs[:limit]
	}
	return logs, nil
}

// DeleteLog removes a log by ID or prefix.
func (c *Client) DeleteLog(idOrPrefix string) error {
	if err := c.deleteByIDPrefix(logPrefix, idOrPrefix); err != nil {
		return fmt.Errorf("delete log: %w", err)
	}
	return nil
}
