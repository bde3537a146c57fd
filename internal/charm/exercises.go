// ABOUTME: Exercise catalog operations for Charm KV storage.
// ABOUTME: Uses type-prefixed keys and client-side filtering.
package charm

import (
	"fmt"
	"sort"
	"strings"

	"github.com/harperreed/wodtrack/internal/models"
)

// CreateExercise stores a new catalog entry in the KV store.
func (c *Client) CreateExercise(e *models.Exercise) error {
	if _, err := c.GetExerciseByName(e.Name); err == nil {
		return fmt.Errorf("exercise %q already exists", e.Name)
	}

	data, err := marshalJSON(e)
	if err != nil {
		return fmt.Errorf("marshal exercise: %w", err)
	}
	return c.set(exercisePrefix+e.ID.String(), data)
}

// GetExercise retrieves an exercise by ID or ID prefix.
func (c *Client) GetExercise(idOrPrefix string) (*models.Exercise, error) {
	data, err := c.getByIDPrefix(exercisePrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get exercise: %w", err)
	}
	e, err := unmarshalJSON[models.Exercise](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal exercise: %w", err)
	}
	return e, nil
}

// GetExerciseByName retrieves an exercise by its exact name,
// case-insensitively.
func (c *Client) GetExerciseByName(name string) (*models.Exercise, error) {
	all, err := c.ListExercises(nil)
	if err != nil {
		return nil, err
	}
	for _, e := range all {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("no exercise named %q", name)
}

// ListExercises retrieves catalog entries with optional category
// filtering, sorted by name.
func (c *Client) ListExercises(category *models.Category) ([]*models.Exercise, error) {
	allData, err := c.listByPrefix(exercisePrefix)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var exercises []*models.Exercise
	for _, data := range allData {
		e, err := unmarshalJSON[models.Exercise](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if category != nil && e.Category != *category {
			continue
		}
		exercises = append(exercises, e)
	}

	sort.Slice(exercises, func(i, j int) bool {
		return strings.ToLower(exercises[i].Name) < strings.ToLower(exercises[j].Name)
	})
	return exercises, nil
}

// DeleteExercise removes a catalog entry along with its logs and goals.
func (c *Client) DeleteExercise(idOrPrefix string) error {
	e, err := c.GetExercise(idOrPrefix)
	if err != nil {
		return err
	}

	logs, err := c.ListLogs(e.ID, nil, 0)
	if err != nil {
		return err
	}
	for _, l := range logs {
		if err := c.delete(logPrefix + l.ID.String()); err != nil {
			return fmt.Errorf("delete exercise logs: %w", err)
		}
	}

	goals, err := c.ListGoalsForExercise(e.ID, nil)
	if err != nil {
		return err
	}
	for _, g := range goals {
		if err := c.delete(goalPrefix + g.ID.String()); err != nil {
			return fmt.Errorf("delete exercise goals: %w", err)
		}
	}

	return c.delete(exercisePrefix + e.ID.String())
}
