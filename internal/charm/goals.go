// ABOUTME: Goal operations for Charm KV storage.
// ABOUTME: Updates rewrite the whole JSON value under the goal's key.
package charm

import (
	"fmt"
	"sort"

	"github.com/harperreed/wodtrack/internal/models"

	"github.com/google/uuid"
)

// CreateGoal stores a new goal in the KV store.
func (c *Client) CreateGoal(g *models.Goal) error {
	data, err := marshalJSON(g)
	if err != nil {
		return fmt.Errorf("marshal goal: %w", err)
	}
	return c.set(goalPrefix+g.ID.String(), data)
}

// GetGoal retrieves a goal by ID or ID prefix.
func (c *Client) GetGoal(idOrPrefix string) (*models.Goal, error) {
	data, err := c.getByIDPrefix(goalPrefix, idOrPrefix)
	if err != nil {
		return nil, fmt.Errorf("get goal: %w", err)
	}
	g, err := unmarshalJSON[models.Goal](data)
	if err != nil {
		return nil, fmt.Errorf("unmarshal goal: %w", err)
	}
	return g, nil
}

// ListGoals retrieves goals with optional status filtering, newest first.
func (c *Client) ListGoals(status *models.GoalStatus) ([]*models.Goal, error) {
	return c.listGoals(nil, status)
}

// ListGoalsForExercise retrieves an exercise's goals with optional
// status filtering, newest first.
func (c *Client) ListGoalsForExercise(exerciseID uuid.UUID, status *models.GoalStatus) ([]*models.Goal, error) {
	return c.listGoals(&exerciseID, status)
}

func (c *Client) listGoals(exerciseID *uuid.UUID, status *models.GoalStatus) ([]*models.Goal, error) {
	allData, err := c.listByPrefix(goalPrefix)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	var goals []*models.Goal
	for _, data := range allData {
		g, err := unmarshalJSON[models.Goal](data)
		if err != nil {
			continue // Skip invalid entries
		}
		if exerciseID != nil && g.ExerciseID != *exerciseID {
			continue
		}
		if status != nil && g.Status != *status {
			continue
		}
		goals = append(goals, g)
	}

	sort.Slice(goals, func(i, j int) bool {
		return goals[i].CreatedAt.After(goals[j].CreatedAt)
	})
	return goals, nil
}

// UpdateGoal persists goal edits and status transitions.
func (c *Client) UpdateGoal(g *models.Goal) error {
	if _, err := c.getByIDPrefix(goalPrefix, g.ID.String()); err != nil {
		return fmt.Errorf("update goal: %w", err)
	}
	data, err := marshalJSON(g)
	if err != nil {
		return fmt.Errorf("marshal goal: %w", err)
	}
	return c.set(goalPrefix+g.ID.String(), data)
}
