// ABOUTME: MCP resource implementations for workout tracking.
// ABOUTME: Provides wodtrack://summary, wodtrack://goals, and wodtrack://recovery.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerResources() {
	// wodtrack://summary - Catalog overview with each exercise's best
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wodtrack://summary",
		Name:        "Training Summary",
		Description: "Every exercise with its current best result",
		MIMEType:    "application/json",
	}, s.handleSummaryResource)

	// wodtrack://goals - Active goals with progress and pacing
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wodtrack://goals",
		Name:        "Active Goals",
		Description: "Active goals with progress percentage and trend",
		MIMEType:    "application/json",
	}, s.handleGoalsResource)

	// wodtrack://recovery - Today's fatigue assessment
	s.mcpServer.AddResource(&mcp.Resource{
		URI:         "wodtrack://recovery",
		Name:        "Recovery Status",
		Description: "Today's fatigue points, alert level, and reasons",
		MIMEType:    "application/json",
	}, s.handleRecoveryResource)
}

// Resource handlers

func (s *Server) handleSummaryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	exercises, err := s.repo.ListExercises(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	entries := make([]map[string]interface{}, 0, len(exercises))
	for _, ex := range exercises {
		entry := map[string]interface{}{
			"name":       ex.Name,
			"category":   ex.Category,
			"score_type": ex.ScoreType,
		}
		summary, err := s.tracker.PRSummary(ex.ID.String(), nil)
		if err == nil && summary.Best != nil {
			entry["best"] = models.FormatScore(summary.Best.Score, ex.ScoreType)
			entry["best_date"] = summary.Best.RecordedAt.Format("2006-01-02")
		}
		entries = append(entries, entry)
	}

	result := map[string]interface{}{
		"generated_at": time.Now().Format(time.RFC3339),
		"exercises":    entries,
	}

	return marshalResource("wodtrack://summary", result)
}

func (s *Server) handleGoalsResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	status := models.GoalActive
	goals, err := s.repo.ListGoals(&status)
	if err != nil {
		return nil, fmt.Errorf("failed to list goals: %w", err)
	}

	now := time.Now()
	entries := make([]map[string]interface{}, 0, len(goals))
	for _, g := range goals {
		report, err := s.tracker.GoalProgress(g.ID.String(), now)
		if err != nil {
			continue
		}
		entry := map[string]interface{}{
			"exercise":         report.Exercise.Name,
			"target":           models.FormatScore(g.TargetScore, report.Exercise.ScoreType),
			"target_date":      g.TargetDate.Format("2006-01-02"),
			"progress_percent": report.Progress,
			"trend":            report.Projection.Trend,
		}
		if report.CurrentBest != nil {
			entry["current_best"] = models.FormatScore(report.CurrentBest.Score, report.Exercise.ScoreType)
		}
		if report.Projection.ProjectedDate != nil {
			entry["projected_date"] = report.Projection.ProjectedDate.Format("2006-01-02")
		}
		entries = append(entries, entry)
	}

	result := map[string]interface{}{
		"generated_at": now.Format(time.RFC3339),
		"active_goals": entries,
	}

	return marshalResource("wodtrack://goals", result)
}

func (s *Server) handleRecoveryResource(ctx context.Context, req *mcp.ReadResourceRequest) (*mcp.ReadResourceResult, error) {
	now := time.Now()
	report, err := s.tracker.TodayRecovery(now)
	if err != nil {
		return nil, fmt.Errorf("failed to compute recovery: %w", err)
	}

	result := map[string]interface{}{
		"date":                      now.Format(models.DateLayout),
		"consecutive_training_days": report.ConsecutiveDays,
		"fatigue_points":            report.Score.Total,
		"level":                     report.Score.Level,
		"reasons":                   report.Score.Reasons,
		"checked_in_today":          report.CheckIn != nil,
	}

	return marshalResource("wodtrack://recovery", result)
}

func marshalResource(uri string, result interface{}) (*mcp.ReadResourceResult, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal result: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		}},
	}, nil
}
