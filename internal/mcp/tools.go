// ABOUTME: MCP tool implementations for workout tracking.
// ABOUTME: Exposes exercise, log, goal, check-in, and recovery operations.
package mcp

import (
	"context"
	"fmt"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func (s *Server) registerTools() {
	// add_exercise
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_exercise",
		Description: "Add an exercise to the catalog (benchmark WOD, lift, monostructural, skill)",
	}, s.handleAddExercise)

	// list_exercises
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_exercises",
		Description: "List catalog exercises, optionally filtered by category",
	}, s.handleListExercises)

	// log_result
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "log_result",
		Description: "Record a performance result for an exercise; reports any goals it achieves",
	}, s.handleLogResult)

	// list_logs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_logs",
		Description: "List recent results for an exercise, optionally filtered by variant",
	}, s.handleListLogs)

	// delete_log
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "delete_log",
		Description: "Delete a logged result by ID or ID prefix",
	}, s.handleDeleteLog)

	// get_prs
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_prs",
		Description: "Get personal records for an exercise, grouped the way they are compared",
	}, s.handleGetPRs)

	// add_goal
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "add_goal",
		Description: "Set a target score and date for an exercise",
	}, s.handleAddGoal)

	// list_goals
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_goals",
		Description: "List goals, optionally filtered by status",
	}, s.handleListGoals)

	// goal_progress
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "goal_progress",
		Description: "Get progress percentage and trend projection for a goal",
	}, s.handleGoalProgress)

	// check_in
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "check_in",
		Description: "Record today's training or rest check-in",
	}, s.handleCheckIn)

	// get_recovery
	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_recovery",
		Description: "Get today's fatigue score, alert level, and reasons",
	}, s.handleGetRecovery)
}

// Tool input/output types

type addExerciseInput struct {
	Name       string `json:"name" jsonschema:"Exercise name"`
	Category   string `json:"category" jsonschema:"Category (benchmark, lift, monostructural, skill, custom)"`
	ScoreType  string `json:"score_type" jsonschema:"How results are scored (time, load, reps, rounds_reps, distance, calories)"`
	MetricKind string `json:"metric_kind,omitempty" jsonschema:"Metric grouping for timed efforts (distance, calories, distance_calories)"`
}

type exerciseOutput struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	ScoreType string `json:"score_type"`
	Message   string `json:"message"`
}

type listExercisesInput struct {
	Category string `json:"category,omitempty" jsonschema:"Filter by category"`
}

type logResultInput struct {
	Exercise       string  `json:"exercise" jsonschema:"Exercise name or ID prefix"`
	Score          string  `json:"score" jsonschema:"Result in native units: 4:55 for time, 12+7 for rounds+reps, a number otherwise"`
	Variant        string  `json:"variant,omitempty" jsonschema:"Scaling qualifier (rx_plus, rx, scaled)"`
	Reps           int     `json:"reps,omitempty" jsonschema:"Rep scheme for load exercises (1 for a 1-rep max)"`
	DistanceMeters float64 `json:"distance_meters,omitempty" jsonschema:"Distance marker for monostructural efforts"`
	Calories       float64 `json:"calories,omitempty" jsonschema:"Calorie count for calorie efforts"`
	RecordedAt     string  `json:"recorded_at,omitempty" jsonschema:"Timestamp (ISO 8601), defaults to now"`
}

type logResultOutput struct {
	ID            string   `json:"id"`
	Exercise      string   `json:"exercise"`
	Score         string   `json:"score"`
	GoalsAchieved []string `json:"goals_achieved,omitempty"`
	Message       string   `json:"message"`
}

type listLogsInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name or ID prefix"`
	Variant  string `json:"variant,omitempty" jsonschema:"Filter by variant (rx_plus, rx, scaled)"`
	Limit    int    `json:"limit,omitempty" jsonschema:"Max results (default 20)"`
}

type deleteLogInput struct {
	ID string `json:"id" jsonschema:"Log ID or prefix"`
}

type simpleOutput struct {
	Message string `json:"message"`
}

type getPRsInput struct {
	Exercise string `json:"exercise" jsonschema:"Exercise name or ID prefix"`
	Variant  string `json:"variant,omitempty" jsonschema:"Restrict to one variant (rx_plus, rx, scaled)"`
}

type addGoalInput struct {
	Exercise    string `json:"exercise" jsonschema:"Exercise name or ID prefix"`
	TargetScore string `json:"target_score" jsonschema:"Target in native units: 4:30 for time, a number otherwise"`
	TargetDate  string `json:"target_date" jsonschema:"Target date (YYYY-MM-DD)"`
	Variant     string `json:"variant,omitempty" jsonschema:"Only count results of this variant"`
	Reps        int    `json:"reps,omitempty" jsonschema:"Only count results at this rep scheme"`
}

type goalOutput struct {
	ID       string `json:"id"`
	Exercise string `json:"exercise"`
	Target   string `json:"target"`
	Message  string `json:"message"`
}

type listGoalsInput struct {
	Status string `json:"status,omitempty" jsonschema:"Filter by status (active, achieved, cancelled)"`
}

type goalProgressInput struct {
	ID string `json:"id" jsonschema:"Goal ID or prefix"`
}

type goalProgressOutput struct {
	Exercise      string  `json:"exercise"`
	Target        string  `json:"target"`
	TargetDate    string  `json:"target_date"`
	CurrentBest   string  `json:"current_best,omitempty"`
	Progress      float64 `json:"progress_percent"`
	Trend         string  `json:"trend"`
	ProjectedDate string  `json:"projected_date,omitempty"`
}

type checkInInput struct {
	Type       string  `json:"type" jsonschema:"Check-in type (training or rest)"`
	Energy     int     `json:"energy,omitempty" jsonschema:"Energy 1-5 (training only)"`
	Soreness   int     `json:"soreness,omitempty" jsonschema:"Soreness 1-5 (training only)"`
	SleepHours float64 `json:"sleep_hours,omitempty" jsonschema:"Last night's sleep in hours (training only)"`
	Date       string  `json:"date,omitempty" jsonschema:"Check-in date (YYYY-MM-DD), defaults to today"`
}

type recoveryOutput struct {
	Date            string   `json:"date"`
	ConsecutiveDays int      `json:"consecutive_training_days"`
	FatiguePoints   float64  `json:"fatigue_points"`
	Level           string   `json:"level"`
	Reasons         []string `json:"reasons,omitempty"`
	CheckedIn       bool     `json:"checked_in_today"`
}

// Tool handlers

func (s *Server) handleAddExercise(ctx context.Context, req *mcp.CallToolRequest, input addExerciseInput) (*mcp.CallToolResult, exerciseOutput, error) {
	if !models.IsValidCategory(input.Category) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown category: %s", input.Category)
	}
	if !models.IsValidScoreType(input.ScoreType) {
		return nil, exerciseOutput{}, fmt.Errorf("unknown score type: %s", input.ScoreType)
	}

	e := models.NewExercise(input.Name, models.Category(input.Category), models.ScoreType(input.ScoreType))
	if input.MetricKind != "" {
		if !models.IsValidMetricKind(input.MetricKind) {
			return nil, exerciseOutput{}, fmt.Errorf("unknown metric kind: %s", input.MetricKind)
		}
		e.WithMetricKind(models.MetricKind(input.MetricKind))
	}

	if err := s.repo.CreateExercise(e); err != nil {
		return nil, exerciseOutput{}, fmt.Errorf("failed to create exercise: %w", err)
	}

	return nil, exerciseOutput{
		ID:        e.ID.String()[:8],
		Name:      e.Name,
		ScoreType: string(e.ScoreType),
		Message:   fmt.Sprintf("Added %s (%s, scored by %s, ID: %s)", e.Name, e.Category, e.ScoreType, e.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListExercises(ctx context.Context, req *mcp.CallToolRequest, input listExercisesInput) (*mcp.CallToolResult, any, error) {
	var category *models.Category
	if input.Category != "" {
		if !models.IsValidCategory(input.Category) {
			return nil, nil, fmt.Errorf("unknown category: %s", input.Category)
		}
		c := models.Category(input.Category)
		category = &c
	}

	exercises, err := s.repo.ListExercises(category)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list exercises: %w", err)
	}

	if len(exercises) == 0 {
		return nil, map[string]interface{}{"message": "No exercises found."}, nil
	}

	return nil, exercises, nil
}

func (s *Server) handleLogResult(ctx context.Context, req *mcp.CallToolRequest, input logResultInput) (*mcp.CallToolResult, logResultOutput, error) {
	ex, err := s.tracker.ResolveExercise(input.Exercise)
	if err != nil {
		return nil, logResultOutput{}, err
	}

	score, err := models.ParseScore(input.Score, ex.ScoreType)
	if err != nil {
		return nil, logResultOutput{}, err
	}

	l := models.NewPerformanceLog(ex.ID, score, input.Score)

	if input.Variant != "" {
		if !models.IsValidVariant(input.Variant) {
			return nil, logResultOutput{}, fmt.Errorf("unknown variant: %s", input.Variant)
		}
		l.WithVariant(models.Variant(input.Variant))
	}
	if input.Reps > 0 {
		l.WithReps(input.Reps)
	}
	if input.DistanceMeters > 0 && input.Calories > 0 {
		return nil, logResultOutput{}, fmt.Errorf("a result carries either a distance or a calorie count, not both")
	}
	if input.DistanceMeters > 0 {
		if !ex.MetricKind.SupportsDistance() {
			return nil, logResultOutput{}, fmt.Errorf("%s does not track distance", ex.Name)
		}
		l.WithDistance(input.DistanceMeters)
	}
	if input.Calories > 0 {
		if !ex.MetricKind.SupportsCalories() {
			return nil, logResultOutput{}, fmt.Errorf("%s does not track calories", ex.Name)
		}
		l.WithCalories(input.Calories)
	}
	if input.RecordedAt != "" {
		t, err := time.Parse(time.RFC3339, input.RecordedAt)
		if err != nil {
			t, err = time.Parse("2006-01-02 15:04", input.RecordedAt)
		}
		if err == nil {
			l.WithRecordedAt(t)
		}
	}

	achieved, err := s.tracker.LogResult(l)
	if err != nil {
		return nil, logResultOutput{}, fmt.Errorf("failed to log result: %w", err)
	}

	out := logResultOutput{
		ID:       l.ID.String()[:8],
		Exercise: ex.Name,
		Score:    models.FormatScore(l.Score, ex.ScoreType),
		Message:  fmt.Sprintf("Logged %s for %s (ID: %s)", models.FormatScore(l.Score, ex.ScoreType), ex.Name, l.ID.String()[:8]),
	}
	for _, g := range achieved {
		out.GoalsAchieved = append(out.GoalsAchieved,
			fmt.Sprintf("%s target %s", ex.Name, models.FormatScore(g.TargetScore, ex.ScoreType)))
	}
	if len(out.GoalsAchieved) > 0 {
		out.Message += fmt.Sprintf(" — %d goal(s) achieved!", len(out.GoalsAchieved))
	}
	return nil, out, nil
}

func (s *Server) handleListLogs(ctx context.Context, req *mcp.CallToolRequest, input listLogsInput) (*mcp.CallToolResult, any, error) {
	ex, err := s.tracker.ResolveExercise(input.Exercise)
	if err != nil {
		return nil, nil, err
	}

	if input.Limit <= 0 {
		input.Limit = 20
	}
	var variant *models.Variant
	if input.Variant != "" {
		if !models.IsValidVariant(input.Variant) {
			return nil, nil, fmt.Errorf("unknown variant: %s", input.Variant)
		}
		v := models.Variant(input.Variant)
		variant = &v
	}

	logs, err := s.repo.ListLogs(ex.ID, variant, input.Limit)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list logs: %w", err)
	}

	if len(logs) == 0 {
		return nil, map[string]interface{}{"message": "No results found."}, nil
	}

	return nil, logs, nil
}

func (s *Server) handleDeleteLog(ctx context.Context, req *mcp.CallToolRequest, input deleteLogInput) (*mcp.CallToolResult, simpleOutput, error) {
	if err := s.repo.DeleteLog(input.ID); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to delete log: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Deleted log: %s", input.ID),
	}, nil
}

func (s *Server) handleGetPRs(ctx context.Context, req *mcp.CallToolRequest, input getPRsInput) (*mcp.CallToolResult, any, error) {
	var variant *models.Variant
	if input.Variant != "" {
		if !models.IsValidVariant(input.Variant) {
			return nil, nil, fmt.Errorf("unknown variant: %s", input.Variant)
		}
		v := models.Variant(input.Variant)
		variant = &v
	}

	summary, err := s.tracker.PRSummary(input.Exercise, variant)
	if err != nil {
		return nil, nil, err
	}

	groups := make([]map[string]interface{}, 0, len(summary.Groups))
	for _, g := range summary.Groups {
		entry := map[string]interface{}{
			"label": g.Label,
			"count": len(g.Logs),
		}
		if g.Best != nil {
			entry["best"] = models.FormatScore(g.Best.Score, summary.Exercise.ScoreType)
			entry["best_date"] = g.Best.RecordedAt.Format("2006-01-02")
		}
		groups = append(groups, entry)
	}

	result := map[string]interface{}{
		"exercise":   summary.Exercise.Name,
		"score_type": summary.Exercise.ScoreType,
		"groups":     groups,
	}
	if summary.Best != nil {
		result["best"] = models.FormatScore(summary.Best.Score, summary.Exercise.ScoreType)
	}
	return nil, result, nil
}

func (s *Server) handleAddGoal(ctx context.Context, req *mcp.CallToolRequest, input addGoalInput) (*mcp.CallToolResult, goalOutput, error) {
	ex, err := s.tracker.ResolveExercise(input.Exercise)
	if err != nil {
		return nil, goalOutput{}, err
	}

	target, err := models.ParseScore(input.TargetScore, ex.ScoreType)
	if err != nil {
		return nil, goalOutput{}, err
	}
	date, err := time.Parse("2006-01-02", input.TargetDate)
	if err != nil {
		return nil, goalOutput{}, fmt.Errorf("invalid target date %q (want YYYY-MM-DD)", input.TargetDate)
	}

	g := models.NewGoal(ex.ID, target, date)
	if input.Variant != "" {
		if !models.IsValidVariant(input.Variant) {
			return nil, goalOutput{}, fmt.Errorf("unknown variant: %s", input.Variant)
		}
		g.WithVariant(models.Variant(input.Variant))
	}
	if input.Reps > 0 {
		g.WithReps(input.Reps)
	}

	if err := s.repo.CreateGoal(g); err != nil {
		return nil, goalOutput{}, fmt.Errorf("failed to create goal: %w", err)
	}

	targetStr := models.FormatScore(target, ex.ScoreType)
	return nil, goalOutput{
		ID:       g.ID.String()[:8],
		Exercise: ex.Name,
		Target:   targetStr,
		Message:  fmt.Sprintf("Goal set: %s %s by %s (ID: %s)", ex.Name, targetStr, input.TargetDate, g.ID.String()[:8]),
	}, nil
}

func (s *Server) handleListGoals(ctx context.Context, req *mcp.CallToolRequest, input listGoalsInput) (*mcp.CallToolResult, any, error) {
	var status *models.GoalStatus
	if input.Status != "" {
		st := models.GoalStatus(input.Status)
		switch st {
		case models.GoalActive, models.GoalAchieved, models.GoalCancelled:
		default:
			return nil, nil, fmt.Errorf("unknown status: %s", input.Status)
		}
		status = &st
	}

	goals, err := s.repo.ListGoals(status)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list goals: %w", err)
	}

	if len(goals) == 0 {
		return nil, map[string]interface{}{"message": "No goals found."}, nil
	}

	return nil, goals, nil
}

func (s *Server) handleGoalProgress(ctx context.Context, req *mcp.CallToolRequest, input goalProgressInput) (*mcp.CallToolResult, goalProgressOutput, error) {
	report, err := s.tracker.GoalProgress(input.ID, time.Now())
	if err != nil {
		return nil, goalProgressOutput{}, err
	}

	out := goalProgressOutput{
		Exercise:   report.Exercise.Name,
		Target:     models.FormatScore(report.Goal.TargetScore, report.Exercise.ScoreType),
		TargetDate: report.Goal.TargetDate.Format("2006-01-02"),
		Progress:   report.Progress,
		Trend:      string(report.Projection.Trend),
	}
	if report.CurrentBest != nil {
		out.CurrentBest = models.FormatScore(report.CurrentBest.Score, report.Exercise.ScoreType)
	}
	if report.Projection.ProjectedDate != nil {
		out.ProjectedDate = report.Projection.ProjectedDate.Format("2006-01-02")
	}
	return nil, out, nil
}

func (s *Server) handleCheckIn(ctx context.Context, req *mcp.CallToolRequest, input checkInInput) (*mcp.CallToolResult, simpleOutput, error) {
	date := input.Date
	if date == "" {
		date = time.Now().Format(models.DateLayout)
	}

	var c *models.CheckIn
	switch input.Type {
	case "training":
		c = models.NewTrainingCheckIn(date, input.Energy, input.Soreness, input.SleepHours)
	case "rest":
		c = models.NewRestCheckIn(date)
	default:
		return nil, simpleOutput{}, fmt.Errorf("unknown check-in type: %s (want training or rest)", input.Type)
	}

	if err := s.repo.UpsertCheckIn(c); err != nil {
		return nil, simpleOutput{}, fmt.Errorf("failed to save check-in: %w", err)
	}

	return nil, simpleOutput{
		Message: fmt.Sprintf("Checked in %s day for %s", input.Type, date),
	}, nil
}

func (s *Server) handleGetRecovery(ctx context.Context, req *mcp.CallToolRequest, input struct{}) (*mcp.CallToolResult, recoveryOutput, error) {
	now := time.Now()
	report, err := s.tracker.TodayRecovery(now)
	if err != nil {
		return nil, recoveryOutput{}, fmt.Errorf("failed to compute recovery: %w", err)
	}

	return nil, recoveryOutput{
		Date:            now.Format(models.DateLayout),
		ConsecutiveDays: report.ConsecutiveDays,
		FatiguePoints:   report.Score.Total,
		Level:           string(report.Score.Level),
		Reasons:         report.Score.Reasons,
		CheckedIn:       report.CheckIn != nil,
	}, nil
}
