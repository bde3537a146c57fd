// ABOUTME: Export and import functionality for tracker data.
// ABOUTME: Supports JSON and YAML via a versioned envelope.
package storage

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/harperreed/wodtrack/internal/models"

	"gopkg.in/yaml.v3"
)

// ExportData represents the full export format for tracker data.
type ExportData struct {
	Version    string                   `json:"version" yaml:"version"`
	ExportedAt time.Time                `json:"exported_at" yaml:"exported_at"`
	Tool       string                   `json:"tool" yaml:"tool"`
	Exercises  []*models.Exercise       `json:"exercises" yaml:"exercises"`
	Logs       []*models.PerformanceLog `json:"logs" yaml:"logs"`
	Goals      []*models.Goal           `json:"goals" yaml:"goals"`
	CheckIns   []*models.CheckIn        `json:"check_ins" yaml:"check_ins"`
}

// GetAllData retrieves all data for export.
func (d *DB) GetAllData() (*ExportData, error) {
	exercises, err := d.ListExercises(nil)
	if err != nil {
		return nil, fmt.Errorf("list exercises: %w", err)
	}

	var logs []*models.PerformanceLog
	for _, e := range exercises {
		exLogs, err := d.ListLogs(e.ID, nil, 0)
		if err != nil {
			return nil, fmt.Errorf("list logs: %w", err)
		}
		logs = append(logs, exLogs...)
	}

	goals, err := d.ListGoals(nil)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	checkIns, err := d.ListCheckIns(0)
	if err != nil {
		return nil, fmt.Errorf("list check-ins: %w", err)
	}

	return &ExportData{
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
func (d *DB) ImportData(data *ExportData) error {
	for _, e := range data.Exercises {
		if err := d.CreateExercise(e); err != nil {
			return fmt.Errorf("import exercise: %w", err)
		}
	}
	for _, l := range data.Logs {
		if err := d.CreateLog(l); err != nil {
			return fmt.Errorf("import log: %w", err)
		}
	}
	for _, g := range data.Goals {
		if err := d.CreateGoal(g); err != nil {
			return fmt.Errorf("import goal: %w", err)
		}
	}
	for _, c := range data.CheckIns {
		if err := d.UpsertCheckIn(c); err != nil {
			return fmt.Errorf("import check-in: %w", err)
		}
	}
	return nil
}

// EncodeExport serializes an export envelope as "json" or "yaml".
func EncodeExport(data *ExportData, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(data, "", "  ")
	case "yaml":
		return yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("unknown export format: %s (use json or yaml)", format)
	}
}

// DecodeExport parses an export envelope, detecting JSON vs YAML.
func DecodeExport(raw []byte) (*ExportData, error) {
	var data ExportData
	trimmed := strings.TrimSpace(string(raw))
	if strings.HasPrefix(trimmed, "{") {
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse JSON export: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, fmt.Errorf("parse YAML export: %w", err)
		}
	}
	if data.Version == "" {
		return nil, fmt.Errorf("not a wodtrack export: missing version")
	}
	return &data, nil
}
