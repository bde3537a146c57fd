// ABOUTME: Repository interface for fitness tracking data storage.
// ABOUTME: Defines the contract for exercises, logs, goals, and check-ins.
package storage

import (
	"github.com/google/uuid"
	"github.com/harperreed/wodtrack/internal/models"
)

// Repository defines the storage interface for tracker data.
// This interface allows swapping implementations (e.g., for testing).
type Repository interface {
	// Exercise catalog operations
	CreateExercise(e *models.Exercise) error
	GetExercise(idOrPrefix string) (*models.Exercise, error)
	GetExerciseByName(name string) (*models.Exercise, error)
	ListExercises(category *models.Category) ([]*models.Exercise, error)
	DeleteExercise(idOrPrefix string) error

	// Performance log operations
	CreateLog(l *models.PerformanceLog) error
	GetLog(idOrPrefix string) (*models.PerformanceLog, error)
	ListLogs(exerciseID uuid.UUID, variant *models.Variant, limit int) ([]*models.PerformanceLog, error)
	DeleteLog(idOrPrefix string) error

	// Goal operations
	CreateGoal(g *models.Goal) error
	GetGoal(idOrPrefix string) (*models.Goal, error)
	ListGoals(status *models.GoalStatus) ([]*models.Goal, error)
	ListGoalsForExercise(exerciseID uuid.UUID, status *models.GoalStatus) ([]*models.Goal, error)
	UpdateGoal(g *models.Goal) error

	// Daily check-in operations (one record per date, last save wins)
	UpsertCheckIn(c *models.CheckIn) error
	GetCheckIn(date string) (*models.CheckIn, error)
	ListCheckIns(limit int) ([]*models.CheckIn, error)

	// Export/Import
	GetAllData() (*ExportData, error)
	ImportData(data *ExportData) error

	// Lifecycle
	Close() error
}
