// ABOUTME: Tests for CLI helper functions and command execution.
// ABOUTME: Tests parseTime, padRight, command wiring, and DB-backed runs.
package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
	"github.com/harperreed/wodtrack/internal/storage"
)

func TestParseTime(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{
			name:  "date and time with space",
			input: "2026-08-20 08:30",
		},
		{
			name:  "date and time with T",
			input: "2026-08-20T08:30",
		},
		{
			name:  "date only",
			input: "2026-08-20",
		},
		{
			name:  "RFC3339",
			input: "2026-08-20T08:30:00Z",
		},
		{
			name:    "invalid format",
			input:   "20-08-2026",
			wantErr: true,
		},
		{
			name:    "empty string",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := parseTime(tt.input)

			if tt.wantErr {
				if err == nil {
					t.Errorf("parseTime(%q) expected error, got nil", tt.input)
				}
				return
			}

			if err != nil {
				t.Errorf("parseTime(%q) unexpected error: %v", tt.input, err)
				return
			}
			if result.IsZero() {
				t.Errorf("parseTime(%q) returned zero time", tt.input)
			}
		})
	}
}

func TestPadRight(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		length int
		want   string
	}{
		{"pads short string", "abc", 6, "abc   "},
		{"exact length unchanged", "abcdef", 6, "abcdef"},
		{"longer string unchanged", "abcdefgh", 6, "abcdefgh"},
		{"empty string", "", 3, "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := padRight(tt.input, tt.length); got != tt.want {
				t.Errorf("padRight(%q, %d) = %q, want %q", tt.input, tt.length, got, tt.want)
			}
		})
	}
}

func TestRootCmdSubcommands(t *testing.T) {
	want := []string{"exercise", "log", "logs", "delete", "pr", "goal", "checkin", "recovery", "export", "import", "sync", "mcp"}
	for _, name := range want {
		found := false
		for _, cmd := range rootCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected %q command to be registered", name)
		}
	}
}

func TestLogCmdFlags(t *testing.T) {
	for _, name := range []string{"variant", "reps", "distance", "calories", "at"} {
		if logCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected log command to have --%s flag", name)
		}
	}
}

func TestCheckinCmdFlags(t *testing.T) {
	for _, name := range []string{"energy", "soreness", "sleep", "rest", "date"} {
		if checkinCmd.Flags().Lookup(name) == nil {
			t.Errorf("Expected checkin command to have --%s flag", name)
		}
	}
}

func TestExportCmdValidArgs(t *testing.T) {
	if len(exportCmd.ValidArgs) != 2 {
		t.Errorf("Expected 2 valid args, got %d", len(exportCmd.ValidArgs))
	}
}

func TestGoalCmdSubcommands(t *testing.T) {
	want := []string{"add", "list", "progress", "cancel"}
	for _, name := range want {
		found := false
		for _, cmd := range goalCmd.Commands() {
			if cmd.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("Expected goal %s subcommand to be registered", name)
		}
	}
}

// setupTestCLI redirects data and config to a temp directory so command
// runs operate on a throwaway database.
func setupTestCLI(t *testing.T) *storage.DB {
	t.Helper()

	tmpDir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", tmpDir)
	t.Setenv("XDG_CONFIG_HOME", tmpDir)

	// Pre-open the database to create the schema
	testDB, err := storage.Open(filepath.Join(tmpDir, "wodtrack", "wodtrack.db"))
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}

	t.Cleanup(func() {
		if repo != nil {
			_ = repo.Close()
			repo = nil
		}
		_ = testDB.Close()
	})

	return testDB
}

func resetLogFlags() {
	logVariant = ""
	logReps = 0
	logDistance = 0
	logCalories = 0
	logAt = ""
}

func TestExerciseAddCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)
	exerciseMetric = ""

	rootCmd.SetArgs([]string{"exercise", "add", "Fran", "benchmark", "time"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("exercise add failed: %v", err)
	}

	e, err := testDB.GetExerciseByName("Fran")
	if err != nil {
		t.Fatalf("GetExerciseByName failed: %v", err)
	}
	if e.ScoreType != models.ScoreTime {
		t.Errorf("ScoreType = %s, want time", e.ScoreType)
	}
}

func TestExerciseAddCmdInvalidCategory(t *testing.T) {
	setupTestCLI(t)
	exerciseMetric = ""

	rootCmd.SetArgs([]string{"exercise", "add", "Fran", "cardio", "time"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for invalid category")
	}
}

func TestLogCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)
	resetLogFlags()

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"log", "Fran", "4:55", "--variant", "rx"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("log command failed: %v", err)
	}

	logs, err := testDB.ListLogs(ex.ID, nil, 0)
	if err != nil {
		t.Fatalf("ListLogs failed: %v", err)
	}
	if len(logs) != 1 {
		t.Fatalf("Expected 1 log, got %d", len(logs))
	}
	if logs[0].Score != 295 {
		t.Errorf("Score = %v, want 295", logs[0].Score)
	}
	if logs[0].Variant != models.VariantRx {
		t.Errorf("Variant = %s, want rx", logs[0].Variant)
	}
}

func TestLogCmdInvalidScore(t *testing.T) {
	testDB := setupTestCLI(t)
	resetLogFlags()

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"log", "Fran", "fast"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unparseable score")
	}
}

func TestLogCmdUnknownExercise(t *testing.T) {
	setupTestCLI(t)
	resetLogFlags()

	rootCmd.SetArgs([]string{"log", "Murph", "40:00"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for unknown exercise")
	}
}

func TestCheckinCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)

	rootCmd.SetArgs([]string{"checkin", "--energy", "4", "--soreness", "2", "--sleep", "7.5"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("checkin command failed: %v", err)
	}

	today := time.Now().Format(models.DateLayout)
	c, err := testDB.GetCheckIn(today)
	if err != nil {
		t.Fatalf("GetCheckIn failed: %v", err)
	}
	if !c.IsTraining() || *c.Energy != 4 {
		t.Errorf("Unexpected check-in: %+v", c)
	}
}

func TestCheckinCmdRestWithMetrics(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"checkin", "--rest", "--energy", "4"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for --rest with metrics")
	}
}

func TestRecoveryCmdEmpty(t *testing.T) {
	setupTestCLI(t)

	rootCmd.SetArgs([]string{"recovery"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("recovery command failed on empty history: %v", err)
	}
}

func TestGoalAddCmdWithDB(t *testing.T) {
	testDB := setupTestCLI(t)
	goalVariant = ""
	goalReps = 0

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"goal", "add", "Fran", "4:30", "2026-12-01"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("goal add failed: %v", err)
	}

	goals, err := testDB.ListGoals(nil)
	if err != nil {
		t.Fatalf("ListGoals failed: %v", err)
	}
	if len(goals) != 1 {
		t.Fatalf("Expected 1 goal, got %d", len(goals))
	}
	if goals[0].TargetScore != 270 {
		t.Errorf("TargetScore = %v, want 270", goals[0].TargetScore)
	}
}

func TestGoalAddCmdBadDate(t *testing.T) {
	testDB := setupTestCLI(t)
	goalVariant = ""
	goalReps = 0

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"goal", "add", "Fran", "4:30", "soon"})
	if err := rootCmd.Execute(); err == nil {
		t.Error("Expected error for malformed date")
	}
}

func TestPRCmdEmpty(t *testing.T) {
	testDB := setupTestCLI(t)
	prVariant = ""

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	rootCmd.SetArgs([]string{"pr", "Fran"})
	if err := rootCmd.Execute(); err != nil {
		t.Errorf("pr command failed on empty history: %v", err)
	}
}

func TestExportCmdJSON(t *testing.T) {
	testDB := setupTestCLI(t)

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := testDB.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}

	out := filepath.Join(t.TempDir(), "backup.json")
	exportOutput = out
	defer func() { exportOutput = "" }()

	rootCmd.SetArgs([]string{"export", "json"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("export command failed: %v", err)
	}

	raw, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("reading export back failed: %v", err)
	}
	data, err := storage.DecodeExport(raw)
	if err != nil {
		t.Fatalf("decoding export failed: %v", err)
	}
	if len(data.Exercises) != 1 {
		t.Errorf("Expected 1 exercise in export, got %d", len(data.Exercises))
	}
}
