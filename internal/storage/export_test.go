// ABOUTME: Tests for export/import round trips.
// ABOUTME: Covers JSON and YAML envelopes and format detection.
package storage

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
)

func seedExportData(t *testing.T, db *DB) {
	t.Helper()

	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if err := db.CreateExercise(ex); err != nil {
		t.Fatalf("CreateExercise failed: %v", err)
	}
	l := models.NewPerformanceLog(ex.ID, 300, "5:00")
	l.WithVariant(models.VariantRx)
	if err := db.CreateLog(l); err != nil {
		t.Fatalf("CreateLog failed: %v", err)
	}
	g := models.NewGoal(ex.ID, 270, time.Now().AddDate(0, 2, 0))
	if err := db.CreateGoal(g); err != nil {
		t.Fatalf("CreateGoal failed: %v", err)
	}
	if err := db.UpsertCheckIn(models.NewTrainingCheckIn("2026-08-29", 4, 2, 7)); err != nil {
		t.Fatalf("UpsertCheckIn failed: %v", err)
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	src := setupTestDB(t)
	seedExportData(t, src)

	data, err := src.GetAllData()
	if err != nil {
		t.Fatalf("GetAllData failed: %v", err)
	}
	if data.Version != "1.0" || data.Tool != "wodtrack" {
		t.Errorf("unexpected envelope: version=%s tool=%s", data.Version, data.Tool)
	}

	for _, format := range []string{"json", "yaml"} {
		t.Run(format, func(t *testing.T) {
			raw, err := EncodeExport(data, format)
			if err != nil {
				t.Fatalf("EncodeExport failed: %v", err)
			}

			decoded, err := DecodeExport(raw)
			if err != nil {
				t.Fatalf("DecodeExport failed: %v", err)
			}

			dst := setupTestDB(t)
			if err := dst.ImportData(decoded); err != nil {
				t.Fatalf("ImportData failed: %v", err)
			}

			exercises, err := dst.ListExercises(nil)
			if err != nil {
				t.Fatalf("ListExercises failed: %v", err)
			}
			if len(exercises) != 1 || exercises[0].Name != "Fran" {
				t.Errorf("imported exercises wrong: %+v", exercises)
			}

			logs, err := dst.ListLogs(exercises[0].ID, nil, 0)
			if err != nil {
				t.Fatalf("ListLogs failed: %v", err)
			}
			if len(logs) != 1 || logs[0].Score != 300 {
				t.Errorf("imported logs wrong: %+v", logs)
			}

			checkIns, err := dst.ListCheckIns(0)
			if err != nil {
				t.Fatalf("ListCheckIns failed: %v", err)
			}
			if len(checkIns) != 1 || !checkIns[0].IsTraining() {
				t.Errorf("imported check-ins wrong: %+v", checkIns)
			}
		})
	}
}

func TestEncodeExportUnknownFormat(t *testing.T) {
	if _, err := EncodeExport(&ExportData{}, "xml"); err == nil {
		t.Error("expected unknown format to fail")
	}
}

func TestDecodeExportRejectsGarbage(t *testing.T) {
	if _, err := DecodeExport([]byte("{}")); err == nil || !strings.Contains(err.Error(), "version") {
		t.Errorf("expected missing version error, got %v", err)
	}
}
