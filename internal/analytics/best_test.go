// ABOUTME: Tests for PR best-value reduction and history grouping.
// ABOUTME: Covers direction, variants, bucketing, ties, and group ordering.
package analytics

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/harperreed/wodtrack/internal/models"
)

var testExerciseID = uuid.New()

func timedLog(score float64, daysAgo int) *models.PerformanceLog {
	l := models.NewPerformanceLog(testExerciseID, score, models.FormatScore(score, models.ScoreTime))
	l.RecordedAt = time.Now().AddDate(0, 0, -daysAgo)
	return l
}

func TestBestOverallDirection(t *testing.T) {
	logs := []*models.PerformanceLog{
		timedLog(300, 10),
		timedLog(250, 5),
		timedLog(280, 1),
	}

	tests := []struct {
		name      string
		scoreType models.ScoreType
		wantScore float64
	}{
		{"time takes minimum", models.ScoreTime, 250},
		{"load takes maximum", models.ScoreLoad, 300},
		{"reps takes maximum", models.ScoreReps, 300},
		{"rounds+reps takes maximum", models.ScoreRoundsReps, 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			best := BestOverall(logs, tt.scoreType, nil)
			if best == nil {
				t.Fatal("expected a best log, got nil")
			}
			if best.Score != tt.wantScore {
				t.Errorf("best score = %v, want %v", best.Score, tt.wantScore)
			}
		})
	}
}

func TestBestOverallEmpty(t *testing.T) {
	if best := BestOverall(nil, models.ScoreTime, nil); best != nil {
		t.Errorf("expected nil for empty logs, got %v", best)
	}
}

func TestBestOverallVariantFilter(t *testing.T) {
	rx := timedLog(300, 3)
	rx.Variant = models.VariantRx
	scaled := timedLog(200, 2)
	scaled.Variant = models.VariantScaled

	logs := []*models.PerformanceLog{rx, scaled}

	v := models.VariantRx
	best := BestOverall(logs, models.ScoreTime, &v)
	if best != rx {
		t.Errorf("variant filter returned wrong log: %+v", best)
	}

	v = models.VariantRxPlus
	if best := BestOverall(logs, models.ScoreTime, &v); best != nil {
		t.Errorf("expected nil when no log matches the variant, got %v", best)
	}
}

func TestBestOverallTieKeepsFirst(t *testing.T) {
	first := timedLog(250, 10)
	second := timedLog(250, 1)

	best := BestOverall([]*models.PerformanceLog{first, second}, models.ScoreTime, nil)
	if best != first {
		t.Error("tie should keep the first-encountered log")
	}
}

func TestBestOverallIdempotence(t *testing.T) {
	logs := []*models.PerformanceLog{timedLog(300, 5), timedLog(250, 3)}
	winner := BestOverall(logs, models.ScoreTime, nil)

	// Appending a strictly worse log leaves the winner unchanged.
	logs = append(logs, timedLog(400, 1))
	if got := BestOverall(logs, models.ScoreTime, nil); got != winner {
		t.Error("worse log should not change the winner")
	}

	// Appending a strictly better log takes over.
	better := timedLog(200, 0)
	logs = append(logs, better)
	if got := BestOverall(logs, models.ScoreTime, nil); got != better {
		t.Error("better log should become the winner")
	}
}

func TestBestByDistance(t *testing.T) {
	l500a := timedLog(95, 10)
	l500a.WithDistance(500)
	l500b := timedLog(92, 5)
	l500b.WithDistance(500)
	l2k := timedLog(420, 3)
	l2k.WithDistance(2000)
	noDist := timedLog(100, 1)

	best := BestByDistance([]*models.PerformanceLog{l500a, l500b, l2k, noDist})

	if len(best) != 2 {
		t.Fatalf("expected 2 distance buckets, got %d", len(best))
	}
	if best[500] != l500b {
		t.Errorf("500m bucket should hold the faster time, got %v", best[500].Score)
	}
	if best[2000] != l2k {
		t.Errorf("2000m bucket wrong: %+v", best[2000])
	}
}

func TestBestByTimeForCalories(t *testing.T) {
	tenMinA := timedLog(600, 10)
	tenMinA.WithCalories(140)
	tenMinB := timedLog(600, 5)
	tenMinB.WithCalories(155)
	tenMinTie := timedLog(600, 1)
	tenMinTie.WithCalories(155)
	fiveMin := timedLog(300, 2)
	fiveMin.WithCalories(80)

	best := BestByTimeForCalories([]*models.PerformanceLog{tenMinA, tenMinB, tenMinTie, fiveMin})

	if len(best) != 2 {
		t.Fatalf("expected 2 time buckets, got %d", len(best))
	}
	if best[600] != tenMinB {
		t.Error("10:00 bucket should keep the higher-calorie log, first on ties")
	}
	if best[300] != fiveMin {
		t.Errorf("5:00 bucket wrong: %+v", best[300])
	}
}

func TestBestForDualMetric(t *testing.T) {
	row500 := timedLog(92, 5)
	row500.WithDistance(500)
	rowCals := timedLog(60, 3)
	rowCals.WithCalories(20)

	best := BestForDualMetric([]*models.PerformanceLog{row500, rowCals}, models.ScoreTime)
	if best != rowCals {
		t.Errorf("dual-metric best should be the lowest time across both maps, got %v", best.Score)
	}

	if best := BestForDualMetric(nil, models.ScoreTime); best != nil {
		t.Errorf("expected nil for empty logs, got %v", best)
	}
}

func TestGroupLogsByReps(t *testing.T) {
	ex := models.NewExercise("Back Squat", models.CategoryLift, models.ScoreLoad)

	single := models.NewPerformanceLog(ex.ID, 140, "140")
	single.WithReps(1)
	single.RecordedAt = time.Now().AddDate(0, 0, -10)
	singleNewer := models.NewPerformanceLog(ex.ID, 135, "135")
	singleNewer.WithReps(1)
	singleNewer.RecordedAt = time.Now().AddDate(0, 0, -1)
	triple := models.NewPerformanceLog(ex.ID, 120, "120")
	triple.WithReps(3)

	groups := GroupLogs([]*models.PerformanceLog{singleNewer, single, triple}, ex)
	if len(groups) != 2 {
		t.Fatalf("expected 2 rep groups, got %d", len(groups))
	}

	if groups[0].Reps != 1 || groups[0].Label != "1-rep max" {
		t.Errorf("first group should be 1-rep max, got %q", groups[0].Label)
	}
	if groups[0].Best != single {
		t.Error("1-rep group best should be the heaviest log")
	}
	if groups[0].Logs[0] != single || groups[0].Logs[1] != singleNewer {
		t.Error("group should order best first, then date descending")
	}
	if groups[1].Reps != 3 {
		t.Errorf("second group should be 3-rep, got %d", groups[1].Reps)
	}
}

func TestGroupLogsByVariantOrder(t *testing.T) {
	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)

	plain := models.NewPerformanceLog(ex.ID, 400, "6:40")
	scaled := models.NewPerformanceLog(ex.ID, 350, "5:50")
	scaled.WithVariant(models.VariantScaled)
	rx := models.NewPerformanceLog(ex.ID, 300, "5:00")
	rx.WithVariant(models.VariantRx)
	rxPlus := models.NewPerformanceLog(ex.ID, 320, "5:20")
	rxPlus.WithVariant(models.VariantRxPlus)

	groups := GroupLogs([]*models.PerformanceLog{plain, scaled, rx, rxPlus}, ex)

	wantOrder := []models.Variant{models.VariantRxPlus, models.VariantRx, models.VariantScaled, ""}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	for i, want := range wantOrder {
		if groups[i].Variant != want {
			t.Errorf("group %d variant = %q, want %q", i, groups[i].Variant, want)
		}
	}
}

func TestGroupLogsDualMetricSeparation(t *testing.T) {
	ex := models.NewExercise("Row", models.CategoryMonostructural, models.ScoreTime).
		WithMetricKind(models.MetricDistanceCalories)

	dist := timedLog(92, 3)
	dist.WithDistance(500)
	cals := timedLog(600, 2)
	cals.WithCalories(150)

	groups := GroupLogs([]*models.PerformanceLog{dist, cals}, ex)
	if len(groups) != 2 {
		t.Fatalf("expected a distance group and a calorie group, got %d", len(groups))
	}
	if groups[0].Kind != GroupByDistance || groups[1].Kind != GroupByCalorieTime {
		t.Errorf("unexpected group kinds: %s, %s", groups[0].Kind, groups[1].Kind)
	}
}

func TestGroupLogsEmpty(t *testing.T) {
	ex := models.NewExercise("Fran", models.CategoryBenchmark, models.ScoreTime)
	if groups := GroupLogs(nil, ex); groups != nil {
		t.Errorf("expected no groups for empty history, got %d", len(groups))
	}
}

func TestDistanceOnlyNeverFeedsCalorieMap(t *testing.T) {
	run400 := timedLog(75, 1)
	run400.WithDistance(400)

	if m := BestByTimeForCalories([]*models.PerformanceLog{run400}); len(m) != 0 {
		t.Errorf("distance-only log leaked into calorie map: %v", m)
	}
	if m := BestByDistance([]*models.PerformanceLog{run400}); len(m) != 1 {
		t.Errorf("distance log missing from distance map: %v", m)
	}
}
