// ABOUTME: Tests for recovery fatigue scoring and streak counting.
// ABOUTME: Pins the level boundaries and the worked-example total of 18.
package analytics

import (
	"strings"
	"testing"
	"time"

	"github.com/harperreed/wodtrack/internal/models"
)

func TestScoreNoCheckInNoStreak(t *testing.T) {
	got := Score(nil, 0, DefaultConfig())
	if got.Total != 0 {
		t.Errorf("total = %v, want 0", got.Total)
	}
	if got.Level != AlertNone {
		t.Errorf("level = %s, want none", got.Level)
	}
	if len(got.Reasons) != 0 {
		t.Errorf("expected no reasons, got %v", got.Reasons)
	}
}

func TestScoreWorkedExample(t *testing.T) {
	// energy=1 -> 4, soreness=5 -> 4, sleep=4h vs 7h -> capped 6,
	// 5 consecutive days -> capped 4. Total 18, critical.
	ci := models.NewTrainingCheckIn("2026-08-29", 1, 5, 4)
	got := Score(ci, 5, DefaultConfig())

	if got.Total != 18 {
		t.Errorf("total = %v, want 18", got.Total)
	}
	if got.Level != AlertCritical {
		t.Errorf("level = %s, want critical", got.Level)
	}
	if len(got.Reasons) != 4 {
		t.Errorf("expected 4 reasons, got %d: %v", len(got.Reasons), got.Reasons)
	}
}

func TestScoreRestDayOnlyCountsStreak(t *testing.T) {
	ci := models.NewRestCheckIn("2026-08-29")
	got := Score(ci, 3, DefaultConfig())

	if got.Total != 2 {
		t.Errorf("rest-day total = %v, want streak points only (2)", got.Total)
	}
	if len(got.Reasons) != 1 || !strings.Contains(got.Reasons[0], "3 consecutive") {
		t.Errorf("expected only the streak reason, got %v", got.Reasons)
	}
}

func TestScoreStreakPoints(t *testing.T) {
	tests := []struct {
		consecutiveDays int
		wantTotal       float64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 2},
		{5, 4},
		{9, 4}, // capped
	}
	for _, tt := range tests {
		got := Score(nil, tt.consecutiveDays, DefaultConfig())
		if got.Total != tt.wantTotal {
			t.Errorf("consecutiveDays=%d: total = %v, want %v", tt.consecutiveDays, got.Total, tt.wantTotal)
		}
	}
}

func TestScoreSleepDeficit(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		sleep      float64
		wantPoints float64
	}{
		{9, 0},
		{7, 0},
		{6, 2},
		{5, 4},
		{4, 6},
		{3, 6}, // capped at 6
	}
	for _, tt := range tests {
		// energy=5 and soreness=1 contribute nothing.
		ci := models.NewTrainingCheckIn("2026-08-29", 5, 1, tt.sleep)
		got := Score(ci, 0, cfg)
		if got.Total != tt.wantPoints {
			t.Errorf("sleep=%g: total = %v, want %v", tt.sleep, got.Total, tt.wantPoints)
		}
	}
}

func TestScoreConfigurableSleepThreshold(t *testing.T) {
	cfg := Config{MinSleepHours: 8, GapResetDays: 2}
	ci := models.NewTrainingCheckIn("2026-08-29", 5, 1, 7)

	got := Score(ci, 0, cfg)
	if got.Total != 2 {
		t.Errorf("7h vs 8h threshold: total = %v, want 2", got.Total)
	}
	if len(got.Reasons) != 1 || !strings.Contains(got.Reasons[0], "under-rested") {
		t.Errorf("expected a mild sleep reason, got %v", got.Reasons)
	}
}

func TestAlertLevelBoundaries(t *testing.T) {
	tests := []struct {
		total float64
		want  AlertLevel
	}{
		{0, AlertNone},
		{2, AlertNone},
		{2.5, AlertInfo},
		{3, AlertInfo},
		{5, AlertInfo},
		{6, AlertWarning},
		{8, AlertWarning},
		{9, AlertCritical},
		{30, AlertCritical},
	}
	for _, tt := range tests {
		if got := levelFor(tt.total); got != tt.want {
			t.Errorf("levelFor(%v) = %s, want %s", tt.total, got, tt.want)
		}
	}
}

func TestScoreReasonThresholds(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		name        string
		energy      int
		soreness    int
		sleep       float64
		wantSubstrs []string
		notSubstrs  []string
	}{
		{
			name: "mid-scale values earn points but no reasons",
			// energy=3 and soreness=3 score points yet stay silent.
			energy: 3, soreness: 3, sleep: 8,
			notSubstrs: []string{"energy", "soreness", "sleep"},
		},
		{
			name:   "energy 2 surfaces",
			energy: 2, soreness: 1, sleep: 8,
			wantSubstrs: []string{"low energy (2/5)"},
		},
		{
			name:   "soreness 4 surfaces",
			energy: 5, soreness: 4, sleep: 8,
			wantSubstrs: []string{"high soreness (4/5)"},
		},
		{
			name:   "one hour short is mild",
			energy: 5, soreness: 1, sleep: 6,
			wantSubstrs: []string{"under-rested"},
			notSubstrs:  []string{"significant"},
		},
		{
			name:   "two hours short is significant",
			energy: 5, soreness: 1, sleep: 5,
			wantSubstrs: []string{"significant sleep deficit"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ci := models.NewTrainingCheckIn("2026-08-29", tt.energy, tt.soreness, tt.sleep)
			got := Score(ci, 0, cfg)
			joined := strings.Join(got.Reasons, "; ")
			for _, want := range tt.wantSubstrs {
				if !strings.Contains(joined, want) {
					t.Errorf("reasons %q missing %q", joined, want)
				}
			}
			for _, not := range tt.notSubstrs {
				if strings.Contains(joined, not) {
					t.Errorf("reasons %q should not mention %q", joined, not)
				}
			}
		})
	}
}

func TestScoreStreakReasonWording(t *testing.T) {
	two := Score(nil, 2, DefaultConfig())
	if len(two.Reasons) != 1 || !strings.Contains(two.Reasons[0], "2 consecutive") {
		t.Errorf("expected exact-count wording, got %v", two.Reasons)
	}

	five := Score(nil, 5, DefaultConfig())
	if len(five.Reasons) != 1 || !strings.Contains(five.Reasons[0], "4+") {
		t.Errorf("expected 4+ wording, got %v", five.Reasons)
	}

	one := Score(nil, 1, DefaultConfig())
	if len(one.Reasons) != 0 {
		t.Errorf("single day should not surface a streak reason, got %v", one.Reasons)
	}
}

func day(t *testing.T, offset int) string {
	t.Helper()
	return time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC).AddDate(0, 0, offset).Format(models.DateLayout)
}

func TestConsecutiveTrainingDays(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cfg := DefaultConfig()

	training := func(offset int) *models.CheckIn {
		return models.NewTrainingCheckIn(day(t, offset), 4, 2, 7)
	}
	rest := func(offset int) *models.CheckIn {
		return models.NewRestCheckIn(day(t, offset))
	}

	tests := []struct {
		name     string
		checkIns []*models.CheckIn
		want     int
	}{
		{"no records", nil, 0},
		{"single training day", []*models.CheckIn{training(0)}, 1},
		{"unbroken run of three", []*models.CheckIn{training(0), training(-1), training(-2)}, 3},
		{"rest day stops the walk", []*models.CheckIn{training(0), training(-1), rest(-2), training(-3)}, 2},
		{"rest day today resets to zero", []*models.CheckIn{rest(0), training(-1)}, 0},
		{"gap of two days still counts", []*models.CheckIn{training(0), training(-2)}, 2},
		{"gap of three days resets", []*models.CheckIn{training(0), training(-3), training(-4)}, 1},
		{"today absent counts from most recent", []*models.CheckIn{training(-1), training(-2)}, 2},
		{"future records ignored", []*models.CheckIn{training(1), training(0)}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ConsecutiveTrainingDays(tt.checkIns, today, cfg); got != tt.want {
				t.Errorf("ConsecutiveTrainingDays = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestConsecutiveTrainingDaysCustomGap(t *testing.T) {
	today := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)
	cfg := Config{MinSleepHours: 7, GapResetDays: 4}

	checkIns := []*models.CheckIn{
		models.NewTrainingCheckIn(day(t, 0), 4, 2, 7),
		models.NewTrainingCheckIn(day(t, -4), 4, 2, 7),
	}
	if got := ConsecutiveTrainingDays(checkIns, today, cfg); got != 2 {
		t.Errorf("gap of 4 with GapResetDays=4 should continue, got %d", got)
	}
}
