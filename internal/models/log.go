// ABOUTME: PerformanceLog model for scored results, plus Variant ordering.
// ABOUTME: Scores are normalized per ScoreType; display strings ride along.
package models

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Variant qualifies a performance (as prescribed vs scaled).
// Logs of different variants are never compared against each other.
type Variant string

const (
	VariantRxPlus Variant = "rx_plus"
	VariantRx     Variant = "rx"
	VariantScaled Variant = "scaled"
)

// IsValidVariant checks if a string is a valid variant. The empty
// string is valid and means "unqualified".
func IsValidVariant(s string) bool {
	switch Variant(s) {
	case "", VariantRxPlus, VariantRx, VariantScaled:
		return true
	}
	return false
}

// VariantRank orders variants for display: Rx+ first, unqualified last.
func VariantRank(v Variant) int {
	switch v {
	case VariantRxPlus:
		return 0
	case VariantRx:
		return 1
	case VariantScaled:
		return 2
	default:
		return 3
	}
}

// PerformanceLog is one logged result for an exercise.
// Logs are immutable once created; users may only delete them.
type PerformanceLog struct {
	ID             uuid.UUID
	ExerciseID     uuid.UUID
	Score          float64
	DisplayScore   string
	Variant        Variant
	Reps           *int     // rep scheme, load exercises only
	DistanceMeters *float64 // distance marker, distance-capable exercises only
	Calories       *float64 // calorie count, calorie-capable exercises only
	RecordedAt     time.Time
	CreatedAt      time.Time
}

// NewPerformanceLog creates a log with generated UUID and current timestamps.
func NewPerformanceLog(exerciseID uuid.UUID, score float64, displayScore string) *PerformanceLog {
	now := time.Now()
	return &PerformanceLog{
		ID:           uuid.New(),
		ExerciseID:   exerciseID,
		Score:        score,
		DisplayScore: displayScore,
		RecordedAt:   now,
		CreatedAt:    now,
	}
}

// WithVariant sets the variant qualifier.
func (l *PerformanceLog) WithVariant(v Variant) *PerformanceLog {
	l.Variant = v
	return l
}

// WithReps sets the rep scheme (e.g. 1 for a 1-rep max).
func (l *PerformanceLog) WithReps(reps int) *PerformanceLog {
	l.Reps = &reps
	return l
}

// WithDistance sets the distance marker in meters.
func (l *PerformanceLog) WithDistance(meters float64) *PerformanceLog {
	l.DistanceMeters = &meters
	return l
}

// WithCalories sets the calorie count.
func (l *PerformanceLog) WithCalories(cals float64) *PerformanceLog {
	l.Calories = &cals
	return l
}

// WithRecordedAt sets a custom performance timestamp.
func (l *PerformanceLog) WithRecordedAt(t time.Time) *PerformanceLog {
	l.RecordedAt = t
	return l
}

// EncodeRoundsReps packs a rounds+reps score into a single comparable
// integer: completed rounds weigh 100, partial reps ride in the low two
// digits. 12 rounds + 7 reps encodes as 1207.
func EncodeRoundsReps(rounds, reps int) float64 {
	return float64(rounds*100 + reps)
}

// DecodeRoundsReps splits an encoded rounds+reps score.
func DecodeRoundsReps(score float64) (rounds, reps int) {
	n := int(score)
	return n / 100, n % 100
}

// ParseScore converts a user-entered score string into the normalized
// form: "4:55" or "1:02:30" for time, "12+7" for rounds+reps, a plain
// number for everything else.
func ParseScore(s string, st ScoreType) (float64, error) {
	s = strings.TrimSpace(s)
	switch st {
	case ScoreTime:
		if strings.Contains(s, ":") {
			return parseClock(s)
		}
	case ScoreRoundsReps:
		if r, reps, ok := strings.Cut(s, "+"); ok {
			rounds, err := strconv.Atoi(strings.TrimSpace(r))
			if err != nil {
				return 0, fmt.Errorf("invalid rounds in %q", s)
			}
			partial, err := strconv.Atoi(strings.TrimSpace(reps))
			if err != nil || partial < 0 || partial > 99 {
				return 0, fmt.Errorf("invalid reps in %q", s)
			}
			return EncodeRoundsReps(rounds, partial), nil
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid score %q", s)
	}
	return v, nil
}

// parseClock handles M:SS and H:MM:SS.
func parseClock(s string) (float64, error) {
	parts := strings.Split(s, ":")
	if len(parts) > 3 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	var total int
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, fmt.Errorf("invalid time %q", s)
		}
		total = total*60 + n
	}
	return float64(total), nil
}

// FormatScore renders a normalized score in the exercise's native unit.
func FormatScore(score float64, st ScoreType) string {
	switch st {
	case ScoreTime:
		total := int(score)
		if total >= 3600 {
			return fmt.Sprintf("%d:%02d:%02d", total/3600, (total%3600)/60, total%60)
		}
		return fmt.Sprintf("%d:%02d", total/60, total%60)
	case ScoreRoundsReps:
		rounds, reps := DecodeRoundsReps(score)
		return fmt.Sprintf("%d+%d", rounds, reps)
	case ScoreLoad:
		return fmt.Sprintf("%g", score)
	default:
		return fmt.Sprintf("%g", score)
	}
}
