// ABOUTME: Daily check-in model: training days with metrics, or rest days.
// ABOUTME: One record per calendar date; re-saving a date overwrites in place.
package models

import (
	"fmt"
	"time"
)

// DateLayout is the calendar-date format check-ins are keyed by.
const DateLayout = "2006-01-02"

// CheckInType distinguishes training days from rest days.
type CheckInType string

const (
	CheckInTraining CheckInType = "training"
	CheckInRest     CheckInType = "rest"
)

// CheckIn records how one calendar day went. Training days carry the
// three self-reported metrics; rest days carry none of them.
type CheckIn struct {
	Date       string // DateLayout, unique per record
	Type       CheckInType
	Energy     *int     // 1-5, training days only
	Soreness   *int     // 1-5, training days only
	SleepHours *float64 // hours slept, training days only
	CreatedAt  time.Time
}

// NewTrainingCheckIn creates a training check-in for the given date.
func NewTrainingCheckIn(date string, energy, soreness int, sleepHours float64) *CheckIn {
	return &CheckIn{
		Date:       date,
		Type:       CheckInTraining,
		Energy:     &energy,
		Soreness:   &soreness,
		SleepHours: &sleepHours,
		CreatedAt:  time.Now(),
	}
}

// NewRestCheckIn creates a rest-day check-in for the given date.
func NewRestCheckIn(date string) *CheckIn {
	return &CheckIn{
		Date:      date,
		Type:      CheckInRest,
		CreatedAt: time.Now(),
	}
}

// IsTraining reports whether this is a training-day record.
func (c *CheckIn) IsTraining() bool {
	return c.Type == CheckInTraining
}

// Day parses the check-in's calendar date.
func (c *CheckIn) Day() (time.Time, error) {
	return time.Parse(DateLayout, c.Date)
}

// Validate checks scale ranges and training/rest field consistency.
func (c *CheckIn) Validate() error {
	if _, err := time.Parse(DateLayout, c.Date); err != nil {
		return fmt.Errorf("invalid date %q: use YYYY-MM-DD", c.Date)
	}
	switch c.Type {
	case CheckInTraining:
		if c.Energy == nil || c.Soreness == nil || c.SleepHours == nil {
			return fmt.Errorf("training check-in requires energy, soreness, and sleep hours")
		}
		if *c.Energy < 1 || *c.Energy > 5 {
			return fmt.Errorf("energy must be 1-5, got %d", *c.Energy)
		}
		if *c.Soreness < 1 || *c.Soreness > 5 {
			return fmt.Errorf("soreness must be 1-5, got %d", *c.Soreness)
		}
		if *c.SleepHours < 0 || *c.SleepHours > 24 {
			return fmt.Errorf("sleep hours must be 0-24, got %g", *c.SleepHours)
		}
	case CheckInRest:
		if c.Energy != nil || c.Soreness != nil || c.SleepHours != nil {
			return fmt.Errorf("rest check-in must not carry training metrics")
		}
	default:
		return fmt.Errorf("unknown check-in type: %s", c.Type)
	}
	return nil
}
