// Package period resolves and enumerates budgeting periods.
//
// A period is either a calendar month or a window between two configured
// days of the month, which may cross a month boundary. Everything in this
// package is pure: the current date is always passed in.
package period

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDay   = errors.New("period days must be between 1 and 31")
	ErrInvalidRange = errors.New("the start of a period must not be after its end")
)

// Config is the period configuration of a user.
type Config struct {
	CustomPeriodEnabled bool `json:"customPeriodEnabled" example:"true"` // Use the start and end day instead of calendar months
	StartDay            int  `json:"startDay" example:"25" minimum:"1" maximum:"31"`
	EndDay              int  `json:"endDay" example:"24" minimum:"1" maximum:"31"`
}

// DefaultConfig returns the configuration used when a user has not
// configured anything yet.
func DefaultConfig() Config {
	return Config{
		CustomPeriodEnabled: false,
		StartDay:            1,
		EndDay:              31,
	}
}

// ValidDay reports whether day can be used as a start or end day.
func ValidDay(day int) bool {
	return day >= 1 && day <= 31
}

// Validate checks that both days are within [1, 31].
func (c Config) Validate() error {
	if !ValidDay(c.StartDay) {
		return fmt.Errorf("%w: startDay is %d", ErrInvalidDay, c.StartDay)
	}

	if !ValidDay(c.EndDay) {
		return fmt.Errorf("%w: endDay is %d", ErrInvalidDay, c.EndDay)
	}

	return nil
}

// CrossesMonth reports whether the configured window starts in one month
// and ends in the next.
func (c Config) CrossesMonth() bool {
	return c.CustomPeriodEnabled && c.StartDay > c.EndDay
}

// window returns the start and end day that are actually used.
// Calendar months are the window from the 1st to the 31st.
func (c Config) window() (int, int) {
	if !c.CustomPeriodEnabled {
		return 1, 31
	}

	return c.StartDay, c.EndDay
}
