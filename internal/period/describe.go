package period

import (
	"fmt"
	"strconv"

	"github.com/fundflow/backend/internal/types"
)

const separator = " – "

// Descriptor is a period together with its human readable label.
type Descriptor struct {
	DateRange
	Label string `json:"label" example:"25th Jul – 24th Aug 2025"` // Human readable label of the period
}

// NewDescriptor returns the Descriptor for r.
func NewDescriptor(r DateRange) Descriptor {
	return Descriptor{
		DateRange: r,
		Label:     Describe(r),
	}
}

// Describe returns a label like "3rd Aug – 2nd Sep 2025".
//
// The month and year are only repeated when start and end differ in them.
func Describe(r DateRange) string {
	s, e := r.Start, r.End

	switch {
	case s.Equal(e):
		return full(s)
	case s.Year() == e.Year() && s.Month() == e.Month():
		return Ordinal(s.Day()) + separator + full(e)
	case s.Year() == e.Year():
		return fmt.Sprintf("%s %s%s%s", Ordinal(s.Day()), shortMonth(s), separator, full(e))
	default:
		return full(s) + separator + full(e)
	}
}

// Ordinal returns n with its English ordinal suffix, e.g. 1st, 12th, 23rd.
func Ordinal(n int) string {
	suffix := "th"

	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}

	return strconv.Itoa(n) + suffix
}

func shortMonth(d types.Date) string {
	return d.Month().String()[:3]
}

func full(d types.Date) string {
	return fmt.Sprintf("%s %s %d", Ordinal(d.Day()), shortMonth(d), d.Year())
}
