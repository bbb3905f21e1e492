package period

import (
	"fmt"

	"github.com/fundflow/backend/internal/types"
)

// DateRange is an inclusive range of calendar dates.
type DateRange struct {
	Start types.Date `json:"start" swaggertype:"string" example:"2025-07-25"` // First day of the range
	End   types.Date `json:"end" swaggertype:"string" example:"2025-08-24"`   // Last day of the range
}

// NewDateRange returns the range from start to end. It fails if start
// is after end.
func NewDateRange(start, end types.Date) (DateRange, error) {
	if start.After(end) {
		return DateRange{}, fmt.Errorf("%w: %s is after %s", ErrInvalidRange, start, end)
	}

	return DateRange{Start: start, End: end}, nil
}

// Contains reports whether d is within the range.
func (r DateRange) Contains(d types.Date) bool {
	return !d.Before(r.Start) && !d.After(r.End)
}

// Days returns the number of days in the range, both ends included.
func (r DateRange) Days() int {
	return int(r.End.Time().Sub(r.Start.Time()).Hours()/24) + 1
}

// Next returns the first day after the range.
func (r DateRange) Next() types.Date {
	return r.End.AddDays(1)
}

// IsCalendarMonth reports whether the range covers exactly one calendar month.
func (r DateRange) IsCalendarMonth() bool {
	return r.Start.Equal(r.Start.FirstOfMonth()) && r.End.Equal(r.Start.LastOfMonth())
}

func (r DateRange) String() string {
	return r.Start.String() + "/" + r.End.String()
}
