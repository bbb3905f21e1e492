package period

import (
	"time"

	"github.com/fundflow/backend/internal/types"
)

// Resolve returns the period that is active on today.
//
// For windows within one month, the window of the current month is active
// once its start day is reached, otherwise the one of the previous month.
//
// For windows crossing a month boundary, the window that started in the
// previous month is active until its end day. Between the end day and the
// start day, the upcoming window is active.
//
// Days beyond the length of a month are clamped to its last day, also when
// deciding whether a window has started.
func Resolve(today types.Date, cfg Config) DateRange {
	return window(anchor(today, cfg), cfg)
}

// anchor returns the first day of the month in which the period active on
// day d starts.
func anchor(d types.Date, cfg Config) types.Date {
	start, end := cfg.window()
	month := d.FirstOfMonth()

	if start <= end {
		if d.Day() >= clampedDay(month, start).Day() {
			return month
		}
		return addMonths(month, -1)
	}

	if d.Day() >= start || d.Day() > end {
		return month
	}
	return addMonths(month, -1)
}

// window returns the configured window starting in the month of anchor.
func window(anchor types.Date, cfg Config) DateRange {
	start, end := cfg.window()

	endMonth := anchor
	if start > end {
		endMonth = addMonths(anchor, 1)
	}

	return DateRange{
		Start: clampedDay(anchor, start),
		End:   clampedDay(endMonth, end),
	}
}

// addMonths moves the first day of a month by n months.
func addMonths(month types.Date, n int) types.Date {
	return types.NewDate(month.Year(), month.Month()+time.Month(n), 1)
}

// clampedDay returns the day in the month of m, or the last day of that
// month if it is shorter.
func clampedDay(m types.Date, day int) types.Date {
	return types.NewDate(m.Year(), m.Month(), min(day, types.DaysIn(m.Year(), m.Month())))
}
