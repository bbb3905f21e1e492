package period

import (
	"github.com/fundflow/backend/internal/types"
)

// Enumerate returns every period from the one containing earliest up to
// the one that is active on today, most recent first.
//
// The first period is the one Resolve returns for earliest, extended back
// to the end of the previous window if earliest lies in a gap. Every later
// period starts on the day after its predecessor ends and ends where the
// configured window of the following month ends. Gaps between configured
// windows therefore belong to the following period and days shared by two
// clamped windows are only counted once.
//
// A nil earliest yields an empty list. An earliest after today is treated
// as today.
func Enumerate(earliest *types.Date, today types.Date, cfg Config) []Descriptor {
	descriptors := []Descriptor{}
	if earliest == nil {
		return descriptors
	}

	from := *earliest
	if from.After(today) {
		from = today
	}

	month := anchor(from, cfg)
	current := window(month, cfg)

	// Between two windows crossing the month boundary, the upcoming
	// window absorbs the gap
	if from.Before(current.Start) {
		current.Start = window(addMonths(month, -1), cfg).Next()
	}

	var ranges []DateRange
	for {
		// Periods that end before the earliest date are skipped, the
		// following one absorbs the gap and contains it
		if !current.End.Before(from) {
			ranges = append(ranges, current)
		}

		if !current.End.Before(today) {
			break
		}

		month = addMonths(month, 1)
		current = DateRange{
			Start: current.Next(),
			End:   window(month, cfg).End,
		}
	}

	for i := len(ranges) - 1; i >= 0; i-- {
		descriptors = append(descriptors, NewDescriptor(ranges[i]))
	}

	return descriptors
}
