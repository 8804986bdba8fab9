package booking

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/table-booking/internal/httperr"
)

const clockLayout = "15:04"

// ParseClock parses a 24-hour "HH:MM" wall-clock time. Values are only
// comparable within one day.
func ParseClock(field, hm string) (time.Time, error) {
	t, err := time.Parse(clockLayout, hm)
	if err != nil {
		return time.Time{}, httperr.Validation(field, "expected HH:MM")
	}
	return t, nil
}

// Overlaps reports whether the candidate slot collides with an existing one.
//
// A collision means the candidate start or the candidate end falls inside
// [existingStart, existingEnd], bounds included. A candidate that starts
// before and ends after the existing slot is NOT reported: neither of its
// endpoints lies inside. Bookings rely on exactly this rule.
func Overlaps(existingStart, existingEnd, candidateStart, candidateEnd string) (bool, error) {
	es, err := ParseClock("slotTimeStart", existingStart)
	if err != nil {
		return false, err
	}
	ee, err := ParseClock("slotTimeEnd", existingEnd)
	if err != nil {
		return false, err
	}
	cs, err := ParseClock("slotTimeStart", candidateStart)
	if err != nil {
		return false, err
	}
	ce, err := ParseClock("slotTimeEnd", candidateEnd)
	if err != nil {
		return false, err
	}

	return within(cs, es, ee) || within(ce, es, ee), nil
}

func within(t, lo, hi time.Time) bool {
	return !t.Before(lo) && !t.After(hi)
}

// LockKey identifies the (table, date) pair bookings are serialized on.
func LockKey(tableNumber int, date string) string {
	return fmt.Sprintf("table#%d#%s", tableNumber, date)
}
