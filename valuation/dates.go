package valuation

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimestamp is returned by ParseTimestamp for input that does not
// parse. Callers must escalate this rather than substituting "now": under the
// virtual clock a silently wrong instant corrupts historical replays.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// timestampLayouts are accepted in order. RFC 3339 is the wire format; the
// date-only form appears in persisted lockup dates.
var timestampLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseTimestamp parses an ISO-8601 timestamp into UTC.
func ParseTimestamp(value string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTimestamp, value)
}

// ToUTCStartOfDay truncates an instant to UTC midnight. All segment
// arithmetic happens on these normalized day boundaries.
func ToUTCStartOfDay(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DaysInMonth returns the number of days in the calendar month containing t.
func DaysInMonth(t time.Time) int {
	u := t.UTC()
	first := time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
	return first.AddDate(0, 1, -1).Day()
}

// endOfMonth returns UTC midnight of the last day of t's month.
func endOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), DaysInMonth(u), 0, 0, 0, 0, time.UTC)
}

// DiffDaysInclusive counts days between two UTC midnights, inclusive on both
// ends. A same-day range counts as 1 day, not 0; all downstream proration
// depends on this convention.
func DiffDaysInclusive(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}
