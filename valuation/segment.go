/*
segment.go - Calendar month segmentation

PURPOSE:
  Splits an arbitrary day range into whole-month and partial-month segments
  aligned to calendar month boundaries, in UTC. Exact day-prorated interest
  needs to know, for every partial month, how many days it covers AND how
  long that particular month is (28-31 days).

SEGMENT SHAPE:
  [accrualStart .. asOf] becomes an ordered list with no gaps and no
  overlaps, always ending exactly at asOf:

    Jan 2 .. Mar 15  =>  partial(Jan 2-31, 30/31 days)
                         full(Feb 1-29)
                         partial(Mar 1-15, 15/31 days)

  Day counts are INCLUSIVE (end - start + 1): a same-day range is 1 day.

SEE ALSO:
  - valuation.go: walks these segments to accrue interest
  - dates.go: day-boundary helpers
*/
package valuation

import (
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SEGMENT
// =============================================================================

type SegmentKind string

const (
	SegmentFull    SegmentKind = "full"    // spans an entire calendar month
	SegmentPartial SegmentKind = "partial" // covers part of a month
)

// Segment is one contiguous slice of the accrual range. Start and End are
// UTC midnights, both inclusive.
type Segment struct {
	Kind        SegmentKind
	Start       time.Time
	End         time.Time
	Days        int
	DaysInMonth int
}

// =============================================================================
// BUILDER
// =============================================================================

// BuildSegments decomposes [start, end] into month-aligned segments.
// Returns nil when end precedes start (no accrual yet). Inputs are
// normalized to UTC midnight before any arithmetic.
func BuildSegments(start, end time.Time) []Segment {
	cursor := ToUTCStartOfDay(start)
	last := ToUTCStartOfDay(end)

	if last.Before(cursor) {
		return nil
	}

	var segments []Segment

	pushPartial := func(segStart, segEnd time.Time, daysInMonth int) {
		segments = append(segments, Segment{
			Kind:        SegmentPartial,
			Start:       segStart,
			End:         segEnd,
			Days:        DiffDaysInclusive(segStart, segEnd),
			DaysInMonth: daysInMonth,
		})
	}

	// Leading partial month when accrual does not start on the 1st.
	if cursor.Day() != 1 {
		monthEnd := endOfMonth(cursor)
		segEnd := monthEnd
		if last.Before(monthEnd) {
			segEnd = last
		}
		pushPartial(cursor, segEnd, DaysInMonth(cursor))
		cursor = segEnd.AddDate(0, 0, 1)
	}

	// Whole months, then at most one trailing partial month.
	for !cursor.After(last) {
		daysInMonth := DaysInMonth(cursor)
		monthEnd := endOfMonth(cursor)

		if !monthEnd.After(last) {
			segments = append(segments, Segment{
				Kind:        SegmentFull,
				Start:       cursor,
				End:         monthEnd,
				Days:        daysInMonth,
				DaysInMonth: daysInMonth,
			})
			cursor = monthEnd.AddDate(0, 0, 1)
			continue
		}

		pushPartial(cursor, last, daysInMonth)
		break
	}

	return segments
}

// =============================================================================
// MONTH COUNTING
// =============================================================================

// SegmentMonths sums the fractional month count across segments: full
// segments contribute 1.0, partial segments days/daysInMonth.
func SegmentMonths(segments []Segment) decimal.Decimal {
	months := decimal.Zero
	for _, seg := range segments {
		if seg.Kind == SegmentFull {
			months = months.Add(decimal.NewFromInt(1))
			continue
		}
		fraction := decimal.NewFromInt(int64(seg.Days)).
			Div(decimal.NewFromInt(int64(seg.DaysInMonth)))
		months = months.Add(fraction)
	}
	return months
}

// CalculateMonthsElapsed exposes the segment-based month count on its own,
// for callers that need elapsed-time display without a full valuation.
func CalculateMonthsElapsed(start, end time.Time) decimal.Decimal {
	return SegmentMonths(BuildSegments(start, end))
}
