package valuation_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian/investment-engine/valuation"
)

// =============================================================================
// TEST HELPERS
// =============================================================================

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// =============================================================================
// SEGMENT BUILDER
// =============================================================================

func TestBuildSegments_EmptyWhenEndBeforeStart(t *testing.T) {
	segments := valuation.BuildSegments(date(2024, time.March, 10), date(2024, time.March, 9))
	assert.Empty(t, segments)
}

func TestBuildSegments_SameDayCountsAsOneDay(t *testing.T) {
	// The inclusive day convention: a same-day range is 1 day, not 0.
	segments := valuation.BuildSegments(date(2024, time.March, 10), date(2024, time.March, 10))

	require.Len(t, segments, 1)
	assert.Equal(t, valuation.SegmentPartial, segments[0].Kind)
	assert.Equal(t, 1, segments[0].Days)
	assert.Equal(t, 31, segments[0].DaysInMonth)
}

func TestBuildSegments_MidMonthStartAcrossLeapFebruary(t *testing.T) {
	// GIVEN: Jan 2 .. Mar 15 of a leap year
	// THEN: partial Jan (30/31), full Feb (29 days), partial Mar (15/31)
	segments := valuation.BuildSegments(date(2024, time.January, 2), date(2024, time.March, 15))

	require.Len(t, segments, 3)

	assert.Equal(t, valuation.SegmentPartial, segments[0].Kind)
	assert.Equal(t, date(2024, time.January, 2), segments[0].Start)
	assert.Equal(t, date(2024, time.January, 31), segments[0].End)
	assert.Equal(t, 30, segments[0].Days)
	assert.Equal(t, 31, segments[0].DaysInMonth)

	assert.Equal(t, valuation.SegmentFull, segments[1].Kind)
	assert.Equal(t, date(2024, time.February, 1), segments[1].Start)
	assert.Equal(t, date(2024, time.February, 29), segments[1].End)
	assert.Equal(t, 29, segments[1].Days)
	assert.Equal(t, 29, segments[1].DaysInMonth)

	assert.Equal(t, valuation.SegmentPartial, segments[2].Kind)
	assert.Equal(t, date(2024, time.March, 1), segments[2].Start)
	assert.Equal(t, date(2024, time.March, 15), segments[2].End)
	assert.Equal(t, 15, segments[2].Days)
}

func TestBuildSegments_FirstOfMonthStartEmitsFullMonths(t *testing.T) {
	segments := valuation.BuildSegments(date(2024, time.January, 1), date(2024, time.March, 31))

	require.Len(t, segments, 3)
	for i, seg := range segments {
		assert.Equal(t, valuation.SegmentFull, seg.Kind, "segment %d", i)
	}
}

func TestBuildSegments_TrailingPartialEndsExactlyAtAsOf(t *testing.T) {
	segments := valuation.BuildSegments(date(2024, time.January, 1), date(2024, time.February, 10))

	require.Len(t, segments, 2)
	assert.Equal(t, valuation.SegmentFull, segments[0].Kind)
	assert.Equal(t, valuation.SegmentPartial, segments[1].Kind)
	assert.Equal(t, date(2024, time.February, 10), segments[1].End)
	assert.Equal(t, 10, segments[1].Days)
}

func TestBuildSegments_CoverageProperty_NoGapsNoOverlaps(t *testing.T) {
	// Concatenated segments must exactly span [start, end]: the day sum
	// equals the inclusive day count and consecutive segments touch.
	starts := []time.Time{
		date(2023, time.January, 1),
		date(2023, time.January, 15),
		date(2023, time.December, 31),
		date(2024, time.February, 1),
		date(2024, time.February, 29),
	}
	spans := []int{0, 1, 27, 28, 30, 31, 59, 365, 400}

	for _, start := range starts {
		for _, span := range spans {
			end := start.AddDate(0, 0, span)
			segments := valuation.BuildSegments(start, end)
			require.NotEmpty(t, segments, "start=%s span=%d", start, span)

			assert.Equal(t, start, segments[0].Start)
			assert.Equal(t, end, segments[len(segments)-1].End)

			total := 0
			for i, seg := range segments {
				total += seg.Days
				assert.Equal(t, valuation.DiffDaysInclusive(seg.Start, seg.End), seg.Days)
				if i > 0 {
					assert.Equal(t, segments[i-1].End.AddDate(0, 0, 1), seg.Start,
						"gap/overlap between segments %d and %d", i-1, i)
				}
			}
			assert.Equal(t, valuation.DiffDaysInclusive(start, end), total,
				"start=%s span=%d", start, span)
		}
	}
}

// =============================================================================
// MONTH COUNTING
// =============================================================================

func TestCalculateMonthsElapsed(t *testing.T) {
	// One full month exactly.
	months := valuation.CalculateMonthsElapsed(date(2024, time.January, 1), date(2024, time.January, 31))
	assert.True(t, months.Equal(decimalFromInt(1)), "got %s", months)

	// A single day in a 31-day month is 1/31.
	oneDay := valuation.CalculateMonthsElapsed(date(2024, time.January, 5), date(2024, time.January, 5))
	f, _ := oneDay.Float64()
	assert.InDelta(t, 1.0/31.0, f, 1e-9)

	// Partial + full + partial.
	mixed := valuation.CalculateMonthsElapsed(date(2024, time.January, 2), date(2024, time.March, 15))
	mf, _ := mixed.Float64()
	assert.InDelta(t, 30.0/31.0+1.0+15.0/31.0, mf, 1e-9)

	// End before start: zero months.
	assert.True(t, valuation.CalculateMonthsElapsed(date(2024, time.March, 1), date(2024, time.February, 1)).IsZero())
}
