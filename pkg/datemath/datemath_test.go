package datemath_test

import (
	"testing"
	"time"

	"github.com/limbo/planner/pkg/datemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var letterAnchor = date(2024, time.March, 22)

func TestCycleDay(t *testing.T) {
	t.Run("anchor is day one", func(t *testing.T) {
		assert.Equal(t, 1, datemath.CycleDay(letterAnchor, letterAnchor, 60))
	})
	t.Run("59 days later is the last day", func(t *testing.T) {
		assert.Equal(t, 60, datemath.CycleDay(date(2024, time.May, 20), letterAnchor, 60))
	})
	t.Run("wraps back to day one", func(t *testing.T) {
		assert.Equal(t, 1, datemath.CycleDay(date(2024, time.May, 21), letterAnchor, 60))
	})
	t.Run("periodic in both directions", func(t *testing.T) {
		for k := -3; k <= 3; k++ {
			for day := 1; day <= 60; day++ {
				today := letterAnchor.AddDate(0, 0, k*60+day-1)
				assert.Equal(t, day, datemath.CycleDay(today, letterAnchor, 60), "k=%d day=%d", k, day)
			}
		}
	})
	t.Run("before the anchor stays in range", func(t *testing.T) {
		assert.Equal(t, 60, datemath.CycleDay(date(2024, time.March, 21), letterAnchor, 60))
		for i := 1; i < 400; i++ {
			got := datemath.CycleDay(letterAnchor.AddDate(0, 0, -i), letterAnchor, 60)
			assert.GreaterOrEqual(t, got, 1)
			assert.LessOrEqual(t, got, 60)
		}
	})
	t.Run("clock part is ignored", func(t *testing.T) {
		late := time.Date(2024, time.March, 22, 23, 59, 0, 0, time.UTC)
		assert.Equal(t, 1, datemath.CycleDay(late, letterAnchor, 60))
	})
}

func TestDaysElapsed(t *testing.T) {
	anchor := date(2025, time.September, 7)
	assert.Equal(t, 0, datemath.DaysElapsed(anchor, anchor))
	assert.Equal(t, -1, datemath.DaysElapsed(date(2025, time.September, 6), anchor))
	assert.Equal(t, 365, datemath.DaysElapsed(date(2026, time.September, 7), anchor))
	// 2028 is a leap year
	assert.Equal(t, 366, datemath.DaysElapsed(date(2028, time.March, 1), date(2027, time.March, 1)))
}

func TestNextOccurrence(t *testing.T) {
	t.Run("same day is inclusive", func(t *testing.T) {
		today := date(2026, time.September, 7)
		assert.Equal(t, today, datemath.NextOccurrence(today, time.September, 7))
	})
	t.Run("day after rolls to next year", func(t *testing.T) {
		got := datemath.NextOccurrence(date(2026, time.September, 8), time.September, 7)
		assert.Equal(t, date(2027, time.September, 7), got)
	})
	t.Run("earlier in the year", func(t *testing.T) {
		got := datemath.NextOccurrence(date(2026, time.January, 15), time.September, 7)
		assert.Equal(t, date(2026, time.September, 7), got)
	})
	t.Run("across new year", func(t *testing.T) {
		got := datemath.NextOccurrence(date(2025, time.December, 31), time.January, 1)
		assert.Equal(t, date(2026, time.January, 1), got)
	})
	t.Run("leap day in leap year", func(t *testing.T) {
		got := datemath.NextOccurrence(date(2028, time.February, 1), time.February, 29)
		assert.Equal(t, date(2028, time.February, 29), got)
	})
	t.Run("leap day clamps in common year", func(t *testing.T) {
		got := datemath.NextOccurrence(date(2026, time.March, 1), time.February, 29)
		assert.Equal(t, date(2027, time.February, 28), got)
	})
}

func TestCivil(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	instant := time.Date(2025, time.September, 7, 1, 30, 0, 0, time.UTC)
	assert.Equal(t, date(2025, time.September, 6), datemath.Civil(instant, loc))
	assert.Equal(t, date(2025, time.September, 7), datemath.Civil(instant, time.UTC))
}

func TestParse(t *testing.T) {
	d, err := datemath.ParseDate("2024-05-20")
	require.NoError(t, err)
	assert.Equal(t, date(2024, time.May, 20), d)

	_, err = datemath.ParseDate("20/05/2024")
	assert.ErrorIs(t, err, datemath.ErrBadDate)

	c, err := datemath.ParseClock("09:30")
	require.NoError(t, err)
	assert.Equal(t, "09:30", c)

	_, err = datemath.ParseClock("25:00")
	assert.ErrorIs(t, err, datemath.ErrBadClock)
	_, err = datemath.ParseClock("noon")
	assert.ErrorIs(t, err, datemath.ErrBadClock)
}
