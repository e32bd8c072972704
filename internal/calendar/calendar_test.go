package calendar

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthStart(t *testing.T) {
	cal := UTC()
	got := cal.MonthStart(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestMonthStart_UsesCalendarLocation(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	cal := New(loc)

	// 23:30 UTC on the last day of May is already June in CET.
	got := cal.MonthStart(time.Date(2025, 5, 31, 23, 30, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, loc), got)
}

func TestDayStart(t *testing.T) {
	cal := UTC()
	got := cal.DayStart(time.Date(2024, 2, 29, 18, 45, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestWeekday_SundayFirst(t *testing.T) {
	cal := UTC()

	// 2025-06-01 is a Sunday.
	assert.Equal(t, Sunday, cal.Weekday(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Monday, cal.Weekday(time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Saturday, cal.Weekday(time.Date(2025, 6, 7, 12, 0, 0, 0, time.UTC)))
	assert.Equal(t, Weekday(1), Sunday)
	assert.Equal(t, Weekday(7), Saturday)
}

func TestWeekday_IsWeekend(t *testing.T) {
	for w := Sunday; w <= Saturday; w++ {
		assert.Equal(t, w == 1 || w == 7, w.IsWeekend(), w.String())
	}
}

func TestWeekday_String(t *testing.T) {
	assert.Equal(t, "Sunday", Sunday.String())
	assert.Equal(t, "Saturday", Saturday.String())
	assert.Equal(t, "Weekday(9)", Weekday(9).String())
}

func TestSameMonth(t *testing.T) {
	cal := UTC()
	assert.True(t, cal.SameMonth(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 23, 59, 0, 0, time.UTC),
	))
	assert.False(t, cal.SameMonth(
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	))
}

func TestLastNMonths_ExcludesCurrentMonthOldestFirst(t *testing.T) {
	cal := UTC()
	months := cal.LastNMonths(3, time.Date(2025, 3, 31, 10, 0, 0, 0, time.UTC))

	require.Len(t, months, 3)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), months[0])
	assert.Equal(t, time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), months[1])
	assert.Equal(t, time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC), months[2])
}

func TestLastNMonths_Zero(t *testing.T) {
	assert.Empty(t, UTC().LastNMonths(0, time.Now()))
}

func TestLastNMonths_NegativePanics(t *testing.T) {
	assert.Panics(t, func() {
		UTC().LastNMonths(-1, time.Now())
	})
}
