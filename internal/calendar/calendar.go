package calendar

import (
	"fmt"
	"time"
)

// Weekday numbers days Sunday-first: 1 = Sunday ... 7 = Saturday.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("Weekday(%d)", int(w))
	}
	return time.Weekday(w - 1).String()
}

// IsWeekend reports whether w is Sunday or Saturday.
func (w Weekday) IsWeekend() bool {
	return w == Sunday || w == Saturday
}

// Calendar buckets instants into days, weeks and months of a fixed location.
type Calendar struct {
	Location *time.Location
}

func New(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{Location: loc}
}

func UTC() Calendar {
	return New(time.UTC)
}

func (c Calendar) loc() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

// MonthStart truncates t to the first instant of its month.
func (c Calendar) MonthStart(t time.Time) time.Time {
	t = t.In(c.loc())
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, c.loc())
}

// DayStart truncates t to the first instant of its day.
func (c Calendar) DayStart(t time.Time) time.Time {
	t = t.In(c.loc())
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, c.loc())
}

// Weekday returns the Sunday-first weekday number of t.
func (c Calendar) Weekday(t time.Time) Weekday {
	return Weekday(t.In(c.loc()).Weekday()) + 1
}

// SameMonth reports whether a and b share a year and month.
func (c Calendar) SameMonth(a, b time.Time) bool {
	a, b = a.In(c.loc()), b.In(c.loc())
	return a.Year() == b.Year() && a.Month() == b.Month()
}

// AddMonths moves a month start by n calendar months.
func (c Calendar) AddMonths(month time.Time, n int) time.Time {
	m := c.MonthStart(month)
	return time.Date(m.Year(), m.Month()+time.Month(n), 1, 0, 0, 0, 0, c.loc())
}

// LastNMonths returns the n month starts before the month containing ref,
// oldest first. The month of ref itself is never included.
// It panics if n is negative.
func (c Calendar) LastNMonths(n int, ref time.Time) []time.Time {
	if n < 0 {
		panic(fmt.Sprintf("calendar: negative month count %d", n))
	}

	current := c.MonthStart(ref)
	seen := make(map[time.Time]struct{}, n)
	months := make([]time.Time, 0, n)
	for i := n; i >= 1; i-- {
		m := c.AddMonths(current, -i)
		if _, ok := seen[m]; ok {
			continue
		}
		seen[m] = struct{}{}
		months = append(months, m)
	}
	return months
}
