// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"time"

	"cloudeng.io/datetime"
)

// DaysInMonth returns the number of days in month for year.
func DaysInMonth(year int, month time.Month) int {
	return int(datetime.DaysInMonth(year, datetime.Month(month)))
}

// DaysInFeb returns the number of days in February for year.
func DaysInFeb(year int) int {
	return int(datetime.DaysInFeb(year))
}

// IsLeap returns true if year is a leap year in the proleptic Gregorian
// calendar.
func IsLeap(year int) bool {
	return datetime.IsLeap(year)
}

// Calendar performs field level arithmetic on time.Time values using
// an ISO-8601 (proleptic Gregorian) calendar in a specific location.
// Each operation decomposes its argument into calendar fields in that
// location, replaces the targeted fields and reconstructs a new value.
// Only AddMonths preserves sub-second precision.
type Calendar struct {
	loc *time.Location
}

// NewCalendar returns a Calendar for the specified location, a nil location
// is treated as UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// Location returns the location used by the calendar.
func (c Calendar) Location() *time.Location {
	if c.loc == nil {
		return time.UTC
	}
	return c.loc
}

func (c Calendar) fields(t time.Time) (year int, month time.Month, day int) {
	return t.In(c.Location()).Date()
}

// Date returns the time for the supplied calendar fields in the calendar's
// location.
func (c Calendar) Date(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, c.Location())
}

// LastDayOfMonth returns 23:59:59 on the last day of the month that t
// falls in.
func (c Calendar) LastDayOfMonth(t time.Time) time.Time {
	year, month, _ := c.fields(t)
	return c.Date(year, month, DaysInMonth(year, month), 23, 59, 59)
}

// FirstDayOfMonth returns 00:00:00 on the first day of the month that t
// falls in.
func (c Calendar) FirstDayOfMonth(t time.Time) time.Time {
	year, month, _ := c.fields(t)
	return c.Date(year, month, 1, 0, 0, 0)
}

// ResetTimeOfDay returns 00:00:00 on the same day as t.
func (c Calendar) ResetTimeOfDay(t time.Time) time.Time {
	year, month, day := c.fields(t)
	return c.Date(year, month, day, 0, 0, 0)
}

// IncrementMonth returns the same day of the month one month later,
// December rolls over to January of the following year. The time of day
// is reset to 00:00:00. A day that exceeds the length of the following
// month is silently treated as the last day of that month, so Jan 31
// becomes Feb 28 (or 29).
func (c Calendar) IncrementMonth(t time.Time) time.Time {
	year, month, day := c.fields(t)
	if month != time.December {
		month++
	} else {
		month = time.January
		year++
	}
	return c.Date(year, month, min(day, DaysInMonth(year, month)), 0, 0, 0)
}

// AddMonths returns t advanced by n calendar months, keeping the time of
// day and clamping the day of the month to the length of the resulting
// month. n may be negative.
func (c Calendar) AddMonths(t time.Time, n int) time.Time {
	t = t.In(c.Location())
	year, month, day := t.Date()
	hour, minute, second := t.Clock()
	total := int(month) - 1 + n
	year += total / 12
	total %= 12
	if total < 0 {
		total += 12
		year--
	}
	month = time.Month(total + 1)
	day = min(day, DaysInMonth(year, month))
	return time.Date(year, month, day, hour, minute, second, t.Nanosecond(), c.Location())
}
