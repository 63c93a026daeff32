// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper_test

import (
	"testing"
	"time"

	"cloudeng.io/datehelper"
)

func utc(year int, month time.Month, day, hour, minute, second int) time.Time {
	return time.Date(year, month, day, hour, minute, second, 0, time.UTC)
}

func TestDaysInMonth(t *testing.T) {
	for _, tc := range []struct {
		year  int
		month time.Month
		days  int
	}{
		{2023, time.January, 31},
		{2023, time.February, 28},
		{2024, time.February, 29},
		{1900, time.February, 28},
		{2000, time.February, 29},
		{2023, time.April, 30},
		{2023, time.June, 30},
		{2023, time.September, 30},
		{2023, time.November, 30},
		{2023, time.December, 31},
	} {
		if got, want := datehelper.DaysInMonth(tc.year, tc.month), tc.days; got != want {
			t.Errorf("%v %v: got %v, want %v", tc.year, tc.month, got, want)
		}
	}
	for _, tc := range []struct{ year, days int }{
		{1900, 28}, {2000, 29}, {2023, 28}, {2024, 29},
	} {
		if got, want := datehelper.DaysInFeb(tc.year), tc.days; got != want {
			t.Errorf("%v: got %v, want %v", tc.year, got, want)
		}
	}
	for _, year := range []int{1600, 2000, 2004, 2024} {
		if !datehelper.IsLeap(year) {
			t.Errorf("%v: should be a leap year", year)
		}
	}
	for _, year := range []int{1700, 1900, 2023, 2100} {
		if datehelper.IsLeap(year) {
			t.Errorf("%v: should not be a leap year", year)
		}
	}
}

func TestMonthBoundaries(t *testing.T) {
	cal := datehelper.NewCalendar(time.UTC)
	for _, tc := range []struct {
		when        time.Time
		first, last time.Time
	}{
		{utc(2024, 2, 10, 13, 14, 15), utc(2024, 2, 1, 0, 0, 0), utc(2024, 2, 29, 23, 59, 59)},
		{utc(2023, 2, 10, 13, 14, 15), utc(2023, 2, 1, 0, 0, 0), utc(2023, 2, 28, 23, 59, 59)},
		{utc(2023, 4, 30, 0, 0, 0), utc(2023, 4, 1, 0, 0, 0), utc(2023, 4, 30, 23, 59, 59)},
		{utc(2023, 12, 31, 23, 59, 59), utc(2023, 12, 1, 0, 0, 0), utc(2023, 12, 31, 23, 59, 59)},
		{utc(2023, 1, 1, 0, 0, 0), utc(2023, 1, 1, 0, 0, 0), utc(2023, 1, 31, 23, 59, 59)},
	} {
		if got, want := cal.FirstDayOfMonth(tc.when), tc.first; !got.Equal(want) {
			t.Errorf("first: %v: got %v, want %v", tc.when, got, want)
		}
		if got, want := cal.LastDayOfMonth(tc.when), tc.last; !got.Equal(want) {
			t.Errorf("last: %v: got %v, want %v", tc.when, got, want)
		}
	}
}

func TestMonthBoundariesInLocation(t *testing.T) {
	est := time.FixedZone("EST", -5*60*60)
	cal := datehelper.NewCalendar(est)
	// 02:00 UTC on Mar 1 is still Feb 29 in EST.
	when := utc(2024, 3, 1, 2, 0, 0)
	first := cal.FirstDayOfMonth(when)
	if got, want := first, time.Date(2024, 2, 1, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := first.Location(), est; got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.LastDayOfMonth(when), time.Date(2024, 2, 29, 23, 59, 59, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := cal.ResetTimeOfDay(when), time.Date(2024, 2, 29, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestResetTimeOfDay(t *testing.T) {
	cal := datehelper.NewCalendar(nil)
	for _, when := range []time.Time{
		utc(2024, 6, 15, 12, 30, 45),
		utc(2024, 6, 15, 0, 0, 0),
		utc(2024, 12, 31, 23, 59, 59).Add(999 * time.Millisecond),
	} {
		reset := cal.ResetTimeOfDay(when)
		y, m, d := when.Date()
		ry, rm, rd := reset.Date()
		if y != ry || m != rm || d != rd {
			t.Errorf("%v: date changed: %v", when, reset)
		}
		if h, mi, s := reset.Clock(); h != 0 || mi != 0 || s != 0 || reset.Nanosecond() != 0 {
			t.Errorf("%v: time not reset: %v", when, reset)
		}
		if got, want := cal.ResetTimeOfDay(reset), reset; !got.Equal(want) {
			t.Errorf("%v: not idempotent: got %v, want %v", when, got, want)
		}
	}
}

func TestIncrementMonth(t *testing.T) {
	cal := datehelper.NewCalendar(time.UTC)
	for _, tc := range []struct {
		when, next time.Time
	}{
		{utc(2024, 1, 15, 10, 0, 0), utc(2024, 2, 15, 0, 0, 0)},
		{utc(2024, 11, 30, 10, 0, 0), utc(2024, 12, 30, 0, 0, 0)},
		{utc(2024, 12, 15, 10, 0, 0), utc(2025, 1, 15, 0, 0, 0)},
		{utc(2023, 12, 31, 23, 59, 59), utc(2024, 1, 31, 0, 0, 0)},
		// Days that overflow the following month are clamped.
		{utc(2024, 1, 31, 0, 0, 0), utc(2024, 2, 29, 0, 0, 0)},
		{utc(2023, 1, 31, 0, 0, 0), utc(2023, 2, 28, 0, 0, 0)},
		{utc(2024, 3, 31, 0, 0, 0), utc(2024, 4, 30, 0, 0, 0)},
	} {
		if got, want := cal.IncrementMonth(tc.when), tc.next; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.when, got, want)
		}
	}

	for month := time.January; month <= time.December; month++ {
		when := utc(2023, month, 10, 0, 0, 0)
		next := cal.IncrementMonth(when)
		if month == time.December {
			if next.Year() != 2024 || next.Month() != time.January {
				t.Errorf("%v: got %v", when, next)
			}
			continue
		}
		if next.Year() != 2023 || next.Month() != month+1 {
			t.Errorf("%v: got %v", when, next)
		}
	}
}

func TestAddMonths(t *testing.T) {
	cal := datehelper.NewCalendar(time.UTC)
	start := utc(2024, 1, 31, 10, 11, 12)
	for _, tc := range []struct {
		n    int
		want time.Time
	}{
		{0, start},
		{1, utc(2024, 2, 29, 10, 11, 12)},
		{2, utc(2024, 3, 31, 10, 11, 12)},
		{12, utc(2025, 1, 31, 10, 11, 12)},
		{13, utc(2025, 2, 28, 10, 11, 12)},
		{-1, utc(2023, 12, 31, 10, 11, 12)},
		{-11, utc(2023, 2, 28, 10, 11, 12)},
		{-13, utc(2022, 12, 31, 10, 11, 12)},
	} {
		if got, want := cal.AddMonths(start, tc.n), tc.want; !got.Equal(want) {
			t.Errorf("%v: got %v, want %v", tc.n, got, want)
		}
	}
}

func TestDefaultCalendar(t *testing.T) {
	defer datehelper.ResetDefault()
	est := time.FixedZone("EST", -5*60*60)
	datehelper.SetTimeZone(est)
	when := utc(2024, 3, 1, 2, 0, 0)
	if got, want := datehelper.FirstDayOfMonth(when), time.Date(2024, 2, 1, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datehelper.LastDayOfMonth(when), time.Date(2024, 2, 29, 23, 59, 59, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datehelper.IncrementMonth(when), time.Date(2024, 3, 29, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := datehelper.ResetTimeOfDay(when), time.Date(2024, 2, 29, 0, 0, 0, 0, est); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
