// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"fmt"
	"time"
)

// KeyPrefix is prepended to bucket keys to form the key passed to a
// Localizer.
const KeyPrefix = "Date.Ago."

// Delta represents the difference between two times decomposed into
// calendar components, largest unit first. Each component holds only the
// remainder left over by the larger units, so 1 year and 2 months is
// Years: 1, Months: 2.
type Delta struct {
	Years, Months, Weeks, Days int
	Hours, Minutes, Seconds    int
}

func (d Delta) String() string {
	return fmt.Sprintf("%dy %dm %dw %dd %02d:%02d:%02d", d.Years, d.Months, d.Weeks, d.Days, d.Hours, d.Minutes, d.Seconds)
}

// Delta returns the calendar difference between from and to, in either
// order. Months are counted forward from the earlier of the two, so
// Delta(t-d, t) and Delta(t, t+d) may differ. Whole months are counted using calendar month arithmetic, with
// the day of the month clamped to the length of shorter months, and the
// remainder is split into weeks, days, hours, minutes and seconds.
func (c Calendar) Delta(from, to time.Time) Delta {
	if to.Before(from) {
		from, to = to, from
	}
	from, to = from.In(c.Location()), to.In(c.Location())

	months := (to.Year()-from.Year())*12 + int(to.Month()) - int(from.Month())
	for months > 0 && c.AddMonths(from, months).After(to) {
		months--
	}
	cursor := c.AddMonths(from, months)

	days := int(to.Sub(cursor) / (24 * time.Hour))
	for !cursor.AddDate(0, 0, days+1).After(to) {
		days++
	}
	for days > 0 && cursor.AddDate(0, 0, days).After(to) {
		days--
	}
	cursor = cursor.AddDate(0, 0, days)

	rem := to.Sub(cursor)
	return Delta{
		Years:   months / 12,
		Months:  months % 12,
		Weeks:   days / 7,
		Days:    days % 7,
		Hours:   int(rem / time.Hour),
		Minutes: int(rem % time.Hour / time.Minute),
		Seconds: int(rem % time.Minute / time.Second),
	}
}

// Bucket represents the category chosen to describe a Delta. Arg is
// only meaningful when HasArg is true.
type Bucket struct {
	Key    string
	Arg    int
	HasArg bool
}

// LocalizationKey returns the Key prefixed with KeyPrefix.
func (b Bucket) LocalizationKey() string {
	return KeyPrefix + b.Key
}

// Localize renders the bucket using the supplied Localizer.
func (b Bucket) Localize(l Localizer) string {
	if b.HasArg {
		return l.Localize(b.LocalizationKey(), b.Arg)
	}
	return l.Localize(b.LocalizationKey())
}

func (b Bucket) String() string {
	if b.HasArg {
		return fmt.Sprintf("%s/%d", b.Key, b.Arg)
	}
	return b.Key
}

// bucketRule matches a unit whose count is at least plural, or at least
// one if singular is set. phrase replaces singular when numeric style is
// not requested.
type bucketRule struct {
	count    func(Delta) int
	plural   string
	min      int
	singular string
	phrase   string
}

// bucketRules are evaluated in order, the first match wins so that the
// coarsest non-zero unit is always the one reported.
var bucketRules = []bucketRule{
	{func(d Delta) int { return d.Years }, "years", 2, "year", "last_year"},
	{func(d Delta) int { return d.Months }, "months", 2, "month", "last_month"},
	{func(d Delta) int { return d.Weeks }, "weeks", 2, "week", "last_week"},
	{func(d Delta) int { return d.Days }, "days", 2, "day", "yesterday"},
	{func(d Delta) int { return d.Hours }, "hours", 2, "hour", "an_hour"},
	{func(d Delta) int { return d.Minutes }, "minutes", 2, "minute", "1_minute"},
	{func(d Delta) int { return d.Seconds }, "seconds", 3, "", ""},
}

// BucketForDelta returns the Bucket for d. If numeric is true then
// singular values are reported as a count of 1 (eg. "1 year ago") rather
// than as a phrase (eg. "last year").
func BucketForDelta(d Delta, numeric bool) Bucket {
	for _, r := range bucketRules {
		n := r.count(d)
		if n >= r.min {
			return Bucket{Key: r.plural, Arg: n, HasArg: true}
		}
		if len(r.singular) == 0 || n < 1 {
			continue
		}
		if numeric {
			return Bucket{Key: r.singular, Arg: 1, HasArg: true}
		}
		return Bucket{Key: r.phrase}
	}
	return Bucket{Key: "now"}
}

// BucketFor returns the Bucket for the difference between date and now.
// Dates after now are reflected to the same distance before it, so that
// now-d and now+d always select the same Bucket. Calendar month lengths
// vary and hence the Delta for the two would otherwise differ near month
// boundaries.
func (c Calendar) BucketFor(now, date time.Time, numeric bool) Bucket {
	if date.After(now) {
		date = now.Add(-date.Sub(now))
	}
	return BucketForDelta(c.Delta(date, now), numeric)
}
