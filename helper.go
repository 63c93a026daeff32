// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to a Clock.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time {
	return f()
}

// SystemClock is a Clock that returns time.Now.
var SystemClock Clock = ClockFunc(time.Now)

// Option represents an option to New.
type Option func(o *options)

type options struct {
	clock     Clock
	localizer Localizer
}

// WithClock sets the Clock used to determine 'now' for TimeAgo.
func WithClock(c Clock) Option {
	return func(o *options) {
		o.clock = c
	}
}

// WithLocalizer sets the Localizer used by TimeAgo. The default is the
// phrase table for the Config's locale as returned by PhrasesFor.
func WithLocalizer(l Localizer) Option {
	return func(o *options) {
		o.localizer = l
	}
}

// Helper combines a Config, its Calendar, a Clock and a Localizer.
type Helper struct {
	cfg  Config
	cal  Calendar
	opts options
}

// New returns a new Helper for cfg.
func New(cfg Config, opts ...Option) *Helper {
	h := &Helper{cfg: cfg, cal: cfg.Calendar()}
	for _, fn := range opts {
		fn(&h.opts)
	}
	if h.opts.clock == nil {
		h.opts.clock = SystemClock
	}
	if h.opts.localizer == nil {
		h.opts.localizer = PhrasesFor(cfg.locale())
	}
	return h
}

// Config returns the Helper's Config.
func (h *Helper) Config() Config {
	return h.cfg
}

// Calendar returns the Helper's Calendar.
func (h *Helper) Calendar() Calendar {
	return h.cal
}

// Localizer returns the Helper's Localizer.
func (h *Helper) Localizer() Localizer {
	return h.opts.localizer
}

// LastDayOfMonth calls Calendar.LastDayOfMonth.
func (h *Helper) LastDayOfMonth(t time.Time) time.Time {
	return h.cal.LastDayOfMonth(t)
}

// FirstDayOfMonth calls Calendar.FirstDayOfMonth.
func (h *Helper) FirstDayOfMonth(t time.Time) time.Time {
	return h.cal.FirstDayOfMonth(t)
}

// ResetTimeOfDay calls Calendar.ResetTimeOfDay.
func (h *Helper) ResetTimeOfDay(t time.Time) time.Time {
	return h.cal.ResetTimeOfDay(t)
}

// IncrementMonth calls Calendar.IncrementMonth.
func (h *Helper) IncrementMonth(t time.Time) time.Time {
	return h.cal.IncrementMonth(t)
}

// Bucket returns the Bucket describing the difference between date and
// the current time as reported by the Helper's Clock. Dates in the past
// and future are treated identically.
func (h *Helper) Bucket(date time.Time, numeric bool) Bucket {
	return h.cal.BucketFor(h.opts.clock.Now(), date, numeric)
}

// TimeAgo returns a localized description of the time elapsed between
// date and now, eg. "3 days ago" or, when numeric is false, "yesterday".
func (h *Helper) TimeAgo(date time.Time, numeric bool) string {
	return h.Bucket(date, numeric).Localize(h.opts.localizer)
}

// LastDayOfMonth returns the last day of t's month using the default Config.
func LastDayOfMonth(t time.Time) time.Time {
	return Default().Calendar().LastDayOfMonth(t)
}

// FirstDayOfMonth returns the first day of t's month using the default Config.
func FirstDayOfMonth(t time.Time) time.Time {
	return Default().Calendar().FirstDayOfMonth(t)
}

// ResetTimeOfDay returns midnight on t's day using the default Config.
func ResetTimeOfDay(t time.Time) time.Time {
	return Default().Calendar().ResetTimeOfDay(t)
}

// IncrementMonth returns t's day one month later using the default Config.
func IncrementMonth(t time.Time) time.Time {
	return Default().Calendar().IncrementMonth(t)
}

// TimeAgo describes the time elapsed since date using the default Config,
// the system clock and the phrase table for the default locale.
func TimeAgo(date time.Time, numeric bool) string {
	return New(Default()).TimeAgo(date, numeric)
}
