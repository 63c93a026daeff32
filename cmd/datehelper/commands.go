// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"cloudeng.io/datehelper"
	"cloudeng.io/datetime"
	"cloudeng.io/logging/ctxlog"
)

type formatFlags struct {
	Format  string `subcmd:"format,,'named format, one of ISODateTime, ISODate, USDateShort, USDateShort2, USDate, USDateTime, fullMonth, fullYear, monthYear or monthYr, defaults to that of the config file'"`
	Pattern string `subcmd:"pattern,,'LDML pattern, eg. yyyy/MM/dd, overrides --format'"`
}

type agoFlags struct {
	Numeric bool   `subcmd:"numeric,false,'use numeric phrases, eg. 1 day ago rather than yesterday'"`
	Offset  string `subcmd:"offset,,'ISO8601 duration, eg. P3DT4H, subtracted from time'"`
}

type settingsKey struct{}

func withSettings(ctx context.Context, s datehelper.Settings) context.Context {
	ctx = datehelper.ContextWithConfig(ctx, s.Config)
	return context.WithValue(ctx, settingsKey{}, s)
}

func settingsFrom(ctx context.Context) datehelper.Settings {
	if s, ok := ctx.Value(settingsKey{}).(datehelper.Settings); ok {
		return s
	}
	return datehelper.DefaultSettings()
}

type cli struct {
	out   io.Writer
	clock datehelper.Clock
}

func (c *cli) helper(ctx context.Context) *datehelper.Helper {
	return settingsFrom(ctx).Helper(datehelper.WithClock(c.clock))
}

// time parses an RFC3339 time, '-' is interpreted as the current time.
func (c *cli) time(arg string) (time.Time, error) {
	if arg == "-" {
		return c.clock.Now(), nil
	}
	t, err := time.Parse(time.RFC3339Nano, arg)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q, expected RFC3339 or -: %w", arg, err)
	}
	return t, nil
}

func (ff *formatFlags) pattern(ctx context.Context) (*datehelper.Pattern, error) {
	if len(ff.Pattern) > 0 {
		return datehelper.CompilePattern(ff.Pattern)
	}
	if len(ff.Format) > 0 {
		f, err := datehelper.ParseFormat(ff.Format)
		if err != nil {
			return nil, err
		}
		return f.Pattern(), nil
	}
	df := settingsFrom(ctx).DefaultFormat
	if p := df.Pattern(); p != nil {
		return p, nil
	}
	return nil, fmt.Errorf("invalid default format: %v", df)
}

func (c *cli) format(ctx context.Context, values any, args []string) error {
	ff := values.(*formatFlags)
	p, err := ff.pattern(ctx)
	if err != nil {
		return err
	}
	t, err := c.time(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, p.Format(datehelper.ConfigFromContext(ctx), t))
	return nil
}

func (c *cli) parse(ctx context.Context, values any, args []string) error {
	ff := values.(*formatFlags)
	p, err := ff.pattern(ctx)
	if err != nil {
		return err
	}
	t, err := p.Parse(datehelper.ConfigFromContext(ctx), args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, t.Format(time.RFC3339Nano))
	return nil
}

func (c *cli) formats(_ context.Context, _ any, _ []string) error {
	for _, f := range datehelper.Formats() {
		fmt.Fprintf(c.out, "%-14s%s\n", f, f.Literal())
	}
	return nil
}

func (c *cli) calendarOp(ctx context.Context, arg string, op func(*datehelper.Helper, time.Time) time.Time) error {
	t, err := c.time(arg)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.out, op(c.helper(ctx), t).Format(time.RFC3339))
	return nil
}

func (c *cli) firstDay(ctx context.Context, _ any, args []string) error {
	return c.calendarOp(ctx, args[0], (*datehelper.Helper).FirstDayOfMonth)
}

func (c *cli) lastDay(ctx context.Context, _ any, args []string) error {
	return c.calendarOp(ctx, args[0], (*datehelper.Helper).LastDayOfMonth)
}

func (c *cli) nextMonth(ctx context.Context, _ any, args []string) error {
	return c.calendarOp(ctx, args[0], (*datehelper.Helper).IncrementMonth)
}

func (c *cli) reset(ctx context.Context, _ any, args []string) error {
	return c.calendarOp(ctx, args[0], (*datehelper.Helper).ResetTimeOfDay)
}

func (c *cli) ago(ctx context.Context, values any, args []string) error {
	af := values.(*agoFlags)
	t, err := c.time(args[0])
	if err != nil {
		return err
	}
	if len(af.Offset) > 0 {
		offset, err := datetime.ParseISO8601Duration(af.Offset)
		if err != nil {
			return err
		}
		t = t.Add(-offset)
	}
	h := c.helper(ctx)
	b := h.Bucket(t, af.Numeric)
	ctxlog.Logger(ctx).Debug("ago", "time", t, "bucket", b.String())
	fmt.Fprintln(c.out, b.Localize(h.Localizer()))
	return nil
}
