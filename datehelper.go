// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package datehelper provides support for converting between textual and
// time.Time representations of dates using a fixed set of named formats,
// for calendar arithmetic such as finding the first or last day of a month
// and for describing the time elapsed between two dates ("3 days ago")
// using a localized phrase table.
//
// All operations are performed relative to a Config that specifies the
// time zone and locale to use. A process wide default Config (UTC, en_US)
// is used by the package level functions; it may be changed once at
// startup via SetDefault, SetTimeZone or SetLocale. Configs may also be
// passed explicitly or carried in a context.Context.
package datehelper

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
)

// DefaultLocale is the locale used when none is specified.
const DefaultLocale = "en_US"

var defaultTag = language.MustParse(DefaultLocale)

// Config represents the time zone and locale used for formatting,
// parsing and calendar arithmetic.
type Config struct {
	Location *time.Location
	Locale   language.Tag
}

// NewConfig returns a Config for the specified location and locale.
// A nil location is treated as UTC.
func NewConfig(loc *time.Location, locale language.Tag) Config {
	if loc == nil {
		loc = time.UTC
	}
	return Config{Location: loc, Locale: locale}
}

// ParseConfig returns a Config for the named time zone, as understood by
// time.LoadLocation, and locale, which may use either '-' or '_' as a
// separator (eg. en-US or en_US). Empty values select the defaults.
func ParseConfig(timeZone, locale string) (Config, error) {
	cfg := DefaultConfig()
	if len(timeZone) > 0 {
		loc, err := time.LoadLocation(timeZone)
		if err != nil {
			return Config{}, fmt.Errorf("invalid time zone %q: %w", timeZone, err)
		}
		cfg.Location = loc
	}
	if len(locale) > 0 {
		tag, err := language.Parse(locale)
		if err != nil {
			return Config{}, fmt.Errorf("invalid locale %q: %w", locale, err)
		}
		cfg.Locale = tag
	}
	return cfg, nil
}

// DefaultConfig returns a new Config with the default settings of UTC and en_US.
func DefaultConfig() Config {
	return Config{Location: time.UTC, Locale: defaultTag}
}

func (c Config) location() *time.Location {
	if c.Location == nil {
		return time.UTC
	}
	return c.Location
}

func (c Config) locale() language.Tag {
	if c.Locale == language.Und {
		return defaultTag
	}
	return c.Locale
}

// Calendar returns the Calendar for the Config's location.
func (c Config) Calendar() Calendar {
	return NewCalendar(c.location())
}

func (c Config) String() string {
	return fmt.Sprintf("%v %v", c.location(), c.locale())
}

var defaultConfig atomic.Pointer[Config]

func init() {
	ResetDefault()
}

// Default returns the process wide default Config.
func Default() Config {
	return *defaultConfig.Load()
}

// SetDefault replaces the process wide default Config.
func SetDefault(cfg Config) {
	cfg.Location = cfg.location()
	cfg.Locale = cfg.locale()
	defaultConfig.Store(&cfg)
}

// SetTimeZone sets the location of the process wide default Config.
func SetTimeZone(loc *time.Location) {
	cfg := Default()
	cfg.Location = loc
	SetDefault(cfg)
}

// SetLocale sets the locale of the process wide default Config.
func SetLocale(tag language.Tag) {
	cfg := Default()
	cfg.Locale = tag
	SetDefault(cfg)
}

// ResetDefault restores the process wide default Config to UTC and en_US.
func ResetDefault() {
	SetDefault(DefaultConfig())
}

type configKey struct{}

// ContextWithConfig returns a new context with the given Config stored in it.
func ContextWithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, configKey{}, cfg)
}

// ConfigFromContext returns the Config stored in the given context, or
// the process wide default if there is none.
func ConfigFromContext(ctx context.Context) Config {
	cfg, ok := ctx.Value(configKey{}).(Config)
	if !ok {
		return Default()
	}
	return cfg
}
