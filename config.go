// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"golang.org/x/text/language"
)

// ConfigSpec is the YAML representation of a configuration, eg:
//
//	time_zone: America/Los_Angeles
//	locale: en_US
//	default_format: USDate
//	display_format: ISODate
//	display_date_time_format: ISODateTime
//	phrases_file: phrases.yaml
//	phrases:
//	  Date.Ago.now: "a moment ago"
//
// Inline phrases take precedence over those in phrases_file which in
// turn take precedence over the built in table for the locale. The
// display formats default to USDate and USDateTime.
type ConfigSpec struct {
	TimeZone              string            `yaml:"time_zone"`
	Locale                string            `yaml:"locale"`
	DefaultFormat         Format            `yaml:"default_format"`
	DisplayFormat         *Format           `yaml:"display_format"`
	DisplayDateTimeFormat *Format           `yaml:"display_date_time_format"`
	PhrasesFile           string            `yaml:"phrases_file"`
	Phrases               map[string]string `yaml:"phrases"`
}

// Settings is the validated form of a ConfigSpec.
type Settings struct {
	Config                Config
	DefaultFormat         Format
	DisplayFormat         Format
	DisplayDateTimeFormat Format
	Phrases               *Phrases
}

// DefaultSettings returns the Settings for DefaultConfig.
func DefaultSettings() Settings {
	cfg := DefaultConfig()
	return Settings{
		Config:                cfg,
		DefaultFormat:         ISODateTime,
		DisplayFormat:         USDate,
		DisplayDateTimeFormat: USDateTime,
		Phrases:               PhrasesFor(cfg.Locale),
	}
}

// DisplayDate formats t using the DisplayFormat.
func (s Settings) DisplayDate(t time.Time) string {
	return s.Config.StringFrom(t, s.DisplayFormat)
}

// DisplayDateTime formats t using the DisplayDateTimeFormat, in the local
// time zone rather than the Config's if localTimeZone is true.
func (s Settings) DisplayDateTime(t time.Time, localTimeZone bool) string {
	cfg := s.Config
	if localTimeZone {
		cfg.Location = time.Local
	}
	return cfg.StringFrom(t, s.DisplayDateTimeFormat)
}

// Helper returns a Helper that uses the Settings' Config and Phrases.
func (s Settings) Helper(opts ...Option) *Helper {
	if s.Phrases == nil {
		return New(s.Config, opts...)
	}
	return New(s.Config, append([]Option{WithLocalizer(s.Phrases)}, opts...)...)
}

// Config validates the time_zone and locale fields of cs and returns the
// corresponding Config. All invalid fields are reported.
func (cs ConfigSpec) Config() (Config, error) {
	errs := &errors.M{}
	cfg := cs.config(errs)
	return cfg, errs.Err()
}

func (cs ConfigSpec) config(errs *errors.M) Config {
	cfg := DefaultConfig()
	if len(cs.TimeZone) > 0 {
		loc, err := time.LoadLocation(cs.TimeZone)
		if err != nil {
			errs.Append(fmt.Errorf("time_zone: %q: %w", cs.TimeZone, err))
		} else {
			cfg.Location = loc
		}
	}
	if len(cs.Locale) > 0 {
		tag, err := language.Parse(cs.Locale)
		if err != nil {
			errs.Append(fmt.Errorf("locale: %q: %w", cs.Locale, err))
		} else {
			cfg.Locale = tag
		}
	}
	return cfg
}

func displayFormat(errs *errors.M, name string, f *Format, def Format) Format {
	if f == nil {
		return def
	}
	if !f.valid() {
		errs.Append(fmt.Errorf("%v: invalid format: %v", name, *f))
	}
	return *f
}

// Settings validates cs and returns the corresponding Settings.
// All invalid fields are reported.
func (cs ConfigSpec) Settings(ctx context.Context) (Settings, error) {
	errs := &errors.M{}
	cfg := cs.config(errs)
	phrases := PhrasesFor(cfg.Locale)
	if len(cs.PhrasesFile) > 0 {
		fp, err := LoadPhrases(ctx, cs.PhrasesFile)
		if err != nil {
			errs.Append(fmt.Errorf("phrases_file: %q: %w", cs.PhrasesFile, err))
		} else {
			phrases = phrases.Merge(fp.table)
		}
	}
	if !cs.DefaultFormat.valid() {
		errs.Append(fmt.Errorf("default_format: invalid format: %v", cs.DefaultFormat))
	}
	display := displayFormat(errs, "display_format", cs.DisplayFormat, USDate)
	displayDateTime := displayFormat(errs, "display_date_time_format", cs.DisplayDateTimeFormat, USDateTime)
	if err := errs.Err(); err != nil {
		return Settings{}, err
	}
	return Settings{
		Config:                cfg,
		DefaultFormat:         cs.DefaultFormat,
		DisplayFormat:         display,
		DisplayDateTimeFormat: displayDateTime,
		Phrases:               phrases.Merge(cs.Phrases),
	}, nil
}

// ParseConfigSpec parses a YAML configuration, unknown fields are
// reported as errors.
func ParseConfigSpec(data []byte) (ConfigSpec, error) {
	var cs ConfigSpec
	if err := cmdyaml.ParseConfigStrict(data, &cs); err != nil {
		return ConfigSpec{}, err
	}
	return cs, nil
}

// LoadConfigSpec reads the YAML configuration in filename without
// validating it. The file, and any phrases_file it names, are read using
// file.FSReadFile and hence may be supplied by an fs.ReadFileFS stored
// in ctx via file.ContextWithFS.
func LoadConfigSpec(ctx context.Context, filename string) (ConfigSpec, error) {
	var cs ConfigSpec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &cs); err != nil {
		return ConfigSpec{}, err
	}
	return cs, nil
}

// LoadConfig reads and validates the YAML configuration in filename.
func LoadConfig(ctx context.Context, filename string) (Settings, error) {
	cs, err := LoadConfigSpec(ctx, filename)
	if err != nil {
		return Settings{}, err
	}
	s, err := cs.Settings(ctx)
	if err != nil {
		return Settings{}, fmt.Errorf("%v: %w", filename, err)
	}
	ctxlog.Logger(ctx).Debug("loaded config",
		"file", filename,
		"time_zone", s.Config.location().String(),
		"locale", s.Config.locale().String(),
		"default_format", s.DefaultFormat.String())
	return s, nil
}
