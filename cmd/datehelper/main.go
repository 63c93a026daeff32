// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command datehelper formats, parses and performs calendar arithmetic on
// dates using the named formats and phrase tables of cloudeng.io/datehelper.
package main

import (
	"context"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/datehelper"
	"cloudeng.io/logging/ctxlog"
)

const spec = `name: datehelper
summary: format, parse and perform calendar arithmetic on dates
commands:
  - name: format
    summary: format an RFC3339 time, or - for now, using a named format or pattern
    arguments:
      - <time>
  - name: parse
    summary: parse text using a named format or pattern and print it as RFC3339
    arguments:
      - <text>
  - name: formats
    summary: list the named formats and their patterns
  - name: month
    summary: month arithmetic
    commands:
      - name: first
        summary: print the first day of the month containing time
        arguments:
          - <time>
      - name: last
        summary: print the last day of the month containing time
        arguments:
          - <time>
      - name: next
        summary: print the same day in the following month
        arguments:
          - <time>
  - name: reset
    summary: print midnight on the day of time
    arguments:
      - <time>
  - name: ago
    summary: describe the time elapsed between time and now, eg. 3 days ago
    arguments:
      - <time>
`

// GlobalFlags represents the flags common to all commands.
type GlobalFlags struct {
	cmdutil.LoggingFlags
	TimeZone string `subcmd:"tz,,'time zone, eg. America/Los_Angeles, overrides the config file'"`
	Locale   string `subcmd:"locale,,'locale, eg. en_US or de_DE, overrides the config file'"`
	Config   string `subcmd:"config,,'YAML configuration file'"`
}

var (
	globalFlags GlobalFlags
	cmdSet      *subcmd.CommandSetYAML
)

func init() {
	cmdSet = subcmd.MustFromYAML(spec)
	cli := &cli{out: os.Stdout, clock: datehelper.SystemClock}

	cmdSet.Set("format").MustRunnerAndFlags(cli.format,
		subcmd.MustRegisteredFlagSet(&formatFlags{}))
	cmdSet.Set("parse").MustRunnerAndFlags(cli.parse,
		subcmd.MustRegisteredFlagSet(&formatFlags{}))
	cmdSet.Set("formats").MustRunnerAndFlags(cli.formats,
		subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("month", "first").MustRunnerAndFlags(cli.firstDay,
		subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("month", "last").MustRunnerAndFlags(cli.lastDay,
		subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("month", "next").MustRunnerAndFlags(cli.nextMonth,
		subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("reset").MustRunnerAndFlags(cli.reset,
		subcmd.MustRegisteredFlagSet(&struct{}{}))
	cmdSet.Set("ago").MustRunnerAndFlags(cli.ago,
		subcmd.MustRegisteredFlagSet(&agoFlags{}))

	globals := subcmd.NewFlagSet()
	globals.MustRegisterFlagStruct(&globalFlags, nil, nil)
	cmdSet.WithGlobalFlags(globals)
	cmdSet.WithMain(mainWrapper)
}

func mainWrapper(ctx context.Context, cmdRunner func(ctx context.Context) error) error {
	logger, err := globalFlags.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer logger.Close()
	ctx = ctxlog.Context(ctx, logger.Logger)
	settings, err := globalFlags.settings(ctx)
	if err != nil {
		return err
	}
	ctxlog.Logger(ctx).Debug("settings", "config", settings.Config.String(), "default_format", settings.DefaultFormat.String())
	return cmdRunner(withSettings(ctx, settings))
}

// settings returns the Settings specified by the config file, if any,
// with the time zone and locale overridden by their flags.
func (gf *GlobalFlags) settings(ctx context.Context) (datehelper.Settings, error) {
	var cs datehelper.ConfigSpec
	if len(gf.Config) > 0 {
		var err error
		if cs, err = datehelper.LoadConfigSpec(ctx, gf.Config); err != nil {
			return datehelper.Settings{}, err
		}
	}
	if len(gf.TimeZone) > 0 {
		cs.TimeZone = gf.TimeZone
	}
	if len(gf.Locale) > 0 {
		cs.Locale = gf.Locale
	}
	return cs.Settings(ctx)
}

func main() {
	ctx := context.Background()
	if err := cmdSet.Dispatch(ctx); err != nil {
		cmdutil.Exit("%v", err)
	}
}
