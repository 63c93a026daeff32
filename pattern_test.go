// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper_test

import (
	"testing"
	"time"

	"cloudeng.io/datehelper"
)

func TestCompilePattern(t *testing.T) {
	for _, p := range []string{
		"",
		"yyyy",
		"y-M-d",
		"'literal'",
		"''",
		"HH 'o''clock'",
		"yyyy-MM-dd'T'HH:mm:ss.SSSZZZZZ",
		"hh:mm aaa",
	} {
		if _, err := datehelper.CompilePattern(p); err != nil {
			t.Errorf("%q: %v", p, err)
		}
	}
	for _, p := range []string{
		"'unterminated",
		"yyyy-MM-dd EEE",
		"MMMMM",
		"ddd",
		"ZZZZ",
		"G",
	} {
		if _, err := datehelper.CompilePattern(p); !datehelper.IsInvalidPattern(err) {
			t.Errorf("%q: unexpected or missing error: %v", p, err)
		}
	}
}

func TestPatternLiterals(t *testing.T) {
	cfg := datehelper.DefaultConfig()
	when := utc(2024, 6, 15, 9, 0, 0)
	for _, tc := range []struct {
		pattern, text string
	}{
		{"HH 'o''clock'", "09 o'clock"},
		{"''yy''", "'24'"},
		{"'Day:' d", "Day: 15"},
		{"yyyy.MM.dd", "2024.06.15"},
	} {
		p := datehelper.MustCompilePattern(tc.pattern)
		if got, want := p.Format(cfg, when), tc.text; got != want {
			t.Errorf("%q: got %q, want %q", tc.pattern, got, want)
		}
		if _, err := p.Parse(cfg, tc.text); err != nil {
			t.Errorf("%q: %q: %v", tc.pattern, tc.text, err)
		}
	}
}

func TestPatternFractionsAndZones(t *testing.T) {
	cfg := datehelper.DefaultConfig()
	when := time.Date(2024, 6, 15, 9, 8, 7, 120450000, time.FixedZone("", -(3*60*60+30*60)))
	for _, tc := range []struct {
		pattern, text string
	}{
		{"HH:mm:ss.S", "12:38:07.1"},
		{"HH:mm:ss.SSSSSS", "12:38:07.120450"},
		{"HH:mm:ss.SSSSSSSSSS", "12:38:07.1204500000"},
		{"yyyy-MM-dd'T'HH:mm:ssZ", "2024-06-15T12:38:07+0000"},
		{"yyyy-MM-dd'T'HH:mm:ssZZZZZ", "2024-06-15T12:38:07Z"},
	} {
		p := datehelper.MustCompilePattern(tc.pattern)
		if got, want := p.Format(cfg, when), tc.text; got != want {
			t.Errorf("%q: got %q, want %q", tc.pattern, got, want)
		}
	}

	p := datehelper.MustCompilePattern("yyyy-MM-dd'T'HH:mm:ssZZZZZ")
	local := datehelper.NewConfig(time.FixedZone("", -(3*60*60+30*60)), datehelper.DefaultConfig().Locale)
	if got, want := p.Format(local, when), "2024-06-15T09:08:07-03:30"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	parsed, err := p.Parse(cfg, "2024-06-15T09:08:07-03:30")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := parsed, when.Truncate(time.Second); !got.Equal(want) {
		t.Errorf("got %v, want %v", got, want)
	}
	// Offsets are written in whole minutes.
	lmt := datehelper.NewConfig(time.FixedZone("LMT", 19*60+32), datehelper.DefaultConfig().Locale)
	noon := time.Date(1920, 6, 1, 12, 0, 0, 0, lmt.Location)
	if got, want := datehelper.ISODateTime.Pattern().Format(lmt, noon), "1920-06-01T12:00:00.000+0019"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, text := range []string{
		"2024-06-15T09:08:07-0330",
		"2024-06-15T09:08:07-03:3",
		"2024-06-15T09:08:07 03:30",
		"2024-06-15T09:08:07-24:00",
	} {
		if _, err := p.Parse(cfg, text); !datehelper.IsNoMatch(err) {
			t.Errorf("%q: unexpected or missing error: %v", text, err)
		}
	}
}

func TestPatternDefaults(t *testing.T) {
	cfg := datehelper.DefaultConfig()
	for _, tc := range []struct {
		pattern, text string
		when          time.Time
	}{
		{"HH:mm", "13:14", utc(2000, 1, 1, 13, 14, 0)},
		{"MMMM", "march", utc(2000, 3, 1, 0, 0, 0)},
		{"d", "7", utc(2000, 1, 7, 0, 0, 0)},
		{"yy", "49", utc(2049, 1, 1, 0, 0, 0)},
		{"yy", "50", utc(1950, 1, 1, 0, 0, 0)},
		{"yy", "68", utc(1968, 1, 1, 0, 0, 0)},
		{"y", "812", utc(812, 1, 1, 0, 0, 0)},
		{"yyyy-MM", "12024-03", utc(12024, 3, 1, 0, 0, 0)},
		{"yyyy-MM", "-0044-03", utc(-44, 3, 1, 0, 0, 0)},
		{"yyyyMMdd", "20240615", utc(2024, 6, 15, 0, 0, 0)},
		{"M/d/yyyy h a", "2/29/2024 12 AM", utc(2024, 2, 29, 0, 0, 0)},
		{"M/d/yyyy h a", "2/29/2024 12 PM", utc(2024, 2, 29, 12, 0, 0)},
	} {
		p := datehelper.MustCompilePattern(tc.pattern)
		when, err := p.Parse(cfg, tc.text)
		if err != nil {
			t.Errorf("%q: %q: %v", tc.pattern, tc.text, err)
			continue
		}
		if got, want := when, tc.when; !got.Equal(want) {
			t.Errorf("%q: %q: got %v, want %v", tc.pattern, tc.text, got, want)
		}
	}
}
