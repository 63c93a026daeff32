// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// Format represents one of the named date formats.
type Format int

const (
	ISODateTime  Format = iota // yyyy-MM-dd'T'HH:mm:ss.SSSZ
	ISODate                    // yyyy-MM-dd
	USDateShort                // MM/dd/yyyy
	USDateShort2               // MM-dd-yyyy
	USDate                     // MMM dd, yyyy
	USDateTime                 // MMM dd, yyyy, h:mm a
	FullMonth                  // MMMM
	FullYear                   // yyyy
	MonthYear                  // MMM yyyy
	MonthYr                    // MMM yy
	numFormats
)

var formatNames = [numFormats]string{
	"ISODateTime",
	"ISODate",
	"USDateShort",
	"USDateShort2",
	"USDate",
	"USDateTime",
	"fullMonth",
	"fullYear",
	"monthYear",
	"monthYr",
}

var formatLiterals = [numFormats]string{
	"yyyy-MM-dd'T'HH:mm:ss.SSSZ",
	"yyyy-MM-dd",
	"MM/dd/yyyy",
	"MM-dd-yyyy",
	"MMM dd, yyyy",
	"MMM dd, yyyy, h:mm a",
	"MMMM",
	"yyyy",
	"MMM yyyy",
	"MMM yy",
}

var formatPatterns [numFormats]*Pattern

func init() {
	for i, l := range formatLiterals {
		formatPatterns[i] = MustCompilePattern(l)
	}
}

// Formats returns all of the named formats.
func Formats() []Format {
	f := make([]Format, numFormats)
	for i := range f {
		f[i] = Format(i)
	}
	return f
}

func (f Format) valid() bool {
	return f >= 0 && f < numFormats
}

// String returns the name of the format.
func (f Format) String() string {
	if !f.valid() {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// Literal returns the LDML pattern literal for the format.
func (f Format) Literal() string {
	if !f.valid() {
		return ""
	}
	return formatLiterals[f]
}

// Pattern returns the compiled pattern for the format, or nil if f is
// not one of the named formats.
func (f Format) Pattern() *Pattern {
	if !f.valid() {
		return nil
	}
	return formatPatterns[f]
}

// ParseFormat returns the Format with the given name, the comparison
// is case insensitive.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, name) {
			return Format(i), nil
		}
	}
	return 0, fmt.Errorf("unknown format %q, expected one of: %s", name, strings.Join(formatNames[:], ", "))
}

// Set implements flag.Value.
func (f *Format) Set(v string) error {
	nf, err := ParseFormat(v)
	if err != nil {
		return err
	}
	*f = nf
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (f Format) MarshalYAML() (any, error) {
	return f.String(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (f *Format) UnmarshalYAML(value *yaml.Node) error {
	return f.Set(value.Value)
}

// DateFrom parses s using the named format and the Config's location and
// locale. It returns false if s does not match the format or f is invalid.
func (c Config) DateFrom(s string, f Format) (time.Time, bool) {
	if !f.valid() {
		return time.Time{}, false
	}
	t, err := f.Pattern().Parse(c, s)
	return t, err == nil
}

// DateFromPattern parses s using the supplied LDML pattern literal. It
// returns false if the pattern is invalid or s does not match it.
func (c Config) DateFromPattern(s, pattern string) (time.Time, bool) {
	t, err := c.ParsePattern(s, pattern)
	return t, err == nil
}

// ParsePattern is like DateFromPattern but returns an error describing
// why s failed to match, or why the pattern could not be compiled.
func (c Config) ParsePattern(s, pattern string) (time.Time, error) {
	p, err := CompilePattern(pattern)
	if err != nil {
		return time.Time{}, err
	}
	return p.Parse(c, s)
}

// StringFrom formats t using the named format and the Config's location
// and locale. An invalid format yields an empty string.
func (c Config) StringFrom(t time.Time, f Format) string {
	if !f.valid() {
		return ""
	}
	return f.Pattern().Format(c, t)
}

// FormatPattern formats t using the supplied LDML pattern literal.
func (c Config) FormatPattern(t time.Time, pattern string) (string, error) {
	p, err := CompilePattern(pattern)
	if err != nil {
		return "", err
	}
	return p.Format(c, t), nil
}

// DisplayDate formats t using USDate.
func (c Config) DisplayDate(t time.Time) string {
	return c.StringFrom(t, USDate)
}

// DisplayDateTime formats t using USDateTime, in the local time zone
// rather than the Config's if localTimeZone is true.
func (c Config) DisplayDateTime(t time.Time, localTimeZone bool) string {
	if localTimeZone {
		c.Location = time.Local
	}
	return c.StringFrom(t, USDateTime)
}

// DateFrom calls Default().DateFrom.
func DateFrom(s string, f Format) (time.Time, bool) {
	return Default().DateFrom(s, f)
}

// DateFromPattern calls Default().DateFromPattern.
func DateFromPattern(s, pattern string) (time.Time, bool) {
	return Default().DateFromPattern(s, pattern)
}

// StringFrom calls Default().StringFrom.
func StringFrom(t time.Time, f Format) string {
	return Default().StringFrom(t, f)
}
