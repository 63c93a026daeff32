// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"cloudeng.io/errors"
)

var (
	// ErrNoMatch is returned when a string does not match a pattern.
	ErrNoMatch = errors.New("text does not match pattern")
	// ErrInvalidPattern is returned for patterns that cannot be compiled.
	ErrInvalidPattern = errors.New("invalid pattern")
)

// IsNoMatch returns true if err is, or wraps, ErrNoMatch.
func IsNoMatch(err error) bool {
	return errors.Is(err, ErrNoMatch)
}

// IsInvalidPattern returns true if err is, or wraps, ErrInvalidPattern.
func IsInvalidPattern(err error) bool {
	return errors.Is(err, ErrInvalidPattern)
}

type fieldKind int

const (
	literalField fieldKind = iota
	yearField
	shortYearField
	monthField
	shortMonthNameField
	monthNameField
	dayField
	hour24Field
	hour12Field
	minuteField
	secondField
	fractionField
	dayPeriodField
	zoneField    // -0800
	isoZoneField // -08:00 or Z
)

type field struct {
	kind  fieldKind
	width int
	text  string
}

// Pattern is a compiled date format pattern using the Unicode LDML
// (CLDR) pattern letters, eg. "yyyy-MM-dd'T'HH:mm:ss.SSSZ". The supported
// letters are:
//
//	y, yyyy  year; yy two digit year
//	M, MM    numeric month; MMM abbreviated and MMMM full month name
//	d, dd    day of month
//	H, HH    hour 0-23; h, hh hour 1-12
//	m, mm    minute; s, ss second
//	S...     fractional seconds, one digit per letter
//	a        AM/PM marker
//	Z        zone offset as -0800; ZZZZZ as -08:00 or Z
//
// Two digit years resolve to 1950-2049. Years are written with a leading
// '-' when negative and with more digits than the pattern calls for when
// necessary, such years only parse back when the year is followed by a
// literal or ends the pattern. Zone offsets are written in whole minutes,
// any seconds (eg. in local mean time zones) are truncated.
//
// Text within single quotes is copied literally, two single quotes
// represent a single quote. Any other non-letter character is a literal.
// A Pattern is immutable and safe for concurrent use.
type Pattern struct {
	source string
	fields []field
}

// MustCompilePattern is like CompilePattern but panics on error.
func MustCompilePattern(p string) *Pattern {
	pat, err := CompilePattern(p)
	if err != nil {
		panic(err)
	}
	return pat
}

// CompilePattern compiles the supplied LDML pattern.
func CompilePattern(p string) (*Pattern, error) {
	pat := &Pattern{source: p}
	var lit strings.Builder
	flush := func() {
		if lit.Len() > 0 {
			pat.fields = append(pat.fields, field{kind: literalField, text: lit.String()})
			lit.Reset()
		}
	}
	for i := 0; i < len(p); {
		c := p[i]
		switch {
		case c == '\'':
			if i+1 < len(p) && p[i+1] == '\'' {
				lit.WriteByte('\'')
				i += 2
				continue
			}
			n, err := quoted(p[i+1:], &lit)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
			}
			i += n + 1
		case isLetter(c):
			n := 1
			for i+n < len(p) && p[i+n] == c {
				n++
			}
			f, err := letterField(c, n)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidPattern, p, err)
			}
			flush()
			pat.fields = append(pat.fields, f)
			i += n
		default:
			lit.WriteByte(c)
			i++
		}
	}
	flush()
	return pat, nil
}

// quoted consumes a quoted literal up to and including the closing
// quote and returns the number of bytes consumed.
func quoted(p string, lit *strings.Builder) (int, error) {
	for i := 0; i < len(p); i++ {
		if p[i] != '\'' {
			lit.WriteByte(p[i])
			continue
		}
		if i+1 < len(p) && p[i+1] == '\'' {
			lit.WriteByte('\'')
			i++
			continue
		}
		return i + 1, nil
	}
	return 0, fmt.Errorf("unterminated quote")
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func letterField(c byte, n int) (field, error) {
	switch {
	case c == 'y' && n == 2:
		return field{kind: shortYearField, width: 2}, nil
	case c == 'y':
		return field{kind: yearField, width: n}, nil
	case c == 'M' && n <= 2:
		return field{kind: monthField, width: n}, nil
	case c == 'M' && n == 3:
		return field{kind: shortMonthNameField}, nil
	case c == 'M' && n == 4:
		return field{kind: monthNameField}, nil
	case c == 'd' && n <= 2:
		return field{kind: dayField, width: n}, nil
	case c == 'H' && n <= 2:
		return field{kind: hour24Field, width: n}, nil
	case c == 'h' && n <= 2:
		return field{kind: hour12Field, width: n}, nil
	case c == 'm' && n <= 2:
		return field{kind: minuteField, width: n}, nil
	case c == 's' && n <= 2:
		return field{kind: secondField, width: n}, nil
	case c == 'S':
		return field{kind: fractionField, width: n}, nil
	case c == 'a' && n <= 3:
		return field{kind: dayPeriodField}, nil
	case c == 'Z' && n <= 3:
		return field{kind: zoneField}, nil
	case c == 'Z' && n == 5:
		return field{kind: isoZoneField}, nil
	}
	return field{}, fmt.Errorf("unsupported pattern letters: %s", strings.Repeat(string(c), n))
}

// String returns the source of the pattern.
func (p *Pattern) String() string {
	return p.source
}

// Format formats t in the Config's location using its locale for month
// and AM/PM names.
func (p *Pattern) Format(cfg Config, t time.Time) string {
	t = t.In(cfg.location())
	nm := namesFor(cfg.locale())
	var out strings.Builder
	for _, f := range p.fields {
		switch f.kind {
		case literalField:
			out.WriteString(f.text)
		case yearField:
			writeNumber(&out, t.Year(), f.width)
		case shortYearField:
			writeNumber(&out, (t.Year()%100+100)%100, 2)
		case monthField:
			writeNumber(&out, int(t.Month()), f.width)
		case shortMonthNameField:
			out.WriteString(nm.shortMonths[t.Month()-1])
		case monthNameField:
			out.WriteString(nm.months[t.Month()-1])
		case dayField:
			writeNumber(&out, t.Day(), f.width)
		case hour24Field:
			writeNumber(&out, t.Hour(), f.width)
		case hour12Field:
			h := t.Hour() % 12
			if h == 0 {
				h = 12
			}
			writeNumber(&out, h, f.width)
		case minuteField:
			writeNumber(&out, t.Minute(), f.width)
		case secondField:
			writeNumber(&out, t.Second(), f.width)
		case fractionField:
			frac := fmt.Sprintf("%09d", t.Nanosecond())
			if f.width <= len(frac) {
				out.WriteString(frac[:f.width])
			} else {
				out.WriteString(frac)
				out.WriteString(strings.Repeat("0", f.width-len(frac)))
			}
		case dayPeriodField:
			if t.Hour() < 12 {
				out.WriteString(nm.am)
			} else {
				out.WriteString(nm.pm)
			}
		case zoneField, isoZoneField:
			_, offset := t.Zone()
			writeZone(&out, offset, f.kind == isoZoneField)
		}
	}
	return out.String()
}

func writeNumber(out *strings.Builder, v, width int) {
	if v < 0 {
		out.WriteByte('-')
		v = -v
	}
	s := strconv.Itoa(v)
	for i := len(s); i < width; i++ {
		out.WriteByte('0')
	}
	out.WriteString(s)
}

func writeZone(out *strings.Builder, offset int, iso bool) {
	if iso && offset == 0 {
		out.WriteByte('Z')
		return
	}
	sign := byte('+')
	if offset < 0 {
		sign = '-'
		offset = -offset
	}
	out.WriteByte(sign)
	writeNumber(out, offset/3600, 2)
	if iso {
		out.WriteByte(':')
	}
	writeNumber(out, (offset%3600)/60, 2)
}

// parsed holds the calendar fields extracted by Parse, fields not present
// in the pattern retain the defaults of 2000-01-01 00:00:00.
type parsed struct {
	year, month, day     int
	hour, minute, second int
	nanos                int
	hour12, pm           bool
	hasZone              bool
	offset               int
}

func noMatch(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrNoMatch, fmt.Sprintf(format, args...))
}

// Parse parses s according to the pattern, interpreting it in the
// Config's location and using its locale for month and AM/PM names.
// If the pattern contains a zone offset then the instant is determined by
// that offset and the returned time is expressed in the Config's location.
// All errors returned wrap ErrNoMatch.
func (p *Pattern) Parse(cfg Config, s string) (time.Time, error) {
	nm := namesFor(cfg.locale())
	v := parsed{year: 2000, month: 1, day: 1}
	rest := s
	var err error
	for i, f := range p.fields {
		switch f.kind {
		case literalField:
			if !strings.HasPrefix(rest, f.text) {
				return time.Time{}, noMatch("%q: expected %q at offset %d", s, f.text, len(s)-len(rest))
			}
			rest = rest[len(f.text):]
		case yearField:
			v.year, rest, err = p.year(s, rest, i)
		case shortYearField:
			v.year, rest, err = digits(s, rest, 2, 2)
			if v.year >= 50 {
				v.year += 1900
			} else {
				v.year += 2000
			}
		case monthField:
			v.month, rest, err = numeric(s, rest, f.width)
		case shortMonthNameField, monthNameField:
			candidates := nm.shortMonths[:]
			if f.kind == monthNameField {
				candidates = nm.months[:]
			}
			idx, n := matchPrefix(rest, candidates)
			if idx < 0 {
				return time.Time{}, noMatch("%q: expected a month name at offset %d", s, len(s)-len(rest))
			}
			v.month, rest = idx+1, rest[n:]
		case dayField:
			v.day, rest, err = numeric(s, rest, f.width)
		case hour24Field:
			v.hour, rest, err = numeric(s, rest, f.width)
		case hour12Field:
			v.hour12 = true
			v.hour, rest, err = numeric(s, rest, f.width)
		case minuteField:
			v.minute, rest, err = numeric(s, rest, f.width)
		case secondField:
			v.second, rest, err = numeric(s, rest, f.width)
		case fractionField:
			var frac int
			frac, rest, err = digits(s, rest, f.width, f.width)
			v.nanos = scaleFraction(frac, f.width)
		case dayPeriodField:
			idx, n := matchPrefix(rest, []string{nm.am, nm.pm})
			if idx < 0 {
				return time.Time{}, noMatch("%q: expected %v or %v at offset %d", s, nm.am, nm.pm, len(s)-len(rest))
			}
			v.pm, rest = idx == 1, rest[n:]
		case zoneField, isoZoneField:
			v.hasZone = true
			v.offset, rest, err = zone(s, rest, f.kind == isoZoneField)
		}
		if err != nil {
			return time.Time{}, err
		}
	}
	if len(rest) > 0 {
		return time.Time{}, noMatch("%q: unexpected trailing text %q", s, rest)
	}
	return v.time(s, cfg.location())
}

// year parses the year field at index i. The number of digits is only
// bounded by the pattern when the next field is numeric.
func (p *Pattern) year(s, rest string, i int) (int, string, error) {
	f := p.fields[i]
	lo, hi := 1, 4
	if f.width > 1 {
		lo, hi = f.width, f.width
	}
	if i+1 == len(p.fields) || p.fields[i+1].kind == literalField {
		hi = maxYearDigits
	}
	sign := 1
	if strings.HasPrefix(rest, "-") {
		sign, rest = -1, rest[1:]
	}
	year, rest, err := digits(s, rest, lo, hi)
	return sign * year, rest, err
}

const maxYearDigits = 9

func (v parsed) time(s string, loc *time.Location) (time.Time, error) {
	if v.month < 1 || v.month > 12 {
		return time.Time{}, noMatch("%q: invalid month: %d", s, v.month)
	}
	if v.day < 1 || v.day > DaysInMonth(v.year, time.Month(v.month)) {
		return time.Time{}, noMatch("%q: invalid day for %v: %d", s, time.Month(v.month), v.day)
	}
	hour := v.hour
	if v.hour12 {
		if hour < 1 || hour > 12 {
			return time.Time{}, noMatch("%q: invalid hour: %d", s, hour)
		}
		hour %= 12
		if v.pm {
			hour += 12
		}
	} else if hour > 23 {
		return time.Time{}, noMatch("%q: invalid hour: %d", s, hour)
	}
	if v.minute > 59 {
		return time.Time{}, noMatch("%q: invalid minute: %d", s, v.minute)
	}
	if v.second > 59 {
		return time.Time{}, noMatch("%q: invalid second: %d", s, v.second)
	}
	if v.hasZone {
		zl := time.FixedZone("", v.offset)
		return time.Date(v.year, time.Month(v.month), v.day, hour, v.minute, v.second, v.nanos, zl).In(loc), nil
	}
	return time.Date(v.year, time.Month(v.month), v.day, hour, v.minute, v.second, v.nanos, loc), nil
}

// numeric parses a numeric field, single letter fields accept one or
// two digits, others exactly width digits.
func numeric(s, rest string, width int) (int, string, error) {
	if width == 1 {
		return digits(s, rest, 1, 2)
	}
	return digits(s, rest, width, width)
}

func digits(s, rest string, lo, hi int) (int, string, error) {
	n := 0
	for n < len(rest) && n < hi && rest[n] >= '0' && rest[n] <= '9' {
		n++
	}
	if n < lo {
		return 0, rest, noMatch("%q: expected %d digits at offset %d", s, lo, len(s)-len(rest))
	}
	v, err := strconv.Atoi(rest[:n])
	if err != nil {
		return 0, rest, noMatch("%q: %v", s, err)
	}
	return v, rest[n:], nil
}

func scaleFraction(frac, width int) int {
	for ; width < 9; width++ {
		frac *= 10
	}
	for ; width > 9; width-- {
		frac /= 10
	}
	return frac
}

func zone(s, rest string, iso bool) (int, string, error) {
	if strings.HasPrefix(rest, "Z") {
		return 0, rest[1:], nil
	}
	if len(rest) == 0 || (rest[0] != '+' && rest[0] != '-') {
		return 0, rest, noMatch("%q: expected a zone offset at offset %d", s, len(s)-len(rest))
	}
	sign := 1
	if rest[0] == '-' {
		sign = -1
	}
	hours, r, err := digits(s, rest[1:], 2, 2)
	if err != nil {
		return 0, rest, err
	}
	if iso {
		if !strings.HasPrefix(r, ":") {
			return 0, rest, noMatch("%q: expected ':' in zone offset", s)
		}
		r = r[1:]
	}
	minutes, r, err := digits(s, r, 2, 2)
	if err != nil {
		return 0, rest, err
	}
	if hours > 23 || minutes > 59 {
		return 0, rest, noMatch("%q: invalid zone offset", s)
	}
	return sign * (hours*3600 + minutes*60), r, nil
}
