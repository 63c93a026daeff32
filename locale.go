// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"strings"

	"golang.org/x/text/language"
)

// names holds the locale specific month and day period names.
type names struct {
	months      [12]string
	shortMonths [12]string
	am, pm      string
}

var englishNames = &names{
	months:      [12]string{"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	shortMonths: [12]string{"Jan", "Feb", "Mar", "Apr", "May", "Jun", "Jul", "Aug", "Sep", "Oct", "Nov", "Dec"},
	am:          "AM",
	pm:          "PM",
}

var localeNames = map[language.Base]*names{
	base(language.English): englishNames,
	base(language.German): {
		months:      [12]string{"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
		shortMonths: [12]string{"Jan.", "Feb.", "März", "Apr.", "Mai", "Juni", "Juli", "Aug.", "Sept.", "Okt.", "Nov.", "Dez."},
		am:          "AM",
		pm:          "PM",
	},
	base(language.French): {
		months:      [12]string{"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
		shortMonths: [12]string{"janv.", "févr.", "mars", "avr.", "mai", "juin", "juil.", "août", "sept.", "oct.", "nov.", "déc."},
		am:          "AM",
		pm:          "PM",
	},
	base(language.Spanish): {
		months:      [12]string{"enero", "febrero", "marzo", "abril", "mayo", "junio", "julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre"},
		shortMonths: [12]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"},
		am:          "a. m.",
		pm:          "p. m.",
	},
}

func base(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}

// namesFor returns the names for the base language of tag, falling back
// to English.
func namesFor(tag language.Tag) *names {
	if n, ok := localeNames[base(tag)]; ok {
		return n
	}
	return englishNames
}

// matchPrefix returns the index of the longest entry in candidates that
// is a case insensitive prefix of s together with its length in bytes.
func matchPrefix(s string, candidates []string) (int, int) {
	idx, n := -1, 0
	for i, c := range candidates {
		if len(c) <= n || len(c) > len(s) {
			continue
		}
		if strings.EqualFold(s[:len(c)], c) {
			idx, n = i, len(c)
		}
	}
	return idx, n
}
