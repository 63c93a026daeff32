// Copyright 2025 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package datehelper

import (
	"context"
	"embed"
	"fmt"
	"maps"
	"path"

	"cloudeng.io/cmdutil/cmdyaml"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Localizer maps a key, and optionally a numeric argument, to a
// localized string.
type Localizer interface {
	Localize(key string, args ...any) string
}

// LocalizerFunc adapts a function to a Localizer.
type LocalizerFunc func(key string, args ...any) string

// Localize implements Localizer.
func (f LocalizerFunc) Localize(key string, args ...any) string {
	return f(key, args...)
}

//go:embed locales/*.yaml
var localesFS embed.FS

// PhrasesSpec is the YAML representation of a phrase table.
type PhrasesSpec struct {
	Locale  string            `yaml:"locale"`
	Phrases map[string]string `yaml:"phrases"`
}

// Phrases is a Localizer backed by a table of fmt style templates, eg.
// "%d days ago", that are rendered using a message.Printer for the
// table's locale. Keys that are not in the table are returned unchanged.
type Phrases struct {
	tag     language.Tag
	printer *message.Printer
	table   map[string]string
}

// NewPhrases returns a new phrase table for tag.
func NewPhrases(tag language.Tag, table map[string]string) *Phrases {
	p := &Phrases{
		tag:     tag,
		printer: message.NewPrinter(tag),
		table:   make(map[string]string, len(table)),
	}
	maps.Copy(p.table, table)
	return p
}

var embeddedPhrases = map[language.Base]*Phrases{}

func init() {
	entries, err := localesFS.ReadDir("locales")
	if err != nil {
		panic(err)
	}
	for _, e := range entries {
		data, err := localesFS.ReadFile(path.Join("locales", e.Name()))
		if err != nil {
			panic(err)
		}
		p, err := ParsePhrases(data)
		if err != nil {
			panic(fmt.Sprintf("%v: %v", e.Name(), err))
		}
		embeddedPhrases[base(p.tag)] = p
	}
}

// PhrasesFor returns the built in phrase table for the base language of
// tag, falling back to English if there is none.
func PhrasesFor(tag language.Tag) *Phrases {
	p, ok := embeddedPhrases[base(tag)]
	if !ok {
		p = embeddedPhrases[base(language.English)]
	}
	return NewPhrases(tag, p.table)
}

// ParsePhrases parses a YAML phrase table.
func ParsePhrases(data []byte) (*Phrases, error) {
	var spec PhrasesSpec
	if err := cmdyaml.ParseConfigStrict(data, &spec); err != nil {
		return nil, err
	}
	return spec.phrases()
}

// LoadPhrases reads a YAML phrase table from filename.
func LoadPhrases(ctx context.Context, filename string) (*Phrases, error) {
	var spec PhrasesSpec
	if err := cmdyaml.ParseConfigFileStrict(ctx, filename, &spec); err != nil {
		return nil, err
	}
	return spec.phrases()
}

func (s PhrasesSpec) phrases() (*Phrases, error) {
	tag := defaultTag
	if len(s.Locale) > 0 {
		var err error
		if tag, err = language.Parse(s.Locale); err != nil {
			return nil, fmt.Errorf("invalid locale %q: %w", s.Locale, err)
		}
	}
	return NewPhrases(tag, s.Phrases), nil
}

// Locale returns the locale of the phrase table.
func (p *Phrases) Locale() language.Tag {
	return p.tag
}

// Lookup returns the template for key.
func (p *Phrases) Lookup(key string) (string, bool) {
	tpl, ok := p.table[key]
	return tpl, ok
}

// Merge returns a new phrase table containing the entries of p overridden
// by those in overrides.
func (p *Phrases) Merge(overrides map[string]string) *Phrases {
	np := NewPhrases(p.tag, p.table)
	maps.Copy(np.table, overrides)
	return np
}

// Localize implements Localizer.
func (p *Phrases) Localize(key string, args ...any) string {
	tpl, ok := p.table[key]
	if !ok {
		return key
	}
	if len(args) == 0 {
		return tpl
	}
	return p.printer.Sprintf(tpl, args...)
}
