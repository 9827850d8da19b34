// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v2"
)

// Style wraps a rendered field in decoration markers, typically ANSI SGR
// sequences. The zero value leaves the field undecorated.
type Style struct {
	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`
}

// Styles is the decoration table applied per token kind. Decoration markers
// are treated as ordinary characters: they count toward MaxFrameSize. The
// zero value renders plain frames.
type Styles struct {
	// Field decorates the timestamp fields and the logger name.
	Field Style `yaml:"field"`

	// Text decorates the message text.
	Text Style `yaml:"text"`

	// Levels decorates the severity label, keyed by Level.String().
	Levels map[string]Style `yaml:"levels"`
}

// level returns the decoration for the given severity's label.
func (s *Styles) level(l Level) Style {
	if s.Levels == nil {
		return Style{}
	}
	return s.Levels[l.String()]
}

const (
	sgrReset         = "\x1b[0m"
	sgrBrightRed     = "\x1b[1;91m"
	sgrBrightGreen   = "\x1b[1;92m"
	sgrBrightYellow  = "\x1b[1;93m"
	sgrBrightBlue    = "\x1b[1;94m"
	sgrBrightMagenta = "\x1b[1;95m"
	sgrBrightCyan    = "\x1b[1;96m"
	sgrBrightWhite   = "\x1b[1;97m"
)

// DefaultStyles returns the standard terminal palette: bright white
// timestamp and name fields and one color per severity label.
func DefaultStyles() *Styles {
	return &Styles{
		Field: Style{Prefix: sgrBrightWhite, Suffix: sgrReset},
		Text:  Style{Prefix: sgrReset},
		Levels: map[string]Style{
			LevelAlert.String():    {Prefix: sgrBrightRed, Suffix: sgrReset},
			LevelCritical.String(): {Prefix: sgrBrightMagenta, Suffix: sgrReset},
			LevelError.String():    {Prefix: sgrBrightRed, Suffix: sgrReset},
			LevelWarning.String():  {Prefix: sgrBrightYellow, Suffix: sgrReset},
			LevelNotice.String():   {Prefix: sgrBrightCyan, Suffix: sgrReset},
			LevelInfo.String():     {Prefix: sgrBrightGreen, Suffix: sgrReset},
			LevelDebug.String():    {Prefix: sgrBrightBlue, Suffix: sgrReset},
			LevelTrace.String():    {Prefix: sgrBrightWhite, Suffix: sgrReset},
		},
	}
}

// LoadStyles reads a Styles table from YAML.
func LoadStyles(r io.Reader) (*Styles, error) {
	var s Styles
	if err := yaml.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode styles: %w", err)
	}
	return &s, nil
}
