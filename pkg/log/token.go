// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

// DefaultFormat is the format template used when none is configured.
const DefaultFormat = "[%YYYY:%MM:%DD:%hh:%mm:%ss.%uuuuuu] [%N] [%L] - %T"

// Kind identifies what a Token renders into.
type Kind uint8

const (
	// KindLiteral renders the token's stored text verbatim.
	KindLiteral Kind = iota
	// KindYear renders the timestamp year.
	KindYear
	// KindMonth renders the timestamp month.
	KindMonth
	// KindDay renders the timestamp day.
	KindDay
	// KindHour renders the timestamp hour.
	KindHour
	// KindMinute renders the timestamp minute.
	KindMinute
	// KindSecond renders the timestamp second.
	KindSecond
	// KindMicro renders the timestamp microseconds.
	KindMicro
	// KindName renders the logger name.
	KindName
	// KindLevel renders the severity label.
	KindLevel
	// KindText renders the message text.
	KindText
)

// String implements the fmt.Stringer interface.
func (k Kind) String() string {
	switch k {
	case KindLiteral:
		return "literal"
	case KindYear:
		return "year"
	case KindMonth:
		return "month"
	case KindDay:
		return "day"
	case KindHour:
		return "hour"
	case KindMinute:
		return "minute"
	case KindSecond:
		return "second"
	case KindMicro:
		return "micro"
	case KindName:
		return "name"
	case KindLevel:
		return "level"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Token is one element of a tokenized format template. Width is the repeat
// count of the directive character; it controls zero-padding of numeric
// fields and truncation of sub-second digits and has no meaning for the
// Literal, Name, Level and Text kinds. Tokens are immutable once produced.
type Token struct {
	Kind    Kind
	Width   int
	Literal string
}

// directives maps a directive character to the token kind it produces.
var directives = map[byte]Kind{
	'Y': KindYear,
	'M': KindMonth,
	'D': KindDay,
	'h': KindHour,
	'm': KindMinute,
	's': KindSecond,
	'u': KindMicro,
	'N': KindName,
	'L': KindLevel,
	'T': KindText,
}

// Tokenize parses a format template into its ordered token sequence.
// It is deterministic and total: unrecognized directives pass through as
// literal text instead of failing, '%%' produces a literal percent sign and
// a trailing lone '%' is consumed as ordinary text.
func Tokenize(format string) []Token {
	var tokens []Token
	for i := 0; i < len(format); {
		if format[i] == '%' && i+1 < len(format) {
			if format[i+1] == '%' {
				tokens = append(tokens, Token{Kind: KindLiteral, Literal: "%"})
				i += 2
				continue
			}

			c := format[i+1]
			j := i + 1
			for j < len(format) && format[j] == c {
				j++
			}

			if kind, ok := directives[c]; ok {
				tokens = append(tokens, Token{Kind: kind, Width: j - i - 1})
			} else {
				tokens = append(tokens, Token{Kind: KindLiteral, Literal: format[i:j]})
			}
			i = j
			continue
		}

		start := i
		i++
		for i < len(format) && format[i] != '%' {
			i++
		}
		tokens = append(tokens, Token{Kind: KindLiteral, Literal: format[start:i]})
	}
	return tokens
}
