// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"strconv"
	"strings"
)

// renderFrame walks the token sequence and substitutes the runtime values,
// producing the single output line handed to the sink. The assembled frame,
// decoration markers included, must not exceed MaxFrameSize or the call
// fails with ErrFrameTooLong.
func renderFrame(tokens []Token, styles *Styles, name string, level Level, label string, ts Timestamp, msg string) (string, error) {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.Kind {
		case KindLiteral:
			b.WriteString(tok.Literal)
		case KindYear:
			year := ts.Year
			if tok.Width == 2 {
				year %= 100
			}
			writeStyled(&b, styles.Field, pad(year, tok.Width))
		case KindMonth:
			writeStyled(&b, styles.Field, pad(ts.Month, tok.Width))
		case KindDay:
			writeStyled(&b, styles.Field, pad(ts.Day, tok.Width))
		case KindHour:
			writeStyled(&b, styles.Field, pad(ts.Hour, tok.Width))
		case KindMinute:
			writeStyled(&b, styles.Field, pad(ts.Minute, tok.Width))
		case KindSecond:
			writeStyled(&b, styles.Field, pad(ts.Second, tok.Width))
		case KindMicro:
			writeStyled(&b, styles.Field, pad(truncMicro(ts.Micro, tok.Width), tok.Width))
		case KindName:
			writeStyled(&b, styles.Field, name)
		case KindLevel:
			writeStyled(&b, styles.level(level), label)
		case KindText:
			writeStyled(&b, styles.Text, msg)
		}
	}
	if b.Len() > MaxFrameSize {
		return "", ErrFrameTooLong
	}
	return b.String(), nil
}

// writeStyled appends s wrapped in the style's decoration markers.
func writeStyled(b *strings.Builder, st Style, s string) {
	b.WriteString(st.Prefix)
	b.WriteString(s)
	b.WriteString(st.Suffix)
}

// pad converts v to decimal and left-pads it with zeros to width digits.
// Values that already need more digits are kept whole.
func pad(v, width int) string {
	s := strconv.Itoa(v)
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

// truncMicro drops the low-order digits of a six-digit microsecond value,
// keeping the width most significant ones. Truncation divides, it never
// rounds.
func truncMicro(micro, width int) int {
	const digits = 6
	for n := width; n < digits; n++ {
		micro /= 10
	}
	return micro
}
