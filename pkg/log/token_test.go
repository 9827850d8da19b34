// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/flintlog/flint/pkg/log"
)

func TestTokenize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		format string
		want   []log.Token
	}{
		{
			name:   "no directives",
			format: "plain text, nothing to substitute",
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "plain text, nothing to substitute"},
			},
		},
		{
			name:   "escaped percent",
			format: "load %% of budget",
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "load "},
				{Kind: log.KindLiteral, Literal: "%"},
				{Kind: log.KindLiteral, Literal: " of budget"},
			},
		},
		{
			name:   "widths from repeat count",
			format: "%YYYY%YY%uuu",
			want: []log.Token{
				{Kind: log.KindYear, Width: 4},
				{Kind: log.KindYear, Width: 2},
				{Kind: log.KindMicro, Width: 3},
			},
		},
		{
			name:   "unrecognized directive passes through",
			format: "%Q%qq!",
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "%Q"},
				{Kind: log.KindLiteral, Literal: "%qq"},
				{Kind: log.KindLiteral, Literal: "!"},
			},
		},
		{
			name:   "trailing lone percent",
			format: "tail%",
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "tail"},
				{Kind: log.KindLiteral, Literal: "%"},
			},
		},
		{
			name:   "single percent",
			format: "%",
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "%"},
			},
		},
		{
			name:   "empty template",
			format: "",
			want:   nil,
		},
		{
			name:   "default format",
			format: log.DefaultFormat,
			want: []log.Token{
				{Kind: log.KindLiteral, Literal: "["},
				{Kind: log.KindYear, Width: 4},
				{Kind: log.KindLiteral, Literal: ":"},
				{Kind: log.KindMonth, Width: 2},
				{Kind: log.KindLiteral, Literal: ":"},
				{Kind: log.KindDay, Width: 2},
				{Kind: log.KindLiteral, Literal: ":"},
				{Kind: log.KindHour, Width: 2},
				{Kind: log.KindLiteral, Literal: ":"},
				{Kind: log.KindMinute, Width: 2},
				{Kind: log.KindLiteral, Literal: ":"},
				{Kind: log.KindSecond, Width: 2},
				{Kind: log.KindLiteral, Literal: "."},
				{Kind: log.KindMicro, Width: 6},
				{Kind: log.KindLiteral, Literal: "] ["},
				{Kind: log.KindName, Width: 1},
				{Kind: log.KindLiteral, Literal: "] ["},
				{Kind: log.KindLevel, Width: 1},
				{Kind: log.KindLiteral, Literal: "] - "},
				{Kind: log.KindText, Width: 1},
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := log.Tokenize(tc.format)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("Tokenize(%q) mismatch (-want +got):\n%s", tc.format, diff)
			}
		})
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	kinds := map[log.Kind]string{
		log.KindLiteral: "literal",
		log.KindYear:    "year",
		log.KindMonth:   "month",
		log.KindDay:     "day",
		log.KindHour:    "hour",
		log.KindMinute:  "minute",
		log.KindSecond:  "second",
		log.KindMicro:   "micro",
		log.KindName:    "name",
		log.KindLevel:   "level",
		log.KindText:    "text",
	}
	for kind, want := range kinds {
		if got := kind.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}
