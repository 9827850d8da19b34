// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "time"

// ClockFunc supplies the current wall-clock reading. It is a borrowed
// collaborator that must outlive the logger. Ports without an OS clock can
// assemble the reading from RTC registers with time.Date. Readings must be
// monotonically non-decreasing for throttling to behave; this is not
// enforced.
type ClockFunc func() time.Time

// Timestamp is a wall-clock reading decomposed into the fields the renderer
// substitutes into a frame. Micro holds the microseconds within the current
// second, in the range [0, 1e6).
type Timestamp struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
	Micro  int
}

// TimestampOf decomposes the given time.
func TimestampOf(t time.Time) Timestamp {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return Timestamp{
		Year:   year,
		Month:  int(month),
		Day:    day,
		Hour:   hour,
		Minute: min,
		Second: sec,
		Micro:  t.Nanosecond() / int(time.Microsecond),
	}
}
