// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import "errors"

const (
	// MaxMessageSize bounds the expanded message text in bytes.
	MaxMessageSize = 255

	// MaxFrameSize bounds the final rendered frame in bytes, decoration
	// markers included.
	MaxFrameSize = 255
)

var (
	// ErrMessageTooLong is returned when the expanded message text exceeds
	// MaxMessageSize. The sink is not invoked.
	ErrMessageTooLong = errors.New("message exceeds maximum size")

	// ErrFrameTooLong is returned when the rendered frame, timestamp, name
	// and level decoration included, exceeds MaxFrameSize. The sink is not
	// invoked.
	ErrFrameTooLong = errors.New("rendered frame exceeds maximum size")

	// ErrLevelDisabled is returned when a message is filtered by the
	// configured verbosity threshold. It signals expected control flow,
	// not a failure.
	ErrLevelDisabled = errors.New("level disabled by verbosity threshold")
)
