// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	"testing"
)

// NewTestLogger returns logger used for testing.
// This logger uses t.Log as sink for rendered frames.
func NewTestLogger(t *testing.T, opts ...Option) *Logger {
	t.Helper()

	opts = append(opts, WithSink(SinkFunc(func(frame string, _ Level) error {
		t.Log(frame)
		return nil
	})))

	return New(t.Name(), opts...)
}
