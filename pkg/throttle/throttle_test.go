// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package throttle_test

import (
	"testing"

	"github.com/flintlog/flint/pkg/throttle"
)

func TestAllowFirstEmission(t *testing.T) {
	r := throttle.New()

	if !r.Allow("boot", 0, 1_000_000) {
		t.Fatal("first emission for a key must be allowed")
	}
	if !r.Allow("sensor", 0, 1_000_000) {
		t.Fatal("keys must be tracked independently")
	}
}

func TestAllowInterval(t *testing.T) {
	const interval = 1_000_000

	r := throttle.New()

	if !r.Allow("k", 0, interval) {
		t.Fatal("want first emission allowed")
	}
	if r.Allow("k", 500_000, interval) {
		t.Fatal("want emission inside the interval suppressed")
	}
	if !r.Allow("k", 1_500_001, interval) {
		t.Fatal("want emission after the interval allowed")
	}
}

func TestAllowBoundaryIsSuppressed(t *testing.T) {
	const interval = 1_000_000

	r := throttle.New()

	if !r.Allow("k", 0, interval) {
		t.Fatal("want first emission allowed")
	}
	if r.Allow("k", interval, interval) {
		t.Fatal("want emission exactly at the boundary suppressed")
	}
	if !r.Allow("k", interval+1, interval) {
		t.Fatal("want emission one microsecond past the boundary allowed")
	}
}

func TestDenyLeavesRegistryUnchanged(t *testing.T) {
	const interval = 1_000_000

	r := throttle.New()

	if !r.Allow("k", 0, interval) {
		t.Fatal("want first emission allowed")
	}
	// Repeated denied calls must not push the window forward.
	for now := int64(400_000); now <= interval; now += 200_000 {
		if r.Allow("k", now, interval) {
			t.Fatalf("want emission at %d suppressed", now)
		}
	}
	if !r.Allow("k", interval+1, interval) {
		t.Fatal("denied calls must not update the last emission instant")
	}
}

func TestClear(t *testing.T) {
	const interval = 1_000_000

	r := throttle.New()

	if !r.Allow("k", 0, interval) {
		t.Fatal("want first emission allowed")
	}
	r.Clear("k")
	if !r.Allow("k", 1, interval) {
		t.Fatal("want emission after Clear allowed")
	}
}

func TestLen(t *testing.T) {
	r := throttle.New()

	if got := r.Len(); got != 0 {
		t.Fatalf("got %d keys, want 0", got)
	}

	r.Allow("a", 0, 1)
	r.Allow("b", 0, 1)
	r.Allow("a", 500, 1) // allowed again, same key

	if got := r.Len(); got != 2 {
		t.Fatalf("got %d keys, want 2", got)
	}

	r.Clear("a")
	if got := r.Len(); got != 1 {
		t.Fatalf("got %d keys, want 1", got)
	}
}
