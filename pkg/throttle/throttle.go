// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package throttle provides a mechanism to rate limit repeated log emissions
// based on a string key and a minimum interval between permitted emissions.
// Under the hood, it's a map of the last permitted emission instant per key.
package throttle

import "sync"

// Registry tracks the last permitted emission instant for each key.
// Instants are expressed in microseconds since an arbitrary epoch; callers
// must supply readings from a monotonically non-decreasing clock.
type Registry struct {
	mux  sync.Mutex
	last map[string]int64
}

// New returns a new empty Registry.
func New() *Registry {
	return &Registry{
		last: make(map[string]int64),
	}
}

// Allow reports whether an emission for 'key' may proceed at 'nowMicros'.
// A key that has never been permitted before is always allowed. Otherwise
// the emission is allowed only when strictly more than 'minIntervalMicros'
// has elapsed since the last permitted emission; a call exactly at the
// boundary is suppressed. On an allow, 'nowMicros' is recorded as the key's
// last emission instant; on a deny, the registry is left unchanged.
func (r *Registry) Allow(key string, nowMicros, minIntervalMicros int64) bool {
	r.mux.Lock()
	defer r.mux.Unlock()

	last, ok := r.last[key]
	if ok && nowMicros-last <= minIntervalMicros {
		return false
	}

	r.last[key] = nowMicros
	return true
}

// Clear forgets the last emission instant that belongs to 'key'.
func (r *Registry) Clear(key string) {
	r.mux.Lock()
	defer r.mux.Unlock()

	delete(r.last, key)
}

// Len returns the number of tracked keys.
func (r *Registry) Len() int {
	r.mux.Lock()
	defer r.mux.Unlock()

	return len(r.last)
}
