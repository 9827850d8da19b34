// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package log

import (
	m "github.com/flintlog/flint/pkg/metrics"
)

// metrics groups various metrics counters for statistical reasons.
type metrics struct {
	EmittedCount    m.Counter
	FilteredCount   m.Counter
	SuppressedCount m.Counter
	OversizeCount   m.Counter
}

// newMetrics returns a new metrics instance ready to use. The logger name
// is attached as a constant label so multiple loggers stay distinguishable.
func newMetrics(name string) metrics {
	const subsystem = "log"

	labels := m.Labels{"name": name}

	return metrics{
		EmittedCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "emitted_count",
			Help:        "Number of frames handed to the sink.",
			ConstLabels: labels,
		}),
		FilteredCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "filtered_count",
			Help:        "Number of messages rejected by the verbosity threshold.",
			ConstLabels: labels,
		}),
		SuppressedCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "suppressed_count",
			Help:        "Number of messages dropped by throttling.",
			ConstLabels: labels,
		}),
		OversizeCount: m.NewCounter(m.CounterOpts{
			Namespace:   m.Namespace,
			Subsystem:   subsystem,
			Name:        "oversize_count",
			Help:        "Number of messages refused by a length bound.",
			ConstLabels: labels,
		}),
	}
}

// Metrics returns the logger's prometheus collectors.
// Registration is left to the embedding program.
func (l *Logger) Metrics() []m.Collector {
	return m.PrometheusCollectorsFromFields(l.metrics)
}
