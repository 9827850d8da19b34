// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	dto "github.com/prometheus/client_model/go"
)

// Prometheus Vector type interfaces
type (
	MetricsCollector interface {
		Metrics() []prometheus.Collector
	}

	GaugeMetricVector interface {
		WithLabelValues(lvs ...string) Gauge
	}

	CounterMetricVector interface {
		WithLabelValues(lvs ...string) Counter
	}

	MetricsRegistererGatherer interface {
		Gather() ([]*MetricFamily, error)
		MetricsRegisterer
	}

	MetricsRegisterer interface {
		MustRegister(...Collector)
		Register(Collector) error
		Unregister(Collector) bool
	}
)

// Prometheus types aliases
type (
	Collector = prometheus.Collector
	Registry  = prometheus.Registry
	Labels    = prometheus.Labels
	Metric    = prometheus.Metric
	Desc      = prometheus.Desc

	Counter     = prometheus.Counter
	CounterOpts = prometheus.CounterOpts
	CounterVec  = CounterMetricVector

	Gauge     = prometheus.Gauge
	GaugeVec  = GaugeMetricVector
	GaugeOpts = prometheus.GaugeOpts

	Histogram     = prometheus.Histogram
	HistogramOpts = prometheus.HistogramOpts

	MetricFamily = dto.MetricFamily
)
