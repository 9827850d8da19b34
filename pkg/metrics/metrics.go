// Copyright 2025 The Flint Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"reflect"

	"github.com/prometheus/client_golang/prometheus"
)

// Namespace is prefixed before every metric. If it is changed, it must be done
// before any metrics collector is registered.
const Namespace = "flint"

func NewCounter(opts CounterOpts) Counter {
	return prometheus.NewCounter(opts)
}

func NewCounterVec(opts CounterOpts, names []string) CounterMetricVector {
	return prometheus.NewCounterVec(opts, names)
}

func NewGauge(opts GaugeOpts) Gauge {
	return prometheus.NewGauge(opts)
}

func NewHistogram(opts HistogramOpts) Histogram {
	return prometheus.NewHistogram(opts)
}

func NewRegistry() MetricsRegistererGatherer {
	return prometheus.NewRegistry()
}

func MustRegister(cs ...Collector) {
	prometheus.MustRegister(cs...)
}

// PrometheusCollectorsFromFields returns the prometheus collectors found in
// the exported, initialized fields of i. It allows a component to keep its
// counters in a plain struct and expose them through a Metrics method.
func PrometheusCollectorsFromFields(i interface{}) (collectors []prometheus.Collector) {
	v := reflect.Indirect(reflect.ValueOf(i))
	for n := 0; n < v.NumField(); n++ {
		f := v.Field(n)
		if !f.CanInterface() || f.Kind() != reflect.Interface || f.IsNil() {
			continue
		}
		if u, ok := f.Interface().(prometheus.Collector); ok {
			collectors = append(collectors, u)
		}
	}
	return collectors
}
