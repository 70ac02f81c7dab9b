// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exposes a Cache's operational counters to a Prometheus
// registry. It is optional: a Cache built without one (Options.Metrics
// left nil) runs with zero instrumentation overhead.
type Metrics struct {
	inserts           prometheus.Counter
	candidatesemitted prometheus.Counter
	bucketsTouched    prometheus.Counter
}

// NewMetrics registers lshdup's counters on reg and returns a Metrics
// ready to pass as Options.Metrics. Pass prometheus.DefaultRegisterer for
// process-wide metrics, or a fresh prometheus.NewRegistry() to scope
// metrics to one Cache (tests, multiple indexes in one process).
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		inserts: factory.NewCounter(prometheus.CounterOpts{
			Name: "lshdup_inserts_total",
			Help: "Total number of documents inserted into the LSH cache.",
		}),
		candidatesemitted: factory.NewCounter(prometheus.CounterOpts{
			Name: "lshdup_candidates_returned_total",
			Help: "Total number of candidate duplicate ids returned across all inserts and lookups.",
		}),
		bucketsTouched: factory.NewCounter(prometheus.CounterOpts{
			Name: "lshdup_buckets_total",
			Help: "Total number of band buckets read or written across all inserts and lookups.",
		}),
	}
}

func (m *Metrics) observeInsert(bucketsTouched, candidates int) {
	if m == nil {
		return
	}
	m.inserts.Inc()
	m.bucketsTouched.Add(float64(bucketsTouched))
	m.candidatesemitted.Add(float64(candidates))
}

func (m *Metrics) observeLookup(bucketsTouched, candidates int) {
	if m == nil {
		return
	}
	m.bucketsTouched.Add(float64(bucketsTouched))
	m.candidatesemitted.Add(float64(candidates))
}
