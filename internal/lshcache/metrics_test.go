// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestMetrics_InsertIncrementsCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)

	c, err := New(Options{
		Bands: Int(20), RowsPerBand: Int(5), KMin: 2, KMax: 2, Seed: 1,
		Accumulator: DupSet, Metrics: m,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Insert(words(corpus[0]), nil); err != nil {
		t.Fatal(err)
	}
	if _, err := c.Insert(words(corpus[0]), nil); err != nil {
		t.Fatal(err)
	}

	if got := testutil.ToFloat64(m.inserts); got != 2 {
		t.Errorf("expected 2 inserts recorded, got %v", got)
	}
	if got := testutil.ToFloat64(m.bucketsTouched); got != 40 {
		t.Errorf("expected 40 buckets touched (2 inserts * 20 bands), got %v", got)
	}
}

func TestNewMetrics_NilIsSafe(t *testing.T) {
	c, err := New(Options{Bands: Int(20), RowsPerBand: Int(5), KMin: 2, KMax: 2, Seed: 1})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Insert(words(corpus[0]), nil); err != nil {
		t.Fatalf("insert with nil metrics must not panic: %v", err)
	}
}
