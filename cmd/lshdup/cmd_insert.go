// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"net/http"

	"github.com/aleutianai/lshdup/internal/lshcache"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
)

var flagMetricsAddr string

func init() {
	insertCmd.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "if set, serve /metrics on this address after processing (e.g. :9090)")
}

func runInsert(cmd *cobra.Command, args []string) error {
	log := newLogger()
	docs, err := readDocs(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	opts, err := buildCacheOptions(false, lshcache.DupSet)
	if err != nil {
		return err
	}
	reg := prometheus.NewRegistry()
	opts.Metrics = lshcache.NewMetrics(reg)

	cache, err := lshcache.New(opts)
	if err != nil {
		return err
	}

	log.Info("inserting documents", "count", len(docs))
	for i, doc := range docs {
		r, err := cache.Insert(doc, nil)
		if err != nil {
			return err
		}
		dups := r.(map[int]struct{})
		if len(dups) == 0 {
			fmt.Printf("%d: no candidates\n", i)
			continue
		}
		fmt.Printf("%d: candidates=%v\n", i, sortedKeys(dups))
	}

	if flagMetricsAddr != "" {
		log.Info("serving metrics", "addr", flagMetricsAddr)
		http.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		return http.ListenAndServe(flagMetricsAddr, nil)
	}
	return nil
}

func sortedKeys(m map[int]struct{}) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && out[j-1] > out[j]; j-- {
			out[j-1], out[j] = out[j], out[j-1]
		}
	}
	return out
}
