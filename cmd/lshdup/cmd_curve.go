// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/aleutianai/lshdup/internal/lshcache"
	"github.com/spf13/cobra"
)

func runCurve(cmd *cobra.Command, args []string) error {
	bands, rows, total := resolvedBands()
	cache, err := lshcache.New(lshcache.Options{Bands: bands, RowsPerBand: rows, TotalRows: total})
	if err != nil {
		return err
	}

	fmt.Printf("bands=%d rows_per_band=%d\n", cache.Bands(), cache.RowsPerBand())
	fmt.Printf("| %10s | %10s |\n", "similarity", "p(found)")
	for i := 0; i <= 20; i++ {
		s := float64(i) / 20
		fmt.Printf("| %10.2f | %10.4f |\n", s, cache.TheoreticalPercentFound(s))
	}
	return nil
}
