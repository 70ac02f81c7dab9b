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

func runSolve(cmd *cobra.Command, args []string) error {
	bands, rows, total := resolvedBands()
	cfg, err := lshcache.SolveBandConfig(bands, rows, total)
	if err != nil {
		return err
	}
	fmt.Printf("bands=%d rows_per_band=%d total_rows=%d\n", cfg.Bands, cfg.RowsPerBand, cfg.TotalRows)
	return nil
}
