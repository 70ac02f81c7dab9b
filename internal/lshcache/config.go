// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

import "math"

// BandConfig is a resolved (b, r, n) triple satisfying b*r == n.
type BandConfig struct {
	Bands       int
	RowsPerBand int
	TotalRows   int
}

// SolveBandConfig resolves (bands, rowsPerBand, totalRows) from whatever
// subset is given (via non-nil pointers), following spec.md §4.5's
// configuration solver:
//
//   - none given: default to (b=20, r=5, n=100).
//   - only n given: factor n as (b, r) with b the largest integer <= sqrt(n)
//     that divides n, r = n/b. Fails if n is prime (no b > 1 divides it).
//   - n and exactly one of (b, r): the other is n / given, fails if not exact.
//   - b and r only: n = b*r.
//   - all three: verified b*r == n, else fails.
func SolveBandConfig(bands, rowsPerBand, totalRows *int) (BandConfig, error) {
	switch {
	case bands == nil && rowsPerBand == nil && totalRows == nil:
		return BandConfig{Bands: 20, RowsPerBand: 5, TotalRows: 100}, nil

	case totalRows == nil:
		if bands == nil || rowsPerBand == nil {
			return BandConfig{}, newError("SolveBandConfig", ErrConfig)
		}
		return BandConfig{Bands: *bands, RowsPerBand: *rowsPerBand, TotalRows: *bands * *rowsPerBand}, nil

	case bands == nil && rowsPerBand == nil:
		n := *totalRows
		for b := int(math.Sqrt(float64(n))); b > 1; b-- {
			if n%b == 0 {
				return BandConfig{Bands: b, RowsPerBand: n / b, TotalRows: n}, nil
			}
		}
		return BandConfig{}, newError("SolveBandConfig", ErrConfig)

	case bands == nil:
		n, r := *totalRows, *rowsPerBand
		if r == 0 || n%r != 0 {
			return BandConfig{}, newError("SolveBandConfig", ErrConfig)
		}
		return BandConfig{Bands: n / r, RowsPerBand: r, TotalRows: n}, nil

	case rowsPerBand == nil:
		n, b := *totalRows, *bands
		if b == 0 || n%b != 0 {
			return BandConfig{}, newError("SolveBandConfig", ErrConfig)
		}
		return BandConfig{Bands: b, RowsPerBand: n / b, TotalRows: n}, nil

	default:
		if (*bands)*(*rowsPerBand) != *totalRows {
			return BandConfig{}, newError("SolveBandConfig", ErrConfig)
		}
		return BandConfig{Bands: *bands, RowsPerBand: *rowsPerBand, TotalRows: *totalRows}, nil
	}
}

// Int is a convenience constructor for the *int-valued SolveBandConfig
// arguments, since Go has no inline &int literal.
func Int(v int) *int {
	return &v
}
