// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

// bandKeys partitions a length-n signature into bands keys, one per band
// of rowsPerBand rows, using a portable 64-bit FNV-1a-style finalizer over
// the row values — stable across runs for equal inputs, matching the
// teacher's hashBand mixing in streaming/lsh.go. No cryptographic property
// is required (spec.md §4.4).
func bandKeys(sig []uint64, bands, rowsPerBand int) []uint64 {
	keys := make([]uint64, bands)
	for i := 0; i < bands; i++ {
		start := i * rowsPerBand
		end := start + rowsPerBand
		if end > len(sig) {
			end = len(sig)
		}

		var h uint64 = 0xcbf29ce484222325 // FNV-1a 64-bit offset basis
		for _, v := range sig[start:end] {
			h ^= v
			h *= 0x100000001b3 // FNV-1a 64-bit prime
		}
		keys[i] = h
	}
	return keys
}
