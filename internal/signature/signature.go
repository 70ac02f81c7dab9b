// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package signature folds a shingle fingerprint set into a fixed-width
// MinHash signature using a hashfamily.Family.
package signature

import "math"

// Sentinel is the signature value for a position no shingle ever touched.
// Used as the fixed-length all-sentinel signature for an empty shingle set.
const Sentinel = math.MaxUint64

// Hasher is the subset of hashfamily.Family the builder needs, kept narrow
// so tests can substitute a fake family without constructing a real one.
type Hasher interface {
	NumHashes() int
	HashAll(x uint64) []uint64
}

// Build computes the n-wide MinHash signature of a shingle fingerprint set,
// where n == family.NumHashes(). Position i holds the minimum, over every
// fingerprint x in shingles, of family.HashAll(x)[i] mod universe. An empty
// shingle set yields the all-Sentinel signature, which by construction
// collides only with the signature of another empty shingle set.
func Build(shingles map[uint64]struct{}, family Hasher, universe uint64) []uint64 {
	n := family.NumHashes()
	sig := make([]uint64, n)
	for i := range sig {
		sig[i] = Sentinel
	}

	for x := range shingles {
		hashes := family.HashAll(x)
		for i, h := range hashes {
			h %= universe
			if h < sig[i] {
				sig[i] = h
			}
		}
	}
	return sig
}
