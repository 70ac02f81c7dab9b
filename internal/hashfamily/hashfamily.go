// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package hashfamily provides deterministic, seeded families of
// near-permutation hash functions used by MinHash signature computation.
//
// Two variants are provided, mirroring the two constructions described in
// Mining of Massive Datasets §3.3.5:
//
//   - Family: XOR-mask, cheap, relies on the input already being well mixed.
//   - Family: multiplicative (a*(x>>4) + b*x + c), stronger mixing for
//     low-entropy inputs.
//
// Both are built from a single seeded *rand.Rand at construction time and
// never touch global state, so two families built from the same seed and
// the same (numHashes, universeSize) produce identical sequences forever.
package hashfamily

import "math/rand"

// Kind selects which hash family variant to construct.
type Kind int

const (
	// XOR draws numHashes random 32-bit masks and XORs them with the input.
	XOR Kind = iota
	// Multiply draws numHashes random (a, b, c) triples and evaluates
	// a*(x>>4) + b*x + c.
	Multiply
)

// Family produces numHashes deterministic pseudo-random hash values for a
// given integer key. All outputs are realized lazily via HashAll; nothing
// is cached across calls because the per-hash parameters drawn at
// construction already make every call reproducible.
type Family struct {
	kind      Kind
	numHashes int
	// masks holds the XOR variant's per-hash 32-bit masks.
	masks []uint64
	// coeffs holds the Multiply variant's per-hash (a, b, c) triples,
	// flattened as coeffs[3*i:3*i+3].
	coeffs []uint64
}

// New constructs a Family of the given kind with numHashes hash functions
// over a universe of size universeSize, seeded from seed. The draw order is
// fixed: one mask (XOR) or one (a, b, c) triple (Multiply) per hash index,
// in order, each drawn as an unsigned integer from the seeded RNG — this is
// required for bit-for-bit reproducibility across runs and implementations
// that choose to match it.
func New(kind Kind, numHashes, universeSize int, seed int64) *Family {
	rng := rand.New(rand.NewSource(seed))
	f := &Family{kind: kind, numHashes: numHashes}

	switch kind {
	case Multiply:
		f.coeffs = make([]uint64, numHashes*3)
		for i := 0; i < numHashes; i++ {
			f.coeffs[i*3] = uint64(rng.Intn(universeSize) + 1)
			f.coeffs[i*3+1] = uint64(rng.Intn(universeSize) + 1)
			f.coeffs[i*3+2] = uint64(rng.Intn(universeSize) + 1)
		}
	default:
		f.kind = XOR
		f.masks = make([]uint64, numHashes)
		for i := 0; i < numHashes; i++ {
			f.masks[i] = uint64(rng.Uint32())
		}
	}
	return f
}

// NumHashes returns the configured signature width of this family.
func (f *Family) NumHashes() int {
	return f.numHashes
}

// HashAll returns the numHashes hash values of x, one per hash function, in
// hash-index order. The values are not reduced modulo any universe size;
// callers apply that reduction (SignatureBuilder does so immediately after
// each value, per spec).
func (f *Family) HashAll(x uint64) []uint64 {
	out := make([]uint64, f.numHashes)
	switch f.kind {
	case Multiply:
		trimmed := x
		for i := 0; i < f.numHashes; i++ {
			a, b, c := f.coeffs[i*3], f.coeffs[i*3+1], f.coeffs[i*3+2]
			out[i] = a*(trimmed>>4) + b*trimmed + c
		}
	default:
		trimmed := x & 0xffffffff
		for i := 0; i < f.numHashes; i++ {
			out[i] = trimmed ^ f.masks[i]
		}
	}
	return out
}
