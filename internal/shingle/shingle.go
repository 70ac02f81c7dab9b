// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package shingle turns a document (a sequence of opaque tokens) into an
// unordered collection of contiguous n-gram fingerprints.
package shingle

import (
	"errors"
	"fmt"
	"hash/fnv"
)

// ErrInvalidRange is returned by New when kMax < kMin or kMin < 1.
var ErrInvalidRange = errors.New("shingle: invalid k range")

// sentinel is the padding marker used for documents shorter than k. It is
// an unexported, zero-sized type rather than a string or integer so it can
// never collide with a real token — the open question in spec.md §9 about
// picking a value "outside the token domain" is resolved by making the
// sentinel a distinct Go type, not a distinct value of the token's type.
type sentinel struct{}

// Shingler enumerates shingles of length k in [KMin, KMax] from a document.
type Shingler struct {
	kMin, kMax int
	// Fingerprint reduces a shingle tuple to a non-negative integer mod U.
	// Defaults to a stable FNV-1a tuple hash mod U; exposed so callers can
	// substitute a shingle-id cache as the original Python implementation's
	// docstring suggests (see SPEC_FULL.md §9).
	Fingerprint func(shingle []any) uint64
	universe    uint64
}

// New constructs a Shingler covering shingle lengths [kMin, kMax] and a
// fingerprint universe of size universe (default 131071 if universe == 0).
// It rejects kMax < kMin or kMin < 1.
func New(kMin, kMax int, universe uint64) (*Shingler, error) {
	if kMin < 1 || kMax < kMin {
		return nil, fmt.Errorf("%w: kMin=%d kMax=%d", ErrInvalidRange, kMin, kMax)
	}
	if universe == 0 {
		universe = 131071
	}
	s := &Shingler{kMin: kMin, kMax: kMax, universe: universe}
	s.Fingerprint = s.defaultFingerprint
	return s, nil
}

// KMin returns the minimum shingle length.
func (s *Shingler) KMin() int { return s.kMin }

// KMax returns the maximum shingle length.
func (s *Shingler) KMax() int { return s.kMax }

// Shingles enumerates every shingle of doc for each k in [KMin, KMax], in
// k-major, j-minor order: for increasing k, the successive j-position
// windows of that k. Callers treat the result as a set; duplicates are
// permitted in the slice and are expected to collapse downstream.
//
// For a document shorter than k, a single shingle is emitted padded with
// (k - len(doc)) leading sentinels.
func (s *Shingler) Shingles(doc []any) [][]any {
	var out [][]any
	for k := s.kMin; k <= s.kMax; k++ {
		if len(doc) < k {
			shingle := make([]any, k)
			pad := k - len(doc)
			for i := 0; i < pad; i++ {
				shingle[i] = sentinel{}
			}
			copy(shingle[pad:], doc)
			out = append(out, shingle)
			continue
		}
		for j := 0; j+k <= len(doc); j++ {
			shingle := make([]any, k)
			copy(shingle, doc[j:j+k])
			out = append(out, shingle)
		}
	}
	return out
}

// Fingerprints returns the set of shingle fingerprints for doc: each
// shingle reduced via s.Fingerprint mod the configured universe size,
// deduplicated. A non-empty doc always yields at least one fingerprint
// (the Shingler always emits at least one, possibly padded, shingle per k).
func (s *Shingler) Fingerprints(doc []any) map[uint64]struct{} {
	out := make(map[uint64]struct{})
	for _, sh := range s.Shingles(doc) {
		out[s.Fingerprint(sh)%s.universe] = struct{}{}
	}
	return out
}

// UniverseCount returns Σ tokenUniverse^k for k in [KMin, KMax] — the size
// of the shingle universe implied by a token universe of the given size.
// Used by analysis harnesses only; the core never calls this.
func (s *Shingler) UniverseCount(tokenUniverse uint64) uint64 {
	var total uint64
	for k := s.kMin; k <= s.kMax; k++ {
		p := uint64(1)
		for i := 0; i < k; i++ {
			p *= tokenUniverse
		}
		total += p
	}
	return total
}

// defaultFingerprint hashes a shingle tuple with FNV-1a over each element,
// each element written as a tag byte (0 for a sentinel{}, 1 for a real
// token followed by its fmt.Sprint representation) and closed by a 0x1f
// separator. Because padding sentinels are always leading, the tag byte
// keeps a padded shingle's byte stream distinct from any unpadded one. This
// keeps the hash stable across runs (no map iteration, no pointer
// addresses) which is the portability requirement in spec.md §4.4 / §9.
func (s *Shingler) defaultFingerprint(sh []any) uint64 {
	h := fnv.New64a()
	for _, tok := range sh {
		switch v := tok.(type) {
		case sentinel:
			h.Write([]byte{0})
		default:
			h.Write([]byte{1})
			fmt.Fprintf(h, "%v", v)
		}
		h.Write([]byte{0x1f})
	}
	return h.Sum64()
}
