// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package lshcache implements the banded LSH cache described in spec.md
// §4.5: it owns the bucket tables, the seen-set, id allocation, and the
// accumulator abstraction that decides what Insert returns. It is the
// single entry point document insertion and lookup go through; Shingler,
// hashfamily.Family, and signature.Build are internal collaborators it
// owns and drives. Only the Shingler is exposed to callers, read-only,
// through the Shingler accessor.
//
// This package is synchronous and holds no locks: per spec.md §5, a Cache
// must not be shared across goroutines without external synchronization.
package lshcache

import (
	"github.com/aleutianai/lshdup/internal/hashfamily"
	"github.com/aleutianai/lshdup/internal/shingle"
	"github.com/aleutianai/lshdup/internal/signature"
)

// Options configures a new Cache. Zero-value fields fall back to spec
// defaults: (b=20, r=5, n=100), universe size 131071, Multiply family,
// shingle length 2, DupSet accumulator, signatures not stored.
type Options struct {
	Bands, RowsPerBand, TotalRows *int // fed to SolveBandConfig as-is

	UniverseSize uint64           // default 131071
	MinHashKind  *hashfamily.Kind // default hashfamily.Multiply, matching the original LSHCache's minhash=MultiplyHashFamily
	Seed         int64

	KMin, KMax int // shingle length range; default (2, 2)

	StoreSignatures bool
	Accumulator     AccumulatorKind // default DupSet

	Metrics *Metrics // optional; nil disables instrumentation
}

// Cache is the banded LSH index over inserted documents.
type Cache struct {
	bands       int
	rowsPerBand int
	totalRows   int

	universe  uint64
	family    *hashfamily.Family
	shingler  *shingle.Shingler
	accumKind AccumulatorKind
	storeSigs bool

	buckets []map[uint64][]int // buckets[band][key] = ordered ids
	seen    map[int][]uint64   // id -> band keys, only populated if storeSigs
	present map[int]struct{}   // id -> inserted, independent of storeSigs
	nextID  int

	metrics *Metrics
}

// New constructs a Cache from opts.
func New(opts Options) (*Cache, error) {
	cfg, err := SolveBandConfig(opts.Bands, opts.RowsPerBand, opts.TotalRows)
	if err != nil {
		return nil, err
	}

	universe := opts.UniverseSize
	if universe == 0 {
		universe = 131071
	}

	kMin, kMax := opts.KMin, opts.KMax
	if kMin == 0 && kMax == 0 {
		kMin, kMax = 2, 2
	}
	shingler, err := shingle.New(kMin, kMax, universe)
	if err != nil {
		return nil, newError("New", err)
	}

	kind := hashfamily.Multiply
	if opts.MinHashKind != nil {
		kind = *opts.MinHashKind
	}
	family := hashfamily.New(kind, cfg.TotalRows, int(universe), opts.Seed)

	buckets := make([]map[uint64][]int, cfg.Bands)
	for i := range buckets {
		buckets[i] = make(map[uint64][]int)
	}

	return &Cache{
		bands:       cfg.Bands,
		rowsPerBand: cfg.RowsPerBand,
		totalRows:   cfg.TotalRows,
		universe:    universe,
		family:      family,
		shingler:    shingler,
		accumKind:   opts.Accumulator,
		storeSigs:   opts.StoreSignatures,
		buckets:     buckets,
		seen:        make(map[int][]uint64),
		present:     make(map[int]struct{}),
		nextID:      0,
		metrics:     opts.Metrics,
	}, nil
}

// Bands, RowsPerBand, TotalRows and the remaining accessors below mirror
// the original Python LSHCache's introspection methods (num_bands(),
// num_rows_per_band(), num_total_rows(), num_docs(), max_doc_id(),
// shingler()) — harmless read-only accessors carried forward per
// SPEC_FULL.md §9.
func (c *Cache) Bands() int                  { return c.bands }
func (c *Cache) RowsPerBand() int            { return c.rowsPerBand }
func (c *Cache) TotalRows() int              { return c.totalRows }
func (c *Cache) NumDocs() int                { return len(c.present) }
func (c *Cache) MaxDocID() int               { return c.nextID - 1 }
func (c *Cache) Shingler() *shingle.Shingler { return c.shingler }

// bandKeysForDoc shingles doc, builds its MinHash signature, and bands it.
func (c *Cache) bandKeysForDoc(doc []any) []uint64 {
	fps := c.shingler.Fingerprints(doc)
	sig := signature.Build(fps, c.family, c.universe)
	return bandKeys(sig, c.bands, c.rowsPerBand)
}

// Insert assigns id (or allocates the next one if id is nil), bands the
// document's signature into c.bands buckets, and returns the accumulator's
// result: either the set of candidate duplicate ids (DupSet) or the
// inserted id itself (DocID). Fails with ErrDuplicateInsert if id is
// already present.
func (c *Cache) Insert(doc []any, id *int) (any, error) {
	docID := c.nextID
	if id != nil {
		docID = *id
	}
	if _, ok := c.present[docID]; ok {
		return nil, newError("Insert", ErrDuplicateInsert)
	}

	keys := c.bandKeysForDoc(doc)
	accum := newAccumulator(c.accumKind, docID)

	for i, key := range keys {
		bucket := c.buckets[i][key]
		accum.update(bucket)
		c.buckets[i][key] = append(bucket, docID)
	}

	c.present[docID] = struct{}{}
	if c.storeSigs {
		c.seen[docID] = keys
	}
	if docID >= c.nextID {
		c.nextID = docID + 1
	}

	result := accum.result()
	candidates := 0
	if dups, ok := result.(map[int]struct{}); ok {
		candidates = len(dups)
	}
	c.metrics.observeInsert(len(keys), candidates)

	return result, nil
}

// InsertBatch inserts each document in order and returns the per-element
// results in the same order.
func (c *Cache) InsertBatch(docs [][]any) ([]any, error) {
	results := make([]any, 0, len(docs))
	for _, doc := range docs {
		r, err := c.Insert(doc, nil)
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

// Lookup returns the union of ids sharing at least one bucket with doc
// (computed fresh, no mutation), or with the stored signature of id if doc
// is empty. Fails with ErrInvalidLookup if doc is empty and either
// signatures are not stored or id is unknown. If id is non-nil, it is
// excluded from the result.
func (c *Cache) Lookup(doc []any, id *int) (map[int]struct{}, error) {
	var keys []uint64
	switch {
	case len(doc) > 0:
		keys = c.bandKeysForDoc(doc)
	case c.storeSigs && id != nil:
		k, ok := c.seen[*id]
		if !ok {
			return nil, newError("Lookup", ErrInvalidLookup)
		}
		keys = k
	default:
		return nil, newError("Lookup", ErrInvalidLookup)
	}

	out := make(map[int]struct{})
	for i, key := range keys {
		for _, other := range c.buckets[i][key] {
			out[other] = struct{}{}
		}
	}
	if id != nil {
		delete(out, *id)
	}
	c.metrics.observeLookup(len(keys), len(out))
	return out, nil
}

// TheoreticalPercentFound returns 1 - (1 - s^r)^b for this cache's (b, r):
// the probability that two documents of true Jaccard similarity s collide
// in at least one band.
func (c *Cache) TheoreticalPercentFound(s float64) float64 {
	return theoreticalPercentFound(s, c.bands, c.rowsPerBand)
}
