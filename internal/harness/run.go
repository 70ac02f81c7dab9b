// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package harness

import (
	"github.com/aleutianai/lshdup/internal/hashfamily"
	"github.com/aleutianai/lshdup/internal/lshcache"
	"github.com/aleutianai/lshdup/pkg/logging"
)

// Params configures a harness run. It is the Go-native equivalent of
// analyze_lsh.py's argparse namespace.
type Params struct {
	Bands, RowsPerBand, TotalRows *int
	MinHash                       *hashfamily.Kind
	UniverseSize                  uint64
	ShingleLens                   []int // 0, 1, or 2 values: (k), or (kMin, kMax)

	NumDocs    int // 0 means unconsumed limit: generate all documents
	DocLen     []int
	NumTokens  int
	Generator  Generator
	Similarity Similarity
	SimCuts    int
	Seed       int64

	Log *logging.Logger
}

// Row is one line of the harness report: the (lsh-recall, ground-truth)
// comparison for one similarity bucket.
type Row struct {
	Similarity     float64
	LSHCount       int
	TotalCount     int
	PctInLSH       float64
	TheoreticalPct float64
}

// Result is a full harness report: one Row per similarity cut, plus a
// Total row aggregating across all of them.
type Result struct {
	Rows  []Row
	Total Row
}

func shingleBounds(lens []int) (int, int) {
	switch len(lens) {
	case 1:
		return lens[0], lens[0]
	case 2:
		return lens[0], lens[1]
	default:
		return 2, 2
	}
}

// Run generates documents per p, inserts them into a fresh cache in
// order, and for every pair of documents seen so far records whether the
// cache's DupSet accumulator recovered the pair as a near-duplicate,
// bucketed by the chosen ground-truth similarity metric.
func Run(p Params) (*Result, error) {
	log := p.Log
	if log == nil {
		log = logging.Default()
	}

	kMin, kMax := shingleBounds(p.ShingleLens)
	cache, err := lshcache.New(lshcache.Options{
		Bands:        p.Bands,
		RowsPerBand:  p.RowsPerBand,
		TotalRows:    p.TotalRows,
		UniverseSize: p.UniverseSize,
		MinHashKind:  p.MinHash,
		Seed:         p.Seed,
		KMin:         kMin,
		KMax:         kMax,
		Accumulator:  lshcache.DupSet,
	})
	if err != nil {
		return nil, err
	}

	tokens := make([]int, p.NumTokens)
	for i := range tokens {
		tokens[i] = i + 1
	}

	lengths := DocLengths(p.DocLen)
	var allDocs [][]int
	for _, l := range lengths {
		allDocs = append(allDocs, GenerateDocs(tokens, l, p.Generator)...)
	}
	if p.NumDocs > 0 && p.NumDocs < len(allDocs) {
		allDocs = allDocs[:p.NumDocs]
	}
	log.Info("generated documents", "count", len(allDocs))

	simCuts := p.SimCuts
	if simCuts <= 0 {
		simCuts = 10
	}
	totalDist := make([]int, simCuts+1)
	lshDist := make([]int, simCuts+1)

	var docs [][]any
	for ndx, rawDoc := range allDocs {
		doc := make([]any, len(rawDoc))
		for i, t := range rawDoc {
			doc[i] = t
		}

		if ndx > 0 && ndx%100 == 0 {
			log.Info("processing", "docs", ndx)
		}

		r, err := cache.Insert(doc, nil)
		if err != nil {
			return nil, err
		}
		lshSimilar := r.(map[int]struct{})

		for other := 0; other < ndx; other++ {
			sim := p.Similarity.Compute(doc, docs[other], cache.Shingler())
			simNdx := int(float64(simCuts) * sim)
			if simNdx > simCuts {
				simNdx = simCuts
			}
			totalDist[simNdx]++
			if _, ok := lshSimilar[other]; ok {
				lshDist[simNdx]++
			}
		}
		docs = append(docs, doc)
	}

	result := &Result{Rows: make([]Row, simCuts+1)}
	var totalLSH, totalCount int
	var weightedTheoretical float64
	for i := 0; i <= simCuts; i++ {
		sim := float64(i) / float64(simCuts)
		theoretical := cache.TheoreticalPercentFound(sim)
		pctInLSH := 0.0
		if totalDist[i] > 0 {
			pctInLSH = float64(lshDist[i]) / float64(totalDist[i])
		}
		result.Rows[i] = Row{
			Similarity:     sim,
			LSHCount:       lshDist[i],
			TotalCount:     totalDist[i],
			PctInLSH:       pctInLSH,
			TheoreticalPct: theoretical,
		}
		totalLSH += lshDist[i]
		totalCount += totalDist[i]
		weightedTheoretical += theoretical * float64(totalDist[i])
	}

	result.Total = Row{
		LSHCount:   totalLSH,
		TotalCount: totalCount,
	}
	if totalCount > 0 {
		result.Total.PctInLSH = float64(totalLSH) / float64(totalCount)
		result.Total.TheoreticalPct = weightedTheoretical / float64(totalCount)
	}
	return result, nil
}
