// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"
	"strings"

	"github.com/aleutianai/lshdup/internal/harness"
	"github.com/spf13/cobra"
)

var (
	flagNumDocs    int
	flagDocLen     []int
	flagNumTokens  int
	flagGenerator  string
	flagSimilarity string
	flagSimCuts    int
)

func init() {
	analyzeCmd.Flags().IntVarP(&flagNumDocs, "num-docs", "d", 0, "stop after generating this many documents (0 = all)")
	analyzeCmd.Flags().IntSliceVar(&flagDocLen, "doc-len", []int{10}, "document length, or [min max] range")
	analyzeCmd.Flags().IntVarP(&flagNumTokens, "num-tokens", "t", 10, "number of distinct tokens to draw documents from")
	analyzeCmd.Flags().StringVarP(&flagGenerator, "generator", "g", "combinations", "combinations, combinations_replacement, or permutations")
	analyzeCmd.Flags().StringVarP(&flagSimilarity, "similarity", "s", "jaccard", "jaccard or edit")
	analyzeCmd.Flags().IntVar(&flagSimCuts, "sim-cuts", 10, "number of similarity buckets to report")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	gen, err := harness.ParseGenerator(flagGenerator)
	if err != nil {
		return err
	}
	sim, err := harness.ParseSimilarity(flagSimilarity)
	if err != nil {
		return err
	}
	minHash, err := resolvedMinHash()
	if err != nil {
		return err
	}
	bands, rows, total := resolvedBands()
	kMin, kMax := resolvedShingleRange()

	result, err := harness.Run(harness.Params{
		Bands:        bands,
		RowsPerBand:  rows,
		TotalRows:    total,
		MinHash:      minHash,
		UniverseSize: resolvedUniverse(),
		ShingleLens:  []int{kMin, kMax},
		NumDocs:      flagNumDocs,
		DocLen:       flagDocLen,
		NumTokens:    flagNumTokens,
		Generator:    gen,
		Similarity:   sim,
		SimCuts:      flagSimCuts,
		Seed:         resolvedSeed(),
		Log:          newLogger(),
	})
	if err != nil {
		return err
	}

	printTable(result)
	return nil
}

func printTable(result *harness.Result) {
	sep := "|" + strings.Repeat(strings.Repeat("-", 14)+"+", 4) + strings.Repeat("-", 14) + "|"
	fmt.Printf("| %12s | %12s | %12s | %12s | %12s |\n",
		"Similarity", "LSH Count", "Total Count", "% in LSH", "Theoretical %")
	fmt.Println(sep)
	for _, row := range result.Rows {
		fmt.Printf("| %12.2f | %12d | %12d | %12.4f | %12.4f |\n",
			row.Similarity, row.LSHCount, row.TotalCount, row.PctInLSH, row.TheoreticalPct)
	}
	fmt.Println(strings.ReplaceAll(sep, "-", "="))
	fmt.Printf("| %12s | %12d | %12d | %12.4f | %12.4f |\n",
		"Total", result.Total.LSHCount, result.Total.TotalCount, result.Total.PctInLSH, result.Total.TheoreticalPct)
}
