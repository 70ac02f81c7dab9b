// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"github.com/spf13/cobra"
)

var (
	configPath string

	flagBands       int
	flagRowsPerBand int
	flagTotalRows   int
	flagUniverse    uint64
	flagMinHash     string
	flagSeed        int64
	flagShingleMin  int
	flagShingleMax  int
	flagLogLevel    string

	rootCmd = &cobra.Command{
		Use:   "lshdup",
		Short: "Build and query a banded LSH near-duplicate index over token sequences",
	}

	solveCmd = &cobra.Command{
		Use:   "solve",
		Short: "Resolve a partial (bands, rows-per-band, total-rows) spec and print the result",
		RunE:  runSolve,
	}

	curveCmd = &cobra.Command{
		Use:   "curve",
		Short: "Print the theoretical S-curve for a given (bands, rows-per-band)",
		RunE:  runCurve,
	}

	insertCmd = &cobra.Command{
		Use:   "insert [file]",
		Short: "Insert whitespace-tokenized lines from file into a fresh cache and report duplicate sets",
		Args:  cobra.ExactArgs(1),
		RunE:  runInsert,
	}

	lookupCmd = &cobra.Command{
		Use:   "lookup [file] [token...]",
		Short: "Insert file's lines into a fresh cache, then look up a query document against it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runLookup,
	}

	analyzeCmd = &cobra.Command{
		Use:   "analyze",
		Short: "Measure LSH recall against ground-truth similarity over a generated document corpus",
		RunE:  runAnalyze,
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "config.yaml", "path to config.yaml")

	for _, cmd := range []*cobra.Command{solveCmd, curveCmd, insertCmd, lookupCmd, analyzeCmd} {
		cmd.Flags().IntVarP(&flagBands, "bands", "b", 0, "number of bands")
		cmd.Flags().IntVarP(&flagRowsPerBand, "rows", "r", 0, "rows per band")
		cmd.Flags().IntVarP(&flagTotalRows, "total", "n", 0, "total signature rows")
	}
	for _, cmd := range []*cobra.Command{insertCmd, lookupCmd, analyzeCmd} {
		cmd.Flags().Uint64VarP(&flagUniverse, "universe-size", "u", 0, "shingle universe size")
		cmd.Flags().StringVar(&flagMinHash, "minhash", "", "minhash family: xor or multiply")
		cmd.Flags().Int64Var(&flagSeed, "seed", 0, "random seed")
		cmd.Flags().IntVar(&flagShingleMin, "shingle-min", 0, "minimum shingle length")
		cmd.Flags().IntVar(&flagShingleMax, "shingle-max", 0, "maximum shingle length")
		cmd.Flags().StringVar(&flagLogLevel, "log", "info", "log level: debug, info, warn, error")
	}

	rootCmd.AddCommand(solveCmd, curveCmd, insertCmd, lookupCmd, analyzeCmd)
}
