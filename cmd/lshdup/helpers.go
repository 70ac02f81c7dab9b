// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/aleutianai/lshdup/internal/hashfamily"
	"github.com/aleutianai/lshdup/internal/lshcache"
	"github.com/aleutianai/lshdup/pkg/logging"
)

// resolvedBands merges the CLI flags over config.yaml, flags winning.
// A zero flag or a key absent from config.yaml means "not set".
func resolvedBands() (*int, *int, *int) {
	b, r, n := config.Bands, config.RowsPerBand, config.TotalRows
	if flagBands != 0 {
		b = lshcache.Int(flagBands)
	}
	if flagRowsPerBand != 0 {
		r = lshcache.Int(flagRowsPerBand)
	}
	if flagTotalRows != 0 {
		n = lshcache.Int(flagTotalRows)
	}
	return b, r, n
}

func resolvedUniverse() uint64 {
	if flagUniverse != 0 {
		return flagUniverse
	}
	return config.UniverseSize
}

func resolvedMinHash() (*hashfamily.Kind, error) {
	name := flagMinHash
	if name == "" {
		name = config.MinHash
	}
	switch name {
	case "":
		return nil, nil
	case "xor":
		k := hashfamily.XOR
		return &k, nil
	case "multiply":
		k := hashfamily.Multiply
		return &k, nil
	default:
		return nil, fmt.Errorf("unknown minhash family %q (want xor or multiply)", name)
	}
}

func resolvedSeed() int64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return config.Seed
}

func resolvedShingleRange() (int, int) {
	kMin, kMax := flagShingleMin, flagShingleMax
	if kMin == 0 {
		kMin = config.ShingleMin
	}
	if kMax == 0 {
		kMax = config.ShingleMax
	}
	if kMin == 0 && kMax == 0 {
		return 2, 2
	}
	if kMax == 0 {
		kMax = kMin
	}
	return kMin, kMax
}

func buildCacheOptions(storeSignatures bool, accum lshcache.AccumulatorKind) (lshcache.Options, error) {
	bands, rows, total := resolvedBands()
	minHash, err := resolvedMinHash()
	if err != nil {
		return lshcache.Options{}, err
	}
	kMin, kMax := resolvedShingleRange()
	return lshcache.Options{
		Bands:           bands,
		RowsPerBand:     rows,
		TotalRows:       total,
		UniverseSize:    resolvedUniverse(),
		MinHashKind:     minHash,
		Seed:            resolvedSeed(),
		KMin:            kMin,
		KMax:            kMax,
		StoreSignatures: storeSignatures,
		Accumulator:     accum,
	}, nil
}

// newLogger builds the CLI's logger. The --log flag defaults to "info"
// so it only defers to config.yaml's level when left at that default.
func newLogger() *logging.Logger {
	levelName := flagLogLevel
	if levelName == "info" && config.Log.Level != "" {
		levelName = config.Log.Level
	}
	level, _ := logging.ParseLevel(levelName)
	return logging.New(logging.Config{Level: level, Service: "lshdup", JSON: config.Log.JSON})
}

// readDocs reads whitespace-tokenized lines from path, skipping blank
// lines, and returns one []any document per line.
func readDocs(path string) ([][]any, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var docs [][]any
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Fields(line)
		doc := make([]any, len(fields))
		for i, tok := range fields {
			doc[i] = tok
		}
		docs = append(docs, doc)
	}
	return docs, scanner.Err()
}
