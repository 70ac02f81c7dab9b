// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package main

import (
	"fmt"

	"github.com/aleutianai/lshdup/internal/lshcache"
	"github.com/spf13/cobra"
)

func runLookup(cmd *cobra.Command, args []string) error {
	log := newLogger()
	docs, err := readDocs(args[0])
	if err != nil {
		return fmt.Errorf("reading %s: %w", args[0], err)
	}

	opts, err := buildCacheOptions(true, lshcache.DocID)
	if err != nil {
		return err
	}
	cache, err := lshcache.New(opts)
	if err != nil {
		return err
	}

	log.Info("indexing corpus", "count", len(docs))
	for _, doc := range docs {
		if _, err := cache.Insert(doc, nil); err != nil {
			return err
		}
	}

	query := make([]any, len(args)-1)
	for i, tok := range args[1:] {
		query[i] = tok
	}
	if len(query) == 0 {
		fmt.Println("no query tokens given; corpus indexed with", cache.NumDocs(), "documents")
		return nil
	}

	matches, err := cache.Lookup(query, nil)
	if err != nil {
		return err
	}
	fmt.Printf("matches=%v\n", sortedKeys(matches))
	return nil
}
