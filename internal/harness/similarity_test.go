// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package harness

import (
	"math"
	"testing"

	"github.com/aleutianai/lshdup/internal/shingle"
)

func toks(xs ...int) []any {
	out := make([]any, len(xs))
	for i, x := range xs {
		out[i] = x
	}
	return out
}

func TestParseSimilarity_RejectsUnsupportedMetrics(t *testing.T) {
	for _, name := range []string{"masi", "edit_transposition"} {
		if _, err := ParseSimilarity(name); err == nil {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

func TestJaccardSimilarity_IdenticalDocsAreOne(t *testing.T) {
	sh, err := shingle.New(2, 2, 131071)
	if err != nil {
		t.Fatal(err)
	}
	a := toks(1, 2, 3, 4)
	if got := Jaccard.Compute(a, a, sh); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected similarity 1 for identical docs, got %v", got)
	}
}

func TestJaccardSimilarity_DisjointDocsAreZero(t *testing.T) {
	sh, err := shingle.New(2, 2, 131071)
	if err != nil {
		t.Fatal(err)
	}
	a := toks(1, 2)
	b := toks(100, 200, 300)
	if got := Jaccard.Compute(a, b, sh); got != 0 {
		t.Errorf("expected similarity 0 for disjoint docs, got %v", got)
	}
}

func TestEditSimilarity_IdenticalDocsAreOne(t *testing.T) {
	a := toks(1, 2, 3)
	if got := Edit.Compute(a, a, nil); math.Abs(got-1) > 1e-9 {
		t.Errorf("expected similarity 1, got %v", got)
	}
}

func TestEditSimilarity_CompletelyDifferentDocsAreZero(t *testing.T) {
	a := toks(1, 2, 3)
	b := toks(4, 5, 6)
	if got := Edit.Compute(a, b, nil); got != 0 {
		t.Errorf("expected similarity 0, got %v", got)
	}
}

func TestLevenshtein_SingleSubstitution(t *testing.T) {
	a := toks(1, 2, 3)
	b := toks(1, 9, 3)
	if got := levenshtein(a, b); got != 1 {
		t.Errorf("expected edit distance 1, got %d", got)
	}
}
