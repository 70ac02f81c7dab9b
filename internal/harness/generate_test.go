// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package harness

import (
	"reflect"
	"testing"
)

func TestGenerateDocs_Combinations(t *testing.T) {
	got := GenerateDocs([]int{1, 2, 3}, 2, Combinations)
	want := [][]int{{1, 2}, {1, 3}, {2, 3}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combinations(1..3, 2) = %v, want %v", got, want)
	}
}

func TestGenerateDocs_CombinationsWithReplacement(t *testing.T) {
	got := GenerateDocs([]int{1, 2}, 2, CombinationsReplacement)
	want := [][]int{{1, 1}, {1, 2}, {2, 2}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("combinations_with_replacement(1..2, 2) = %v, want %v", got, want)
	}
}

func TestGenerateDocs_Permutations(t *testing.T) {
	got := GenerateDocs([]int{1, 2, 3}, 2, Permutations)
	if len(got) != 6 {
		t.Fatalf("expected 6 permutations, got %d: %v", len(got), got)
	}
}

func TestGenerateDocs_RZeroYieldsOneEmptyDoc(t *testing.T) {
	got := GenerateDocs([]int{1, 2, 3}, 0, Combinations)
	if len(got) != 1 || len(got[0]) != 0 {
		t.Fatalf("expected a single empty document, got %v", got)
	}
}

func TestDocLengths_RangeSpec(t *testing.T) {
	got := DocLengths([]int{3, 5})
	want := []int{3, 4, 5}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DocLengths([3,5]) = %v, want %v", got, want)
	}
}

func TestDocLengths_DropsLeadingZero(t *testing.T) {
	got := DocLengths([]int{0, 4, 8})
	want := []int{4, 8}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DocLengths([0,4,8]) = %v, want %v", got, want)
	}
}

func TestDocLengths_PassesThroughOtherwise(t *testing.T) {
	got := DocLengths([]int{7})
	want := []int{7}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DocLengths([7]) = %v, want %v", got, want)
	}
}

func TestParseGenerator_RejectsUnknown(t *testing.T) {
	if _, err := ParseGenerator("shuffle"); err == nil {
		t.Fatal("expected error for unknown generator")
	}
}
