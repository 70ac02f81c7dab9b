// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package shingle

import "testing"

func tok(ss ...string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}

func TestNew_RejectsInvalidRange(t *testing.T) {
	if _, err := New(0, 2, 0); err == nil {
		t.Fatal("expected error for kMin=0")
	}
	if _, err := New(3, 2, 0); err == nil {
		t.Fatal("expected error for kMax < kMin")
	}
}

func TestShingles_ExactLength(t *testing.T) {
	s, err := New(2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	doc := tok("a", "b", "c", "d")
	got := s.Shingles(doc)
	want := [][]any{tok("a", "b"), tok("b", "c"), tok("c", "d")}
	if len(got) != len(want) {
		t.Fatalf("expected %d shingles, got %d", len(want), len(got))
	}
	for i := range want {
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("shingle %d mismatch: got %v want %v", i, got[i], want[i])
			}
		}
	}
}

func TestShingles_ShortDocumentPadsWithSentinel(t *testing.T) {
	s, err := New(3, 3, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := s.Shingles(tok("a"))
	if len(got) != 1 {
		t.Fatalf("expected exactly one padded shingle, got %d", len(got))
	}
	if len(got[0]) != 3 {
		t.Fatalf("expected shingle of length 3, got %d", len(got[0]))
	}
	if _, ok := got[0][0].(sentinel); !ok {
		t.Fatalf("expected leading sentinel, got %v", got[0][0])
	}
	if _, ok := got[0][1].(sentinel); !ok {
		t.Fatalf("expected second sentinel, got %v", got[0][1])
	}
	if got[0][2] != "a" {
		t.Fatalf("expected trailing real token, got %v", got[0][2])
	}
}

func TestShingles_KMajorJMinorOrder(t *testing.T) {
	s, err := New(1, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	doc := tok("a", "b", "c")
	got := s.Shingles(doc)
	// k=1: three 1-grams, then k=2: two 2-grams.
	if len(got) != 5 {
		t.Fatalf("expected 5 shingles, got %d", len(got))
	}
	if len(got[0]) != 1 || len(got[3]) != 2 {
		t.Fatalf("expected k-major ordering, got lengths %d then %d", len(got[0]), len(got[3]))
	}
}

func TestFingerprints_NonEmptyForNonEmptyDoc(t *testing.T) {
	s, err := New(2, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	fp := s.Fingerprints(tok("a", "b"))
	if len(fp) == 0 {
		t.Fatal("expected at least one fingerprint for a non-empty document")
	}
}

func TestFingerprints_EmptyDocYieldsOneSentinelShingle(t *testing.T) {
	s, err := New(2, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	fp := s.Fingerprints(nil)
	if len(fp) != 1 {
		t.Fatalf("expected exactly one fingerprint (the all-sentinel shingle), got %d", len(fp))
	}
}

func TestFingerprints_UnderU(t *testing.T) {
	s, err := New(1, 1, 97)
	if err != nil {
		t.Fatal(err)
	}
	fp := s.Fingerprints(tok("x", "y", "z"))
	for f := range fp {
		if f >= 97 {
			t.Fatalf("fingerprint %d not reduced mod universe size 97", f)
		}
	}
}

func TestUniverseCount(t *testing.T) {
	s, err := New(1, 2, 0)
	if err != nil {
		t.Fatal(err)
	}
	got := s.UniverseCount(10)
	want := uint64(10 + 100)
	if got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}

func TestShingles_EquivalentToConcatenatedPerKStreams(t *testing.T) {
	low, err := New(2, 4, 0)
	if err != nil {
		t.Fatal(err)
	}
	doc := tok("a", "b", "c", "d", "e", "f")

	var want [][]any
	for k := 2; k <= 4; k++ {
		single, err := New(k, k, 0)
		if err != nil {
			t.Fatal(err)
		}
		want = append(want, single.Shingles(doc)...)
	}
	got := low.Shingles(doc)
	if len(got) != len(want) {
		t.Fatalf("expected %d shingles, got %d", len(want), len(got))
	}
	for i := range want {
		if len(got[i]) != len(want[i]) {
			t.Fatalf("shingle %d length mismatch: got %v want %v", i, got[i], want[i])
		}
		for j := range want[i] {
			if got[i][j] != want[i][j] {
				t.Fatalf("shingle %d mismatch: got %v want %v", i, got[i], want[i])
			}
		}
	}
}
