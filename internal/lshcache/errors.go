// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

package lshcache

import "errors"

// Sentinel errors, wrapped by IndexError for reporting.
var (
	// ErrConfig marks an inconsistent or insoluble (b, r, n) specification,
	// or an invalid shingle length range.
	ErrConfig = errors.New("lshcache: invalid configuration")

	// ErrDuplicateInsert marks Insert called with an id already present.
	ErrDuplicateInsert = errors.New("lshcache: id already inserted")

	// ErrInvalidLookup marks Lookup called with neither a usable document
	// nor, when signatures are stored, a known id.
	ErrInvalidLookup = errors.New("lshcache: invalid lookup arguments")
)

// IndexError wraps a sentinel error with the operation that produced it,
// following the teacher's AlgorithmError{Algorithm, Operation, Err} shape
// (services/trace/agent/mcts/algorithms/types.go) renamed to this
// package's domain.
type IndexError struct {
	Operation string
	Err       error
}

func (e *IndexError) Error() string {
	return "lshcache." + e.Operation + ": " + e.Err.Error()
}

func (e *IndexError) Unwrap() error {
	return e.Err
}

func newError(operation string, err error) *IndexError {
	return &IndexError{Operation: operation, Err: err}
}
