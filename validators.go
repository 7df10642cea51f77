// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/finiteness checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on the happy path.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil -> Shape).
//  - Each validator describes what it validates and what it assumes.

package matrix

import (
	"fmt"
	"math"
)

// matrixErrorf wraps an underlying error with an operation tag, preserving
// the original sentinel via %w. Use only when err != nil.
// Complexity: O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNonFinite reports whether v is NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil. Complexity: O(1).
func ValidateNotNil(m *Matrix) error {
	if m == nil {
		return ErrNilMatrix // single source of truth for "nil argument"
	}

	return nil
}

// ValidateFinite ensures v is a usable matrix entry (finite real number).
//
// Returns ErrNaNInf otherwise. Complexity: O(1).
func ValidateFinite(v float64) error {
	if isNonFinite(v) {
		return ErrNaNInf
	}

	return nil
}

// ValidateFiniteSeq ensures every value of a sequence is finite.
//
// Returns ErrNaNInf naming the offending position. Complexity: O(len(vs)).
func ValidateFiniteSeq(vs []float64) error {
	var i int
	var v float64
	for i, v = range vs {
		if isNonFinite(v) {
			return fmt.Errorf("element %d: %w", i+1, ErrNaNInf)
		}
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns wrapped ErrInvalidDimension. Complexity: O(1).
func ValidateSameShape(a, b *Matrix) error {
	if a.nrow != b.nrow {
		return fmt.Errorf("rows %d vs %d: %w", a.nrow, b.nrow, ErrInvalidDimension)
	}
	if a.ncol != b.ncol {
		return fmt.Errorf("columns %d vs %d: %w", a.ncol, b.ncol, ErrInvalidDimension)
	}

	return nil
}

// ValidateSquare checks that m is square (nrow == ncol).
// Assumes m is not nil.
//
// Returns ErrNonSquare if violated. Complexity: O(1).
func ValidateSquare(m *Matrix) error {
	if m.nrow != m.ncol {
		return fmt.Errorf("%dx%d: %w", m.nrow, m.ncol, ErrNonSquare)
	}

	return nil
}

// ValidateConformable checks that the product a @ b is defined
// (a.ncol == b.nrow). Assumes both are not nil.
//
// Returns wrapped ErrInvalidDimension. Complexity: O(1).
func ValidateConformable(a, b *Matrix) error {
	if a.ncol != b.nrow {
		return fmt.Errorf("inner dimensions %d vs %d: %w", a.ncol, b.nrow, ErrInvalidDimension)
	}

	return nil
}

// validateIndex bounds-checks a 1-based (row, col) pair against m.
// Internal: assumes m non-nil.
func (m *Matrix) validateIndex(row, col int) error {
	if row < 1 || row > m.nrow {
		return fmt.Errorf("row %d of %d: %w", row, m.nrow, ErrIndexOutOfRange)
	}
	if col < 1 || col > m.ncol {
		return fmt.Errorf("column %d of %d: %w", col, m.ncol, ErrIndexOutOfRange)
	}

	return nil
}
