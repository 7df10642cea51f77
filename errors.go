// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check
// them via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary; callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index/NaN -> span validity -> view staleness
// -> algebraic preconditions (ErrNonSquare, ErrNotEchelon, ErrZeroDeterminant).

var (
	// ErrInvalidDimension is returned when construction or an operation is
	// given non-positive or incompatible sizes (e.g., nrow<1, Add shape
	// mismatch, MatMul inner mismatch, ragged source without padding).
	ErrInvalidDimension = errors.New("matrix: invalid or incompatible dimensions")

	// ErrIndexOutOfRange indicates that a 1-based row or column index is
	// outside valid bounds. Public indexers MUST return this, not panic.
	ErrIndexOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required (construction, Set, view arithmetic operands).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrBadSpan indicates a malformed 1-based span: start, stop or step
	// below 1, start beyond the sequence, or start > stop.
	ErrBadSpan = errors.New("matrix: malformed span")

	// ErrViewInvalidated is returned when a Row/Column/slice view (or an
	// element cursor) is used after its owning matrix was resized.
	// The view is permanently broken; obtain a fresh one from the matrix.
	ErrViewInvalidated = errors.New("matrix: view invalidated by resize")

	// ErrSeekOutOfRange is the termination reason reported by a Cursor whose
	// Seek target lies outside the matrix. It ends the iteration; it is not
	// returned by Seek itself.
	ErrSeekOutOfRange = errors.New("matrix: cursor seek out of range")

	// ErrZeroDeterminant is returned when an operation requiring a
	// non-singular matrix (inverse, back substitution, unique solving)
	// encountered a zero determinant within the configured round limit.
	ErrZeroDeterminant = errors.New("matrix: zero determinant")

	// ErrEmptyMatrix is returned by deletions that would leave the matrix
	// with zero rows or zero columns. The matrix is left unchanged.
	ErrEmptyMatrix = errors.New("matrix: emptying the matrix is not allowed")

	// ErrNonSquare signals that a square matrix was required but the input
	// was not (determinant, minor, inverse, trace, diagonal).
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrNotEchelon signals that back substitution was invoked on a matrix
	// that is not in (upper-triangular / upper-trapezoidal) row echelon form.
	ErrNotEchelon = errors.New("matrix: matrix is not in row echelon form")

	// ErrBadExponent is returned by Pow for exponents other than -1 or k>=1.
	ErrBadExponent = errors.New("matrix: unsupported exponent")

	// ErrNilMatrix indicates that a nil *Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrZeroDivision is returned by scalar or elementwise division when the
	// divisor is zero (or negligible under the round limit).
	ErrZeroDivision = errors.New("matrix: division by zero")

	// ErrNoUniqueSolution is returned by SolveLinearSystem when the
	// coefficient matrix is singular within the round limit.
	ErrNoUniqueSolution = errors.New("matrix: no unique solution")
)
