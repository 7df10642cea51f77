// SPDX-License-Identifier: MIT

// Package matrix is a dense real-matrix algebra engine built on an exact
// decimal scalar, with 1-based user-facing indexing and live row/column
// views that detect structural invalidation.
//
// 🚀 What is matrix?
//
//	A self-contained linear-algebra toolkit that brings together:
//		• Element: an immutable arbitrary-precision decimal scalar with a
//		  lossless float ingestion path and integer-snapping tolerance
//		• Matrix: a mutable dense store with 1-based element access,
//		  block (submatrix) reads and writes, and in-place restructuring
//		• Rows/Columns: live, index-based views with slicing, per-line
//		  arithmetic, deletion and iteration, invalidated by any resize
//		• Arithmetic: add, subtract, scale, matrix multiply, augment and
//		  integer powers, each in copy-returning and in-place form
//		• Reduction: row echelon, reduced row echelon, forward
//		  elimination, back substitution, determinant, minor, inverse,
//		  rank, and a linear-system solver composed from them
//		• Generators: identity, zero, and uniformly random matrices
//
// ✨ Why choose matrix?
//
//   - Exact by default – decimal arithmetic, never binary-float drift
//   - Explicit tolerance – every tolerance-sensitive operation accepts
//     WithRoundLimit; nothing reads mutable global state
//   - Predictable failure – one sentinel per failure class, matched with
//     errors.Is, wrapped with the operation name
//   - 1-based everywhere – indices and slices read like the mathematics
//
// Conventions:
//
//	Indices are 1-based; Span slices are 1-based with an inclusive stop,
//	translated internally to 0-based half-open ranges. A value x is
//	negligible when |x| < 10^-limit (limit defaults to 12), and results
//	within that distance of an integer snap to the integer. Any change to
//	a matrix's dimensions invalidates outstanding views and cursors,
//	which then fail with ErrViewInvalidated instead of reading through.
//
// Quick example:
//
//	m, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}}, false)
//	inv, _ := m.Inverse()
//	x, _ := matrix.SolveLinearSystem(m, b) // b is a 2x1 column
//
// See DESIGN.md for the architectural decisions behind the package.
package matrix
