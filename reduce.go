// SPDX-License-Identifier: MIT

// Package matrix: the row-reduction engine.
//
// Forward elimination, back substitution, the echelon transforms built from
// them, determinant by Laplace expansion, inversion via an augmented
// Gauss–Jordan pass, and rank. Every entry point takes the numeric policy
// as explicit options (WithRoundLimit); nothing here reads ambient state,
// so concurrent computations with different tolerances cannot interfere.
//
// Index conventions inside the kernels are 0-based against the live array;
// "negligible" always means |x| < 10^-limit (see element.go).
package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opBackSubstitute = "BackSubstitute"
	opForwardElim    = "ForwardEliminate"
	opRREF           = "ToReducedRowEchelon"
	opDeterminant    = "Determinant"
	opMinor          = "Minor"
	opInverse        = "Inverse"
)

// ToRowEchelon transforms the matrix, in place, into row echelon form by
// forward elimination with full-width pivoting. Never fails: a singular or
// degenerate matrix simply ends up with zero rows at the bottom.
// Complexity: O(r*c*min(r,c)).
func (m *Matrix) ToRowEchelon(opts ...Option) {
	m.rowEchelon(false, gatherOptions(opts...).roundLimit)
}

// ToReducedRowEchelon transforms the matrix, in place, into reduced row
// echelon form: forward elimination followed by back substitution with
// pivot normalization.
//
// Errors: ErrZeroDeterminant when a pivot vanishes under the round limit
// (the matrix is left in plain row echelon form in that case).
func (m *Matrix) ToReducedRowEchelon(opts ...Option) error {
	limit := gatherOptions(opts...).roundLimit
	m.rowEchelon(false, limit)
	if err := m.backSubstitution(limit); err != nil {
		return matrixErrorf(opRREF, err)
	}

	return nil
}

// ForwardEliminate runs forward elimination on a wide (more columns than
// rows) matrix, typically an augmented system, treating it as square of
// the row count for pivot purposes while operating on full rows.
//
// Errors: ErrInvalidDimension unless ncol > nrow.
func (m *Matrix) ForwardEliminate(opts ...Option) error {
	if m.ncol <= m.nrow {
		return matrixErrorf(opForwardElim,
			fmt.Errorf("%dx%d is not wide: %w", m.nrow, m.ncol, ErrInvalidDimension))
	}
	m.rowEchelon(true, gatherOptions(opts...).roundLimit)

	return nil
}

// BackSubstitute runs back substitution on a wide matrix previously brought
// to upper-trapezoidal form by ForwardEliminate, leaving the pivot block as
// the identity.
//
// Errors: ErrInvalidDimension unless ncol > nrow; ErrNotEchelon if the
// matrix is not upper-trapezoidal; ErrZeroDeterminant on a vanished pivot.
func (m *Matrix) BackSubstitute(opts ...Option) error {
	if m.ncol <= m.nrow {
		return matrixErrorf(opBackSubstitute,
			fmt.Errorf("%dx%d is not wide: %w", m.nrow, m.ncol, ErrInvalidDimension))
	}
	if err := m.backSubstitution(gatherOptions(opts...).roundLimit); err != nil {
		return matrixErrorf(opBackSubstitute, err)
	}

	return nil
}

// rowEchelon is the forward-elimination kernel.
//
// Pivot row j and pivot column k start at the top-left and track each other.
// At each step:
//   - A usable pivot (|a[j][k]| >= 10^-limit) eliminates every
//     non-negligible entry below it, then both j and k advance.
//   - A degenerate pivot triggers a downward search for a usable row. If
//     none exists the column is exhausted: k advances, j stays. If one is
//     found and the current row still carries signal to the right of k, the
//     rows swap so the pivot comes up; an entirely negligible current row is
//     instead rotated to the bottom and the same column is retried (the
//     rotation terminates because a usable row below is known to exist).
//
// asSquare bounds pivots to the smaller dimension so that, on an augmented
// matrix, the constants block never produces a pivot; elimination still
// updates full rows. Every updated entry is snapped under limit.
func (m *Matrix) rowEchelon(asSquare bool, limit int) {
	pivotRows, pivotCols := m.nrow, m.ncol
	if asSquare {
		if n := min(m.nrow, m.ncol); n < pivotRows {
			pivotRows = n
		}
		pivotCols = pivotRows
	}

	var (
		j, k, i, c    int // pivot row, pivot column, scan row, sweep column
		pivot, factor Element
	)
	for j < pivotRows-1 && k < pivotCols {
		if m.data[j][k].negligible(limit) {
			// Search downward for a usable pivot in column k.
			found := -1
			for i = j + 1; i < m.nrow; i++ {
				if !m.data[i][k].negligible(limit) {
					found = i
					break
				}
			}
			if found < 0 {
				k++ // column exhausted: advance column, keep the row
				continue
			}
			if m.rowNegligible(j, limit) {
				m.rotateRowToBottom(j)
				continue // retry the same column with the shifted rows
			}
			// Current row still matters further right: bring the pivot up.
			m.data[j], m.data[found] = m.data[found], m.data[j]
		}

		// Eliminate below the pivot (j, k) across the full row width.
		pivot = m.data[j][k]
		for i = j + 1; i < m.nrow; i++ {
			if m.data[i][k].negligible(limit) {
				continue // nothing to eliminate
			}
			factor = m.data[i][k].Div(pivot)
			for c = k; c < m.ncol; c++ {
				m.data[i][c] = m.data[i][c].Sub(factor.Mul(m.data[j][c])).snap(limit)
			}
		}
		j, k = j+1, k+1
	}
}

// rowNegligible reports whether every entry of row j is negligible.
func (m *Matrix) rowNegligible(j, limit int) bool {
	var e Element
	for _, e = range m.data[j] {
		if !e.negligible(limit) {
			return false
		}
	}

	return true
}

// rotateRowToBottom moves row j to the last position, shifting the rows
// below it up by one. Complexity: O(nrow).
func (m *Matrix) rotateRowToBottom(j int) {
	row := m.data[j]
	copy(m.data[j:], m.data[j+1:])
	m.data[m.nrow-1] = row
}

// backSubstitution is the bottom-up mirror of rowEchelon: it requires the
// matrix to already be upper-triangular (upper-trapezoidal when wide),
// eliminates above each diagonal pivot, and finally normalizes every pivot
// row so the pivot becomes exactly 1. Divisions by an exact 1 are skipped;
// the decimal scalar cannot produce a negative zero, so tiny negative
// residues snap to a clean 0.
//
// Errors: ErrNotEchelon, ErrZeroDeterminant. The matrix is unchanged unless
// both preconditions hold.
func (m *Matrix) backSubstitution(limit int) error {
	n := min(m.nrow, m.ncol)

	// Precondition 1: nothing below the diagonal.
	var i, r, c int
	for i = 1; i < m.nrow; i++ {
		for c = 0; c < min(i, n); c++ {
			if !m.data[i][c].negligible(limit) {
				return fmt.Errorf("entry (%d,%d): %w", i+1, c+1, ErrNotEchelon)
			}
		}
	}
	// Precondition 2: every diagonal pivot carries signal.
	for i = 0; i < n; i++ {
		if m.data[i][i].negligible(limit) {
			return fmt.Errorf("pivot %d: %w", i+1, ErrZeroDeterminant)
		}
	}

	// Eliminate above each pivot, bottom-up.
	var pivot, factor Element
	for i = n - 1; i >= 1; i-- {
		pivot = m.data[i][i]
		for r = i - 1; r >= 0; r-- {
			if m.data[r][i].negligible(limit) {
				continue
			}
			factor = m.data[r][i].Div(pivot)
			for c = i; c < m.ncol; c++ {
				m.data[r][c] = m.data[r][c].Sub(factor.Mul(m.data[i][c])).snap(limit)
			}
		}
	}

	// Normalize every pivot to exactly 1.
	one := ElInt(1)
	for i = 0; i < n; i++ {
		if pivot = m.data[i][i]; pivot.Equal(one) {
			continue // skip division by 1
		}
		for c = i; c < m.ncol; c++ {
			m.data[i][c] = m.data[i][c].Div(pivot).snap(limit)
		}
	}

	return nil
}

// Determinant computes the determinant by recursive Laplace expansion with
// sparsity-driven pivot selection, the result snapped under the round limit.
//
// Errors: ErrNonSquare. Complexity: up to O(n!) in the dense worst case;
// zero coefficients are skipped entirely, so sparse matrices collapse fast.
func (m *Matrix) Determinant(opts ...Option) (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return Element{}, matrixErrorf(opDeterminant, err)
	}

	return m.determinant(gatherOptions(opts...).roundLimit), nil
}

// determinant is the recursive kernel behind Determinant.
//
// Expansion runs along whichever of (a) the row with the most zero entries
// or (b) the column with the most zero entries has strictly more zeros;
// the row wins ties. Zero coefficients contribute nothing and their minors
// are never computed.
func (m *Matrix) determinant(limit int) Element {
	n := m.nrow
	var det Element

	// Small and structured fast paths.
	switch n {
	case 1:
		return m.data[0][0]
	case 2: // ad - bc
		det = m.data[0][0].Mul(m.data[1][1]).Sub(m.data[0][1].Mul(m.data[1][0]))
		return det.snap(limit)
	}
	if m.IsDiagonal() {
		det = m.data[0][0]
		var i int
		for i = 1; i < n; i++ {
			det = det.Mul(m.data[i][i])
		}
		return det.snap(limit)
	}

	// Pick the sparsest line to expand along.
	var i, j, zeros int
	bestRow, bestRowZeros := 0, -1
	for i = 0; i < n; i++ {
		zeros = 0
		for j = 0; j < n; j++ {
			if m.data[i][j].IsZero() {
				zeros++
			}
		}
		if zeros > bestRowZeros {
			bestRow, bestRowZeros = i, zeros
		}
	}
	bestCol, bestColZeros := 0, -1
	for j = 0; j < n; j++ {
		zeros = 0
		for i = 0; i < n; i++ {
			if m.data[i][j].IsZero() {
				zeros++
			}
		}
		if zeros > bestColZeros {
			bestCol, bestColZeros = j, zeros
		}
	}

	var coef, term Element
	if bestColZeros > bestRowZeros {
		// Expand along column bestCol.
		for i = 0; i < n; i++ {
			if coef = m.data[i][bestCol]; coef.IsZero() {
				continue // term vanishes, minor never computed
			}
			term = coef.Mul(m.submatrix(i, bestCol).determinant(limit))
			if (i+bestCol)%2 == 1 {
				term = term.Neg()
			}
			det = det.Add(term)
		}
	} else {
		// Expand along row bestRow (preferred on ties).
		for j = 0; j < n; j++ {
			if coef = m.data[bestRow][j]; coef.IsZero() {
				continue
			}
			term = coef.Mul(m.submatrix(bestRow, j).determinant(limit))
			if (bestRow+j)%2 == 1 {
				term = term.Neg()
			}
			det = det.Add(term)
		}
	}

	return det.snap(limit)
}

// submatrix returns a copy of m with 0-based row dr and column dc removed.
// Internal: assumes nrow, ncol >= 2.
func (m *Matrix) submatrix(dr, dc int) *Matrix {
	out := &Matrix{nrow: m.nrow - 1, ncol: m.ncol - 1, data: make([][]Element, m.nrow-1)}
	var i, j, oi, oj int
	for i = 0; i < m.nrow; i++ {
		if i == dr {
			continue
		}
		row := make([]Element, out.ncol)
		for j, oj = 0, 0; j < m.ncol; j++ {
			if j == dc {
				continue
			}
			row[oj] = m.data[i][j]
			oj++
		}
		out.data[oi] = row
		oi++
	}

	return out
}

// Minor returns the determinant of m with the 1-based row i and column j
// removed.
//
// Errors: ErrNonSquare, ErrIndexOutOfRange, ErrInvalidDimension for a 1×1
// matrix. Complexity: as Determinant on order n-1.
func (m *Matrix) Minor(i, j int, opts ...Option) (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return Element{}, matrixErrorf(opMinor, err)
	}
	if m.nrow < 2 {
		return Element{}, matrixErrorf(opMinor,
			fmt.Errorf("order %d has no minors: %w", m.nrow, ErrInvalidDimension))
	}
	if err := m.validateIndex(i, j); err != nil {
		return Element{}, matrixErrorf(opMinor, err)
	}

	return m.submatrix(i-1, j-1).determinant(gatherOptions(opts...).roundLimit), nil
}

// Inverse computes A^-1 by Gauss–Jordan elimination on the matrix augmented
// with the identity of the same order: forward elimination, a pivot check on
// the left block, back substitution, and the right block is the inverse.
// The receiver is not mutated.
//
// Errors: ErrNonSquare; ErrZeroDeterminant when the matrix is singular
// within the round limit. Complexity: O(n³).
func (m *Matrix) Inverse(opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	limit := gatherOptions(opts...).roundLimit
	n := m.nrow
	id, err := Identity(n)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	aug, err := m.Augment(id)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	aug.rowEchelon(true, limit)

	// Every pivot of the left block must survive, or A is not invertible.
	var i int
	for i = 0; i < n; i++ {
		if aug.data[i][i].negligible(limit) {
			return nil, matrixErrorf(opInverse, ErrZeroDeterminant)
		}
	}

	if err = aug.backSubstitution(limit); err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	// The right block now holds A^-1.
	inv, err := aug.Block(All, Span{Start: n + 1, Stop: 2 * n})
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}

// Rank row-reduces a copy and counts the rows that kept at least one
// non-negligible entry. The receiver is not mutated.
// Complexity: O(r*c*min(r,c)).
func (m *Matrix) Rank(opts ...Option) int {
	limit := gatherOptions(opts...).roundLimit
	red := m.Copy()
	red.rowEchelon(false, limit)

	rank := 0
	var i int
	for i = 0; i < red.nrow; i++ {
		if !red.rowNegligible(i, limit) {
			rank++
		}
	}

	return rank
}
