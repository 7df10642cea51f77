// SPDX-License-Identifier: MIT

// Package matrix: shape transforms, properties and structural predicates.
//
// Transforms come in two flavors: in-place (Transpose, FlipHorizontal,
// FlipVertical) and copy-returning (Transposed, RotateLeft, RotateRight,
// and the Flipped* forms). An in-place transpose of a non-square matrix
// changes the dimension pair and therefore invalidates outstanding views,
// exactly like a resize.
package matrix

// Transpose transposes the matrix in place. For a non-square matrix this
// swaps the dimensions, which invalidates every outstanding view.
// Complexity: O(nrow*ncol).
func (m *Matrix) Transpose() {
	data := make([][]Element, m.ncol)
	var i, j int
	for i = range data {
		data[i] = make([]Element, m.nrow)
		for j = 0; j < m.nrow; j++ {
			data[i][j] = m.data[j][i]
		}
	}
	m.data = data
	m.nrow, m.ncol = m.ncol, m.nrow
}

// Transposed returns a transposed copy; the receiver is not mutated.
// Complexity: O(nrow*ncol).
func (m *Matrix) Transposed() *Matrix {
	out := m.Copy()
	out.Transpose()

	return out
}

// FlipHorizontal reverses the element order of every row in place
// (mirror across the vertical axis). Complexity: O(nrow*ncol).
func (m *Matrix) FlipHorizontal() {
	var i, l, r int
	for i = range m.data {
		for l, r = 0, m.ncol-1; l < r; l, r = l+1, r-1 {
			m.data[i][l], m.data[i][r] = m.data[i][r], m.data[i][l]
		}
	}
}

// FlipVertical reverses the row order in place (mirror across the
// horizontal axis). Complexity: O(nrow).
func (m *Matrix) FlipVertical() {
	var t, b int
	for t, b = 0, m.nrow-1; t < b; t, b = t+1, b-1 {
		m.data[t], m.data[b] = m.data[b], m.data[t]
	}
}

// FlippedHorizontal returns a horizontally mirrored copy.
func (m *Matrix) FlippedHorizontal() *Matrix {
	out := m.Copy()
	out.FlipHorizontal()

	return out
}

// FlippedVertical returns a vertically mirrored copy.
func (m *Matrix) FlippedVertical() *Matrix {
	out := m.Copy()
	out.FlipVertical()

	return out
}

// RotateRight returns a copy rotated 90° clockwise, composed from
// transpose + horizontal flip. Complexity: O(nrow*ncol).
func (m *Matrix) RotateRight() *Matrix {
	out := m.Transposed()
	out.FlipHorizontal()

	return out
}

// RotateLeft returns a copy rotated 90° counter-clockwise, composed from
// transpose + vertical flip. Complexity: O(nrow*ncol).
func (m *Matrix) RotateLeft() *Matrix {
	out := m.Transposed()
	out.FlipVertical()

	return out
}

// Trace returns the sum of the main diagonal.
//
// Errors: ErrNonSquare. Complexity: O(n).
func (m *Matrix) Trace() (Element, error) {
	if err := ValidateSquare(m); err != nil {
		return Element{}, matrixErrorf("Trace", err)
	}

	var sum Element
	var i int
	for i = 0; i < m.nrow; i++ {
		sum = sum.Add(m.data[i][i])
	}

	return sum, nil
}

// Diagonal returns a value snapshot of the main diagonal.
//
// Errors: ErrNonSquare. Complexity: O(n).
func (m *Matrix) Diagonal() (Values, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf("Diagonal", err)
	}

	out := make(Values, m.nrow)
	var i int
	for i = range out {
		out[i] = m.data[i][i]
	}

	return out, nil
}

// SetDiagonal overwrites the main diagonal with the given vector, whose
// length must equal the order (all-or-nothing).
//
// Errors: ErrNonSquare, ErrInvalidDimension, propagated operand failures.
// Complexity: O(n).
func (m *Matrix) SetDiagonal(v Vector) error {
	if err := ValidateSquare(m); err != nil {
		return matrixErrorf("SetDiagonal", err)
	}
	vals, err := readVector(v, m.nrow)
	if err != nil {
		return matrixErrorf("SetDiagonal", err)
	}
	var i int
	for i = range vals {
		m.data[i][i] = vals[i]
	}

	return nil
}

// ---------- structural predicates ----------

// IsSquare reports nrow == ncol. Complexity: O(1).
func (m *Matrix) IsSquare() bool { return m.nrow == m.ncol }

// IsNull reports whether every element is exactly zero. Complexity: O(n²).
func (m *Matrix) IsNull() bool {
	var (
		row []Element
		e   Element
	)
	for _, row = range m.data {
		for _, e = range row {
			if !e.IsZero() {
				return false
			}
		}
	}

	return true
}

// IsDiagonal reports whether m is square with every off-diagonal element
// exactly zero. Complexity: O(n²).
func (m *Matrix) IsDiagonal() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			if i != j && !m.data[i][j].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsUnit reports whether m is the identity matrix. Complexity: O(n²).
func (m *Matrix) IsUnit() bool {
	if !m.IsDiagonal() {
		return false
	}

	one := ElInt(1)
	var i int
	for i = 0; i < m.nrow; i++ {
		if !m.data[i][i].Equal(one) {
			return false
		}
	}

	return true
}

// IsSymmetric reports whether m equals its transpose. Complexity: O(n²).
func (m *Matrix) IsSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = i + 1; j < m.ncol; j++ { // upper triangle only
			if !m.data[i][j].Equal(m.data[j][i]) {
				return false
			}
		}
	}

	return true
}

// IsSkewSymmetric reports whether m equals the negation of its transpose
// (which forces a zero diagonal). Complexity: O(n²).
func (m *Matrix) IsSkewSymmetric() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 0; i < m.nrow; i++ {
		if !m.data[i][i].IsZero() {
			return false
		}
		for j = i + 1; j < m.ncol; j++ {
			if !m.data[i][j].Equal(m.data[j][i].Neg()) {
				return false
			}
		}
	}

	return true
}

// IsUpperTriangular reports whether m is square with every element below
// the main diagonal exactly zero. Complexity: O(n²).
func (m *Matrix) IsUpperTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 1; i < m.nrow; i++ {
		for j = 0; j < i; j++ {
			if !m.data[i][j].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsLowerTriangular reports whether m is square with every element above
// the main diagonal exactly zero. Complexity: O(n²).
func (m *Matrix) IsLowerTriangular() bool {
	if !m.IsSquare() {
		return false
	}
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = i + 1; j < m.ncol; j++ {
			if !m.data[i][j].IsZero() {
				return false
			}
		}
	}

	return true
}

// IsTriangular reports whether m is upper or lower triangular.
func (m *Matrix) IsTriangular() bool {
	return m.IsUpperTriangular() || m.IsLowerTriangular()
}

// IsOrthogonal reports whether m multiplied by its transpose yields the
// identity within the round limit.
//
// Errors: ErrNonSquare. Complexity: O(n³).
func (m *Matrix) IsOrthogonal(opts ...Option) (bool, error) {
	if err := ValidateSquare(m); err != nil {
		return false, matrixErrorf("IsOrthogonal", err)
	}

	prod, err := m.MatMul(m.Transposed(), opts...)
	if err != nil {
		return false, matrixErrorf("IsOrthogonal", err)
	}

	// Products were snapped under the round limit, so an orthogonal matrix
	// reduces to the exact identity here.
	return prod.IsUnit(), nil
}

// Conformable reports whether the product a @ b is defined
// (a.ncol == b.nrow). Nil inputs are not conformable. Complexity: O(1).
func Conformable(a, b *Matrix) bool {
	return a != nil && b != nil && a.ncol == b.nrow
}
