// SPDX-License-Identifier: MIT

// Package matrix: whole-matrix arithmetic.
//
// Every operator exists in a copy-returning form (Add, Sub, Scale, ScaleDiv,
// MatMul, Augment, Pow) and an in-place form (the *Assign family). The
// copy-returning forms never mutate an operand; the in-place forms replace
// the receiver's contents, and when the result has a different shape
// (MatMulAssign, AugmentAssign) the dimension change invalidates outstanding
// views exactly like a resize. All operations fail fast on validation and
// commit nothing on failure.
//
// Scalar multiplication takes the scalar as a plain argument, so it is
// commutative by construction; there is no separate reflected form to keep
// in sync. Products and quotients are snapped under the round limit to keep
// chained computations free of floating-point noise.
package matrix

import "fmt"

// Operation name constants for unified error wrapping (no magic strings).
const (
	opAdd      = "Add"
	opSub      = "Sub"
	opScale    = "Scale"
	opScaleDiv = "ScaleDiv"
	opMatMul   = "MatMul"
	opAugment  = "Augment"
	opPow      = "Pow"
)

// addSub computes out = m + sign*o elementwise for sign ∈ {+1, -1}.
// Shared validation and loop for Add/Sub.
func (m *Matrix) addSub(o *Matrix, negate bool, opTag string) (*Matrix, error) {
	// Validate operand and shapes.
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if err := ValidateSameShape(m, o); err != nil {
		return nil, matrixErrorf(opTag, err)
	}

	out := m.Copy()
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			if negate {
				out.data[i][j] = out.data[i][j].Sub(o.data[i][j])
			} else {
				out.data[i][j] = out.data[i][j].Add(o.data[i][j])
			}
		}
	}

	return out, nil
}

// Add returns the elementwise sum m + o as a fresh matrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimension. Complexity: O(r*c).
func (m *Matrix) Add(o *Matrix) (*Matrix, error) { return m.addSub(o, false, opAdd) }

// Sub returns the elementwise difference m - o as a fresh matrix.
//
// Errors: ErrNilMatrix, ErrInvalidDimension. Complexity: O(r*c).
func (m *Matrix) Sub(o *Matrix) (*Matrix, error) { return m.addSub(o, true, opSub) }

// Scale returns m multiplied by the scalar k, each product snapped under the
// round limit. Scalar multiplication is commutative; there is no separate
// reflected entry point.
//
// Errors: ErrNaNInf. Complexity: O(r*c).
func (m *Matrix) Scale(k float64, opts ...Option) (*Matrix, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opScale, err)
	}

	limit := gatherOptions(opts...).roundLimit
	ke := El(k)
	out := m.Copy()
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			out.data[i][j] = out.data[i][j].Mul(ke).snap(limit)
		}
	}

	return out, nil
}

// ScaleDiv returns m divided by the scalar k, each quotient snapped under
// the round limit.
//
// Errors: ErrNaNInf, ErrZeroDivision (k negligible under the limit).
// Complexity: O(r*c).
func (m *Matrix) ScaleDiv(k float64, opts ...Option) (*Matrix, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, matrixErrorf(opScaleDiv, err)
	}

	limit := gatherOptions(opts...).roundLimit
	ke := El(k)
	if ke.negligible(limit) {
		return nil, matrixErrorf(opScaleDiv, ErrZeroDivision)
	}

	out := m.Copy()
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			out.data[i][j] = out.data[i][j].Div(ke).snap(limit)
		}
	}

	return out, nil
}

// MatMul returns the matrix product m @ o as a fresh matrix, each dot
// product snapped under the round limit. Zero coefficients are skipped in
// the inner accumulation.
//
// Errors: ErrNilMatrix, ErrInvalidDimension (inner mismatch).
// Complexity: O(r*n*c).
func (m *Matrix) MatMul(o *Matrix, opts ...Option) (*Matrix, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}
	if err := ValidateConformable(m, o); err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	limit := gatherOptions(opts...).roundLimit
	out, err := New(m.nrow, o.ncol)
	if err != nil {
		return nil, matrixErrorf(opMatMul, err)
	}

	var (
		i, j, k int
		av, sum Element
	)
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < o.ncol; j++ {
			sum = Element{}
			for k = 0; k < m.ncol; k++ {
				if av = m.data[i][k]; av.IsZero() {
					continue // skip zero coefficient
				}
				sum = sum.Add(av.Mul(o.data[k][j]))
			}
			out.data[i][j] = sum.snap(limit)
		}
	}

	return out, nil
}

// Augment returns m with the columns of o appended on the right
// (row-wise augmentation). Row counts must match.
//
// Errors: ErrNilMatrix, ErrInvalidDimension. Complexity: O(r*(c1+c2)).
func (m *Matrix) Augment(o *Matrix) (*Matrix, error) {
	if err := ValidateNotNil(o); err != nil {
		return nil, matrixErrorf(opAugment, err)
	}
	if m.nrow != o.nrow {
		return nil, matrixErrorf(opAugment,
			fmt.Errorf("rows %d vs %d: %w", m.nrow, o.nrow, ErrInvalidDimension))
	}

	out := &Matrix{nrow: m.nrow, ncol: m.ncol + o.ncol, data: make([][]Element, m.nrow)}
	var i int
	for i = 0; i < m.nrow; i++ {
		row := make([]Element, 0, out.ncol)
		row = append(row, m.data[i]...)
		row = append(row, o.data[i]...)
		out.data[i] = row
	}

	return out, nil
}

// Pow raises a square matrix to an integer power: k >= 1 is repeated matrix
// multiplication, k == -1 is the inverse. Zero and other negative exponents
// are unsupported.
//
// Errors: ErrNonSquare, ErrBadExponent, ErrZeroDeterminant (k == -1 on a
// singular matrix). Complexity: O(k*n³).
func (m *Matrix) Pow(k int, opts ...Option) (*Matrix, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opPow, err)
	}
	if k == -1 {
		return m.Inverse(opts...)
	}
	if k < 1 {
		return nil, matrixErrorf(opPow, fmt.Errorf("exponent %d: %w", k, ErrBadExponent))
	}

	out := m.Copy()
	var (
		i   int
		err error
	)
	for i = 1; i < k; i++ {
		if out, err = out.MatMul(m, opts...); err != nil {
			return nil, matrixErrorf(opPow, err)
		}
	}

	return out, nil
}

// Equal reports exact structural equality: same shape, numerically equal
// elements. Complexity: O(r*c).
func (m *Matrix) Equal(o *Matrix) bool {
	if o == nil || m.nrow != o.nrow || m.ncol != o.ncol {
		return false
	}
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			if !m.data[i][j].Equal(o.data[i][j]) {
				return false
			}
		}
	}

	return true
}

// EqualWithin reports equality of shape plus elementwise closeness under
// the round limit (|a-b| below 10^-limit).
// Complexity: O(r*c).
func (m *Matrix) EqualWithin(o *Matrix, opts ...Option) bool {
	if o == nil || m.nrow != o.nrow || m.ncol != o.ncol {
		return false
	}

	limit := gatherOptions(opts...).roundLimit
	var i, j int
	for i = 0; i < m.nrow; i++ {
		for j = 0; j < m.ncol; j++ {
			if !m.data[i][j].Sub(o.data[i][j]).negligible(limit) {
				return false
			}
		}
	}

	return true
}

// ---------- in-place forms ----------

// replaceWith moves the contents of src into m. Shape changes propagate to
// the dimension stamp, invalidating outstanding views.
func (m *Matrix) replaceWith(src *Matrix) {
	m.nrow, m.ncol, m.data = src.nrow, src.ncol, src.data
}

// AddAssign adds o into m in place.
func (m *Matrix) AddAssign(o *Matrix) error {
	out, err := m.Add(o)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}

// SubAssign subtracts o from m in place.
func (m *Matrix) SubAssign(o *Matrix) error {
	out, err := m.Sub(o)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}

// ScaleAssign multiplies m by the scalar k in place.
func (m *Matrix) ScaleAssign(k float64, opts ...Option) error {
	out, err := m.Scale(k, opts...)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}

// ScaleDivAssign divides m by the scalar k in place.
func (m *Matrix) ScaleDivAssign(k float64, opts ...Option) error {
	out, err := m.ScaleDiv(k, opts...)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}

// MatMulAssign replaces m with the product m @ o. The column count may
// change, invalidating outstanding views.
func (m *Matrix) MatMulAssign(o *Matrix, opts ...Option) error {
	out, err := m.MatMul(o, opts...)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}

// AugmentAssign appends the columns of o to m in place. The column count
// grows, invalidating outstanding views.
func (m *Matrix) AugmentAssign(o *Matrix) error {
	out, err := m.Augment(o)
	if err != nil {
		return err
	}
	m.replaceWith(out)

	return nil
}
