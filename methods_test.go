// SPDX-License-Identifier: MIT

// Package matrix_test exercises the structural transforms (transpose, flips,
// rotations), the diagonal surfaces and the shape predicates.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnonymouX47/matrix"
)

// TestTranspose covers the in-place and copy-returning forms, including the
// dimension swap on non-square matrices.
func TestTranspose(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	ta := m.Transposed()
	require.Equal(t, 3, ta.NRows())
	require.Equal(t, 2, ta.NCols())
	require.Equal(t, []float64{1, 4, 2, 5, 3, 6}, elems(t, ta))
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, elems(t, m)) // source untouched

	// In-place transpose swaps the dimensions, invalidating views.
	r, err := m.Rows().At(1)
	require.NoError(t, err)
	m.Transpose()
	require.Equal(t, 3, m.NRows())
	require.True(t, m.Equal(ta))
	_, err = r.At(1)
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
}

// TestFlipsAndRotations pins the element movement of every orientation
// transform.
func TestFlipsAndRotations(t *testing.T) {
	t.Parallel()

	src := [][]float64{{1, 2}, {3, 4}}

	m := mustFromRows(t, src)
	m.FlipHorizontal() // mirror across the vertical axis
	require.Equal(t, []float64{2, 1, 4, 3}, elems(t, m))

	m = mustFromRows(t, src)
	m.FlipVertical() // mirror across the horizontal axis
	require.Equal(t, []float64{3, 4, 1, 2}, elems(t, m))

	m = mustFromRows(t, src)
	require.Equal(t, []float64{2, 1, 4, 3}, elems(t, m.FlippedHorizontal()))
	require.Equal(t, []float64{3, 4, 1, 2}, elems(t, m.FlippedVertical()))
	require.Equal(t, []float64{3, 1, 4, 2}, elems(t, m.RotateRight()))
	require.Equal(t, []float64{2, 4, 1, 3}, elems(t, m.RotateLeft()))
	require.Equal(t, []float64{1, 2, 3, 4}, elems(t, m)) // copies all along

	// A quarter turn of a non-square matrix swaps the dimensions.
	wide := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	turned := wide.RotateRight()
	require.Equal(t, 3, turned.NRows())
	require.Equal(t, 2, turned.NCols())
	require.Equal(t, []float64{4, 1, 5, 2, 6, 3}, elems(t, turned))
}

// TestDiagonalSurfaces covers Trace, Diagonal and SetDiagonal.
func TestDiagonalSurfaces(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	tr, err := m.Trace()
	require.NoError(t, err)
	require.Equal(t, "5", tr.String())

	d, err := m.Diagonal()
	require.NoError(t, err)
	require.Equal(t, "1", d[0].String())
	require.Equal(t, "4", d[1].String())

	require.NoError(t, m.SetDiagonal(matrix.Floats{9, 9}))
	require.Equal(t, []float64{9, 2, 3, 9}, elems(t, m))
	require.ErrorIs(t, m.SetDiagonal(matrix.Floats{1}), matrix.ErrInvalidDimension)

	// Diagonal surfaces require a square matrix.
	wide := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = wide.Trace()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	_, err = wide.Diagonal()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.ErrorIs(t, wide.SetDiagonal(matrix.Floats{1, 1}), matrix.ErrNonSquare)
}

// TestPredicates_TableDriven classifies a set of matrices against every
// structural predicate.
func TestPredicates_TableDriven(t *testing.T) {
	t.Parallel()

	diag := mustFromRows(t, [][]float64{{2, 0}, {0, 3}})
	unit := mustFromRows(t, [][]float64{{1, 0}, {0, 1}})
	null := mustFromRows(t, [][]float64{{0, 0}, {0, 0}})
	sym := mustFromRows(t, [][]float64{{1, 7}, {7, 2}})
	skew := mustFromRows(t, [][]float64{{0, 4}, {-4, 0}})
	upper := mustFromRows(t, [][]float64{{1, 5}, {0, 2}})
	lower := mustFromRows(t, [][]float64{{1, 0}, {5, 2}})
	wide := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	require.True(t, diag.IsSquare())
	require.False(t, wide.IsSquare())

	require.True(t, diag.IsDiagonal())
	require.False(t, sym.IsDiagonal())
	require.True(t, unit.IsUnit())
	require.False(t, diag.IsUnit())
	require.True(t, null.IsNull())
	require.False(t, unit.IsNull())

	require.True(t, sym.IsSymmetric())
	require.False(t, upper.IsSymmetric())
	require.True(t, skew.IsSkewSymmetric())
	require.False(t, sym.IsSkewSymmetric())

	require.True(t, upper.IsUpperTriangular())
	require.False(t, lower.IsUpperTriangular())
	require.True(t, lower.IsLowerTriangular())
	require.True(t, upper.IsTriangular())
	require.True(t, diag.IsTriangular()) // diagonal is both
}

// TestIsOrthogonal verifies Q·Qᵀ == I detection, including a rotation
// matrix that only passes thanks to tolerance snapping.
func TestIsOrthogonal(t *testing.T) {
	t.Parallel()

	// A permutation matrix is exactly orthogonal.
	perm := mustFromRows(t, [][]float64{{0, 1}, {1, 0}})
	ok, err := perm.IsOrthogonal()
	require.NoError(t, err)
	require.True(t, ok)

	// A plain scaling matrix is not.
	scale := mustFromRows(t, [][]float64{{2, 0}, {0, 2}})
	ok, err = scale.IsOrthogonal()
	require.NoError(t, err)
	require.False(t, ok)

	// Orthogonality is only defined for square matrices.
	wide := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	_, err = wide.IsOrthogonal()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

// TestConformable verifies the free-function product check.
func TestConformable(t *testing.T) {
	t.Parallel()

	a := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}}) // 2x3
	b := mustFromRows(t, [][]float64{{1}, {2}, {3}})        // 3x1

	require.True(t, matrix.Conformable(a, b))
	require.False(t, matrix.Conformable(b, a))
}
