// SPDX-License-Identifier: MIT

// Package matrix_test exercises the row view family: collection access,
// slicing, live single-row views, per-row arithmetic, deletion and the
// stamp-based invalidation contract.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnonymouX47/matrix"
)

// TestRows_AccessAndSetFrom verifies indexed access and whole-row
// assignment through the collection view.
func TestRows_AccessAndSetFrom(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows := m.Rows()
	require.Equal(t, 2, rows.Len())

	r, err := rows.At(2)
	require.NoError(t, err)
	require.Equal(t, 2, r.Index())
	e, err := r.At(3)
	require.NoError(t, err)
	require.Equal(t, "6", e.String())

	_, err = rows.At(0)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	// Whole-row assignment from a plain float vector.
	require.NoError(t, rows.SetFrom(1, matrix.Floats{7, 8, 9}))
	require.Equal(t, []float64{7, 8, 9, 4, 5, 6}, elems(t, m))

	// Length mismatches and non-finite operands leave the row untouched.
	require.ErrorIs(t, rows.SetFrom(1, matrix.Floats{1, 2}), matrix.ErrInvalidDimension)
	require.ErrorIs(t, rows.SetFrom(1, matrix.Floats{1, nan(), 3}), matrix.ErrNaNInf)
	require.Equal(t, []float64{7, 8, 9, 4, 5, 6}, elems(t, m))
}

// TestRow_LiveReadsAndWrites verifies a Row is a window, not a copy.
func TestRow_LiveReadsAndWrites(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	r, err := m.Rows().At(1)
	require.NoError(t, err)

	// Writes through the view land in the matrix.
	require.NoError(t, r.Set(2, 20))
	require.Equal(t, []float64{1, 20, 3, 4}, elems(t, m))

	// Writes to the matrix are visible through the view.
	require.NoError(t, m.Set(1, 1, 10))
	e, err := r.At(1)
	require.NoError(t, err)
	require.Equal(t, "10", e.String())

	// Elements is a value snapshot, detached from the live row.
	vals, err := r.Elements()
	require.NoError(t, err)
	require.NoError(t, r.Set(1, 0))
	require.Equal(t, "10", vals[0].String())
}

// TestRow_SlicesAndPredicates covers span reads/writes, Contains, IsZero
// and Equal.
func TestRow_SlicesAndPredicates(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3, 4, 5}, {0, 0, 0, 0, 0}})
	rows := m.Rows()

	r, err := rows.At(1)
	require.NoError(t, err)

	// Strided slice read: elements 1, 3, 5.
	vals, err := r.SliceElements(matrix.Span{Step: 2})
	require.NoError(t, err)
	require.Equal(t, 3, vals.Len())
	require.Equal(t, "3", vals[1].String())

	// Span write is all-or-nothing against the selection length.
	require.ErrorIs(t, r.SetSlice(matrix.Span{Stop: 2}, matrix.Floats{9}), matrix.ErrInvalidDimension)
	require.NoError(t, r.SetSlice(matrix.Span{Stop: 2}, matrix.Floats{9, 8}))
	require.Equal(t, []float64{9, 8, 3, 4, 5, 0, 0, 0, 0, 0}, elems(t, m))

	ok, err := r.Contains(4)
	require.NoError(t, err)
	require.True(t, ok)
	ok, err = r.Contains(42)
	require.NoError(t, err)
	require.False(t, ok)

	zero, err := rows.At(2)
	require.NoError(t, err)
	isZero, err := zero.IsZero()
	require.NoError(t, err)
	require.True(t, isZero)

	// Equality against a plain vector, against itself, and across lengths.
	eq, err := r.Equal(matrix.Floats{9, 8, 3, 4, 5})
	require.NoError(t, err)
	require.True(t, eq)
	eq, err = r.Equal(r)
	require.NoError(t, err)
	require.True(t, eq)
	eq, err = r.Equal(matrix.Floats{9, 8})
	require.NoError(t, err)
	require.False(t, eq)
}

// TestRowsSlice_Compose verifies ranged sub-views and slice-of-slice
// composition without re-deriving from the matrix.
func TestRowsSlice_Compose(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1}, {2}, {3}, {4}, {5}, {6}})

	// Rows 2, 4, 6.
	sl, err := m.Rows().Slice(matrix.Span{Start: 2, Step: 2})
	require.NoError(t, err)
	require.Equal(t, 3, sl.Len())
	r, err := sl.At(3)
	require.NoError(t, err)
	require.Equal(t, 6, r.Index())

	// Slice of the slice: selection indices 2..3 of (2,4,6) -> rows 4, 6.
	sub, err := sl.Slice(matrix.Span{Start: 2})
	require.NoError(t, err)
	require.Equal(t, 2, sub.Len())
	r, err = sub.At(1)
	require.NoError(t, err)
	require.Equal(t, 4, r.Index())
}

// TestRowIter verifies scanner-style iteration over rows and slices.
func TestRowIter(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 1}, {2, 2}, {3, 3}})

	var idx []int
	it := m.Rows().Iter()
	for it.Next() {
		idx = append(idx, it.Value().Index())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{1, 2, 3}, idx)

	// Resize mid-iteration stops with the invalidation sentinel.
	it = m.Rows().Iter()
	require.True(t, it.Next())
	require.NoError(t, m.Resize(0, 3))
	require.False(t, it.Next())
	require.ErrorIs(t, it.Err(), matrix.ErrViewInvalidated)
}

// TestRow_Arithmetic covers the copy-returning and in-place row forms.
func TestRow_Arithmetic(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	rows := m.Rows()
	r1, err := rows.At(1)
	require.NoError(t, err)
	r2, err := rows.At(2)
	require.NoError(t, err)

	// Copy-returning forms leave the matrix untouched.
	sum, err := r1.Add(r2)
	require.NoError(t, err)
	require.Equal(t, "5", sum[0].String())
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, elems(t, m))

	diff, err := r2.Sub(matrix.Floats{1, 1, 1})
	require.NoError(t, err)
	require.Equal(t, "3", diff[0].String())

	prod, err := r1.MulElementwise(r2)
	require.NoError(t, err)
	require.Equal(t, "18", prod[2].String())

	quot, err := r2.DivElementwise(matrix.Floats{2, 2, 2})
	require.NoError(t, err)
	require.Equal(t, "2.5", quot[1].String())
	_, err = r2.DivElementwise(matrix.Floats{1, 0, 1})
	require.ErrorIs(t, err, matrix.ErrZeroDivision)

	scaled, err := r1.Scale(2)
	require.NoError(t, err)
	require.Equal(t, "6", scaled[2].String())
	_, err = r1.ScaleDiv(0)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)

	// In-place forms write back through the view.
	require.NoError(t, r1.AddAssign(r2))
	require.Equal(t, []float64{5, 7, 9, 4, 5, 6}, elems(t, m))
	require.NoError(t, r2.ScaleAssign(10))
	require.Equal(t, []float64{5, 7, 9, 40, 50, 60}, elems(t, m))

	// A failed in-place operation changes nothing.
	require.ErrorIs(t, r1.DivAssign(matrix.Floats{0, 1, 1}), matrix.ErrZeroDivision)
	require.Equal(t, []float64{5, 7, 9, 40, 50, 60}, elems(t, m))
}

// TestRows_Delete verifies single and ranged deletion, the never-empty
// guard, and self-invalidation of the deleting view.
func TestRows_Delete(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 1}, {2, 2}, {3, 3}, {4, 4}})
	rows := m.Rows()

	require.NoError(t, rows.Delete(2))
	require.Equal(t, []float64{1, 1, 3, 3, 4, 4}, elems(t, m))

	// The delete changed the dimensions, so the view that performed it is
	// itself stale now.
	require.ErrorIs(t, rows.Delete(1), matrix.ErrViewInvalidated)
	_, err := rows.At(1)
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)

	// Ranged deletion of rows 1 and 3 of what remains.
	require.NoError(t, m.Rows().DeleteSpan(matrix.Span{Step: 2}))
	require.Equal(t, []float64{3, 3}, elems(t, m))

	// A matrix never becomes empty.
	require.ErrorIs(t, m.Rows().Delete(1), matrix.ErrEmptyMatrix)
	require.ErrorIs(t, m.Rows().DeleteSpan(matrix.All), matrix.ErrEmptyMatrix)
	require.Equal(t, []float64{3, 3}, elems(t, m))
}

// TestRow_Invalidation verifies every row surface refuses stale geometry.
func TestRow_Invalidation(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	r, err := m.Rows().At(1)
	require.NoError(t, err)

	require.NoError(t, m.Resize(2, 3)) // any dimension change invalidates

	_, err = r.At(1)
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
	require.ErrorIs(t, r.Set(1, 0), matrix.ErrViewInvalidated)
	_, err = r.Elements()
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
	_, err = r.Add(matrix.Floats{1, 1})
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
	require.Contains(t, r.String(), "invalidated")
}
