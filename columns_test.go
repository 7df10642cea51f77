// SPDX-License-Identifier: MIT

// Package matrix_test exercises the column view family, the transposed
// mirror of the row views: access runs down a column of every row.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnonymouX47/matrix"
)

// TestColumns_AccessAndSetFrom verifies column-axis indexed access and
// whole-column assignment.
func TestColumns_AccessAndSetFrom(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	cols := m.Columns()
	require.Equal(t, 3, cols.Len())

	c, err := cols.At(2)
	require.NoError(t, err)
	require.Equal(t, 2, c.Index())
	require.Equal(t, 2, c.Len()) // a column is nrow long

	vals, err := c.Elements()
	require.NoError(t, err)
	require.Equal(t, "2", vals[0].String())
	require.Equal(t, "5", vals[1].String())

	_, err = cols.At(4)
	require.ErrorIs(t, err, matrix.ErrIndexOutOfRange)

	// Whole-column assignment.
	require.NoError(t, cols.SetFrom(3, matrix.Floats{30, 60}))
	require.Equal(t, []float64{1, 2, 30, 4, 5, 60}, elems(t, m))
	require.ErrorIs(t, cols.SetFrom(3, matrix.Floats{1}), matrix.ErrInvalidDimension)
}

// TestColumn_LiveWritesAndArithmetic verifies write-through and the
// per-column arithmetic forms.
func TestColumn_LiveWritesAndArithmetic(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})
	cols := m.Columns()
	c1, err := cols.At(1)
	require.NoError(t, err)
	c2, err := cols.At(2)
	require.NoError(t, err)

	require.NoError(t, c1.Set(2, 30))
	require.Equal(t, []float64{1, 2, 30, 4}, elems(t, m))

	sum, err := c1.Add(c2)
	require.NoError(t, err)
	require.Equal(t, "3", sum[0].String())
	require.Equal(t, "34", sum[1].String())

	require.NoError(t, c2.ScaleAssign(0.5))
	require.Equal(t, []float64{1, 1, 30, 2}, elems(t, m))

	_, err = c1.ScaleDiv(0)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)
}

// TestColumns_Delete verifies column deletion, slicing and the never-empty
// guard on the column axis.
func TestColumns_Delete(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}})

	require.NoError(t, m.Columns().Delete(2))
	require.Equal(t, []float64{1, 3, 4, 5, 7, 8}, elems(t, m))
	require.Equal(t, 3, m.NCols())

	// Ranged deletion: columns 2..3 of what remains.
	require.NoError(t, m.Columns().DeleteSpan(matrix.Span{Start: 2, Stop: 3}))
	require.Equal(t, []float64{1, 5}, elems(t, m))

	require.ErrorIs(t, m.Columns().Delete(1), matrix.ErrEmptyMatrix)
	require.ErrorIs(t, m.Columns().DeleteSpan(matrix.All), matrix.ErrEmptyMatrix)
}

// TestColumnIter_AndInvalidation verifies scanner iteration and stale-view
// rejection on the column axis.
func TestColumnIter_AndInvalidation(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	var idx []int
	it := m.Columns().Iter()
	for it.Next() {
		idx = append(idx, it.Value().Index())
	}
	require.NoError(t, it.Err())
	require.Equal(t, []int{1, 2, 3}, idx)

	c, err := m.Columns().At(1)
	require.NoError(t, err)
	require.NoError(t, m.Resize(3, 0))
	_, err = c.At(1)
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
	_, err = c.Elements()
	require.ErrorIs(t, err, matrix.ErrViewInvalidated)
}

// TestColumnsSlice verifies ranged column sub-views.
func TestColumnsSlice(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3, 4, 5}, {6, 7, 8, 9, 10}})

	sl, err := m.Columns().Slice(matrix.Span{Step: 2}) // columns 1, 3, 5
	require.NoError(t, err)
	require.Equal(t, 3, sl.Len())

	c, err := sl.At(2)
	require.NoError(t, err)
	require.Equal(t, 3, c.Index())

	vals, err := c.Elements()
	require.NoError(t, err)
	require.Equal(t, "8", vals[1].String())
}
