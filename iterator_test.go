// SPDX-License-Identifier: MIT

// Package matrix_test exercises the seekable element cursor: row-major
// traversal, mid-iteration seeks, and resize detection.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnonymouX47/matrix"
)

// TestCursor_RowMajorTraversal verifies the scanner idiom over a full matrix.
func TestCursor_RowMajorTraversal(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	var got []float64
	cur := m.Elements()
	for cur.Next() {
		got = append(got, cur.Value().Float64())
	}
	require.NoError(t, cur.Err()) // natural exhaustion is not an error
	require.Equal(t, []float64{1, 2, 3, 4, 5, 6}, got)

	// An exhausted cursor stays exhausted.
	require.False(t, cur.Next())
}

// TestCursor_Seek verifies redirection to the head of a row.
func TestCursor_Seek(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	cur := m.Elements()
	require.True(t, cur.Next()) // consume (1,1)
	cur.Seek(2)                 // next produced element is (2,1)
	require.True(t, cur.Next())
	require.Equal(t, float64(4), cur.Value().Float64())

	// Out-of-range row terminates with a distinguishable reason.
	cur.Seek(5)
	require.False(t, cur.Next())
	require.ErrorIs(t, cur.Err(), matrix.ErrSeekOutOfRange)
}

// TestCursor_SeekAt verifies positioning onto an element: the next produced
// element is its row-major successor.
func TestCursor_SeekAt(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	// Successor of (1,3) wraps to (2,1).
	cur := m.Elements()
	cur.SeekAt(1, 3)
	require.True(t, cur.Next())
	require.Equal(t, float64(4), cur.Value().Float64())

	// Successor of the last element is natural exhaustion, not an error.
	cur = m.Elements()
	cur.SeekAt(2, 3)
	require.False(t, cur.Next())
	require.NoError(t, cur.Err())

	// Out-of-range column.
	cur = m.Elements()
	cur.SeekAt(1, 4)
	require.False(t, cur.Next())
	require.ErrorIs(t, cur.Err(), matrix.ErrSeekOutOfRange)
}

// TestCursor_ResizeDetection verifies iteration refuses to read through a
// structural change.
func TestCursor_ResizeDetection(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2}, {3, 4}})

	cur := m.Elements()
	require.True(t, cur.Next())
	require.NoError(t, m.Resize(3, 2)) // dimension change mid-iteration
	require.False(t, cur.Next())
	require.ErrorIs(t, cur.Err(), matrix.ErrViewInvalidated)

	// A fresh cursor over the resized matrix works.
	cur = m.Elements()
	n := 0
	for cur.Next() {
		n++
	}
	require.NoError(t, cur.Err())
	require.Equal(t, 6, n)
}
