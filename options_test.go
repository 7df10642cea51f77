// SPDX-License-Identifier: MIT

// Package matrix_test exercises the numeric policy: the round limit option,
// negligibility and integer snapping as observed through the arithmetic
// surfaces.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/AnonymouX47/matrix"
)

// TestWithRoundLimit_Validation verifies the option constructor rejects
// nonsensical limits loudly.
func TestWithRoundLimit_Validation(t *testing.T) {
	t.Parallel()

	require.Equal(t, 12, matrix.DefaultRoundLimit)

	require.NotPanics(t, func() { matrix.WithRoundLimit(0) })
	require.NotPanics(t, func() { matrix.WithRoundLimit(100) })
	require.Panics(t, func() { matrix.WithRoundLimit(-1) })
	require.Panics(t, func() { matrix.WithRoundLimit(101) })
}

// TestRoundLimit_Negligibility verifies magnitudes below 10^-limit are
// treated as zero, and that the limit is an explicit per-call knob.
func TestRoundLimit_Negligibility(t *testing.T) {
	t.Parallel()

	tiny := mustFromRows(t, [][]float64{{1e-13}})

	// Under the default limit (12) the value counts as zero: scaling by 1
	// snaps it away, and dividing by it is a zero division.
	scaled, err := tiny.Scale(1)
	require.NoError(t, err)
	e, err := scaled.At(1, 1)
	require.NoError(t, err)
	require.True(t, e.IsZero())
	_, err = tiny.ScaleDiv(1e-13)
	require.ErrorIs(t, err, matrix.ErrZeroDivision)

	// A finer limit keeps the value alive.
	scaled, err = tiny.Scale(1, matrix.WithRoundLimit(14))
	require.NoError(t, err)
	e, err = scaled.At(1, 1)
	require.NoError(t, err)
	require.False(t, e.IsZero())
	_, err = tiny.ScaleDiv(1e-13, matrix.WithRoundLimit(14))
	require.NoError(t, err)
}

// TestRoundLimit_Snapping verifies near-integer results collapse onto the
// integer after tolerance-aware operations.
func TestRoundLimit_Snapping(t *testing.T) {
	t.Parallel()

	// 3 * (1/3) accumulates a 16-digit quotient; the product snaps to 1.
	third := mustFromRows(t, [][]float64{{1}})
	q, err := third.ScaleDiv(3)
	require.NoError(t, err)
	p, err := q.Scale(3)
	require.NoError(t, err)
	e, err := p.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, "1", e.String())

	// With an extreme limit the residue survives.
	p, err = q.Scale(3, matrix.WithRoundLimit(30))
	require.NoError(t, err)
	e, err = p.At(1, 1)
	require.NoError(t, err)
	require.NotEqual(t, "1", e.String())
}

// TestSentinelWrapping verifies every failure carries both the operation
// name and a matchable sentinel.
func TestSentinelWrapping(t *testing.T) {
	t.Parallel()

	m := mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	_, err := m.Determinant()
	require.ErrorIs(t, err, matrix.ErrNonSquare)
	require.Contains(t, err.Error(), "Determinant")
	require.Contains(t, err.Error(), "matrix:") // sentinel prefix survives wrapping

	_, err = m.MatMul(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	require.Contains(t, err.Error(), "MatMul")
}
