// SPDX-License-Identifier: MIT

// Package matrix: shared machinery of the view family.
//
// Rows/Columns collections, their slices and the single Row/Column views are
// index-based back-references into the owning matrix. None of them owns
// element data. Each captures the matrix dimension stamp at construction and
// verifies it before every observable operation: a mismatch means the matrix
// was resized since, the geometry the view was built on is gone, and the
// operation fails with ErrViewInvalidated instead of silently reading stale
// indices. The check is cooperative, not preventive: a broken view stays
// broken, but it can never corrupt memory; obtain a fresh view to continue.
//
// The elementwise kernels below operate on materialized snapshots so that
// every operand is fully validated before any result element is produced.
package matrix

import "fmt"

// checkStamp verifies that m still has the dimensions captured in s.
// Returns ErrViewInvalidated (tagged with the view description) on mismatch.
// Complexity: O(1).
func checkStamp(m *Matrix, s stamp, what string) error {
	if m.stampNow() != s {
		return matrixErrorf(what, ErrViewInvalidated)
	}

	return nil
}

// ---------- elementwise kernels (internal) ----------
// All kernels assume len(a) == len(b) (enforced by readVector upstream).

// ewAdd returns a + b elementwise.
func ewAdd(a, b []Element) Values {
	out := make(Values, len(a))
	var i int
	for i = range a {
		out[i] = a[i].Add(b[i])
	}

	return out
}

// ewSub returns a - b elementwise.
func ewSub(a, b []Element) Values {
	out := make(Values, len(a))
	var i int
	for i = range a {
		out[i] = a[i].Sub(b[i])
	}

	return out
}

// ewMul returns a * b elementwise, each product snapped under limit.
func ewMul(a, b []Element, limit int) Values {
	out := make(Values, len(a))
	var i int
	for i = range a {
		out[i] = a[i].Mul(b[i]).snap(limit)
	}

	return out
}

// ewDiv returns a / b elementwise, each quotient snapped under limit.
// Every divisor is checked before any division happens.
// Errors: ErrZeroDivision naming the offending position.
func ewDiv(a, b []Element, limit int) (Values, error) {
	var i int
	for i = range b {
		if b[i].negligible(limit) {
			return nil, fmt.Errorf("divisor %d: %w", i+1, ErrZeroDivision)
		}
	}

	out := make(Values, len(a))
	for i = range a {
		out[i] = a[i].Div(b[i]).snap(limit)
	}

	return out, nil
}

// ewScale returns a * k elementwise, snapped under limit.
func ewScale(a []Element, k Element, limit int) Values {
	out := make(Values, len(a))
	var i int
	for i = range a {
		out[i] = a[i].Mul(k).snap(limit)
	}

	return out
}

// ewScaleDiv returns a / k elementwise, snapped under limit.
// Errors: ErrZeroDivision when k is negligible.
func ewScaleDiv(a []Element, k Element, limit int) (Values, error) {
	if k.negligible(limit) {
		return nil, ErrZeroDivision
	}

	out := make(Values, len(a))
	var i int
	for i = range a {
		out[i] = a[i].Div(k).snap(limit)
	}

	return out, nil
}

// ewEqual reports exact elementwise equality of equal-length snapshots.
func ewEqual(a, b []Element) bool {
	var i int
	for i = range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}

	return true
}
