// SPDX-License-Identifier: MIT

// Package matrix: the Element scalar and the tolerance policy.
//
// Element wraps an arbitrary-precision decimal so that matrix entries never
// accumulate binary floating-point artifacts. Every float64 entering the
// package is converted through the shortest decimal string representation
// (decimal.NewFromFloat), never through a lossy binary round-trip. Elements
// are immutable value types; arithmetic always yields a new Element.
package matrix

import (
	"math"

	"github.com/shopspring/decimal"
)

// Element is a single matrix entry: an immutable arbitrary-precision decimal.
// The zero value is the number 0.
type Element struct {
	d decimal.Decimal
}

// El converts a finite float64 into an Element losslessly.
// Integral floats keep their exactness via the integer path; fractional
// floats are converted through the shortest round-trip decimal string.
// v MUST be finite; ingestion boundaries validate with ValidateFinite
// before calling; a non-finite v here is a programmer error.
// Complexity: O(1).
func El(v float64) Element {
	// Keep integral values on the exact integer path.
	if v == math.Trunc(v) && math.Abs(v) < 1e18 {
		return Element{d: decimal.NewFromInt(int64(v))}
	}

	// NewFromFloat uses the minimal decimal digits that round-trip.
	return Element{d: decimal.NewFromFloat(v)}
}

// ElInt converts an int64 into an Element. Complexity: O(1).
func ElInt(n int64) Element {
	return Element{d: decimal.NewFromInt(n)}
}

// ElString parses a decimal literal (e.g. "3.14", "-2", "1e-9") into an
// Element. Returns the parse error of the underlying decimal library.
func ElString(s string) (Element, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Element{}, err
	}

	return Element{d: d}, nil
}

// Add returns e + o.
func (e Element) Add(o Element) Element { return Element{d: e.d.Add(o.d)} }

// Sub returns e - o.
func (e Element) Sub(o Element) Element { return Element{d: e.d.Sub(o.d)} }

// Mul returns e * o.
func (e Element) Mul(o Element) Element { return Element{d: e.d.Mul(o.d)} }

// Div returns e / o. The divisor MUST be non-zero; every public entry point
// guards divisors with ErrZeroDivision (or a negligibility check) first.
func (e Element) Div(o Element) Element { return Element{d: e.d.Div(o.d)} }

// Neg returns -e.
func (e Element) Neg() Element { return Element{d: e.d.Neg()} }

// Abs returns |e|.
func (e Element) Abs() Element { return Element{d: e.d.Abs()} }

// Cmp compares e and o: -1 if e < o, 0 if equal, +1 if e > o.
func (e Element) Cmp(o Element) int { return e.d.Cmp(o.d) }

// Equal reports exact numeric equality (no tolerance).
func (e Element) Equal(o Element) bool { return e.d.Equal(o.d) }

// Sign returns -1, 0 or +1 according to the sign of e.
func (e Element) Sign() int { return e.d.Sign() }

// IsZero reports whether e is exactly zero.
func (e Element) IsZero() bool { return e.d.IsZero() }

// Float64 returns the nearest float64 to e (possibly inexact).
func (e Element) Float64() float64 { return e.d.InexactFloat64() }

// String renders e in plain decimal notation.
func (e Element) String() string { return e.d.String() }

// ---------- tolerance policy (internal) ----------

// epsAt returns 10^-limit as a decimal, the negligibility threshold.
// Complexity: O(1).
func epsAt(limit int) decimal.Decimal {
	return decimal.New(1, -int32(limit)) // 1 * 10^-limit
}

// negligible reports whether |e| < 10^-limit, i.e. e is treated as zero
// under the configured round limit.
func (e Element) negligible(limit int) bool {
	return e.d.Abs().Cmp(epsAt(limit)) < 0
}

// snap replaces e with its nearest integer when the distance to that integer
// is below 10^-limit; otherwise e is returned unchanged. The decimal scalar
// has no negative zero, so snapping a tiny negative residue yields a clean 0.
// Complexity: O(1).
func (e Element) snap(limit int) Element {
	nearest := e.d.Round(0) // nearest integer, ties away from zero
	if e.d.Sub(nearest).Abs().Cmp(epsAt(limit)) < 0 {
		return Element{d: nearest}
	}

	return e
}
