// SPDX-License-Identifier: MIT

// Package matrix: the Vector abstraction shared by view arithmetic.
//
// A Vector is any fixed-length sequence of Elements addressable by 1-based
// index. Two families implement it:
//   - live views (*Row, *Column) that read through to their owning matrix
//     and fail once that matrix has been resized;
//   - value snapshots (Values, Floats) that own their data and never break.
//
// The caller chooses live-vs-snapshot at the access site; every elementwise
// operation accepts any Vector of matching length.
package matrix

import "fmt"

// Vector is a fixed-length, 1-indexed sequence of Elements.
type Vector interface {
	// Len returns the length of the sequence. For live views this is the
	// geometry captured at creation and never fails.
	Len() int

	// At returns the i-th (1-based) element. Live views return
	// ErrViewInvalidated once their matrix was resized; Floats return
	// ErrNaNInf for non-finite entries.
	At(i int) (Element, error)
}

// Values is a value-snapshot Vector of ready Elements.
type Values []Element

// Len returns the number of elements. Complexity: O(1).
func (v Values) Len() int { return len(v) }

// At returns the i-th (1-based) element.
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (v Values) At(i int) (Element, error) {
	if i < 1 || i > len(v) {
		return Element{}, fmt.Errorf("element %d of %d: %w", i, len(v), ErrIndexOutOfRange)
	}

	return v[i-1], nil
}

// Floats adapts a plain real-number slice into a Vector. Conversion happens
// lazily at access time through the lossless decimal path.
type Floats []float64

// Len returns the number of values. Complexity: O(1).
func (f Floats) Len() int { return len(f) }

// At returns the i-th (1-based) value as an Element.
// Errors: ErrIndexOutOfRange, ErrNaNInf. Complexity: O(1).
func (f Floats) At(i int) (Element, error) {
	if i < 1 || i > len(f) {
		return Element{}, fmt.Errorf("element %d of %d: %w", i, len(f), ErrIndexOutOfRange)
	}
	if err := ValidateFinite(f[i-1]); err != nil {
		return Element{}, err
	}

	return El(f[i-1]), nil
}

// readVector materializes v as a []Element after checking its length
// against want. Shared entry point of all view arithmetic: the full operand
// is validated and read before any result is produced (all-or-nothing).
//
// Errors: ErrInvalidDimension on length mismatch; propagated At failures.
// Complexity: O(n).
func readVector(v Vector, want int) ([]Element, error) {
	if v.Len() != want {
		return nil, fmt.Errorf("length %d, want %d: %w", v.Len(), want, ErrInvalidDimension)
	}

	out := make([]Element, want)
	var (
		i   int
		err error
	)
	for i = 1; i <= want; i++ {
		if out[i-1], err = v.At(i); err != nil {
			return nil, err
		}
	}

	return out, nil
}
