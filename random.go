// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"math/rand"
)

// RandInt builds an nrow x ncol matrix of uniformly random integers in the
// inclusive range [lo, hi], drawn from rng. A nil rng falls back to the
// shared global source.
//
// Errors: ErrInvalidDimension on non-positive dimensions or lo > hi.
func RandInt(nrow, ncol int, lo, hi int64, rng *rand.Rand) (*Matrix, error) {
	const op = "RandInt"

	if lo > hi {
		return nil, matrixErrorf(op,
			fmt.Errorf("empty range [%d, %d]: %w", lo, hi, ErrInvalidDimension))
	}
	out, err := New(nrow, ncol)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	span := hi - lo + 1
	draw := func() int64 { return lo + rand.Int63n(span) }
	if rng != nil {
		draw = func() int64 { return lo + rng.Int63n(span) }
	}

	var i, j int
	for i = 0; i < nrow; i++ {
		for j = 0; j < ncol; j++ {
			out.data[i][j] = ElInt(draw())
		}
	}

	return out, nil
}

// RandFloat builds an nrow x ncol matrix of uniformly random values in the
// half-open range [lo, hi), drawn from rng. A nil rng falls back to the
// shared global source.
//
// Errors: ErrInvalidDimension on non-positive dimensions or lo > hi;
// ErrNaNInf if the bounds are not finite.
func RandFloat(nrow, ncol int, lo, hi float64, rng *rand.Rand) (*Matrix, error) {
	const op = "RandFloat"

	if err := ValidateFinite(lo); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateFinite(hi); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if lo > hi {
		return nil, matrixErrorf(op,
			fmt.Errorf("empty range [%g, %g): %w", lo, hi, ErrInvalidDimension))
	}
	out, err := New(nrow, ncol)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}

	draw := rand.Float64
	if rng != nil {
		draw = rng.Float64
	}

	var i, j int
	for i = 0; i < nrow; i++ {
		for j = 0; j < ncol; j++ {
			out.data[i][j] = El(lo + draw()*(hi-lo))
		}
	}

	return out, nil
}
