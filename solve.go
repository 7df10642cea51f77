// SPDX-License-Identifier: MIT

package matrix

import (
	"errors"
	"fmt"
)

// SolveLinearSystem solves the square system A·x = b by Gaussian
// elimination: the coefficient matrix is augmented with the constants
// column, forward-eliminated, back-substituted, and the final column is
// read off as the solution vector. Neither input is mutated.
//
// coeff must be square; constTerms must be a single column with the same
// row count.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrInvalidDimension on shape
// mismatches; ErrNoUniqueSolution when the system is singular within the
// round limit (the underlying ErrZeroDeterminant stays in the chain).
func SolveLinearSystem(coeff, constTerms *Matrix, opts ...Option) ([]Element, error) {
	const op = "SolveLinearSystem"

	if err := ValidateNotNil(coeff); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateNotNil(constTerms); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err := ValidateSquare(coeff); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if constTerms.ncol != 1 {
		return nil, matrixErrorf(op,
			fmt.Errorf("constants must be a single column, got %d: %w",
				constTerms.ncol, ErrInvalidDimension))
	}
	if constTerms.nrow != coeff.nrow {
		return nil, matrixErrorf(op,
			fmt.Errorf("%d equations but %d constants: %w",
				coeff.nrow, constTerms.nrow, ErrInvalidDimension))
	}

	aug, err := coeff.Augment(constTerms)
	if err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err = aug.ForwardEliminate(opts...); err != nil {
		return nil, matrixErrorf(op, err)
	}
	if err = aug.BackSubstitute(opts...); err != nil {
		if errors.Is(err, ErrZeroDeterminant) {
			return nil, matrixErrorf(op, fmt.Errorf("%w: %w", ErrNoUniqueSolution, err))
		}
		return nil, matrixErrorf(op, err)
	}

	// The pivot block is now the identity; the last column is x.
	x := make([]Element, aug.nrow)
	var i int
	for i = 0; i < aug.nrow; i++ {
		x[i] = aug.data[i][aug.ncol-1]
	}

	return x, nil
}
