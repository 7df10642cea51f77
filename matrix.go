// SPDX-License-Identifier: MIT

// Package matrix: the Matrix store: construction, element and block access,
// resizing and copying.
//
// Matrix owns all element data as a row-major rectangular array of Elements.
// Dimension invariants (nrow, ncol >= 1; every row of length ncol) are
// established at construction and preserved by every mutator. Row/Column
// views never own data: they reference the store by index and are invalidated
// by any resize through the dimension stamp (see rows.go / columns.go).
package matrix

import "fmt"

// Matrix is a dense, row-major matrix of decimal Elements.
// The zero value is not usable; construct via New, NewFromRows or Identity.
type Matrix struct {
	nrow int         // number of rows, >= 1
	ncol int         // number of columns, >= 1
	data [][]Element // len(data) == nrow; len(data[i]) == ncol
}

// stamp is the (nrow, ncol) pair captured by views and cursors at creation.
// A mismatch against the live dimensions means the matrix was resized since,
// and the view must refuse to operate on stale geometry.
type stamp struct {
	nrow, ncol int
}

// stampNow captures the current dimension stamp. Complexity: O(1).
func (m *Matrix) stampNow() stamp {
	return stamp{nrow: m.nrow, ncol: m.ncol}
}

// New creates an nrow×ncol zero matrix.
//
// Implementation:
//   - Stage 1 (Validate): both dimensions must be >= 1.
//   - Stage 2 (Prepare): allocate the row-major backing array; the Element
//     zero value is the number 0, so no fill pass is needed.
//
// Errors: ErrInvalidDimension on non-positive dimensions.
// Complexity: O(nrow*ncol) time and memory.
func New(nrow, ncol int) (*Matrix, error) {
	// Validate dimensions
	if nrow < 1 || ncol < 1 {
		return nil, fmt.Errorf("%dx%d: %w", nrow, ncol, ErrInvalidDimension)
	}

	// Allocate rows
	data := make([][]Element, nrow)
	var i int
	for i = range data {
		data[i] = make([]Element, ncol)
	}

	return &Matrix{nrow: nrow, ncol: ncol, data: data}, nil
}

// Identity creates the n×n unit matrix.
//
// Errors: ErrInvalidDimension when n < 1.
// Complexity: O(n²).
func Identity(n int) (*Matrix, error) {
	m, err := New(n, n)
	if err != nil {
		return nil, err
	}

	one := ElInt(1)
	var i int
	for i = 0; i < n; i++ {
		m.data[i][i] = one // unit diagonal
	}

	return m, nil
}

// NewFromRows builds a matrix from a two-dimensional source of real numbers.
//
// Implementation:
//   - Stage 1 (Validate): the source must be non-empty; every entry must be
//     finite; with pad == false all rows must share one length, otherwise the
//     error names zero-fill padding as the remedy.
//   - Stage 2 (Ingest): convert every entry through the lossless decimal
//     path; with pad == true short rows are right-padded with zeros up to the
//     longest row.
//
// Errors:
//   - ErrInvalidDimension (empty source, zero-length longest row, or ragged
//     rows without padding).
//   - ErrNaNInf           (non-finite entry, with its position).
//
// Complexity: O(r*c).
func NewFromRows(rows [][]float64, pad bool) (*Matrix, error) {
	// Validate emptiness
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty source: %w", ErrInvalidDimension)
	}

	// Measure row lengths and validate entries.
	minLen, maxLen := len(rows[0]), len(rows[0])
	var (
		i, n int
		row  []float64
	)
	for i, row = range rows {
		if n = len(row); n < minLen {
			minLen = n
		} else if n > maxLen {
			maxLen = n
		}
		if err := ValidateFiniteSeq(row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
	}
	if maxLen == 0 {
		return nil, fmt.Errorf("rows are empty: %w", ErrInvalidDimension)
	}
	if minLen != maxLen && !pad {
		return nil, fmt.Errorf(
			"unequal row lengths (min %d, max %d); enable zero-fill padding: %w",
			minLen, maxLen, ErrInvalidDimension)
	}

	// Ingest through the lossless decimal path.
	data := make([][]Element, len(rows))
	var j int
	for i, row = range rows {
		data[i] = make([]Element, len(row))
		for j = range row {
			data[i][j] = El(row[j])
		}
	}

	out := &Matrix{nrow: len(rows), ncol: maxLen, data: data}
	if minLen != maxLen {
		// Zero-fill short rows up to the longest one (pad mode never shrinks).
		if err := out.resize(0, maxLen, true); err != nil {
			return nil, err
		}
	}

	return out, nil
}

// Size returns (nrow, ncol). Complexity: O(1).
func (m *Matrix) Size() (nrow, ncol int) {
	return m.nrow, m.ncol
}

// NRows returns the number of rows. Complexity: O(1).
func (m *Matrix) NRows() int { return m.nrow }

// NCols returns the number of columns. Complexity: O(1).
func (m *Matrix) NCols() int { return m.ncol }

// At retrieves the element at the 1-based position (row, col).
//
// Errors: ErrIndexOutOfRange. Complexity: O(1).
func (m *Matrix) At(row, col int) (Element, error) {
	if err := m.validateIndex(row, col); err != nil {
		return Element{}, err
	}

	return m.data[row-1][col-1], nil
}

// Set assigns the value v at the 1-based position (row, col).
//
// Errors: ErrIndexOutOfRange, ErrNaNInf. Complexity: O(1).
func (m *Matrix) Set(row, col int, v float64) error {
	if err := m.validateIndex(row, col); err != nil {
		return err
	}
	if err := ValidateFinite(v); err != nil {
		return err
	}
	m.data[row-1][col-1] = El(v)

	return nil
}

// setElement assigns a ready Element without revalidation. Internal.
func (m *Matrix) setElement(row, col int, e Element) {
	m.data[row-1][col-1] = e
}

// Block returns a fresh matrix holding the sub-block selected by the two
// 1-based, stop-inclusive spans.
//
// Errors: ErrBadSpan on malformed spans. Complexity: O(r*c) of the block.
func (m *Matrix) Block(rows, cols Span) (*Matrix, error) {
	rr, err := AdjustSpan(rows, m.nrow)
	if err != nil {
		return nil, fmt.Errorf("rows %w", err)
	}
	cr, err := AdjustSpan(cols, m.ncol)
	if err != nil {
		return nil, fmt.Errorf("columns %w", err)
	}

	out, err := New(rr.Len(), cr.Len())
	if err != nil {
		return nil, err // empty selection cannot form a matrix
	}
	var i, j int
	for i = 0; i < out.nrow; i++ {
		for j = 0; j < out.ncol; j++ {
			out.data[i][j] = m.data[rr.Index(i)][cr.Index(j)]
		}
	}

	return out, nil
}

// SetBlock writes src over the sub-block selected by the two spans.
// The source dimensions must match the selection exactly; nothing is written
// until every check has passed (all-or-nothing).
//
// Errors: ErrNilMatrix, ErrBadSpan, ErrInvalidDimension.
// Complexity: O(r*c) of the block.
func (m *Matrix) SetBlock(rows, cols Span, src *Matrix) error {
	if err := ValidateNotNil(src); err != nil {
		return err
	}
	rr, err := AdjustSpan(rows, m.nrow)
	if err != nil {
		return fmt.Errorf("rows %w", err)
	}
	cr, err := AdjustSpan(cols, m.ncol)
	if err != nil {
		return fmt.Errorf("columns %w", err)
	}
	// Exact dimensional match with the selected block.
	if src.nrow != rr.Len() || src.ncol != cr.Len() {
		return fmt.Errorf("block is %dx%d, source is %dx%d: %w",
			rr.Len(), cr.Len(), src.nrow, src.ncol, ErrInvalidDimension)
	}

	var i, j int
	for i = 0; i < src.nrow; i++ {
		for j = 0; j < src.ncol; j++ {
			m.data[rr.Index(i)][cr.Index(j)] = src.data[i][j]
		}
	}

	return nil
}

// SetBlockFromRows writes a 2D real-number source over the selected
// sub-block, with the same exact-match and all-or-nothing contract as
// SetBlock.
//
// Errors: ErrBadSpan, ErrInvalidDimension, ErrNaNInf.
// Complexity: O(r*c) of the block.
func (m *Matrix) SetBlockFromRows(rows, cols Span, src [][]float64) error {
	rr, err := AdjustSpan(rows, m.nrow)
	if err != nil {
		return fmt.Errorf("rows %w", err)
	}
	cr, err := AdjustSpan(cols, m.ncol)
	if err != nil {
		return fmt.Errorf("columns %w", err)
	}
	// Validate the full source shape and content before touching any row.
	if len(src) != rr.Len() {
		return fmt.Errorf("block has %d rows, source has %d: %w", rr.Len(), len(src), ErrInvalidDimension)
	}
	var (
		i, j int
		row  []float64
	)
	for i, row = range src {
		if len(row) != cr.Len() {
			return fmt.Errorf("block row length %d, source row %d has %d: %w",
				cr.Len(), i+1, len(row), ErrInvalidDimension)
		}
		if err = ValidateFiniteSeq(row); err != nil {
			return fmt.Errorf("row %d: %w", i+1, err)
		}
	}

	for i, row = range src {
		for j = range row {
			m.data[rr.Index(i)][cr.Index(j)] = El(row[j])
		}
	}

	return nil
}

// Resize changes the matrix dimensions in place. Growth zero-fills; shrink
// truncates. A zero argument keeps the corresponding dimension unchanged.
// Arguments are validated before any state changes (all-or-nothing).
// A successful resize changes the dimension stamp, invalidating every
// outstanding view and cursor created before it.
//
// Errors: ErrInvalidDimension on negative targets.
// Complexity: O(nrow*ncol) of the target shape in the worst case.
func (m *Matrix) Resize(nrow, ncol int) error {
	return m.resize(nrow, ncol, false)
}

// resize implements Resize. With padRows (internal mode, used only during
// padded construction paths) ncol must be given and no smaller than any
// existing row; rows are then grown individually without truncation.
func (m *Matrix) resize(nrow, ncol int, padRows bool) error {
	// Validate before mutating anything.
	if nrow < 0 || ncol < 0 {
		return fmt.Errorf("%dx%d: %w", nrow, ncol, ErrInvalidDimension)
	}
	if padRows {
		if ncol == 0 {
			return fmt.Errorf("pad mode requires a column count: %w", ErrInvalidDimension)
		}
		var row []Element
		for _, row = range m.data {
			if len(row) > ncol {
				return fmt.Errorf("pad mode cannot shrink a row of %d to %d: %w",
					len(row), ncol, ErrInvalidDimension)
			}
		}
	}
	if nrow == 0 {
		nrow = m.nrow
	}
	if ncol == 0 {
		ncol = m.ncol
	}

	// Adjust the row count.
	var i int
	switch {
	case nrow < m.nrow:
		m.data = m.data[:nrow] // truncate
	case nrow > m.nrow:
		for i = m.nrow; i < nrow; i++ {
			m.data = append(m.data, make([]Element, ncol)) // zero-filled
		}
	}

	// Adjust each retained row's length.
	var row []Element
	for i, row = range m.data[:min(nrow, m.nrow)] {
		switch {
		case len(row) > ncol:
			m.data[i] = row[:ncol] // truncate
		case len(row) < ncol:
			grown := make([]Element, ncol)
			copy(grown, row) // tail stays zero
			m.data[i] = grown
		}
	}

	m.nrow, m.ncol = nrow, ncol

	return nil
}

// Copy returns a deep copy of the matrix. The result shares no storage with
// the original. Complexity: O(nrow*ncol).
func (m *Matrix) Copy() *Matrix {
	data := make([][]Element, m.nrow)
	var i int
	for i = range m.data {
		data[i] = make([]Element, m.ncol)
		copy(data[i], m.data[i])
	}

	return &Matrix{nrow: m.nrow, ncol: m.ncol, data: data}
}
