// SPDX-License-Identifier: MIT

// Package matrix: the row side of the view family.
//
// Rows is the collection view over all rows of a matrix; RowsSlice is a
// ranged sub-view of it; Row is a single live row. All three reference the
// owning matrix by index only and stamp-check every observable operation
// (see views.go).
package matrix

import "fmt"

// ---------- Rows (collection view) ----------

// Rows is a view over all rows of a matrix, supporting indexed access,
// slicing, whole-row assignment, deletion and iteration.
type Rows struct {
	m     *Matrix
	stamp stamp
}

// Rows returns a fresh collection view over the matrix rows.
// Complexity: O(1).
func (m *Matrix) Rows() *Rows {
	return &Rows{m: m, stamp: m.stampNow()}
}

// Len returns the number of rows captured at view creation. Complexity: O(1).
func (rs *Rows) Len() int { return rs.stamp.nrow }

// String renders a short description of the view.
func (rs *Rows) String() string {
	return fmt.Sprintf("<Rows of %dx%d matrix>", rs.stamp.nrow, rs.stamp.ncol)
}

// At returns a live view of the i-th (1-based) row.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (rs *Rows) At(i int) (*Row, error) {
	if err := checkStamp(rs.m, rs.stamp, "Rows.At"); err != nil {
		return nil, err
	}
	if i < 1 || i > rs.m.nrow {
		return nil, fmt.Errorf("row %d of %d: %w", i, rs.m.nrow, ErrIndexOutOfRange)
	}

	return &Row{m: rs.m, index: i - 1, stamp: rs.stamp}, nil
}

// Slice returns a ranged sub-view over the rows selected by the 1-based,
// stop-inclusive span.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(1).
func (rs *Rows) Slice(s Span) (*RowsSlice, error) {
	if err := checkStamp(rs.m, rs.stamp, "Rows.Slice"); err != nil {
		return nil, err
	}
	rng, err := AdjustSpan(s, rs.m.nrow)
	if err != nil {
		return nil, err
	}

	return &RowsSlice{m: rs.m, rng: rng, stamp: rs.stamp}, nil
}

// SetFrom overwrites the i-th (1-based) row with the given vector, whose
// length must equal the column count. The operand is fully validated and
// read before any element is written (all-or-nothing).
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrInvalidDimension,
// propagated operand failures. Complexity: O(ncol).
func (rs *Rows) SetFrom(i int, v Vector) error {
	if err := checkStamp(rs.m, rs.stamp, "Rows.SetFrom"); err != nil {
		return err
	}
	if i < 1 || i > rs.m.nrow {
		return fmt.Errorf("row %d of %d: %w", i, rs.m.nrow, ErrIndexOutOfRange)
	}
	vals, err := readVector(v, rs.m.ncol)
	if err != nil {
		return err
	}
	copy(rs.m.data[i-1], vals)

	return nil
}

// Delete removes the i-th (1-based) row. Removing the last remaining row is
// forbidden and leaves the matrix unchanged. A successful delete resizes the
// matrix, invalidating every outstanding view, including this one.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrEmptyMatrix.
// Complexity: O(nrow).
func (rs *Rows) Delete(i int) error {
	if err := checkStamp(rs.m, rs.stamp, "Rows.Delete"); err != nil {
		return err
	}
	if i < 1 || i > rs.m.nrow {
		return fmt.Errorf("row %d of %d: %w", i, rs.m.nrow, ErrIndexOutOfRange)
	}
	if rs.m.nrow == 1 {
		return ErrEmptyMatrix
	}

	rs.m.data = append(rs.m.data[:i-1], rs.m.data[i:]...)
	rs.m.nrow--

	return nil
}

// DeleteSpan removes every row selected by the 1-based, stop-inclusive span.
// Removing all rows is forbidden and leaves the matrix unchanged.
//
// Errors: ErrViewInvalidated, ErrBadSpan, ErrEmptyMatrix.
// Complexity: O(nrow).
func (rs *Rows) DeleteSpan(s Span) error {
	if err := checkStamp(rs.m, rs.stamp, "Rows.DeleteSpan"); err != nil {
		return err
	}
	rng, err := AdjustSpan(s, rs.m.nrow)
	if err != nil {
		return err
	}
	if rng.Len() == rs.m.nrow {
		return ErrEmptyMatrix
	}

	// Mark the selected indices, then compact the kept rows in order.
	drop := make([]bool, rs.m.nrow)
	var i int
	for i = 0; i < rng.Len(); i++ {
		drop[rng.Index(i)] = true
	}
	kept := rs.m.data[:0]
	for i = range rs.m.data {
		if !drop[i] {
			kept = append(kept, rs.m.data[i])
		}
	}
	rs.m.data = kept
	rs.m.nrow = len(kept)

	return nil
}

// Iter returns an iterator yielding a fresh Row view per step, detecting a
// concurrent resize like every other view operation. Complexity: O(1).
func (rs *Rows) Iter() *RowIter {
	return &RowIter{m: rs.m, stamp: rs.stamp, rng: Range{Start: 0, Stop: rs.stamp.nrow, Step: 1}}
}

// ---------- RowsSlice (ranged sub-view) ----------

// RowsSlice is a view over a contiguous-or-strided selection of rows,
// produced by Rows.Slice and composable via its own Slice.
type RowsSlice struct {
	m     *Matrix
	rng   Range // adjusted against the matrix rows
	stamp stamp
}

// Len returns the number of rows the slice selects. Complexity: O(1).
func (sl *RowsSlice) Len() int { return sl.rng.Len() }

// String renders a short description of the slice view.
func (sl *RowsSlice) String() string {
	return fmt.Sprintf("<Rows [%s] of %dx%d matrix>", sl.rng.String(), sl.stamp.nrow, sl.stamp.ncol)
}

// At returns a live view of the i-th (1-based) row of the selection,
// mapped back onto the matrix through the adjusted range.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (sl *RowsSlice) At(i int) (*Row, error) {
	if err := checkStamp(sl.m, sl.stamp, "RowsSlice.At"); err != nil {
		return nil, err
	}
	if i < 1 || i > sl.rng.Len() {
		return nil, fmt.Errorf("row %d of %d: %w", i, sl.rng.Len(), ErrIndexOutOfRange)
	}

	return &Row{m: sl.m, index: sl.rng.Index(i - 1), stamp: sl.stamp}, nil
}

// Slice returns a sub-slice of this selection. The spans compose without
// re-deriving anything from the matrix.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(1).
func (sl *RowsSlice) Slice(s Span) (*RowsSlice, error) {
	if err := checkStamp(sl.m, sl.stamp, "RowsSlice.Slice"); err != nil {
		return nil, err
	}
	sub, err := AdjustSpan(s, sl.rng.Len())
	if err != nil {
		return nil, err
	}

	return &RowsSlice{m: sl.m, rng: sl.rng.Compose(sub), stamp: sl.stamp}, nil
}

// Iter returns an iterator over the selected rows. Complexity: O(1).
func (sl *RowsSlice) Iter() *RowIter {
	return &RowIter{m: sl.m, stamp: sl.stamp, rng: sl.rng}
}

// ---------- RowIter ----------

// RowIter yields fresh Row views in selection order, scanner style.
type RowIter struct {
	m     *Matrix
	stamp stamp
	rng   Range
	pos   int // next selection index to produce
	cur   *Row
	err   error
	done  bool
}

// Next advances the iterator and reports whether a row was produced.
// Stops with ErrViewInvalidated if the matrix was resized. Complexity: O(1).
func (it *RowIter) Next() bool {
	if it.done {
		return false
	}
	if err := checkStamp(it.m, it.stamp, "RowIter"); err != nil {
		it.done, it.err = true, err
		return false
	}
	if it.pos >= it.rng.Len() {
		it.done = true
		return false
	}

	it.cur = &Row{m: it.m, index: it.rng.Index(it.pos), stamp: it.stamp}
	it.pos++

	return true
}

// Value returns the row produced by the last successful Next.
func (it *RowIter) Value() *Row { return it.cur }

// Err returns the reason the iteration terminated, nil after natural
// exhaustion.
func (it *RowIter) Err() error { return it.err }

// ---------- Row (single live view) ----------

// Row is a live view of one matrix row: reads and writes go straight through
// to the owning matrix. It implements Vector.
type Row struct {
	m     *Matrix
	index int // 0-based row index
	stamp stamp
}

// Len returns the row length captured at view creation. Complexity: O(1).
func (r *Row) Len() int { return r.stamp.ncol }

// Index returns the 1-based position of this row in its matrix.
func (r *Row) Index() int { return r.index + 1 }

// String renders the row contents, or a broken-view marker after a resize.
func (r *Row) String() string {
	vals, err := r.Elements()
	if err != nil {
		return fmt.Sprintf("<Row %d (invalidated)>", r.index+1)
	}

	return fmt.Sprintf("Row%v", vals)
}

// At returns the i-th (1-based) element of the row.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (r *Row) At(i int) (Element, error) {
	if err := checkStamp(r.m, r.stamp, "Row.At"); err != nil {
		return Element{}, err
	}
	if i < 1 || i > r.m.ncol {
		return Element{}, fmt.Errorf("element %d of %d: %w", i, r.m.ncol, ErrIndexOutOfRange)
	}

	return r.m.data[r.index][i-1], nil
}

// Set writes v at the i-th (1-based) position of the row, through to the
// owning matrix.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrNaNInf. Complexity: O(1).
func (r *Row) Set(i int, v float64) error {
	if err := checkStamp(r.m, r.stamp, "Row.Set"); err != nil {
		return err
	}
	if i < 1 || i > r.m.ncol {
		return fmt.Errorf("element %d of %d: %w", i, r.m.ncol, ErrIndexOutOfRange)
	}
	if err := ValidateFinite(v); err != nil {
		return err
	}
	r.m.data[r.index][i-1] = El(v)

	return nil
}

// Elements returns a value snapshot of the whole row.
//
// Errors: ErrViewInvalidated. Complexity: O(ncol).
func (r *Row) Elements() (Values, error) {
	return r.snapshot("Row.Elements")
}

// SliceElements returns a value snapshot of the elements selected by the
// 1-based, stop-inclusive span.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(selection).
func (r *Row) SliceElements(s Span) (Values, error) {
	if err := checkStamp(r.m, r.stamp, "Row.SliceElements"); err != nil {
		return nil, err
	}
	rng, err := AdjustSpan(s, r.m.ncol)
	if err != nil {
		return nil, err
	}

	out := make(Values, rng.Len())
	var i int
	for i = range out {
		out[i] = r.m.data[r.index][rng.Index(i)]
	}

	return out, nil
}

// SetSlice overwrites the elements selected by the span with the given
// vector, which must match the selection length exactly (all-or-nothing).
//
// Errors: ErrViewInvalidated, ErrBadSpan, ErrInvalidDimension, propagated
// operand failures. Complexity: O(selection).
func (r *Row) SetSlice(s Span, v Vector) error {
	if err := checkStamp(r.m, r.stamp, "Row.SetSlice"); err != nil {
		return err
	}
	rng, err := AdjustSpan(s, r.m.ncol)
	if err != nil {
		return err
	}
	vals, err := readVector(v, rng.Len())
	if err != nil {
		return err
	}
	var i int
	for i = range vals {
		r.m.data[r.index][rng.Index(i)] = vals[i]
	}

	return nil
}

// Contains reports whether the row holds the given value.
//
// Errors: ErrViewInvalidated, ErrNaNInf. Complexity: O(ncol).
func (r *Row) Contains(v float64) (bool, error) {
	if err := checkStamp(r.m, r.stamp, "Row.Contains"); err != nil {
		return false, err
	}
	if err := ValidateFinite(v); err != nil {
		return false, err
	}

	want := El(v)
	var e Element
	for _, e = range r.m.data[r.index] {
		if e.Equal(want) {
			return true, nil
		}
	}

	return false, nil
}

// IsZero reports whether every element of the row is exactly zero
// (the view's truthiness is the negation of this).
//
// Errors: ErrViewInvalidated. Complexity: O(ncol).
func (r *Row) IsZero() (bool, error) {
	if err := checkStamp(r.m, r.stamp, "Row.IsZero"); err != nil {
		return false, err
	}

	var e Element
	for _, e = range r.m.data[r.index] {
		if !e.IsZero() {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports structural equality against any vector of the same length.
// A Row view of the same matrix and index is equal by construction.
//
// Errors: ErrViewInvalidated, propagated operand failures.
// Complexity: O(ncol).
func (r *Row) Equal(o Vector) (bool, error) {
	if err := checkStamp(r.m, r.stamp, "Row.Equal"); err != nil {
		return false, err
	}
	// Identity shortcut: same matrix, same row.
	if or, ok := o.(*Row); ok && or.m == r.m && or.index == r.index {
		if err := checkStamp(or.m, or.stamp, "Row.Equal"); err != nil {
			return false, err
		}
		return true, nil
	}
	if o.Len() != r.m.ncol {
		return false, nil
	}
	vals, err := readVector(o, r.m.ncol)
	if err != nil {
		return false, err
	}

	return ewEqual(r.m.data[r.index], vals), nil
}

// snapshot copies the live row after the stamp check.
func (r *Row) snapshot(what string) (Values, error) {
	if err := checkStamp(r.m, r.stamp, what); err != nil {
		return nil, err
	}

	out := make(Values, r.m.ncol)
	copy(out, r.m.data[r.index])

	return out, nil
}

// writeBack replaces the live row contents. Callers have already
// stamp-checked and produced a full result (all-or-nothing).
func (r *Row) writeBack(vals []Element) {
	copy(r.m.data[r.index], vals)
}

// operand snapshots both sides of an elementwise operation.
func (r *Row) operand(o Vector, what string) (Values, []Element, error) {
	a, err := r.snapshot(what)
	if err != nil {
		return nil, nil, err
	}
	b, err := readVector(o, len(a))
	if err != nil {
		return nil, nil, matrixErrorf(what, err)
	}

	return a, b, nil
}

// Add returns this row plus o, elementwise, as a value snapshot.
//
// Errors: ErrViewInvalidated, ErrInvalidDimension, propagated operand
// failures. Complexity: O(ncol).
func (r *Row) Add(o Vector) (Values, error) {
	a, b, err := r.operand(o, "Row.Add")
	if err != nil {
		return nil, err
	}

	return ewAdd(a, b), nil
}

// Sub returns this row minus o, elementwise, as a value snapshot.
func (r *Row) Sub(o Vector) (Values, error) {
	a, b, err := r.operand(o, "Row.Sub")
	if err != nil {
		return nil, err
	}

	return ewSub(a, b), nil
}

// MulElementwise returns the elementwise product with o, snapped under the
// round limit.
func (r *Row) MulElementwise(o Vector, opts ...Option) (Values, error) {
	a, b, err := r.operand(o, "Row.MulElementwise")
	if err != nil {
		return nil, err
	}

	return ewMul(a, b, gatherOptions(opts...).roundLimit), nil
}

// DivElementwise returns the elementwise quotient by o, snapped under the
// round limit. Every divisor is checked first.
//
// Errors: additionally ErrZeroDivision.
func (r *Row) DivElementwise(o Vector, opts ...Option) (Values, error) {
	a, b, err := r.operand(o, "Row.DivElementwise")
	if err != nil {
		return nil, err
	}

	return ewDiv(a, b, gatherOptions(opts...).roundLimit)
}

// Scale returns this row multiplied by the scalar k, snapped under the
// round limit.
//
// Errors: ErrViewInvalidated, ErrNaNInf.
func (r *Row) Scale(k float64, opts ...Option) (Values, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, err
	}
	a, err := r.snapshot("Row.Scale")
	if err != nil {
		return nil, err
	}

	return ewScale(a, El(k), gatherOptions(opts...).roundLimit), nil
}

// ScaleDiv returns this row divided by the scalar k, snapped under the
// round limit.
//
// Errors: ErrViewInvalidated, ErrNaNInf, ErrZeroDivision.
func (r *Row) ScaleDiv(k float64, opts ...Option) (Values, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, err
	}
	a, err := r.snapshot("Row.ScaleDiv")
	if err != nil {
		return nil, err
	}

	return ewScaleDiv(a, El(k), gatherOptions(opts...).roundLimit)
}

// AddAssign adds o into the row in place, writing the computed result back
// into the owning matrix. The full result is produced before any element is
// written.
func (r *Row) AddAssign(o Vector) error {
	vals, err := r.Add(o)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}

// SubAssign subtracts o from the row in place.
func (r *Row) SubAssign(o Vector) error {
	vals, err := r.Sub(o)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}

// MulAssign multiplies the row elementwise by o, in place.
func (r *Row) MulAssign(o Vector, opts ...Option) error {
	vals, err := r.MulElementwise(o, opts...)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}

// DivAssign divides the row elementwise by o, in place.
func (r *Row) DivAssign(o Vector, opts ...Option) error {
	vals, err := r.DivElementwise(o, opts...)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}

// ScaleAssign multiplies the row by the scalar k, in place.
func (r *Row) ScaleAssign(k float64, opts ...Option) error {
	vals, err := r.Scale(k, opts...)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}

// ScaleDivAssign divides the row by the scalar k, in place.
func (r *Row) ScaleDivAssign(k float64, opts ...Option) error {
	vals, err := r.ScaleDiv(k, opts...)
	if err != nil {
		return err
	}
	r.writeBack(vals)

	return nil
}
