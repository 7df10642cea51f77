// SPDX-License-Identifier: MIT

// Package matrix: the column side of the view family.
//
// Columns, ColumnsSlice and Column mirror their row counterparts (rows.go)
// with the indexing axis flipped: a Column view addresses one matrix column
// across all rows. See views.go for the stamp discipline.
package matrix

import "fmt"

// ---------- Columns (collection view) ----------

// Columns is a view over all columns of a matrix, supporting indexed access,
// slicing, whole-column assignment, deletion and iteration.
type Columns struct {
	m     *Matrix
	stamp stamp
}

// Columns returns a fresh collection view over the matrix columns.
// Complexity: O(1).
func (m *Matrix) Columns() *Columns {
	return &Columns{m: m, stamp: m.stampNow()}
}

// Len returns the number of columns captured at view creation.
// Complexity: O(1).
func (cs *Columns) Len() int { return cs.stamp.ncol }

// String renders a short description of the view.
func (cs *Columns) String() string {
	return fmt.Sprintf("<Columns of %dx%d matrix>", cs.stamp.nrow, cs.stamp.ncol)
}

// At returns a live view of the j-th (1-based) column.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (cs *Columns) At(j int) (*Column, error) {
	if err := checkStamp(cs.m, cs.stamp, "Columns.At"); err != nil {
		return nil, err
	}
	if j < 1 || j > cs.m.ncol {
		return nil, fmt.Errorf("column %d of %d: %w", j, cs.m.ncol, ErrIndexOutOfRange)
	}

	return &Column{m: cs.m, index: j - 1, stamp: cs.stamp}, nil
}

// Slice returns a ranged sub-view over the columns selected by the 1-based,
// stop-inclusive span.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(1).
func (cs *Columns) Slice(s Span) (*ColumnsSlice, error) {
	if err := checkStamp(cs.m, cs.stamp, "Columns.Slice"); err != nil {
		return nil, err
	}
	rng, err := AdjustSpan(s, cs.m.ncol)
	if err != nil {
		return nil, err
	}

	return &ColumnsSlice{m: cs.m, rng: rng, stamp: cs.stamp}, nil
}

// SetFrom overwrites the j-th (1-based) column with the given vector, whose
// length must equal the row count (all-or-nothing).
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrInvalidDimension,
// propagated operand failures. Complexity: O(nrow).
func (cs *Columns) SetFrom(j int, v Vector) error {
	if err := checkStamp(cs.m, cs.stamp, "Columns.SetFrom"); err != nil {
		return err
	}
	if j < 1 || j > cs.m.ncol {
		return fmt.Errorf("column %d of %d: %w", j, cs.m.ncol, ErrIndexOutOfRange)
	}
	vals, err := readVector(v, cs.m.nrow)
	if err != nil {
		return err
	}
	var i int
	for i = range vals {
		cs.m.data[i][j-1] = vals[i]
	}

	return nil
}

// Delete removes the j-th (1-based) column. Removing the last remaining
// column is forbidden and leaves the matrix unchanged. A successful delete
// resizes the matrix, invalidating every outstanding view.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrEmptyMatrix.
// Complexity: O(nrow*ncol).
func (cs *Columns) Delete(j int) error {
	if err := checkStamp(cs.m, cs.stamp, "Columns.Delete"); err != nil {
		return err
	}
	if j < 1 || j > cs.m.ncol {
		return fmt.Errorf("column %d of %d: %w", j, cs.m.ncol, ErrIndexOutOfRange)
	}
	if cs.m.ncol == 1 {
		return ErrEmptyMatrix
	}

	var i int
	for i = range cs.m.data {
		cs.m.data[i] = append(cs.m.data[i][:j-1], cs.m.data[i][j:]...)
	}
	cs.m.ncol--

	return nil
}

// DeleteSpan removes every column selected by the 1-based, stop-inclusive
// span. Removing all columns is forbidden and leaves the matrix unchanged.
//
// Errors: ErrViewInvalidated, ErrBadSpan, ErrEmptyMatrix.
// Complexity: O(nrow*ncol).
func (cs *Columns) DeleteSpan(s Span) error {
	if err := checkStamp(cs.m, cs.stamp, "Columns.DeleteSpan"); err != nil {
		return err
	}
	rng, err := AdjustSpan(s, cs.m.ncol)
	if err != nil {
		return err
	}
	if rng.Len() == cs.m.ncol {
		return ErrEmptyMatrix
	}

	// Mark the selected indices, then compact every row in order.
	drop := make([]bool, cs.m.ncol)
	var i, j int
	for i = 0; i < rng.Len(); i++ {
		drop[rng.Index(i)] = true
	}
	for i = range cs.m.data {
		kept := cs.m.data[i][:0]
		for j = range cs.m.data[i] {
			if !drop[j] {
				kept = append(kept, cs.m.data[i][j])
			}
		}
		cs.m.data[i] = kept
	}
	cs.m.ncol -= rng.Len()

	return nil
}

// Iter returns an iterator yielding a fresh Column view per step, detecting
// a concurrent resize like every other view operation. Complexity: O(1).
func (cs *Columns) Iter() *ColumnIter {
	return &ColumnIter{m: cs.m, stamp: cs.stamp, rng: Range{Start: 0, Stop: cs.stamp.ncol, Step: 1}}
}

// ---------- ColumnsSlice (ranged sub-view) ----------

// ColumnsSlice is a view over a strided selection of columns, produced by
// Columns.Slice and composable via its own Slice.
type ColumnsSlice struct {
	m     *Matrix
	rng   Range // adjusted against the matrix columns
	stamp stamp
}

// Len returns the number of columns the slice selects. Complexity: O(1).
func (sl *ColumnsSlice) Len() int { return sl.rng.Len() }

// String renders a short description of the slice view.
func (sl *ColumnsSlice) String() string {
	return fmt.Sprintf("<Columns [%s] of %dx%d matrix>", sl.rng.String(), sl.stamp.nrow, sl.stamp.ncol)
}

// At returns a live view of the j-th (1-based) column of the selection,
// mapped back onto the matrix through the adjusted range.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (sl *ColumnsSlice) At(j int) (*Column, error) {
	if err := checkStamp(sl.m, sl.stamp, "ColumnsSlice.At"); err != nil {
		return nil, err
	}
	if j < 1 || j > sl.rng.Len() {
		return nil, fmt.Errorf("column %d of %d: %w", j, sl.rng.Len(), ErrIndexOutOfRange)
	}

	return &Column{m: sl.m, index: sl.rng.Index(j - 1), stamp: sl.stamp}, nil
}

// Slice returns a sub-slice of this selection; the spans compose without
// re-deriving anything from the matrix.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(1).
func (sl *ColumnsSlice) Slice(s Span) (*ColumnsSlice, error) {
	if err := checkStamp(sl.m, sl.stamp, "ColumnsSlice.Slice"); err != nil {
		return nil, err
	}
	sub, err := AdjustSpan(s, sl.rng.Len())
	if err != nil {
		return nil, err
	}

	return &ColumnsSlice{m: sl.m, rng: sl.rng.Compose(sub), stamp: sl.stamp}, nil
}

// Iter returns an iterator over the selected columns. Complexity: O(1).
func (sl *ColumnsSlice) Iter() *ColumnIter {
	return &ColumnIter{m: sl.m, stamp: sl.stamp, rng: sl.rng}
}

// ---------- ColumnIter ----------

// ColumnIter yields fresh Column views in selection order, scanner style.
type ColumnIter struct {
	m     *Matrix
	stamp stamp
	rng   Range
	pos   int
	cur   *Column
	err   error
	done  bool
}

// Next advances the iterator and reports whether a column was produced.
// Stops with ErrViewInvalidated if the matrix was resized. Complexity: O(1).
func (it *ColumnIter) Next() bool {
	if it.done {
		return false
	}
	if err := checkStamp(it.m, it.stamp, "ColumnIter"); err != nil {
		it.done, it.err = true, err
		return false
	}
	if it.pos >= it.rng.Len() {
		it.done = true
		return false
	}

	it.cur = &Column{m: it.m, index: it.rng.Index(it.pos), stamp: it.stamp}
	it.pos++

	return true
}

// Value returns the column produced by the last successful Next.
func (it *ColumnIter) Value() *Column { return it.cur }

// Err returns the reason the iteration terminated, nil after natural
// exhaustion.
func (it *ColumnIter) Err() error { return it.err }

// ---------- Column (single live view) ----------

// Column is a live view of one matrix column: reads and writes go straight
// through to the owning matrix. It implements Vector.
type Column struct {
	m     *Matrix
	index int // 0-based column index
	stamp stamp
}

// Len returns the column length captured at view creation. Complexity: O(1).
func (c *Column) Len() int { return c.stamp.nrow }

// Index returns the 1-based position of this column in its matrix.
func (c *Column) Index() int { return c.index + 1 }

// String renders the column contents, or a broken-view marker after a resize.
func (c *Column) String() string {
	vals, err := c.Elements()
	if err != nil {
		return fmt.Sprintf("<Column %d (invalidated)>", c.index+1)
	}

	return fmt.Sprintf("Column%v", vals)
}

// At returns the i-th (1-based) element of the column.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange. Complexity: O(1).
func (c *Column) At(i int) (Element, error) {
	if err := checkStamp(c.m, c.stamp, "Column.At"); err != nil {
		return Element{}, err
	}
	if i < 1 || i > c.m.nrow {
		return Element{}, fmt.Errorf("element %d of %d: %w", i, c.m.nrow, ErrIndexOutOfRange)
	}

	return c.m.data[i-1][c.index], nil
}

// Set writes v at the i-th (1-based) position of the column, through to the
// owning matrix.
//
// Errors: ErrViewInvalidated, ErrIndexOutOfRange, ErrNaNInf. Complexity: O(1).
func (c *Column) Set(i int, v float64) error {
	if err := checkStamp(c.m, c.stamp, "Column.Set"); err != nil {
		return err
	}
	if i < 1 || i > c.m.nrow {
		return fmt.Errorf("element %d of %d: %w", i, c.m.nrow, ErrIndexOutOfRange)
	}
	if err := ValidateFinite(v); err != nil {
		return err
	}
	c.m.data[i-1][c.index] = El(v)

	return nil
}

// Elements returns a value snapshot of the whole column.
//
// Errors: ErrViewInvalidated. Complexity: O(nrow).
func (c *Column) Elements() (Values, error) {
	return c.snapshot("Column.Elements")
}

// SliceElements returns a value snapshot of the elements selected by the
// 1-based, stop-inclusive span.
//
// Errors: ErrViewInvalidated, ErrBadSpan. Complexity: O(selection).
func (c *Column) SliceElements(s Span) (Values, error) {
	if err := checkStamp(c.m, c.stamp, "Column.SliceElements"); err != nil {
		return nil, err
	}
	rng, err := AdjustSpan(s, c.m.nrow)
	if err != nil {
		return nil, err
	}

	out := make(Values, rng.Len())
	var i int
	for i = range out {
		out[i] = c.m.data[rng.Index(i)][c.index]
	}

	return out, nil
}

// SetSlice overwrites the elements selected by the span with the given
// vector, which must match the selection length exactly (all-or-nothing).
//
// Errors: ErrViewInvalidated, ErrBadSpan, ErrInvalidDimension, propagated
// operand failures. Complexity: O(selection).
func (c *Column) SetSlice(s Span, v Vector) error {
	if err := checkStamp(c.m, c.stamp, "Column.SetSlice"); err != nil {
		return err
	}
	rng, err := AdjustSpan(s, c.m.nrow)
	if err != nil {
		return err
	}
	vals, err := readVector(v, rng.Len())
	if err != nil {
		return err
	}
	var i int
	for i = range vals {
		c.m.data[rng.Index(i)][c.index] = vals[i]
	}

	return nil
}

// Contains reports whether the column holds the given value.
//
// Errors: ErrViewInvalidated, ErrNaNInf. Complexity: O(nrow).
func (c *Column) Contains(v float64) (bool, error) {
	if err := checkStamp(c.m, c.stamp, "Column.Contains"); err != nil {
		return false, err
	}
	if err := ValidateFinite(v); err != nil {
		return false, err
	}

	want := El(v)
	var i int
	for i = 0; i < c.m.nrow; i++ {
		if c.m.data[i][c.index].Equal(want) {
			return true, nil
		}
	}

	return false, nil
}

// IsZero reports whether every element of the column is exactly zero.
//
// Errors: ErrViewInvalidated. Complexity: O(nrow).
func (c *Column) IsZero() (bool, error) {
	if err := checkStamp(c.m, c.stamp, "Column.IsZero"); err != nil {
		return false, err
	}

	var i int
	for i = 0; i < c.m.nrow; i++ {
		if !c.m.data[i][c.index].IsZero() {
			return false, nil
		}
	}

	return true, nil
}

// Equal reports structural equality against any vector of the same length.
// A Column view of the same matrix and index is equal by construction.
//
// Errors: ErrViewInvalidated, propagated operand failures.
// Complexity: O(nrow).
func (c *Column) Equal(o Vector) (bool, error) {
	if err := checkStamp(c.m, c.stamp, "Column.Equal"); err != nil {
		return false, err
	}
	// Identity shortcut: same matrix, same column.
	if oc, ok := o.(*Column); ok && oc.m == c.m && oc.index == c.index {
		if err := checkStamp(oc.m, oc.stamp, "Column.Equal"); err != nil {
			return false, err
		}
		return true, nil
	}
	if o.Len() != c.m.nrow {
		return false, nil
	}
	vals, err := readVector(o, c.m.nrow)
	if err != nil {
		return false, err
	}
	mine, err := c.snapshot("Column.Equal")
	if err != nil {
		return false, err
	}

	return ewEqual(mine, vals), nil
}

// snapshot copies the live column after the stamp check.
func (c *Column) snapshot(what string) (Values, error) {
	if err := checkStamp(c.m, c.stamp, what); err != nil {
		return nil, err
	}

	out := make(Values, c.m.nrow)
	var i int
	for i = range out {
		out[i] = c.m.data[i][c.index]
	}

	return out, nil
}

// writeBack replaces the live column contents. Callers have already
// stamp-checked and produced a full result (all-or-nothing).
func (c *Column) writeBack(vals []Element) {
	var i int
	for i = range vals {
		c.m.data[i][c.index] = vals[i]
	}
}

// operand snapshots both sides of an elementwise operation.
func (c *Column) operand(o Vector, what string) (Values, []Element, error) {
	a, err := c.snapshot(what)
	if err != nil {
		return nil, nil, err
	}
	b, err := readVector(o, len(a))
	if err != nil {
		return nil, nil, matrixErrorf(what, err)
	}

	return a, b, nil
}

// Add returns this column plus o, elementwise, as a value snapshot.
//
// Errors: ErrViewInvalidated, ErrInvalidDimension, propagated operand
// failures. Complexity: O(nrow).
func (c *Column) Add(o Vector) (Values, error) {
	a, b, err := c.operand(o, "Column.Add")
	if err != nil {
		return nil, err
	}

	return ewAdd(a, b), nil
}

// Sub returns this column minus o, elementwise, as a value snapshot.
func (c *Column) Sub(o Vector) (Values, error) {
	a, b, err := c.operand(o, "Column.Sub")
	if err != nil {
		return nil, err
	}

	return ewSub(a, b), nil
}

// MulElementwise returns the elementwise product with o, snapped under the
// round limit.
func (c *Column) MulElementwise(o Vector, opts ...Option) (Values, error) {
	a, b, err := c.operand(o, "Column.MulElementwise")
	if err != nil {
		return nil, err
	}

	return ewMul(a, b, gatherOptions(opts...).roundLimit), nil
}

// DivElementwise returns the elementwise quotient by o, snapped under the
// round limit. Every divisor is checked first.
//
// Errors: additionally ErrZeroDivision.
func (c *Column) DivElementwise(o Vector, opts ...Option) (Values, error) {
	a, b, err := c.operand(o, "Column.DivElementwise")
	if err != nil {
		return nil, err
	}

	return ewDiv(a, b, gatherOptions(opts...).roundLimit)
}

// Scale returns this column multiplied by the scalar k, snapped under the
// round limit.
//
// Errors: ErrViewInvalidated, ErrNaNInf.
func (c *Column) Scale(k float64, opts ...Option) (Values, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, err
	}
	a, err := c.snapshot("Column.Scale")
	if err != nil {
		return nil, err
	}

	return ewScale(a, El(k), gatherOptions(opts...).roundLimit), nil
}

// ScaleDiv returns this column divided by the scalar k, snapped under the
// round limit.
//
// Errors: ErrViewInvalidated, ErrNaNInf, ErrZeroDivision.
func (c *Column) ScaleDiv(k float64, opts ...Option) (Values, error) {
	if err := ValidateFinite(k); err != nil {
		return nil, err
	}
	a, err := c.snapshot("Column.ScaleDiv")
	if err != nil {
		return nil, err
	}

	return ewScaleDiv(a, El(k), gatherOptions(opts...).roundLimit)
}

// AddAssign adds o into the column in place, writing the computed result
// back into the owning matrix (all-or-nothing).
func (c *Column) AddAssign(o Vector) error {
	vals, err := c.Add(o)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}

// SubAssign subtracts o from the column in place.
func (c *Column) SubAssign(o Vector) error {
	vals, err := c.Sub(o)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}

// MulAssign multiplies the column elementwise by o, in place.
func (c *Column) MulAssign(o Vector, opts ...Option) error {
	vals, err := c.MulElementwise(o, opts...)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}

// DivAssign divides the column elementwise by o, in place.
func (c *Column) DivAssign(o Vector, opts ...Option) error {
	vals, err := c.DivElementwise(o, opts...)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}

// ScaleAssign multiplies the column by the scalar k, in place.
func (c *Column) ScaleAssign(k float64, opts ...Option) error {
	vals, err := c.Scale(k, opts...)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}

// ScaleDivAssign divides the column by the scalar k, in place.
func (c *Column) ScaleDivAssign(k float64, opts ...Option) error {
	vals, err := c.ScaleDiv(k, opts...)
	if err != nil {
		return err
	}
	c.writeBack(vals)

	return nil
}
