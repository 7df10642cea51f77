// SPDX-License-Identifier: MIT

// Package matrix: the seekable element cursor.
//
// Cursor is the explicit-cursor redesign of a resumable generator: it walks
// the matrix in row-major order, one element per Next call, and can be
// redirected mid-iteration to any valid 1-based position. Like the views, it
// carries the dimension stamp of its matrix and refuses to continue after a
// resize. It is cooperative: nothing advances unless the caller calls Next.
package matrix

// Cursor iterates over the elements of a Matrix in row-major order.
//
// Usage follows the scanner idiom:
//
//	cur := m.Elements()
//	for cur.Next() {
//		e := cur.Value()
//		...
//	}
//	if err := cur.Err(); err != nil { ... }
//
// Err returns nil after natural exhaustion, ErrViewInvalidated when the
// matrix was resized mid-iteration, and ErrSeekOutOfRange when a Seek target
// was outside the matrix.
type Cursor struct {
	m     *Matrix
	stamp stamp   // dimensions at creation; checked on every step
	row   int     // 0-based row of the next element to produce
	col   int     // 0-based column of the next element to produce
	cur   Element // last produced element
	done  bool
	err   error // termination reason, nil for natural exhaustion
}

// Elements returns a fresh cursor positioned before the first element.
// Complexity: O(1).
func (m *Matrix) Elements() *Cursor {
	return &Cursor{m: m, stamp: m.stampNow()}
}

// Next advances the cursor and reports whether an element was produced.
// Each step first compares the live matrix dimensions to the stamp; on
// mismatch the iteration stops with ErrViewInvalidated. Complexity: O(1).
func (c *Cursor) Next() bool {
	if c.done {
		return false
	}
	// Detect a resize since creation (or since the last step).
	if c.m.stampNow() != c.stamp {
		c.done, c.err = true, ErrViewInvalidated
		return false
	}
	// Natural exhaustion.
	if c.row >= c.m.nrow {
		c.done = true
		return false
	}

	c.cur = c.m.data[c.row][c.col]
	if c.col++; c.col == c.m.ncol { // wrap to the next row
		c.col, c.row = 0, c.row+1
	}

	return true
}

// Value returns the element produced by the last successful Next.
func (c *Cursor) Value() Element { return c.cur }

// Err returns the reason the iteration terminated, or nil while it is still
// running or after it ran off the end naturally.
func (c *Cursor) Err() error { return c.err }

// Seek redirects the cursor just before the first element of the given
// 1-based row: the next produced element is (row, 1). An out-of-range row
// terminates the iteration with ErrSeekOutOfRange as the reason instead of
// failing the call. Complexity: O(1).
func (c *Cursor) Seek(row int) {
	c.seek(row, 0)
}

// SeekAt redirects the cursor onto the given 1-based (row, col) position:
// the next produced element is the one immediately after it in row-major
// order. An out-of-range position terminates the iteration with
// ErrSeekOutOfRange as the reason. Complexity: O(1).
func (c *Cursor) SeekAt(row, col int) {
	if col < 1 || col > c.m.ncol {
		c.done, c.err = true, ErrSeekOutOfRange
		return
	}
	c.seek(row, col)
}

// seek places the cursor after 0 <= col <= ncol elements of row.
func (c *Cursor) seek(row, col int) {
	if c.done {
		return
	}
	if c.m.stampNow() != c.stamp {
		c.done, c.err = true, ErrViewInvalidated
		return
	}
	if row < 1 || row > c.m.nrow {
		c.done, c.err = true, ErrSeekOutOfRange
		return
	}

	c.row, c.col = row-1, col
	if c.col == c.m.ncol { // position after the row's last element
		c.col, c.row = 0, c.row+1
	}
}
