// SPDX-License-Identifier: MIT

package matrix

import (
	"fmt"
	"strings"
)

// String renders the matrix as a bordered grid with fixed-width, centered
// cells, one cell per element:
//
//	+----+----+
//	| 1  | 2  |
//	+----+----+
//	| 30 | -4 |
//	+----+----+
//
// The cell width is the widest element rendering plus one space of padding
// on each side, uniform across the whole matrix. Presentation only; the
// output is not a parseable wire format.
func (m *Matrix) String() string {
	cells := make([][]string, m.nrow)
	width := 1
	var i, j int
	for i = 0; i < m.nrow; i++ {
		cells[i] = make([]string, m.ncol)
		for j = 0; j < m.ncol; j++ {
			s := m.data[i][j].String()
			cells[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var b strings.Builder
	border := "+" + strings.Repeat(strings.Repeat("-", width+2)+"+", m.ncol) + "\n"
	b.WriteString(border)
	for i = 0; i < m.nrow; i++ {
		b.WriteByte('|')
		for j = 0; j < m.ncol; j++ {
			b.WriteByte(' ')
			b.WriteString(centered(cells[i][j], width))
			b.WriteString(" |")
		}
		b.WriteByte('\n')
		b.WriteString(border)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

// centered pads s with spaces to exactly w characters, favoring the left
// side when the padding is odd.
func centered(s string, w int) string {
	gap := w - len(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2

	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// GoString returns a compact single-line form used by %#v, e.g.
// Matrix(2x2: [[1 2] [3 4]]).
func (m *Matrix) GoString() string {
	rows := make([]string, m.nrow)
	var i, j int
	for i = 0; i < m.nrow; i++ {
		parts := make([]string, m.ncol)
		for j = 0; j < m.ncol; j++ {
			parts[j] = m.data[i][j].String()
		}
		rows[i] = "[" + strings.Join(parts, " ") + "]"
	}

	return fmt.Sprintf("Matrix(%dx%d: [%s])", m.nrow, m.ncol, strings.Join(rows, " "))
}
