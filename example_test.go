// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/AnonymouX47/matrix"
)

// ExampleNewFromRows demonstrates construction and the bordered rendering.
func ExampleNewFromRows() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {30, -4}}, false)
	fmt.Println(m)
	// Output:
	// +----+----+
	// | 1  | 2  |
	// +----+----+
	// | 30 | -4 |
	// +----+----+
}

// ExampleMatrix_Determinant demonstrates an exact decimal determinant.
func ExampleMatrix_Determinant() {
	m, _ := matrix.NewFromRows([][]float64{{6, 1, 1}, {4, -2, 5}, {2, 8, 7}}, false)
	det, _ := m.Determinant()
	fmt.Println(det)
	// Output: -306
}

// ExampleMatrix_Inverse demonstrates inversion and the identity round-trip.
func ExampleMatrix_Inverse() {
	m, _ := matrix.NewFromRows([][]float64{{4, 7}, {2, 6}}, false)
	inv, _ := m.Inverse()
	p, _ := m.MatMul(inv)
	fmt.Println(inv.GoString())
	fmt.Println(p.IsUnit())
	// Output:
	// Matrix(2x2: [[0.6 -0.7] [-0.2 0.4]])
	// true
}

// ExampleSolveLinearSystem demonstrates solving A·x = b.
func ExampleSolveLinearSystem() {
	a, _ := matrix.NewFromRows([][]float64{{2, 1}, {1, 3}}, false)
	b, _ := matrix.NewFromRows([][]float64{{5}, {10}}, false)
	x, _ := matrix.SolveLinearSystem(a, b)
	fmt.Println(x[0], x[1])
	// Output: 1 3
}

// ExampleMatrix_Elements demonstrates the seekable cursor.
func ExampleMatrix_Elements() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}}, false)
	cur := m.Elements()
	cur.Seek(2) // jump to the head of row 2
	for cur.Next() {
		fmt.Print(cur.Value(), " ")
	}
	fmt.Println(cur.Err())
	// Output: 3 4 <nil>
}

// ExampleMatrix_Rows demonstrates live row views and in-place row math.
func ExampleMatrix_Rows() {
	m, _ := matrix.NewFromRows([][]float64{{1, 2}, {10, 20}}, false)
	r, _ := m.Rows().At(1)
	_ = r.ScaleAssign(3)
	e, _ := m.At(1, 2)
	fmt.Println(e)
	// Output: 6
}
