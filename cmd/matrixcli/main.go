// SPDX-License-Identifier: MIT

// Command matrixcli is a small terminal front end for the matrix package:
// determinants, inverses, rank, echelon forms, linear-system solving and
// random matrix generation over matrices given as "a,b;c,d" literals.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, errStyle.Render("error: ")+err.Error())
		os.Exit(1)
	}
}
