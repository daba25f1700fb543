// File: example_test.go
// Title: Example Tests for Complexx Package Documentation
// Description: Executable examples that serve as both documentation and
//              tests, demonstrating typical usage of the Complex value type.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-04
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-04 v0.1.0: Initial example implementation

package complexx_test

import (
	"fmt"

	"github.com/msto63/mathkit/utils/complexx"
)

func ExampleNew() {
	z := complexx.New(3, 4)

	fmt.Println(z)
	fmt.Println(z.Abs())
	// Output:
	// (3 + i 4)
	// 5
}

func ExampleComplex_Add() {
	z := complexx.New(1, 2)
	w := complexx.New(3, -1)

	fmt.Println(z.Add(w))
	// Output:
	// (4 + i 1)
}

func ExampleComplex_Div() {
	z := complexx.New(4, 2)
	w := complexx.New(2, 0)

	fmt.Println(z.Div(w))
	// Output:
	// (2 + i 1)
}

func ExampleComplex_Conj() {
	z := complexx.New(3, 4)

	fmt.Println(z.Conj())
	// Output:
	// (3 - i 4)
}

func ExampleComplex_Sqrt() {
	z := complexx.New(-1, 0)

	fmt.Println(z.Sqrt())
	// Output:
	// (0 + i 1)
}

func ExampleFromPolar() {
	z := complexx.FromPolar(2, 0)

	fmt.Println(z)
	// Output:
	// (2 + i 0)
}

func ExampleComplex_Equals() {
	z := complexx.New(1, 0)
	w := complexx.New(1+1e-15, 0)

	fmt.Println(z.Equals(w))
	// Output:
	// true
}
