// File: benchmark_test.go
// Title: Performance Benchmarks for Complex Operations
// Description: Benchmarks for arithmetic, magnitude, and transcendental
//              operations to keep the stable algorithms from regressing
//              against their textbook counterparts.
// Author: msto63
// Version: v0.1.0
// Created: 2025-11-04
// Modified: 2025-11-04
//
// Change History:
// - 2025-11-04 v0.1.0: Initial benchmark implementation

package complexx

import (
	"testing"
)

func BenchmarkAdd(b *testing.B) {
	z := New(1.5, -2.5)
	w := New(0.5, 3.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Add(w)
	}
}

func BenchmarkMul(b *testing.B) {
	z := New(1.5, -2.5)
	w := New(0.5, 3.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Mul(w)
	}
}

func BenchmarkDiv(b *testing.B) {
	z := New(1.5, -2.5)
	w := New(0.5, 3.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Div(w)
	}
}

func BenchmarkAbs(b *testing.B) {
	z := New(3e200, 4e200)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Abs()
	}
}

func BenchmarkSqrt(b *testing.B) {
	z := New(-1.5, 2.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Sqrt()
	}
}

func BenchmarkExp(b *testing.B) {
	z := New(0.5, 1.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Exp()
	}
}

func BenchmarkSin(b *testing.B) {
	z := New(0.5, 1.25)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Sin()
	}
}

func BenchmarkAsin(b *testing.B) {
	z := New(0.3, 0.4)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.Asin()
	}
}

func BenchmarkEqualsTol(b *testing.B) {
	z := New(1.5, -2.5)
	w := New(1.5, -2.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = z.EqualsTol(w, DefaultTolerance)
	}
}
