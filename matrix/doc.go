// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package matrix provides the dense float64 matrix used by the mlp networks.
//
// # Overview
//
// Matrices are row-major, immutable under arithmetic (every operation returns a
// new matrix) and carry an identity marker that lets MatMul skip the product:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	i := matrix.Identity(2)
//	p, _ := a.MatMul(i) // copy of a
//
// # Products
//
// MatMul is the dot product. When the inner dimensions differ but one operand
// is 1×1, the scalar is broadcast over the other operand. Elementwise products
// use MulElem.
//
// # Errors
//
// Shape violations wrap ErrDimensionMismatch or ErrBadShape. Division by zero
// returns a *DivisionByZeroError naming the offending cell, which matches
// ErrDivisionByZero with errors.Is. Element access out of range panics.
package matrix
