// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package matrix

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
)

// Matrix is a dense row-major float64 matrix.
type Matrix = matrix.Matrix

// DivisionByZeroError reports the cell whose divisor was zero.
type DivisionByZeroError = matrix.DivisionByZeroError

// Errors returned by matrix operations.
var (
	ErrBadShape          = matrix.ErrBadShape
	ErrDimensionMismatch = matrix.ErrDimensionMismatch
	ErrNilRand           = matrix.ErrNilRand
	ErrDivisionByZero    = matrix.ErrDivisionByZero
)

// New creates a rows×cols zero matrix.
func New(rows, cols int) (*Matrix, error) {
	return matrix.New(rows, cols)
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	return matrix.Full(rows, cols, value)
}

// Random creates a rows×cols matrix of U[0,1) samples drawn from rng.
func Random(rows, cols int, rng *rand.Rand) (*Matrix, error) {
	return matrix.Random(rows, cols, rng)
}

// Identity creates the n×n identity matrix, flagged for the MatMul fast path.
func Identity(n int) *Matrix {
	return matrix.Identity(n)
}

// FromRows creates a matrix from a copy of rows.
//
// Example:
//
//	x, err := matrix.FromRows([][]float64{{1, 0}})
func FromRows(rows [][]float64) (*Matrix, error) {
	return matrix.FromRows(rows)
}

// Wrap creates a matrix that takes ownership of the row-major data slice.
func Wrap(rows, cols int, data []float64) (*Matrix, error) {
	return matrix.Wrap(rows, cols, data)
}
