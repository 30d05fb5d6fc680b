package matrix

import (
	"gonum.org/v1/gonum/mat"
)

// MatMul returns the dot product m · other.
//
// Dispatch order:
//  1. m.cols == other.rows and an operand is flagged identity: a copy of the other operand.
//  2. m.cols == other.rows: standard product, shape (m.rows, other.cols).
//  3. Either operand is 1×1: scalar broadcast over the other operand.
//  4. Otherwise ErrDimensionMismatch.
//
// Identity operands must still be shape-compatible; a mismatched identity is an error.
// For the elementwise product use MulElem.
func (m *Matrix) MatMul(other *Matrix) (*Matrix, error) {
	if m.cols == other.rows {
		switch {
		case m.identity:
			return other.copyPlain(), nil
		case other.identity:
			return m.copyPlain(), nil
		}
		return m.product(other), nil
	}

	switch {
	case m.IsScalar():
		return other.Scale(m.data[0]), nil
	case other.IsScalar():
		return m.Scale(other.data[0]), nil
	}
	return nil, mismatch("matmul", m, other)
}

// product computes the standard matrix product through a gonum view of both operands.
func (m *Matrix) product(other *Matrix) *Matrix {
	out := &Matrix{rows: m.rows, cols: other.cols, data: make([]float64, m.rows*other.cols)}
	dst := mat.NewDense(out.rows, out.cols, out.data)
	dst.Mul(m.dense(), other.dense())
	return out
}

// copyPlain copies m without its identity marker.
func (m *Matrix) copyPlain() *Matrix {
	c := m.Clone()
	c.identity = false
	return c
}
