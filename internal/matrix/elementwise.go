package matrix

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Apply returns a new matrix with fn applied to every element.
func (m *Matrix) Apply(fn func(float64) float64) *Matrix {
	out := m.like()
	for i, v := range m.data {
		out.data[i] = fn(v)
	}
	return out
}

// Exp returns e^x for every element.
func (m *Matrix) Exp() *Matrix { return m.Apply(math.Exp) }

// Abs returns |x| for every element.
func (m *Matrix) Abs() *Matrix { return m.Apply(math.Abs) }

// Sqrt returns √x for every element. Negative elements yield NaN.
func (m *Matrix) Sqrt() *Matrix { return m.Apply(math.Sqrt) }

// Negate returns -x for every element.
func (m *Matrix) Negate() *Matrix { return m.Scale(-1) }

// Square returns x² for every element.
func (m *Matrix) Square() *Matrix {
	out := m.like()
	floats.MulTo(out.data, m.data, m.data)
	return out
}

// Add returns m + other elementwise.
func (m *Matrix) Add(other *Matrix) (*Matrix, error) {
	if !m.SameShape(other) {
		return nil, mismatch("add", m, other)
	}
	out := m.like()
	floats.AddTo(out.data, m.data, other.data)
	return out, nil
}

// Sub returns m - other elementwise.
func (m *Matrix) Sub(other *Matrix) (*Matrix, error) {
	if !m.SameShape(other) {
		return nil, mismatch("sub", m, other)
	}
	out := m.like()
	floats.SubTo(out.data, m.data, other.data)
	return out, nil
}

// MulElem returns the elementwise (Hadamard) product m ⊙ other.
//
// For the dot product use MatMul.
func (m *Matrix) MulElem(other *Matrix) (*Matrix, error) {
	if !m.SameShape(other) {
		return nil, mismatch("elementwise multiply", m, other)
	}
	out := m.like()
	floats.MulTo(out.data, m.data, other.data)
	return out, nil
}

// Div returns m / other elementwise.
//
// Returns a *DivisionByZeroError for the first zero cell of other (row-major order).
func (m *Matrix) Div(other *Matrix) (*Matrix, error) {
	if !m.SameShape(other) {
		return nil, mismatch("div", m, other)
	}
	if i := zeroIndex(other.data); i >= 0 {
		return nil, &DivisionByZeroError{Row: i / m.cols, Col: i % m.cols, Numerator: m.data[i]}
	}
	out := m.like()
	floats.DivTo(out.data, m.data, other.data)
	return out, nil
}

// AddScalar returns m + a.
func (m *Matrix) AddScalar(a float64) *Matrix {
	out := m.Clone()
	out.identity = false
	floats.AddConst(a, out.data)
	return out
}

// SubScalar returns m - a.
func (m *Matrix) SubScalar(a float64) *Matrix {
	return m.AddScalar(-a)
}

// RSubScalar returns a - m.
func (m *Matrix) RSubScalar(a float64) *Matrix {
	out := m.Negate()
	floats.AddConst(a, out.data)
	return out
}

// Scale returns a·m.
func (m *Matrix) Scale(a float64) *Matrix {
	out := m.Clone()
	out.identity = false
	floats.Scale(a, out.data)
	return out
}

// DivScalar returns m / a.
//
// A zero divisor is reported against cell (0,0).
func (m *Matrix) DivScalar(a float64) (*Matrix, error) {
	if a == 0 {
		return nil, &DivisionByZeroError{Row: 0, Col: 0, Numerator: m.data[0]}
	}
	out := m.like()
	for i, v := range m.data {
		out.data[i] = v / a
	}
	return out, nil
}

// RDivScalar returns a / m elementwise.
func (m *Matrix) RDivScalar(a float64) (*Matrix, error) {
	if i := zeroIndex(m.data); i >= 0 {
		return nil, &DivisionByZeroError{Row: i / m.cols, Col: i % m.cols, Numerator: a}
	}
	out := m.like()
	for i, v := range m.data {
		out.data[i] = a / v
	}
	return out, nil
}

func zeroIndex(s []float64) int {
	for i, v := range s {
		if v == 0 {
			return i
		}
	}
	return -1
}
