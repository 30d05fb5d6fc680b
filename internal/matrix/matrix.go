package matrix

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major grid of float64 values.
//
// The identity marker is a hint for MatMul's fast path. It is set only by Identity
// and is not re-verified when elements change.
type Matrix struct {
	rows     int
	cols     int
	data     []float64
	identity bool
}

// New creates a zero-filled rows×cols matrix.
//
// Returns ErrBadShape if rows or cols is not positive.
func New(rows, cols int) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d (dimensions must be > 0)", ErrBadShape, rows, cols)
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}, nil
}

// Full creates a rows×cols matrix with every element set to value.
func Full(rows, cols int, value float64) (*Matrix, error) {
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	if value != 0 {
		floats.AddConst(value, m.data)
	}
	return m, nil
}

// Random creates a rows×cols matrix of independent uniform [0,1) draws from rng.
//
// The generator is supplied by the caller so that initialization is reproducible.
func Random(rows, cols int, rng *rand.Rand) (*Matrix, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	m, err := New(rows, cols)
	if err != nil {
		return nil, err
	}
	for i := range m.data {
		m.data[i] = rng.Float64()
	}
	return m, nil
}

// Identity creates an n×n identity matrix flagged for the MatMul fast path.
//
// Panics if n <= 0.
func Identity(n int) *Matrix {
	m, err := New(n, n)
	if err != nil {
		panic(err)
	}
	for i := 0; i < n; i++ {
		m.data[i*n+i] = 1
	}
	m.identity = true
	return m
}

// FromRows creates a matrix by copying a 2-D slice. The caller keeps ownership of rows.
//
// Returns ErrBadShape for empty or ragged input.
func FromRows(rows [][]float64) (*Matrix, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: empty input", ErrBadShape)
	}
	m, err := New(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}
	for r, row := range rows {
		if len(row) != m.cols {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrBadShape, r, len(row), m.cols)
		}
		copy(m.data[r*m.cols:], row)
	}
	return m, nil
}

// Wrap creates a matrix that takes ownership of data (zero copy).
//
// data is interpreted row-major and must hold exactly rows*cols values.
// The caller must not read or write data afterwards.
func Wrap(rows, cols int, data []float64) (*Matrix, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d (dimensions must be > 0)", ErrBadShape, rows, cols)
	}
	if len(data) != rows*cols {
		return nil, fmt.Errorf("%w: shape %dx%d requires %d elements, got %d", ErrBadShape, rows, cols, rows*cols, len(data))
	}
	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Clone returns a deep copy, identity marker included.
func (m *Matrix) Clone() *Matrix {
	c := m.like()
	copy(c.data, m.data)
	c.identity = m.identity
	return c
}

// like allocates a zero matrix with the receiver's shape.
func (m *Matrix) like() *Matrix {
	return &Matrix{rows: m.rows, cols: m.cols, data: make([]float64, len(m.data))}
}

// Rows returns the number of rows.
func (m *Matrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Matrix) Cols() int { return m.cols }

// Dims returns (rows, cols).
func (m *Matrix) Dims() (r, c int) { return m.rows, m.cols }

// Len returns the number of elements.
func (m *Matrix) Len() int { return len(m.data) }

// IsIdentity reports whether the matrix carries the identity marker.
func (m *Matrix) IsIdentity() bool { return m.identity }

// IsScalar reports whether the matrix is 1×1.
func (m *Matrix) IsScalar() bool { return len(m.data) == 1 }

// SameShape reports whether m and other have equal dimensions.
func (m *Matrix) SameShape(other *Matrix) bool {
	return m.rows == other.rows && m.cols == other.cols
}

// At returns the element at (r, c). Panics when out of range.
func (m *Matrix) At(r, c int) float64 {
	m.checkIndex(r, c)
	return m.data[r*m.cols+c]
}

// Set assigns v to the element at (r, c). Panics when out of range.
func (m *Matrix) Set(r, c int, v float64) {
	m.checkIndex(r, c)
	m.data[r*m.cols+c] = v
}

func (m *Matrix) checkIndex(r, c int) {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("matrix: index [%d,%d] out of range for [%d,%d]", r, c, m.rows, m.cols))
	}
}

// RawData returns the row-major backing slice. Writes through it mutate the matrix.
func (m *Matrix) RawData() []float64 {
	return m.data
}

// ToRows returns a copy of the contents as a 2-D slice.
func (m *Matrix) ToRows() [][]float64 {
	out := make([][]float64, m.rows)
	for r := range out {
		out[r] = make([]float64, m.cols)
		copy(out[r], m.data[r*m.cols:(r+1)*m.cols])
	}
	return out
}

// Assign copies src's values into m in place.
func (m *Matrix) Assign(src *Matrix) error {
	if !m.SameShape(src) {
		return mismatch("assign", m, src)
	}
	copy(m.data, src.data)
	return nil
}

// T returns the transpose as a new matrix.
func (m *Matrix) T() *Matrix {
	t := &Matrix{rows: m.cols, cols: m.rows, data: make([]float64, len(m.data))}
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			t.data[c*t.cols+r] = m.data[r*m.cols+c]
		}
	}
	return t
}

// Sum returns the sum of all elements.
func (m *Matrix) Sum() float64 {
	return floats.Sum(m.data)
}

// Mean returns the average of all elements.
func (m *Matrix) Mean() float64 {
	return floats.Sum(m.data) / float64(len(m.data))
}

// Equal reports whether both matrices have the same shape and bit-identical values.
func (m *Matrix) Equal(other *Matrix) bool {
	return m.SameShape(other) && floats.Equal(m.data, other.data)
}

// EqualApprox reports whether both matrices have the same shape and every pair of
// elements differs by at most tol.
func (m *Matrix) EqualApprox(other *Matrix, tol float64) bool {
	return m.SameShape(other) && floats.EqualApprox(m.data, other.data, tol)
}

// dense returns a gonum view sharing m's backing slice.
func (m *Matrix) dense() *mat.Dense {
	return mat.NewDense(m.rows, m.cols, m.data)
}

// String renders the shape followed by the row-major contents.
//
// Values use the shortest representation that parses back to the same float64.
//
//	[2,3]
//	1,2,3
//	4,5,6
func (m *Matrix) String() string {
	var sb strings.Builder
	sb.WriteString("[")
	sb.WriteString(strconv.Itoa(m.rows))
	sb.WriteString(",")
	sb.WriteString(strconv.Itoa(m.cols))
	sb.WriteString("]\n")
	for r := 0; r < m.rows; r++ {
		for c := 0; c < m.cols; c++ {
			if c > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatFloat(m.data[r*m.cols+c], 'g', -1, 64))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
