package matrix

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrBadShape is returned when a matrix would have rows or cols <= 0, or ragged input rows.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrDimensionMismatch is returned by elementwise and dot-product operations on incompatible shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNilRand is returned by Random when no generator is supplied.
	ErrNilRand = errors.New("matrix: nil random source")

	// ErrDivisionByZero is matched by every *DivisionByZeroError.
	ErrDivisionByZero = errors.New("matrix: division by zero")
)

// DivisionByZeroError identifies the cell whose divisor was exactly zero.
type DivisionByZeroError struct {
	Row       int
	Col       int
	Numerator float64
}

// Error implements the error interface.
func (e *DivisionByZeroError) Error() string {
	return fmt.Sprintf("matrix: division by zero at [%d,%d]: %g/0", e.Row, e.Col, e.Numerator)
}

// Is reports whether target is ErrDivisionByZero.
func (e *DivisionByZeroError) Is(target error) bool {
	return target == ErrDivisionByZero
}

func mismatch(op string, a, b *Matrix) error {
	return fmt.Errorf("%s [%d,%d] and [%d,%d]: %w", op, a.rows, a.cols, b.rows, b.cols, ErrDimensionMismatch)
}
