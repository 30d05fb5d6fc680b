// Package matrix implements the dense float64 matrix engine used by the network and optimizer.
//
// Matrices are row-major, fixed in shape after construction and mutable in content through
// Set and Assign. Every arithmetic operation allocates a fresh result; inputs are never aliased.
//
// Error policy:
//   - Shape problems between operands return ErrDimensionMismatch (wrapped with operand shapes).
//   - A zero divisor returns a *DivisionByZeroError naming the offending cell.
//   - Out-of-range element access panics, like Go slice indexing. It is a programmer error.
//
// Example:
//
//	a, _ := matrix.FromRows([][]float64{{1, 2}, {3, 4}})
//	b := matrix.Identity(2)
//	c, err := a.MatMul(b) // c equals a
package matrix
