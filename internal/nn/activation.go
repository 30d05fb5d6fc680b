package nn

import (
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// sigmoid computes 1 / (1 + e^-x).
func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// Sigmoid applies the logistic function elementwise.
//
// Output lies in (0,1) for moderate inputs and σ(0) is exactly 0.5.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	return m.Apply(sigmoid)
}

// SigmoidPrime returns σ(z)·(1 − σ(z)) elementwise.
//
// σ is re-evaluated on z rather than read from a cached activation.
func SigmoidPrime(z *matrix.Matrix) *matrix.Matrix {
	return z.Apply(func(x float64) float64 {
		s := sigmoid(x)
		return s * (1 - s)
	})
}
