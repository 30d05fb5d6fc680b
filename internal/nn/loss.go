package nn

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
)

// SquaredError returns mean((output - target)²).
//
// It is a diagnostic only: training never materializes a scalar loss.
func SquaredError(output, target *matrix.Matrix) (float64, error) {
	diff, err := output.Sub(target)
	if err != nil {
		return 0, fmt.Errorf("squared error: %w", err)
	}
	return diff.Square().Mean(), nil
}

// CrossEntropy returns the summed binary cross-entropy
// −Σ[t·ln(o) + (1−t)·ln(1−o)].
//
// With sigmoid outputs its gradient with respect to the last pre-activation is
// exactly output − target, the error signal Backward starts from.
func CrossEntropy(output, target *matrix.Matrix) (float64, error) {
	if !output.SameShape(target) {
		return 0, fmt.Errorf("cross entropy: %w", matrix.ErrDimensionMismatch)
	}
	o, t := output.RawData(), target.RawData()
	var sum float64
	for i := range o {
		sum -= t[i]*math.Log(o[i]) + (1-t[i])*math.Log(1-o[i])
	}
	return sum, nil
}
