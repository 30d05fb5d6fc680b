package nn

import (
	"math"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSquaredError(t *testing.T) {
	got, err := SquaredError(row(t, 1, 0.5), row(t, 0, 0.5))
	require.NoError(t, err)
	assert.Equal(t, 0.5, got)

	_, err = SquaredError(row(t, 1), row(t, 1, 2))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestCrossEntropy(t *testing.T) {
	got, err := CrossEntropy(row(t, 0.5, 0.25), row(t, 1, 0))
	require.NoError(t, err)
	assert.InDelta(t, -math.Log(0.5)-math.Log(0.75), got, 1e-15)

	_, err = CrossEntropy(row(t, 0.5), row(t, 1, 0))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
