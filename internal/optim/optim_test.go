package optim_test

import (
	"math"
	"testing"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scalar(t *testing.T, v float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows([][]float64{{v}})
	require.NoError(t, err)
	return m
}

func row(t *testing.T, values ...float64) *matrix.Matrix {
	t.Helper()
	m, err := matrix.FromRows([][]float64{values})
	require.NoError(t, err)
	return m
}

// tinyNetwork is 1 -> 1 -> 1 with hand-picked parameters.
func tinyNetwork(t *testing.T) *nn.Network {
	t.Helper()
	net, err := nn.FromParameters("tiny",
		[]*matrix.Matrix{scalar(t, 0.5), scalar(t, -0.3)},
		[]*matrix.Matrix{scalar(t, 0.1), scalar(t, 0.2)},
	)
	require.NoError(t, err)
	return net
}

func gradients(t *testing.T, net *nn.Network, x, y *matrix.Matrix) *nn.Gradients {
	t.Helper()
	cache, err := net.Forward(x)
	require.NoError(t, err)
	grads, err := net.Backward(cache, y)
	require.NoError(t, err)
	return grads
}

func sigmoid(x float64) float64 { return 1 / (1 + math.Exp(-x)) }

// expectedFirstStep applies one update at t=1 with default hyperparameters.
func expectedFirstStep(p, g float64, friction bool) float64 {
	const lr, beta1, beta2, eps = 0.001, 0.9, 0.999, 1e-8
	m := (1 - beta1) * g
	v := (1 - beta2) * g * g
	mHat := m / (1 - beta1)
	vHat := v / (1 - beta2)
	xi := 1.0
	if friction {
		xi = sigmoid(math.Abs(p - g))
	}
	return p - lr*xi*mHat/(math.Sqrt(vHat)+eps)
}

func TestDiffGrad_FirstStep(t *testing.T) {
	for _, tc := range []struct {
		name     string
		friction bool
		newOpt   func(*nn.Network) optim.Optimizer
	}{
		{"diffgrad", true, func(n *nn.Network) optim.Optimizer { return optim.NewDiffGrad(n, optim.DiffGradConfig{}) }},
		{"adam", false, func(n *nn.Network) optim.Optimizer { return optim.NewAdam(n, optim.AdamConfig{}) }},
	} {
		t.Run(tc.name, func(t *testing.T) {
			net := tinyNetwork(t)
			before := append(net.Weights(), net.Biases()...)
			grads := gradients(t, net, scalar(t, 1), scalar(t, 0))
			gs := append(grads.Weights, grads.Biases...)

			opt := tc.newOpt(net)
			assert.Equal(t, 0.001, opt.GetLR())
			require.NoError(t, opt.Step(grads))

			after := append(net.Weights(), net.Biases()...)
			for j := range before {
				p, g := before[j].At(0, 0), gs[j].At(0, 0)
				assert.InDelta(t, expectedFirstStep(p, g, tc.friction), after[j].At(0, 0), 1e-12, "param %d", j)
			}
		})
	}
}

func TestDiffGrad_FrictionDampsStep(t *testing.T) {
	dg := tinyNetwork(t)
	ad := tinyNetwork(t)
	grads := gradients(t, dg, scalar(t, 1), scalar(t, 0))

	require.NoError(t, optim.NewDiffGrad(dg, optim.DiffGradConfig{}).Step(grads))
	require.NoError(t, optim.NewAdam(ad, optim.AdamConfig{}).Step(grads))

	orig := tinyNetwork(t)
	for i := 0; i < orig.NumLayers(); i++ {
		dStep := math.Abs(dg.Weight(i).At(0, 0) - orig.Weight(i).At(0, 0))
		aStep := math.Abs(ad.Weight(i).At(0, 0) - orig.Weight(i).At(0, 0))
		assert.Less(t, dStep, aStep, "ξ in (0.5,1) must shrink the Adam step")
		assert.Greater(t, dStep, aStep/2)
	}
}

func TestDiffGrad_Timestep(t *testing.T) {
	net := tinyNetwork(t)
	opt := optim.NewDiffGrad(net, optim.DiffGradConfig{LR: 0.01})
	assert.Equal(t, 0.01, opt.GetLR())

	for i := 1; i <= 3; i++ {
		require.NoError(t, opt.Step(gradients(t, net, scalar(t, 1), scalar(t, 0))))
		assert.Equal(t, i, opt.GetTimestep())
	}

	opt.SetLR(0.5)
	assert.Equal(t, 0.5, opt.GetLR())
	opt.Reset()
	assert.Equal(t, 0, opt.GetTimestep())
}

func TestDiffGrad_FailedStepChangesNothing(t *testing.T) {
	net := tinyNetwork(t)
	before := append(net.Weights(), net.Biases()...)

	// beta1 = 1 makes the first-moment bias correction zero.
	opt := optim.NewDiffGrad(net, optim.DiffGradConfig{Betas: [2]float64{1, 0.999}})
	err := opt.Step(gradients(t, net, scalar(t, 1), scalar(t, 0)))
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	after := append(net.Weights(), net.Biases()...)
	for j := range before {
		assert.True(t, before[j].Equal(after[j]))
	}
	assert.Equal(t, 0, opt.GetTimestep())
}

func TestDiffGrad_MismatchedGradients(t *testing.T) {
	net := tinyNetwork(t)
	other, err := nn.NewNetwork(nn.Config{Input: 1, Inner: []int{2}, Output: 1, Rand: nn.NewRand(3)})
	require.NoError(t, err)

	opt := optim.NewDiffGrad(net, optim.DiffGradConfig{})
	err = opt.Step(gradients(t, other, scalar(t, 1), scalar(t, 0)))
	assert.ErrorIs(t, err, optim.ErrGradients)

	assert.ErrorIs(t, opt.Step(nil), optim.ErrGradients)
}
