// Package optim implements the parameter update rules and the training loop.
//
// This package provides:
//   - Optimizer interface: applies one step of gradients to a network
//   - DiffGrad: Adam with a per-element friction term σ(|param − grad|)
//   - Adam: the same moment estimates without friction
//   - Train: cyclic-sampling training loop over a fixed in-memory sample set
//
// Example usage:
//
//	net, _ := nn.NewNetwork(nn.Config{Input: 2, Inner: []int{4}, Output: 1, Rand: nn.NewRand(1)})
//	err := optim.Train(net, inputs, targets, 10000, optim.TrainConfig{
//	    DiffGradConfig: optim.DiffGradConfig{LR: 0.01},
//	})
package optim

import (
	"errors"
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Optimizer is the base interface for all optimization algorithms.
type Optimizer interface {
	// Step applies one update to the network's parameters using grads.
	//
	// grads must come from Backward on the same network. Either every parameter
	// is updated or, on error, none is.
	Step(grads *nn.Gradients) error

	// GetLR returns the current learning rate.
	GetLR() float64
}

// Common errors.
var (
	ErrEmptySamples     = errors.New("optim: inputs and targets must be non-empty")
	ErrIterations       = errors.New("optim: iterations must be >= 0")
	ErrUnknownOptimizer = errors.New("optim: unknown optimizer")
	ErrGradients        = errors.New("optim: gradients do not match network parameters")
)

// flatten lists weights then biases, the order moment slots are kept in.
func flatten(weights, biases []*matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, 0, len(weights)+len(biases))
	out = append(out, weights...)
	return append(out, biases...)
}

// checkGradients verifies grads line up with params index-for-index and shape-for-shape.
func checkGradients(params []*matrix.Matrix, grads *nn.Gradients) ([]*matrix.Matrix, error) {
	if grads == nil {
		return nil, fmt.Errorf("%w: nil gradients", ErrGradients)
	}
	gs := flatten(grads.Weights, grads.Biases)
	if len(gs) != len(params) {
		return nil, fmt.Errorf("%w: got %d gradients for %d parameters", ErrGradients, len(gs), len(params))
	}
	for j, g := range gs {
		if g == nil || !g.SameShape(params[j]) {
			return nil, fmt.Errorf("%w: gradient %d has the wrong shape", ErrGradients, j)
		}
	}
	return gs, nil
}
