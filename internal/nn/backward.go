package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// Gradients holds one gradient per parameter, aligned index-for-index with the
// network's weights and biases and shaped like them.
type Gradients struct {
	Weights []*matrix.Matrix
	Biases  []*matrix.Matrix
}

// Backward propagates the output error of cache back through the network.
//
// The output error is A[L] − target. Hidden errors follow
// δ_i = (δ_{i+1}·W[i+1]ᵀ) ⊙ σ'(Z_i), and gradients are dW_i = A[i]ᵀ·δ_i, dB_i = δ_i.
//
// Backward never writes to the network; biases keep their values until the
// optimizer applies a step.
func (n *Network) Backward(cache *ForwardCache, target *matrix.Matrix) (*Gradients, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	layers := len(n.weights)
	if cache == nil || len(cache.A) != layers+1 || len(cache.Z) != layers-1 {
		return nil, ErrCacheMismatch
	}
	out := cache.Output()
	if target == nil || !target.SameShape(out) {
		rows, cols := 0, 0
		if target != nil {
			rows, cols = target.Dims()
		}
		return nil, fmt.Errorf("%w: target is [%d,%d], want [%d,%d]",
			ErrInputShape, rows, cols, out.Rows(), out.Cols())
	}

	deltas := make([]*matrix.Matrix, layers)
	delta, err := out.Sub(target)
	if err != nil {
		return nil, fmt.Errorf("backward output: %w", err)
	}
	deltas[layers-1] = delta

	for i := layers - 2; i >= 0; i-- {
		back, err := deltas[i+1].MatMul(n.weights[i+1].T())
		if err != nil {
			return nil, fmt.Errorf("backward layer %d: %w", i, err)
		}
		deltas[i], err = back.MulElem(SigmoidPrime(cache.Z[i]))
		if err != nil {
			return nil, fmt.Errorf("backward layer %d: %w", i, err)
		}
	}

	grads := &Gradients{
		Weights: make([]*matrix.Matrix, layers),
		Biases:  make([]*matrix.Matrix, layers),
	}
	for i := 0; i < layers; i++ {
		dW, err := cache.A[i].T().MatMul(deltas[i])
		if err != nil {
			return nil, fmt.Errorf("backward gradient %d: %w", i, err)
		}
		grads.Weights[i] = dW
		grads.Biases[i] = deltas[i]
	}
	return grads, nil
}
