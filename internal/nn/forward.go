package nn

import (
	"fmt"

	"github.com/born-ml/mlp/internal/matrix"
)

// ForwardCache holds the intermediate values of one forward pass.
//
// For a network with L layers:
//   - Z has L-1 entries: A[i]·W[i] for every layer except the last (bias not added).
//   - A has L+1 entries: A[0] is the input, A[L] the network output.
//
// A cache is only meaningful for the network that produced it and for the parameter
// values at the time of the call.
type ForwardCache struct {
	Z []*matrix.Matrix
	A []*matrix.Matrix
}

// Output returns the final activation.
func (c *ForwardCache) Output() *matrix.Matrix {
	return c.A[len(c.A)-1]
}

// Forward runs the network on a 1×InputWidth row and returns every intermediate value.
//
// For each layer i: Z = A·W[i], A = sigmoid(Z + B[i]).
func (n *Network) Forward(input *matrix.Matrix) (*ForwardCache, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkInput(input); err != nil {
		return nil, err
	}

	last := len(n.weights) - 1
	cache := &ForwardCache{
		Z: make([]*matrix.Matrix, 0, last),
		A: make([]*matrix.Matrix, 0, last+2),
	}
	a := input.Clone()
	cache.A = append(cache.A, a)
	for i, w := range n.weights {
		z, err := a.MatMul(w)
		if err != nil {
			return nil, fmt.Errorf("forward layer %d: %w", i, err)
		}
		if i < last {
			cache.Z = append(cache.Z, z)
		}
		pre, err := z.Add(n.biases[i])
		if err != nil {
			return nil, fmt.Errorf("forward layer %d: %w", i, err)
		}
		a = Sigmoid(pre)
		cache.A = append(cache.A, a)
	}
	return cache, nil
}

// Infer returns the network output for a 1×InputWidth row without keeping
// intermediate values. It never modifies the network.
func (n *Network) Infer(input *matrix.Matrix) (*matrix.Matrix, error) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	if err := n.checkInput(input); err != nil {
		return nil, err
	}

	h := input
	for i, w := range n.weights {
		z, err := h.MatMul(w)
		if err != nil {
			return nil, fmt.Errorf("infer layer %d: %w", i, err)
		}
		pre, err := z.Add(n.biases[i])
		if err != nil {
			return nil, fmt.Errorf("infer layer %d: %w", i, err)
		}
		h = Sigmoid(pre)
	}
	return h, nil
}

func (n *Network) checkInput(input *matrix.Matrix) error {
	if input == nil {
		return fmt.Errorf("%w: nil input", ErrInputShape)
	}
	if input.Rows() != 1 || input.Cols() != n.weights[0].Rows() {
		return fmt.Errorf("%w: input is [%d,%d], want [1,%d]",
			ErrInputShape, input.Rows(), input.Cols(), n.weights[0].Rows())
	}
	return nil
}
