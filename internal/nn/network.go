// Package nn implements the multilayer perceptron: construction, forward pass,
// manual backpropagation and inference on top of the matrix engine.
//
// A Network is an ordered stack of (weight, bias) pairs. Layer i maps a 1×in_i
// activation to a 1×out_i activation through sigmoid(A·W[i] + B[i]).
//
// Forward returns an explicit ForwardCache that Backward consumes, so no per-call
// state lives on the Network itself. Parameter mutation goes through Update,
// which holds the network's write lock.
package nn

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
	"sync"

	"github.com/born-ml/mlp/internal/matrix"
)

// Config describes the layer widths of a new Network.
type Config struct {
	Name   string     // Display name (optional)
	Input  int        // Width of the input row
	Inner  []int      // Hidden layer widths, at least one
	Output int        // Width of the output row
	Rand   *rand.Rand // Source for initial weights; time-seeded when nil
}

// Network is a fully connected feedforward network with sigmoid activations.
//
// Weight i has shape (in_i, out_i) and bias i has shape (1, out_i), with
// W[i].cols == W[i+1].rows for every layer.
type Network struct {
	mu      sync.RWMutex
	name    string
	weights []*matrix.Matrix
	biases  []*matrix.Matrix
}

// NewNetwork creates a network with U[0,1) initial weights and biases.
//
// Returns ErrConstruction when cfg.Inner is empty or any width is not positive.
func NewNetwork(cfg Config) (*Network, error) {
	if len(cfg.Inner) == 0 {
		return nil, fmt.Errorf("%w: at least one inner layer is required", ErrConstruction)
	}
	widths := make([]int, 0, len(cfg.Inner)+2)
	widths = append(widths, cfg.Input)
	widths = append(widths, cfg.Inner...)
	widths = append(widths, cfg.Output)
	for i, w := range widths {
		if w <= 0 {
			return nil, fmt.Errorf("%w: width %d at position %d must be > 0", ErrConstruction, w, i)
		}
	}

	rng := cfg.Rand
	if rng == nil {
		rng = defaultRand()
	}

	n := &Network{
		name:    cfg.Name,
		weights: make([]*matrix.Matrix, 0, len(widths)-1),
		biases:  make([]*matrix.Matrix, 0, len(widths)-1),
	}
	for i := 0; i < len(widths)-1; i++ {
		w, b, err := uniformLayer(widths[i], widths[i+1], rng)
		if err != nil {
			return nil, fmt.Errorf("layer %d: %w", i, err)
		}
		n.weights = append(n.weights, w)
		n.biases = append(n.biases, b)
	}
	return n, nil
}

// FromParameters rebuilds a network from explicit weight and bias matrices.
//
// The matrices are copied. Returns ErrShapeChain if the layers do not chain.
func FromParameters(name string, weights, biases []*matrix.Matrix) (*Network, error) {
	if err := ValidateChain(weights, biases); err != nil {
		return nil, err
	}
	n := &Network{
		name:    name,
		weights: make([]*matrix.Matrix, len(weights)),
		biases:  make([]*matrix.Matrix, len(biases)),
	}
	for i := range weights {
		n.weights[i] = weights[i].Clone()
		n.biases[i] = biases[i].Clone()
	}
	return n, nil
}

// ValidateChain checks the layer invariants: at least two layers, one bias per weight,
// B[i] shaped (1, W[i].cols) and W[i].cols == W[i+1].rows.
func ValidateChain(weights, biases []*matrix.Matrix) error {
	if len(weights) < 2 {
		return fmt.Errorf("%w: need at least 2 layers, got %d", ErrShapeChain, len(weights))
	}
	if len(weights) != len(biases) {
		return fmt.Errorf("%w: %d weight matrices but %d bias matrices", ErrShapeChain, len(weights), len(biases))
	}
	for i, w := range weights {
		b := biases[i]
		if w == nil || b == nil {
			return fmt.Errorf("%w: layer %d has a nil matrix", ErrShapeChain, i)
		}
		if b.Rows() != 1 || b.Cols() != w.Cols() {
			return fmt.Errorf("%w: layer %d bias is [%d,%d], want [1,%d]", ErrShapeChain, i, b.Rows(), b.Cols(), w.Cols())
		}
		if i > 0 && weights[i-1].Cols() != w.Rows() {
			return fmt.Errorf("%w: layer %d outputs %d values but layer %d expects %d",
				ErrShapeChain, i-1, weights[i-1].Cols(), i, w.Rows())
		}
	}
	return nil
}

// Name returns the display name.
func (n *Network) Name() string {
	return n.name
}

// NumLayers returns the number of (weight, bias) pairs, hidden layers plus output.
func (n *Network) NumLayers() int {
	return len(n.weights)
}

// InputWidth returns the expected input row width.
func (n *Network) InputWidth() int {
	return n.weights[0].Rows()
}

// OutputWidth returns the output row width.
func (n *Network) OutputWidth() int {
	return n.weights[len(n.weights)-1].Cols()
}

// Widths returns the layer width chain: input, hidden..., output.
func (n *Network) Widths() []int {
	widths := make([]int, 0, len(n.weights)+1)
	widths = append(widths, n.InputWidth())
	for _, w := range n.weights {
		widths = append(widths, w.Cols())
	}
	return widths
}

// NumParameters returns the total number of trainable scalars.
func (n *Network) NumParameters() int {
	total := 0
	for i := range n.weights {
		total += n.weights[i].Len() + n.biases[i].Len()
	}
	return total
}

// Weight returns a copy of layer i's weight matrix.
func (n *Network) Weight(i int) *matrix.Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.weights[i].Clone()
}

// Bias returns a copy of layer i's bias matrix.
func (n *Network) Bias(i int) *matrix.Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.biases[i].Clone()
}

// Weights returns copies of all weight matrices in layer order.
func (n *Network) Weights() []*matrix.Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return cloneAll(n.weights)
}

// Biases returns copies of all bias matrices in layer order.
func (n *Network) Biases() []*matrix.Matrix {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return cloneAll(n.biases)
}

// Update runs fn with the live parameter matrices under the write lock.
//
// fn may change values in place (matrix.Assign, Set) but must not replace slice
// entries or retain the slices after returning.
func (n *Network) Update(fn func(weights, biases []*matrix.Matrix) error) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	return fn(n.weights, n.biases)
}

// String renders the name, the width chain and every weight matrix:
//
//	xor - [2,4,1]
//
//	[2,4]
//	...
func (n *Network) String() string {
	n.mu.RLock()
	defer n.mu.RUnlock()

	var sb strings.Builder
	sb.WriteString(n.name)
	sb.WriteString(" - [")
	for i, w := range n.Widths() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(w))
	}
	sb.WriteString("]\n\n")
	for _, w := range n.weights {
		sb.WriteString(w.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cloneAll(ms []*matrix.Matrix) []*matrix.Matrix {
	out := make([]*matrix.Matrix, len(ms))
	for i, m := range ms {
		out[i] = m.Clone()
	}
	return out
}
