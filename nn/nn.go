// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/serialization"
)

// Network is a fully connected feedforward network with sigmoid activations.
type Network = nn.Network

// Config describes the layer widths of a new Network.
type Config = nn.Config

// ForwardCache holds the intermediate values of one forward pass.
type ForwardCache = nn.ForwardCache

// Gradients holds one gradient per weight and bias.
type Gradients = nn.Gradients

// Errors returned by network construction and passes.
var (
	ErrConstruction  = nn.ErrConstruction
	ErrInputShape    = nn.ErrInputShape
	ErrShapeChain    = nn.ErrShapeChain
	ErrCacheMismatch = nn.ErrCacheMismatch
)

// NewNetwork creates a network with U[0,1) initial weights and biases.
func NewNetwork(cfg Config) (*Network, error) {
	return nn.NewNetwork(cfg)
}

// FromParameters rebuilds a network from explicit weight and bias matrices.
func FromParameters(name string, weights, biases []*matrix.Matrix) (*Network, error) {
	return nn.FromParameters(name, weights, biases)
}

// NewRand returns a deterministic random source for Config.Rand.
func NewRand(seed int64) *rand.Rand {
	return nn.NewRand(seed)
}

// Sigmoid applies 1/(1+e^-x) to every element.
func Sigmoid(m *matrix.Matrix) *matrix.Matrix {
	return nn.Sigmoid(m)
}

// SquaredError returns the mean squared difference between output and target.
func SquaredError(output, target *matrix.Matrix) (float64, error) {
	return nn.SquaredError(output, target)
}

// CrossEntropy returns the summed binary cross-entropy of output against target.
func CrossEntropy(output, target *matrix.Matrix) (float64, error) {
	return nn.CrossEntropy(output, target)
}

// Save writes net to path as a JSON document.
//
// Example:
//
//	if err := nn.Save("xor.json", net); err != nil {
//	    log.Fatal(err)
//	}
func Save(path string, net *Network) error {
	return serialization.Save(path, net)
}

// Load reads a network saved with Save. The shape chain and checksum are
// verified before the network is returned.
func Load(path string) (*Network, error) {
	return serialization.Load(path)
}
