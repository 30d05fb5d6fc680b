// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
	"github.com/born-ml/mlp/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// Optimizer names accepted by TrainConfig.Optimizer.
const (
	OptimizerDiffGrad = optim.OptimizerDiffGrad
	OptimizerAdam     = optim.OptimizerAdam
)

// Errors returned by optimizers and the training loop.
var (
	ErrEmptySamples     = optim.ErrEmptySamples
	ErrIterations       = optim.ErrIterations
	ErrUnknownOptimizer = optim.ErrUnknownOptimizer
	ErrGradients        = optim.ErrGradients
)

// DiffGrad (Adam with friction)

// DiffGrad represents the diffGrad optimizer.
type DiffGrad = optim.DiffGrad

// DiffGradConfig contains configuration for the DiffGrad optimizer.
type DiffGradConfig = optim.DiffGradConfig

// NewDiffGrad creates a DiffGrad optimizer over the parameters of net.
//
// Example:
//
//	optimizer := optim.NewDiffGrad(net, optim.DiffGradConfig{LR: 0.01})
//	cache, _ := net.Forward(x)
//	grads, _ := net.Backward(cache, y)
//	err := optimizer.Step(grads)
func NewDiffGrad(net *nn.Network, config DiffGradConfig) *DiffGrad {
	return optim.NewDiffGrad(net, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
func NewAdam(net *nn.Network, config AdamConfig) *Adam {
	return optim.NewAdam(net, config)
}

// Training

// TrainConfig configures Train.
type TrainConfig = optim.TrainConfig

// NewOptimizer creates the optimizer named by cfg.Optimizer.
func NewOptimizer(net *nn.Network, cfg TrainConfig) (Optimizer, error) {
	return optim.NewOptimizer(net, cfg)
}

// Train runs iterations single-sample steps, visiting samples cyclically.
func Train(net *nn.Network, inputs, targets []*matrix.Matrix, iterations int, cfg TrainConfig) error {
	return optim.Train(net, inputs, targets, iterations, cfg)
}
