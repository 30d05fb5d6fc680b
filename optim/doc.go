// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides the optimizers and the training loop for nn networks.
//
// # Overview
//
// This package contains:
//   - DiffGrad: Adam with a friction coefficient that damps steps where the gradient changes quickly
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Train: cyclic single-sample training loop
//
// # Basic Usage
//
//	err := optim.Train(net, inputs, targets, 20000, optim.TrainConfig{
//	    DiffGradConfig: optim.DiffGradConfig{LR: 0.01},
//	})
//
// Every optimizer step is atomic: either all parameters move or none do.
package optim
