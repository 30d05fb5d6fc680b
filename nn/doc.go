// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides the sigmoid multilayer perceptron.
//
// # Overview
//
// This package contains:
//   - Network: stacked (weight, bias) layers with sigmoid activations
//   - Forward / Backward: explicit forward cache and manual backpropagation
//   - Infer: side-effect free prediction
//   - Save / Load: JSON persistence with checksum verification
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/mlp/matrix"
//	    "github.com/born-ml/mlp/nn"
//	)
//
//	func main() {
//	    net, err := nn.NewNetwork(nn.Config{
//	        Name:   "xor",
//	        Input:  2,
//	        Inner:  []int{4},
//	        Output: 1,
//	        Rand:   nn.NewRand(1),
//	    })
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//
//	    x, _ := matrix.FromRows([][]float64{{1, 0}})
//	    y, err := net.Infer(x)
//	}
//
// # Training
//
// Backward returns gradients without touching the network; optimizers in the
// optim package apply them. See optim.Train for the full loop.
package nn
