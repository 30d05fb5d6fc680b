package optim

import (
	"fmt"
	"log"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// Optimizer names accepted by TrainConfig.Optimizer.
const (
	OptimizerDiffGrad = "diffgrad"
	OptimizerAdam     = "adam"
)

// TrainConfig configures a Train call.
type TrainConfig struct {
	DiffGradConfig

	Optimizer string      // OptimizerDiffGrad (default) or OptimizerAdam
	LogEvery  int         // Log every LogEvery iterations; 0 disables logging
	Logger    *log.Logger // Destination for progress lines; nil disables logging
}

// NewOptimizer builds the optimizer named by cfg.Optimizer for net.
func NewOptimizer(net *nn.Network, cfg TrainConfig) (Optimizer, error) {
	switch cfg.Optimizer {
	case "", OptimizerDiffGrad:
		return NewDiffGrad(net, cfg.DiffGradConfig), nil
	case OptimizerAdam:
		return NewAdam(net, cfg.DiffGradConfig), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownOptimizer, cfg.Optimizer)
	}
}

// Train runs iterations forward/backward/update cycles on net.
//
// Iteration i uses inputs[i%len(inputs)] and targets[i%len(targets)]; the two
// sequences may have different lengths. Moment estimates live only for the
// duration of the call. On error, iterations completed before it stay applied.
func Train(net *nn.Network, inputs, targets []*matrix.Matrix, iterations int, cfg TrainConfig) error {
	if len(inputs) == 0 || len(targets) == 0 {
		return ErrEmptySamples
	}
	if iterations < 0 {
		return fmt.Errorf("%w: got %d", ErrIterations, iterations)
	}

	opt, err := NewOptimizer(net, cfg)
	if err != nil {
		return err
	}
	logging := cfg.Logger != nil && cfg.LogEvery > 0

	for i := 0; i < iterations; i++ {
		x := inputs[i%len(inputs)]
		y := targets[i%len(targets)]

		cache, err := net.Forward(x)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		grads, err := net.Backward(cache, y)
		if err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}
		if err := opt.Step(grads); err != nil {
			return fmt.Errorf("iteration %d: %w", i, err)
		}

		if logging && (i+1)%cfg.LogEvery == 0 {
			sqErr, err := nn.SquaredError(cache.Output(), y)
			if err != nil {
				return fmt.Errorf("iteration %d: %w", i, err)
			}
			cfg.Logger.Printf("iter %d/%d: squared error %.6f", i+1, iterations, sqErr)
		}
	}
	return nil
}
