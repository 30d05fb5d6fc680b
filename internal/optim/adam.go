package optim

import (
	"fmt"
	"math"

	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// AdamConfig holds configuration for Adam and DiffGrad.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// withDefaults fills zero fields with the standard hyperparameters.
func (c AdamConfig) withDefaults() AdamConfig {
	if c.LR == 0 {
		c.LR = 0.001
	}
	if c.Betas[0] == 0 {
		c.Betas[0] = 0.9
	}
	if c.Betas[1] == 0 {
		c.Betas[1] = 0.999
	}
	if c.Eps == 0 {
		c.Eps = 1e-8
	}
	return c
}

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	adaptive
}

// NewAdam creates an Adam optimizer bound to net's parameters.
//
// Moments start at zero, one pair per weight and bias matrix.
func NewAdam(net *nn.Network, config AdamConfig) *Adam {
	return &Adam{adaptive: newAdaptive(net, config, false)}
}

// adaptive holds the state shared by Adam and DiffGrad.
type adaptive struct {
	net      *nn.Network
	lr       float64
	beta1    float64
	beta2    float64
	eps      float64
	friction bool
	t        int              // Timestep for bias correction
	m        []*matrix.Matrix // First moment estimates, weights then biases
	v        []*matrix.Matrix // Second moment estimates, weights then biases
}

func newAdaptive(net *nn.Network, config AdamConfig, friction bool) adaptive {
	config = config.withDefaults()
	a := adaptive{
		net:      net,
		lr:       config.LR,
		beta1:    config.Betas[0],
		beta2:    config.Betas[1],
		eps:      config.Eps,
		friction: friction,
	}
	a.Reset()
	return a
}

// Reset zeroes both moment estimates and the timestep.
func (a *adaptive) Reset() {
	params := flatten(a.net.Weights(), a.net.Biases())
	a.m = make([]*matrix.Matrix, len(params))
	a.v = make([]*matrix.Matrix, len(params))
	for j, p := range params {
		// Shapes come from existing matrices, so New cannot fail.
		a.m[j], _ = matrix.New(p.Dims())
		a.v[j], _ = matrix.New(p.Dims())
	}
	a.t = 0
}

// Step performs a single optimization step.
//
// All new moments and parameter values are computed before anything is
// written, so an error leaves both the network and the optimizer unchanged.
func (a *adaptive) Step(grads *nn.Gradients) error {
	t := a.t + 1
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(t))

	return a.net.Update(func(weights, biases []*matrix.Matrix) error {
		params := flatten(weights, biases)
		gs, err := checkGradients(params, grads)
		if err != nil {
			return err
		}

		nextM := make([]*matrix.Matrix, len(params))
		nextV := make([]*matrix.Matrix, len(params))
		nextP := make([]*matrix.Matrix, len(params))
		for j, p := range params {
			nextM[j], nextV[j], nextP[j], err = a.update(p, gs[j], a.m[j], a.v[j], biasCorrection1, biasCorrection2)
			if err != nil {
				return fmt.Errorf("parameter %d: %w", j, err)
			}
		}

		for j, p := range params {
			if err := p.Assign(nextP[j]); err != nil {
				return err
			}
		}
		a.m, a.v, a.t = nextM, nextV, t
		return nil
	})
}

// update computes the new moments and parameter value for one matrix.
func (a *adaptive) update(
	param, grad, m, v *matrix.Matrix,
	biasCorrection1, biasCorrection2 float64,
) (newM, newV, newParam *matrix.Matrix, err error) {
	// m_t = beta1 * m_{t-1} + (1-beta1) * grad
	newM, err = m.Scale(a.beta1).Add(grad.Scale(1 - a.beta1))
	if err != nil {
		return nil, nil, nil, err
	}
	// v_t = beta2 * v_{t-1} + (1-beta2) * grad²
	newV, err = v.Scale(a.beta2).Add(grad.Square().Scale(1 - a.beta2))
	if err != nil {
		return nil, nil, nil, err
	}

	mHat, err := newM.DivScalar(biasCorrection1)
	if err != nil {
		return nil, nil, nil, err
	}
	vHat, err := newV.DivScalar(biasCorrection2)
	if err != nil {
		return nil, nil, nil, err
	}

	numerator := mHat
	if a.friction {
		xi, err := frictionCoefficient(param, grad)
		if err != nil {
			return nil, nil, nil, err
		}
		if numerator, err = xi.MulElem(mHat); err != nil {
			return nil, nil, nil, err
		}
	}

	step, err := numerator.Scale(a.lr).Div(vHat.Sqrt().AddScalar(a.eps))
	if err != nil {
		return nil, nil, nil, err
	}
	newParam, err = param.Sub(step)
	if err != nil {
		return nil, nil, nil, err
	}
	return newM, newV, newParam, nil
}

// GetLR returns the current learning rate.
func (a *adaptive) GetLR() float64 {
	return a.lr
}

// SetLR updates the learning rate.
func (a *adaptive) SetLR(lr float64) {
	a.lr = lr
}

// GetTimestep returns the number of completed steps.
func (a *adaptive) GetTimestep() int {
	return a.t
}
