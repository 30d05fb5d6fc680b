package optim

import (
	"github.com/born-ml/mlp/internal/matrix"
	"github.com/born-ml/mlp/internal/nn"
)

// DiffGradConfig holds configuration for DiffGrad. Defaults match Adam.
type DiffGradConfig = AdamConfig

// DiffGrad is Adam with a friction coefficient that damps each element's step.
//
//	ξ     = sigmoid(|param − gradient|)
//	param = param − lr * (ξ ⊙ m_hat) / (sqrt(v_hat) + eps)
//
// ξ is taken from the parameter before the update and the raw (uncorrected) gradient.
//
// Reference: Dubey et al., "diffGrad: An Optimization Method for Convolutional
// Neural Networks", IEEE TNNLS 2019.
type DiffGrad struct {
	adaptive
}

// NewDiffGrad creates a DiffGrad optimizer bound to net's parameters.
func NewDiffGrad(net *nn.Network, config DiffGradConfig) *DiffGrad {
	return &DiffGrad{adaptive: newAdaptive(net, config, true)}
}

// frictionCoefficient returns sigmoid(|param − grad|) elementwise.
func frictionCoefficient(param, grad *matrix.Matrix) (*matrix.Matrix, error) {
	diff, err := param.Sub(grad)
	if err != nil {
		return nil, err
	}
	return nn.Sigmoid(diff.Abs()), nil
}
