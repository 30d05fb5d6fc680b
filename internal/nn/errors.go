package nn

import "errors"

// Common errors.
var (
	// ErrConstruction is returned by NewNetwork for an empty inner layer list or non-positive widths.
	ErrConstruction = errors.New("nn: invalid network construction")

	// ErrInputShape is returned when a forward input or backward target does not fit the network.
	ErrInputShape = errors.New("nn: input shape mismatch")

	// ErrShapeChain is returned when weight and bias shapes do not form a valid layer chain.
	ErrShapeChain = errors.New("nn: layer shape chain violated")

	// ErrCacheMismatch is returned when a ForwardCache was not produced by the same network layout.
	ErrCacheMismatch = errors.New("nn: forward cache does not match network")
)
