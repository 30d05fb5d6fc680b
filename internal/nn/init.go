package nn

import (
	"math/rand"
	"time"

	"github.com/born-ml/mlp/internal/matrix"
)

// NewRand returns a generator seeded with seed.
//
// Use it to make NewNetwork reproducible:
//
//	net, err := nn.NewNetwork(nn.Config{Input: 2, Inner: []int{4}, Output: 1, Rand: nn.NewRand(42)})
func NewRand(seed int64) *rand.Rand {
	//nolint:gosec // Weight initialization is not security-critical
	return rand.New(rand.NewSource(seed))
}

// uniformLayer draws a (fanIn×fanOut) weight matrix and a (1×fanOut) bias matrix,
// weight first, from U[0,1).
func uniformLayer(fanIn, fanOut int, rng *rand.Rand) (w, b *matrix.Matrix, err error) {
	w, err = matrix.Random(fanIn, fanOut, rng)
	if err != nil {
		return nil, nil, err
	}
	b, err = matrix.Random(1, fanOut, rng)
	if err != nil {
		return nil, nil, err
	}
	return w, b, nil
}

func defaultRand() *rand.Rand {
	return NewRand(time.Now().UnixNano())
}
