package hillclimb

import (
	"math/rand"

	rng "github.com/leesper/go_rng"
)

// RNG is the source of random starting points used by Restarts.
type RNG interface {
	// Float64 returns a pseudo-random number in [0.0, 1.0).
	Float64() float64
}

type globalRNG struct{}

func (r *globalRNG) Float64() float64 {
	return rand.Float64()
}

func newLocalRNG(seed int64) RNG {
	return rng.NewUniformGenerator(seed)
}
