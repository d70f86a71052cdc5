package workload

import (
	"errors"
	"fmt"
	"math/rand"
)

// ErrTooManyRedraws is returned by Normal.Draw when maxRedraws draws in a row land outside
// [0, N).
var ErrTooManyRedraws = errors.New("too many out-of-range draws")

const maxRedraws = 1 << 20

// Distribution draws the values to search for.
type Distribution interface {
	// Draw returns a value in [0, n) for the n the Distribution was built with.
	Draw(r *rand.Rand) (int, error)
}

// Uniform draws every value in [0, N) with equal probability.
type Uniform struct {
	N int
}

func (d Uniform) Draw(r *rand.Rand) (int, error) { return r.Intn(d.N), nil }

// Normal draws from a normal distribution truncated toward zero to an int. Draws outside [0, N)
// are discarded and redrawn, so values near Mean are searched for far more often than values near
// the ends.
type Normal struct {
	N      int
	Mean   float64
	StdDev float64
}

func (d Normal) Draw(r *rand.Rand) (int, error) {
	for i := 0; i < maxRedraws; i++ {
		f := r.NormFloat64()*d.StdDev + d.Mean
		// Compare as floats first: converting a NaN or out-of-range float to int is undefined.
		if f > -1 && f < float64(d.N) {
			return int(f), nil
		}
	}
	return 0, fmt.Errorf(
		"%w: mean %g, stddev %g, range [0, %d)",
		ErrTooManyRedraws,
		d.Mean,
		d.StdDev,
		d.N,
	)
}
