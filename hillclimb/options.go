package hillclimb

import (
	"math"

	"github.com/cockroachdb/errors"
)

type climberOption func(*climber) error

// Directions sets how many evenly spaced directions are probed around
// the current position at every step.
//
// More directions make it less likely to stall on a ridge that runs
// between two probes, at the cost of more evaluations of f per step.
// The default of 6 suits smooth functions.
//
// Directions must be at least 1.
func Directions(n int) climberOption {
	return func(c *climber) error {
		if n < 1 {
			return errors.Wrapf(ErrInvalidOption, "directions should be >= 1, got %d", n)
		}
		c.directions = n
		return nil
	}
}

// StepRange sets the initial step size and the size below which the
// search stops. The step starts at max and is halved whenever no probe
// improves on the current position; the answer is accurate to roughly
// min.
//
// Both must be finite with 0 < min < max.
func StepRange(min, max float64) climberOption {
	return func(c *climber) error {
		if !(min > 0) || !(min < max) || math.IsInf(max, 0) {
			return errors.Wrapf(ErrInvalidOption, "step range should satisfy 0 < min < max, got [%g, %g]", min, max)
		}
		c.stepMin, c.stepMax = min, max
		return nil
	}
}

// Restarts makes the search also start from k random points drawn
// uniformly from the square [lo, hi) x [lo, hi), keeping the best
// result overall. The given initial guess is always tried first.
func Restarts(k int, lo, hi float64) climberOption {
	return func(c *climber) error {
		if k < 0 {
			return errors.Wrapf(ErrInvalidOption, "restarts should be >= 0, got %d", k)
		}
		if !(lo < hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) {
			return errors.Wrapf(ErrInvalidOption, "restart box should satisfy lo < hi, got [%g, %g)", lo, hi)
		}
		c.restarts, c.lo, c.hi = k, lo, hi
		return nil
	}
}

// RandomNumberGenerator sets the RNG used to draw restart points.
func RandomNumberGenerator(rng RNG) climberOption {
	return func(c *climber) error {
		if rng == nil {
			return errors.Wrap(ErrInvalidOption, "nil random number generator")
		}
		c.rng = rng
		return nil
	}
}

// LocalRandomNumberGenerator makes restart points come from a private
// generator seeded with seed, so runs are reproducible.
func LocalRandomNumberGenerator(seed int64) climberOption {
	return func(c *climber) error {
		c.rng = newLocalRNG(seed)
		return nil
	}
}
