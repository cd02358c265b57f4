// Package hillclimb searches for a minimum of a continuous function of
// two variables by hill climbing.
//
// From the current position the search takes one step in each of a
// fixed number of directions and moves to the best probe if it
// improves on the current value. When no probe improves, the step is
// halved. The search ends once the step falls below the configured
// minimum. At most O(d log(max/min)) evaluations of f are made per
// start, for d directions.
//
// The result is a local minimum near the starting point and depends
// heavily on the shape of f. Restarts trades more evaluations for a
// better chance at the global minimum.
package hillclimb

import (
	"fmt"
	"math"

	"github.com/cockroachdb/errors"
)

// ErrInvalidOption is returned by FindMin for a bad option or a nil
// function.
var ErrInvalidOption = errors.New("hillclimb: invalid option")

// Result is the best point found by a search.
type Result struct {
	X, Y float64
	// F is f(X, Y).
	F float64
	// Evaluations counts calls to f across all starts.
	Evaluations int
}

func (r Result) String() string {
	return fmt.Sprintf("HC<f(%.6f, %.6f)=%.6f, evals=%d>", r.X, r.Y, r.F, r.Evaluations)
}

type climber struct {
	directions       int
	stepMin, stepMax float64
	restarts         int
	lo, hi           float64
	rng              RNG

	// unit probe offsets, one per direction
	cos, sin []float64
}

func newClimber(options ...climberOption) (*climber, error) {
	c := &climber{
		directions: 6,
		stepMin:    1e-9,
		stepMax:    1e6,
		rng:        &globalRNG{},
	}
	for _, option := range options {
		if err := option(c); err != nil {
			return nil, err
		}
	}
	c.cos = make([]float64, c.directions)
	c.sin = make([]float64, c.directions)
	for i := range c.cos {
		a := 2 * math.Pi * float64(i) / float64(c.directions)
		c.sin[i], c.cos[i] = math.Sincos(a)
	}
	return c, nil
}

// FindMin searches for a minimum of f starting from (x0, y0).
func FindMin(f func(x, y float64) float64, x0, y0 float64, options ...climberOption) (Result, error) {
	if f == nil {
		return Result{}, errors.Wrap(ErrInvalidOption, "nil function")
	}
	c, err := newClimber(options...)
	if err != nil {
		return Result{}, err
	}

	best := c.climb(f, x0, y0)
	evals := best.Evaluations
	span := c.hi - c.lo
	for i := 0; i < c.restarts; i++ {
		x := c.lo + c.rng.Float64()*span
		y := c.lo + c.rng.Float64()*span
		r := c.climb(f, x, y)
		evals += r.Evaluations
		if r.F < best.F {
			best = r
		}
	}
	best.Evaluations = evals
	return best, nil
}

func (c *climber) climb(f func(x, y float64) float64, x, y float64) Result {
	res := f(x, y)
	evals := 1
	for step := c.stepMax; step > c.stepMin; {
		bestX, bestY, best := x, y, res
		found := false
		for i := range c.cos {
			x2 := x + step*c.cos[i]
			y2 := y + step*c.sin[i]
			val := f(x2, y2)
			evals++
			if val < best {
				bestX, bestY, best = x2, y2, val
				found = true
			}
		}
		if !found {
			step /= 2
			continue
		}
		x, y, res = bestX, bestY, best
	}
	return Result{X: x, Y: y, F: res, Evaluations: evals}
}
