package hillclimb

import (
	"fmt"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats/scalar"
	"gonum.org/v1/gonum/optimize"
)

// Paraboloid with global minimum at f(2, 3) = 0.
func paraboloid(x, y float64) float64 {
	return (x-2)*(x-2) + (y-3)*(y-3)
}

// Two basins along x; the one around x = -2 is deeper.
func twoWells(x, y float64) float64 {
	return (x*x-4)*(x*x-4) + y*y + 0.5*x
}

func TestParaboloid(t *testing.T) {
	t.Parallel()

	res, err := FindMin(paraboloid, 0, 0)
	require.NoError(t, err)
	require.True(t, scalar.EqualWithinAbs(res.F, 0, 1e-8), "got %s", res)
	require.True(t, scalar.EqualWithinAbs(res.X, 2, 1e-8), "got %s", res)
	require.True(t, scalar.EqualWithinAbs(res.Y, 3, 1e-8), "got %s", res)
	require.Equal(t, res.F, paraboloid(res.X, res.Y))
	require.Greater(t, res.Evaluations, 1)
}

// TestMatchesNelderMead compares against gonum's Nelder-Mead on a
// convex function with an off-axis minimum.
func TestMatchesNelderMead(t *testing.T) {
	t.Parallel()

	f := func(x, y float64) float64 {
		return (x-1)*(x-1) + 2*(y+0.5)*(y+0.5) + 0.5*x*y
	}

	problem := optimize.Problem{
		Func: func(v []float64) float64 { return f(v[0], v[1]) },
	}
	want, err := optimize.Minimize(problem, []float64{0, 0}, nil, &optimize.NelderMead{})
	require.NoError(t, err)

	for _, dirs := range []int{3, 6, 16} {
		got, err := FindMin(f, 0, 0, Directions(dirs))
		require.NoError(t, err)
		require.True(t, scalar.EqualWithinAbs(got.F, want.F, 1e-6), "directions=%d got %s want %v", dirs, got, want.F)
		require.True(t, scalar.EqualWithinAbs(got.X, want.X[0], 1e-3), "directions=%d got %s want %v", dirs, got, want.X)
		require.True(t, scalar.EqualWithinAbs(got.Y, want.X[1], 1e-3), "directions=%d got %s want %v", dirs, got, want.X)
	}
}

func TestStepRange(t *testing.T) {
	coarse, err := FindMin(paraboloid, 0, 0, StepRange(1e-3, 10))
	require.NoError(t, err)
	fine, err := FindMin(paraboloid, 0, 0, StepRange(1e-12, 10))
	require.NoError(t, err)

	require.Less(t, coarse.Evaluations, fine.Evaluations)
	require.True(t, scalar.EqualWithinAbs(coarse.X, 2, 1e-2), "got %s", coarse)
	require.LessOrEqual(t, fine.F, coarse.F)
}

func TestRestartsAreReproducible(t *testing.T) {
	single, err := FindMin(twoWells, 3, 3)
	require.NoError(t, err)

	a, err := FindMin(twoWells, 3, 3, Restarts(10, -5, 5), LocalRandomNumberGenerator(0xDEADBEEF))
	require.NoError(t, err)
	b, err := FindMin(twoWells, 3, 3, Restarts(10, -5, 5), LocalRandomNumberGenerator(0xDEADBEEF))
	require.NoError(t, err)

	require.Equal(t, a, b)
	require.LessOrEqual(t, a.F, single.F)
	require.Greater(t, a.Evaluations, single.Evaluations)
}

func TestRestartsKeepBest(t *testing.T) {
	// Start in the shallow well; the restart lands at (-2, 0) in the deep
	// one, where every improving move stays below the shallow well.
	r := &fixedRNG{values: []float64{0.3, 0.5}}
	res, err := FindMin(twoWells, 2, 0, Restarts(1, -5, 5), RandomNumberGenerator(r))
	require.NoError(t, err)
	require.Less(t, res.X, 0.0, "got %s", res)
	require.Less(t, res.F, -1.0, "got %s", res)
}

type fixedRNG struct {
	values []float64
	calls  int
}

func (r *fixedRNG) Float64() float64 {
	v := r.values[r.calls%len(r.values)]
	r.calls++
	return v
}

func TestRandomNumberGenerator(t *testing.T) {
	r := &fixedRNG{values: []float64{0.1, 0.9, 0.5}}
	res, err := FindMin(paraboloid, 0, 0, Restarts(3, 0, 10), RandomNumberGenerator(r))
	require.NoError(t, err)
	require.Equal(t, 6, r.calls)
	require.True(t, scalar.EqualWithinAbs(res.F, 0, 1e-8), "got %s", res)

	// Without restarts the generator is never consulted.
	r = &fixedRNG{values: []float64{0.5}}
	_, err = FindMin(paraboloid, 0, 0, RandomNumberGenerator(r))
	require.NoError(t, err)
	require.Equal(t, 0, r.calls)
}

func TestInvalidOptions(t *testing.T) {
	for i, option := range []climberOption{
		Directions(0),
		StepRange(0, 1),
		StepRange(1, 1),
		StepRange(2, 1),
		StepRange(1e-9, math.Inf(1)),
		StepRange(math.NaN(), 1),
		Restarts(-1, 0, 1),
		Restarts(1, 1, 1),
		Restarts(1, math.Inf(-1), 0),
		RandomNumberGenerator(nil),
	} {
		res, err := FindMin(paraboloid, 0, 0, option)
		require.True(t, errors.Is(err, ErrInvalidOption), "option %d: got %v", i, err)
		require.Equal(t, Result{}, res)
	}

	_, err := FindMin(nil, 0, 0)
	require.True(t, errors.Is(err, ErrInvalidOption))
}

func ExampleFindMin() {
	res, _ := FindMin(paraboloid, 0, 0)
	fmt.Printf("min %.4f at (%.4f, %.4f)\n", math.Abs(res.F), res.X, res.Y)

	// Output:
	// min 0.0000 at (2.0000, 3.0000)
}

func benchmarkFindMin(directions int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		if _, err := FindMin(paraboloid, 0, 0, Directions(directions)); err != nil {
			b.Error(err)
		}
	}
}

func BenchmarkFindMin3(b *testing.B) {
	benchmarkFindMin(3, b)
}

func BenchmarkFindMin6(b *testing.B) {
	benchmarkFindMin(6, b)
}

func BenchmarkFindMin16(b *testing.B) {
	benchmarkFindMin(16, b)
}
