package benchmarks

import (
	"fmt"
	"math"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

var (
	_ framework.Resizer = &OneMax{}
	_ framework.Problem = &LeadingOnes{}
	_ framework.Problem = &Linear{}
	_ framework.Problem = &Jump{}
	_ framework.Problem = &Ising1D{}
	_ framework.Problem = &Ising2D{}
	_ framework.Problem = &IsingTriangle{}
	_ framework.Problem = &IsingSquare{}
	_ framework.Problem = &MIS{}
	_ framework.Problem = &NQueens{}
	_ framework.Problem = &LABS{}
)

// function holds what every objective function shares: its name, its
// dimension, its domain and the known optimum. Concrete functions embed it
// and supply the raw objective.
type function struct {
	name  string
	n     int
	lower int
	upper int

	raw func(x []int) float64

	// optimum returns the best value for n variables. When nil the best
	// value is the raw value of the best parameter.
	optimum func(n int) float64

	best      []int
	bestValue []float64
	last      []float64
}

func newFunction(name string, n int, raw func([]int) float64, optimum func(int) float64) function {
	return function{
		name:    name,
		n:       n,
		lower:   0,
		upper:   1,
		raw:     raw,
		optimum: optimum,
	}
}

func (f *function) init() {
	f.best = make([]int, f.n)
	for i := range f.best {
		f.best[i] = 1
	}
	v := 0.0
	if f.optimum != nil {
		v = f.optimum(f.n)
	} else {
		v = f.raw(f.best)
	}
	f.bestValue = []float64{v}
	f.last = framework.NaNVector(1)
}

func (f *function) Name() string {
	return f.name
}

// SetName renames the function, used by variants sharing a raw objective.
func (f *function) SetName(name string) {
	f.name = name
}

func (f *function) NumberOfVariables() int {
	return f.n
}

func (f *function) NumberOfObjectives() int {
	return 1
}

func (f *function) Bounds() []framework.Bounds {
	return framework.UniformBounds(f.n, f.lower, f.upper)
}

func (f *function) BestParameter() []int {
	return framework.Clone(f.best)
}

func (f *function) BestValue() []float64 {
	return []float64{f.bestValue[0]}
}

func (f *function) RawFitness() []float64 {
	return []float64{f.last[0]}
}

// Evaluate computes the raw objective of x. A NaN sentinel or a vector of
// the wrong length yields NaN.
func (f *function) Evaluate(x []int) []float64 {
	switch {
	case framework.HasNaN(x):
		f.last = framework.NaNVector(1)
	case len(x) != f.n:
		framework.CheckInvariant(false, "%s: evaluated %d variables, want %d", f.name, len(x), f.n)
		f.last = framework.NaNVector(1)
	default:
		f.last = []float64{f.raw(x)}
	}
	return []float64{f.last[0]}
}

// Resize changes the number of variables and recomputes the optimum.
func (f *function) Resize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %s cannot take %d variables", framework.ErrDimension, f.name, n)
	}
	f.n = n
	f.init()
	return nil
}

func sum(x []int) float64 {
	s := 0
	for _, v := range x {
		s += v
	}
	return float64(s)
}

func mod(x, n int) int {
	return (x%n + n) % n
}

// latticeSide returns the side of the square lattice holding n variables.
func latticeSide(n int) (int, bool) {
	side := int(math.Sqrt(float64(n)) + 0.5)
	return side, side*side == n
}

// IsSquare reports whether n variables fill a square lattice or board.
func IsSquare(n int) bool {
	_, ok := latticeSide(n)
	return ok
}

func agreement(a, b int) int {
	return a*b + (1-a)*(1-b)
}
