package instance

import (
	"math"

	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

const (
	// DummySeed is the first seed used to draw dummy variable positions.
	DummySeed = 10000

	MinScale = 0.2
	MaxScale = 5.0
)

// Seed is the per-instance seed used for every vector derived for a
// (function, instance) pair.
func Seed(function, instance int) int64 {
	return int64(function) + 10000*int64(instance)
}

// Fopt returns the objective offset of a (function, instance) pair, rounded to
// two decimals and clamped to [-1000, 1000].
func Fopt(function, instance int) float64 {
	seed := Seed(function, instance)
	g1 := rng.Gaussian(seed, 1)[0]
	g2 := rng.Gaussian(seed+1, 1)[0]
	v := math.Floor(100*100*g1/g2+0.5) / 100
	return math.Min(1000, math.Max(-1000, v))
}

// Scale returns the objective scale factor of a (function, instance) pair,
// which is derived from the offset of instance+100.
func Scale(function, instance int) float64 {
	a := math.Abs(Fopt(function, instance+100))/1000*4.8 + 0.2
	framework.CheckInvariant(a >= MinScale && a <= MaxScale,
		"scale %v of f%d i%d outside [%v, %v]", a, function, instance, MinScale, MaxScale)
	return a
}

// XoptInt returns the XOR offset vector of length n for seed.
func XoptInt(seed int64, n int) []int {
	u := rng.Uniform(seed, n)
	z := make([]int, n)
	for i := range u {
		z[i] = int(2 * math.Floor(1e4*u[i]) / 1e4)
	}
	return z
}

// XoptDouble returns n values in [0, 1) truncated to four decimals, with
// exact zeros replaced by -1e-5.
func XoptDouble(seed int64, n int) []float64 {
	x := rng.Uniform(seed, n)
	for i := range x {
		x[i] = math.Floor(1e4*x[i]) / 1e4
		if x[i] == 0 {
			x[i] = -1e-5
		}
	}
	return x
}

// Permutation builds the sigma table of length n by repeatedly swapping a
// drawn position into slot 0.
func Permutation(seed int64, n int) []int {
	xins := XoptDouble(seed, n)
	sigma := make([]int, n)
	for i := range sigma {
		sigma[i] = i
	}
	for i := 0; i < n; i++ {
		t := int(xins[i] * float64(n))
		framework.CheckInvariant(t >= 0 && t < n, "permutation index %d out of [0, %d)", t, n)
		if t < 0 || t >= n {
			continue
		}
		sigma[0], sigma[t] = sigma[t], sigma[0]
	}
	return sigma
}

// DummyPositions selects newDim distinct positions out of oldDim, drawing one
// uniform per attempt from consecutive seeds starting at DummySeed.
func DummyPositions(oldDim, newDim int) []int {
	if newDim > oldDim {
		newDim = oldDim
	}
	positions := make([]int, 0, newDim)
	seen := sets.New[int]()
	for seed := int64(DummySeed); len(positions) < newDim; seed++ {
		t := int(rng.Uniform(seed, 1)[0] * float64(oldDim))
		if t >= oldDim || seen.Has(t) {
			continue
		}
		seen.Insert(t)
		positions = append(positions, t)
	}
	return positions
}
