package benchmarks

import (
	"math"
)

const LABSName = "labs"

// LABS is the merit factor of the sequence read from x, where positive
// values count as +1 and all others as -1. Its optimum is unknown, so the
// best value is the largest float.
type LABS struct {
	function
}

func NewLABS(n int) *LABS {
	p := &LABS{}
	p.function = newFunction(LABSName, n, p.Raw, func(int) float64 {
		return math.MaxFloat64
	})
	p.lower = -1
	p.init()
	return p
}

func sign(v int) int {
	if v > 0 {
		return 1
	}
	return -1
}

func (p *LABS) Raw(x []int) float64 {
	n := len(x)
	energy := 0.0
	for k := 1; k < n; k++ {
		c := 0
		for i := 0; i < n-k; i++ {
			c += sign(x[i]) * sign(x[i+k])
		}
		energy += float64(c * c)
	}
	if energy == 0 {
		return math.MaxFloat64
	}
	return float64(n*n) / 2 / energy
}
