package rng

import (
	"math"
)

const (
	shortLag = 273
	longLag  = 607
)

// Fibonacci is the additive lagged Fibonacci generator used by the example
// optimizers. It is not used to derive problem instances.
//
// A Fibonacci value is not safe for concurrent use.
type Fibonacci struct {
	x     [longLag]float64
	index int
}

// NewFibonacci expands seed into the initial lag table.
func NewFibonacci(seed uint32) *Fibonacci {
	f := &Fibonacci{}
	for i := 0; i < longLag; i++ {
		f.x[i] = float64(seed) / float64(uint64(1)<<32-1)
		seed = 1812433253*(seed^(seed>>30)) + uint32(i+1)
	}
	return f
}

func (f *Fibonacci) generate() {
	for i := 0; i < shortLag; i++ {
		t := f.x[i] + f.x[i+(longLag-shortLag)]
		if t >= 1.0 {
			t -= 1.0
		}
		f.x[i] = t
	}
	for i := shortLag; i < longLag; i++ {
		t := f.x[i] + f.x[i-shortLag]
		if t >= 1.0 {
			t -= 1.0
		}
		f.x[i] = t
	}
	f.index = 0
}

// Uniform returns the next number in [0, 1).
func (f *Fibonacci) Uniform() float64 {
	if f.index >= longLag {
		f.generate()
	}
	v := f.x[f.index]
	f.index++
	return v
}

// Normal returns a standard normal draw using the Box-Muller transform.
// A zero first uniform is redrawn.
func (f *Fibonacci) Normal() float64 {
	u1 := f.Uniform()
	for u1 == 0 {
		u1 = f.Uniform()
	}
	u2 := f.Uniform()
	return math.Sqrt(-2*math.Log(u1)) * math.Cos(2*math.Pi*u2)
}

// IntN returns an integer in [0, n).
func (f *Fibonacci) IntN(n int) int {
	v := int(f.Uniform() * float64(n))
	if v >= n {
		v = n - 1
	}
	return v
}

// Binomial counts the successes of n Bernoulli trials with probability p.
func (f *Fibonacci) Binomial(n int, p float64) int {
	r := 0
	for i := 0; i < n; i++ {
		if f.Uniform() < p {
			r++
		}
	}
	return r
}
