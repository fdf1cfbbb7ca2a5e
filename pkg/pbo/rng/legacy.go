package rng

import (
	"math"
)

const (
	modulus    = 2147483647
	multiplier = 16807
	quotient   = 127773
	remainder  = 2836

	tableSize = 32
	warmup    = 40
)

// step advances the Park-Miller recurrence using Schrage's method, with the
// division done in floating point like the legacy generator.
func step(seed int64) int64 {
	tmp := int64(math.Floor(float64(seed) / quotient))
	seed = multiplier*(seed-tmp*quotient) - remainder*tmp
	if seed < 0 {
		seed += modulus
	}
	return seed
}

// Uniform returns n uniform numbers in (0, 1] drawn from the legacy shuffled
// linear congruential generator seeded with seed. It is a pure function of
// (seed, n) and a shorter request is always a prefix of a longer one.
func Uniform(seed int64, n int) []float64 {
	r := make([]float64, n)
	if seed < 0 {
		seed = -seed
	}
	if seed < 1 {
		seed = 1
	}

	var table [tableSize]int64
	for i := warmup - 1; i >= 0; i-- {
		seed = step(seed)
		if i < tableSize {
			table[i] = seed
		}
	}

	current := table[0]
	for i := 0; i < n; i++ {
		seed = step(seed)
		idx := int64(math.Floor(float64(current) / 67108865))
		current = table[idx]
		table[idx] = seed
		r[i] = float64(current) / 2.147483647e9
		if r[i] == 0 {
			r[i] = 1e-99
		}
	}
	return r
}

// Gaussian returns n normally distributed numbers built from 2n uniforms of
// the same seed with the Box-Muller transform.
func Gaussian(seed int64, n int) []float64 {
	u := Uniform(seed, 2*n)
	g := make([]float64, n)
	for i := 0; i < n; i++ {
		g[i] = math.Sqrt(-2*math.Log(u[i])) * math.Cos(2*math.Pi*u[n+i])
		if g[i] == 0 {
			g[i] = 1e-99
		}
	}
	return g
}
