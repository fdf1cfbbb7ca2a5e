package benchmarks

import (
	"math"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const (
	Ising1DName       = "ising_1D"
	Ising2DName       = "ising_2D"
	IsingTriangleName = "ising_triangle"
	IsingSquareName   = "ising_square"
)

// Ising1D counts the agreements of every spin with its two neighbours on a ring.
type Ising1D struct {
	function
}

func NewIsing1D(n int) *Ising1D {
	p := &Ising1D{}
	p.function = newFunction(Ising1DName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *Ising1D) Raw(x []int) float64 {
	n := len(x)
	result := 0
	for i := 0; i < n; i++ {
		result += agreement(x[i], x[mod(i+1, n)])
		result += agreement(x[i], x[mod(i-1, n)])
	}
	return float64(result)
}

// Ising2D counts agreements with the four neighbours of every spin on a torus.
type Ising2D struct {
	function
}

func NewIsing2D(n int) *Ising2D {
	p := &Ising2D{}
	p.function = newFunction(Ising2DName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *Ising2D) Raw(x []int) float64 {
	side, ok := latticeSide(len(x))
	if !ok {
		framework.CheckInvariant(false, "%s: %d variables do not form a square lattice", Ising2DName, len(x))
		return math.NaN()
	}
	at := func(i, j int) int { return x[mod(i, side)*side+mod(j, side)] }

	result := 0
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			s := at(i, j)
			result += agreement(s, at(i-1, j))
			result += agreement(s, at(i+1, j))
			result += agreement(s, at(i, j-1))
			result += agreement(s, at(i, j+1))
		}
	}
	return float64(result)
}

// IsingTriangle counts agreements with six neighbours on a triangular torus.
// The fourth neighbour is taken in column i+1 of the same row, as the
// published instances do.
type IsingTriangle struct {
	function
}

func NewIsingTriangle(n int) *IsingTriangle {
	p := &IsingTriangle{}
	p.function = newFunction(IsingTriangleName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *IsingTriangle) Raw(x []int) float64 {
	side, ok := latticeSide(len(x))
	if !ok {
		framework.CheckInvariant(false, "%s: %d variables do not form a square lattice", IsingTriangleName, len(x))
		return math.NaN()
	}
	at := func(i, j int) int { return x[mod(i, side)*side+mod(j, side)] }

	result := 0
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			s := at(i, j)
			for _, nb := range [6]int{
				at(i-1, j),
				at(i+1, j),
				at(i, j-1),
				at(i, i+1),
				at(i-1, j-1),
				at(i+1, j+1),
			} {
				result += agreement(s, nb)
			}
		}
	}
	return float64(result)
}

// IsingSquare maps bits to spins in {-1, 1} and sums 2*s*(sum of the four
// neighbouring spins) over the torus.
type IsingSquare struct {
	function
}

func NewIsingSquare(n int) *IsingSquare {
	p := &IsingSquare{}
	p.function = newFunction(IsingSquareName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *IsingSquare) Raw(x []int) float64 {
	side, ok := latticeSide(len(x))
	if !ok {
		framework.CheckInvariant(false, "%s: %d variables do not form a square lattice", IsingSquareName, len(x))
		return math.NaN()
	}
	spin := func(i, j int) int {
		if v := x[mod(i, side)*side+mod(j, side)]; v != 0 {
			return v
		}
		return -1
	}

	result := 0
	for i := 0; i < side; i++ {
		for j := 0; j < side; j++ {
			result += 2 * spin(i, j) * (spin(i-1, j) + spin(i+1, j) + spin(i, j-1) + spin(i, j+1))
		}
	}
	return float64(result)
}
