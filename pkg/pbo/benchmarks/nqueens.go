package benchmarks

import (
	"math"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const NQueensName = "N_queens"

// NQueens places a queen on every set cell of a sqrt(n) x sqrt(n) board and
// subtracts sqrt(n) for every extra queen on a row, column or diagonal.
type NQueens struct {
	function
}

func NewNQueens(n int) *NQueens {
	p := &NQueens{}
	p.function = newFunction(NQueensName, n, p.Raw, func(n int) float64 {
		return math.Sqrt(float64(n))
	})
	p.init()
	return p
}

func (p *NQueens) Raw(x []int) float64 {
	n, ok := latticeSide(len(x))
	if !ok {
		framework.CheckInvariant(false, "%s: %d variables do not form a square board", NQueensName, len(x))
		return math.NaN()
	}
	// cell is 1-based in both row and column
	cell := func(i, j int) float64 { return float64(x[(i-1)*n+(j-1)%n]) }
	excess := func(s float64) float64 { return math.Max(0, s-1) }

	queens := 0
	for _, v := range x {
		if v == 1 {
			queens++
		}
	}

	var rows, columns, diagonals, antidiagonals float64
	for a := 1; a <= n; a++ {
		var row, column float64
		for b := 1; b <= n; b++ {
			row += cell(a, b)
			column += cell(b, a)
		}
		rows += excess(row)
		columns += excess(column)
	}
	for k := 2 - n; k <= n-2; k++ {
		s := 0.0
		for i := 1; i <= n; i++ {
			if k+i >= 1 && k+i <= n {
				s += cell(i, k+i)
			}
		}
		diagonals += excess(s)
	}
	for l := 3; l <= 2*n-1; l++ {
		s := 0.0
		for i := 1; i <= n; i++ {
			if l-i >= 1 && l-i <= n {
				s += cell(i, l-i)
			}
		}
		antidiagonals += excess(s)
	}

	c := float64(n)
	return float64(queens) - c*rows - c*columns - c*diagonals - c*antidiagonals
}
