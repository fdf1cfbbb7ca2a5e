package transform

import (
	"math"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const (
	Ruggedness1Name = "transform_obj_ruggedness1"
	Ruggedness2Name = "transform_obj_ruggedness2"
	Ruggedness3Name = "transform_obj_ruggedness3"
)

// Ruggedness1 halves y, keeping the maximum n one step above everything else.
func Ruggedness1(y float64, n int) float64 {
	s := float64(n)
	switch {
	case y == s:
		return math.Ceil(y/2) + 1
	case y < s && n%2 == 0:
		return math.Floor(y/2) + 1
	case y < s && n%2 != 0:
		return math.Ceil(y/2) + 1
	default:
		framework.CheckInvariant(y <= s, "ruggedness of %v above %d", y, n)
		return y
	}
}

// Ruggedness2 moves values of the parity of n up by one and the others
// down by one, leaving the maximum n in place.
func Ruggedness2(y float64, n int) float64 {
	t := int(y + 0.5)
	switch {
	case t == n:
		return y
	case t < n && (t%2 == 0) == (n%2 == 0):
		return y + 1
	case t < n:
		return math.Max(y-1, 0)
	default:
		framework.CheckInvariant(t <= n, "ruggedness of %v above %d", y, n)
		return y
	}
}

// Ruggedness3Table maps every value 0..n to a new value. Blocks of five
// below n are reversed, the remainder at the bottom is reversed as well,
// and n maps to itself.
func Ruggedness3Table(n int) []float64 {
	t := ruggedness3Blocks(n)
	r := n - n/5*5
	for k := 0; k < r; k++ {
		t[k] = float64(r - 1 - k)
	}
	return t
}

// LegacyRuggedness3Table is Ruggedness3Table with the remainder filled as
// r-j instead of r-1-j, which some published instances were generated with.
func LegacyRuggedness3Table(n int) []float64 {
	t := ruggedness3Blocks(n)
	r := n - n/5*5
	for j := 0; j < r; j++ {
		t[j] = float64(r - j)
	}
	return t
}

func ruggedness3Blocks(n int) []float64 {
	t := make([]float64, n+1)
	for j := 1; j <= n/5; j++ {
		for k := 0; k < 5; k++ {
			t[n-5*j+k] = float64(n - 5*j + (4 - k))
		}
	}
	t[n] = float64(n)
	return t
}

// Ruggedness remaps the first objective of a function whose values are
// integers in [0, n].
type Ruggedness struct {
	objective
	kind  int
	table []float64
}

// NewRuggedness1 wraps inner with Ruggedness1.
func NewRuggedness1(inner framework.Problem) *Ruggedness {
	return newRuggedness(Ruggedness1Name, 1, inner)
}

// NewRuggedness2 wraps inner with Ruggedness2.
func NewRuggedness2(inner framework.Problem) *Ruggedness {
	return newRuggedness(Ruggedness2Name, 2, inner)
}

// NewRuggedness3 wraps inner with a lookup in Ruggedness3Table.
func NewRuggedness3(inner framework.Problem) *Ruggedness {
	return newRuggedness(Ruggedness3Name, 3, inner)
}

func newRuggedness(name string, kind int, inner framework.Problem) *Ruggedness {
	t := &Ruggedness{kind: kind}
	t.objective = newObjective(name, inner, t.remap)
	t.rebuild()
	framework.CheckBest(t)
	return t
}

func (t *Ruggedness) rebuild() {
	if t.kind == 3 {
		t.table = Ruggedness3Table(t.n)
	}
}

func (t *Ruggedness) remap(y []float64) []float64 {
	out := append([]float64(nil), y...)
	switch t.kind {
	case 1:
		out[0] = Ruggedness1(y[0], t.n)
	case 2:
		out[0] = Ruggedness2(y[0], t.n)
	case 3:
		idx := int(y[0] + 0.5)
		if idx < 0 || idx >= len(t.table) {
			framework.CheckInvariant(false, "%s: value %v outside [0, %d]", t.name, y[0], t.n)
			out[0] = math.NaN()
			break
		}
		out[0] = t.table[idx]
	}
	return out
}

func (t *Ruggedness) Resize(n int) error {
	if err := t.objective.Resize(n); err != nil {
		return err
	}
	t.rebuild()
	return nil
}
