package transform

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

// layer is embedded by every transformation. It owns the wrapped problem
// and answers everything the transformation leaves unchanged.
type layer struct {
	inner framework.Problem
	name  string
	n     int

	// undefined is set when the last input never reached the inner layer.
	undefined bool
}

func newLayer(kind string, inner framework.Problem, n int) layer {
	return layer{
		inner: inner,
		name:  kind + "(" + inner.Name() + ")",
		n:     n,
	}
}

func (l *layer) Name() string {
	return l.name
}

func (l *layer) Inner() framework.Problem {
	return l.inner
}

func (l *layer) NumberOfVariables() int {
	return l.n
}

func (l *layer) NumberOfObjectives() int {
	return l.inner.NumberOfObjectives()
}

func (l *layer) Bounds() []framework.Bounds {
	b := l.inner.Bounds()
	if len(b) == l.n {
		return b
	}
	lower, upper := 0, 1
	if len(b) > 0 {
		lower, upper = b[0].L, b[0].H
	}
	return framework.UniformBounds(l.n, lower, upper)
}

func (l *layer) BestParameter() []int {
	return l.inner.BestParameter()
}

func (l *layer) BestValue() []float64 {
	return l.inner.BestValue()
}

func (l *layer) RawFitness() []float64 {
	if l.undefined {
		return framework.NaNVector(l.NumberOfObjectives())
	}
	return l.inner.RawFitness()
}

// accept reports whether x can be passed on. Otherwise it returns the NaN
// vector to answer with.
func (l *layer) accept(x []int) ([]float64, bool) {
	l.undefined = true
	if framework.HasNaN(x) {
		return framework.NaNVector(l.NumberOfObjectives()), false
	}
	if len(x) != l.n {
		framework.CheckInvariant(false, "%s: evaluated %d variables, want %d", l.name, len(x), l.n)
		return framework.NaNVector(l.NumberOfObjectives()), false
	}
	l.undefined = false
	return nil, true
}

// fixed is the Resize of layers whose per-variable data pins their size.
func (l *layer) fixed(n int) error {
	if n != l.n {
		return fmt.Errorf("%w: %s is fixed to %d variables, got %d", framework.ErrDimension, l.name, l.n, n)
	}
	return resize(l.inner, n)
}

// resize sets the number of variables of p and of every layer below it.
func resize(p framework.Problem, n int) error {
	if p.NumberOfVariables() == n {
		return nil
	}
	r, ok := p.(framework.Resizer)
	if !ok {
		return fmt.Errorf("%w: %s cannot be resized to %d", framework.ErrDimension, p.Name(), n)
	}
	return r.Resize(n)
}

// Chain lists p followed by every layer it wraps, innermost last.
func Chain(p framework.Problem) []framework.Problem {
	chain := []framework.Problem{p}
	for {
		t, ok := p.(framework.Transformed)
		if !ok {
			return chain
		}
		p = t.Inner()
		chain = append(chain, p)
	}
}

// EffectiveDimension is the number of variables the innermost objective
// function sees. It is smaller than p.NumberOfVariables() below dummy and
// neutrality layers.
func EffectiveDimension(p framework.Problem) int {
	chain := Chain(p)
	return chain[len(chain)-1].NumberOfVariables()
}

func checkLength(kind string, got, want int) error {
	if got != want {
		return fmt.Errorf("%w: %s needs %d values, got %d", framework.ErrDimension, kind, want, got)
	}
	return nil
}
