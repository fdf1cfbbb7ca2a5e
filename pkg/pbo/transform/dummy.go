package transform

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const DummyName = "transform_vars_dummy"

// Dummy keeps the variables at the given positions and hides all others
// from the inner chain, which is resized to len(positions).
type Dummy struct {
	layer
	positions []int
	buf       []int
}

// NewDummy selects positions out of the current variables of inner.
func NewDummy(inner framework.Problem, positions []int) (*Dummy, error) {
	return newDummy(inner, inner.NumberOfVariables(), positions)
}

func newDummy(inner framework.Problem, n int, positions []int) (*Dummy, error) {
	k := len(positions)
	if k == 0 || k > n {
		return nil, fmt.Errorf("%w: cannot select %d of %d variables", framework.ErrDimension, k, n)
	}
	for _, p := range positions {
		if p < 0 || p >= n {
			return nil, fmt.Errorf("%w: position %d out of [0, %d)", framework.ErrDimension, p, n)
		}
	}
	if err := resize(inner, k); err != nil {
		return nil, err
	}
	t := &Dummy{
		layer:     newLayer(DummyName, inner, n),
		positions: framework.Clone(positions),
		buf:       make([]int, k),
	}
	framework.CheckBest(t)
	return t, nil
}

func (t *Dummy) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	for i, p := range t.positions {
		t.buf[i] = x[p]
	}
	return t.inner.Evaluate(t.buf)
}

// BestParameter places the inner optimum at the selected positions and
// zeros everywhere else.
func (t *Dummy) BestParameter() []int {
	inner := t.inner.BestParameter()
	best := make([]int, t.n)
	for i, p := range t.positions {
		best[p] = inner[i]
	}
	return best
}

func (t *Dummy) Resize(n int) error {
	return t.fixed(n)
}

// NewDummyXor selects positions, then flips the selected variables by offset.
func NewDummyXor(inner framework.Problem, positions, offset []int) (*Dummy, error) {
	n := inner.NumberOfVariables()
	if err := resize(inner, len(positions)); err != nil {
		return nil, err
	}
	x, err := NewXor(inner, offset)
	if err != nil {
		return nil, err
	}
	return newDummy(x, n, positions)
}

// NewDummySigma selects positions, then permutes the selected variables.
func NewDummySigma(inner framework.Problem, positions, perm []int) (*Dummy, error) {
	n := inner.NumberOfVariables()
	if err := resize(inner, len(positions)); err != nil {
		return nil, err
	}
	s, err := NewSigma(inner, perm)
	if err != nil {
		return nil, err
	}
	return newDummy(s, n, positions)
}
