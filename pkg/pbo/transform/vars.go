package transform

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const (
	XorName       = "transform_vars_xor"
	SigmaName     = "transform_vars_sigma"
	ShiftName     = "transform_vars_shift"
	ReductionName = "transform_vars_reduction"
)

// Xor flips every variable whose offset bit is set.
type Xor struct {
	layer
	offset []int
	buf    []int
}

func NewXor(inner framework.Problem, offset []int) (*Xor, error) {
	n := inner.NumberOfVariables()
	if err := checkLength(XorName, len(offset), n); err != nil {
		return nil, err
	}
	t := &Xor{
		layer:  newLayer(XorName, inner, n),
		offset: framework.Clone(offset),
		buf:    make([]int, n),
	}
	framework.CheckBest(t)
	return t, nil
}

func xor(dst, x, offset []int) {
	for i := range dst {
		if x[i] != offset[i] {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

func (t *Xor) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	xor(t.buf, x, t.offset)
	return t.inner.Evaluate(t.buf)
}

func (t *Xor) BestParameter() []int {
	best := t.inner.BestParameter()
	xor(best, best, t.offset)
	return best
}

func (t *Xor) Resize(n int) error {
	return t.fixed(n)
}

// Sigma permutes the variables: the inner layer sees x[perm[i]] at i.
type Sigma struct {
	layer
	perm []int
	buf  []int
}

func NewSigma(inner framework.Problem, perm []int) (*Sigma, error) {
	n := inner.NumberOfVariables()
	if err := checkLength(SigmaName, len(perm), n); err != nil {
		return nil, err
	}
	seen := make([]bool, n)
	for _, p := range perm {
		if p < 0 || p >= n || seen[p] {
			return nil, fmt.Errorf("%w: %v is not a permutation", framework.ErrDimension, perm)
		}
		seen[p] = true
	}
	t := &Sigma{
		layer: newLayer(SigmaName, inner, n),
		perm:  framework.Clone(perm),
		buf:   make([]int, n),
	}
	framework.CheckBest(t)
	return t, nil
}

func (t *Sigma) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	for i, p := range t.perm {
		t.buf[i] = x[p]
	}
	return t.inner.Evaluate(t.buf)
}

func (t *Sigma) BestParameter() []int {
	inner := t.inner.BestParameter()
	best := make([]int, t.n)
	for i, p := range t.perm {
		best[p] = inner[i]
	}
	return best
}

func (t *Sigma) Resize(n int) error {
	return t.fixed(n)
}

// Shift adds a per-variable offset.
type Shift struct {
	layer
	offset []int
	buf    []int
}

func NewShift(inner framework.Problem, offset []int) (*Shift, error) {
	n := inner.NumberOfVariables()
	if err := checkLength(ShiftName, len(offset), n); err != nil {
		return nil, err
	}
	t := &Shift{
		layer:  newLayer(ShiftName, inner, n),
		offset: framework.Clone(offset),
		buf:    make([]int, n),
	}
	framework.CheckBest(t)
	return t, nil
}

func (t *Shift) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	for i := range t.buf {
		t.buf[i] = x[i] + t.offset[i]
	}
	return t.inner.Evaluate(t.buf)
}

func (t *Shift) BestParameter() []int {
	best := t.inner.BestParameter()
	for i := range best {
		best[i] -= t.offset[i]
	}
	return best
}

func (t *Shift) Resize(n int) error {
	return t.fixed(n)
}

// Reduction resizes the inner chain to k variables and passes x through
// unchanged.
type Reduction struct {
	layer
}

func NewReduction(inner framework.Problem, k int) (*Reduction, error) {
	if err := resize(inner, k); err != nil {
		return nil, err
	}
	t := &Reduction{
		layer: newLayer(ReductionName, inner, k),
	}
	framework.CheckBest(t)
	return t, nil
}

func (t *Reduction) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	return t.inner.Evaluate(framework.Clone(x))
}

func (t *Reduction) Resize(n int) error {
	if err := resize(t.inner, n); err != nil {
		return err
	}
	t.n = n
	return nil
}
