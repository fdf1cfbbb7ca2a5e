package transform

import (
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const (
	ObjShiftName = "transform_obj_shift"
	ObjScaleName = "transform_obj_scale"
)

// objective is embedded by transformations that only remap the objective
// vector. The input reaches the inner layer untouched.
type objective struct {
	layer
	apply func(y []float64) []float64
}

func newObjective(kind string, inner framework.Problem, apply func([]float64) []float64) objective {
	return objective{
		layer: newLayer(kind, inner, inner.NumberOfVariables()),
		apply: apply,
	}
}

func (t *objective) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	y := t.inner.Evaluate(x)
	if framework.IsNaN(y) {
		return y
	}
	return t.apply(y)
}

func (t *objective) BestValue() []float64 {
	return t.apply(t.inner.BestValue())
}

func (t *objective) Resize(n int) error {
	if err := resize(t.inner, n); err != nil {
		return err
	}
	t.n = n
	return nil
}

// ObjShift adds offset to every objective.
type ObjShift struct {
	objective
	offset float64
}

func NewObjShift(inner framework.Problem, offset float64) *ObjShift {
	t := &ObjShift{offset: offset}
	t.objective = newObjective(ObjShiftName, inner, t.shift)
	framework.CheckBest(t)
	return t
}

func (t *ObjShift) shift(y []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] + t.offset
	}
	return out
}

// ObjScale multiplies every objective by factor.
type ObjScale struct {
	objective
	factor float64
}

func NewObjScale(inner framework.Problem, factor float64) *ObjScale {
	t := &ObjScale{factor: factor}
	t.objective = newObjective(ObjScaleName, inner, t.scale)
	framework.CheckBest(t)
	return t
}

func (t *ObjScale) scale(y []float64) []float64 {
	out := make([]float64, len(y))
	for i := range y {
		out[i] = y[i] * t.factor
	}
	return out
}
