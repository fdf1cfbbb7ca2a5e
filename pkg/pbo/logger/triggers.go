package logger

import (
	"math"
)

// evaluationTrigger fires at floor(10^(e/perDecade)) for e = 0, 1, ... and
// at dim*base[k]*10^j for j = 0, 1, ... Both sequences are advanced on every
// call so neither can fall behind the evaluation count.
type evaluationTrigger struct {
	value1    int
	exponent1 int
	perDecade int

	base      []int
	dim       int
	index     int
	value2    int
	exponent2 int
}

func newEvaluationTrigger(base []int, dim, perDecade int) *evaluationTrigger {
	if perDecade < 1 {
		perDecade = 1
	}
	t := &evaluationTrigger{
		value1:    1,
		perDecade: perDecade,
		base:      base,
		dim:       dim,
		value2:    -1,
	}
	if len(base) > 0 {
		t.value2 = dim * base[0]
	}
	return t
}

func (t *evaluationTrigger) decade(e int) int {
	return int(math.Floor(math.Pow(10, float64(e)/float64(t.perDecade))))
}

func (t *evaluationTrigger) first(evaluations int) bool {
	if evaluations != t.value1 {
		return false
	}
	for t.decade(t.exponent1) <= t.value1 {
		t.exponent1++
	}
	t.value1 = t.decade(t.exponent1)
	return true
}

func (t *evaluationTrigger) second(evaluations int) bool {
	if len(t.base) == 0 || evaluations != t.value2 {
		return false
	}
	if t.index < len(t.base)-1 {
		t.index++
	} else {
		t.index = 0
		t.exponent2++
	}
	t.value2 = int(math.Pow(10, float64(t.exponent2))) * t.dim * t.base[t.index]
	return true
}

func (t *evaluationTrigger) fire(evaluations int) bool {
	first := t.first(evaluations)
	second := t.second(evaluations)
	return first || second
}

// updateTrigger fires whenever a value strictly improves on the previous
// firing value.
type updateTrigger struct {
	previous float64
}

func newUpdateTrigger() *updateTrigger {
	return &updateTrigger{previous: -math.MaxFloat64}
}

func (t *updateTrigger) fire(y float64) bool {
	if y > t.previous {
		t.previous = y
		return true
	}
	return false
}
