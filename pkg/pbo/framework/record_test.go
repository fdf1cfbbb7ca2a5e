package framework

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

func ones(n int) []int {
	x := make([]int, n)
	for i := range x {
		x[i] = 1
	}
	return x
}

// sumProblem is OneMax without any of the benchmark machinery.
type sumProblem struct {
	n   int
	raw []float64
}

func (p *sumProblem) Name() string            { return "sum" }
func (p *sumProblem) NumberOfVariables() int  { return p.n }
func (p *sumProblem) NumberOfObjectives() int { return 1 }
func (p *sumProblem) Bounds() []Bounds        { return UniformBounds(p.n, 0, 1) }
func (p *sumProblem) BestParameter() []int    { return ones(p.n) }
func (p *sumProblem) BestValue() []float64    { return []float64{float64(p.n)} }
func (p *sumProblem) RawFitness() []float64   { return p.raw }

func (p *sumProblem) Evaluate(x []int) []float64 {
	if HasNaN(x) {
		p.raw = NaNVector(1)
		return NaNVector(1)
	}
	s := 0
	for _, v := range x {
		s += v
	}
	p.raw = []float64{float64(s)}
	return []float64{float64(s)}
}

type countingObserver struct {
	calls int
	last  []float64
}

func (o *countingObserver) Observe(_ *Record, _ []int, y []float64) {
	o.calls++
	o.last = y
}

func TestRecordEvaluate(t *testing.T) {
	rec := NewRecord(&sumProblem{n: 4})
	assert.Equal(t, 4, rec.Dimension)
	assert.Equal(t, ProblemType, rec.Type)
	assert.True(t, math.IsInf(rec.BestObserved()[0], -1))
	assert.False(t, rec.FinalTargetHit())

	obs := &countingObserver{}
	rec.Attach(obs)

	assert.Equal(t, []float64{2}, rec.Evaluate([]int{1, 0, 1, 0}))
	assert.Equal(t, []float64{1}, rec.Evaluate([]int{1, 0, 0, 0}))
	assert.Equal(t, 2, rec.Evaluations())
	assert.Equal(t, []float64{2}, rec.BestObserved())
	assert.Equal(t, 1, rec.BestObservedEvaluation())

	// Equal values do not move the best observed evaluation.
	rec.Evaluate([]int{0, 1, 0, 1})
	assert.Equal(t, 1, rec.BestObservedEvaluation())

	rec.Evaluate([]int{1, 1, 1, 1})
	assert.Equal(t, 4, rec.BestObservedEvaluation())
	assert.True(t, rec.FinalTargetHit())
	assert.Equal(t, 4, obs.calls)

	rec.Detach(obs)
	rec.Evaluate([]int{1, 1, 1, 1})
	assert.Equal(t, 4, obs.calls)
}

func TestRecordNaN(t *testing.T) {
	rec := NewRecord(&sumProblem{n: 3})

	y := rec.Evaluate([]int{NaN, 0, 1})
	require.Len(t, y, 1)
	assert.True(t, math.IsNaN(y[0]))
	assert.Equal(t, 1, rec.Evaluations())
	assert.True(t, math.IsInf(rec.BestObserved()[0], -1))

	y = rec.Evaluate([]int{1, 1})
	assert.True(t, math.IsNaN(y[0]))
	assert.Equal(t, 2, rec.Evaluations())
}

func TestRecordInitialSolution(t *testing.T) {
	rec := NewRecord(&sumProblem{n: 3})
	assert.Equal(t, []int{0, 0, 0}, rec.InitialSolution())
}

func TestRecordRecommendUnsupported(t *testing.T) {
	rec := NewRecord(&sumProblem{n: 3})
	rec.ID = "PBO_f001_i01_d03"
	err := rec.RecommendSolution([]int{1, 1, 1})
	assert.True(t, errors.Is(err, ErrRecommendUnsupported), "got %v", err)
}

func TestRecordParameters(t *testing.T) {
	rec := NewRecord(&sumProblem{n: 3})
	require.NoError(t, rec.SetParameters([]string{"lambda", "flips"}, []float64{1, 2}))
	rec.UpdateParameters(1, 3)
	assert.Equal(t, []string{"lambda", "flips"}, rec.ParameterNames())
	assert.Equal(t, []float64{1, 3}, rec.Parameters())

	err := rec.SetParameters([]string{"lambda"}, nil)
	assert.ErrorIs(t, err, ErrParameters)
}

func TestValidateID(t *testing.T) {
	tests := []struct {
		id    string
		valid bool
	}{
		{"PBO_f001_i01_d16", true},
		{"my-problem_2", true},
		{"", false},
		{"PBO f1", false},
		{"PBO/f1", false},
	}
	for _, tt := range tests {
		err := ValidateID(tt.id)
		if tt.valid {
			assert.NoError(t, err, tt.id)
		} else {
			assert.ErrorIs(t, err, ErrInvalidID, tt.id)
		}
	}
}

func TestCheckInvariantStrict(t *testing.T) {
	prev := SetStrict(true)
	defer SetStrict(prev)

	assert.NotPanics(t, func() { CheckInvariant(true, "fine") })
	assert.PanicsWithError(t, "invariant violated: bad 1", func() { CheckInvariant(false, "bad %d", 1) })

	SetStrict(false)
	assert.NotPanics(t, func() { CheckInvariant(false, "only logged") })
}

func TestDominates(t *testing.T) {
	assert.True(t, Dominates([]float64{2, 2}, []float64{1, 2}))
	assert.False(t, Dominates([]float64{2, 2}, []float64{2, 2}))
	assert.False(t, Dominates([]float64{3, 1}, []float64{1, 2}))
}

func TestStacked(t *testing.T) {
	s, err := NewStacked(&sumProblem{n: 3}, &sumProblem{n: 3})
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumberOfObjectives())
	assert.Equal(t, "stacked(sum,sum)", s.Name())
	assert.Equal(t, []float64{3, 3}, s.BestValue())
	assert.Equal(t, []float64{2, 2}, s.Evaluate([]int{1, 0, 1}))
	assert.Equal(t, []float64{2, 2}, s.RawFitness())
	assert.True(t, IsNaN(s.Evaluate([]int{NaN, 0, 1})))

	_, err = NewStacked(&sumProblem{n: 3}, &sumProblem{n: 4})
	assert.ErrorIs(t, err, ErrDimension)

	rec := NewRecord(s)
	rec.Evaluate([]int{1, 1, 1})
	assert.True(t, rec.FinalTargetHit())
}

func TestSolution(t *testing.T) {
	s := NewSolution([]int{0, 1, 0})
	c := s.Clone()
	c.Flip([]int{0, 2})
	assert.Equal(t, []int{0, 1, 0}, s.X)
	assert.Equal(t, []int{1, 1, 1}, c.X)

	rec := NewRecord(&sumProblem{n: 3})
	s.Evaluate(rec)
	c.Evaluate(rec)
	assert.True(t, c.Better(s))
	assert.False(t, s.Better(c))
	assert.True(t, s.Better(NewSolution([]int{0, 0, 0})))
}

func TestCrossover(t *testing.T) {
	r := rng.NewFibonacci(11)
	a := &Solution{X: ones(6), Y: []float64{6}}
	b := &Solution{X: make([]int, 6), Y: []float64{0}}

	c1, c2 := a.Crossover(r, b, 0)
	assert.Equal(t, a.X, c1.X)
	assert.Equal(t, b.X, c2.X)
	assert.Nil(t, c1.Y)

	for i := 0; i < 20; i++ {
		c1, c2 = a.Crossover(r, b, 1)
		point := 0
		for point < 6 && c1.X[point] == 1 {
			point++
		}
		assert.Less(t, point, 6)
		for j := 0; j < 6; j++ {
			assert.Equal(t, 1, c1.X[j]+c2.X[j])
			assert.Equal(t, j < point, c1.X[j] == 1)
		}
	}
	assert.Equal(t, ones(6), a.X)
	assert.Equal(t, []float64{6}, a.Y)
}
