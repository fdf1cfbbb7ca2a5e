package transform

import (
	"math"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/benchmarks"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

func TestMain(m *testing.M) {
	framework.SetStrict(true)
	os.Exit(m.Run())
}

// bits enumerates every binary vector of length n.
func bits(n int) [][]int {
	all := make([][]int, 0, 1<<n)
	for mask := 0; mask < 1<<n; mask++ {
		x := make([]int, n)
		for i := range x {
			x[i] = (mask >> i) & 1
		}
		all = append(all, x)
	}
	return all
}

func assertBestReached(t *testing.T, p framework.Problem) {
	t.Helper()
	y := p.Evaluate(p.BestParameter())
	assert.Equal(t, p.BestValue(), y, p.Name())
}

func TestXorInvolution(t *testing.T) {
	offset := []int{1, 0, 1, 1, 0, 0}
	base := benchmarks.NewLinear(6)
	once, err := NewXor(benchmarks.NewLinear(6), offset)
	require.NoError(t, err)
	twice, err := NewXor(once, offset)
	require.NoError(t, err)

	for _, x := range bits(6) {
		assert.Equal(t, base.Evaluate(x), twice.Evaluate(x), "x=%v", x)
	}
	assert.Equal(t, []int{0, 1, 0, 0, 1, 1}, once.BestParameter())
	assertBestReached(t, once)
	assertBestReached(t, twice)
}

func TestSigma(t *testing.T) {
	x, err := NewXor(benchmarks.NewLinear(3), []int{1, 0, 0})
	require.NoError(t, err)
	s, err := NewSigma(x, []int{2, 0, 1})
	require.NoError(t, err)

	assert.Equal(t, []int{1, 1, 0}, s.BestParameter())
	assertBestReached(t, s)
	assert.Equal(t, "transform_vars_sigma(transform_vars_xor(linear))", s.Name())

	_, err = NewSigma(benchmarks.NewLinear(3), []int{0, 0, 1})
	assert.ErrorIs(t, err, framework.ErrDimension)
	_, err = NewXor(benchmarks.NewLinear(3), []int{0, 1})
	assert.ErrorIs(t, err, framework.ErrDimension)
}

func TestShift(t *testing.T) {
	s, err := NewShift(benchmarks.NewOneMax(2), []int{1, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 0}, s.BestParameter())
	assertBestReached(t, s)
	assert.Equal(t, []float64{4}, s.Evaluate([]int{1, 1}))
}

func TestDummyPropagatesDimension(t *testing.T) {
	positions := []int{1, 5, 6, 2, 9}
	d, err := NewDummy(benchmarks.NewOneMax(10), positions)
	require.NoError(t, err)

	// The composed problem still takes n variables; the reduced dimension k
	// is what every wrapped layer reports.
	assert.Equal(t, 10, d.NumberOfVariables())
	assert.Equal(t, len(positions), EffectiveDimension(d))
	for _, layer := range Chain(d)[1:] {
		assert.Equal(t, len(positions), layer.NumberOfVariables(), layer.Name())
	}
	assert.Len(t, d.Bounds(), 10)
	assert.Len(t, d.Inner().BestParameter(), 5)

	x := []int{0, 1, 1, 0, 0, 1, 0, 0, 0, 1}
	assert.Equal(t, []float64{4}, d.Evaluate(x))
	assert.Equal(t, []float64{5}, d.BestValue())
	assertBestReached(t, d)

	for _, y := range bits(5) {
		assert.NotPanics(t, func() { d.Inner().Evaluate(y) })
	}

	_, err = NewDummy(benchmarks.NewOneMax(4), []int{0, 4})
	assert.ErrorIs(t, err, framework.ErrDimension)
}

func TestDummyComposites(t *testing.T) {
	dx, err := NewDummyXor(benchmarks.NewOneMax(8), []int{3, 0, 7}, []int{1, 0, 1})
	require.NoError(t, err)
	assert.Equal(t, 8, dx.NumberOfVariables())
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 0, 0}, dx.BestParameter())
	assertBestReached(t, dx)

	ds, err := NewDummySigma(benchmarks.NewLeadingOnes(8), []int{3, 0, 7}, []int{2, 0, 1})
	require.NoError(t, err)
	assertBestReached(t, ds)
}

func TestNeutrality(t *testing.T) {
	p, err := NewNeutrality(benchmarks.NewOneMax(10), 3)
	require.NoError(t, err)
	n := p.(*Neutrality)
	assert.Equal(t, 10, n.NumberOfVariables())
	assert.Equal(t, 3, n.Inner().NumberOfVariables())
	assert.Equal(t, 3, EffectiveDimension(n))

	assert.Equal(t, []float64{2}, n.Evaluate([]int{1, 1, 0, 0, 0, 1, 1, 1, 1, 1}))
	assert.Equal(t, []int{1, 1, 1, 1, 1, 1, 1, 1, 1, 0}, n.BestParameter())
	assertBestReached(t, n)

	// ties go to zero
	assert.Equal(t, 0, Majority([]int{1, 0}, 0, 2))
	assert.Equal(t, 1, Majority([]int{1, 7, 1, 0}, 0, 4))

	small := benchmarks.NewOneMax(2)
	same, err := NewNeutrality(small, 3)
	require.NoError(t, err)
	assert.Same(t, small, same)
}

func TestNeutralityComposites(t *testing.T) {
	p, err := NewNeutralityXor(benchmarks.NewLeadingOnes(9), 3, []int{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 9, p.NumberOfVariables())
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0}, p.BestParameter())
	assertBestReached(t, p)

	p, err = NewNeutralitySigma(benchmarks.NewLeadingOnes(9), 3, []int{1, 2, 0})
	require.NoError(t, err)
	assertBestReached(t, p)
}

func TestEpistasis(t *testing.T) {
	got := make([]int, 6)
	Mix(got, []int{1, 0, 1, 1, 0, 1}, 4)
	if diff := cmp.Diff([]int{1, 0, 0, 1, 0, 1}, got); diff != "" {
		t.Errorf("unexpected mix (-want +got):\n%s", diff)
	}

	e, err := NewEpistasis(benchmarks.NewOneMax(6), 4)
	require.NoError(t, err)
	assert.Equal(t, []float64{3}, e.Evaluate([]int{1, 0, 1, 1, 0, 1}))
	assert.Equal(t, []int{1, 0, 0, 0, 1, 0}, e.BestParameter())
	assertBestReached(t, e)

	ex, err := NewEpistasisXor(benchmarks.NewLeadingOnes(6), 4, []int{1, 1, 0, 0, 1, 0})
	require.NoError(t, err)
	assertBestReached(t, ex)

	es, err := NewEpistasisSigma(benchmarks.NewLeadingOnes(6), 4, []int{5, 4, 3, 2, 1, 0})
	require.NoError(t, err)
	assertBestReached(t, es)
}

func TestReduction(t *testing.T) {
	r, err := NewReduction(benchmarks.NewOneMax(6), 4)
	require.NoError(t, err)
	assert.Equal(t, 4, r.NumberOfVariables())
	assert.Equal(t, 4, r.Inner().NumberOfVariables())
	assert.Equal(t, []float64{3}, r.Evaluate([]int{1, 1, 0, 1}))
	assertBestReached(t, r)
}

func TestObjectiveScaleShift(t *testing.T) {
	p := NewObjShift(NewObjScale(benchmarks.NewOneMax(4), 5), 394.48)
	assert.Equal(t, []float64{414.48}, p.BestValue())
	assertBestReached(t, p)
	assert.Equal(t, []float64{394.48}, p.Evaluate([]int{0, 0, 0, 0}))
	assert.Equal(t, []float64{0}, p.RawFitness())
}

func TestRuggednessFunctions(t *testing.T) {
	assert.Equal(t, 4.0, Ruggedness1(6, 6))
	assert.Equal(t, 2.0, Ruggedness1(2, 4))
	assert.Equal(t, 6.0, Ruggedness1(9, 9))
	assert.Equal(t, 3.0, Ruggedness1(4, 5))

	assert.Equal(t, 6.0, Ruggedness2(6, 6))
	assert.Equal(t, 5.0, Ruggedness2(4, 6))
	assert.Equal(t, 2.0, Ruggedness2(3, 6))
	assert.Equal(t, 0.0, Ruggedness2(0, 5))

	assert.Equal(t, []float64{3, 2, 1, 0, 8, 7, 6, 5, 4, 9}, Ruggedness3Table(9))
	assert.Equal(t, []float64{4, 3, 2, 1, 0, 9, 8, 7, 6, 5, 10}, Ruggedness3Table(10))

	// The two remainder fillings only disagree below n/5*5.
	legacy := LegacyRuggedness3Table(9)
	assert.Equal(t, []float64{4, 3, 2, 1}, legacy[:4])
	assert.Equal(t, Ruggedness3Table(9)[4:], legacy[4:])
	assert.Equal(t, Ruggedness3Table(10), LegacyRuggedness3Table(10))
}

func TestRuggednessLayers(t *testing.T) {
	probe := []int{3, 2, 0, -1, 0, 0, 0, 1, 2}
	tests := []struct {
		name    string
		problem framework.Problem
		want    float64
		best    float64
	}{
		{"one_max r1", NewRuggedness1(benchmarks.NewOneMax(9)), 5, 6},
		{"one_max r2", NewRuggedness2(benchmarks.NewOneMax(9)), 8, 9},
		{"one_max r3", NewRuggedness3(benchmarks.NewOneMax(9)), 5, 9},
		{"leading_ones r1", NewRuggedness1(benchmarks.NewLeadingOnes(9)), 1, 6},
		{"leading_ones r2", NewRuggedness2(benchmarks.NewLeadingOnes(9)), 0, 9},
		{"leading_ones r3", NewRuggedness3(benchmarks.NewLeadingOnes(9)), 3, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, []float64{tt.want}, tt.problem.Evaluate(probe))
			assert.Equal(t, []float64{tt.best}, tt.problem.BestValue())
			assertBestReached(t, tt.problem)
		})
	}

	r := NewRuggedness1(benchmarks.NewOneMax(9))
	r.Evaluate(probe)
	assert.Equal(t, []float64{7}, r.RawFitness())
}

func TestResizeThroughObjectives(t *testing.T) {
	p := NewObjShift(NewRuggedness3(benchmarks.NewOneMax(9)), 1)
	require.NoError(t, p.Resize(10))
	for _, layer := range Chain(p) {
		assert.Equal(t, 10, layer.NumberOfVariables(), layer.Name())
	}
	assert.Equal(t, []float64{11}, p.BestValue())
	assertBestReached(t, p)

	x, err := NewXor(benchmarks.NewOneMax(3), []int{0, 0, 0})
	require.NoError(t, err)
	assert.ErrorIs(t, x.Resize(4), framework.ErrDimension)
}

func TestNaNPropagation(t *testing.T) {
	x, err := NewXor(benchmarks.NewOneMax(3), []int{1, 0, 0})
	require.NoError(t, err)
	layers := []framework.Problem{
		x,
		NewObjScale(benchmarks.NewOneMax(3), 2),
		NewRuggedness3(benchmarks.NewOneMax(3)),
	}
	for _, p := range layers {
		y := p.Evaluate([]int{framework.NaN, 1, 0})
		require.Len(t, y, 1)
		assert.True(t, math.IsNaN(y[0]), p.Name())
		assert.True(t, math.IsNaN(p.RawFitness()[0]), p.Name())
	}
}
