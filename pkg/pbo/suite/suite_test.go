package suite

import (
	"math"
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/instance"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/transform"
)

func TestMain(m *testing.M) {
	framework.SetStrict(true)
	os.Exit(m.Run())
}

func TestOneMaxFirstInstance(t *testing.T) {
	rec, err := Create(1, 4, 1)
	require.NoError(t, err)

	assert.Equal(t, "PBO_f001_i01_d04", rec.ID)
	assert.Equal(t, "PBO suite problem f1 instance 1 in 4D", rec.Name)
	assert.Equal(t, framework.ProblemType, rec.Type)
	assert.Equal(t, Name, rec.Suite)
	assert.Equal(t, 4, rec.Dimension)

	assert.Equal(t, []float64{4}, rec.Evaluate([]int{1, 1, 1, 1}))
	assert.Equal(t, []float64{0}, rec.Evaluate([]int{0, 0, 0, 0}))
	assert.Equal(t, []float64{4}, rec.BestValue())
	assert.Equal(t, "transform_obj_shift(transform_vars_xor(one_max))", rec.Problem().Name())
}

func TestOneMaxSecondInstance(t *testing.T) {
	rec, err := Create(1, 4, 2)
	require.NoError(t, err)
	assert.Equal(t, []float64{414.48}, rec.BestValue())
	assert.Equal(t, rec.BestValue(), rec.Evaluate(rec.BestParameter()))
	assert.Equal(t, []float64{4}, rec.RawFitness())
	assert.True(t, rec.FinalTargetHit())
}

// attainsOptimum lists the functions whose best parameter reaches the
// best value exactly.
func attainsOptimum(function int) bool {
	switch function {
	case 18, 22, 23:
		return false
	}
	return true
}

func TestBestParameterNeverExceedsBestValue(t *testing.T) {
	gen := instance.NewGenerator(0)
	f := NewFactory(gen)
	for function := 1; function <= NumberOfFunctions; function++ {
		for _, dim := range []int{4, 9, 16, 25} {
			for _, inst := range []int{1, 2, 50, 51, 100, 101} {
				rec, err := f.Create(function, dim, inst)
				require.NoError(t, err, "f%d d%d i%d", function, dim, inst)

				x := rec.BestParameter()
				require.Len(t, x, dim, rec.ID)
				y := rec.Evaluate(x)
				best := rec.BestValue()
				assert.LessOrEqual(t, y[0], best[0], rec.ID)
				if attainsOptimum(function) {
					assert.InDelta(t, best[0], y[0], 1e-9, rec.ID)
					assert.True(t, rec.FinalTargetHit(), rec.ID)
				}
			}
		}
	}
	assert.Positive(t, gen.Len())
}

func TestRuggednessThroughFactory(t *testing.T) {
	probe := []int{3, 2, 0, -1, 0, 0, 0, 1, 2}
	tests := map[int]float64{8: 5, 9: 8, 10: 5, 15: 1, 16: 0, 17: 3}
	for function, want := range tests {
		rec, err := Create(function, 9, 1)
		require.NoError(t, err)
		assert.Equal(t, []float64{want}, rec.Evaluate(probe), rec.ID)
	}
}

func TestBands(t *testing.T) {
	tests := []struct {
		function int
		inst     int
		want     string
	}{
		{2, 1, "transform_obj_shift(transform_vars_xor(leading_ones))"},
		{2, 7, "transform_obj_shift(transform_obj_scale(transform_vars_xor(leading_ones)))"},
		{2, 77, "transform_obj_shift(transform_obj_scale(transform_vars_sigma(leading_ones)))"},
		{2, 150, "transform_obj_shift(transform_vars_xor(leading_ones))"},
		{3, 3, "transform_obj_shift(transform_obj_scale(linear))"},
		{6, 1, "transform_vars_neutrality(one_max_neutrality)"},
		{6, 60, "transform_obj_shift(transform_obj_scale(transform_vars_neutrality(transform_vars_sigma(one_max_neutrality))))"},
		{7, 20, "transform_obj_shift(transform_obj_scale(transform_vars_epistasis(transform_vars_xor(one_max_epistasis))))"},
		{12, 1, "transform_vars_dummy(leading_ones_dummy2)"},
		{18, 42, "transform_obj_shift(transform_vars_shift(labs))"},
		{22, 99, "transform_obj_shift(transform_obj_scale(transform_vars_xor(MIS)))"},
	}
	for _, tt := range tests {
		rec, err := Create(tt.function, 16, tt.inst)
		require.NoError(t, err)
		assert.Equal(t, tt.want, rec.Problem().Name(), rec.ID)
	}
}

func TestVariableReducingFunctions(t *testing.T) {
	rec, err := Create(5, 20, 3)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Dimension)
	assert.Equal(t, 18, transform.EffectiveDimension(rec.Problem()))

	rec, err = Create(13, 20, 1)
	require.NoError(t, err)
	assert.Equal(t, 20, rec.Dimension)
	assert.Equal(t, 6, transform.EffectiveDimension(rec.Problem()))
}

func TestCreateErrors(t *testing.T) {
	_, err := Create(0, 16, 1)
	assert.ErrorIs(t, err, ErrUnknownFunction)
	_, err = Create(25, 16, 1)
	assert.ErrorIs(t, err, ErrUnknownFunction)
	_, err = Create(1, 0, 1)
	assert.ErrorIs(t, err, framework.ErrDimension)

	for _, function := range []int{20, 21, 23} {
		_, err = Create(function, 10, 1)
		assert.ErrorIs(t, err, framework.ErrDimension, "f%d", function)
	}

	prev := framework.SetStrict(false)
	defer framework.SetStrict(prev)
	rec, err := Create(20, 10, 1)
	require.NoError(t, err)
	assert.True(t, math.IsNaN(rec.Evaluate(make([]int, 10))[0]))
}

func TestFunctionName(t *testing.T) {
	name, err := FunctionName(14)
	require.NoError(t, err)
	assert.Equal(t, "leading_ones_epistasis", name)
	_, err = FunctionName(99)
	assert.ErrorIs(t, err, ErrUnknownFunction)
}

func TestParseRanges(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{in: "1-5,7", want: []int{1, 2, 3, 4, 5, 7}},
		{in: "-3", want: []int{1, 2, 3}},
		{in: "22-", want: []int{22, 23, 24}},
		{in: "-2,5,23-", want: []int{1, 2, 5, 23, 24}},
		{in: "4,1-5", want: []int{4, 1, 2, 3, 5}},
		{in: "7", want: []int{7}},
		{in: "", wantErr: true},
		{in: "1,-3", wantErr: true},
		{in: "3-,5", wantErr: true},
		{in: "5-3", wantErr: true},
		{in: "0-3", wantErr: true},
		{in: "20-30", wantErr: true},
		{in: "1;2", wantErr: true},
		{in: "1,,2", wantErr: true},
		{in: "1-2-3", wantErr: true},
		{in: "-", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRanges(tt.in, 1, 24)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrRange)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected ids (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSuiteIteration(t *testing.T) {
	s, err := NewSuite(WithFunctions(1, 2), WithDimensions(4, 9), WithInstances(1, 2, 3))
	require.NoError(t, err)
	assert.Equal(t, 12, s.Len())

	var ids []string
	for s.Next() {
		ids = append(ids, s.Problem().ID)
	}
	require.NoError(t, s.Err())
	require.Len(t, ids, 12)
	assert.Equal(t, []string{"PBO_f001_i01_d04", "PBO_f001_i02_d04", "PBO_f001_i03_d04", "PBO_f001_i01_d09"}, ids[:4])
	assert.Equal(t, "PBO_f002_i03_d09", ids[11])
	assert.Nil(t, s.Problem())

	for i, triple := range s.Triples() {
		assert.Equal(t, ids[i], triple.String())
	}

	s.Reset()
	require.True(t, s.Next())
	assert.Equal(t, ids[0], s.Problem().ID)

	assert.Equal(t, 0, s.ProblemIndex(1, 4, 1))
	assert.Equal(t, 2+1*3+1*3*2, s.ProblemIndex(2, 9, 3))
	assert.Equal(t, -1, s.ProblemIndex(3, 4, 1))
}

func TestSuiteDefaultsAndOptions(t *testing.T) {
	s, err := NewSuite()
	require.NoError(t, err)
	assert.Len(t, s.Functions, NumberOfFunctions)
	assert.Len(t, s.Instances, MaxInstance)
	assert.Equal(t, []int{16}, s.Dimensions)

	s, err = NewSuite(WithRanges("20-", "4,10", "1"), WithGenerator(instance.NewGenerator(0)))
	require.NoError(t, err)
	assert.Equal(t, []int{20, 21, 22, 23, 24}, s.Functions)
	assert.Equal(t, 10, s.Len())
	for s.Next() {
	}
	// f20 in 10D is not a square lattice.
	assert.ErrorIs(t, s.Err(), framework.ErrDimension)

	_, err = NewSuite(WithFunctions(30))
	assert.ErrorIs(t, err, ErrUnknownFunction)
	_, err = NewSuite(WithDimensions(0))
	assert.ErrorIs(t, err, framework.ErrDimension)
	_, err = NewSuite(WithRanges("", "", "0-4"))
	assert.ErrorIs(t, err, ErrRange)
}
