package suite

import (
	"errors"
	"fmt"

	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/benchmarks"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/instance"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/transform"
)

const (
	Name = "PBO"

	NumberOfFunctions = 24
	MaxInstance       = 100
	MaxDimension      = 20000

	IDTemplate   = "PBO_f%03d_i%02d_d%02d"
	NameTemplate = "PBO suite problem f%d instance %d in %dD"

	// lastXorInstance is the last instance of the XOR band. Instances
	// above it, up to MaxInstance, are permuted instead.
	lastXorInstance = 50

	neutralityBlock = 3
	epistasisBlock  = 4
)

var ErrUnknownFunction = errors.New("unknown function")

type band int

const (
	// bandIdentity is instance 1 and every instance outside 1..MaxInstance.
	bandIdentity band = iota
	bandXor
	bandSigma
)

func bandOf(inst int) band {
	switch {
	case inst > 1 && inst <= lastXorInstance:
		return bandXor
	case inst > lastXorInstance && inst <= MaxInstance:
		return bandSigma
	default:
		return bandIdentity
	}
}

// Factory builds the problems of the suite. Instance vectors are drawn
// through a shared Generator.
type Factory struct {
	gen *instance.Generator
}

func NewFactory(gen *instance.Generator) *Factory {
	if gen == nil {
		gen = instance.NewGenerator(0)
	}
	return &Factory{
		gen: gen,
	}
}

var defaultFactory = NewFactory(nil)

// Create builds function in dimension for inst with the default factory.
func Create(function, dimension, inst int) (*framework.Record, error) {
	return defaultFactory.Create(function, dimension, inst)
}

// request carries what a recipe needs to compose one problem.
type request struct {
	name      string
	function  int
	dimension int
	instance  int
	seed      int64
	gen       *instance.Generator
}

func (r request) band() band {
	return bandOf(r.instance)
}

type recipe func(r request) (framework.Problem, error)

type entry struct {
	name    string
	lattice bool
	build   recipe
}

var functions = map[int]entry{
	1:  {name: benchmarks.OneMaxName, build: fixedOptimum(oneMax)},
	2:  {name: benchmarks.LeadingOnesName, build: movingOptimum(leadingOnes)},
	3:  {name: benchmarks.LinearName, build: scaledOnly(linear)},
	4:  {name: "one_max_dummy1", build: dummy(oneMax, 0.5)},
	5:  {name: "one_max_dummy2", build: dummy(oneMax, 0.9)},
	6:  {name: "one_max_neutrality", build: neutrality(oneMax)},
	7:  {name: "one_max_epistasis", build: epistasis(oneMax)},
	8:  {name: "one_max_ruggedness1", build: ruggedness(oneMax, transform.NewRuggedness1)},
	9:  {name: "one_max_ruggedness2", build: ruggedness(oneMax, transform.NewRuggedness2)},
	10: {name: "one_max_ruggedness3", build: ruggedness(oneMax, transform.NewRuggedness3)},
	11: {name: "leading_ones_dummy1", build: dummy(leadingOnes, 0.5)},
	12: {name: "leading_ones_dummy2", build: dummy(leadingOnes, 0.9)},
	13: {name: "leading_ones_neutrality", build: neutrality(leadingOnes)},
	14: {name: "leading_ones_epistasis", build: epistasis(leadingOnes)},
	15: {name: "leading_ones_ruggedness1", build: ruggedness(leadingOnes, transform.NewRuggedness1)},
	16: {name: "leading_ones_ruggedness2", build: ruggedness(leadingOnes, transform.NewRuggedness2)},
	17: {name: "leading_ones_ruggedness3", build: ruggedness(leadingOnes, transform.NewRuggedness3)},
	18: {name: benchmarks.LABSName, build: labs},
	19: {name: benchmarks.Ising1DName, build: fixedOptimum(ising1D)},
	20: {name: benchmarks.Ising2DName, lattice: true, build: movingOptimum(ising2D)},
	21: {name: benchmarks.IsingTriangleName, lattice: true, build: movingOptimum(isingTriangle)},
	22: {name: benchmarks.MISName, build: fixedOptimum(mis)},
	23: {name: benchmarks.NQueensName, lattice: true, build: fixedOptimum(nQueens)},
	24: {name: benchmarks.JumpName, build: movingOptimum(jump)},
}

// FunctionName returns the name of the objective of a function id.
func FunctionName(function int) (string, error) {
	e, ok := functions[function]
	if !ok {
		return "", fmt.Errorf("%w: f%d", ErrUnknownFunction, function)
	}
	return e.name, nil
}

// Create composes the problem of a (function, dimension, instance) triple.
// Lattice and board functions on a dimension that is not a perfect square
// evaluate to NaN, or fail here when strict checks are on.
func (f *Factory) Create(function, dimension, inst int) (*framework.Record, error) {
	e, ok := functions[function]
	if !ok {
		return nil, fmt.Errorf("%w: f%d", ErrUnknownFunction, function)
	}
	if dimension < 1 {
		return nil, fmt.Errorf("%w: f%d in %dD", framework.ErrDimension, function, dimension)
	}
	if e.lattice && !benchmarks.IsSquare(dimension) && framework.Strict() {
		return nil, fmt.Errorf("%w: f%d needs a square dimension, got %d", framework.ErrDimension, function, dimension)
	}

	p, err := e.build(request{
		name:      e.name,
		function:  function,
		dimension: dimension,
		instance:  inst,
		seed:      instance.Seed(function, inst),
		gen:       f.gen,
	})
	if err != nil {
		return nil, fmt.Errorf("building f%d i%d in %dD: %w", function, inst, dimension, err)
	}

	rec := framework.NewRecord(p)
	rec.ID = fmt.Sprintf(IDTemplate, function, inst, dimension)
	rec.Name = fmt.Sprintf(NameTemplate, function, inst, dimension)
	rec.Suite = Name
	rec.Function = function
	rec.Instance = inst
	if err := rec.Validate(); err != nil {
		return nil, err
	}
	klog.V(5).InfoS("Created problem", "problem", rec.ID, "chain", p.Name(), "effectiveDimension", transform.EffectiveDimension(p))
	return rec, nil
}

type base func(n int, name string) framework.Problem

func oneMax(n int, name string) framework.Problem {
	p := benchmarks.NewOneMax(n)
	p.SetName(name)
	return p
}

func leadingOnes(n int, name string) framework.Problem {
	p := benchmarks.NewLeadingOnes(n)
	p.SetName(name)
	return p
}

func linear(n int, _ string) framework.Problem        { return benchmarks.NewLinear(n) }
func jump(n int, _ string) framework.Problem          { return benchmarks.NewJump(n) }
func ising1D(n int, _ string) framework.Problem       { return benchmarks.NewIsing1D(n) }
func ising2D(n int, _ string) framework.Problem       { return benchmarks.NewIsing2D(n) }
func isingTriangle(n int, _ string) framework.Problem { return benchmarks.NewIsingTriangle(n) }
func mis(n int, _ string) framework.Problem           { return benchmarks.NewMIS(n) }
func nQueens(n int, _ string) framework.Problem       { return benchmarks.NewNQueens(n) }

// scaleShift applies the objective scale and offset of the instance.
func scaleShift(p framework.Problem, r request) framework.Problem {
	scaled := transform.NewObjScale(p, instance.Scale(r.function, r.instance))
	return transform.NewObjShift(scaled, instance.Fopt(r.function, r.instance))
}

// identity is the recipe of the first instance: a zero XOR and a zero shift.
func identity(p framework.Problem) (framework.Problem, error) {
	x, err := transform.NewXor(p, make([]int, p.NumberOfVariables()))
	if err != nil {
		return nil, err
	}
	return transform.NewObjShift(x, 0), nil
}

// fixedOptimum never moves the optimum: every instance applies a zero XOR,
// and instances of both bands are scaled and shifted.
func fixedOptimum(b base) recipe {
	return func(r request) (framework.Problem, error) {
		p := b(r.dimension, r.name)
		if r.band() == bandIdentity {
			return identity(p)
		}
		x, err := transform.NewXor(p, make([]int, r.dimension))
		if err != nil {
			return nil, err
		}
		return scaleShift(x, r), nil
	}
}

// movingOptimum XORs the variables with a random vector in the first band
// and permutes them in the second.
func movingOptimum(b base) recipe {
	return func(r request) (framework.Problem, error) {
		p := b(r.dimension, r.name)
		var (
			moved framework.Problem
			err   error
		)
		switch r.band() {
		case bandXor:
			moved, err = transform.NewXor(p, r.gen.XoptInt(r.seed, r.dimension))
		case bandSigma:
			moved, err = transform.NewSigma(p, r.gen.Permutation(r.seed, r.dimension))
		default:
			return identity(p)
		}
		if err != nil {
			return nil, err
		}
		return scaleShift(moved, r), nil
	}
}

// scaledOnly keeps the variables and only scales and shifts the objective.
func scaledOnly(b base) recipe {
	return func(r request) (framework.Problem, error) {
		p := b(r.dimension, r.name)
		if r.band() == bandIdentity {
			return identity(p)
		}
		return scaleShift(p, r), nil
	}
}

func labs(r request) (framework.Problem, error) {
	s, err := transform.NewShift(benchmarks.NewLABS(r.dimension), make([]int, r.dimension))
	if err != nil {
		return nil, err
	}
	return transform.NewObjShift(s, 0), nil
}

func dummy(b base, rate float64) recipe {
	return func(r request) (framework.Problem, error) {
		k := max(int(float64(r.dimension)*rate), 1)
		d, err := transform.NewDummy(b(r.dimension, r.name), r.gen.DummyPositions(r.dimension, k))
		if err != nil {
			return nil, err
		}
		if r.band() == bandIdentity {
			return d, nil
		}
		return scaleShift(d, r), nil
	}
}

func neutrality(b base) recipe {
	return func(r request) (framework.Problem, error) {
		p := b(r.dimension, r.name)
		k := r.dimension / neutralityBlock
		var (
			n   framework.Problem
			err error
		)
		switch r.band() {
		case bandXor:
			n, err = transform.NewNeutralityXor(p, neutralityBlock, r.gen.XoptInt(r.seed, k))
		case bandSigma:
			n, err = transform.NewNeutralitySigma(p, neutralityBlock, r.gen.Permutation(r.seed, k))
		default:
			return transform.NewNeutrality(p, neutralityBlock)
		}
		if err != nil {
			return nil, err
		}
		return scaleShift(n, r), nil
	}
}

func epistasis(b base) recipe {
	return func(r request) (framework.Problem, error) {
		p := b(r.dimension, r.name)
		var (
			e   *transform.Epistasis
			err error
		)
		switch r.band() {
		case bandXor:
			e, err = transform.NewEpistasisXor(p, epistasisBlock, r.gen.XoptInt(r.seed, r.dimension))
		case bandSigma:
			e, err = transform.NewEpistasisSigma(p, epistasisBlock, r.gen.Permutation(r.seed, r.dimension))
		default:
			e, err = transform.NewEpistasis(p, epistasisBlock)
		}
		if err != nil {
			return nil, err
		}
		if r.band() == bandIdentity {
			return e, nil
		}
		return scaleShift(e, r), nil
	}
}

func ruggedness(b base, wrap func(framework.Problem) *transform.Ruggedness) recipe {
	return func(r request) (framework.Problem, error) {
		rugged := wrap(b(r.dimension, r.name))
		if r.band() == bandIdentity {
			return rugged, nil
		}
		return scaleShift(rugged, r), nil
	}
}
