package suite

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/instance"
)

const (
	DefaultFunctions  = "1-24"
	DefaultInstances  = "1-100"
	DefaultDimensions = "16"
)

// Triple identifies one problem of the suite.
type Triple struct {
	Function  int
	Dimension int
	Instance  int
}

func (t Triple) String() string {
	return fmt.Sprintf(IDTemplate, t.Function, t.Instance, t.Dimension)
}

// Suite walks the problems of a selection of functions, dimensions and
// instances, with the function outermost and the instance innermost:
//
//	s, err := suite.NewSuite(suite.WithFunctions(1, 2))
//	for s.Next() {
//		rec := s.Problem()
//		...
//	}
//	if err := s.Err(); err != nil {
//		...
//	}
type Suite struct {
	Functions  []int
	Dimensions []int
	Instances  []int

	factory *Factory

	pos     int
	current *framework.Record
	err     error
}

type Option func(*Suite) error

// WithFunctions selects function ids.
func WithFunctions(ids ...int) Option {
	return func(s *Suite) error {
		for _, id := range ids {
			if _, ok := functions[id]; !ok {
				return fmt.Errorf("%w: f%d", ErrUnknownFunction, id)
			}
		}
		s.Functions = ids
		return nil
	}
}

func WithDimensions(dims ...int) Option {
	return func(s *Suite) error {
		for _, d := range dims {
			if d < 1 || d > MaxDimension {
				return fmt.Errorf("%w: %d", framework.ErrDimension, d)
			}
		}
		s.Dimensions = dims
		return nil
	}
}

func WithInstances(ids ...int) Option {
	return func(s *Suite) error {
		for _, id := range ids {
			if id < 1 {
				return fmt.Errorf("%w: instance %d", ErrRange, id)
			}
		}
		s.Instances = ids
		return nil
	}
}

// WithRanges selects functions, dimensions and instances from range strings
// such as "1-5,7". Empty strings keep the current selection.
func WithRanges(functions, dimensions, instances string) Option {
	return func(s *Suite) error {
		if functions != "" {
			ids, err := ParseRanges(functions, 1, NumberOfFunctions)
			if err != nil {
				return fmt.Errorf("functions: %w", err)
			}
			s.Functions = ids
		}
		if dimensions != "" {
			ids, err := ParseRanges(dimensions, 1, MaxDimension)
			if err != nil {
				return fmt.Errorf("dimensions: %w", err)
			}
			s.Dimensions = ids
		}
		if instances != "" {
			ids, err := ParseRanges(instances, 1, MaxInstance)
			if err != nil {
				return fmt.Errorf("instances: %w", err)
			}
			s.Instances = ids
		}
		return nil
	}
}

// WithGenerator shares an instance vector cache between suites.
func WithGenerator(gen *instance.Generator) Option {
	return func(s *Suite) error {
		s.factory = NewFactory(gen)
		return nil
	}
}

func NewSuite(opts ...Option) (*Suite, error) {
	s := &Suite{}
	defaults := WithRanges(DefaultFunctions, DefaultDimensions, DefaultInstances)
	if err := defaults(s); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}
	if s.factory == nil {
		s.factory = defaultFactory
	}
	return s, nil
}

// Len is the number of problems in the selection.
func (s *Suite) Len() int {
	return len(s.Functions) * len(s.Dimensions) * len(s.Instances)
}

func (s *Suite) triple(pos int) Triple {
	ni, nd := len(s.Instances), len(s.Dimensions)
	return Triple{
		Function:  s.Functions[pos/(ni*nd)],
		Dimension: s.Dimensions[pos/ni%nd],
		Instance:  s.Instances[pos%ni],
	}
}

// Triples lists the selection in iteration order.
func (s *Suite) Triples() []Triple {
	out := make([]Triple, s.Len())
	for i := range out {
		out[i] = s.triple(i)
	}
	return out
}

// Next builds the next problem. It returns false when the selection is
// exhausted or a problem could not be built; Err tells the two apart.
func (s *Suite) Next() bool {
	if s.err != nil || s.pos >= s.Len() {
		s.current = nil
		return false
	}
	t := s.triple(s.pos)
	s.pos++
	rec, err := s.factory.Create(t.Function, t.Dimension, t.Instance)
	if err != nil {
		s.current = nil
		s.err = err
		return false
	}
	s.current = rec
	return true
}

// Problem returns the record built by the last successful Next.
func (s *Suite) Problem() *framework.Record {
	return s.current
}

func (s *Suite) Err() error {
	return s.err
}

// Reset rewinds the suite to its first problem.
func (s *Suite) Reset() {
	s.pos = 0
	s.current = nil
	s.err = nil
}

// ProblemIndex encodes a position of the selection as
// instance + function*nInstances + dimension*nInstances*nFunctions, where
// each term is the index of the id in its selection. It returns -1 for
// ids outside the selection.
func (s *Suite) ProblemIndex(function, dimension, inst int) int {
	fi, di, ii := indexOf(s.Functions, function), indexOf(s.Dimensions, dimension), indexOf(s.Instances, inst)
	if fi < 0 || di < 0 || ii < 0 {
		return -1
	}
	ni, nf := len(s.Instances), len(s.Functions)
	return ii + fi*ni + di*ni*nf
}

func indexOf(ids []int, id int) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
