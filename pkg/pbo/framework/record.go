package framework

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"k8s.io/klog/v2"
)

const (
	// ProblemType is the type string of every problem of the suite.
	ProblemType = "pseudo-Boolean"

	// DefaultFinalTargetDelta is the distance to the best value at which
	// the final target counts as hit.
	DefaultFinalTargetDelta = 1e-8
)

var (
	ErrInvalidID            = errors.New("invalid problem id")
	ErrRecommendUnsupported = errors.New("problem does not accept recommended solutions")
	ErrDimension            = errors.New("invalid dimension")
	ErrParameters           = errors.New("parameter names and values differ in length")

	validID = regexp.MustCompile(`^[A-Za-z0-9_-]+$`)
)

// ValidateID checks that id only holds characters safe for file names.
func ValidateID(id string) error {
	if !validID.MatchString(id) {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// Record is the outermost view of a composed problem. It owns the layer
// chain and keeps the bookkeeping of an optimization run: the number of
// evaluations, the best observed value and the observers to notify.
// A Record must not be evaluated from more than one goroutine at a time.
type Record struct {
	ID    string
	Name  string
	Type  string
	Suite string

	Function  int
	Instance  int
	Dimension int

	FinalTargetDelta []float64

	problem     Problem
	evaluations int

	bestObserved           []float64
	bestObservedEvaluation int

	parameterNames []string
	parameters     []float64

	observers []Observer
}

// NewRecord wraps p. The dimension of the record is the number of variables
// of its outermost layer.
func NewRecord(p Problem) *Record {
	m := p.NumberOfObjectives()
	r := &Record{
		Type:             ProblemType,
		Dimension:        p.NumberOfVariables(),
		FinalTargetDelta: make([]float64, m),
		problem:          p,
		bestObserved:     make([]float64, m),
	}
	for i := 0; i < m; i++ {
		r.FinalTargetDelta[i] = DefaultFinalTargetDelta
		r.bestObserved[i] = math.Inf(-1)
	}
	return r
}

// Validate checks the identifiers of the record.
func (r *Record) Validate() error {
	return ValidateID(r.ID)
}

// Problem returns the outermost layer.
func (r *Record) Problem() Problem {
	return r.problem
}

func (r *Record) NumberOfVariables() int {
	return r.problem.NumberOfVariables()
}

func (r *Record) NumberOfObjectives() int {
	return r.problem.NumberOfObjectives()
}

func (r *Record) Bounds() []Bounds {
	return r.problem.Bounds()
}

func (r *Record) BestParameter() []int {
	return r.problem.BestParameter()
}

func (r *Record) BestValue() []float64 {
	return r.problem.BestValue()
}

// RawFitness is the innermost objective value of the last evaluation.
func (r *Record) RawFitness() []float64 {
	return r.problem.RawFitness()
}

// Evaluate scores x, counts the evaluation, updates the best observed value
// on a strict improvement of the first objective and notifies observers.
// An x of the wrong length or holding the NaN sentinel evaluates to NaN and
// is counted all the same.
func (r *Record) Evaluate(x []int) []float64 {
	var y []float64
	if len(x) != r.Dimension {
		klog.Background().V(4).Info("Evaluated vector of wrong length", "problem", r.ID, "want", r.Dimension, "got", len(x))
		y = NaNVector(r.NumberOfObjectives())
	} else {
		y = r.problem.Evaluate(x)
	}
	r.evaluations++

	if !math.IsNaN(y[0]) {
		best := r.problem.BestValue()
		CheckInvariant(y[0] <= best[0], "%s: f(x) = %v exceeds best value %v", r.problem.Name(), y[0], best[0])
		if y[0] > r.bestObserved[0] {
			copy(r.bestObserved, y)
			r.bestObservedEvaluation = r.evaluations
		}
	}

	for _, o := range r.observers {
		o.Observe(r, x, y)
	}
	return y
}

// Evaluations returns the number of calls to Evaluate.
func (r *Record) Evaluations() int {
	return r.evaluations
}

// BestObserved returns the best objective vector evaluated so far, -Inf
// before the first successful evaluation.
func (r *Record) BestObserved() []float64 {
	return append([]float64(nil), r.bestObserved...)
}

// BestObservedEvaluation is the evaluation count at which BestObserved was found.
func (r *Record) BestObservedEvaluation() int {
	return r.bestObservedEvaluation
}

// FinalTargetHit reports whether the best observed value is within the
// final target delta of the best value.
func (r *Record) FinalTargetHit() bool {
	if r.evaluations == 0 {
		return false
	}
	return r.bestObserved[0] >= r.problem.BestValue()[0]-r.FinalTargetDelta[0]
}

// InitialSolution returns the midpoint of the bounds of every variable.
func (r *Record) InitialSolution() []int {
	b := r.problem.Bounds()
	x := make([]int, len(b))
	for i := range b {
		x[i] = (b[i].L + b[i].H) / 2
	}
	return x
}

// RecommendSolution forwards x to the outer layer if it accepts recommendations.
func (r *Record) RecommendSolution(x []int) error {
	rec, ok := r.problem.(Recommender)
	if !ok {
		return fmt.Errorf("%s: %w", r.ID, ErrRecommendUnsupported)
	}
	return rec.Recommend(x)
}

// SetParameters records named scalars for the loggers attached to r.
func (r *Record) SetParameters(names []string, values []float64) error {
	if len(names) != len(values) {
		return fmt.Errorf("%w: %d names, %d values", ErrParameters, len(names), len(values))
	}
	r.parameterNames = append(r.parameterNames[:0], names...)
	r.parameters = append(r.parameters[:0], values...)
	return nil
}

// UpdateParameters overwrites the values of previously set parameters.
func (r *Record) UpdateParameters(values ...float64) {
	copy(r.parameters, values)
}

func (r *Record) Parameters() []float64 {
	return r.parameters
}

func (r *Record) ParameterNames() []string {
	return r.parameterNames
}

// Attach registers an observer notified after each evaluation.
func (r *Record) Attach(o Observer) {
	r.observers = append(r.observers, o)
}

// Detach removes o from the observers of r.
func (r *Record) Detach(o Observer) {
	for i := range r.observers {
		if r.observers[i] == o {
			r.observers = append(r.observers[:i], r.observers[i+1:]...)
			return
		}
	}
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s)", r.ID, r.Name)
}
