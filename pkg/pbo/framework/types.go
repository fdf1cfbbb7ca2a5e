package framework

// Problem describes the contract every layer of a composed pseudo-Boolean
// problem implements. A base objective function is a Problem without an
// inner layer; every transformation is a Problem wrapping exactly one other.
type Problem interface {
	Name() string

	// NumberOfVariables is the length of the x vector Evaluate expects
	// at this layer.
	NumberOfVariables() int
	NumberOfObjectives() int
	Bounds() []Bounds

	// BestParameter is the known optimum expressed in this layer's input
	// space, and BestValue its objective vector as seen by this layer.
	BestParameter() []int
	BestValue() []float64

	// Evaluate computes the objective vector of x. It does no bookkeeping,
	// see Record for that. A NaN sentinel in x yields a NaN vector.
	Evaluate(x []int) []float64

	// RawFitness returns the value produced by the innermost objective
	// function during the last call to Evaluate.
	RawFitness() []float64
}

// Transformed is implemented by every layer that wraps another problem.
type Transformed interface {
	Problem
	Inner() Problem
}

// Resizer is implemented by layers whose input length can be changed after
// construction. Resize must propagate the new length to every inner layer.
type Resizer interface {
	Resize(n int) error
}

// Recommender is implemented by problems that accept recommended solutions
// in addition to evaluated ones.
type Recommender interface {
	Recommend(x []int) error
}

// Observer is notified by a Record after each evaluation has been booked.
type Observer interface {
	Observe(rec *Record, x []int, y []float64)
}

// Bounds is the per-variable integer domain of a problem.
type Bounds struct {
	L int
	H int
}

// UniformBounds returns n copies of {l, h}.
func UniformBounds(n, l, h int) []Bounds {
	b := make([]Bounds, n)
	for i := 0; i < n; i++ {
		b[i] = Bounds{
			L: l,
			H: h,
		}
	}
	return b
}
