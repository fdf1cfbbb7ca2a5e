package framework

import (
	"context"
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

// Algorithm describes the contract an optimizer run by the experimenter
// needs to implement.
type Algorithm interface {
	Name() string
	Run(ctx context.Context, rec *Record, budget int) error
}

// Solution is an integer decision vector together with the objective vector
// it was last evaluated to.
type Solution struct {
	X []int
	Y []float64
}

func NewSolution(x []int) *Solution {
	return &Solution{
		X: x,
	}
}

// RandomSolution draws n values uniformly from {0, 1}.
func RandomSolution(r *rng.Fibonacci, n int) *Solution {
	x := make([]int, n)
	for i := range x {
		x[i] = int(r.Uniform() * 2)
	}
	return NewSolution(x)
}

func (s *Solution) Clone() *Solution {
	return &Solution{
		X: Clone(s.X),
		Y: append([]float64(nil), s.Y...),
	}
}

// Flip negates the bits at the given positions.
func (s *Solution) Flip(positions []int) {
	for _, i := range positions {
		s.X[i] = 1 - s.X[i]
	}
}

// Crossover performs a single point crossover with the given rate.
func (s *Solution) Crossover(r *rng.Fibonacci, other *Solution, rate float64) (*Solution, *Solution) {
	child1 := s.Clone()
	child2 := other.Clone()
	child1.Y, child2.Y = nil, nil

	if r.Uniform() < rate {
		point := r.IntN(len(s.X))
		for i := point; i < len(s.X); i++ {
			child1.X[i], child2.X[i] = child2.X[i], child1.X[i]
		}
	}
	return child1, child2
}

// Evaluate scores the solution through rec and stores the result.
func (s *Solution) Evaluate(rec *Record) []float64 {
	s.Y = rec.Evaluate(s.X)
	return s.Y
}

// Better reports whether s has a strictly larger first objective than o.
// An unevaluated or NaN solution is never better.
func (s *Solution) Better(o *Solution) bool {
	if len(s.Y) == 0 || IsNaN(s.Y) {
		return false
	}
	if len(o.Y) == 0 || IsNaN(o.Y) {
		return true
	}
	return s.Y[0] > o.Y[0]
}

func (s *Solution) String() string {
	return fmt.Sprintf("%v -> %v", s.X, s.Y)
}
