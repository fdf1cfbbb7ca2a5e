package framework

import (
	"fmt"
	"strings"
)

// Stacked evaluates several problems over the same decision vector and
// concatenates their objective vectors.
type Stacked struct {
	problems []Problem
	name     string
}

// NewStacked stacks problems. All of them must take the same number of
// variables; bounds and best parameter are those of the first one.
func NewStacked(problems ...Problem) (*Stacked, error) {
	if len(problems) == 0 {
		return nil, fmt.Errorf("%w: nothing to stack", ErrDimension)
	}
	names := make([]string, len(problems))
	n := problems[0].NumberOfVariables()
	for i, p := range problems {
		if p.NumberOfVariables() != n {
			return nil, fmt.Errorf("%w: %s has %d variables, want %d", ErrDimension, p.Name(), p.NumberOfVariables(), n)
		}
		names[i] = p.Name()
	}
	s := &Stacked{
		problems: problems,
		name:     "stacked(" + strings.Join(names, ",") + ")",
	}
	CheckBest(s)
	return s, nil
}

func (s *Stacked) Name() string {
	return s.name
}

func (s *Stacked) NumberOfVariables() int {
	return s.problems[0].NumberOfVariables()
}

func (s *Stacked) NumberOfObjectives() int {
	m := 0
	for _, p := range s.problems {
		m += p.NumberOfObjectives()
	}
	return m
}

func (s *Stacked) Bounds() []Bounds {
	return s.problems[0].Bounds()
}

func (s *Stacked) BestParameter() []int {
	return s.problems[0].BestParameter()
}

func (s *Stacked) BestValue() []float64 {
	return s.concat(Problem.BestValue)
}

func (s *Stacked) Evaluate(x []int) []float64 {
	if HasNaN(x) {
		return NaNVector(s.NumberOfObjectives())
	}
	return s.concat(func(p Problem) []float64 { return p.Evaluate(x) })
}

func (s *Stacked) RawFitness() []float64 {
	return s.concat(Problem.RawFitness)
}

func (s *Stacked) concat(f func(Problem) []float64) []float64 {
	y := make([]float64, 0, s.NumberOfObjectives())
	for _, p := range s.problems {
		y = append(y, f(p)...)
	}
	return y
}
