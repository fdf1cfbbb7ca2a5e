package algorithms

import (
	"context"
	"sort"

	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

const (
	GeneticAlgorithmName = "genetic_algorithm"

	DefaultCrossoverRate = 0.8
)

// GeneticAlgorithm is an elitist (mu+mu) GA. Parents are picked by binary
// tournament, recombined by single point crossover and mutated like the
// offspring of OnePlusLambdaEA.
type GeneticAlgorithm struct {
	Population    int
	CrossoverRate float64
	Seed          uint32
}

var _ framework.Algorithm = &GeneticAlgorithm{}

func NewGeneticAlgorithm(population int, seed uint32) *GeneticAlgorithm {
	return &GeneticAlgorithm{
		Population:    population,
		CrossoverRate: DefaultCrossoverRate,
		Seed:          seed,
	}
}

func (a *GeneticAlgorithm) Name() string {
	return GeneticAlgorithmName
}

func tournament(r *rng.Fibonacci, pop []*framework.Solution) *framework.Solution {
	x, y := pop[r.IntN(len(pop))], pop[r.IntN(len(pop))]
	if y.Better(x) {
		return y
	}
	return x
}

func (a *GeneticAlgorithm) Run(ctx context.Context, rec *framework.Record, budget int) error {
	if err := start(ctx, budget); err != nil {
		return err
	}
	logger := klog.FromContext(ctx).WithValues("algorithm", a.Name(), "problem", rec.ID)
	if err := rec.SetParameters([]string{"population", "crossover_rate"}, []float64{float64(a.Population), a.CrossoverRate}); err != nil {
		return err
	}

	r := rng.NewFibonacci(a.Seed)
	n := rec.NumberOfVariables()
	pop := make([]*framework.Solution, 0, 2*a.Population)
	for i := 0; i < a.Population && !done(rec, budget); i++ {
		s := framework.RandomSolution(r, n)
		s.Evaluate(rec)
		pop = append(pop, s)
	}

	generations := 0
	for !done(rec, budget) {
		if err := ctx.Err(); err != nil {
			return err
		}
		offspring := make([]*framework.Solution, 0, a.Population)
		for len(offspring) < a.Population && !done(rec, budget) {
			c1, c2 := tournament(r, pop).Crossover(r, tournament(r, pop), a.CrossoverRate)
			for _, c := range []*framework.Solution{c1, c2} {
				if len(offspring) == a.Population || done(rec, budget) {
					break
				}
				c.Flip(Positions(r, n, Strength(r, n)))
				c.Evaluate(rec)
				offspring = append(offspring, c)
			}
		}
		pop = append(pop, offspring...)
		sort.SliceStable(pop, func(i, j int) bool { return pop[i].Better(pop[j]) })
		pop = pop[:min(len(pop), a.Population)]
		generations++
	}

	logger.V(4).Info("Run finished", "generations", generations, "evaluations", rec.Evaluations(), "best", rec.BestObserved()[0])
	return nil
}
