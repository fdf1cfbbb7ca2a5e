package algorithms

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

const RandomSearchName = "random_search"

// RandomSearch samples uniform bit strings until the budget is spent or
// the optimum is found.
type RandomSearch struct {
	Seed uint32
}

var _ framework.Algorithm = &RandomSearch{}

func NewRandomSearch(seed uint32) *RandomSearch {
	return &RandomSearch{Seed: seed}
}

func (a *RandomSearch) Name() string {
	return RandomSearchName
}

func (a *RandomSearch) Run(ctx context.Context, rec *framework.Record, budget int) error {
	if err := start(ctx, budget); err != nil {
		return err
	}
	r := rng.NewFibonacci(a.Seed)
	n := rec.NumberOfVariables()
	for !done(rec, budget) {
		if err := ctx.Err(); err != nil {
			return err
		}
		framework.RandomSolution(r, n).Evaluate(rec)
	}
	klog.FromContext(ctx).V(4).Info("Random search finished", "problem", rec.ID, "evaluations", rec.Evaluations(), "best", rec.BestObserved()[0])
	return nil
}
