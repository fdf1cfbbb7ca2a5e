package algorithms

import (
	"context"

	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/rng"
)

const OnePlusLambdaEAName = "one_plus_lambda_ea"

// OnePlusLambdaEA keeps a single parent and creates Lambda offspring per
// generation by standard bit mutation with rate 1/n. The best offspring
// replaces the parent unless it is strictly worse.
type OnePlusLambdaEA struct {
	Lambda int
	Seed   uint32
}

var _ framework.Algorithm = &OnePlusLambdaEA{}

func NewOnePlusLambdaEA(lambda int, seed uint32) *OnePlusLambdaEA {
	return &OnePlusLambdaEA{
		Lambda: lambda,
		Seed:   seed,
	}
}

func (a *OnePlusLambdaEA) Name() string {
	return OnePlusLambdaEAName
}

// Strength draws the number of bits to flip from Bin(n, 1/n), redrawing
// zeros so every offspring differs from its parent.
func Strength(r *rng.Fibonacci, n int) int {
	for {
		if l := r.Binomial(n, 1/float64(n)); l > 0 {
			return l
		}
	}
}

// Positions draws l distinct positions out of n.
func Positions(r *rng.Fibonacci, n, l int) []int {
	picked := make(map[int]bool, l)
	out := make([]int, 0, l)
	for len(out) < l {
		i := r.IntN(n)
		if picked[i] {
			continue
		}
		picked[i] = true
		out = append(out, i)
	}
	return out
}

func (a *OnePlusLambdaEA) Run(ctx context.Context, rec *framework.Record, budget int) error {
	if err := start(ctx, budget); err != nil {
		return err
	}
	logger := klog.FromContext(ctx).WithValues("algorithm", a.Name(), "problem", rec.ID)
	if err := rec.SetParameters([]string{"lambda", "flips"}, []float64{float64(a.Lambda), 0}); err != nil {
		return err
	}

	r := rng.NewFibonacci(a.Seed)
	n := rec.NumberOfVariables()
	parent := framework.RandomSolution(r, n)
	parent.Evaluate(rec)

	generations := 0
	for !done(rec, budget) {
		if err := ctx.Err(); err != nil {
			return err
		}
		var best *framework.Solution
		for i := 0; i < a.Lambda && !done(rec, budget); i++ {
			child := parent.Clone()
			l := Strength(r, n)
			child.Flip(Positions(r, n, l))
			rec.UpdateParameters(float64(a.Lambda), float64(l))
			child.Evaluate(rec)
			if best == nil || child.Better(best) {
				best = child
			}
		}
		if best != nil && !parent.Better(best) {
			parent = best
		}
		generations++
	}

	logger.V(4).Info("Run finished", "generations", generations, "evaluations", rec.Evaluations(), "best", rec.BestObserved()[0])
	return nil
}
