package algorithms

import (
	"context"
	"errors"
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

var (
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
	ErrBudget           = errors.New("budget must be positive")
)

// Config selects and parametrizes an algorithm. Lambda is the number of
// offspring per generation, which is also the population size of the GA.
type Config struct {
	Name   string
	Lambda int
	Seed   uint32
}

// New returns the algorithm named by cfg.
func New(cfg Config) (framework.Algorithm, error) {
	switch cfg.Name {
	case RandomSearchName:
		return NewRandomSearch(cfg.Seed), nil
	case OnePlusLambdaEAName:
		if cfg.Lambda < 1 {
			return nil, fmt.Errorf("%s: lambda %d must be at least 1", cfg.Name, cfg.Lambda)
		}
		return NewOnePlusLambdaEA(cfg.Lambda, cfg.Seed), nil
	case GeneticAlgorithmName:
		if cfg.Lambda < 2 {
			return nil, fmt.Errorf("%s: population %d must be at least 2", cfg.Name, cfg.Lambda)
		}
		return NewGeneticAlgorithm(cfg.Lambda, cfg.Seed), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, cfg.Name)
	}
}

// done reports whether a run on rec has to stop.
func done(rec *framework.Record, budget int) bool {
	return rec.Evaluations() >= budget || rec.FinalTargetHit()
}

func start(ctx context.Context, budget int) error {
	if budget < 1 {
		return fmt.Errorf("%w: got %d", ErrBudget, budget)
	}
	return ctx.Err()
}
