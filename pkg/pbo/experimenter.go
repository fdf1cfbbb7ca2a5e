package pbo

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"github.com/sourcegraph/conc/pool"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"
	"k8s.io/klog/v2"

	"github.com/IOHprofiler/IOHexperimenter-sub000/apis/experiment/v1alpha1"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/algorithms"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/instance"
	iohlog "github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/logger"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/suite"
	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/util"
)

// Experimenter runs an algorithm on a selection of the suite and logs
// every run into one result folder.
type Experimenter struct {
	cfg     *v1alpha1.Experiment
	suite   *suite.Suite
	factory *suite.Factory
}

// Report is the outcome of Experimenter.Run.
type Report struct {
	ResultFolder string
	Results      []util.RunResult
	Summaries    []util.Summary
}

// New checks cfg and resolves its problem selection. cfg is expected to be
// defaulted.
func New(ctx context.Context, cfg *v1alpha1.Experiment) (*Experimenter, error) {
	logger := klog.FromContext(ctx)
	logger.V(5).Info("Creating experimenter", "algorithm", cfg.Algorithm.Name)

	if errs := v1alpha1.ValidateExperiment(cfg); len(errs) > 0 {
		return nil, errs.ToAggregate()
	}
	gen := instance.NewGenerator(0)
	s, err := suite.NewSuite(
		suite.WithRanges(cfg.Suite.ProblemID, cfg.Suite.Dimension, cfg.Suite.InstanceID),
		suite.WithGenerator(gen),
	)
	if err != nil {
		return nil, fmt.Errorf("selecting problems: %w", err)
	}
	return &Experimenter{
		cfg:     cfg,
		suite:   s,
		factory: suite.NewFactory(gen),
	}, nil
}

// Suite returns the problem selection of the experiment.
func (e *Experimenter) Suite() *suite.Suite {
	return e.suite
}

func (e *Experimenter) loggerOptions(folder string) iohlog.Options {
	o := e.cfg.Observer
	return iohlog.Options{
		ResultFolder:               folder,
		AlgorithmName:              e.cfg.Logger.AlgorithmName,
		AlgorithmInfo:              e.cfg.Logger.AlgorithmInfo,
		BaseEvaluationTriggers:     o.BaseEvaluationTriggers,
		NumberOfEvaluationTriggers: o.NumberOfEvaluationTriggers,
		NumberIntervalTriggers:     o.NumberIntervalTriggers,
		CompleteTriggers:           o.CompleteTriggers != nil && *o.CompleteTriggers,
		UpdateTriggers:             o.UpdateTriggers == nil || *o.UpdateTriggers,
	}
}

// Run executes every run of the experiment. Functions are run concurrently
// on at most Workers goroutines; the problems of one function run in suite
// order so that they can share info files. Problems that fail do not stop
// the others; their errors are returned together with the report.
func (e *Experimenter) Run(ctx context.Context) (*Report, error) {
	logger := klog.FromContext(ctx)

	folder := uniqueFolder(e.cfg.Logger.OutputDirectory, e.cfg.Logger.ResultFolder)
	if err := os.MkdirAll(folder, 0o755); err != nil {
		return nil, fmt.Errorf("creating result folder: %w", err)
	}
	logger.V(2).Info("Running experiment", "folder", folder, "problems", e.suite.Len(), "runs", *e.cfg.Algorithm.IndependentRuns)

	byFunction := map[int][]suite.Triple{}
	for _, t := range e.suite.Triples() {
		byFunction[t.Function] = append(byFunction[t.Function], t)
	}

	var (
		mu      sync.Mutex
		results []util.RunResult
	)
	p := pool.New().WithContext(ctx).WithMaxGoroutines(*e.cfg.Algorithm.Workers)
	for _, function := range e.suite.Functions {
		triples := byFunction[function]
		p.Go(func(ctx context.Context) error {
			obs := iohlog.New(logger, e.loggerOptions(folder))
			rs, err := e.runFunction(ctx, logger.WithValues("function", function), obs, triples)
			mu.Lock()
			results = append(results, rs...)
			mu.Unlock()
			return err
		})
	}
	err := p.Wait()

	sort.Slice(results, func(i, j int) bool {
		a, b := results[i], results[j]
		if a.Function != b.Function {
			return a.Function < b.Function
		}
		if a.Dimension != b.Dimension {
			return a.Dimension < b.Dimension
		}
		if a.Instance != b.Instance {
			return a.Instance < b.Instance
		}
		return a.Run < b.Run
	})
	report := &Report{
		ResultFolder: folder,
		Results:      results,
		Summaries:    util.Summarize(results),
	}
	return report, err
}

func (e *Experimenter) runFunction(ctx context.Context, logger logr.Logger, obs *iohlog.Observer, triples []suite.Triple) ([]util.RunResult, error) {
	var (
		results []util.RunResult
		errs    []error
	)
	a := e.cfg.Algorithm
	for _, t := range triples {
		for run := 0; run < *a.IndependentRuns; run++ {
			if err := ctx.Err(); err != nil {
				return results, err
			}
			r, err := e.runOnce(ctx, obs, t, run)
			if err != nil {
				if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
					return results, err
				}
				logger.Error(err, "Run failed", "problem", t.String(), "run", run)
				errs = append(errs, fmt.Errorf("%s run %d: %w", t, run, err))
				break
			}
			logger.V(3).Info("Run finished", "problem", r.ProblemID, "run", run, "evaluations", r.Evaluations, "best", r.Best, "hit", r.Hit)
			results = append(results, r)
		}
	}
	return results, utilerrors.NewAggregate(errs)
}

func (e *Experimenter) runOnce(ctx context.Context, obs *iohlog.Observer, t suite.Triple, run int) (util.RunResult, error) {
	a := e.cfg.Algorithm
	rec, err := e.factory.Create(t.Function, t.Dimension, t.Instance)
	if err != nil {
		return util.RunResult{}, err
	}
	alg, err := algorithms.New(algorithms.Config{
		Name:   a.Name,
		Lambda: *a.Lambda,
		Seed:   *a.Seed + uint32(run),
	})
	if err != nil {
		return util.RunResult{}, err
	}

	session, err := obs.Attach(rec)
	if err != nil {
		return util.RunResult{}, err
	}
	start := time.Now()
	runErr := alg.Run(ctx, rec, *a.BudgetMultiplier*t.Dimension)
	elapsed := time.Since(start)
	if err := utilerrors.NewAggregate([]error{runErr, session.Close()}); err != nil {
		if runErr != nil {
			return util.RunResult{}, runErr
		}
		return util.RunResult{}, err
	}

	return util.RunResult{
		ProblemID:      rec.ID,
		Function:       t.Function,
		Dimension:      t.Dimension,
		Instance:       t.Instance,
		Run:            run,
		Evaluations:    rec.Evaluations(),
		Best:           rec.BestObserved()[0],
		BestEvaluation: rec.BestObservedEvaluation(),
		Hit:            rec.FinalTargetHit(),
		Elapsed:        elapsed,
	}, nil
}

// uniqueFolder returns dir/name, or dir/name-k with the smallest k for
// which nothing exists yet.
func uniqueFolder(dir, name string) string {
	path := filepath.Join(dir, name)
	for k := 1; exists(path); k++ {
		path = filepath.Join(dir, fmt.Sprintf("%s-%d", name, k))
	}
	return path
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
