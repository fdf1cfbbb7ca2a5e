package util

import (
	"fmt"
	"io"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"time"

	"github.com/dustin/go-humanize"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// RunResult is the outcome of one independent run on one problem.
type RunResult struct {
	ProblemID string
	Function  int
	Dimension int
	Instance  int
	Run       int

	Evaluations    int
	Best           float64
	BestEvaluation int
	Hit            bool
	Elapsed        time.Duration
}

// Summary aggregates the runs of one function in one dimension.
type Summary struct {
	Function  int
	Dimension int
	Runs      int

	MeanBest float64
	StdBest  float64

	SuccessRatio float64
	// ERT is the expected running time: the evaluations spent by all runs,
	// counting successful runs up to their hit, divided by the number of
	// successes. It is +Inf without successes.
	ERT float64

	Evaluations int
	Elapsed     time.Duration
}

type group struct {
	function, dimension int
}

// Summarize groups results by function and dimension, ordered by function
// and then dimension.
func Summarize(results []RunResult) []Summary {
	groups := map[group][]RunResult{}
	for _, r := range results {
		g := group{r.Function, r.Dimension}
		groups[g] = append(groups[g], r)
	}

	keys := make([]group, 0, len(groups))
	for g := range groups {
		keys = append(keys, g)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].function != keys[j].function {
			return keys[i].function < keys[j].function
		}
		return keys[i].dimension < keys[j].dimension
	})

	out := make([]Summary, 0, len(keys))
	for _, g := range keys {
		out = append(out, summarize(g, groups[g]))
	}
	return out
}

func summarize(g group, runs []RunResult) Summary {
	s := Summary{
		Function:  g.function,
		Dimension: g.dimension,
		Runs:      len(runs),
	}
	best := make([]float64, 0, len(runs))
	spent := make([]float64, len(runs))
	successes := 0
	for i, r := range runs {
		if !math.IsNaN(r.Best) && !math.IsInf(r.Best, 0) {
			best = append(best, r.Best)
		}
		spent[i] = float64(r.Evaluations)
		if r.Hit {
			successes++
			spent[i] = float64(r.BestEvaluation)
		}
		s.Evaluations += r.Evaluations
		s.Elapsed += r.Elapsed
	}

	switch len(best) {
	case 0:
		s.MeanBest, s.StdBest = math.NaN(), math.NaN()
	case 1:
		s.MeanBest = best[0]
	default:
		s.MeanBest, s.StdBest = stat.MeanStdDev(best, nil)
	}

	s.SuccessRatio = float64(successes) / float64(len(runs))
	s.ERT = math.Inf(1)
	if successes > 0 {
		s.ERT = floats.Sum(spent) / float64(successes)
	}
	return s
}

// WriteReport prints one line per summary.
func WriteReport(w io.Writer, summaries []Summary) error {
	for _, s := range summaries {
		ert := "inf"
		if !math.IsInf(s.ERT, 1) {
			ert = humanize.Commaf(math.Round(s.ERT))
		}
		_, err := fmt.Fprintf(w, "f%-3d DIM %-6d runs %-4d hit %5.1f%%  ERT %-10s best %.5g ± %.3g  evals %s in %s\n",
			s.Function, s.Dimension, s.Runs, 100*s.SuccessRatio, ert, s.MeanBest, s.StdBest,
			humanize.Comma(int64(s.Evaluations)), s.Elapsed.Round(time.Millisecond))
		if err != nil {
			return err
		}
	}
	return nil
}

// DirSize sums the sizes of the regular files below root.
func DirSize(root string) (uint64, error) {
	var size uint64
	err := filepath.WalkDir(root, func(_ string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return err
		}
		size += uint64(info.Size())
		return nil
	})
	return size, err
}

// Bytes formats a byte count for humans.
func Bytes(n uint64) string {
	return humanize.Bytes(n)
}
