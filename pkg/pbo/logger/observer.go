package logger

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-logr/logr"
	"k8s.io/apimachinery/pkg/util/sets"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

// Observer writes the result folder of one algorithm. Runs of the same
// function and dimension share an info file and a set of data files named
// after the first instance logged into them. Attaching a dimension that the
// current info file already holds starts a new one.
//
// Sessions of one Observer must be closed in the order they are attached.
type Observer struct {
	logger logr.Logger
	opts   Options

	mu            sync.Mutex
	function      int
	dimension     int
	firstInstance int
	dimensions    sets.Set[int]
}

func New(logger logr.Logger, opts Options) *Observer {
	return &Observer{
		logger:     logger.WithName("observer"),
		opts:       opts,
		dimensions: sets.New[int](),
	}
}

func (o *Observer) Options() Options {
	return o.opts
}

// Attach opens the info and data files for rec and registers a Session as
// an observer of its evaluations. The returned Session must be closed when
// the run ends.
func (o *Observer) Attach(rec *framework.Record) (*Session, error) {
	if err := o.opts.Validate(); err != nil {
		return nil, err
	}
	if err := rec.Validate(); err != nil {
		return nil, err
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	dataDir := filepath.Join(o.opts.ResultFolder, fmt.Sprintf("data_f%d", rec.Function))
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data folder: %w", err)
	}

	info, err := o.openInfo(rec)
	if err != nil {
		return nil, err
	}

	s := &Session{
		observer: o,
		logger:   o.logger.WithValues("problem", rec.ID),
		info:     info,
		dataPath: filepath.Join(dataDir, o.dataFileStem(rec.Function, rec.Dimension)),
		rec:      rec,
		best:     -maxFloat,
		bestRaw:  -maxFloat,
		update:   newUpdateTrigger(),
		written:  true,
	}
	if len(o.opts.BaseEvaluationTriggers) > 0 {
		perDecade := o.opts.NumberOfEvaluationTriggers
		if perDecade == 0 {
			perDecade = rec.NumberOfVariables()
		}
		s.evaluations = newEvaluationTrigger(o.opts.BaseEvaluationTriggers, rec.Dimension, perDecade)
	}
	rec.Attach(s)
	return s, nil
}

func (o *Observer) dataFileStem(function, dimension int) string {
	return fmt.Sprintf("IOHprofiler_f%d_DIM%d_i%d", function, dimension, o.firstInstance)
}

func (o *Observer) infoPath(function int) string {
	return filepath.Join(o.opts.ResultFolder, fmt.Sprintf("IOHprofiler_f%d_i%d.info", function, o.firstInstance))
}

// openInfo updates the grouping state for rec, opens its info file and
// appends the instance. A header is written whenever rec starts a new
// (function, dimension) group.
func (o *Observer) openInfo(rec *framework.Record) (*os.File, error) {
	f, d := rec.Function, rec.Dimension

	if f != o.function || o.firstInstance == 0 {
		o.firstInstance = rec.Instance
		o.dimensions = sets.New[int]()
	}
	path := o.infoPath(f)
	_, statErr := os.Stat(path)
	exists := statErr == nil

	header := true
	separate := false
	switch {
	case exists && f == o.function && d == o.dimension:
		header = false
	case d != o.dimension && o.dimensions.Has(d):
		o.firstInstance = rec.Instance
		o.dimensions = sets.New[int]()
		path = o.infoPath(f)
		_, statErr = os.Stat(path)
		exists = statErr == nil
		separate = exists
	default:
		separate = exists
	}
	o.dimensions.Insert(d)

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening info file: %w", err)
	}
	w := bufio.NewWriter(file)
	if header {
		if separate {
			fmt.Fprintln(w)
		}
		fmt.Fprintf(w, "suite = '%s', funcId = %d, DIM = %d, algId = '%s', algInfo = '%s'\n",
			rec.Suite, f, d, o.opts.AlgorithmName, o.opts.AlgorithmInfo)
		w.WriteString("%\n")
		fmt.Fprintf(w, "data_f%d/%s.dat", f, o.dataFileStem(f, d))
		o.logger.V(4).Info("Started info group", "path", path, "function", f, "dimension", d, "firstInstance", o.firstInstance)
	}
	fmt.Fprintf(w, ", %d", rec.Instance)
	if err := w.Flush(); err != nil {
		file.Close()
		return nil, fmt.Errorf("writing info file: %w", err)
	}

	o.function, o.dimension = f, d
	return file, nil
}
