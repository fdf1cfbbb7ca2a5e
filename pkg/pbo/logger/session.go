package logger

import (
	"bufio"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/go-logr/logr"
	utilerrors "k8s.io/apimachinery/pkg/util/errors"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const maxFloat = math.MaxFloat64

const dataHeader = `"function evaluation" "current f(x)" "best-so-far f(x)" "current af(x)+b"  "best af(x)+b" `

type dataFile struct {
	file *os.File
	w    *bufio.Writer
}

// Session logs the evaluations of one run on one record. Files are opened
// lazily on the first evaluation, so a run that never evaluates leaves
// only its info entry behind.
type Session struct {
	observer *Observer
	logger   logr.Logger
	rec      *framework.Record

	info     *os.File
	dataPath string

	dat, tdat, idat, cdat *dataFile

	opened  bool
	n       int
	best    float64
	bestRaw float64
	last    float64
	raw     float64
	written bool

	update      *updateTrigger
	evaluations *evaluationTrigger

	err    error
	closed bool
}

var _ framework.Observer = &Session{}

func (s *Session) open(ext string) (*dataFile, error) {
	f, err := os.OpenFile(s.dataPath+ext, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, err
	}
	d := &dataFile{file: f, w: bufio.NewWriter(f)}
	d.w.WriteString(dataHeader)
	d.w.WriteString(s.parameterHeader())
	d.w.WriteString("\n")
	return d, nil
}

func (s *Session) parameterHeader() string {
	if name := s.observer.opts.ParametersName; name != "" {
		return "\"" + name + "\" "
	}
	var b strings.Builder
	for _, name := range s.rec.ParameterNames() {
		fmt.Fprintf(&b, "\"%s\" ", name)
	}
	return b.String()
}

func (s *Session) openAll() error {
	opts := s.observer.opts
	var err error
	if opts.UpdateTriggers {
		if s.dat, err = s.open(".dat"); err != nil {
			return err
		}
	}
	if s.evaluations != nil {
		if s.tdat, err = s.open(".tdat"); err != nil {
			return err
		}
	}
	if opts.NumberIntervalTriggers > 0 {
		if s.idat, err = s.open(".idat"); err != nil {
			return err
		}
	}
	if opts.CompleteTriggers {
		if s.cdat, err = s.open(".cdat"); err != nil {
			return err
		}
	}
	return nil
}

// Observe implements framework.Observer.
func (s *Session) Observe(rec *framework.Record, _ []int, y []float64) {
	if s.closed || s.err != nil {
		return
	}
	if !s.opened {
		s.opened = true
		if err := s.openAll(); err != nil {
			s.fail(fmt.Errorf("opening data files: %w", err))
			return
		}
	}

	y0 := y[0]
	raw := math.NaN()
	if r := rec.RawFitness(); len(r) > 0 {
		raw = r[0]
	}
	s.last, s.raw = y0, raw
	s.written = false
	if y0 > s.best {
		s.best = y0
	}
	if raw > s.bestRaw {
		s.bestRaw = raw
	}
	s.n++

	if s.dat != nil && s.update.fire(y0) {
		s.write(s.dat)
	}
	if s.tdat != nil && s.evaluations.fire(s.n) {
		s.write(s.tdat)
		s.written = true
	}
	if s.idat != nil && s.n%s.observer.opts.NumberIntervalTriggers == 0 {
		s.write(s.idat)
	}
	if s.cdat != nil {
		s.write(s.cdat)
	}
}

func (s *Session) write(d *dataFile) {
	fmt.Fprintf(d.w, "%d %+10.5e %+10.5e %+10.5e %+10.5e", s.n, s.raw, s.bestRaw, s.last, s.best)
	for _, p := range s.rec.Parameters() {
		fmt.Fprintf(d.w, " %.6f", p)
	}
	d.w.WriteString("\n")
}

func (s *Session) fail(err error) {
	s.err = err
	s.logger.Error(err, "Logging stopped")
}

// Evaluations is the number of evaluations logged by s.
func (s *Session) Evaluations() int {
	return s.n
}

// unevaluated replaces the best value in the info entry of a run that never
// evaluated its problem.
const unevaluated = "NaN"

// Close completes the info entry with the evaluation count and the best
// value, writes the final line of the .tdat and .idat files, and detaches
// s from its record.
func (s *Session) Close() error {
	if s.closed {
		return s.err
	}
	s.closed = true
	s.rec.Detach(s)

	errs := []error{s.err}
	tail := fmt.Sprintf(":%d|%.5e", s.n, s.best)
	if s.n == 0 {
		tail = ":0|" + unevaluated
	}
	if _, err := s.info.WriteString(tail); err != nil {
		errs = append(errs, err)
	}
	errs = append(errs, s.info.Close())

	if s.tdat != nil && !s.written {
		s.write(s.tdat)
	}
	if s.idat != nil {
		s.write(s.idat)
	}
	for _, d := range []*dataFile{s.dat, s.tdat, s.idat, s.cdat} {
		if d == nil {
			continue
		}
		errs = append(errs, d.w.Flush(), d.file.Close())
	}

	s.logger.V(4).Info("Closed session", "evaluations", s.n, "best", s.best)
	return utilerrors.NewAggregate(errs)
}
