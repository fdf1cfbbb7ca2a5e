package logger

import (
	"errors"
	"fmt"
)

const (
	DefaultAlgorithmName = "ALG"
	DefaultAlgorithmInfo = "ALG_INFO"

	// MaxBaseEvaluationTriggers bounds the number of base evaluation triggers.
	MaxBaseEvaluationTriggers = 10
)

var ErrOptions = errors.New("invalid logger options")

// Options controls which data files are written.
type Options struct {
	ResultFolder  string
	AlgorithmName string
	AlgorithmInfo string

	// ParametersName is written as one extra column header. When empty,
	// the parameter names set on the record are used.
	ParametersName string

	// BaseEvaluationTriggers enables the .tdat file.
	BaseEvaluationTriggers []int
	// NumberOfEvaluationTriggers is the number of triggers per decade of
	// evaluations. Zero means the number of variables of the problem.
	NumberOfEvaluationTriggers int

	// NumberIntervalTriggers enables the .idat file, written every that
	// many evaluations.
	NumberIntervalTriggers int

	CompleteTriggers bool
	UpdateTriggers   bool
}

// DefaultOptions logs improvements only.
func DefaultOptions(resultFolder string) Options {
	return Options{
		ResultFolder:   resultFolder,
		AlgorithmName:  DefaultAlgorithmName,
		AlgorithmInfo:  DefaultAlgorithmInfo,
		UpdateTriggers: true,
	}
}

func (o Options) Validate() error {
	if o.ResultFolder == "" {
		return fmt.Errorf("%w: empty result folder", ErrOptions)
	}
	if len(o.BaseEvaluationTriggers) > MaxBaseEvaluationTriggers {
		return fmt.Errorf("%w: %d base evaluation triggers, at most %d", ErrOptions, len(o.BaseEvaluationTriggers), MaxBaseEvaluationTriggers)
	}
	for _, b := range o.BaseEvaluationTriggers {
		if b < 1 {
			return fmt.Errorf("%w: base evaluation trigger %d", ErrOptions, b)
		}
	}
	if o.NumberOfEvaluationTriggers < 0 || o.NumberIntervalTriggers < 0 {
		return fmt.Errorf("%w: negative trigger count", ErrOptions)
	}
	return nil
}
