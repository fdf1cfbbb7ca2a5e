package transform

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const NeutralityName = "transform_vars_neutrality"

// Neutrality reduces every block of consecutive variables to one bit, set
// only when the block holds more ones than zeros. Trailing variables that do
// not fill a block are ignored.
type Neutrality struct {
	layer
	blockSize int
	buf       []int
}

// NewNeutrality shrinks inner to n/blockSize variables, where n is its
// current size. When n < blockSize, inner is returned unchanged.
func NewNeutrality(inner framework.Problem, blockSize int) (framework.Problem, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d", framework.ErrDimension, blockSize)
	}
	n := inner.NumberOfVariables()
	if n < blockSize {
		return inner, nil
	}
	if err := resize(inner, n/blockSize); err != nil {
		return nil, err
	}
	return newNeutrality(inner, n, blockSize), nil
}

func newNeutrality(inner framework.Problem, n, blockSize int) *Neutrality {
	t := &Neutrality{
		layer:     newLayer(NeutralityName, inner, n),
		blockSize: blockSize,
		buf:       make([]int, n/blockSize),
	}
	framework.CheckBest(t)
	return t
}

// Majority reduces x[start:start+size] to 1 when it holds more ones than
// zeros, and to 0 otherwise.
func Majority(x []int, start, size int) int {
	zeros, ones := 0, 0
	for _, v := range x[start : start+size] {
		switch v {
		case 0:
			zeros++
		case 1:
			ones++
		}
	}
	if zeros >= ones {
		return 0
	}
	return 1
}

func (t *Neutrality) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	for i := range t.buf {
		t.buf[i] = Majority(x, i*t.blockSize, t.blockSize)
	}
	return t.inner.Evaluate(t.buf)
}

// BestParameter repeats every inner bit over its block.
func (t *Neutrality) BestParameter() []int {
	inner := t.inner.BestParameter()
	best := make([]int, t.n)
	for i, v := range inner {
		for j := 0; j < t.blockSize; j++ {
			best[i*t.blockSize+j] = v
		}
	}
	return best
}

func (t *Neutrality) Resize(n int) error {
	if err := resize(t.inner, n/t.blockSize); err != nil {
		return err
	}
	t.n = n
	t.buf = make([]int, n/t.blockSize)
	return nil
}

// NewNeutralityXor applies neutrality, then flips the reduced variables by
// offset, which must hold n/blockSize values.
func NewNeutralityXor(inner framework.Problem, blockSize int, offset []int) (framework.Problem, error) {
	return newNeutralityComposite(inner, blockSize, func(p framework.Problem) (framework.Problem, error) {
		t, err := NewXor(p, offset)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}

// NewNeutralitySigma applies neutrality, then permutes the reduced variables.
func NewNeutralitySigma(inner framework.Problem, blockSize int, perm []int) (framework.Problem, error) {
	return newNeutralityComposite(inner, blockSize, func(p framework.Problem) (framework.Problem, error) {
		t, err := NewSigma(p, perm)
		if err != nil {
			return nil, err
		}
		return t, nil
	})
}

func newNeutralityComposite(inner framework.Problem, blockSize int, wrap func(framework.Problem) (framework.Problem, error)) (framework.Problem, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d", framework.ErrDimension, blockSize)
	}
	n := inner.NumberOfVariables()
	if n < blockSize {
		return inner, nil
	}
	if err := resize(inner, n/blockSize); err != nil {
		return nil, err
	}
	p, err := wrap(inner)
	if err != nil {
		return nil, err
	}
	return newNeutrality(p, n, blockSize), nil
}
