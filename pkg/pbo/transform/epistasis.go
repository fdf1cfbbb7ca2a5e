package transform

import (
	"fmt"

	"github.com/IOHprofiler/IOHexperimenter-sub000/pkg/pbo/framework"
)

const (
	EpistasisName = "transform_vars_epistasis"

	// maxPreimageBlock bounds the block size searched exhaustively for the
	// best parameter.
	maxPreimageBlock = 16
)

// Epistasis mixes the variables of every block of blockSize: each output
// bit is the XOR of all block inputs but one. The last block is shorter when
// blockSize does not divide n.
type Epistasis struct {
	layer
	blockSize int
	buf       []int
}

func NewEpistasis(inner framework.Problem, blockSize int) (*Epistasis, error) {
	if blockSize < 1 {
		return nil, fmt.Errorf("%w: block size %d", framework.ErrDimension, blockSize)
	}
	n := inner.NumberOfVariables()
	t := &Epistasis{
		layer:     newLayer(EpistasisName, inner, n),
		blockSize: blockSize,
		buf:       make([]int, n),
	}
	framework.CheckBest(t)
	return t, nil
}

// Mix writes the epistasis of x into dst.
func Mix(dst, x []int, blockSize int) {
	for h := 0; h < len(x); h += blockSize {
		end := min(h+blockSize, len(x))
		mixBlock(dst[h:end], x[h:end])
	}
}

func mixBlock(dst, src []int) {
	v := len(src)
	for i := 0; i < v; i++ {
		skip := ((v - i - 1) - 1) % 4
		first := true
		r := 0
		for j := 0; j < v; j++ {
			if v-j-1 == skip {
				continue
			}
			switch {
			case first:
				r, first = src[j], false
			case r != src[j]:
				r = 1
			default:
				r = 0
			}
		}
		dst[i] = r
	}
}

func (t *Epistasis) Evaluate(x []int) []float64 {
	if y, ok := t.accept(x); !ok {
		return y
	}
	Mix(t.buf, x, t.blockSize)
	return t.inner.Evaluate(t.buf)
}

// BestParameter searches every block for bits that mix into the inner
// optimum. A block without such bits keeps the inner optimum.
func (t *Epistasis) BestParameter() []int {
	inner := t.inner.BestParameter()
	best := framework.Clone(inner)
	for h := 0; h < len(inner); h += t.blockSize {
		end := min(h+t.blockSize, len(inner))
		if bits, ok := preimage(inner[h:end]); ok {
			copy(best[h:end], bits)
		}
	}
	return best
}

func preimage(target []int) ([]int, bool) {
	v := len(target)
	if v > maxPreimageBlock {
		return nil, false
	}
	candidate := make([]int, v)
	mixed := make([]int, v)
	for mask := 0; mask < 1<<v; mask++ {
		for j := range candidate {
			candidate[j] = (mask >> j) & 1
		}
		mixBlock(mixed, candidate)
		if equal(mixed, target) {
			return candidate, true
		}
	}
	return nil, false
}

func equal(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func (t *Epistasis) Resize(n int) error {
	if err := resize(t.inner, n); err != nil {
		return err
	}
	t.n = n
	t.buf = make([]int, n)
	return nil
}

// NewEpistasisXor applies epistasis, then flips the mixed variables by offset.
func NewEpistasisXor(inner framework.Problem, blockSize int, offset []int) (*Epistasis, error) {
	x, err := NewXor(inner, offset)
	if err != nil {
		return nil, err
	}
	return NewEpistasis(x, blockSize)
}

// NewEpistasisSigma applies epistasis, then permutes the mixed variables.
func NewEpistasisSigma(inner framework.Problem, blockSize int, perm []int) (*Epistasis, error) {
	s, err := NewSigma(inner, perm)
	if err != nil {
		return nil, err
	}
	return NewEpistasis(s, blockSize)
}
