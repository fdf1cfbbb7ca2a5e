package framework

import (
	"fmt"
	"sync/atomic"

	"k8s.io/klog/v2"
)

var strict atomic.Bool

// InvariantError is the panic value raised by CheckInvariant in strict mode.
type InvariantError struct {
	Detail string
}

func (e *InvariantError) Error() string {
	return "invariant violated: " + e.Detail
}

// SetStrict switches invariant checks between logging and panicking and
// returns the previous setting.
func SetStrict(on bool) bool {
	return strict.Swap(on)
}

// Strict reports whether invariant violations panic.
func Strict() bool {
	return strict.Load()
}

// CheckInvariant panics with an *InvariantError in strict mode when cond is
// false. Otherwise the violation is only logged.
func CheckInvariant(cond bool, format string, args ...interface{}) {
	if cond {
		return
	}
	detail := fmt.Sprintf(format, args...)
	if strict.Load() {
		panic(&InvariantError{Detail: detail})
	}
	klog.Background().V(2).Info("Invariant violated", "detail", detail)
}

// CheckBest evaluates the best parameter of p and verifies that it does not
// exceed the best value. It is called after every layer is constructed.
func CheckBest(p Problem) {
	best := p.BestValue()
	y := p.Evaluate(p.BestParameter())
	if IsNaN(y) {
		return
	}
	if len(best) == 1 {
		CheckInvariant(y[0] <= best[0],
			"%s: f(best parameter) = %v exceeds best value %v", p.Name(), y[0], best[0])
		return
	}
	CheckInvariant(!Dominates(y, best),
		"%s: f(best parameter) = %v dominates best value %v", p.Name(), y, best)
}
