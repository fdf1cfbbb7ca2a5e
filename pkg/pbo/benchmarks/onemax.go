package benchmarks

const (
	OneMaxName      = "one_max"
	LeadingOnesName = "leading_ones"
	LinearName      = "linear"
	JumpName        = "jump"
)

// OneMax counts the ones of x.
type OneMax struct {
	function
}

func NewOneMax(n int) *OneMax {
	p := &OneMax{}
	p.function = newFunction(OneMaxName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *OneMax) Raw(x []int) float64 {
	return sum(x)
}

// LeadingOnes is the length of the longest prefix of x made of ones.
type LeadingOnes struct {
	function
}

func NewLeadingOnes(n int) *LeadingOnes {
	p := &LeadingOnes{}
	p.function = newFunction(LeadingOnesName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *LeadingOnes) Raw(x []int) float64 {
	for i, v := range x {
		if v != 1 {
			return float64(i)
		}
	}
	return float64(len(x))
}

// Linear weighs variable i with i+1.
type Linear struct {
	function
}

func NewLinear(n int) *Linear {
	p := &Linear{}
	p.function = newFunction(LinearName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *Linear) Raw(x []int) float64 {
	s := 0.0
	for i, v := range x {
		s += float64(v) * float64(i+1)
	}
	return s
}

// Jump is OneMax with a gap of width 1 in front of the optimum, and the
// same gap at the bottom.
type Jump struct {
	function
}

const jumpGap = 1

func NewJump(n int) *Jump {
	p := &Jump{}
	p.function = newFunction(JumpName, n, p.Raw, nil)
	p.init()
	return p
}

func (p *Jump) Raw(x []int) float64 {
	n := float64(len(x))
	s := sum(x)
	if (s >= n-jumpGap || s <= jumpGap) && s != n {
		return 0
	}
	return s
}
