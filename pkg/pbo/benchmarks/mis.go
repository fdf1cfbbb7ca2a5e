package benchmarks

const MISName = "MIS"

// MIS scores a vertex subset of a fixed graph as its size, minus a penalty
// of n per edge inside the subset. With an odd n the last variable is ignored.
type MIS struct {
	function
}

func NewMIS(n int) *MIS {
	p := &MIS{}
	p.function = newFunction(MISName, n, p.Raw, func(n int) float64 {
		return float64(n/2 + 1)
	})
	p.init()
	return p
}

// isEdge reports whether vertices i < j, numbered from 1, are adjacent in
// the graph of n vertices.
func isEdge(i, j, n int) bool {
	half := n / 2
	switch {
	case i != half && j == i+1:
		return true
	case i <= half-1 && j == i+half+1:
		return true
	case i <= half && i >= 2 && j == i+half-1:
		return true
	}
	return false
}

func (p *MIS) Raw(x []int) float64 {
	even := len(x) - len(x)%2

	selected := make([]int, 0, even)
	for i := 0; i < even; i++ {
		if x[i] == 1 {
			selected = append(selected, i+1)
		}
	}
	edges := 0
	for a := range selected {
		for b := a + 1; b < len(selected); b++ {
			if isEdge(selected[a], selected[b], even) {
				edges++
			}
		}
	}
	return float64(len(selected) - even*edges)
}
