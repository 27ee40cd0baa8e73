package solver

// PermutationSource produces every ordering of [0, size) exactly once,
// in any order. It is the collaborator boundary of the brute-force
// solver: the solver only consumes orderings and filters boards.
type PermutationSource interface {
	// Next returns the next ordering and true, or nil and false once
	// every ordering has been produced. The returned slice is owned by
	// the caller.
	Next() ([]int, bool)
}

// HeapPermutations enumerates permutations of [0, size) using the
// iterative form of Heap's algorithm. Like the successor iterator it
// is an explicit state machine: non-restartable, exhausted for good
// once Next reports false.
type HeapPermutations struct {
	items []int
	c     []int
	i     int
	first bool
}

var _ PermutationSource = &HeapPermutations{}

// NewHeapPermutations returns a source over all size! orderings of
// [0, size). Size 0 yields the single empty ordering.
func NewHeapPermutations(size int) *HeapPermutations {
	items := make([]int, size)
	for i := range items {
		items[i] = i
	}
	return &HeapPermutations{
		items: items,
		c:     make([]int, size),
		first: true,
	}
}

func (p *HeapPermutations) snapshot() []int {
	out := make([]int, len(p.items))
	copy(out, p.items)
	return out
}

func (p *HeapPermutations) Next() ([]int, bool) {
	if p.first {
		p.first = false
		return p.snapshot(), true
	}
	for p.i < len(p.items) {
		if p.c[p.i] < p.i {
			if p.i%2 == 0 {
				p.items[0], p.items[p.i] = p.items[p.i], p.items[0]
			} else {
				p.items[p.c[p.i]], p.items[p.i] = p.items[p.i], p.items[p.c[p.i]]
			}
			p.c[p.i]++
			p.i = 0
			return p.snapshot(), true
		}
		p.c[p.i] = 0
		p.i++
	}
	return nil, false
}
