package simplex

// NewGenerator returns a lazy, single-pass producer of the m-part
// compositions of n in lexicographic order. It performs the same
// minimal-change stepping as Enumerate but holds only one working vector,
// so grids whose full table would not fit in memory can still be streamed.
//
// Complexity: O(m) per point, O(m) memory.
//
// Returns ErrBadParts if m < 1, ErrBadSum if n < 0.
func NewGenerator(m, n int) (*Generator, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}
	x := make([]int, m)
	x[m-1] = n

	return &Generator{m: m, n: n, x: x, h: m}, nil
}

// Next returns a fresh copy of the next grid point, or ErrExhausted once
// all C(n+m-1, m-1) points have been yielded. Exhaustion is the normal end
// of the sequence, not a failure; a Generator cannot be rewound afterwards.
func (g *Generator) Next() ([]int, error) {
	if g.done {
		return nil, ErrExhausted
	}
	if !g.started {
		g.started = true
	} else {
		g.h--
		val := g.x[g.h]
		g.x[g.h] = 0
		g.x[g.m-1] = val - 1
		g.x[g.h-1]++
		if val != 1 {
			g.h = g.m
		}
	}

	// (n, 0, ..., 0) is the lexicographic maximum; reaching it means the
	// sequence is complete. For n = 0 it is also the minimum, so the single
	// point terminates the run immediately.
	if g.x[0] == g.n {
		g.done = true
	}

	out := make([]int, g.m)
	copy(out, g.x)

	return out, nil
}
