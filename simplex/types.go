// Package simplex defines the core types for simplex-grid enumeration:
// the Grid facade and the lazy point Generator.
package simplex

import "math/big"

// Grid is an indexable, iterable view of the integer points of the
// (m-1)-dimensional simplex scaled by n. It is immutable once built:
// m, n and the point count are fixed at construction, and every
// enumeration request creates fresh generation state.
type Grid struct {
	m    int      // number of parts per point, m ≥ 1
	n    int      // coordinate sum of every point, n ≥ 0
	size *big.Int // total number of points, C(n+m-1, m-1)
}

// Generator produces the grid points for fixed (m, n) one at a time, in
// lexicographic order. It is a single-pass sequence: once exhausted it
// cannot be rewound — build a new Generator to enumerate again.
//
// The zero Generator is not usable; obtain one from NewGenerator or
// Grid.Generate.
type Generator struct {
	m, n    int
	x       []int // working vector, exclusively owned by this run
	h       int   // scan boundary of the minimal-change step
	started bool
	done    bool
}
