package simplex

import "math/big"

// New constructs a Grid over the integer points of the (m-1)-dimensional
// simplex scaled by n. The point count is computed once at construction and
// fixed for the lifetime of the Grid.
//
// Returns ErrBadParts if m < 1, ErrBadSum if n < 0.
func New(m, n int) (*Grid, error) {
	size, err := NumCompositions(m, n)
	if err != nil {
		return nil, err
	}

	return &Grid{m: m, n: n, size: size}, nil
}

// Parts returns m, the number of coordinates of every grid point.
func (g *Grid) Parts() int { return g.m }

// Total returns n, the coordinate sum of every grid point.
func (g *Grid) Total() int { return g.n }

// Size returns the number of grid points, C(n+m-1, m-1), as a fresh
// *big.Int the caller may mutate freely.
func (g *Grid) Size() *big.Int { return new(big.Int).Set(g.size) }

// Generate returns a fresh lazy Generator over the grid, starting from
// rank 0. Each call creates independent generation state.
func (g *Grid) Generate() *Generator {
	gen, _ := NewGenerator(g.m, g.n) // (m, n) validated at construction

	return gen
}

// All returns the full table of grid points in lexicographic order.
// O(size·m) time and memory; returns ErrGridTooLarge when the table cannot
// be materialized (stream with Generate instead).
func (g *Grid) All() ([][]int, error) {
	return Enumerate(g.m, g.n)
}

// At returns the point at the given rank by replaying a fresh generator
// rank+1 steps from the start — O(rank·m). Use Unrank for direct
// closed-form access when rank is large.
//
// Returns ErrRankRange when rank is outside [0, size-1].
func (g *Grid) At(rank int) ([]int, error) {
	if rank < 0 || g.size.Cmp(big.NewInt(int64(rank))) <= 0 {
		return nil, ErrRankRange
	}

	gen := g.Generate()
	var x []int
	var err error
	for i := 0; i <= rank; i++ {
		if x, err = gen.Next(); err != nil {
			return nil, err
		}
	}

	return x, nil
}

// Index returns the 0-based lexicographic rank of the point x within the
// grid. See Rank for the error contract.
func (g *Grid) Index(x []int) (*big.Int, error) {
	return Rank(x, g.m, g.n)
}
