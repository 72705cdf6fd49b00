package simplex

import "math/big"

// Rank returns the 0-based position of the point x in the lexicographic
// order of the m-part compositions of n, without enumerating any of its
// predecessors. Rank 0 is (0, ..., 0, n); rank L-1 is (n, 0, ..., 0).
//
// The computation starts from L-1 and subtracts, for each prefix position,
// the closed-form count of compositions skipped by the suffix budget left
// after that position — O(m) binomial evaluations in total.
//
// Returns ErrBadParts / ErrBadSum for invalid (m, n); ErrPointLength when
// len(x) ≠ m; ErrPointValue when an entry is negative or the entries do not
// sum to n.
func Rank(x []int, m, n int) (*big.Int, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}
	if err := validatePoint(x, m, n); err != nil {
		return nil, err
	}

	// suffix[i] = x[i+1] + ... + x[m-1], the budget still unplaced after
	// fixing coordinates 0..i. Empty for m = 1, where the rank is 0 = L-1.
	suffix := make([]int, m-1)
	acc := 0
	for i := m - 2; i >= 0; i-- {
		acc += x[i+1]
		suffix[i] = acc
	}

	idx := compositions(m, n)
	idx.Sub(idx, big.NewInt(1))
	for i := 0; i < m-1; i++ {
		if suffix[i] == 0 {
			// Remaining coordinates are forced to zero; nothing left to skip.
			break
		}
		idx.Sub(idx, compositions(m-i, suffix[i]-1))
	}

	return idx, nil
}

// RankRecursive computes the same rank as Rank by recursion on the first
// coordinate: the compositions preceding x are those with a smaller first
// coordinate, counted as a difference of cumulative composition counts,
// plus the rank of the tail as an (m-1)-part composition of the remainder.
//
// Rank and RankRecursive agree on every valid point; both are exported so
// the equivalence can be checked directly.
func RankRecursive(x []int, m, n int) (*big.Int, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}
	if err := validatePoint(x, m, n); err != nil {
		return nil, err
	}

	return rankRec(x, m, n), nil
}

func rankRec(x []int, m, n int) *big.Int {
	if m == 1 {
		return new(big.Int)
	}

	nNext := n
	idx := new(big.Int)
	if x[0] != 0 {
		nNext = n - x[0]
		// Points whose first coordinate is below x[0]: total count minus
		// the count of points fitting within the remaining budget.
		idx.Sub(compositions(m, n), compositions(m, nNext))
	}

	return idx.Add(idx, rankRec(x[1:], m-1, nNext))
}

// Unrank inverts Rank: it returns the point at position r in the
// lexicographic order of the m-part compositions of n, computed directly
// from the same binomial identities rather than by replaying the
// enumeration. For each coordinate it scans candidate values upward,
// subtracting the block count of points that share the smaller value.
//
// Complexity: O(n·m) binomial evaluations.
//
// Returns ErrBadParts / ErrBadSum for invalid (m, n); ErrRankRange when r
// is nil or outside [0, L-1].
func Unrank(r *big.Int, m, n int) ([]int, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}
	if r == nil || r.Sign() < 0 || r.Cmp(compositions(m, n)) >= 0 {
		return nil, ErrRankRange
	}

	x := make([]int, m)
	rem := new(big.Int).Set(r)
	budget := n
	for i := 0; i < m-1; i++ {
		v := 0
		for {
			// Points with coordinate i fixed to v: compositions of the
			// leftover budget into the remaining m-i-1 parts.
			block := compositions(m-i-1, budget-v)
			if rem.Cmp(block) < 0 {
				break
			}
			rem.Sub(rem, block)
			v++
		}
		x[i] = v
		budget -= v
	}
	x[m-1] = budget

	return x, nil
}
