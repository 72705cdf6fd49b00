package simplex

import "math"

// Enumerate returns the full table of m-part compositions of n in
// lexicographic order: L rows of length m, where L = C(n+m-1, m-1).
// Row 0 is (0, ..., 0, n); row L-1 is (n, 0, ..., 0).
//
// Generation is the minimal-change scheme of Nijenhuis & Wilf: a single
// working vector steps from each point to the next by zeroing one
// coordinate, refilling the last, and incrementing the one to its left.
// Each row of the result is a fresh copy of the working vector, so rows
// never alias each other.
//
// Complexity: O(L·m) time and memory. L grows combinatorially in m and n;
// when the table would not fit, Enumerate returns ErrGridTooLarge and the
// caller should stream points through a Generator instead.
//
// Returns ErrBadParts if m < 1, ErrBadSum if n < 0.
func Enumerate(m, n int) ([][]int, error) {
	size, err := NumCompositions(m, n)
	if err != nil {
		return nil, err
	}
	if !size.IsInt64() || size.Int64() > math.MaxInt {
		return nil, ErrGridTooLarge
	}
	count := int(size.Int64())

	out := make([][]int, count)
	x := make([]int, m)
	x[m-1] = n
	out[0] = make([]int, m)
	copy(out[0], x)

	// h is one past the rightmost coordinate still untouched since the last
	// reset; it marks where the next weight move happens.
	h := m
	for i := 1; i < count; i++ {
		h--
		val := x[h]
		x[h] = 0
		x[m-1] = val - 1
		x[h-1]++

		out[i] = make([]int, m)
		copy(out[i], x)

		if val != 1 {
			h = m
		}
	}

	return out, nil
}
