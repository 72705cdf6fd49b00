package simplex_test

// Shared fixtures and helpers for the simplex test suite.

// grid34 is the complete lexicographic grid for m=3, n=4: all fifteen
// 3-part compositions of 4.
var grid34 = [][]int{
	{0, 0, 4},
	{0, 1, 3},
	{0, 2, 2},
	{0, 3, 1},
	{0, 4, 0},
	{1, 0, 3},
	{1, 1, 2},
	{1, 2, 1},
	{1, 3, 0},
	{2, 0, 2},
	{2, 1, 1},
	{2, 2, 0},
	{3, 0, 1},
	{3, 1, 0},
	{4, 0, 0},
}

// lexLess reports whether a precedes b in lexicographic order.
// Both slices must have the same length.
func lexLess(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return false
}

// sum returns the coordinate sum of x.
func sum(x []int) int {
	s := 0
	for _, v := range x {
		s += v
	}

	return s
}
