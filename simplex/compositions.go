package simplex

import "math/big"

// NumCompositions returns the total number of m-part compositions of n,
// equal to the binomial coefficient C(n+m-1, m-1). This is also the number
// of integer points of the (m-1)-dimensional simplex scaled by n, and hence
// the row count of the table produced by Enumerate.
//
// The result is exact for any valid input; it is computed with math/big and
// never rounds, since callers use it both as an allocation size and inside
// exact rank arithmetic.
//
// Returns ErrBadParts if m < 1, ErrBadSum if n < 0.
func NumCompositions(m, n int) (*big.Int, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}

	return compositions(m, n), nil
}

// compositions is NumCompositions without the precondition check.
// Callers must guarantee m ≥ 1 and n ≥ 0.
func compositions(m, n int) *big.Int {
	return new(big.Int).Binomial(int64(n)+int64(m)-1, int64(m)-1)
}

// validateParams enforces the shared (m, n) precondition: m ≥ 1, n ≥ 0.
func validateParams(m, n int) error {
	if m < 1 {
		return ErrBadParts
	}
	if n < 0 {
		return ErrBadSum
	}

	return nil
}

// validatePoint checks that x is a valid m-part composition of n:
// length m, nonnegative entries, coordinate sum exactly n.
func validatePoint(x []int, m, n int) error {
	if len(x) != m {
		return ErrPointLength
	}
	sum := 0
	for _, v := range x {
		if v < 0 {
			return ErrPointValue
		}
		sum += v
	}
	if sum != n {
		return ErrPointValue
	}

	return nil
}
