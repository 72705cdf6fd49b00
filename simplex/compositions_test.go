package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplexgrid/simplex"
)

// TestNumCompositions_Known pins C(n+m-1, m-1) against independently
// computed values, including one beyond the int64 range to prove the
// arbitrary-precision path stays exact.
func TestNumCompositions_Known(t *testing.T) {
	cases := []struct {
		name string
		m, n int
		want string
	}{
		{"ThreePartsOfFour", 3, 4, "15"},
		{"SinglePart", 1, 7, "1"},
		{"ZeroSum", 5, 0, "1"},
		{"TwoParts", 2, 9, "10"},
		{"Medium", 12, 25, "600805296"},
		{"Wide", 5, 100, "4598126"},
		{"BeyondInt64", 30, 40, "23720460024918645912"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := simplex.NumCompositions(tc.m, tc.n)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

// TestNumCompositions_InvalidArguments verifies the shared (m, n)
// precondition: m must be positive, n nonnegative.
func TestNumCompositions_InvalidArguments(t *testing.T) {
	_, err := simplex.NumCompositions(0, 4)
	assert.ErrorIs(t, err, simplex.ErrBadParts, "m=0 must be rejected")

	_, err = simplex.NumCompositions(-3, 4)
	assert.ErrorIs(t, err, simplex.ErrBadParts, "negative m must be rejected")

	_, err = simplex.NumCompositions(3, -1)
	assert.ErrorIs(t, err, simplex.ErrBadSum, "negative n must be rejected")

	// m is checked before n when both are invalid.
	_, err = simplex.NumCompositions(0, -1)
	assert.ErrorIs(t, err, simplex.ErrBadParts)
}

// TestNumCompositions_MatchesEnumeration confirms the counter equals the
// length of the materialized grid across a sweep of small parameters.
func TestNumCompositions_MatchesEnumeration(t *testing.T) {
	for m := 1; m <= 5; m++ {
		for n := 0; n <= 6; n++ {
			count, err := simplex.NumCompositions(m, n)
			require.NoError(t, err)

			pts, err := simplex.Enumerate(m, n)
			require.NoError(t, err)
			assert.Equal(t, int64(len(pts)), count.Int64(),
				"count mismatch for m=%d n=%d", m, n)
		}
	}
}
