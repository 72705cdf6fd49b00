package simplex_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/simplexgrid/simplex"
)

// TestUnit_Grid34 verifies the scaled table for m=3, n=4: every coordinate
// of the integer grid divided by 4. Quarters are exact in float64, so
// strict equality is safe here.
func TestUnit_Grid34(t *testing.T) {
	out, err := simplex.Unit(3, 4)
	require.NoError(t, err)
	require.Len(t, out, 15)

	assert.Equal(t, []float64{0, 0, 1}, out[0])
	assert.Equal(t, []float64{0, 0.5, 0.5}, out[2])
	assert.Equal(t, []float64{0.25, 0.25, 0.5}, out[6])
	assert.Equal(t, []float64{1, 0, 0}, out[14])
}

// TestUnit_RowsSumToOne checks the barycentric property across a sweep.
func TestUnit_RowsSumToOne(t *testing.T) {
	for m := 1; m <= 5; m++ {
		for n := 1; n <= 6; n++ {
			out, err := simplex.Unit(m, n)
			require.NoError(t, err)

			for i, row := range out {
				s := 0.0
				for _, v := range row {
					s += v
				}
				require.InDelta(t, 1.0, s, 1e-12, "m=%d n=%d row %d", m, n, i)
			}
		}
	}
}

// TestUnit_Errors verifies the scaling precondition n ≥ 1 on top of the
// shared (m, n) validation.
func TestUnit_Errors(t *testing.T) {
	_, err := simplex.Unit(3, 0)
	assert.ErrorIs(t, err, simplex.ErrNoSubdivisions)

	_, err = simplex.Unit(0, 4)
	assert.ErrorIs(t, err, simplex.ErrBadParts)

	_, err = simplex.Unit(3, -1)
	assert.ErrorIs(t, err, simplex.ErrBadSum)
}
