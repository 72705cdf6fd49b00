package simplex

// Unit returns the grid of the (m-1)-dimensional *unit* simplex with n
// subdivisions along each dimension: the table of Enumerate(m, n) with
// every coordinate divided by n, so each row is a barycentric point with
// coordinates summing to 1.
//
// Complexity and memory behavior match Enumerate, including
// ErrGridTooLarge. Returns ErrBadParts if m < 1, ErrBadSum if n < 0,
// ErrNoSubdivisions if n == 0 (the scaling is undefined).
func Unit(m, n int) ([][]float64, error) {
	if err := validateParams(m, n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, ErrNoSubdivisions
	}

	pts, err := Enumerate(m, n)
	if err != nil {
		return nil, err
	}

	out := make([][]float64, len(pts))
	for i, p := range pts {
		row := make([]float64, m)
		for j, v := range p {
			row[j] = float64(v) / float64(n)
		}
		out[i] = row
	}

	return out, nil
}
