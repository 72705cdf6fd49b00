package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseParams converts the two positional (m, n) arguments. Range checks
// (m ≥ 1, n ≥ 0) are left to the simplex package so the CLI reports the
// same errors as library callers see.
func parseParams(mArg, nArg string) (m, n int, err error) {
	if m, err = strconv.Atoi(mArg); err != nil {
		return 0, 0, fmt.Errorf("parse m %q: %w", mArg, err)
	}
	if n, err = strconv.Atoi(nArg); err != nil {
		return 0, 0, fmt.Errorf("parse n %q: %w", nArg, err)
	}

	return m, n, nil
}

// parsePoint converts a comma-separated coordinate list ("0,4,0") into a
// point vector. Surrounding whitespace per coordinate is tolerated.
func parsePoint(s string) ([]int, error) {
	fields := strings.Split(s, ",")
	x := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return nil, fmt.Errorf("parse coordinate %d %q: %w", i, f, err)
		}
		x[i] = v
	}

	return x, nil
}

// formatPoint renders a point as space-separated coordinates: "0 4 0".
func formatPoint(x []int) string {
	parts := make([]string, len(x))
	for i, v := range x {
		parts[i] = strconv.Itoa(v)
	}

	return strings.Join(parts, " ")
}
