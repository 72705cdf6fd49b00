package simplex

import "errors"

var (
	// ErrBadParts indicates the number of parts m is not a positive integer.
	ErrBadParts = errors.New("simplex: number of parts must be a positive integer")
	// ErrBadSum indicates the target sum n is negative.
	ErrBadSum = errors.New("simplex: target sum must be a nonnegative integer")
	// ErrPointLength indicates a point whose length differs from the number of parts.
	ErrPointLength = errors.New("simplex: point length must equal the number of parts")
	// ErrPointValue indicates a point with a negative entry or the wrong coordinate sum.
	ErrPointValue = errors.New("simplex: point entries must be nonnegative and sum to the target")
	// ErrRankRange indicates a requested rank outside [0, size-1].
	ErrRankRange = errors.New("simplex: rank out of range")
	// ErrExhausted signals that a generator has yielded every point; it marks
	// normal termination of the sequence, not a failure.
	ErrExhausted = errors.New("simplex: generator exhausted")
	// ErrGridTooLarge indicates the full table cannot be materialized in memory.
	ErrGridTooLarge = errors.New("simplex: grid too large to materialize; use the lazy generator")
	// ErrNoSubdivisions indicates a unit grid was requested with n < 1.
	ErrNoSubdivisions = errors.New("simplex: unit grid requires at least one subdivision")
)
