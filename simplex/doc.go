// Package simplex enumerates and ranks the integer points of the scaled
// (m-1)-dimensional standard simplex {x ∈ ℕ^m : x_0 + ... + x_{m-1} = n},
// equivalently the m-part compositions of n, in lexicographic order.
//
// What:
//
//   - NumCompositions counts the points: L = C(n+m-1, m-1), exact via math/big.
//   - Enumerate materializes the full L×m table in lexicographic order.
//   - Generator yields points one at a time without building the table.
//   - Rank / RankRecursive compute the lexicographic index of a point in
//     closed form, without enumerating its predecessors.
//   - Unrank inverts Rank, computing the point at a given index directly.
//   - Grid composes the above into one indexable, iterable facade.
//
// Why:
//
//   - Probability: grids over discrete distributions with m outcomes.
//   - Game theory: mixed-strategy simplices at fixed resolution.
//   - Allocation: every way to split n indivisible units across m bins.
//
// Algorithm:
//
//	Enumeration uses the minimal-change compositions scheme of
//	Nijenhuis & Wilf (Combinatorial Algorithms, Ch. 5): each point is
//	derived from its predecessor by moving weight between at most three
//	coordinates. Ranking subtracts closed-form binomial block counts from
//	L-1 along the point's suffix sums.
//
// Complexity:
//
//   - NumCompositions: one big-integer binomial, exact for any m, n.
//   - Enumerate:  O(L·m) time and memory. L grows combinatorially in m and
//     n — prefer the Generator when the table would not fit.
//   - Generator:  O(m) per point, O(m) memory.
//   - Rank:       O(m) binomial evaluations.
//   - Unrank:     O(n·m) binomial evaluations.
//   - Grid.At:    O(rank·m) — it replays the generator from the start.
//
// Errors:
//
//   - ErrBadParts: m < 1.
//   - ErrBadSum: n < 0.
//   - ErrPointLength: ranked point has length ≠ m.
//   - ErrPointValue: ranked point has a negative entry or does not sum to n.
//   - ErrRankRange: requested rank outside [0, L-1].
//   - ErrExhausted: the generator has already yielded all L points.
//   - ErrGridTooLarge: L exceeds the addressable table size; stream instead.
//   - ErrNoSubdivisions: unit grid requested with n < 1.
package simplex
