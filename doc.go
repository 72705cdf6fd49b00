// Package simplexgrid enumerates, ranks and unranks the integer lattice
// points of a scaled standard simplex — equivalently, the m-part
// compositions of a nonnegative integer n — in exact lexicographic order.
//
// 🚀 What is simplexgrid?
//
//	A small, focused combinatorics library that brings together:
//		• Counting: the exact number of grid points, C(n+m-1, m-1), via math/big
//		• Batch enumeration: the full L×m table in lexicographic order
//		• Lazy enumeration: a one-pass generator yielding one point at a time
//		• Ranking: the lexicographic index of a point in closed form
//		• Unranking: the point at a given index, walked or computed directly
//
// ✨ Why choose simplexgrid?
//
//   - Exact everywhere – counts and ranks are *big.Int, never rounded
//   - Minimal-change stepping – each point derives from the previous in O(m)
//   - Pure Go core – the library depends on the standard library alone
//   - Lazy-friendly – grids too large to materialize can still be streamed
//
// Everything lives under two packages:
//
//	simplex/        — counting, enumeration, ranking, and the Grid facade
//	cmd/simplexgrid — a thin CLI printing grids, counts, ranks and points
//
// Quick ASCII example, the grid for m=3, n=2:
//
//	(0,0,2) (0,1,1) (0,2,0) (1,0,1) (1,1,0) (2,0,0)
//
//	six points, listed left to right in lexicographic order.
//
// Dive into simplex/doc.go for the algorithmic details and complexity notes.
//
//	go get github.com/katalvlaran/simplexgrid/simplex
package simplexgrid
