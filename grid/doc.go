// SPDX-License-Identifier: MIT

// Package grid provides the dense integer matrices behind the Guasti toolkit:
// the divisibility grid G and the multiplication grid P over a fixed bound N.
//
// 🚀 What is a grid?
//
//	A Grid is an immutable (N+1)×(N+1) row-major matrix of int64 values.
//	Row and column 0 are reserved and always zero, so cell (i, j) is addressed
//	by the integers it describes, never by an off-by-one offset.
//
//	    G[i,j] = j    if i divides j, else 0   (divisibility grid)
//	    P[i,j] = i·j                           (multiplication grid)
//
// ✨ Key features:
//   - Flat []int64 backing store indexed by i*(N+1)+j with explicit bound checks.
//   - At/Row/Column/Diagonal return errors or copies; nothing exposes the buffer.
//   - Combine applies an element-wise kernel to two grids of the same bound and
//     always allocates a fresh result (inputs are never aliased or mutated).
//   - ColumnDivisors reads the divisors of n straight off column n of G.
//   - ToGonum exports a float64 copy for linear-algebra or plotting consumers.
//
// Numeric policy:
//
//	Storage is int64. Every grid allocates (N+1)² cells up front, so the
//	bound is capped by memory: MaxCells = 2²⁴ cells (128 MiB per grid) gives
//	MaxBound = 4095. The largest value any derived grid holds is N³ (the
//	multiplicative diagonal), well inside int64 at that bound.
//	NewDivisibility/NewMultiplication fail fast with ErrInvalidBound outside
//	[1, MaxBound], before anything is allocated.
//
// Complexity:
//
//   - Construction: O(N²) time and memory.
//   - At: O(1); Row/Column/Diagonal: O(N); ColumnDivisors: O(N).
package grid
