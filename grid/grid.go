// SPDX-License-Identifier: MIT

// Package grid - dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*size + j.
//   - Guarantee safety at the public surface: At returns errors instead of panicking.
//   - Keep every read-only accessor allocation-explicit (Row/Column/Diagonal copy out).
//
// Complexity quicksheet:
//   - At: O(1); Row/Column: O(N); Diagonal: O(N); Equal: O(N²); Clone: O(N²).

package grid

import (
	"fmt"
	"strings"
)

// MaxCells caps the (N+1)² cells of one grid: 2²⁴ int64 cells is 128 MiB,
// so a full palimpsest set (seven grids) stays under 1 GiB.
const MaxCells = 1 << 24

// MaxBound is the largest accepted N, derived from MaxCells: (MaxBound+1)² == MaxCells.
// Values are far from int64 overflow there (the largest cell is N³ ≈ 6.9e10).
const MaxBound = 4095

// ---------- error context tags ----------

const (
	opAt             = "At"
	opRow            = "Row"
	opColumn         = "Column"
	opColumnDivisors = "ColumnDivisors"
	opFromFunc       = "FromFunc"
	opCombine        = "Combine"
	opEqual          = "Equal"
)

// Grid is an immutable (N+1)×(N+1) integer matrix.
//   - n is the bound N; size == n+1 is the row/column count.
//   - data is a flat buffer of length size*size in row-major order.
//
// Row 0 and column 0 are always zero. A Grid never changes after construction,
// so it is safe for concurrent readers.
type Grid struct {
	n    int
	size int
	data []int64
}

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Grid)(nil)

// newGrid allocates a zero grid for bound n. Callers validate n first.
func newGrid(n int) *Grid {
	size := n + 1
	return &Grid{n: n, size: size, data: make([]int64, size*size)}
}

// Bound returns N, the largest row/column index carrying data.
func (g *Grid) Bound() int { return g.n }

// Size returns N+1, the number of rows (and columns) including the zero border.
func (g *Grid) Size() int { return g.size }

// indexOf computes the flat offset for (i, j) or returns ErrOutOfRange.
// Stage 1 (Validate): 0 ≤ i,j ≤ N.
// Stage 2 (Execute): i*size + j.
func (g *Grid) indexOf(op string, i, j int) (int, error) {
	if i < 0 || i >= g.size || j < 0 || j >= g.size {
		return 0, cellErrorf(op, i, j, ErrOutOfRange)
	}

	return i*g.size + j, nil
}

// At returns the value stored at (i, j).
// Returns ErrOutOfRange when either index is outside [0, N].
// Complexity: O(1).
func (g *Grid) At(i, j int) (int64, error) {
	if g == nil {
		return 0, cellErrorf(opAt, i, j, ErrNilGrid)
	}
	idx, err := g.indexOf(opAt, i, j)
	if err != nil {
		return 0, err
	}

	return g.data[idx], nil
}

// Active reports whether cell (i, j) holds a relation (a non-zero value).
// Out-of-range coordinates are simply inactive; presentation layers use this
// as the zero mask.
func (g *Grid) Active(i, j int) bool {
	v, err := g.At(i, j)
	return err == nil && v != 0
}

// Row returns a copy of row i over columns 1..N (the zero border is skipped).
// Returns ErrOutOfRange when i is outside [1, N].
// Complexity: O(N).
func (g *Grid) Row(i int) ([]int64, error) {
	if g == nil {
		return nil, gridErrorf(opRow, ErrNilGrid)
	}
	if i < 1 || i > g.n {
		return nil, cellErrorf(opRow, i, 0, ErrOutOfRange)
	}
	out := make([]int64, g.n)
	copy(out, g.data[i*g.size+1:(i+1)*g.size])

	return out, nil
}

// Column returns a copy of column j over rows 1..N.
// Returns ErrOutOfRange when j is outside [1, N].
// Complexity: O(N), strided reads.
func (g *Grid) Column(j int) ([]int64, error) {
	if g == nil {
		return nil, gridErrorf(opColumn, ErrNilGrid)
	}
	if j < 1 || j > g.n {
		return nil, cellErrorf(opColumn, 0, j, ErrOutOfRange)
	}
	out := make([]int64, g.n)
	for i := 1; i <= g.n; i++ {
		out[i-1] = g.data[i*g.size+j]
	}

	return out, nil
}

// Diagonal returns a copy of the main diagonal over indices 1..N:
// out[k-1] = g[k,k].
// Complexity: O(N).
func (g *Grid) Diagonal() []int64 {
	if g == nil {
		return nil
	}
	out := make([]int64, g.n)
	step := g.size + 1 // diagonal stride in the flat buffer
	for k := 1; k <= g.n; k++ {
		out[k-1] = g.data[k*step]
	}

	return out
}

// ColumnDivisors returns the row indices i (ascending) with g[i,n] > 0.
// On a divisibility grid these are exactly the divisors of n.
//
// Errors:
//   - ErrOutOfRange when n > N (the grid does not cover n) or n < 1.
//
// Complexity: O(N).
func (g *Grid) ColumnDivisors(n int) ([]int, error) {
	if g == nil {
		return nil, gridErrorf(opColumnDivisors, ErrNilGrid)
	}
	if n < 1 || n > g.n {
		return nil, fmt.Errorf("%s(%d): N=%d: %w", opColumnDivisors, n, g.n, ErrOutOfRange)
	}
	var out []int
	for i := 1; i <= g.n; i++ {
		if g.data[i*g.size+n] > 0 {
			out = append(out, i)
		}
	}

	return out, nil
}

// Equal reports whether a and b have the same bound and identical cells.
// Returns ErrNilGrid for nil operands and ErrBoundMismatch for different bounds.
// Complexity: O(N²), early exit on the first differing cell.
func Equal(a, b *Grid) (bool, error) {
	if err := ValidateSameBound(a, b); err != nil {
		return false, gridErrorf(opEqual, err)
	}
	for idx, v := range a.data {
		if b.data[idx] != v {
			return false, nil
		}
	}

	return true, nil
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	if g == nil {
		return nil
	}
	out := newGrid(g.n)
	copy(out.data, g.data)

	return out
}

// String renders the data region (rows/cols 1..N), one bracketed row per line.
// Intended for debugging small grids.
func (g *Grid) String() string {
	if g == nil {
		return "<nil>"
	}
	var sb strings.Builder
	for i := 1; i <= g.n; i++ {
		sb.WriteString("[")
		for j := 1; j <= g.n; j++ {
			if j > 1 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%d", g.data[i*g.size+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
