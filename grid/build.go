// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Construct the two base grids (divisibility G, multiplication P) and
//     arbitrary cell-function grids for callers outside the package.
//
// Determinism:
//   - Fixed i→j loop order; construction depends on N only.

package grid

// CellFunc computes the value of cell (i, j) for 1 ≤ i,j ≤ N.
type CellFunc func(i, j int) int64

// NewDivisibility builds G: G[i,j] = j when i divides j, else 0.
//
// Implementation:
//   - Stage 1: validate N.
//   - Stage 2: for each row i, walk the multiples j = i, 2i, 3i, … ≤ N and
//     store the multiple itself (not a flag, not the divisor).
//
// The stored value is load-bearing: it is what makes the palimpsests produce
// the oblong, cube and square diagonals.
//
// Complexity: O(N²) memory for the buffer, O(N log N) writes (harmonic sum).
func NewDivisibility(n int) (*Grid, error) {
	if err := ValidateBound(n); err != nil {
		return nil, gridErrorf("NewDivisibility", err)
	}
	g := newGrid(n)
	for i := 1; i <= n; i++ {
		base := i * g.size
		for j := i; j <= n; j += i {
			g.data[base+j] = int64(j)
		}
	}

	return g, nil
}

// NewMultiplication builds P: P[i,j] = i·j, with a zero border at index 0.
// Complexity: O(N²).
func NewMultiplication(n int) (*Grid, error) {
	if err := ValidateBound(n); err != nil {
		return nil, gridErrorf("NewMultiplication", err)
	}
	g := newGrid(n)
	for i := 1; i <= n; i++ {
		base := i * g.size
		row := int64(i)
		for j := 1; j <= n; j++ {
			g.data[base+j] = row * int64(j)
		}
	}

	return g, nil
}

// FromFunc builds a grid whose cells (i, j), 1 ≤ i,j ≤ N, are fn(i, j).
// The zero border is never passed to fn.
// Returns ErrInvalidBound or ErrNilKernel.
func FromFunc(n int, fn CellFunc) (*Grid, error) {
	if err := ValidateBound(n); err != nil {
		return nil, gridErrorf(opFromFunc, err)
	}
	if fn == nil {
		return nil, gridErrorf(opFromFunc, ErrNilKernel)
	}
	g := newGrid(n)
	for i := 1; i <= n; i++ {
		base := i * g.size
		for j := 1; j <= n; j++ {
			g.data[base+j] = fn(i, j)
		}
	}

	return g, nil
}
