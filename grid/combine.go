// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - The one element-wise kernel every palimpsest is built on.
//
// Design:
//   - Inputs are read-only; the output is always a fresh allocation.
//   - The kernel sees raw cell values (zeros included) and owns its own
//     zero policy; Combine never special-cases anything.

package grid

// CombineFunc maps a pair of aligned cell values to the output cell value.
type CombineFunc func(a, b int64) int64

// Combine computes out[i,j] = fn(a[i,j], b[i,j]) for every cell, border included.
//
// Errors:
//   - ErrNilGrid / ErrBoundMismatch from ValidateSameBound.
//   - ErrNilKernel when fn is nil.
//
// Determinism:
//   - Single flat pass 0..(N+1)²-1.
//
// Complexity:
//   - Time O(N²), Space O(N²) for the output.
func Combine(a, b *Grid, fn CombineFunc) (*Grid, error) {
	if err := ValidateSameBound(a, b); err != nil {
		return nil, gridErrorf(opCombine, err)
	}
	if fn == nil {
		return nil, gridErrorf(opCombine, ErrNilKernel)
	}
	out := newGrid(a.n)
	for idx := range out.data {
		out.data[idx] = fn(a.data[idx], b.data[idx])
	}

	return out, nil
}

// Cells calls visit for every data cell (i, j), 1 ≤ i,j ≤ N, in row-major order.
// Iteration stops early when visit returns false.
func (g *Grid) Cells(visit func(i, j int, v int64) bool) {
	if g == nil || visit == nil {
		return
	}
	for i := 1; i <= g.n; i++ {
		base := i * g.size
		for j := 1; j <= g.n; j++ {
			if !visit(i, j, g.data[base+j]) {
				return
			}
		}
	}
}
