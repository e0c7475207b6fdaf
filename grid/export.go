// SPDX-License-Identifier: MIT

package grid

import "gonum.org/v1/gonum/mat"

// ToGonum returns an independent float64 copy of g as a gonum *mat.Dense of
// shape (N+1)×(N+1), zero border included.
//
// Values above 2⁵³ lose precision in the conversion; the copy is meant for
// plotting and floating-point analysis, not for identity checks.
func (g *Grid) ToGonum() *mat.Dense {
	if g == nil {
		return nil
	}
	buf := make([]float64, len(g.data))
	for idx, v := range g.data {
		buf[idx] = float64(v)
	}

	return mat.NewDense(g.size, g.size, buf)
}
