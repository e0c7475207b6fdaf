// SPDX-License-Identifier: MIT

package analyzer

import (
	"fmt"

	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/signature"
)

// ColumnProfile is the vertical scan of column n of the divisibility grid.
//
//   - Divisors: rows i with G[i,n] > 0.
//   - Angles:   atan2(d, n) in degrees (2 decimals), one per divisor d,
//     i.e. the angle of the point (n, d).
//   - Prime:    exactly two divisors (1 and n).
//   - Density:  |Divisors| / n, the share of the column that is active.
type ColumnProfile struct {
	N        int       `json:"n" yaml:"n"`
	Divisors []int     `json:"divisors" yaml:"divisors"`
	Angles   []float64 `json:"angles" yaml:"angles"`
	Prime    bool      `json:"prime" yaml:"prime"`
	Density  float64   `json:"density" yaml:"density"`
}

// Column scans column n of g. It fails with grid.ErrOutOfRange when n is
// outside [1, N] and grid.ErrNilGrid when g is nil.
// Complexity: O(N).
func Column(g *grid.Grid, n int) (*ColumnProfile, error) {
	divs, err := g.ColumnDivisors(n)
	if err != nil {
		return nil, fmt.Errorf("Column: %w", err)
	}
	prof := &ColumnProfile{
		N:        n,
		Divisors: divs,
		Angles:   make([]float64, len(divs)),
		Prime:    len(divs) == 2,
		Density:  float64(len(divs)) / float64(n),
	}
	for i, d := range divs {
		prof.Angles[i] = signature.Angle(d, n, signature.Degrees)
	}

	return prof, nil
}
