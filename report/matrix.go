// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/guasti/grid"
)

// WriteMatrix prints the data region (rows and columns 1..N) of g using
// gonum's matrix formatter. The zero border is not shown.
func WriteMatrix(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return reportErrorf("WriteMatrix", grid.ErrNilGrid)
	}
	n := g.Bound()
	data := g.ToGonum().Slice(1, n+1, 1, n+1)
	if _, err := fmt.Fprintf(w, "%v\n", mat.Formatted(data, mat.Squeeze())); err != nil {
		return reportErrorf("WriteMatrix", err)
	}

	return nil
}

// WriteHeatmap prints g as a masked grid: active cells show their value and
// inactive (zero) cells show '.', every column right-aligned to the widest
// value.
//
//	N=4 divisibility grid:
//	1 2 3 4
//	. 2 . 4
//	. . 3 .
//	. . . 4
func WriteHeatmap(w io.Writer, g *grid.Grid) error {
	if g == nil {
		return reportErrorf("WriteHeatmap", grid.ErrNilGrid)
	}
	n := g.Bound()

	width := 1
	g.Cells(func(_, _ int, v int64) bool {
		if l := len(strconv.FormatInt(v, 10)); l > width {
			width = l
		}
		return true
	})

	var sb strings.Builder
	for i := 1; i <= n; i++ {
		for j := 1; j <= n; j++ {
			if j > 1 {
				sb.WriteByte(' ')
			}
			cell := "."
			if g.Active(i, j) {
				v, _ := g.At(i, j)
				cell = strconv.FormatInt(v, 10)
			}
			fmt.Fprintf(&sb, "%*s", width, cell)
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return reportErrorf("WriteHeatmap", err)
	}

	return nil
}
