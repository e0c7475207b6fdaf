// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/divisor"
	"github.com/katalvlaran/guasti/signature"
)

// WriteSignature renders the angular profile of one integer: its divisor
// pairs with their angles, the sorted signature and the 45°/prime markers.
func WriteSignature(w io.Writer, prof signature.Profile, f Format) error {
	return encode("WriteSignature", w, f, prof, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "n = %d  (%s)\n", prof.N, prof.Unit)
		if prof.N < 1 {
			sb.WriteString("  nothing to report\n")
			return
		}
		fmt.Fprintf(sb, "  divisors   %v  tau=%d\n", prof.Divisors, prof.Tau)
		for _, p := range prof.Pairs {
			mark := ""
			if p.Is45 {
				mark = "  <- 45°"
			}
			fmt.Fprintf(sb, "  (%d, %d)  %.2f%s\n", p.A, p.B, p.Angle, mark)
		}
		fmt.Fprintf(sb, "  signature  %v\n", prof.Signature)
		switch {
		case prof.Square:
			fmt.Fprintf(sb, "  perfect square: %d^2\n", prof.Root)
		case prof.Prime:
			sb.WriteString("  prime: single pair (1, n)\n")
		}
	})
}

type divisorsDoc struct {
	N        int            `json:"n" yaml:"n"`
	Divisors []int          `json:"divisors" yaml:"divisors"`
	Pairs    []divisor.Pair `json:"pairs" yaml:"pairs"`
}

// WriteDivisors renders the divisors of n and its pairs (a, b) with a ≤ b.
func WriteDivisors(w io.Writer, n int, divs []int, pairs []divisor.Pair, f Format) error {
	doc := divisorsDoc{N: n, Divisors: divs, Pairs: pairs}

	return encode("WriteDivisors", w, f, doc, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "n = %d\n", n)
		fmt.Fprintf(sb, "  divisors  %v\n", divs)
		sb.WriteString("  pairs    ")
		for _, p := range pairs {
			fmt.Fprintf(sb, " (%d,%d)", p.A, p.B)
		}
		sb.WriteByte('\n')
	})
}

// WriteColumn renders the vertical scan of one divisibility column.
func WriteColumn(w io.Writer, prof *analyzer.ColumnProfile, f Format) error {
	if prof == nil {
		return reportErrorf("WriteColumn", ErrNilValue)
	}

	return encode("WriteColumn", w, f, prof, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "column %d\n", prof.N)
		for i, d := range prof.Divisors {
			fmt.Fprintf(sb, "  row %-6d %6.2f°\n", d, prof.Angles[i])
		}
		fmt.Fprintf(sb, "  prime    %t\n", prof.Prime)
		fmt.Fprintf(sb, "  density  %.4f\n", prof.Density)
	})
}

// WriteTwins renders the twin-prime convergence table toward 45°.
func WriteTwins(w io.Writer, sum *signature.ConvergenceSummary, f Format) error {
	if sum == nil {
		return reportErrorf("WriteTwins", ErrNilValue)
	}

	return encode("WriteTwins", w, f, sum, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "%-8s %-8s %s\n", "p", "angle", "deviation")
		for _, pt := range sum.Points {
			fmt.Fprintf(sb, "%-8d %-8.2f %+.2f\n", pt.P, pt.Angle, pt.Deviation)
		}
		fmt.Fprintf(sb, "monotonic       %t\n", sum.Monotonic)
		fmt.Fprintf(sb, "mean deviation  %.4f\n", sum.MeanDeviation)
		fmt.Fprintf(sb, "mean (θ-45)·p   %.3f\n", sum.MeanScaled)
		fmt.Fprintf(sb, "corr(dev, 1/p)  %.4f\n", sum.Correlation)
	})
}
