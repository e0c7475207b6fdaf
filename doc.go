// SPDX-License-Identifier: MIT

// Package guasti is a toolkit for the Guasti divisibility grid.
//
// The grid G marks (i, j) active when i divides j and stores j there; the
// multiplication grid P stores i·j. Overlaying the two with an element-wise
// operation gives a palimpsest, and the diagonals and first rows of those
// palimpsests carry familiar sequences:
//
//	additive        G+P   diagonal n(n+1)           oblong numbers
//	multiplicative  G·P   diagonal n³, row 1 j²     cubes, squares
//	pgcd            gcd   whole matrix equals G
//	difference      |G−P| diagonal n(n−1), row 1 0
//	ratio           P/G   i wherever i divides j
//
// The packages:
//
//	grid/       bounded dense integer grids, G and P builders, element-wise combine
//	divisor/    divisors, divisor pairs, primality, perfect squares
//	palimpsest/ the five overlay kinds and their builders
//	signature/  angular signature atan2(b, a) over divisor pairs, twin-prime convergence
//	analyzer/   closed-form verification, concurrent sweeps, column profiles
//	report/     text, JSON and YAML output, matrix and heatmap views
//	extension/  best-effort detection of the guasti-transform companion
//	cmd/guasti  the command-line front end
//
// Quick start:
//
//	rep, err := analyzer.Analyze(20)
//	if err != nil { ... }
//	fmt.Println(rep.Verified(), rep.GCDEqualsG)
package guasti
