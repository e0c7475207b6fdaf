// SPDX-License-Identifier: MIT

// Package analyzer verifies the closed-form structure hidden in the palimpsests.
//
// Analyze(N) builds G, P and the five overlays for bound N, extracts their
// diagonals and first rows, and compares each against its reference sequence:
//
//	additive        diagonal  n(n+1)   oblong numbers
//	multiplicative  diagonal  n³       perfect cubes
//	multiplicative  row 1     j²       perfect squares
//	difference      diagonal  n(n−1)   pronic shift
//	difference      row 1     0        zero row
//	pgcd            matrix    = G      irreducible kernel of P
//	ratio           matrix    = i      row index wherever G > 0
//
// The result is a Report keyed by palimpsest kind. Analyze is a pure function
// of N; Sweep fans several bounds out over an errgroup for callers that want
// many reports at once.
//
// Column(G, n) is the vertical scan of a single column of the divisibility
// grid: divisors, per-divisor angles, primality and vertical density.
package analyzer
