// SPDX-License-Identifier: MIT
// Package: analyzer
//
// Purpose:
//   - Extract diagonals/rows from every palimpsest and compare them with their
//     closed forms; check the two full-matrix identities (pgcd ≡ G, ratio ≡ i).
//
// Determinism:
//   - Pure function of N. Sequences are index 1..N; the zero border never appears.

package analyzer

import (
	"fmt"
	"slices"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/palimpsest"
)

// closedForm is a reference sequence generator for index k = 1..N.
type closedForm func(k int64) int64

func oblong(k int64) int64    { return k * (k + 1) }
func cube(k int64) int64      { return k * k * k }
func square(k int64) int64    { return k * k }
func pronicLow(k int64) int64 { return k * (k - 1) }
func zero(int64) int64        { return 0 }

// sequence materializes f over 1..n.
func sequence(n int, f closedForm) []int64 {
	out := make([]int64, n)
	for k := 1; k <= n; k++ {
		out[k-1] = f(int64(k))
	}

	return out
}

// compare builds a Check from an extracted slice and its closed form.
func compare(s Slice, formula, structure string, extracted []int64, f closedForm) Check {
	ref := sequence(len(extracted), f)

	return Check{
		Slice:     s,
		Formula:   formula,
		Structure: structure,
		Extracted: extracted,
		Reference: ref,
		Match:     slices.Equal(extracted, ref),
	}
}

// Analyze builds G, P and the five palimpsests for bound n and verifies their
// closed-form identities.
//
// Errors:
//   - grid.ErrInvalidBound when n is outside [1, grid.MaxBound]. Every valid
//     bound yields a report; a false Match is a finding, not an error.
//
// Complexity: O(N²) time and memory.
func Analyze(n int, opts ...Option) (*Report, error) {
	cfg := gatherConfig(opts)
	start := time.Now()

	set, err := palimpsest.BuildAll(n)
	if err != nil {
		return nil, fmt.Errorf("Analyze(%d): %w", n, err)
	}
	rep, err := analyzeSet(set)
	if err != nil {
		return nil, fmt.Errorf("Analyze(%d): %w", n, err)
	}

	cfg.logger.Debug("palimpsests analyzed",
		zap.Int("bound", n),
		zap.Bool("verified", rep.Verified()),
		zap.Strings("failed", rep.Failed()),
		zap.Duration("elapsed", time.Since(start)),
	)

	return rep, nil
}

// analyzeSet runs every check over an already built set.
func analyzeSet(set *palimpsest.Set) (*Report, error) {
	n := set.N
	get := func(k palimpsest.Kind) *grid.Grid { return set.Palimpsests[k] }

	add, mul, pg, diff, ratio := get(palimpsest.Additive), get(palimpsest.Multiplicative),
		get(palimpsest.GCD), get(palimpsest.Difference), get(palimpsest.Ratio)

	mulRow1, err := mul.Row(1)
	if err != nil {
		return nil, err
	}
	diffRow1, err := diff.Row(1)
	if err != nil {
		return nil, err
	}
	gcdEq, err := grid.Equal(pg, set.G)
	if err != nil {
		return nil, err
	}

	rep := &Report{
		N:          n,
		Entries:    make(map[palimpsest.Kind]Entry, len(palimpsest.Kinds())),
		GCDEqualsG: gcdEq,
		Hierarchy: Hierarchy{
			Divisibility:   set.G.Diagonal(),
			Multiplication: set.P.Diagonal(),
			Multiplicative: mul.Diagonal(),
		},
	}

	rep.Entries[palimpsest.Additive] = Entry{Kind: palimpsest.Additive, Checks: []Check{
		compare(SliceDiagonal, "n + n^2 = n(n+1)", "oblong numbers", add.Diagonal(), oblong),
	}}
	rep.Entries[palimpsest.Multiplicative] = Entry{Kind: palimpsest.Multiplicative, Checks: []Check{
		compare(SliceDiagonal, "n * n^2 = n^3", "perfect cubes", mul.Diagonal(), cube),
		compare(SliceRow1, "j * j = j^2", "perfect squares", mulRow1, square),
	}}
	rep.Entries[palimpsest.GCD] = Entry{Kind: palimpsest.GCD, Checks: []Check{{
		Slice:     SliceMatrix,
		Formula:   "gcd(j, i*j) = j",
		Structure: "divisibility grid (irreducible kernel of P)",
		Match:     gcdEq,
	}}}
	rep.Entries[palimpsest.Difference] = Entry{Kind: palimpsest.Difference, Checks: []Check{
		compare(SliceDiagonal, "|n - n^2| = n(n-1)", "pronic shift", diff.Diagonal(), pronicLow),
		compare(SliceRow1, "|j - j| = 0", "zero row", diffRow1, zero),
	}}
	rep.Entries[palimpsest.Ratio] = Entry{Kind: palimpsest.Ratio, Checks: []Check{{
		Slice:     SliceMatrix,
		Formula:   "(i*j) // j = i",
		Structure: "row index wherever i divides j",
		Match:     ratioIsRowIndex(set.G, set.P, ratio),
	}}}

	return rep, nil
}

// ratioIsRowIndex checks ratio[i,j] == i and ratio[i,j]·G[i,j] == P[i,j]
// wherever G[i,j] > 0, and ratio == 0 elsewhere.
func ratioIsRowIndex(g, p, ratio *grid.Grid) bool {
	ok := true
	ratio.Cells(func(i, j int, r int64) bool {
		gv, _ := g.At(i, j)
		if gv == 0 {
			ok = r == 0
			return ok
		}
		pv, _ := p.At(i, j)
		ok = r == int64(i) && r*gv == pv
		return ok
	})

	return ok
}
