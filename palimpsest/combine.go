// SPDX-License-Identifier: MIT
// Package: palimpsest
//
// Purpose:
//   - Cell kernels for the five overlays and the facades that run them through
//     grid.Combine.
//
// Zero policy:
//   - 0 in G or P means "no relation", never "undefined". GCD and Ratio return 0
//     for such cells; Additive/Multiplicative/Difference need no special case.
//
// Overflow:
//   - Cells stay within int64 for N ≤ grid.MaxBound (max cell is N³).
//     Difference subtracts on signed int64 before taking the magnitude.

package palimpsest

import (
	"fmt"

	"github.com/katalvlaran/guasti/grid"
)

// operation name constants for uniform error wrapping.
const (
	opCombine  = "Combine"
	opBuild    = "Build"
	opBuildAll = "BuildAll"
)

func addCell(g, p int64) int64 { return g + p }

func mulCell(g, p int64) int64 { return g * p }

func gcdCell(g, p int64) int64 {
	if g <= 0 || p <= 0 {
		return 0
	}

	return gcd(g, p)
}

func diffCell(g, p int64) int64 {
	d := g - p
	if d < 0 {
		return -d
	}

	return d
}

func ratioCell(g, p int64) int64 {
	if g <= 0 {
		return 0
	}

	return p / g
}

// gcd is Euclid's algorithm on positive operands.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// kernels is indexed by Kind.
var kernels = [...]grid.CombineFunc{
	Additive:       addCell,
	Multiplicative: mulCell,
	GCD:            gcdCell,
	Difference:     diffCell,
	Ratio:          ratioCell,
}

// Kernel returns the cell function of k, for callers that need a single cell
// without materializing a grid.
func Kernel(k Kind) (grid.CombineFunc, error) {
	if !k.Valid() {
		return nil, palimpsestErrorf("Kernel", k, ErrUnknownKind)
	}

	return kernels[k], nil
}

// Combine overlays g (divisibility) and p (multiplication) with the kernel of k.
//
// Errors:
//   - ErrUnknownKind for an invalid k.
//   - grid.ErrNilGrid / grid.ErrBoundMismatch when g and p are not a pair of
//     grids built for the same bound.
//
// Complexity: O(N²) time and space; g and p are never modified.
func Combine(k Kind, g, p *grid.Grid) (*grid.Grid, error) {
	if !k.Valid() {
		return nil, palimpsestErrorf(opCombine, k, ErrUnknownKind)
	}
	out, err := grid.Combine(g, p, kernels[k])
	if err != nil {
		return nil, palimpsestErrorf(opCombine, k, err)
	}

	return out, nil
}

// AdditiveOf returns G + P. Diagonal: n + n² = n(n+1).
func AdditiveOf(g, p *grid.Grid) (*grid.Grid, error) { return Combine(Additive, g, p) }

// MultiplicativeOf returns G · P. Diagonal: n³; row 1: j².
func MultiplicativeOf(g, p *grid.Grid) (*grid.Grid, error) { return Combine(Multiplicative, g, p) }

// GCDOf returns gcd(G, P) where both cells are positive, else 0.
// Since gcd(j, i·j) = j, the result equals G cell for cell.
func GCDOf(g, p *grid.Grid) (*grid.Grid, error) { return Combine(GCD, g, p) }

// DifferenceOf returns |G − P|. Row 1 is all zero because G[1,j] = P[1,j] = j.
func DifferenceOf(g, p *grid.Grid) (*grid.Grid, error) { return Combine(Difference, g, p) }

// RatioOf returns P ÷ G (integer) where G is positive, else 0.
// Wherever G[i,j] > 0 the quotient is exactly i.
func RatioOf(g, p *grid.Grid) (*grid.Grid, error) { return Combine(Ratio, g, p) }

// Base builds the pair (G, P) for bound n.
func Base(n int) (g, p *grid.Grid, err error) {
	if g, err = grid.NewDivisibility(n); err != nil {
		return nil, nil, err
	}
	if p, err = grid.NewMultiplication(n); err != nil {
		return nil, nil, err
	}

	return g, p, nil
}

// Build constructs G and P for bound n and returns the palimpsest of kind k.
func Build(k Kind, n int) (*grid.Grid, error) {
	if !k.Valid() {
		return nil, palimpsestErrorf(opBuild, k, ErrUnknownKind)
	}
	g, p, err := Base(n)
	if err != nil {
		return nil, palimpsestErrorf(opBuild, k, err)
	}

	return Combine(k, g, p)
}

// Set holds the two base grids and all five palimpsests for one bound.
// It is a plain value bundle; every grid inside is independent and immutable.
type Set struct {
	N           int
	G, P        *grid.Grid
	Palimpsests map[Kind]*grid.Grid
}

// BuildAll constructs G, P and every palimpsest for bound n.
// G and P are built once and shared read-only by the five combinations.
// Complexity: O(N²) time, 7·(N+1)² cells of memory.
func BuildAll(n int) (*Set, error) {
	g, p, err := Base(n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opBuildAll, err)
	}
	set := &Set{N: n, G: g, P: p, Palimpsests: make(map[Kind]*grid.Grid, len(kernels))}
	for _, k := range Kinds() {
		out, err := Combine(k, g, p)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", opBuildAll, err)
		}
		set.Palimpsests[k] = out
	}

	return set, nil
}

// Get returns the palimpsest of kind k from the set.
func (s *Set) Get(k Kind) (*grid.Grid, error) {
	if s == nil {
		return nil, palimpsestErrorf("Set.Get", k, grid.ErrNilGrid)
	}
	out, ok := s.Palimpsests[k]
	if !ok {
		return nil, palimpsestErrorf("Set.Get", k, ErrUnknownKind)
	}

	return out, nil
}
