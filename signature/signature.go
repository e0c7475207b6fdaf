// SPDX-License-Identifier: MIT

package signature

import (
	"math"
	"sort"

	"github.com/katalvlaran/guasti/divisor"
)

// round2 rounds x to Decimals places, half away from zero.
func round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// Angle returns atan2(b, a) in unit u, rounded to two decimals: the angle of
// the point (a, b) seen from the origin.
func Angle(b, a int, u Unit) float64 {
	theta := math.Atan2(float64(b), float64(a))
	if u == Degrees {
		theta = theta * 180 / math.Pi
	}

	return round2(theta)
}

// Of returns the angular signature of n: one rounded angle atan2(b, a) per
// divisor pair (a, b), sorted ascending. For n < 1 it returns nil.
//
// Only WithUnit affects the result; the tolerance option is ignored here.
// Complexity: O(√n).
func Of(n int, opts ...Option) []float64 {
	if n < 1 {
		return nil
	}
	o := gatherOptions(opts)
	pairs := divisor.Pairs(n)
	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = Angle(p.B, p.A, o.Unit)
	}
	// Pairs come by increasing a, i.e. decreasing angle.
	sort.Float64s(out)

	return out
}

// bandSlack absorbs the float error of subtracting two rounded angles
// (45.01 − 45 evaluates just below 0.01).
const bandSlack = 1e-9

// near45 reports whether the pair (a, b) sits strictly within tol of 45°,
// judged on its rounded degree angle.
//
// Rounding collapses (k, k+1) onto 45.00 once k exceeds about 5700, so a
// rounded 45.00 only counts for the diagonal pair a == b.
func near45(a, b int, tol float64) bool {
	deg := Angle(b, a, Degrees)
	if deg == Right {
		return a == b && tol > 0
	}

	return math.Abs(deg-Right) < tol-bandSlack
}

// Contains45 reports whether some angle of n's degree signature lies strictly
// within the tolerance (WithTolerance, default 0.01) of 45°.
// With the default tolerance it is true exactly for perfect squares, for every
// n ≥ 1. A zero tolerance never matches.
// Complexity: O(√n).
func Contains45(n int, opts ...Option) bool {
	o := gatherOptions(opts)
	for _, p := range divisor.Pairs(n) {
		if near45(p.A, p.B, o.Tolerance) {
			return true
		}
	}

	return false
}

// IsPrime reports whether n ≥ 2 has a single-angle signature, which holds
// exactly when its only divisor pair is (1, n).
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}

	return len(Of(n)) == 1
}

// TwinPrimeAngle returns atan2(p+2, p) in degrees rounded to two decimals.
// It does not check that p and p+2 are prime.
func TwinPrimeAngle(p int) float64 {
	return Angle(p+2, p, Degrees)
}
