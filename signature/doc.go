// SPDX-License-Identifier: MIT

// Package signature computes the angular signature of a positive integer.
//
// Each divisor pair (a, b) of n, a·b = n and a ≤ b, is read as the point
// (a, b) in the first quadrant; its angle is atan2(b, a). The signature of n
// is the ascending list of those angles, rounded to two decimals.
//
//	n = 12: pairs (1,12) (2,6) (3,4)  →  [53.13 71.57 85.24]
//	n = 16: pairs (1,16) (2,8) (4,4)  →  contains 45.00   (16 = 4²)
//	n = 7:  pairs (1,7)               →  a single angle    (7 is prime)
//
// The two-decimal rounding is part of the result: Contains45 and
// IsPrime key off the rounded values.
//
// Two facts follow directly from the pair structure:
//   - 45° appears iff n is a perfect square (the pair (√n, √n)).
//   - exactly one angle appears iff n is prime (the lone pair (1, n)).
//
// TwinPrimeAngle(p) = atan2(p+2, p) is a closed form for the twin pair
// (p, p+2); it approaches 45° roughly as 45 + 57.3/p. Convergence summarizes
// that approach over a list of twin primes using gonum/stat.
//
// All functions are pure, allocate their results and are safe for concurrent use.
package signature
