// SPDX-License-Identifier: MIT

// Package divisor enumerates the divisors and divisor pairs of a positive integer.
//
// Every function here is an O(√n) trial scan up to ⌊√n⌋: for each exact
// divisor a, its cofactor n/a is known for free.
//
//	Divisors(12) == [1 2 3 4 6 12]
//	Pairs(12)    == [{1 12} {2 6} {3 4}]
//
// Degenerate input is not an error: n < 1 yields an empty result, so callers
// check emptiness instead of handling an error value.
//
// Results are recomputed on every call and depend on n only, so repeated calls
// return identical sequences and the functions are safe for concurrent use.
package divisor
