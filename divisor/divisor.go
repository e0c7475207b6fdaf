// SPDX-License-Identifier: MIT

package divisor

import "math"

// Pair is a divisor pair of n: A·B == n and A ≤ B.
type Pair struct {
	A int `json:"a" yaml:"a"`
	B int `json:"b" yaml:"b"`
}

// isqrt returns ⌊√n⌋ for n ≥ 0, correcting float rounding at the edges.
// Squares are compared by division so no product can overflow near MaxInt.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// Divisors returns the ascending list of positive divisors of n.
// For n < 1 it returns nil.
// Complexity: O(√n) scan, output O(d) for d divisors.
func Divisors(n int) []int {
	if n < 1 {
		return nil
	}
	limit := isqrt(n)
	var low, high []int
	for i := 1; i <= limit; i++ {
		if n%i != 0 {
			continue
		}
		low = append(low, i)
		if q := n / i; q != i {
			high = append(high, q)
		}
	}
	// high is descending; append it reversed.
	for k := len(high) - 1; k >= 0; k-- {
		low = append(low, high[k])
	}

	return low
}

// Pairs returns the divisor pairs (a, n/a) for every a in [1, ⌊√n⌋] dividing n,
// ordered by increasing a (so b is non-increasing).
// A perfect square contributes its root pair (√n, √n) exactly once.
// For n < 1 it returns nil.
// Complexity: O(√n).
func Pairs(n int) []Pair {
	if n < 1 {
		return nil
	}
	limit := isqrt(n)
	var out []Pair
	for a := 1; a <= limit; a++ {
		if n%a == 0 {
			out = append(out, Pair{A: a, B: n / a})
		}
	}

	return out
}

// Count returns τ(n), the number of positive divisors of n (0 for n < 1).
func Count(n int) int {
	if n < 1 {
		return 0
	}
	limit := isqrt(n)
	c := 0
	for i := 1; i <= limit; i++ {
		if n%i == 0 {
			c += 2
			if i*i == n {
				c--
			}
		}
	}

	return c
}

// IsPrime reports whether n is prime by plain trial division.
// It is the reference check the signature-based predicate is tested against.
func IsPrime(n int) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for d := 3; d <= n/d; d += 2 {
		if n%d == 0 {
			return false
		}
	}

	return true
}

// IsPerfectSquare reports whether n == k² for some integer k ≥ 0,
// returning k when it is.
func IsPerfectSquare(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	k := isqrt(n)

	return k, k*k == n
}
