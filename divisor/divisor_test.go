// SPDX-License-Identifier: MIT

package divisor_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/guasti/divisor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDivisors_Twelve checks the canonical example.
func TestDivisors_Twelve(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 6, 12}, divisor.Divisors(12))
}

// TestDivisors_Degenerate verifies n < 1 yields an empty result, not a failure.
func TestDivisors_Degenerate(t *testing.T) {
	for _, n := range []int{0, -1, -36} {
		assert.Empty(t, divisor.Divisors(n), "n=%d", n)
		assert.Empty(t, divisor.Pairs(n), "n=%d", n)
		assert.Zero(t, divisor.Count(n), "n=%d", n)
	}
}

func TestDivisors_Table(t *testing.T) {
	cases := []struct {
		n    int
		want []int
	}{
		{1, []int{1}},
		{2, []int{1, 2}},
		{16, []int{1, 2, 4, 8, 16}},
		{28, []int{1, 2, 4, 7, 14, 28}},
		{36, []int{1, 2, 3, 4, 6, 9, 12, 18, 36}},
		{97, []int{1, 97}},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, divisor.Divisors(tc.n), "n=%d", tc.n)
	}
}

// TestDivisors_MatchesNaiveScan compares against a full 1..n scan.
func TestDivisors_MatchesNaiveScan(t *testing.T) {
	for n := 1; n <= 500; n++ {
		var want []int
		for d := 1; d <= n; d++ {
			if n%d == 0 {
				want = append(want, d)
			}
		}
		require.Equal(t, want, divisor.Divisors(n), "n=%d", n)
		require.Equal(t, len(want), divisor.Count(n), "n=%d", n)
	}
}

func TestPairs_Twelve(t *testing.T) {
	want := []divisor.Pair{{A: 1, B: 12}, {A: 2, B: 6}, {A: 3, B: 4}}
	assert.Equal(t, want, divisor.Pairs(12))
}

// TestPairs_PerfectSquareOnce ensures the root pair is emitted exactly once.
func TestPairs_PerfectSquareOnce(t *testing.T) {
	pairs := divisor.Pairs(36)
	want := []divisor.Pair{{A: 1, B: 36}, {A: 2, B: 18}, {A: 3, B: 12}, {A: 4, B: 9}, {A: 6, B: 6}}
	assert.Equal(t, want, pairs)
}

// TestPairs_Invariants checks a·b == n, a ≤ b, increasing a, and determinism.
func TestPairs_Invariants(t *testing.T) {
	for n := 1; n <= 2000; n++ {
		pairs := divisor.Pairs(n)
		require.NotEmpty(t, pairs, "n=%d", n)
		prev := 0
		for _, p := range pairs {
			require.Equal(t, n, p.A*p.B, "n=%d pair=%v", n, p)
			require.LessOrEqual(t, p.A, p.B, "n=%d pair=%v", n, p)
			require.Greater(t, p.A, prev, "n=%d pairs not ordered by a", n)
			prev = p.A
		}
		require.Equal(t, pairs, divisor.Pairs(n), "repeated call must be identical")
	}
}

func TestIsPrime(t *testing.T) {
	primes := map[int]bool{2: true, 3: true, 5: true, 7: true, 11: true, 13: true, 17: true, 19: true, 23: true, 29: true}
	for n := -3; n < 30; n++ {
		assert.Equal(t, primes[n], divisor.IsPrime(n), "n=%d", n)
	}
	assert.True(t, divisor.IsPrime(7919))
	assert.False(t, divisor.IsPrime(7917))
}

func TestIsPerfectSquare(t *testing.T) {
	for k := 0; k <= 300; k++ {
		root, ok := divisor.IsPerfectSquare(k * k)
		require.True(t, ok)
		require.Equal(t, k, root)
		if k > 1 {
			_, ok = divisor.IsPerfectSquare(k*k - 1)
			require.False(t, ok, "k²-1 with k=%d", k)
		}
	}
	_, ok := divisor.IsPerfectSquare(-4)
	assert.False(t, ok)
}

// TestIsPerfectSquare_NearMaxInt covers inputs whose neighbouring squares
// do not fit in a 64-bit int.
func TestIsPerfectSquare_NearMaxInt(t *testing.T) {
	const root = 3037000499 // ⌊√(2⁶³−1)⌋
	cases := []struct {
		n      int
		root   int
		square bool
	}{
		{math.MaxInt, root, false},
		{math.MaxInt - 1, root, false},
		{math.MaxInt - 24, root, false}, // 2⁶³−25
		{root * root, root, true},
		{root*root + 5, root, false},
		{root*root - 1, root - 1, false},
		{(root - 1) * (root - 1), root - 1, true},
	}
	for _, tc := range cases {
		k, ok := divisor.IsPerfectSquare(tc.n)
		assert.Equal(t, tc.square, ok, "n=%d", tc.n)
		assert.Equal(t, tc.root, k, "n=%d", tc.n)
	}
}

func TestIsPrime_NearMaxInt(t *testing.T) {
	// 2⁶³−1 = 7²·73·127·337·92737·649657
	assert.False(t, divisor.IsPrime(math.MaxInt))
	assert.False(t, divisor.IsPrime(3037000499*3037000499))
	if testing.Short() {
		t.Skip("full trial division up to 3e9")
	}
	assert.True(t, divisor.IsPrime(math.MaxInt-24)) // 2⁶³−25
}
