// SPDX-License-Identifier: MIT

package signature_test

import (
	"testing"

	"github.com/katalvlaran/guasti/signature"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribe_Sixteen(t *testing.T) {
	p := signature.Describe(16)
	assert.Equal(t, 16, p.N)
	assert.Equal(t, "degrees", p.Unit)
	assert.Equal(t, []int{1, 2, 4, 8, 16}, p.Divisors)
	assert.Equal(t, 5, p.Tau)
	require.Len(t, p.Pairs, 3)
	assert.Equal(t, signature.PairAngle{A: 4, B: 4, Angle: 45, Is45: true}, p.Pairs[2])
	assert.False(t, p.Pairs[0].Is45)
	assert.True(t, p.Square)
	assert.Equal(t, 4, p.Root)
	assert.False(t, p.Prime)
}

func TestDescribe_PrimeInRadians(t *testing.T) {
	p := signature.Describe(7, signature.WithRadians())
	assert.Equal(t, "radians", p.Unit)
	assert.True(t, p.Prime)
	assert.False(t, p.Square)
	assert.Zero(t, p.Root)
	require.Len(t, p.Pairs, 1)
	assert.InDelta(t, 1.43, p.Pairs[0].Angle, 1e-9)
	assert.Equal(t, p.Signature, []float64{p.Pairs[0].Angle})
}

func TestDescribe_Degenerate(t *testing.T) {
	p := signature.Describe(0)
	assert.Empty(t, p.Divisors)
	assert.Empty(t, p.Pairs)
	assert.Empty(t, p.Signature)
	assert.False(t, p.Prime)
}
