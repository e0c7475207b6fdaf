// SPDX-License-Identifier: MIT

package analyzer_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/grid"
)

func TestSweep_PreservesOrder(t *testing.T) {
	bounds := []int{30, 1, 17, 8, 45, 2}
	reps, err := analyzer.Sweep(context.Background(), bounds, analyzer.WithConcurrency(3))
	require.NoError(t, err)
	require.Len(t, reps, len(bounds))
	for i, n := range bounds {
		assert.Equal(t, n, reps[i].N)
		assert.True(t, reps[i].Verified(), "N=%d", n)
	}
}

func TestSweep_MatchesAnalyze(t *testing.T) {
	reps, err := analyzer.Sweep(context.Background(), []int{12})
	require.NoError(t, err)
	single, err := analyzer.Analyze(12)
	require.NoError(t, err)
	assert.Equal(t, single, reps[0])
}

func TestSweep_InvalidBoundFails(t *testing.T) {
	_, err := analyzer.Sweep(context.Background(), []int{5, 0, 7})
	assert.ErrorIs(t, err, grid.ErrInvalidBound)
}

func TestSweep_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := analyzer.Sweep(ctx, []int{5, 6, 7})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSweep_Empty(t *testing.T) {
	reps, err := analyzer.Sweep(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, reps)
}
