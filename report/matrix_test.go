// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/palimpsest"
	"github.com/katalvlaran/guasti/report"
)

func TestWriteHeatmap_Divisibility(t *testing.T) {
	g, err := grid.NewDivisibility(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteHeatmap(&buf, g))
	assert.Equal(t, "1 2 3 4\n. 2 . 4\n. . 3 .\n. . . 4\n", buf.String())
}

func TestWriteHeatmap_WidestValue(t *testing.T) {
	mul, err := palimpsest.Build(palimpsest.Multiplicative, 3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteHeatmap(&buf, mul))
	// multiplicative = G·P: row 1 is j², row 2 keeps (2,2) = 8 and (2,3) inactive.
	assert.Equal(t, " 1  4  9\n .  8  .\n .  . 27\n", buf.String())
}

func TestWriteMatrix(t *testing.T) {
	g, err := grid.NewMultiplication(3)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteMatrix(&buf, g))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[2], "9")
}

func TestMatrixWriters_NilGrid(t *testing.T) {
	var buf bytes.Buffer
	assert.ErrorIs(t, report.WriteMatrix(&buf, nil), grid.ErrNilGrid)
	assert.ErrorIs(t, report.WriteHeatmap(&buf, nil), grid.ErrNilGrid)
}
