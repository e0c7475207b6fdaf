// SPDX-License-Identifier: MIT

package report_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/divisor"
	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/report"
	"github.com/katalvlaran/guasti/signature"
)

func TestWriteSignature_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSignature(&buf, signature.Describe(16), report.Text))
	out := buf.String()
	assert.Contains(t, out, "n = 16  (degrees)")
	assert.Contains(t, out, "(2, 8)  75.96")
	assert.Contains(t, out, "(4, 4)  45.00  <- 45°")
	assert.Contains(t, out, "signature  [45 75.96 86.42]")
	assert.Contains(t, out, "perfect square: 4^2")

	buf.Reset()
	require.NoError(t, report.WriteSignature(&buf, signature.Describe(7), report.Text))
	assert.Contains(t, buf.String(), "prime")
	assert.NotContains(t, buf.String(), "<- 45°")

	buf.Reset()
	require.NoError(t, report.WriteSignature(&buf, signature.Describe(0), report.Text))
	assert.Contains(t, buf.String(), "nothing to report")
}

func TestWriteSignature_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteSignature(&buf, signature.Describe(12), report.JSON))

	var got signature.Profile
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, signature.Describe(12), got)
}

func TestWriteDivisors(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, report.WriteDivisors(&buf, 12, divisor.Divisors(12), divisor.Pairs(12), report.Text))
	assert.Contains(t, buf.String(), "divisors  [1 2 3 4 6 12]")
	assert.Contains(t, buf.String(), "(1,12) (2,6) (3,4)")

	buf.Reset()
	require.NoError(t, report.WriteDivisors(&buf, 12, divisor.Divisors(12), divisor.Pairs(12), report.JSON))
	assert.Contains(t, buf.String(), `"a": 3`)
}

func TestWriteColumn(t *testing.T) {
	g, err := grid.NewDivisibility(12)
	require.NoError(t, err)
	prof, err := analyzer.Column(g, 7)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteColumn(&buf, prof, report.Text))
	assert.Contains(t, buf.String(), "column 7")
	assert.Contains(t, buf.String(), "prime    true")

	assert.ErrorIs(t, report.WriteColumn(&buf, nil, report.Text), report.ErrNilValue)
}

func TestWriteTwins(t *testing.T) {
	sum, err := signature.Convergence(signature.TwinPrimes(110))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, report.WriteTwins(&buf, sum, report.Text))
	out := buf.String()
	assert.Contains(t, out, "59.04")
	assert.Contains(t, out, "+14.04")
	assert.Contains(t, out, "monotonic       true")

	assert.ErrorIs(t, report.WriteTwins(&buf, nil, report.YAML), report.ErrNilValue)
}
