// SPDX-License-Identifier: MIT

package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/guasti/grid"
	"github.com/katalvlaran/guasti/internal/cli"
	"github.com/katalvlaran/guasti/internal/config"
	"github.com/katalvlaran/guasti/palimpsest"
	"github.com/katalvlaran/guasti/signature"
)

// run executes the command tree with args and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("GUASTI_LOG_LEVEL", "error")

	var out, errOut bytes.Buffer
	cmd := cli.NewRootCommand()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())

	return out.String(), err
}

func TestAnalyze_Text(t *testing.T) {
	out, err := run(t, "analyze", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "palimpsest analysis  N=5")
	assert.Contains(t, out, "extracted  [2 6 12 20 30]")
	assert.NotContains(t, out, "MISMATCH")
}

func TestAnalyze_JSON(t *testing.T) {
	out, err := run(t, "analyze", "-o", "json", "4")
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, float64(4), doc["n"])
	assert.Equal(t, true, doc["verified"])
}

func TestBound_FlagOverridesEnvironment(t *testing.T) {
	t.Setenv("GUASTI_BOUND", "6")
	out, err := run(t, "analyze")
	require.NoError(t, err)
	assert.Contains(t, out, "N=6")

	out, err = run(t, "analyze", "--bound", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "N=7")
}

func TestInvalidConfiguration(t *testing.T) {
	_, err := run(t, "analyze", "--bound", "0")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "signature", "--unit", "gradians", "12")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)

	_, err = run(t, "analyze", "twelve")
	assert.Error(t, err)
}

func TestSweep(t *testing.T) {
	out, err := run(t, "sweep", "--concurrency", "2", "3", "5", "8")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[3], "8 "))

	_, err = run(t, "sweep", "3", "0")
	assert.ErrorIs(t, err, grid.ErrInvalidBound)
}

func TestSignature(t *testing.T) {
	out, err := run(t, "signature", "16", "7")
	require.NoError(t, err)
	assert.Contains(t, out, "(4, 4)  45.00  <- 45°")
	assert.Contains(t, out, "n = 7")

	out, err = run(t, "signature", "--unit", "radians", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "signature  [0.93 1.25 1.49]")
}

func TestDivisors(t *testing.T) {
	out, err := run(t, "divisors", "12")
	require.NoError(t, err)
	assert.Contains(t, out, "divisors  [1 2 3 4 6 12]")
}

func TestColumn(t *testing.T) {
	out, err := run(t, "column", "13", "--bound", "20")
	require.NoError(t, err)
	assert.Contains(t, out, "prime    true")

	_, err = run(t, "column", "30", "--bound", "20")
	assert.ErrorIs(t, err, grid.ErrOutOfRange)
}

func TestTwins(t *testing.T) {
	out, err := run(t, "twins")
	require.NoError(t, err)
	assert.Contains(t, out, "59.04")
	assert.Contains(t, out, "45.53")

	_, err = run(t, "twins", "3")
	assert.ErrorIs(t, err, signature.ErrTooFewTwins)
}

func TestGrid(t *testing.T) {
	out, err := run(t, "grid", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, "1 2 3 4\n. 2 . 4\n. . 3 .\n. . . 4\n", out)

	pgcd, err := run(t, "grid", "pgcd", "-n", "4")
	require.NoError(t, err)
	assert.Equal(t, out, pgcd)

	out, err = run(t, "grid", "p", "--style", "matrix", "-n", "3")
	require.NoError(t, err)
	assert.Len(t, strings.Split(strings.TrimRight(out, "\n"), "\n"), 3)

	_, err = run(t, "grid", "spiral")
	assert.ErrorIs(t, err, palimpsest.ErrUnknownKind)

	_, err = run(t, "grid", "--style", "sparkline")
	assert.Error(t, err)
}
