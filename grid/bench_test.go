// SPDX-License-Identifier: MIT

package grid_test

import (
	"testing"

	"github.com/katalvlaran/guasti/grid"
)

func benchmarkBuild(b *testing.B, n int, build func(int) (*grid.Grid, error)) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := build(n); err != nil {
			b.Fatalf("build failed: %v", err)
		}
	}
}

// BenchmarkNewDivisibility_500 measures the harmonic-walk construction of G.
func BenchmarkNewDivisibility_500(b *testing.B) { benchmarkBuild(b, 500, grid.NewDivisibility) }

// BenchmarkNewMultiplication_500 measures the full O(N²) fill of P.
func BenchmarkNewMultiplication_500(b *testing.B) { benchmarkBuild(b, 500, grid.NewMultiplication) }

// BenchmarkColumnDivisors_1000 measures the strided column scan.
func BenchmarkColumnDivisors_1000(b *testing.B) {
	g, err := grid.NewDivisibility(1000)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := g.ColumnDivisors(840); err != nil {
			b.Fatal(err)
		}
	}
}
