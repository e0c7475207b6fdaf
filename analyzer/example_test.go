// SPDX-License-Identifier: MIT

package analyzer_test

import (
	"fmt"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/palimpsest"
)

// ExampleAnalyze verifies the structure hidden in the N=6 palimpsests.
func ExampleAnalyze() {
	rep, err := analyzer.Analyze(6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	add, _ := rep.Entry(palimpsest.Additive)
	diag, _ := add.Check(analyzer.SliceDiagonal)
	fmt.Println(diag.Structure, diag.Extracted)
	fmt.Println("pgcd == G:", rep.GCDEqualsG)
	fmt.Println("verified:", rep.Verified())
	// Output:
	// oblong numbers [2 6 12 20 30 42]
	// pgcd == G: true
	// verified: true
}
