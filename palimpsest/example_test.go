// SPDX-License-Identifier: MIT

package palimpsest_test

import (
	"fmt"

	"github.com/katalvlaran/guasti/palimpsest"
)

// ExampleBuild shows the multiplicative overlay climbing to perfect cubes.
func ExampleBuild() {
	mul, err := palimpsest.Build(palimpsest.Multiplicative, 6)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	row1, _ := mul.Row(1)
	fmt.Println("diagonal:", mul.Diagonal())
	fmt.Println("row 1:   ", row1)
	// Output:
	// diagonal: [1 8 27 64 125 216]
	// row 1:    [1 4 9 16 25 36]
}
