// SPDX-License-Identifier: MIT

package signature_test

import (
	"fmt"

	"github.com/katalvlaran/guasti/signature"
)

// ExampleOf prints the signature of a composite, a square and a prime.
func ExampleOf() {
	for _, n := range []int{12, 16, 7} {
		fmt.Println(n, signature.Of(n), signature.Contains45(n), signature.IsPrime(n))
	}
	// Output:
	// 12 [53.13 71.57 85.24] false false
	// 16 [45 75.96 86.42] true false
	// 7 [81.87] false true
}

// ExampleTwinPrimeAngle shows twin-prime angles closing in on 45°.
func ExampleTwinPrimeAngle() {
	for _, p := range []int{3, 11, 71, 107} {
		fmt.Printf("(%d, %d) %.2f\n", p, p+2, signature.TwinPrimeAngle(p))
	}
	// Output:
	// (3, 5) 59.04
	// (11, 13) 49.76
	// (71, 73) 45.80
	// (107, 109) 45.53
}
