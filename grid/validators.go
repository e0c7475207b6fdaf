// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//  - Single source of truth for bound/nil/shape checks shared by constructors and kernels.
//  - Return plain sentinels (lightly tagged) so call sites can wrap uniformly.

package grid

import "fmt"

// ValidateBound ensures 1 ≤ n ≤ MaxBound, keeping every grid within MaxCells.
// Complexity: O(1).
func ValidateBound(n int) error {
	if n < 1 || n > MaxBound {
		return fmt.Errorf("ValidateBound(%d): %w", n, ErrInvalidBound)
	}

	return nil
}

// ValidateNotNil ensures g is non-nil.
func ValidateNotNil(g *Grid) error {
	if g == nil {
		return gridErrorf("ValidateNotNil", ErrNilGrid)
	}

	return nil
}

// ValidateSameBound ensures a and b are non-nil and share the same bound N.
// Use before any element-wise kernel.
func ValidateSameBound(a, b *Grid) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.n != b.n {
		return fmt.Errorf("ValidateSameBound(%d,%d): %w", a.n, b.n, ErrBoundMismatch)
	}

	return nil
}
