// SPDX-License-Identifier: MIT
// Package: grid
//
// Sentinel errors for the grid package.
//
// Error policy:
//   • Only package-level sentinels are exposed; callers use errors.Is.
//   • Context is attached with %w at the detection site (gridErrorf).
//   • Nothing in this package panics on caller input.

package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBound indicates a bound N outside [1, MaxBound].
	// Construction fails fast; no partial grid is returned.
	ErrInvalidBound = errors.New("grid: bound must be in [1, MaxBound]")

	// ErrOutOfRange indicates a row, column or query index outside the grid.
	// Asking G about a column n > N is the canonical case.
	ErrOutOfRange = errors.New("grid: index out of range")

	// ErrBoundMismatch indicates two grids built for different bounds were
	// combined or compared element-wise.
	ErrBoundMismatch = errors.New("grid: bound mismatch")

	// ErrNilGrid indicates a nil *Grid receiver or argument.
	ErrNilGrid = errors.New("grid: nil grid")

	// ErrNilKernel indicates a nil cell or combine function.
	ErrNilKernel = errors.New("grid: nil kernel")
)

// gridErrorf wraps err with the operation tag: "<op>: <err>".
func gridErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// cellErrorf wraps err with the operation tag and coordinates.
func cellErrorf(op string, i, j int, err error) error {
	return fmt.Errorf("Grid.%s(%d,%d): %w", op, i, j, err)
}
