// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat indicates a format name other than text, json or yaml.
	ErrUnknownFormat = errors.New("report: unknown format")

	// ErrNilValue indicates a nil report, profile or summary was passed to a writer.
	ErrNilValue = errors.New("report: nil value")
)

// reportErrorf tags err with the writer that produced it.
func reportErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
