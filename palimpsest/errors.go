// SPDX-License-Identifier: MIT

package palimpsest

import (
	"errors"
	"fmt"
)

// ErrUnknownKind indicates a Kind value (or name) outside the five palimpsests.
var ErrUnknownKind = errors.New("palimpsest: unknown kind")

// palimpsestErrorf wraps err with the operation and kind: "<op>(<kind>): <err>".
func palimpsestErrorf(op string, k Kind, err error) error {
	return fmt.Errorf("%s(%s): %w", op, k, err)
}
