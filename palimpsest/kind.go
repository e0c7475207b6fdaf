// SPDX-License-Identifier: MIT

package palimpsest

import (
	"fmt"
	"strings"
)

// Kind selects one of the five element-wise overlays of G and P.
type Kind int

const (
	// Additive is G + P.
	Additive Kind = iota
	// Multiplicative is G · P.
	Multiplicative
	// GCD is gcd(G, P) where both cells are positive.
	GCD
	// Difference is |G − P|.
	Difference
	// Ratio is the integer quotient P ÷ G where G is positive.
	Ratio
)

// kindNames is indexed by Kind; names are the stable identifiers used in reports.
var kindNames = [...]string{
	Additive:       "additive",
	Multiplicative: "multiplicative",
	GCD:            "pgcd",
	Difference:     "difference",
	Ratio:          "ratio",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	return []Kind{Additive, Multiplicative, GCD, Difference, Ratio}
}

// String returns the stable report name of k ("additive", "pgcd", …).
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}

	return kindNames[k]
}

// Valid reports whether k names one of the five palimpsests.
func (k Kind) Valid() bool {
	return k >= Additive && k <= Ratio
}

// ParseKind maps a name (case-insensitive; "gcd" accepted for "pgcd") to a Kind.
func ParseKind(name string) (Kind, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "gcd" {
		return GCD, nil
	}
	for k, n := range kindNames {
		if n == s {
			return Kind(k), nil
		}
	}

	return 0, fmt.Errorf("ParseKind(%q): %w", name, ErrUnknownKind)
}

// MarshalText implements encoding.TextMarshaler so kinds serialize by name
// (report map keys included).
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, fmt.Errorf("MarshalText(%d): %w", int(k), ErrUnknownKind)
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed

	return nil
}
