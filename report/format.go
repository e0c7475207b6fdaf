// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"strings"
)

// Format selects the output encoding.
type Format string

const (
	Text Format = "text"
	JSON Format = "json"
	YAML Format = "yaml"
)

// Formats lists the supported formats.
func Formats() []Format { return []Format{Text, JSON, YAML} }

// Valid reports whether f is one of Formats.
func (f Format) Valid() bool {
	switch f {
	case Text, JSON, YAML:
		return true
	}

	return false
}

// ParseFormat maps a case-insensitive name ("yml" is accepted) to a Format.
func ParseFormat(name string) (Format, error) {
	s := strings.ToLower(strings.TrimSpace(name))
	if s == "yml" {
		s = string(YAML)
	}
	f := Format(s)
	if !f.Valid() {
		return "", fmt.Errorf("ParseFormat(%q): %w", name, ErrUnknownFormat)
	}

	return f, nil
}
