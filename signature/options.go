// SPDX-License-Identifier: MIT

package signature

import "math"

// Unit selects the angle unit of a signature.
type Unit int

const (
	// Degrees returns angles in degrees (default).
	Degrees Unit = iota
	// Radians returns angles in radians.
	Radians
)

// String returns "degrees" or "radians".
func (u Unit) String() string {
	if u == Radians {
		return "radians"
	}

	return "degrees"
}

// ParseUnit maps "degrees"/"deg" and "radians"/"rad" to a Unit.
func ParseUnit(s string) (Unit, bool) {
	switch s {
	case "degrees", "deg", "":
		return Degrees, true
	case "radians", "rad":
		return Radians, true
	}

	return Degrees, false
}

// Defaults (single source of truth).
const (
	// DefaultTolerance is the half-width of the 45° band used by Contains45.
	DefaultTolerance = 0.01

	// Decimals is the rounding precision applied to every angle.
	Decimals = 2
)

// Right is the 45° reference angle of a perfect square's root pair.
const Right = 45.0

// Options is the resolved configuration of a signature call.
type Options struct {
	Unit      Unit
	Tolerance float64
}

// DefaultOptions returns degrees with DefaultTolerance.
func DefaultOptions() Options {
	return Options{Unit: Degrees, Tolerance: DefaultTolerance}
}

// Option mutates Options. Constructors panic on nonsensical values.
type Option func(*Options)

// WithUnit selects the output unit.
func WithUnit(u Unit) Option {
	if u != Degrees && u != Radians {
		panic("signature: WithUnit: unknown unit")
	}
	return func(o *Options) { o.Unit = u }
}

// WithRadians is shorthand for WithUnit(Radians).
func WithRadians() Option { return WithUnit(Radians) }

// WithTolerance sets the 45° band half-width; it must be finite and ≥ 0.
func WithTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic("signature: WithTolerance: tolerance must be finite, non-negative")
	}
	return func(o *Options) { o.Tolerance = tol }
}

func gatherOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
