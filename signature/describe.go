// SPDX-License-Identifier: MIT

package signature

import "github.com/katalvlaran/guasti/divisor"

// PairAngle is a divisor pair with its signature angle.
type PairAngle struct {
	A     int     `json:"a" yaml:"a"`
	B     int     `json:"b" yaml:"b"`
	Angle float64 `json:"angle" yaml:"angle"`
	Is45  bool    `json:"is_45" yaml:"is_45"`
}

// Profile gathers everything a report needs about one integer.
type Profile struct {
	N         int         `json:"n" yaml:"n"`
	Unit      string      `json:"unit" yaml:"unit"`
	Divisors  []int       `json:"divisors" yaml:"divisors"`
	Tau       int         `json:"tau" yaml:"tau"`
	Pairs     []PairAngle `json:"pairs" yaml:"pairs"`
	Signature []float64   `json:"signature" yaml:"signature"`
	Square    bool        `json:"square" yaml:"square"`
	Root      int         `json:"root,omitempty" yaml:"root,omitempty"`
	Prime     bool        `json:"prime" yaml:"prime"`
}

// Describe builds the Profile of n. Pairs are listed by increasing a, each
// with its angle in the configured unit; the 45° marker always uses the
// degree angle and the configured tolerance. For n < 1 the profile is empty.
func Describe(n int, opts ...Option) Profile {
	o := gatherOptions(opts)
	prof := Profile{N: n, Unit: o.Unit.String()}
	if n < 1 {
		return prof
	}
	prof.Divisors = divisor.Divisors(n)
	prof.Tau = len(prof.Divisors)
	for _, p := range divisor.Pairs(n) {
		prof.Pairs = append(prof.Pairs, PairAngle{
			A:     p.A,
			B:     p.B,
			Angle: Angle(p.B, p.A, o.Unit),
			Is45:  near45(p.A, p.B, o.Tolerance),
		})
	}
	prof.Signature = Of(n, WithUnit(o.Unit))
	prof.Square = Contains45(n, WithTolerance(o.Tolerance))
	if prof.Square {
		prof.Root, _ = divisor.IsPerfectSquare(n)
	}
	prof.Prime = IsPrime(n)

	return prof
}
