// SPDX-License-Identifier: MIT

package signature

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/guasti/divisor"
	"gonum.org/v1/gonum/stat"
)

// ErrTooFewTwins indicates Convergence received fewer than two primes.
var ErrTooFewTwins = errors.New("signature: convergence needs at least two twin primes")

// TwinPrimes returns every p ≤ limit such that p and p+2 are both prime,
// ascending. For limit < 3 it returns nil.
func TwinPrimes(limit int) []int {
	var out []int
	for p := 3; p <= limit; p += 2 {
		if divisor.IsPrime(p) && divisor.IsPrime(p+2) {
			out = append(out, p)
		}
	}

	return out
}

// TwinPoint is one twin pair on its way to 45°.
type TwinPoint struct {
	P         int     `json:"p" yaml:"p"`
	Angle     float64 `json:"angle" yaml:"angle"`
	Deviation float64 `json:"deviation" yaml:"deviation"` // Angle − 45
}

// ConvergenceSummary describes how twin-prime angles approach 45°.
//
//   - Monotonic is true when deviations never increase along the input order.
//   - MeanScaled is the mean of (θ−45)·p, which tends to 180/π ≈ 57.3.
//   - Correlation is Pearson's r between the deviation and 1/p (≈ 1 for a 1/p law).
type ConvergenceSummary struct {
	Points        []TwinPoint `json:"points" yaml:"points"`
	Monotonic     bool        `json:"monotonic" yaml:"monotonic"`
	MeanDeviation float64     `json:"mean_deviation" yaml:"mean_deviation"`
	MeanScaled    float64     `json:"mean_scaled" yaml:"mean_scaled"`
	Correlation   float64     `json:"correlation" yaml:"correlation"`
}

// Convergence summarizes TwinPrimeAngle over ps (expected ascending).
// Returns ErrTooFewTwins when len(ps) < 2 or an error for non-positive p.
func Convergence(ps []int) (*ConvergenceSummary, error) {
	if len(ps) < 2 {
		return nil, ErrTooFewTwins
	}
	out := &ConvergenceSummary{Points: make([]TwinPoint, len(ps)), Monotonic: true}
	dev := make([]float64, len(ps))
	scaled := make([]float64, len(ps))
	inv := make([]float64, len(ps))
	for i, p := range ps {
		if p < 1 {
			return nil, fmt.Errorf("Convergence: p=%d must be positive", p)
		}
		a := TwinPrimeAngle(p)
		d := a - Right
		out.Points[i] = TwinPoint{P: p, Angle: a, Deviation: d}
		dev[i], scaled[i], inv[i] = d, d*float64(p), 1/float64(p)
		if i > 0 && d > dev[i-1] {
			out.Monotonic = false
		}
	}
	out.MeanDeviation = stat.Mean(dev, nil)
	out.MeanScaled = stat.Mean(scaled, nil)
	out.Correlation = stat.Correlation(dev, inv, nil)

	return out, nil
}
