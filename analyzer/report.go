// SPDX-License-Identifier: MIT

package analyzer

import (
	"sort"

	"github.com/katalvlaran/guasti/palimpsest"
)

// Slice names the part of a palimpsest a Check looks at.
type Slice string

const (
	// SliceDiagonal is cells (n, n) for n = 1..N.
	SliceDiagonal Slice = "diagonal"
	// SliceRow1 is cells (1, j) for j = 1..N.
	SliceRow1 Slice = "row1"
	// SliceMatrix is every cell; such checks carry no sequences.
	SliceMatrix Slice = "matrix"
)

// Check is one comparison between an extracted sequence and its closed form.
type Check struct {
	Slice     Slice   `json:"slice" yaml:"slice"`
	Formula   string  `json:"formula" yaml:"formula"`
	Structure string  `json:"structure" yaml:"structure"`
	Extracted []int64 `json:"extracted,omitempty" yaml:"extracted,omitempty"`
	Reference []int64 `json:"reference,omitempty" yaml:"reference,omitempty"`
	Match     bool    `json:"match" yaml:"match"`
}

// Entry groups the checks of one palimpsest kind.
type Entry struct {
	Kind   palimpsest.Kind `json:"kind" yaml:"kind"`
	Checks []Check         `json:"checks" yaml:"checks"`
}

// Check returns the check on slice s, if the entry has one.
func (e Entry) Check(s Slice) (Check, bool) {
	for _, c := range e.Checks {
		if c.Slice == s {
			return c, true
		}
	}

	return Check{}, false
}

// Verified reports whether every check of the entry matched.
func (e Entry) Verified() bool {
	for _, c := range e.Checks {
		if !c.Match {
			return false
		}
	}

	return true
}

// Hierarchy lists the diagonals that climb one power per overlay:
// G gives n, P gives n², G·P gives n³.
type Hierarchy struct {
	Divisibility   []int64 `json:"divisibility" yaml:"divisibility"`
	Multiplication []int64 `json:"multiplication" yaml:"multiplication"`
	Multiplicative []int64 `json:"multiplicative" yaml:"multiplicative"`
}

// Report is the outcome of Analyze for one bound.
type Report struct {
	N       int                       `json:"n" yaml:"n"`
	Entries map[palimpsest.Kind]Entry `json:"entries" yaml:"entries"`

	// GCDEqualsG is the headline claim: pgcd(G, P) == G over the whole matrix.
	GCDEqualsG bool `json:"pgcd_equals_g" yaml:"pgcd_equals_g"`

	Hierarchy Hierarchy `json:"hierarchy" yaml:"hierarchy"`
}

// Entry returns the entry for kind k.
func (r *Report) Entry(k palimpsest.Kind) (Entry, bool) {
	if r == nil {
		return Entry{}, false
	}
	e, ok := r.Entries[k]

	return e, ok
}

// Kinds returns the kinds present in the report in declaration order.
func (r *Report) Kinds() []palimpsest.Kind {
	if r == nil {
		return nil
	}
	out := make([]palimpsest.Kind, 0, len(r.Entries))
	for k := range r.Entries {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Verified reports whether every check of every entry matched.
func (r *Report) Verified() bool {
	if r == nil {
		return false
	}
	for _, e := range r.Entries {
		if !e.Verified() {
			return false
		}
	}

	return r.GCDEqualsG
}

// Failed lists "<kind>/<slice>" for every check that did not match, sorted.
func (r *Report) Failed() []string {
	var out []string
	for _, k := range r.Kinds() {
		for _, c := range r.Entries[k].Checks {
			if !c.Match {
				out = append(out, k.String()+"/"+string(c.Slice))
			}
		}
	}

	return out
}
