// SPDX-License-Identifier: MIT

package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/guasti/analyzer"
	"github.com/katalvlaran/guasti/palimpsest"
)

const opWrite = "Write"

// analysisDoc is the serialized shape of an analyzer.Report. Entries become an
// ordered list so JSON and YAML output are stable.
type analysisDoc struct {
	N           int                `json:"n" yaml:"n"`
	Verified    bool               `json:"verified" yaml:"verified"`
	PGCDEqualsG bool               `json:"pgcd_equals_g" yaml:"pgcd_equals_g"`
	Failed      []string           `json:"failed,omitempty" yaml:"failed,omitempty"`
	Palimpsests []analyzer.Entry   `json:"palimpsests" yaml:"palimpsests"`
	Hierarchy   analyzer.Hierarchy `json:"hierarchy" yaml:"hierarchy"`
}

func newAnalysisDoc(rep *analyzer.Report) analysisDoc {
	doc := analysisDoc{
		N:           rep.N,
		Verified:    rep.Verified(),
		PGCDEqualsG: rep.GCDEqualsG,
		Failed:      rep.Failed(),
		Hierarchy:   rep.Hierarchy,
	}
	for _, k := range rep.Kinds() {
		doc.Palimpsests = append(doc.Palimpsests, rep.Entries[k])
	}

	return doc
}

// Write renders one analysis report.
// Returns ErrNilValue for a nil report and ErrUnknownFormat for a bad format.
func Write(w io.Writer, rep *analyzer.Report, f Format) error {
	if rep == nil {
		return reportErrorf(opWrite, ErrNilValue)
	}
	doc := newAnalysisDoc(rep)

	return encode(opWrite, w, f, doc, func(sb *strings.Builder) { writeAnalysisText(sb, doc) })
}

// WriteSweep renders several reports one after another. JSON and YAML emit a
// single list.
func WriteSweep(w io.Writer, reps []*analyzer.Report, f Format) error {
	docs := make([]analysisDoc, 0, len(reps))
	for _, rep := range reps {
		if rep == nil {
			return reportErrorf("WriteSweep", ErrNilValue)
		}
		docs = append(docs, newAnalysisDoc(rep))
	}

	return encode("WriteSweep", w, f, docs, func(sb *strings.Builder) {
		fmt.Fprintf(sb, "%-8s %-9s %s\n", "N", "verified", "failed")
		for _, d := range docs {
			failed := "-"
			if len(d.Failed) > 0 {
				failed = strings.Join(d.Failed, ",")
			}
			fmt.Fprintf(sb, "%-8d %-9t %s\n", d.N, d.Verified, failed)
		}
	})
}

func writeAnalysisText(sb *strings.Builder, doc analysisDoc) {
	fmt.Fprintf(sb, "palimpsest analysis  N=%d\n", doc.N)
	fmt.Fprintf(sb, "  verified   %t\n", doc.Verified)
	fmt.Fprintf(sb, "  pgcd == G  %t\n", doc.PGCDEqualsG)

	for _, e := range doc.Palimpsests {
		fmt.Fprintf(sb, "\n%s\n", e.Kind)
		for _, c := range e.Checks {
			fmt.Fprintf(sb, "  %-8s %-22s %-44s %s\n", c.Slice, c.Formula, c.Structure, verdict(c.Match))
			if c.Slice == analyzer.SliceMatrix {
				continue
			}
			fmt.Fprintf(sb, "    extracted  %v\n", c.Extracted)
			fmt.Fprintf(sb, "    reference  %v\n", c.Reference)
		}
	}

	sb.WriteString("\nhierarchy\n")
	fmt.Fprintf(sb, "  %-14s %-5s %v\n", "G", "n", doc.Hierarchy.Divisibility)
	fmt.Fprintf(sb, "  %-14s %-5s %v\n", "P", "n^2", doc.Hierarchy.Multiplication)
	fmt.Fprintf(sb, "  %-14s %-5s %v\n", palimpsest.Multiplicative.String(), "n^3", doc.Hierarchy.Multiplicative)
}

func verdict(ok bool) string {
	if ok {
		return "ok"
	}

	return "MISMATCH"
}
