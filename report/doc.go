// SPDX-License-Identifier: MIT

// Package report renders guasti results for people and machines.
//
// Every writer takes an io.Writer and a Format:
//
//	Text  aligned console output (the "demo" view)
//	JSON  indented JSON via bytedance/sonic
//	YAML  YAML via gopkg.in/yaml.v3
//
// Matrices have two extra views: WriteMatrix prints the data region through
// gonum's mat.Formatted, and WriteHeatmap prints a masked grid where inactive
// (zero) cells show as '.'.
//
// The package only formats. It never builds grids or runs analyses itself, so
// callers pass values they already hold and nothing is recomputed.
package report
