// SPDX-License-Identifier: MIT

// Package palimpsest overlays the divisibility grid G and the multiplication
// grid P cell by cell and exposes the five derived matrices ("palimpsests").
//
//	Kind            Cell rule                      Closed form it reveals
//	─────────────   ────────────────────────────   ──────────────────────────────
//	Additive        G + P                          diagonal n(n+1)  (oblongs)
//	Multiplicative  G · P                          diagonal n³, row 1 j²
//	GCD             gcd(G, P) if both > 0, else 0  equals G everywhere
//	Difference      |G − P|                        row 1 all zero, diagonal n(n−1)
//	Ratio           P ÷ G if G > 0, else 0         equals the row index i
//
// Every operation is pure: G and P are read, never written, and each call
// returns a freshly allocated grid of the same bound. Division-like kinds
// (GCD, Ratio) treat a zero operand as "no relation" and yield 0 instead of
// failing.
package palimpsest
