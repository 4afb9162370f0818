// SPDX-License-Identifier: MIT

// Package normtable builds a discretized standard-normal table and answers
// two-tailed p-value queries against it.
//
// The table is an evenly spaced grid over [-bound, bound] (default 5000
// points over [-5, 5]) with a density value and an approximate cumulative
// value per point:
//
//	cumulative[i] = Σ_{j<i} density[j] / Σ_j density[j]
//
// This is a resolution-dependent approximation of Φ: accuracy improves with
// more points and mass beyond ±bound is not represented. Statistics at or
// beyond the bound report a p-value of exactly 0 (see Table.Lookup).
//
//	tbl := normtable.New(normtable.WithPoints(10001))
//	p := tbl.PValue(2.1)
package normtable
