// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra substrate used by the
// regression engine.
//
// What is inside:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set.
//   - Kernels: Mul, Transpose, Scale, MatVec, LU (Doolittle) and Inverse.
//   - Gram / Diagonal helpers for normal-equation style products.
//   - Column statistics: CenterColumns, Correlation.
//   - Row/column broadcasting: ScaleRows, ScaleCols.
//
// The regression engine calls Gram, Inverse, Transpose, Mul, MatVec, Scale,
// Diagonal, ScaleRows, ScaleCols and Correlation. LU and CenterColumns are
// exported as library API in their own right: LU is the factorization behind
// Inverse and CenterColumns the first step of Correlation.
//
// Every kernel validates its operands through the central validators and
// returns package sentinels (ErrDimensionMismatch, ErrSingular, ...) wrapped
// with an operation tag, so callers match them with errors.Is.
//
// Determinism:
//
//	All loops run in fixed i→k→j (or i→j) order and there is no pivoting in
//	LU, so identical inputs give bit-identical outputs across runs.
//
// Complexity:
//
//	Mul O(r·n·c), Inverse O(n³), Correlation O(r·c²).
//
// Operands passed as *Dense take flat-slice fast paths; any other Matrix
// implementation goes through At/Set.
package matrix
