// SPDX-License-Identifier: MIT

// Package frame models regression inputs as an explicit ordered sequence of
// (name, values) columns.
//
// A Frame holds numeric or categorical columns of equal length. Two
// operations turn raw regressors into a design matrix:
//
//	x, cats, err := raw.EncodeAll("day")   // categorical → L−1 indicators
//	design := x.WithConstant()             // "_constant_" first, idempotent
//	X, err := design.Dense()               // *matrix.Dense, N×(1+K)
//
// Encoding must happen before the constant is inserted. Frames are never
// mutated in place; each step returns a fresh copy.
package frame
