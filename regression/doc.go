// SPDX-License-Identifier: MIT

// Package regression estimates multiple linear regressions by ordinary least
// squares and reports heteroskedasticity-robust inference.
//
// An Engine is built once per model. New copies the response and the
// regressors, expands the requested categorical columns into indicator
// columns (first-seen level as baseline), prepends the "_constant_"
// intercept and fixes the design matrix X (N rows, 1+K columns). Fit then
// computes:
//
//	β      = (XᵗX)⁻¹XᵗY
//	Bread  = (XᵗX/N)⁻¹
//	Meat   = Xᵗ·diag(e²)·X / (N−K−1)
//	se     = √(diag(Bread·Meat·Bread) / N)
//	t      = β / se
//	p      = two-tailed lookup in a normtable.Table
//	adj R² = 1 − (N−1)/(N−K−1) · Σe²/Σ(Y−Ȳ)²
//
// Basic usage:
//
//	x, _ := frame.New(
//		frame.Numeric("sqft", sqft),
//		frame.Categorical("district", district),
//	)
//	eng, err := regression.New(frame.NewSeries("price", price), x,
//		regression.WithCategorical("district"))
//	if err != nil { ... }
//	res, err := eng.Fit()
//
// Errors are sentinels matched with errors.Is: ErrShapeMismatch,
// ErrColumnNotFound, ErrSingularMatrix, ErrDegreesOfFreedom, ErrNonFinite.
//
// p-values come from a discretized normal table and saturate to 0 once
// |t| reaches the table bound; Row.Saturated marks those rows.
package regression
