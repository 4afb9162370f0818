// SPDX-License-Identifier: MIT

// Package olsinfer is a small inference engine for multiple linear
// regression with heteroskedasticity-robust standard errors.
//
// Given a response and one or more regressors (numeric or categorical) it
// estimates OLS coefficients, computes White sandwich standard errors,
// derives two-tailed p-values from a discretized standard-normal table and
// reports adjusted R².
//
// Everything is organized under four packages:
//
//	matrix/     dense row-major matrices, products, LU inverse, Gram,
//	              centering and correlation, row/column scaling
//	frame/      named columns, response series, categorical encoding,
//	              the "_constant_" intercept column
//	normtable/  discretized normal table and p-value lookup
//	regression/ Engine: design snapshot, OLS, robust covariance, report
//
// The olsreg command (cmd/olsreg) fits models from CSV files and exports the
// significance table as CSV for plotting.
//
// Quick start:
//
//	x, _ := frame.New(frame.Numeric("x", xs), frame.Categorical("day", days))
//	eng, err := regression.New(frame.NewSeries("y", ys), x,
//		regression.WithCategorical("day"))
//	res, err := eng.Fit()
//	fmt.Printf("adjusted R² %.4f\n", res.AdjustedR2)
package olsinfer
