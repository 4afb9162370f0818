// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/katalvlaran/olsinfer/frame"
	"github.com/katalvlaran/olsinfer/matrix"
)

// buildReport pairs every design column with its coefficient, standard
// error, t-statistic and p-value, and attaches the correlation matrix.
//
// An exact fit (Σe² ≤ tol·Σ(Y−Ȳ)²) has no sampling error left to measure:
// every t is pinned to ±bound (the sign of coef, + for zero), p is 0 and the
// row is Saturated. Otherwise t = coef/se; a standard error of exactly zero
// is pinned the same way.
func (e *Engine) buildReport(fit *olsFit, se []float64) (*Result, error) {
	tbl := e.opts.table
	bound := tbl.Bound()
	names := e.design.Names()
	exact := fit.exact(e.opts.degenerateTol)

	rows := make([]Row, len(names))
	for j, name := range names {
		coef := fit.beta[j]
		row := Row{Name: name, Coef: coef, StdErr: se[j]}
		if exact || se[j] == 0 {
			row.TValue = bound
			if coef < 0 {
				row.TValue = -bound
			}
			row.PValue, row.Saturated = 0, true
		} else {
			row.TValue = coef / se[j]
			row.PValue, row.Saturated = tbl.Lookup(row.TValue)
		}
		rows[j] = row
	}

	res := &Result{
		Response:         e.response,
		Rows:             rows,
		R2:               fit.r2,
		AdjustedR2:       fit.adjR2,
		N:                fit.n,
		K:                fit.k,
		DegreesOfFreedom: fit.dof,
		Fitted:           fit.fitted,
		Residuals:        fit.residuals,
		Categories:       cloneCategories(e.categories),
	}

	if e.opts.correlation && fit.k > 0 {
		corr, err := e.correlation()
		if err != nil {
			return nil, regressionErrorf(opReport, err)
		}
		res.Correlation = corr
	}

	return res, nil
}

// correlation computes the regressor correlation matrix, constant excluded.
func (e *Engine) correlation() (*Correlation, error) {
	regs, err := e.design.Drop(frame.ConstantName)
	if err != nil {
		return nil, err
	}
	X, err := regs.Dense()
	if err != nil {
		return nil, err
	}
	C, _, _, err := matrix.Correlation(X)
	if err != nil {
		return nil, err
	}

	return &Correlation{Names: regs.Names(), Matrix: C}, nil
}
