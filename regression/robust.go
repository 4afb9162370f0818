// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"math"

	"github.com/katalvlaran/olsinfer/matrix"
)

// robustStdErrors returns White (HC sandwich) standard errors, one per
// design column.
//
//	Bread = (XᵗX/N)⁻¹
//	Meat  = Xᵗ·diag(e²)·X / (N−K−1)
//	V     = Bread·Meat·Bread
//	se_j  = √(V_jj / N)
//
// diag(e²)·X is formed by scaling the rows of X, so no N×N matrix exists.
// Errors are assumed independent and uncorrelated, not homoskedastic.
func robustStdErrors(X *matrix.Dense, fit *olsFit) ([]float64, error) {
	n := float64(fit.n)

	// Bread
	scaled, err := matrix.Scale(fit.xtx, 1/n)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}
	bread, err := matrix.Inverse(scaled)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, singularErrorf(opRobust, err)
		}
		return nil, regressionErrorf(opRobust, err)
	}

	// Meat
	e2 := make([]float64, len(fit.residuals))
	for i, e := range fit.residuals {
		e2[i] = e * e
	}
	weighted, err := matrix.ScaleRows(X, e2)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}
	xtwx, err := matrix.Mul(fit.xt, weighted)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}
	meat, err := matrix.Scale(xtwx, 1/float64(fit.dof))
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}

	// Sandwich
	bm, err := matrix.Mul(bread, meat)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}
	V, err := matrix.Mul(bm, bread)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}
	diag, err := matrix.Diagonal(V)
	if err != nil {
		return nil, regressionErrorf(opRobust, err)
	}

	se := make([]float64, len(diag))
	for j, v := range diag {
		// V is PSD; rounding can leave a tiny negative on the diagonal.
		se[j] = math.Sqrt(math.Max(v, 0) / n)
	}

	return se, nil
}
