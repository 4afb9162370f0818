// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/olsinfer/matrix"
)

// olsFit carries everything the covariance and report stages consume.
type olsFit struct {
	n, k, dof int
	xt        matrix.Matrix // Xᵗ
	xtx       matrix.Matrix // XᵗX
	beta      []float64
	fitted    []float64
	residuals []float64
	sse       float64 // Σe²
	spread    float64 // Σ(Y−Ȳ)², or ΣY² for a constant response
	r2        float64
	adjR2     float64
}

// exact reports a fit whose residual sum of squares is negligible next to
// the spread of the response. The ratio is unit-free.
func (f *olsFit) exact(tol float64) bool { return f.sse <= tol*f.spread }

// fitOLS solves β = (XᵗX)⁻¹XᵗY by the normal equations.
//
// Implementation:
//   - Stage 1: N−K−1 > 0, before any algebra.
//   - Stage 2: XᵗX (Gram) and the 1-norm condition number (gonum mat.Cond)
//     of its equilibrated form D^-½·XᵗX·D^-½, D = diag(XᵗX); above limit
//     means ErrSingularMatrix. Equilibration makes the guard blind to column
//     units, so only collinearity trips it.
//   - Stage 3: inverse, Xᵗ·Y and β.
//   - Stage 4: fitted values, residuals, R² and adjusted R².
//
// A constant response has no variance to explain: R² and adjusted R² are NaN.
func fitOLS(X *matrix.Dense, y []float64, limit float64) (*olsFit, error) {
	n, cols := X.Rows(), X.Cols()
	k := cols - 1

	// Stage 1
	dof := n - k - 1
	if dof <= 0 {
		return nil, regressionErrorf(opOLS,
			fmt.Errorf("%w: N=%d K=%d", ErrDegreesOfFreedom, n, k))
	}

	// Stage 2
	xtx, err := matrix.Gram(X)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}
	cond, err := equilibratedCondition(xtx)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}
	if !(cond <= limit) {
		return nil, singularErrorf(opOLS, fmt.Errorf("condition number %.3g exceeds %.3g", cond, limit))
	}

	// Stage 3
	inv, err := matrix.Inverse(xtx)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return nil, singularErrorf(opOLS, err)
		}
		return nil, regressionErrorf(opOLS, err)
	}
	xt, err := matrix.Transpose(X)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}
	xty, err := matrix.MatVec(xt, y)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}
	beta, err := matrix.MatVec(inv, xty)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}

	// Stage 4
	fitted, err := matrix.MatVec(X, beta)
	if err != nil {
		return nil, regressionErrorf(opOLS, err)
	}
	residuals := make([]float64, n)
	floats.SubTo(residuals, y, fitted)

	mean := floats.Sum(y) / float64(n)
	tss := 0.0
	for _, v := range y {
		d := v - mean
		tss += d * d
	}
	sse := floats.Dot(residuals, residuals)
	spread := tss
	if spread == 0 {
		spread = floats.Dot(y, y)
	}
	r2, adj := math.NaN(), math.NaN()
	if tss > 0 {
		r2 = 1 - sse/tss
		adj = 1 - (float64(n-1)/float64(dof))*(sse/tss)
	}

	return &olsFit{
		n: n, k: k, dof: dof,
		xt: xt, xtx: xtx,
		beta: beta, fitted: fitted, residuals: residuals,
		sse: sse, spread: spread,
		r2: r2, adjR2: adj,
	}, nil
}

// equilibratedCondition returns the 1-norm condition number of
// D^-½·G·D^-½ with D = diag(G), i.e. G rescaled to a unit diagonal.
// A zero diagonal entry (an all-zero column) or an exactly singular matrix
// yields +Inf.
func equilibratedCondition(G matrix.Matrix) (float64, error) {
	diag, err := matrix.Diagonal(G)
	if err != nil {
		return 0, err
	}
	inv := make([]float64, len(diag))
	for i, d := range diag {
		if !(d > 0) {
			return math.Inf(1), nil
		}
		inv[i] = 1 / math.Sqrt(d)
	}
	rs, err := matrix.ScaleRows(G, inv)
	if err != nil {
		return 0, err
	}
	S, err := matrix.ScaleCols(rs, inv)
	if err != nil {
		return 0, err
	}

	r, c := S.Rows(), S.Cols()
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if buf[i*c+j], err = S.At(i, j); err != nil {
				return 0, err
			}
		}
	}

	return mat.Cond(mat.NewDense(r, c, buf), 1), nil
}
