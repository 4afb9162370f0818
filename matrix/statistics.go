// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Column statistics used for regression diagnostics: centering and
//     Pearson correlation, expressed as compositions over the canonical
//     kernels (Transpose/Mul/Scale) and the broadcasting micro-kernels.
//
// Exposed API:
//   - CenterColumns(X) -> (Xc, means)
//   - Correlation(X)   -> (Corr, means, stds)

package matrix

import "math"

const (
	opCenterColumns = "CenterColumns"
	opCorrelation   = "Correlation"
)

// CenterColumns returns a centered copy Xc = X − mean(X, by columns) and the column means.
// Time: O(r*c). Space: O(r*c).
func CenterColumns(X Matrix) (Matrix, []float64, error) { return centerColumns(X) }

// Correlation computes the Pearson correlation of columns via z-scoring:
//
//	Z = (X - mean) / std,  std^2 = Σ (Xc)^2 / (n-1),  degenerate std==0 ⇒ column zeroed.
//	Corr = (Zᵀ Z)/(n-1).
//
// Returns Corr, means, stds.
// Time: O(r*c + r*c^2). Space: O(r*c + c^2).
func Correlation(X Matrix) (Matrix, []float64, []float64, error) { return correlation(X) }

// centerColumns subtracts the per-column mean from every element.
func centerColumns(X Matrix) (Matrix, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	// Stage 1: accumulate column sums in a single i→j pass.
	r, c := src.r, src.c
	means := make([]float64, c)
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			means[j] += src.data[base+j]
		}
	}

	// Stage 2: sums → means.
	invR := 1.0 / float64(r)
	for j := 0; j < c; j++ {
		means[j] *= invR
	}

	// Stage 3: broadcast-subtract.
	Xc, err := ewBroadcastSubCols(src, means)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterColumns, err)
	}

	return Xc, means, nil
}

// correlation computes Corr = (Zᵀ Z)/(r-1) where Z = (X − mean) * diag(1/std).
// Degenerate std==0 → that column (and its row in Corr) becomes all zeros,
// so the diagonal is 1 for non-degenerate columns and 0 otherwise.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (r<2).
func correlation(X Matrix) (Matrix, []float64, []float64, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	r, c := X.Rows(), X.Cols()
	// Sample correlation requires at least two observations.
	if r < 2 {
		return nil, nil, nil, matrixErrorf(opCorrelation, ErrDimensionMismatch)
	}

	// Stage 1 (Center).
	XcM, means, err := centerColumns(X)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Xc := XcM.(*Dense)

	// Stage 2 (Std): std[j] = sqrt( Σ_i Xc[i,j]^2 / (r-1) ).
	stds := make([]float64, c)
	inv := 1.0 / float64(r-1)
	var v float64
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			v = Xc.data[base+j]
			stds[j] += v * v
		}
	}
	invStd := make([]float64, c)
	for j := 0; j < c; j++ {
		stds[j] = math.Sqrt(stds[j] * inv)
		if stds[j] > 0 {
			invStd[j] = 1.0 / stds[j]
		}
	}

	// Stage 3 (Z-score) and Stage 4 (Corr).
	Z, err := ewScaleCols(Xc, invStd)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	G, err := Gram(Z)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}
	Corr, err := Scale(G, inv)
	if err != nil {
		return nil, nil, nil, matrixErrorf(opCorrelation, err)
	}

	return Corr, means, stds, nil
}
