// SPDX-License-Identifier: MIT
// Package matrix - element-wise broadcasting micro-kernels.
//
// Purpose:
//   - Centralize the tight loops used by the statistics and regression code:
//     subtract a per-column vector, scale each row or each column by a factor.
//   - Every kernel returns a fresh *Dense; inputs are never mutated.

package matrix

const (
	opBroadcastSubCols = "BroadcastSubCols"
	opScaleRows        = "ScaleRows"
	opScaleCols        = "ScaleCols"
)

// ScaleRows computes out[i,j] = X[i,j] * scale[i].
// With scale = e² this is diag(e²)·X, the weighted design used by sandwich
// covariance estimators, without ever forming the r×r diagonal.
// Time: O(r*c). Space: O(r*c).
func ScaleRows(X Matrix, scale []float64) (Matrix, error) { return ewScaleRows(X, scale) }

// ScaleCols computes out[i,j] = X[i,j] * scale[j].
// Time: O(r*c). Space: O(r*c).
func ScaleCols(X Matrix, scale []float64) (Matrix, error) { return ewScaleCols(X, scale) }

// ewBroadcastSubCols computes out[i,j] = X[i,j] - colMeans[j].
func ewBroadcastSubCols(X Matrix, colMeans []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(colMeans, c); err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opBroadcastSubCols, err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] - colMeans[j]
		}
	}

	return out, nil
}

// ewScaleCols computes out[i,j] = X[i,j] * scale[j].
// Use factors 1/std for z-scoring, or 0 for degenerate columns.
func ewScaleCols(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, c); err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleCols, err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		for j := 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] * scale[j]
		}
	}

	return out, nil
}

// ewScaleRows computes out[i,j] = X[i,j] * scale[i].
func ewScaleRows(X Matrix, scale []float64) (Matrix, error) {
	if err := ValidateNotNil(X); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	r, c := X.Rows(), X.Cols()
	if err := ValidateVecLen(scale, r); err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	src, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	out, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opScaleRows, err)
	}
	for i := 0; i < r; i++ {
		base := i * c
		sf := scale[i] // scale factor for row i
		for j := 0; j < c; j++ {
			out.data[base+j] = src.data[base+j] * sf
		}
	}

	return out, nil
}
