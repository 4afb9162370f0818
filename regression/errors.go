// SPDX-License-Identifier: MIT

package regression

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/olsinfer/frame"
)

var (
	// ErrShapeMismatch indicates a response whose length differs from the
	// regressor row count, an empty response, or no regressors at all.
	ErrShapeMismatch = errors.New("regression: response and regressors have incompatible shapes")

	// ErrColumnNotFound indicates a categorical column name absent from the
	// regressors. It is the frame package sentinel, so either can be matched.
	ErrColumnNotFound = frame.ErrColumnNotFound

	// ErrSingularMatrix indicates that XᵗX (or the bread matrix) cannot be
	// inverted reliably: a zero pivot or a condition number above the limit.
	ErrSingularMatrix = errors.New("regression: singular or ill-conditioned design")

	// ErrDegreesOfFreedom indicates N−K−1 ≤ 0.
	ErrDegreesOfFreedom = errors.New("regression: not enough observations for the number of regressors")

	// ErrNonFinite indicates NaN or ±Inf in the response or the regressors.
	ErrNonFinite = errors.New("regression: non-finite input value")
)

// Operation tags used in error wrapping.
const (
	opNew    = "New"
	opFit    = "Fit"
	opOLS    = "OLS"
	opRobust = "RobustCovariance"
	opReport = "Report"
)

// regressionErrorf wraps err with an operation tag, preserving it via %w.
func regressionErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}

// singularErrorf reports ErrSingularMatrix while keeping the underlying
// cause (for example matrix.ErrSingular) matchable with errors.Is.
func singularErrorf(op string, cause error) error {
	if cause == nil {
		return regressionErrorf(op, ErrSingularMatrix)
	}

	return fmt.Errorf("%s: %w: %w", op, ErrSingularMatrix, cause)
}
