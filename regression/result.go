// SPDX-License-Identifier: MIT

package regression

import (
	"github.com/katalvlaran/olsinfer/frame"
	"github.com/katalvlaran/olsinfer/matrix"
)

// Row is one line of the coefficient table.
//
// Saturated marks a statistic at or beyond the table bound (including a
// degenerate zero standard error); its PValue of 0 is a resolution limit,
// not an exact probability.
type Row struct {
	Name      string
	Coef      float64
	StdErr    float64
	TValue    float64
	PValue    float64
	Saturated bool
}

// Correlation is the Pearson correlation matrix of the regressors, constant
// excluded, in design order. Zero-variance columns have all-zero entries.
type Correlation struct {
	Names  []string
	Matrix matrix.Matrix
}

// Result is the outcome of Engine.Fit. Rows follow the design column order:
// the constant first, then the regressors with categoricals expanded in place.
type Result struct {
	Response         string
	Rows             []Row
	R2               float64
	AdjustedR2       float64
	N                int
	K                int
	DegreesOfFreedom int
	Fitted           []float64
	Residuals        []float64
	Categories       frame.CategoryMap
	Correlation      *Correlation // nil when disabled or K = 0
}

// Row returns the row for a design column name.
func (r *Result) Row(name string) (Row, bool) {
	for _, row := range r.Rows {
		if row.Name == name {
			return row, true
		}
	}

	return Row{}, false
}

// Coefficients returns β in design column order.
func (r *Result) Coefficients() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.Coef
	}

	return out
}

// StdErrors returns the robust standard errors in design column order.
func (r *Result) StdErrors() []float64 {
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		out[i] = row.StdErr
	}

	return out
}
