// SPDX-License-Identifier: MIT

package regression

import (
	"fmt"
	"math"

	logging "github.com/ipfs/go-log/v2"

	"github.com/katalvlaran/olsinfer/frame"
	"github.com/katalvlaran/olsinfer/matrix"
	"github.com/katalvlaran/olsinfer/normtable"
)

var log = logging.Logger("olsreg/regression")

// Engine holds one fixed model: a snapshot of the response, the final design
// matrix (constant first, categoricals expanded) and the configuration.
// Engine is immutable after New; Fit may be called repeatedly and
// concurrently.
type Engine struct {
	response   string
	y          []float64
	design     *frame.Frame
	x          *matrix.Dense
	categories frame.CategoryMap
	opts       Options
}

// New validates and snapshots the inputs and fixes the design matrix.
//
// Implementation:
//   - Stage 1: shape checks (non-empty response, at least one regressor,
//     equal row counts).
//   - Stage 2: finiteness of the response and every numeric regressor.
//   - Stage 3: encode WithCategorical columns (first-seen baseline dropped).
//   - Stage 4: insert the constant column and export the design to a Dense.
//
// Errors:
//   - ErrShapeMismatch, ErrNonFinite, ErrColumnNotFound,
//     frame.ErrDuplicateColumn, frame.ErrConstantPresent (encoding requested on
//     regressors that already carry the constant), frame.ErrNonNumeric (a
//     categorical column that was not listed for encoding).
func New(y frame.Series, x *frame.Frame, opts ...Option) (*Engine, error) {
	o := gatherOptions(opts...)

	// Stage 1
	if y.Len() == 0 || x == nil || x.Len() == 0 || x.Rows() != y.Len() {
		return nil, regressionErrorf(opNew, ErrShapeMismatch)
	}

	// Stage 2
	if err := checkFinite(y, x); err != nil {
		return nil, regressionErrorf(opNew, err)
	}

	// Stage 3
	encoded, cats, err := x.EncodeAll(o.categorical...)
	if err != nil {
		return nil, regressionErrorf(opNew, err)
	}

	// Stage 4
	design := encoded.WithConstant()
	X, err := design.Dense()
	if err != nil {
		return nil, regressionErrorf(opNew, err)
	}

	e := &Engine{
		response:   y.Name,
		y:          append([]float64(nil), y.Values...),
		design:     design,
		x:          X,
		categories: cats,
		opts:       o,
	}
	log.Debugw("design built",
		"response", e.response,
		"rows", X.Rows(),
		"columns", design.Names(),
		"categorical", len(cats),
	)

	return e, nil
}

func checkFinite(y frame.Series, x *frame.Frame) error {
	for i, v := range y.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: response %q row %d", ErrNonFinite, y.Name, i)
		}
	}
	for _, name := range x.Names() {
		col, err := x.Column(name)
		if err != nil {
			return err
		}
		for i, v := range col.Numbers {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return fmt.Errorf("%w: column %q row %d", ErrNonFinite, name, i)
			}
		}
	}

	return nil
}

// Design returns a copy of the final design matrix as a frame.
func (e *Engine) Design() *frame.Frame { return e.design.Clone() }

// Table returns the significance table used for p-values.
func (e *Engine) Table() *normtable.Table { return e.opts.table }

// Categories returns the encoded categorical levels, baseline first.
func (e *Engine) Categories() frame.CategoryMap { return cloneCategories(e.categories) }

// Observations returns N.
func (e *Engine) Observations() int { return len(e.y) }

// Regressors returns K, the number of design columns excluding the constant.
func (e *Engine) Regressors() int { return e.design.Len() - 1 }

// Fit estimates the model and assembles the report.
// It reads engine state only and never mutates it.
//
// Implementation:
//   - Stage 1: OLS by normal equations, with the degrees-of-freedom and
//     conditioning guards.
//   - Stage 2: heteroskedasticity-robust standard errors.
//   - Stage 3: t-statistics, p-values and the optional correlation matrix.
//
// Errors:
//   - ErrDegreesOfFreedom, ErrSingularMatrix.
func (e *Engine) Fit() (*Result, error) {
	ols, err := fitOLS(e.x, e.y, e.opts.conditionLimit)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	log.Debugw("ols solved", "response", e.response, "r2", ols.r2, "adjusted_r2", ols.adjR2)

	se, err := robustStdErrors(e.x, ols)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}
	log.Debugw("covariance done", "response", e.response, "dof", ols.dof)

	res, err := e.buildReport(ols, se)
	if err != nil {
		return nil, regressionErrorf(opFit, err)
	}

	return res, nil
}

func cloneCategories(in frame.CategoryMap) frame.CategoryMap {
	if in == nil {
		return nil
	}
	out := make(frame.CategoryMap, len(in))
	for i, c := range in {
		out[i] = frame.CategoryLevels{Column: c.Column, Levels: append([]string(nil), c.Levels...)}
	}

	return out
}
