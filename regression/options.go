// SPDX-License-Identifier: MIT

package regression

import (
	"math"

	"github.com/katalvlaran/olsinfer/normtable"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultConditionLimit is the largest accepted 1-norm condition number
	// of XᵗX. Designs above it are reported as ErrSingularMatrix.
	DefaultConditionLimit = 1e12

	// DefaultDegenerateTolerance is the residual share under which a fit is
	// treated as exact: Σe² ≤ tol·Σ(Y−Ȳ)². Both sides carry the squared
	// units of Y, so the rule does not depend on scale.
	DefaultDegenerateTolerance = 1e-16

	// DefaultCorrelation enables the regressor correlation matrix in Result.
	DefaultCorrelation = true
)

const (
	panicCategoricalEmpty = "regression: WithCategorical: empty column name"
	panicTableNil         = "regression: WithTable: nil table"
	panicConditionInvalid = "regression: WithConditionLimit: limit must be >= 1"
	panicToleranceInvalid = "regression: WithDegenerateTolerance: tolerance must be finite and >= 0"
)

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective engine configuration.
type Options struct {
	categorical    []string
	correlation    bool
	table          *normtable.Table
	conditionLimit float64
	degenerateTol  float64
}

// WithCategorical marks columns for dummy encoding, in the given order.
// Repeated calls accumulate.
func WithCategorical(names ...string) Option {
	for _, n := range names {
		if n == "" {
			panic(panicCategoricalEmpty)
		}
	}
	cp := append([]string(nil), names...)

	return func(o *Options) { o.categorical = append(o.categorical, cp...) }
}

// WithCorrelation toggles the regressor correlation matrix (default true).
func WithCorrelation(enabled bool) Option {
	return func(o *Options) { o.correlation = enabled }
}

// WithTable sets the significance table. Tables are read-only, so one table
// may be shared by any number of engines.
func WithTable(t *normtable.Table) Option {
	if t == nil {
		panic(panicTableNil)
	}

	return func(o *Options) { o.table = t }
}

// WithConditionLimit sets the conditioning guard for XᵗX. +Inf disables it,
// leaving only exact zero-pivot detection.
func WithConditionLimit(limit float64) Option {
	if math.IsNaN(limit) || limit < 1 {
		panic(panicConditionInvalid)
	}

	return func(o *Options) { o.conditionLimit = limit }
}

// WithDegenerateTolerance sets the residual share Σe²/Σ(Y−Ȳ)² at or below
// which the fit is exact and every statistic saturates. 0 requires Σe² = 0.
func WithDegenerateTolerance(tol float64) Option {
	if math.IsNaN(tol) || math.IsInf(tol, 0) || tol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) { o.degenerateTol = tol }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		correlation:    DefaultCorrelation,
		conditionLimit: DefaultConditionLimit,
		degenerateTol:  DefaultDegenerateTolerance,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}
	if o.table == nil {
		o.table = normtable.Default()
	}

	return o
}
