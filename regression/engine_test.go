// SPDX-License-Identifier: MIT

package regression_test

import (
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/katalvlaran/olsinfer/frame"
	"github.com/katalvlaran/olsinfer/matrix"
	"github.com/katalvlaran/olsinfer/normtable"
	"github.com/katalvlaran/olsinfer/regression"
)

const tol = 1e-9

func mustFrame(t *testing.T, cols ...frame.Column) *frame.Frame {
	t.Helper()
	f, err := frame.New(cols...)
	require.NoError(t, err)

	return f
}

func mustFit(t *testing.T, y frame.Series, x *frame.Frame, opts ...regression.Option) *regression.Result {
	t.Helper()
	eng, err := regression.New(y, x, opts...)
	require.NoError(t, err)
	res, err := eng.Fit()
	require.NoError(t, err)

	return res
}

// Noiseless Y = 2 + 3X recovers the coefficients exactly.
func TestFit_NoiselessLine(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7}
	ys := make([]float64, len(xs))
	for i, x := range xs {
		ys[i] = 2 + 3*x
	}

	res := mustFit(t, frame.NewSeries("y", ys), mustFrame(t, frame.Numeric("x", xs)))

	require.Len(t, res.Rows, 2)
	assert.Equal(t, frame.ConstantName, res.Rows[0].Name)
	assert.Equal(t, "x", res.Rows[1].Name)
	assert.InDelta(t, 2.0, res.Rows[0].Coef, tol)
	assert.InDelta(t, 3.0, res.Rows[1].Coef, tol)
	for _, e := range res.Residuals {
		assert.InDelta(t, 0.0, e, tol)
	}
	assert.InDelta(t, 1.0, res.AdjustedR2, tol)
	assert.InDelta(t, 1.0, res.R2, tol)
	assert.Equal(t, 7, res.N)
	assert.Equal(t, 1, res.K)
	assert.Equal(t, 5, res.DegreesOfFreedom)
}

// Y = 2X exactly: zero residuals make every standard error degenerate, so
// the statistics saturate at the table bound with p = 0.
func TestFit_ExactFitSaturates(t *testing.T) {
	y := frame.NewSeries("y", []float64{2, 4, 6, 8, 10, 12})
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3, 4, 5, 6}))

	res := mustFit(t, y, x)

	assert.InDelta(t, 0.0, res.Rows[0].Coef, tol)
	assert.InDelta(t, 2.0, res.Rows[1].Coef, tol)
	assert.InDelta(t, 1.0, res.AdjustedR2, tol)

	slope := res.Rows[1]
	assert.InDelta(t, 0.0, slope.StdErr, 1e-9)
	assert.Equal(t, normtable.DefaultBound, slope.TValue)
	assert.Equal(t, 0.0, slope.PValue)
	assert.True(t, slope.Saturated)
}

// Sandwich standard errors match the closed form for a simple regression:
// Var(b) = N/(N−2) · Σ(xᵢ−x̄)²eᵢ² / Sxx².
func TestFit_RobustStdErrMatchesClosedForm(t *testing.T) {
	xs := []float64{1, 2, 3, 4, 5, 6, 7, 8}
	ys := []float64{1.1, 2.3, 2.8, 4.9, 4.1, 7.8, 5.2, 10.4}
	n := float64(len(xs))

	var xbar, ybar float64
	for i := range xs {
		xbar += xs[i] / n
		ybar += ys[i] / n
	}
	var sxx, sxy float64
	for i := range xs {
		sxx += (xs[i] - xbar) * (xs[i] - xbar)
		sxy += (xs[i] - xbar) * (ys[i] - ybar)
	}
	b := sxy / sxx
	a := ybar - b*xbar

	var num, sse, tss float64
	for i := range xs {
		e := ys[i] - a - b*xs[i]
		num += (xs[i] - xbar) * (xs[i] - xbar) * e * e
		sse += e * e
		tss += (ys[i] - ybar) * (ys[i] - ybar)
	}
	wantSE := math.Sqrt(n / (n - 2) * num / (sxx * sxx))
	wantAdj := 1 - (n-1)/(n-2)*sse/tss

	res := mustFit(t, frame.NewSeries("y", ys), mustFrame(t, frame.Numeric("x", xs)))

	slope, ok := res.Row("x")
	require.True(t, ok)
	assert.InDelta(t, a, res.Rows[0].Coef, 1e-9)
	assert.InDelta(t, b, slope.Coef, 1e-9)
	assert.InDelta(t, wantSE, slope.StdErr, 1e-9)
	assert.InDelta(t, wantAdj, res.AdjustedR2, 1e-9)
	assert.InDelta(t, slope.Coef/slope.StdErr, slope.TValue, 1e-9)
	assert.False(t, slope.Saturated)

	// p-values follow the normal tails within table resolution.
	want := 2 * distuv.UnitNormal.CDF(-math.Abs(slope.TValue))
	assert.InDelta(t, want, slope.PValue, 5e-3)
}

func TestFit_CategoricalExpansion(t *testing.T) {
	x := mustFrame(t,
		frame.Numeric("temp", []float64{10, 12, 9, 15, 11, 14, 8, 13}),
		frame.Categorical("day", []string{"mon", "tue", "mon", "wed", "tue", "wed", "mon", "tue"}),
	)
	y := frame.NewSeries("sales", []float64{20, 31, 19, 42, 28, 40, 17, 33})

	eng, err := regression.New(y, x, regression.WithCategorical("day"))
	require.NoError(t, err)

	assert.Equal(t, []string{frame.ConstantName, "temp", "day_tue", "day_wed"}, eng.Design().Names())
	assert.Equal(t, 3, eng.Regressors())
	assert.Equal(t, 8, eng.Observations())
	assert.Equal(t, "mon", eng.Categories()[0].Baseline())

	res, err := eng.Fit()
	require.NoError(t, err)
	assert.Equal(t, "sales", res.Response)
	require.Len(t, res.Categories, 1)
	assert.Equal(t, "mon", res.Categories[0].Baseline())

	require.NotNil(t, res.Correlation)
	assert.Equal(t, []string{"temp", "day_tue", "day_wed"}, res.Correlation.Names)
	for i := 0; i < 3; i++ {
		v, err := res.Correlation.Matrix.At(i, i)
		require.NoError(t, err)
		assert.InDelta(t, 1.0, v, 1e-12)
	}
}

func TestFit_CorrelationDisabled(t *testing.T) {
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3, 5}))
	y := frame.NewSeries("y", []float64{1, 3, 2, 5})

	res := mustFit(t, y, x, regression.WithCorrelation(false))
	assert.Nil(t, res.Correlation)
}

// A single-level categorical expands to nothing, leaving an intercept-only model.
func TestFit_InterceptOnly(t *testing.T) {
	x := mustFrame(t, frame.Categorical("g", []string{"a", "a", "a", "a"}))
	y := frame.NewSeries("y", []float64{1, 2, 3, 6})

	res := mustFit(t, y, x, regression.WithCategorical("g"))
	assert.Equal(t, 0, res.K)
	assert.InDelta(t, 3.0, res.Rows[0].Coef, tol)
	assert.Nil(t, res.Correlation)
	assert.InDelta(t, 0.0, res.R2, tol)
}

func TestFit_ConstantResponseHasNaNR2(t *testing.T) {
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3, 4}))
	res := mustFit(t, frame.NewSeries("y", []float64{5, 5, 5, 5}), x)
	assert.True(t, math.IsNaN(res.R2))
	assert.True(t, math.IsNaN(res.AdjustedR2))
}

func TestFit_SingularDesign(t *testing.T) {
	vals := []float64{1, 2, 3, 4, 5}
	x := mustFrame(t,
		frame.Numeric("a", vals),
		frame.Numeric("b", vals),
	)
	eng, err := regression.New(frame.NewSeries("y", []float64{1, 3, 2, 5, 4}), x)
	require.NoError(t, err)

	_, err = eng.Fit()
	assert.ErrorIs(t, err, regression.ErrSingularMatrix)
}

// Keeping every level of a category next to the intercept is collinear.
func TestFit_RetainedBaselineIsSingular(t *testing.T) {
	x := mustFrame(t,
		frame.Numeric("g_a", []float64{1, 0, 1, 0, 1, 0}),
		frame.Numeric("g_b", []float64{0, 1, 0, 1, 0, 1}),
	)
	eng, err := regression.New(frame.NewSeries("y", []float64{1, 2, 1.5, 2.5, 0.5, 3}), x)
	require.NoError(t, err)

	_, err = eng.Fit()
	assert.ErrorIs(t, err, regression.ErrSingularMatrix)
}

func TestFit_ExactZeroPivotWrapsMatrixError(t *testing.T) {
	x := mustFrame(t, frame.Numeric("z", []float64{0, 0, 0, 0}))
	eng, err := regression.New(frame.NewSeries("y", []float64{1, 2, 3, 4}), x,
		regression.WithConditionLimit(math.Inf(1)))
	require.NoError(t, err)

	_, err = eng.Fit()
	assert.ErrorIs(t, err, regression.ErrSingularMatrix)
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestFit_DegreesOfFreedom(t *testing.T) {
	// N = K + 1: one regressor, two observations.
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2}))
	eng, err := regression.New(frame.NewSeries("y", []float64{3, 5}), x)
	require.NoError(t, err)

	_, err = eng.Fit()
	assert.ErrorIs(t, err, regression.ErrDegreesOfFreedom)
}

func TestNew_Errors(t *testing.T) {
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3}))

	_, err := regression.New(frame.NewSeries("y", []float64{1, 2}), x)
	assert.ErrorIs(t, err, regression.ErrShapeMismatch)

	_, err = regression.New(frame.NewSeries("y", nil), x)
	assert.ErrorIs(t, err, regression.ErrShapeMismatch)

	_, err = regression.New(frame.NewSeries("y", []float64{1, 2, 3}), nil)
	assert.ErrorIs(t, err, regression.ErrShapeMismatch)

	_, err = regression.New(frame.NewSeries("y", []float64{1, 2, 3}), x, regression.WithCategorical("nope"))
	assert.ErrorIs(t, err, regression.ErrColumnNotFound)
	assert.ErrorIs(t, err, frame.ErrColumnNotFound)

	_, err = regression.New(frame.NewSeries("y", []float64{1, math.NaN(), 3}), x)
	assert.ErrorIs(t, err, regression.ErrNonFinite)

	bad := mustFrame(t, frame.Numeric("x", []float64{1, math.Inf(1), 3}))
	_, err = regression.New(frame.NewSeries("y", []float64{1, 2, 3}), bad)
	assert.ErrorIs(t, err, regression.ErrNonFinite)

	cat := mustFrame(t, frame.Categorical("g", []string{"a", "b", "a"}))
	_, err = regression.New(frame.NewSeries("y", []float64{1, 2, 3}), cat)
	assert.ErrorIs(t, err, frame.ErrNonNumeric)
}

func TestNew_DoesNotMutateInputs(t *testing.T) {
	yv := []float64{1.5, 2.1, 2.9, 4.4, 4.8}
	xv := []float64{1, 2, 3, 4, 5}
	y := frame.Series{Name: "y", Values: yv}
	x := mustFrame(t, frame.Numeric("x", xv), frame.Categorical("g", []string{"p", "q", "p", "q", "p"}))

	eng, err := regression.New(y, x, regression.WithCategorical("g"))
	require.NoError(t, err)
	first, err := eng.Fit()
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "g"}, x.Names())
	assert.False(t, x.HasConstant())
	assert.Equal(t, []float64{1.5, 2.1, 2.9, 4.4, 4.8}, yv)

	// Later changes to caller data do not reach the engine.
	yv[0] = 100
	second, err := eng.Fit()
	require.NoError(t, err)
	assert.Equal(t, first.Coefficients(), second.Coefficients())
	assert.Equal(t, first.StdErrors(), second.StdErrors())
}

func TestFit_ConcurrentCalls(t *testing.T) {
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3, 4, 5, 6}))
	eng, err := regression.New(frame.NewSeries("y", []float64{1.2, 1.9, 3.2, 3.8, 5.1, 6.3}), x)
	require.NoError(t, err)
	want, err := eng.Fit()
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([]*regression.Result, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = eng.Fit()
		}(i)
	}
	wg.Wait()
	for _, r := range results {
		require.NotNil(t, r)
		assert.Equal(t, want.Coefficients(), r.Coefficients())
	}
}

func TestWithTable_SharedAndLegacyKernel(t *testing.T) {
	tbl := normtable.New(normtable.WithKernel(normtable.KernelLegacy))
	x := mustFrame(t, frame.Numeric("x", []float64{1, 2, 3, 4, 5, 6, 7, 8}))
	y := frame.NewSeries("y", []float64{1.1, 2.3, 2.8, 4.9, 4.1, 7.8, 5.2, 10.4})

	eng, err := regression.New(y, x, regression.WithTable(tbl))
	require.NoError(t, err)
	assert.Same(t, tbl, eng.Table())

	legacy, err := eng.Fit()
	require.NoError(t, err)
	standard := mustFit(t, y, x)
	assert.InDelta(t, standard.Rows[1].PValue, legacy.Rows[1].PValue, 1e-12)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { regression.WithCategorical("") })
	assert.Panics(t, func() { regression.WithTable(nil) })
	assert.Panics(t, func() { regression.WithConditionLimit(0.5) })
	assert.Panics(t, func() { regression.WithConditionLimit(math.NaN()) })
	assert.Panics(t, func() { regression.WithDegenerateTolerance(-1) })
}

func BenchmarkFit(b *testing.B) {
	const n = 500
	xs, zs, ys := make([]float64, n), make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i] = float64(i % 37)
		zs[i] = float64((i * 7) % 11)
		ys[i] = 1 + 0.5*xs[i] - 2*zs[i] + float64(i%5)
	}
	x, _ := frame.New(frame.Numeric("x", xs), frame.Numeric("z", zs))
	eng, err := regression.New(frame.NewSeries("y", ys), x)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := eng.Fit(); err != nil {
			b.Fatal(err)
		}
	}
}
