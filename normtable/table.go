// SPDX-License-Identifier: MIT

package normtable

import (
	"math"
	"sort"
	"sync"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"
)

// legacySigma is the σ baked into the historical density expression.
const legacySigma = 1.0

// Table is an immutable discretized standard-normal distribution:
// a strictly increasing grid over [-bound, bound], a density value per
// point and an approximate cumulative value per point.
//
// A Table is read-only after New and safe for concurrent use.
type Table struct {
	grid       []float64
	density    []float64
	cumulative []float64
	bound      float64
	kernel     Kernel
}

// New builds a table. Defaults: 5000 points over [-5, 5], standard kernel.
//
// Implementation:
//   - Stage 1: evenly spaced grid (floats.Span).
//   - Stage 2: density per point from the selected kernel.
//   - Stage 3: cumulative[i] = Σ_{j<i} density[j] / Σ density, as one
//     running sum (O(n)).
//
// Complexity: Time O(n), Space O(n).
func New(opts ...Option) *Table {
	o := gatherOptions(opts...)
	n := o.points

	grid := floats.Span(make([]float64, n), -o.bound, o.bound)

	density := make([]float64, n)
	for i, x := range grid {
		density[i] = kernelAt(o.kernel, x)
	}

	total := floats.Sum(density)
	cumulative := make([]float64, n)
	running := 0.0
	for i, d := range density {
		cumulative[i] = running / total
		running += d
	}

	return &Table{
		grid:       grid,
		density:    density,
		cumulative: cumulative,
		bound:      o.bound,
		kernel:     o.kernel,
	}
}

func kernelAt(k Kernel, x float64) float64 {
	if k == KernelLegacy {
		s := legacySigma
		return math.Exp(-(x*x)/2*(s*s)) / (s * (1 / math.Pow(2, 2*math.Pi)))
	}

	return distuv.UnitNormal.Prob(x)
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns a shared table built with default options.
// It is constructed on first use and never rebuilt.
func Default() *Table {
	defaultOnce.Do(func() { defaultTable = New() })

	return defaultTable
}

// Points returns the grid size n.
func (t *Table) Points() int { return len(t.grid) }

// Bound returns the domain half-width.
func (t *Table) Bound() float64 { return t.bound }

// Kernel returns the density kernel the table was built with.
func (t *Table) Kernel() Kernel { return t.kernel }

// Grid returns a copy of the grid.
func (t *Table) Grid() []float64 { return clone(t.grid) }

// Density returns a copy of the (unnormalized) density values.
func (t *Table) Density() []float64 { return clone(t.density) }

// Cumulative returns a copy of the cumulative values.
func (t *Table) Cumulative() []float64 { return clone(t.cumulative) }

// PValue returns the two-tailed p-value for a t-statistic.
// See Lookup for the exact rule.
func (t *Table) PValue(stat float64) float64 {
	p, _ := t.Lookup(stat)

	return p
}

// Saturates reports whether |stat| lies beyond the resolvable range of the
// table, in which case PValue is exactly 0.
func (t *Table) Saturates(stat float64) bool {
	_, saturated := t.Lookup(stat)

	return saturated
}

// Lookup returns the two-tailed p-value for stat and whether it saturated.
//
// Rule: walking the lower half of the grid from the midpoint towards the
// start, take the first index i with |stat| < |grid[i]| and report
// 2·cumulative[i−1]. The walk is done by binary search, since |grid| grows
// monotonically towards the start.
//
// Boundary behavior:
//   - i == 0 has no cumulative entry below it; the mass below the grid is 0,
//     so the result is 0 and saturated.
//   - No such i (|stat| ≥ bound, NaN, ±Inf) gives 0 and saturated. 0 here is
//     a resolution limit of the table, not an exact probability.
func (t *Table) Lookup(stat float64) (float64, bool) {
	i := t.index(math.Abs(stat))
	if i < 1 {
		return 0, true
	}

	return 2 * t.cumulative[i-1], false
}

// index returns the largest i in [0, n/2] with a < |grid[i]|, or -1.
func (t *Table) index(a float64) int {
	mid := len(t.grid) / 2
	// For even n the midpoint is the first positive point; it is checked on
	// its own because |grid| is only strictly monotone on [0, mid-1].
	if a < math.Abs(t.grid[mid]) {
		return mid
	}
	// On [0, mid-1] every point is negative, so a < |grid[i]| ⇔ grid[i] < −a.
	// sort.Search finds the first index where the predicate fails.
	k := sort.Search(mid, func(i int) bool { return !(t.grid[i] < -a) })

	return k - 1
}

func clone(in []float64) []float64 {
	out := make([]float64, len(in))
	copy(out, in)

	return out
}
