// SPDX-License-Identifier: MIT

package normtable

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPoints is the number of grid points.
	DefaultPoints = 5000

	// DefaultBound is the half-width of the symmetric domain [-bound, bound].
	// Probability mass beyond it is not represented.
	DefaultBound = 5.0

	// DefaultKernel is the density shape used to fill the table.
	DefaultKernel = KernelStandard

	// minPoints keeps at least one grid point on each side of the midpoint.
	minPoints = 3
)

const (
	panicPointsInvalid = "normtable: WithPoints: n must be >= 3"
	panicBoundInvalid  = "normtable: WithBound: bound must be finite and > 0"
	panicKernelInvalid = "normtable: WithKernel: unknown kernel"
)

// Kernel selects the density expression evaluated at each grid point.
type Kernel int

const (
	// KernelStandard is the standard normal density φ(x) = e^{−x²/2}/√(2π).
	KernelStandard Kernel = iota

	// KernelLegacy reproduces the historical expression
	// exp(−x²/2·σ²) / (σ·(1/2^{2π})) with σ = 1. It differs from φ only by a
	// constant factor, so cumulative values and p-values are identical; only
	// the exported density curve is scaled differently.
	KernelLegacy
)

// String implements fmt.Stringer.
func (k Kernel) String() string {
	switch k {
	case KernelStandard:
		return "standard"
	case KernelLegacy:
		return "legacy"
	default:
		return "unknown"
	}
}

// Option mutates internal options. Constructors panic only on nonsensical values.
type Option func(*Options)

// Options stores the effective table configuration.
type Options struct {
	points int
	bound  float64
	kernel Kernel
}

// WithPoints sets the number of grid points (n >= 3).
func WithPoints(n int) Option {
	if n < minPoints {
		panic(panicPointsInvalid)
	}

	return func(o *Options) { o.points = n }
}

// WithBound sets the domain half-width (finite, > 0).
func WithBound(bound float64) Option {
	if math.IsNaN(bound) || math.IsInf(bound, 0) || bound <= 0 {
		panic(panicBoundInvalid)
	}

	return func(o *Options) { o.bound = bound }
}

// WithKernel selects the density kernel.
func WithKernel(k Kernel) Option {
	if k != KernelStandard && k != KernelLegacy {
		panic(panicKernelInvalid)
	}

	return func(o *Options) { o.kernel = k }
}

// gatherOptions applies setters on top of the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		points: DefaultPoints,
		bound:  DefaultBound,
		kernel: DefaultKernel,
	}
	for _, set := range user {
		set(&o) // last-writer-wins
	}

	return o
}
