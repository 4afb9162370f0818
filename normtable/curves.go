// SPDX-License-Identifier: MIT

package normtable

// Curves is the raw material for plotting a table: density and cumulative
// values against both the support (Grid) and the grid position (Index).
// ScaledDensity is density/n, which keeps the density curve on a scale
// comparable to the cumulative one.
type Curves struct {
	Index         []int
	Grid          []float64
	Density       []float64
	ScaledDensity []float64
	Cumulative    []float64
}

// Curves returns copies of the table arrays ready for an external renderer.
func (t *Table) Curves() Curves {
	n := len(t.grid)
	idx := make([]int, n)
	scaled := make([]float64, n)
	inv := 1 / float64(n)
	for i, d := range t.density {
		idx[i] = i
		scaled[i] = d * inv
	}

	return Curves{
		Index:         idx,
		Grid:          t.Grid(),
		Density:       t.Density(),
		ScaledDensity: scaled,
		Cumulative:    t.Cumulative(),
	}
}
