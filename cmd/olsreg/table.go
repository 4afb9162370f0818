// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"math"
	"strconv"

	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/olsinfer/normtable"
)

var tableCmd = &cli.Command{
	Name:  "table",
	Usage: "Write the discretized normal table as CSV (index,x,density,cumulative)",
	Flags: append([]cli.Flag{
		&cli.BoolFlag{
			Name:  "scaled-density",
			Usage: "divide density by the number of points, as plotted next to the cumulative curve",
		},
	}, tableFlags...),
	Action: func(cctx *cli.Context) error {
		tbl, err := tableFromFlags(cctx)
		if err != nil {
			return err
		}
		curves := tbl.Curves()
		density := curves.Density
		if cctx.Bool("scaled-density") {
			density = curves.ScaledDensity
		}

		w := csv.NewWriter(cctx.App.Writer)
		if err := w.Write([]string{"index", "x", "density", "cumulative"}); err != nil {
			return xerrors.Errorf("writing header: %w", err)
		}
		for i := range curves.Index {
			rec := []string{
				strconv.Itoa(curves.Index[i]),
				strconv.FormatFloat(curves.Grid[i], 'g', -1, 64),
				strconv.FormatFloat(density[i], 'g', -1, 64),
				strconv.FormatFloat(curves.Cumulative[i], 'g', -1, 64),
			}
			if err := w.Write(rec); err != nil {
				return xerrors.Errorf("writing row %d: %w", i, err)
			}
		}
		w.Flush()

		return w.Error()
	},
}

// tableFromFlags validates the table flags before handing them to the
// option constructors, which panic on nonsensical values.
func tableFromFlags(cctx *cli.Context) (*normtable.Table, error) {
	points, bound := cctx.Int("points"), cctx.Float64("bound")
	if points < 3 {
		return nil, xerrors.Errorf("--points must be >= 3, got %d", points)
	}
	if math.IsNaN(bound) || math.IsInf(bound, 0) || bound <= 0 {
		return nil, xerrors.Errorf("--bound must be finite and > 0, got %g", bound)
	}

	kernel := normtable.KernelStandard
	if cctx.Bool("legacy-density") {
		kernel = normtable.KernelLegacy
	}

	return normtable.New(
		normtable.WithPoints(points),
		normtable.WithBound(bound),
		normtable.WithKernel(kernel),
	), nil
}
