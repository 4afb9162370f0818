// SPDX-License-Identifier: MIT

package main

import (
	"fmt"
	"io"
	"math"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"
	"golang.org/x/xerrors"

	"github.com/katalvlaran/olsinfer/regression"
)

// significance is the level under which p-values are highlighted.
const significance = 0.05

var fitCmd = &cli.Command{
	Name:      "fit",
	Usage:     "Fit a linear model to a CSV file and print robust inference",
	ArgsUsage: " ",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:     "file",
			Aliases:  []string{"f"},
			Usage:    "CSV file with a header row",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "response",
			Aliases:  []string{"y"},
			Usage:    "name of the response column",
			Required: true,
		},
		&cli.StringSliceFlag{
			Name:    "categorical",
			Aliases: []string{"c"},
			Usage:   "column to dummy-encode (repeatable); text columns are always encoded",
		},
		&cli.BoolFlag{
			Name:  "no-correlation",
			Usage: "skip the regressor correlation matrix",
		},
	}, tableFlags...),
	Action: func(cctx *cli.Context) error {
		ds, err := loadFile(cctx.String("file"), cctx.String("response"))
		if err != nil {
			return err
		}
		tbl, err := tableFromFlags(cctx)
		if err != nil {
			return err
		}

		eng, err := regression.New(ds.response, ds.x,
			regression.WithCategorical(categoricalColumns(cctx.StringSlice("categorical"), ds.labels)...),
			regression.WithCorrelation(!cctx.Bool("no-correlation")),
			regression.WithTable(tbl),
		)
		if err != nil {
			return xerrors.Errorf("building model: %w", err)
		}
		res, err := eng.Fit()
		if err != nil {
			return xerrors.Errorf("fitting model: %w", err)
		}
		log.Infow("model fitted",
			"response", res.Response,
			"n", res.N,
			"k", res.K,
			"adjusted_r2", res.AdjustedR2,
		)

		return printResult(cctx.App.Writer, res)
	},
}

// categoricalColumns merges the requested columns with the text columns
// found in the file, keeping the requested order first and dropping repeats.
func categoricalColumns(requested, text []string) []string {
	seen := make(map[string]struct{}, len(requested)+len(text))
	out := make([]string, 0, len(requested)+len(text))
	for _, list := range [][]string{requested, text} {
		for _, name := range list {
			if _, ok := seen[name]; ok || name == "" {
				continue
			}
			seen[name] = struct{}{}
			out = append(out, name)
		}
	}

	return out
}

func printResult(out io.Writer, res *regression.Result) error {
	fmt.Fprintf(out, "Explained variable: %s\n", res.Response)
	fmt.Fprintf(out, "Adjusted R²: %.4f\n", res.AdjustedR2)
	fmt.Fprintf(out, "Observations: %d  Regressors: %d  DoF: %d\n\n", res.N, res.K, res.DegreesOfFreedom)

	tw := tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "Variable\tCoef\tStd.Err\tt\tp")
	saturated := false
	for _, row := range res.Rows {
		p := fmt.Sprintf("%.4f", row.PValue)
		if row.Saturated {
			p += "*"
			saturated = true
		}
		if row.PValue < significance {
			p = color.GreenString(p)
		}
		fmt.Fprintf(tw, "%s\t%.6g\t%.6g\t%.4f\t%s\n", row.Name, row.Coef, row.StdErr, row.TValue, p)
	}
	if err := tw.Flush(); err != nil {
		return xerrors.Errorf("printing coefficients: %w", err)
	}
	if saturated {
		fmt.Fprintln(out, "* |t| reached the table bound; p is below table resolution")
	}

	for _, c := range res.Categories {
		fmt.Fprintf(out, "Baseline %s = %s\n", c.Column, c.Baseline())
	}

	if res.Correlation == nil {
		return nil
	}
	fmt.Fprintln(out, "\nCorrelation matrix:")
	tw = tabwriter.NewWriter(out, 2, 4, 2, ' ', 0)
	for _, name := range res.Correlation.Names {
		fmt.Fprintf(tw, "\t%s", name)
	}
	fmt.Fprintln(tw)
	for i, name := range res.Correlation.Names {
		fmt.Fprint(tw, name)
		for j := range res.Correlation.Names {
			v, err := res.Correlation.Matrix.At(i, j)
			if err != nil {
				return xerrors.Errorf("reading correlation: %w", err)
			}
			if math.Abs(v) < 5e-5 {
				v = 0
			}
			fmt.Fprintf(tw, "\t%.4f", v)
		}
		fmt.Fprintln(tw)
	}

	return tw.Flush()
}
