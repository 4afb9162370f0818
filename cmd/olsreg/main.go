// SPDX-License-Identifier: MIT

// Command olsreg fits OLS models with heteroskedasticity-robust inference
// from CSV files and exports the significance table used for p-values.
package main

import (
	"os"

	logging "github.com/ipfs/go-log/v2"
	"github.com/urfave/cli/v2"
)

var log = logging.Logger("olsreg/cli")

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Errorw("exit in error", "err", err)
		os.Exit(1)
		return
	}
}

func newApp() *cli.App {
	local := []*cli.Command{
		fitCmd,
		tableCmd,
	}

	return &cli.App{
		Name:  "olsreg",
		Usage: "Linear regression with heteroskedasticity-robust standard errors",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"OLSREG_LOG_LEVEL"},
				Value:   "warn",
			},
		},
		Before: func(cctx *cli.Context) error {
			return logging.SetLogLevelRegex("olsreg/*", cctx.String("log-level"))
		},
		Commands: local,
	}
}

// tableFlags configure the significance table for both commands.
var tableFlags = []cli.Flag{
	&cli.IntFlag{
		Name:  "points",
		Usage: "number of grid points in the significance table",
		Value: 5000,
	},
	&cli.Float64Flag{
		Name:  "bound",
		Usage: "half-width of the significance table domain",
		Value: 5,
	},
	&cli.BoolFlag{
		Name:  "legacy-density",
		Usage: "fill the table with the historical density expression",
	},
}
