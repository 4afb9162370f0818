// SPDX-License-Identifier: MIT

package main

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"
	"strings"

	"golang.org/x/xerrors"

	"github.com/katalvlaran/olsinfer/frame"
)

// dataset is a CSV file split into the response and the regressors.
type dataset struct {
	response frame.Series
	x        *frame.Frame
	labels   []string // regressors read as text
}

func loadFile(path, response string) (*dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.Errorf("opening data file: %w", err)
	}
	defer f.Close() //nolint:errcheck

	ds, err := loadCSV(f, response)
	if err != nil {
		return nil, xerrors.Errorf("loading %s: %w", path, err)
	}

	return ds, nil
}

// loadCSV reads a headed CSV. A column whose every cell parses as a float is
// numeric; any other column keeps its raw text as categorical labels.
func loadCSV(r io.Reader, response string) (*dataset, error) {
	records, err := csv.NewReader(r).ReadAll()
	if err != nil {
		return nil, xerrors.Errorf("reading csv: %w", err)
	}
	if len(records) < 2 {
		return nil, xerrors.New("csv needs a header and at least one data row")
	}
	header, rows := records[0], records[1:]

	ds := &dataset{}
	found := false
	cols := make([]frame.Column, 0, len(header)-1)
	for j, rawName := range header {
		name := strings.TrimSpace(rawName)
		nums, isNumeric := parseColumn(rows, j)
		if name == response {
			if !isNumeric {
				return nil, xerrors.Errorf("response %q: %w", name, frame.ErrNonNumeric)
			}
			ds.response = frame.NewSeries(name, nums)
			found = true
			continue
		}
		if isNumeric {
			cols = append(cols, frame.Numeric(name, nums))
			continue
		}
		labels := make([]string, len(rows))
		for i, rec := range rows {
			labels[i] = strings.TrimSpace(rec[j])
		}
		cols = append(cols, frame.Categorical(name, labels))
		ds.labels = append(ds.labels, name)
	}
	if !found {
		return nil, xerrors.Errorf("response %q: %w", response, frame.ErrColumnNotFound)
	}

	if ds.x, err = frame.New(cols...); err != nil {
		return nil, xerrors.Errorf("building regressors: %w", err)
	}

	return ds, nil
}

func parseColumn(rows [][]string, j int) ([]float64, bool) {
	out := make([]float64, len(rows))
	for i, rec := range rows {
		v, err := strconv.ParseFloat(strings.TrimSpace(rec[j]), 64)
		if err != nil {
			return nil, false
		}
		out[i] = v
	}

	return out, true
}
