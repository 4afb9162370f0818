// SPDX-License-Identifier: MIT

package frame

import (
	"strconv"

	"github.com/katalvlaran/olsinfer/matrix"
)

// ConstantName names the all-ones intercept column.
const ConstantName = "_constant_"

const (
	opNew    = "New"
	opColumn = "Column"
	opDrop   = "Drop"
	opDense  = "Dense"
	opEncode = "EncodeCategorical"
)

// Series is a named numeric vector, typically the response of a model.
type Series struct {
	Name   string
	Values []float64
}

// NewSeries copies values into a new Series.
func NewSeries(name string, values []float64) Series {
	return Series{Name: name, Values: cloneFloats(values)}
}

// Len returns the number of observations.
func (s Series) Len() int { return len(s.Values) }

// Clone returns a deep copy.
func (s Series) Clone() Series { return NewSeries(s.Name, s.Values) }

// Column is a named vector holding either numbers or raw categorical labels.
// Exactly one of Numbers or Labels is meaningful: Labels != nil marks the
// column as categorical.
type Column struct {
	Name    string
	Numbers []float64
	Labels  []string
}

// Numeric returns a numeric column holding a copy of values.
func Numeric(name string, values []float64) Column {
	return Column{Name: name, Numbers: cloneFloats(values)}
}

// Categorical returns a categorical column holding a copy of labels.
func Categorical(name string, labels []string) Column {
	out := make([]string, len(labels))
	copy(out, labels)

	return Column{Name: name, Labels: out}
}

// IsCategorical reports whether the column carries labels instead of numbers.
func (c Column) IsCategorical() bool { return c.Labels != nil }

// Len returns the number of rows in the column.
func (c Column) Len() int {
	if c.IsCategorical() {
		return len(c.Labels)
	}

	return len(c.Numbers)
}

// Keys returns the per-row level keys used by categorical encoding.
// Numbers are rendered in their shortest round-trip form ('g', -1).
func (c Column) Keys() []string {
	if c.IsCategorical() {
		out := make([]string, len(c.Labels))
		copy(out, c.Labels)
		return out
	}
	out := make([]string, len(c.Numbers))
	for i, v := range c.Numbers {
		out[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}

	return out
}

func (c Column) clone() Column {
	if c.IsCategorical() {
		return Categorical(c.Name, c.Labels)
	}

	return Numeric(c.Name, c.Numbers)
}

// Frame is an ordered sequence of equally long columns.
// Frames are values: every operation returns a new Frame that shares no
// backing arrays with its receiver or with caller-provided slices.
type Frame struct {
	cols []Column
	rows int
}

// New builds a Frame from cols, copying their data.
//
// A column named ConstantName must be numeric and all ones, since
// WithConstant adopts it as the intercept.
//
// Errors:
//   - ErrEmptyName, ErrDuplicateColumn, ErrRowCount, ErrConstantNotOnes.
func New(cols ...Column) (*Frame, error) {
	f := &Frame{cols: make([]Column, 0, len(cols))}
	seen := make(map[string]struct{}, len(cols))
	for i, c := range cols {
		if c.Name == "" {
			return nil, frameErrorf(opNew, strconv.Itoa(i), ErrEmptyName)
		}
		if _, dup := seen[c.Name]; dup {
			return nil, frameErrorf(opNew, c.Name, ErrDuplicateColumn)
		}
		seen[c.Name] = struct{}{}
		if c.Name == ConstantName && !allOnes(c) {
			return nil, frameErrorf(opNew, c.Name, ErrConstantNotOnes)
		}
		if i == 0 {
			f.rows = c.Len()
		} else if c.Len() != f.rows {
			return nil, frameErrorf(opNew, c.Name, ErrRowCount)
		}
		f.cols = append(f.cols, c.clone())
	}

	return f, nil
}

// Rows returns the number of observations.
func (f *Frame) Rows() int { return f.rows }

// Len returns the number of columns.
func (f *Frame) Len() int { return len(f.cols) }

// Names returns column names in order.
func (f *Frame) Names() []string {
	out := make([]string, len(f.cols))
	for i, c := range f.cols {
		out[i] = c.Name
	}

	return out
}

// Index returns the position of column name, or -1.
func (f *Frame) Index(name string) int {
	for i, c := range f.cols {
		if c.Name == name {
			return i
		}
	}

	return -1
}

// Column returns a copy of the named column.
func (f *Frame) Column(name string) (Column, error) {
	idx := f.Index(name)
	if idx < 0 {
		return Column{}, frameErrorf(opColumn, name, ErrColumnNotFound)
	}

	return f.cols[idx].clone(), nil
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	out := &Frame{cols: make([]Column, len(f.cols)), rows: f.rows}
	for i, c := range f.cols {
		out.cols[i] = c.clone()
	}

	return out
}

// Drop returns a copy of the frame without the named column.
func (f *Frame) Drop(name string) (*Frame, error) {
	idx := f.Index(name)
	if idx < 0 {
		return nil, frameErrorf(opDrop, name, ErrColumnNotFound)
	}
	out := &Frame{cols: make([]Column, 0, len(f.cols)-1), rows: f.rows}
	for i, c := range f.cols {
		if i != idx {
			out.cols = append(out.cols, c.clone())
		}
	}

	return out, nil
}

// HasConstant reports whether the constant column is present.
func (f *Frame) HasConstant() bool { return f.Index(ConstantName) >= 0 }

// WithConstant returns a copy of the frame whose first column is the
// all-ones ConstantName column. Calling it on a frame that already has the
// constant never adds a second one; a constant found elsewhere is moved to
// the front.
func (f *Frame) WithConstant() *Frame {
	out := &Frame{cols: make([]Column, 0, len(f.cols)+1), rows: f.rows}
	idx := f.Index(ConstantName)
	if idx >= 0 {
		out.cols = append(out.cols, f.cols[idx].clone())
	} else {
		ones := make([]float64, f.rows)
		for i := range ones {
			ones[i] = 1
		}
		out.cols = append(out.cols, Column{Name: ConstantName, Numbers: ones})
	}
	for i, c := range f.cols {
		if i != idx {
			out.cols = append(out.cols, c.clone())
		}
	}

	return out
}

// Dense exports the frame as a Rows()×Len() row-major matrix.
// Every column must be numeric.
//
// Errors:
//   - ErrNonNumeric for a categorical column.
//   - matrix.ErrInvalidDimensions for an empty frame, matrix.ErrNaNInf for
//     non-finite values.
func (f *Frame) Dense() (*matrix.Dense, error) {
	r, c := f.rows, len(f.cols)
	for _, col := range f.cols {
		if col.IsCategorical() {
			return nil, frameErrorf(opDense, col.Name, ErrNonNumeric)
		}
	}
	buf := make([]float64, r*c)
	for j, col := range f.cols {
		for i, v := range col.Numbers {
			buf[i*c+j] = v
		}
	}
	d, err := matrix.NewDenseFrom(r, c, buf)
	if err != nil {
		return nil, frameErrorf(opDense, "", err)
	}

	return d, nil
}

func allOnes(c Column) bool {
	if c.IsCategorical() {
		return false
	}
	for _, v := range c.Numbers {
		if v != 1 {
			return false
		}
	}

	return true
}

func cloneFloats(in []float64) []float64 {
	if in == nil {
		return nil
	}
	out := make([]float64, len(in))
	copy(out, in)

	return out
}
