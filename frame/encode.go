// SPDX-License-Identifier: MIT

package frame

// CategoryLevels records the distinct levels of one encoded column in
// first-appearance order. Levels[0] is the baseline: it never becomes a
// column and is identified by all of the column's indicators being zero.
type CategoryLevels struct {
	Column string
	Levels []string
}

// Baseline returns the dropped level ("" for a column without levels).
func (c CategoryLevels) Baseline() string {
	if len(c.Levels) == 0 {
		return ""
	}

	return c.Levels[0]
}

// DummyNames returns the names of the indicator columns, one per
// non-baseline level, in level order.
func (c CategoryLevels) DummyNames() []string {
	if len(c.Levels) < 2 {
		return nil
	}
	out := make([]string, 0, len(c.Levels)-1)
	for _, lvl := range c.Levels[1:] {
		out = append(out, DummyName(c.Column, lvl))
	}

	return out
}

// CategoryMap lists encoded columns in the order they were encoded.
type CategoryMap []CategoryLevels

// Lookup returns the levels recorded for column.
func (m CategoryMap) Lookup(column string) (CategoryLevels, bool) {
	for _, c := range m {
		if c.Column == column {
			return c, true
		}
	}

	return CategoryLevels{}, false
}

// DummyName builds the indicator column name for a level: "{column}_{level}".
func DummyName(column, level string) string { return column + "_" + level }

// EncodeCategorical replaces column name with L−1 indicator columns, where L
// is the number of distinct values. Levels are ordered by first appearance
// and the first one is dropped as baseline. The indicators take the original
// column's position; all other columns keep their relative order.
//
// Numeric columns are accepted too; their values become level names in
// shortest 'g' form (1 → "1", 2.5 → "2.5").
//
// Errors:
//   - ErrColumnNotFound when name is absent.
//   - ErrConstantPresent when the constant column was already inserted.
//   - ErrDuplicateColumn when a generated name collides with another column
//     or with ConstantName.
//
// Complexity: O(rows · L) time, O(rows · L) space.
func (f *Frame) EncodeCategorical(name string) (*Frame, CategoryLevels, error) {
	if f.HasConstant() {
		return nil, CategoryLevels{}, frameErrorf(opEncode, name, ErrConstantPresent)
	}
	idx := f.Index(name)
	if idx < 0 {
		return nil, CategoryLevels{}, frameErrorf(opEncode, name, ErrColumnNotFound)
	}

	// Stage 1: distinct levels in first-appearance order.
	keys := f.cols[idx].Keys()
	levels := make([]string, 0)
	position := make(map[string]int)
	for _, k := range keys {
		if _, ok := position[k]; !ok {
			position[k] = len(levels)
			levels = append(levels, k)
		}
	}
	enc := CategoryLevels{Column: name, Levels: levels}

	// Stage 2: one indicator per non-baseline level.
	dummies := make([]Column, 0, len(levels))
	for _, dn := range enc.DummyNames() {
		if j := f.Index(dn); (j >= 0 && j != idx) || dn == ConstantName {
			return nil, CategoryLevels{}, frameErrorf(opEncode, dn, ErrDuplicateColumn)
		}
		dummies = append(dummies, Column{Name: dn, Numbers: make([]float64, f.rows)})
	}
	for row, k := range keys {
		if p := position[k]; p > 0 {
			dummies[p-1].Numbers[row] = 1
		}
	}

	// Stage 3: splice indicators into the original position.
	out := &Frame{cols: make([]Column, 0, len(f.cols)-1+len(dummies)), rows: f.rows}
	for i, c := range f.cols {
		if i == idx {
			out.cols = append(out.cols, dummies...)
			continue
		}
		out.cols = append(out.cols, c.clone())
	}

	return out, enc, nil
}

// EncodeAll applies EncodeCategorical to each name in order and returns the
// accumulated CategoryMap. The receiver is never modified.
func (f *Frame) EncodeAll(names ...string) (*Frame, CategoryMap, error) {
	cur := f
	cats := make(CategoryMap, 0, len(names))
	for _, name := range names {
		next, enc, err := cur.EncodeCategorical(name)
		if err != nil {
			return nil, nil, err
		}
		cur = next
		cats = append(cats, enc)
	}
	if cur == f {
		cur = f.Clone()
	}

	return cur, cats, nil
}
