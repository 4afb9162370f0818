// SPDX-License-Identifier: MIT

package frame

import (
	"errors"
	"fmt"
)

var (
	// ErrColumnNotFound indicates that a requested column name is absent.
	ErrColumnNotFound = errors.New("frame: column not found")

	// ErrRowCount indicates columns (or a series) with different lengths.
	ErrRowCount = errors.New("frame: row count mismatch")

	// ErrDuplicateColumn indicates two columns sharing a name, including
	// names produced by categorical expansion.
	ErrDuplicateColumn = errors.New("frame: duplicate column name")

	// ErrNonNumeric indicates a categorical column where numbers are required,
	// typically a categorical column that was never encoded.
	ErrNonNumeric = errors.New("frame: column is not numeric")

	// ErrConstantPresent indicates an operation that must run before the
	// constant column is inserted (categorical encoding).
	ErrConstantPresent = errors.New("frame: constant column already present")

	// ErrConstantNotOnes indicates a column named ConstantName whose values
	// are not all ones. The name is reserved for the intercept.
	ErrConstantNotOnes = errors.New("frame: constant column must be numeric and all ones")

	// ErrEmptyName indicates a column without a name.
	ErrEmptyName = errors.New("frame: empty column name")
)

// frameErrorf tags err with the operation and column involved.
func frameErrorf(op, column string, err error) error {
	return fmt.Errorf("%s(%q): %w", op, column, err)
}
