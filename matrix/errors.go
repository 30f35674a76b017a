// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// matrix package. The Validate* functions return these sentinels
// (wrapped), to be checked via errors.Is. The constructors (Zero,
// FromColumns, FromRowMajor) and MaxAbsEntry/HerdiscUpperBound panic
// with them instead: malformed dimensions or an empty matrix are a
// caller contract violation, the same policy vector applies to
// dimension mismatches.
package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates requested matrix dimensions are
	// non-positive (rows <= 0 or cols <= 0).
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrColumnLengthMismatch indicates a column's length does not
	// match the matrix's row count.
	ErrColumnLengthMismatch = errors.New("matrix: column length mismatch")

	// ErrOutOfRange indicates a row or column index fell outside its
	// valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNoColumns indicates an operation that requires at least one
	// column (MaxAbsEntry, HerdiscUpperBound) was called on an empty
	// Matrix.
	ErrNoColumns = errors.New("matrix: matrix has no columns")
)
