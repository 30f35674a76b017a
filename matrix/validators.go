package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateDimensions ensures rows and cols are both positive.
// Complexity: O(1).
func ValidateDimensions(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return validatorErrorf("ValidateDimensions", fmt.Errorf("rows=%d cols=%d: %w", rows, cols, ErrInvalidDimensions))
	}
	return nil
}

// ValidateColumnLength ensures a candidate column's length matches rows.
// Complexity: O(1).
func ValidateColumnLength(rows, columnLen int) error {
	if columnLen != rows {
		return validatorErrorf("ValidateColumnLength", fmt.Errorf("got %d want %d: %w", columnLen, rows, ErrColumnLengthMismatch))
	}
	return nil
}

// ValidateHasColumns ensures m has at least one column.
// Complexity: O(1).
func (m Matrix) ValidateHasColumns() error {
	if len(m.columns) == 0 {
		return validatorErrorf("ValidateHasColumns", ErrNoColumns)
	}
	return nil
}
