package geometry

import (
	"errors"
	"fmt"
)

// ErrUnsupported is the sentinel an operand returns when it does not
// support the other operand's type. It is a resolution signal consumed
// by the dispatch helpers, not a failure: dispatch only fails once both
// the forward and the reflected attempt have returned it.
var ErrUnsupported = errors.New("operand type not supported")

// ErrDivisionByZero reports a vector divided by a zero scalar. Division
// surfaces an explicit error instead of producing infinities.
var ErrDivisionByZero = errors.New("vector division by zero")

// UnsupportedOperandError reports that a binary operation failed to
// resolve: neither the forward nor the reflected attempt accepted the
// operand types.
type UnsupportedOperandError struct {
	Op    string
	Left  any
	Right any
}

func (e *UnsupportedOperandError) Error() string {
	if e.Right == nil {
		return fmt.Sprintf("unsupported operand type for unary %s: %T", e.Op, e.Left)
	}
	return fmt.Sprintf("unsupported operand types for %s: %T and %T", e.Op, e.Left, e.Right)
}

// IndexOutOfRangeError reports component access outside {0, 1} after
// negative-index normalization.
type IndexOutOfRangeError struct {
	Index  int
	Length int
}

func (e *IndexOutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}
