package vector

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports input that violates a function precondition,
// for example vectors of different lengths. Callers must fix the input
// before retrying.
var ErrInvalidArgument = errors.New("vector: invalid argument")

func lengthMismatch(op string, a, b int) error {
	return fmt.Errorf("%w: %s: vectors must have the same length (%d vs %d)", ErrInvalidArgument, op, a, b)
}
