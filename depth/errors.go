package depth

import (
	"errors"
	"fmt"
)

// ErrInvariantViolation is reported when the dependency graph cannot be fully
// resolved. The edge relation is a strict order, so this only happens on a bug.
var ErrInvariantViolation = errors.New("depth: dependency graph did not fully resolve")

// InvariantError carries how far the topological sort got before stalling.
type InvariantError struct {
	Emitted int
	Total   int
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("%v: emitted %d of %d entities", ErrInvariantViolation, e.Emitted, e.Total)
}

func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariantViolation
}
