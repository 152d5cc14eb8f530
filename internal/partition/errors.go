package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrInvariant is the error kind for broken internal invariants.
	// It indicates a defect, not bad input.
	ErrInvariant = errors.New("internal invariant violation")

	// ErrInvalidShape is returned by New for impossible row/partition counts.
	ErrInvalidShape = errors.New("invalid partition shape")
)

// InvariantError describes a broken invariant in one partition.
type InvariantError struct {
	// Partition is the offending partition index, or -1 if not attributable.
	Partition int
	Reason    string
}

// NewInvariantError creates an InvariantError.
func NewInvariantError(partition int, format string, args ...any) *InvariantError {
	return &InvariantError{Partition: partition, Reason: fmt.Sprintf(format, args...)}
}

func (e *InvariantError) Error() string {
	if e.Partition < 0 {
		return fmt.Sprintf("%s: %s", ErrInvariant, e.Reason)
	}
	return fmt.Sprintf("%s: partition %d: %s", ErrInvariant, e.Partition, e.Reason)
}

// Is makes errors.Is(err, ErrInvariant) hold.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}
