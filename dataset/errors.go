package dataset

import (
	"errors"
	"fmt"
)

// ErrMalformedInput is the error kind for rows or queries that violate the
// table shape: width mismatch, non-numeric or non-finite cells, bad labels.
var ErrMalformedInput = errors.New("malformed input")

// RowError describes a malformed cell or row.
//
// errors.Is(err, ErrMalformedInput) holds for every RowError. The underlying
// parse error (if any) can be accessed via errors.Unwrap.
type RowError struct {
	// Row is the 0-based data row, or -1 for the query.
	Row int
	// Column is the 0-based column, or -1 when the whole row is at fault.
	Column int
	Reason string
	cause  error
}

// NewRowError creates a RowError wrapping cause (which may be nil).
func NewRowError(row, column int, reason string, cause error) *RowError {
	return &RowError{Row: row, Column: column, Reason: reason, cause: cause}
}

func (e *RowError) Error() string {
	where := fmt.Sprintf("row %d", e.Row)
	if e.Row < 0 {
		where = "query"
	}
	if e.Column >= 0 {
		where = fmt.Sprintf("%s column %d", where, e.Column)
	}
	if e.cause != nil {
		return fmt.Sprintf("%s: %s: %s: %v", ErrMalformedInput, where, e.Reason, e.cause)
	}
	return fmt.Sprintf("%s: %s: %s", ErrMalformedInput, where, e.Reason)
}

func (e *RowError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrMalformedInput}
	}
	return []error{ErrMalformedInput, e.cause}
}
