package partknn

import (
	"errors"
	"fmt"

	"github.com/hupe1980/partknn/dataset"
	"github.com/hupe1980/partknn/internal/engine"
	"github.com/hupe1980/partknn/internal/partition"
)

var (
	// ErrMalformedInput is returned for rows or queries of the wrong width,
	// non-numeric or non-finite values, and labels outside {0, 1}.
	ErrMalformedInput = dataset.ErrMalformedInput

	// ErrConfiguration is returned for parameters that cannot produce a
	// vote: K, P or M not positive, K > P*M, an empty dataset, P > N, or
	// fewer than K candidates.
	ErrConfiguration = errors.New("configuration error")

	// ErrInternalInvariant indicates a defect: bad partition ranges, a
	// selection prefix of the wrong size, or a panicking task.
	ErrInternalInvariant = partition.ErrInvariant
)

// RowError carries the position of a malformed value.
type RowError = dataset.RowError

// InvariantError carries the partition of a broken invariant.
type InvariantError = partition.InvariantError

// ConfigError indicates a rejected parameter.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ConfigError struct {
	Field  string
	Value  int
	Reason string
	cause  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s=%d: %s", ErrConfiguration, e.Field, e.Value, e.Reason)
}

func (e *ConfigError) Unwrap() error { return e.cause }

// Is makes errors.Is(err, ErrConfiguration) hold.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	var ce *engine.ConfigError
	if errors.As(err, &ce) {
		return &ConfigError{Field: ce.Field, Value: ce.Value, Reason: ce.Reason, cause: err}
	}

	// Malformed input, invariant and resource errors already carry the
	// public sentinels.
	return err
}
