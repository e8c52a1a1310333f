package sparseset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/sparseset/internal/buffer"
	"github.com/hupe1980/sparseset/resource"
)

var (
	// ErrNullEntity is reported when Null is passed as an identifier.
	ErrNullEntity = errors.New("null entity")

	// ErrNotPresent is reported when an operation requires a present entity.
	ErrNotPresent = errors.New("entity not present")

	// ErrAlreadyPresent is reported when inserting an entity twice.
	ErrAlreadyPresent = errors.New("entity already present")

	// ErrClosed is reported when a closed set is used.
	ErrClosed = errors.New("sparse set closed")

	// ErrOutOfMemory is returned when buffer growth exceeds the memory budget.
	ErrOutOfMemory = errors.New("out of memory")

	// ErrCapacityOverflow is returned when a buffer would exceed the
	// identifier space.
	ErrCapacityOverflow = errors.New("capacity overflow")
)

// PreconditionError is the panic value raised when a caller breaks the
// contract of a Set operation. These are programming errors and are never
// returned.
//
// The underlying error can be accessed via errors.Unwrap.
type PreconditionError struct {
	Op     string
	Entity Entity
	Err    error
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("sparseset: %s(%s): %v", e.Op, e.Entity, e.Err)
}

func (e *PreconditionError) Unwrap() error { return e.Err }

// GrowError indicates that a buffer could not be grown.
//
// The underlying error (if any) can be accessed via errors.Unwrap.
type GrowError struct {
	Buffer string
	Need   int
	cause  error
}

func (e *GrowError) Error() string {
	return fmt.Sprintf("grow %s buffer to %d: %v", e.Buffer, e.Need, e.cause)
}

func (e *GrowError) Unwrap() error { return e.cause }

// InvariantError describes a broken cross-reference between the buffers.
type InvariantError struct {
	Invariant string
	Detail    string
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant %s violated: %s", e.Invariant, e.Detail)
}

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, resource.ErrMemoryLimitExceeded) {
		return fmt.Errorf("%w: %w", ErrOutOfMemory, err)
	}
	if errors.Is(err, buffer.ErrCapacityOverflow) {
		return fmt.Errorf("%w: %w", ErrCapacityOverflow, err)
	}

	return err
}
