package bptree

import (
	"fmt"

	"github.com/cockroachdb/errors"
)

// DegreeTooSmallError is returned by New when the requested degree cannot
// support the tree's split/merge arithmetic.
type DegreeTooSmallError struct {
	Degree int
}

func (e *DegreeTooSmallError) Error() string {
	return fmt.Sprintf("bptree: degree %d is too small (minimum is 3)", e.Degree)
}

func newDegreeTooSmallError(degree int) error {
	return errors.WithStack(&DegreeTooSmallError{Degree: degree})
}

// KeyConflictError is returned by Insert when the key already exists,
// either as a leaf entry or as an internal separator.
type KeyConflictError[K any] struct {
	Key K
}

func (e *KeyConflictError[K]) Error() string {
	return fmt.Sprintf("bptree: key %v already exists", e.Key)
}

func newKeyConflictError[K any](key K) error {
	return errors.WithStack(&KeyConflictError[K]{Key: key})
}

// StructuralError reports a violated internal invariant. It is never
// expected during normal operation; raising it indicates a bug in the
// tree's own bookkeeping rather than a caller misuse. Callers that want to
// treat it as a hard assertion failure can let the panic raised by
// panicStructuralError propagate, or recover and inspect the wrapped error.
type StructuralError struct {
	Msg string
}

func (e *StructuralError) Error() string {
	return "bptree: structural invariant violated: " + e.Msg
}

func panicStructuralError(format string, args ...any) {
	cause := errors.AssertionFailedWithDepthf(1, format, args...)
	se := &StructuralError{Msg: fmt.Sprintf(format, args...)}
	panic(errors.WithSecondaryError(se, cause))
}
