package collections

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned for malformed constructor input, such as
	// a non-positive capacity.
	ErrInvalidArgument = errors.New("collections: invalid argument")

	// ErrIndexOutOfRange is returned when an index falls outside the valid
	// range: [0, length) for lists, [0, capacity) for bounded arrays.
	ErrIndexOutOfRange = errors.New("collections: index out of range")

	// ErrNoValue is returned when reading a bounded array slot that was never
	// written. The index itself is valid.
	ErrNoValue = errors.New("collections: no value")

	// ErrNoSuchElement is returned when an iterator is advanced past its last
	// element.
	ErrNoSuchElement = errors.New("collections: no such element")

	// ErrIllegalState is returned by Iterator.Remove when there is no element
	// to remove.
	ErrIllegalState = errors.New("collections: illegal state")

	// ErrConcurrentModification is returned when an iterator detects that its
	// list was structurally modified by something other than the iterator.
	ErrConcurrentModification = errors.New("collections: concurrent modification")

	// ErrResourceExhausted is returned when the backing storage cannot grow.
	ErrResourceExhausted = errors.New("collections: resource exhausted")

	// ErrUnsupportedOperation is returned by operations a container declines,
	// such as removing through a bounded array iterator.
	ErrUnsupportedOperation = errors.New("collections: unsupported operation")
)

// IndexError describes an out-of-range index. It matches ErrIndexOutOfRange.
type IndexError struct {
	Op    string // operation that was attempted
	Index int    // offending index
	Bound int    // exclusive upper bound at the time of the call
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("collections: %s: index %d out of range [0, %d)", e.Op, e.Index, e.Bound)
}

func (e *IndexError) Unwrap() error {
	return ErrIndexOutOfRange
}

// NoValueError describes a read of an empty bounded array slot. It matches
// ErrNoValue.
type NoValueError struct {
	Index int
}

func (e *NoValueError) Error() string {
	return fmt.Sprintf("collections: no value set at index %d", e.Index)
}

func (e *NoValueError) Unwrap() error {
	return ErrNoValue
}

// checkIndex returns an *IndexError unless 0 <= i < bound.
func checkIndex(op string, i, bound int) error {
	if i < 0 || i >= bound {
		return &IndexError{Op: op, Index: i, Bound: bound}
	}
	return nil
}
