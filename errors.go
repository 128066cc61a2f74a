package slicegrow

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors. Every error returned by this package matches exactly one
// of them through errors.Is.
var (
	ErrInvalidArgument   = errors.New("invalid argument")
	ErrAllocationFailure = errors.New("allocation failure")
	ErrIndexOutOfRange   = errors.New("index out of range")
)

// Error describes a failed Array operation.
type Error struct {
	Op        string // operation that failed, e.g. "append"
	Kind      error  // one of the sentinel errors
	Index     int    // offending index, for ErrIndexOutOfRange
	Len       int    // length at the time of the failure
	Requested int    // requested capacity or element count
	Cause     error  // underlying allocator error, if any
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("slicegrow: ")
	b.WriteString(e.Op)
	b.WriteString(": ")
	b.WriteString(e.Kind.Error())

	switch {
	case errors.Is(e.Kind, ErrIndexOutOfRange):
		fmt.Fprintf(&b, " [%d] with length %d", e.Index, e.Len)
	case e.Requested != 0:
		fmt.Fprintf(&b, " (requested %d)", e.Requested)
	}

	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the error's kind.
func (e *Error) Is(target error) bool {
	return e.Kind == target
}

func invalidArgument(op string, requested int) error {
	return &Error{Op: op, Kind: ErrInvalidArgument, Requested: requested}
}

func indexOutOfRange(op string, index, length int) error {
	return &Error{Op: op, Kind: ErrIndexOutOfRange, Index: index, Len: length}
}

func allocationFailure(op string, length, requested int, cause error) error {
	return &Error{Op: op, Kind: ErrAllocationFailure, Len: length, Requested: requested, Cause: cause}
}
