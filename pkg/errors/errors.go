// Package errors provides structured error handling for recycler hosts.
//
// Library packages return plain errors; hosts that want centralized
// reporting route them through [Report] with an [Error] describing the
// failed operation. Observer dispatch in the viewport package never
// passes through this package: a panicking viewport listener propagates
// to the caller by contract.
package errors

import (
	"fmt"
	"time"
)

// ErrorKind identifies the category of an error.
type ErrorKind int

const (
	// KindUnknown indicates an error of unknown type.
	KindUnknown ErrorKind = iota
	// KindConfig indicates a configuration load or validation error.
	KindConfig
	// KindTrace indicates a trace encode, decode, or I/O error.
	KindTrace
	// KindInput indicates invalid host or user input.
	KindInput
	// KindPanic indicates a recovered panic.
	KindPanic
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfig:
		return "config"
	case KindTrace:
		return "trace"
	case KindInput:
		return "input"
	case KindPanic:
		return "panic"
	default:
		return "unknown"
	}
}

// Error represents a structured error reported by a recycler component.
type Error struct {
	// Op is the operation that failed (e.g., "config.LoadOptional").
	Op string
	// Kind categorizes the error.
	Kind ErrorKind
	// Err is the underlying error.
	Err error
	// StackTrace contains the call stack at the time of the error.
	StackTrace string
	// Timestamp is when the error occurred.
	Timestamp time.Time
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// PanicError represents a recovered panic.
type PanicError struct {
	// Op is the operation that panicked (e.g., "recyclerdemo.Update").
	Op string
	// Value is the value passed to panic().
	Value any
	// StackTrace contains the call stack at the time of the panic.
	StackTrace string
	// Timestamp is when the panic occurred.
	Timestamp time.Time
}

func (e *PanicError) Error() string {
	if e.Op != "" {
		return fmt.Sprintf("panic in %s: %v", e.Op, e.Value)
	}
	return fmt.Sprintf("panic: %v", e.Value)
}

// Handler receives errors reported by recycler components.
type Handler interface {
	// HandleError is called when an error occurs.
	HandleError(err *Error)
	// HandlePanic is called when a panic is recovered.
	HandlePanic(err *PanicError)
}
