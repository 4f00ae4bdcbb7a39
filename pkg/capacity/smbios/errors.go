package smbios

import (
	"fmt"

	"github.com/pkg/errors"
)

// Kind is the class of an acquisition failure
type Kind int

// List of error kinds
const (
	// KindIO is a failure to open or read the device or the table image
	KindIO Kind = iota + 1
	// KindEncoding is a platform string that could not be interpreted
	KindEncoding
	// KindEnv is a failure to read or parse an environment variable
	KindEnv
	// KindMessage is any other failure, described by its message
	KindMessage
)

func (k Kind) String() string {
	switch k {
	case KindIO:
		return "io error"
	case KindEncoding:
		return "string decoding error"
	case KindEnv:
		return "environment variable error"
	case KindMessage:
		return "error"
	}

	return fmt.Sprintf("unknown error kind %d", int(k))
}

// Error is returned by all table acquisition functions. Cause is nil
// when the failure did not originate from another error.
type Error struct {
	Kind  Kind
	Msg   string
	Cause error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Msg != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Msg)
	}
	if e.Cause != nil {
		msg = fmt.Sprintf("%s: %s", msg, e.Cause)
	}

	return msg
}

// Unwrap returns the originating cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// IOError wraps an I/O fault
func IOError(err error, msg string) error {
	return &Error{Kind: KindIO, Msg: msg, Cause: err}
}

// EncodingError reports a string that could not be decoded
func EncodingError(msg string) error {
	return &Error{Kind: KindEncoding, Msg: msg}
}

// EnvError wraps a failure to read an environment variable
func EnvError(err error, msg string) error {
	return &Error{Kind: KindEnv, Msg: msg, Cause: err}
}

// MessageError reports a free form failure, optionally caused by err
func MessageError(err error, msg string) error {
	return &Error{Kind: KindMessage, Msg: msg, Cause: err}
}

// IsKind checks if any error in the chain of err is an *Error of kind k
func IsKind(err error, k Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}

	return e.Kind == k
}
