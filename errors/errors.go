package errors

import (
	"github.com/eaugeas/hexboard/logs"
	pkgerrors "github.com/pkg/errors"
)

const (
	// CodeConcurrentModification is used when an iterator observes that
	// the collection it walks was modified without its cooperation
	CodeConcurrentModification = 1000 + iota

	// CodeNoSuchElement is used when an iterator is asked for an element
	// after it produced all of them
	CodeNoSuchElement

	// CodeIllegalState is used when an operation is called at a point
	// where it is not allowed, such as removing through an iterator that
	// has no current element
	CodeIllegalState

	// CodeInvariantViolation is used when an internal consistency check
	// fails. It signals a defect in the implementation, not a misuse
	CodeInvariantViolation
)

var (
	// ErrConcurrentModification is returned by an iterator once its
	// collection has been modified by someone else
	ErrConcurrentModification = &Error{
		ErrorCode:   CodeConcurrentModification,
		Description: "iterator version does not match collection version",
	}

	// ErrNoSuchElement is returned by an exhausted iterator
	ErrNoSuchElement = &Error{
		ErrorCode:   CodeNoSuchElement,
		Description: "iteration has no more elements",
	}

	// ErrIllegalState is returned when removing through an iterator
	// without a current element
	ErrIllegalState = &Error{
		ErrorCode:   CodeIllegalState,
		Description: "no current element to remove",
	}
)

// Error is the error returned by the containers in this module
type Error struct {
	// ErrorCode is a unique identifier for the error that can be used to identify
	// the particular type of error encountered
	ErrorCode int `json:"errorCode"`

	// Description is a human-readable description of the error that occurred
	// to aid the client in debugging
	Description string `json:"description"`
}

// Error is the implementation of go's error interface for Error
func (e *Error) Error() string {
	return e.Description
}

func (e *Error) Log(fields logs.Fields) {
	fields.Add("error_code", e.ErrorCode)
	fields.Add("description", e.Description)
}

// InvariantViolation creates an error describing a failed
// consistency check
func InvariantViolation(description string) *Error {
	return &Error{ErrorCode: CodeInvariantViolation, Description: description}
}

// Wrapf annotates err with a formatted message while keeping err
// as its cause
func Wrapf(err error, format string, args ...interface{}) error {
	return pkgerrors.Wrapf(err, format, args...)
}

// Code returns the code of the *Error at the root of err, or 0
// if err was not caused by an *Error
func Code(err error) int {
	if err == nil {
		return 0
	}

	if e, ok := pkgerrors.Cause(err).(*Error); ok {
		return e.ErrorCode
	}

	return 0
}

// HasCode returns true if err was caused by an *Error with the
// provided code
func HasCode(err error, code int) bool {
	return err != nil && Code(err) == code
}
