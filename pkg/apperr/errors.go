package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an error into the stable categories callers switch on.
type Kind int

const (
	KindUnknown Kind = iota
	KindValidation
	KindDuplicate
	KindCapacity
	KindNotFound
	KindTerminalState
	KindAuthorization
	KindDependency
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindDuplicate:
		return "duplicate"
	case KindCapacity:
		return "capacity"
	case KindNotFound:
		return "not_found"
	case KindTerminalState:
		return "terminal_state"
	case KindAuthorization:
		return "authorization"
	case KindDependency:
		return "dependency"
	default:
		return "unknown"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	// ConflictID references the already-existing booking for duplicate errors.
	ConflictID string
	Err        error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

func Validation(msg string) *Error {
	return &Error{Kind: KindValidation, Msg: msg}
}

func Validationf(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func Duplicate(msg, conflictID string) *Error {
	return &Error{Kind: KindDuplicate, Msg: msg, ConflictID: conflictID}
}

func Capacity(msg string) *Error {
	return &Error{Kind: KindCapacity, Msg: msg}
}

func NotFound(msg string) *Error {
	return &Error{Kind: KindNotFound, Msg: msg}
}

func NotFoundf(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func TerminalState(msg string) *Error {
	return &Error{Kind: KindTerminalState, Msg: msg}
}

func Authorization(msg string) *Error {
	return &Error{Kind: KindAuthorization, Msg: msg}
}

func Dependency(msg string, err error) *Error {
	return &Error{Kind: KindDependency, Msg: msg, Err: err}
}

// KindOf extracts the kind from anywhere in the chain; plain errors map to
// KindUnknown so handlers treat them as internal failures.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// ConflictIDOf returns the conflicting booking reference for duplicate errors.
func ConflictIDOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.ConflictID
	}
	return ""
}
