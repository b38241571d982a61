package argseq

import (
	"errors"
	"fmt"
)

// Identifies a class of usage error. ErrorKinds are errors themselves so
// they can be targets for errors.Is.
type ErrorKind int

const (
	ErrEmptyInput ErrorKind = iota + 1
	ErrUnexpectedBareWord
	ErrTrailingAssignment
	ErrEmptyName
	ErrNumericOverflow
	ErrTypeMismatch
	ErrOptionConflict
	// For validation strategies rejecting a value.
	ErrInvalidValue
)

func (k ErrorKind) Error() string {
	switch k {
	case ErrEmptyInput:
		return "no arguments"
	case ErrUnexpectedBareWord:
		return "unexpected bare word"
	case ErrTrailingAssignment:
		return "trailing assignment"
	case ErrEmptyName:
		return "empty option name"
	case ErrNumericOverflow:
		return "numeric overflow"
	case ErrTypeMismatch:
		return "type mismatch"
	case ErrOptionConflict:
		return "option conflict"
	case ErrInvalidValue:
		return "invalid value"
	default:
		return fmt.Sprintf("usage error %d", int(k))
	}
}

// An error caused by how the program was invoked. The caller should print
// usage guidance rather than treat it as a crash.
type UsageError struct {
	Kind ErrorKind
	Msg  string
	Err  error
}

func (ue UsageError) Error() string {
	if ue.Msg == "" {
		return ue.Kind.Error()
	}
	return ue.Msg
}

func (ue UsageError) Unwrap() error {
	return ue.Err
}

func (ue UsageError) Is(target error) bool {
	k, ok := target.(ErrorKind)
	return ok && k == ue.Kind
}

func usageErrorf(kind ErrorKind, format string, a ...interface{}) UsageError {
	return UsageError{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// Builds an ErrInvalidValue usage error for validation strategies.
func InvalidValuef(format string, a ...interface{}) UsageError {
	return usageErrorf(ErrInvalidValue, format, a...)
}

// Reports whether err is, or wraps, a UsageError.
func IsUsageError(err error) bool {
	var ue UsageError
	return errors.As(err, &ue)
}

// Reports that Second conflicts with First. Validation strategies return it,
// the Sequencer never does.
type ConflictError struct {
	First  string
	Second string
	msg    string
}

// Second has conflict with first.
func NewConflict(first, second string) ConflictError {
	return ConflictError{First: first, Second: second}
}

func Conflictf(format string, a ...interface{}) ConflictError {
	return ConflictError{msg: fmt.Sprintf(format, a...)}
}

func (ce ConflictError) Error() string {
	if ce.msg != "" {
		return ce.msg
	}
	return fmt.Sprintf("%s has conflict with %s", ce.Second, ce.First)
}

func (ce ConflictError) Unwrap() error {
	return UsageError{Kind: ErrOptionConflict, Msg: ce.Error()}
}
