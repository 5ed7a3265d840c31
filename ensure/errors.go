package ensure

import (
	"errors"
	"fmt"
)

// Presence failures. The messages are lower-case per Go error convention;
// match on these values with errors.Is rather than on the text.
var (
	ErrMissingValue = errors.New("expected string to be defined")
	ErrNullValue    = errors.New("expected string to be not null")
	ErrEmptyString  = errors.New("expected string to be not empty")
)

// Kind identifies which presence check failed.
type Kind uint8

const (
	KindMissing Kind = iota + 1
	KindNull
	KindEmpty
)

func (k Kind) String() string {
	switch k {
	case KindMissing:
		return "missing"
	case KindNull:
		return "null"
	case KindEmpty:
		return "empty"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissing:
		return ErrMissingValue
	case KindNull:
		return ErrNullValue
	case KindEmpty:
		return ErrEmptyString
	default:
		return nil
	}
}

// Error is a failed presence check. Field is empty when the check was not
// attached to a named field.
type Error struct {
	Field string
	Kind  Kind
}

func (e *Error) Error() string {
	if e.Field == "" {
		return e.Reason()
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason())
}

// Reason is the failure message without the field name.
func (e *Error) Reason() string {
	if s := e.Kind.sentinel(); s != nil {
		return s.Error()
	}
	return "presence check failed"
}

func (e *Error) Unwrap() error { return e.Kind.sentinel() }

// KindOf returns the Kind of the first presence failure found in err's
// chain, or 0 if there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	switch {
	case errors.Is(err, ErrMissingValue):
		return KindMissing
	case errors.Is(err, ErrNullValue):
		return KindNull
	case errors.Is(err, ErrEmptyString):
		return KindEmpty
	}
	return 0
}

// Errors flattens err into the presence failures it contains, following
// both Unwrap() error and Unwrap() []error chains.
func Errors(err error) []*Error {
	if err == nil {
		return nil
	}
	if e, ok := err.(*Error); ok {
		return []*Error{e}
	}
	switch u := err.(type) {
	case interface{ Unwrap() []error }:
		var out []*Error
		for _, inner := range u.Unwrap() {
			out = append(out, Errors(inner)...)
		}
		return out
	case interface{ Unwrap() error }:
		return Errors(u.Unwrap())
	}
	if k := KindOf(err); k != 0 {
		return []*Error{{Kind: k}}
	}
	return nil
}
