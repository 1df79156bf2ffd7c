package property

import (
	"errors"
	"fmt"
)

// Kind identifies what sort of problem an Error reports.
type Kind int

// The kinds of Error. These are never conflated: Loose mode may forgive some
// Structural problems, but never a DataValidity problem.
const (
	// Structural means the text does not match the grammar.
	Structural Kind = iota + 1

	// DataValidity means the text is well-formed, but the value it describes
	// is out of range, such as February 30th.
	DataValidity

	// TypeMismatch means two values of incompatible types were compared.
	TypeMismatch
)

// String returns a short name for the kind.
func (k Kind) String() string {
	switch k {
	case Structural:
		return "structural"
	case DataValidity:
		return "data validity"
	case TypeMismatch:
		return "type mismatch"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Errors that may be matched against with errors.Is() to learn the Kind of an
// *Error.
var (
	// ErrStructural matches any *Error of Kind Structural.
	ErrStructural = &Error{Kind: Structural}

	// ErrDataValidity matches any *Error of Kind DataValidity.
	ErrDataValidity = &Error{Kind: DataValidity}

	// ErrTypeMismatch matches any *Error of Kind TypeMismatch.
	ErrTypeMismatch = &Error{Kind: TypeMismatch}
)

// Error is returned by the parsing and comparison functions of this module. It
// carries the Kind of failure, a message, and the input text at fault.
type Error struct {
	Kind  Kind   // what went wrong
	Msg   string // human readable description
	Input string // the offending text
}

// NewStructuralError returns an *Error of Kind Structural.
func NewStructuralError(input, format string, args ...any) *Error {
	return &Error{Structural, fmt.Sprintf(format, args...), input}
}

// NewDataValidityError returns an *Error of Kind DataValidity.
func NewDataValidityError(input, format string, args ...any) *Error {
	return &Error{DataValidity, fmt.Sprintf(format, args...), input}
}

// NewTypeMismatchError returns an *Error of Kind TypeMismatch.
func NewTypeMismatchError(input, format string, args ...any) *Error {
	return &Error{TypeMismatch, fmt.Sprintf(format, args...), input}
}

// Error returns the error message.
func (err *Error) Error() string {
	if err.Msg == "" {
		return err.Kind.String() + " error"
	}
	return err.Kind.String() + " error: " + err.Msg
}

// Is reports whether target is an *Error of the same Kind.
func (err *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == err.Kind
}

// KindOf returns the Kind of the first *Error found in the chain of err or 0 if
// there is none.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
