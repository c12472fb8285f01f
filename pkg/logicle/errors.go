package logicle

import (
	"errors"
	"fmt"
)

// Kind classifies the failures of the transform.
type Kind int

const (
	// IllegalArgument means a value, position or bin index is outside the
	// domain of the lookup table.
	IllegalArgument Kind = iota + 1
	// IllegalParameter means T, W, M, A (or bins) are inconsistent.
	IllegalParameter
	// DidNotConverge means an iterative solver ran out of iterations.
	DidNotConverge
)

func (k Kind) String() string {
	switch k {
	case IllegalArgument:
		return "illegal argument"
	case IllegalParameter:
		return "illegal parameter"
	case DidNotConverge:
		return "did not converge"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is returned by all operations of this package.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return "logicle: " + e.Message
}

// Is reports whether target is an *Error of the same kind, so that the
// sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrIllegalArgument  = &Error{Kind: IllegalArgument, Message: "illegal argument"}
	ErrIllegalParameter = &Error{Kind: IllegalParameter, Message: "illegal parameter"}
	ErrDidNotConverge   = &Error{Kind: DidNotConverge, Message: "did not converge"}
)

// KindOf returns the kind of err, or 0 if err did not come from this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

func illegalParameter(message string) *Error {
	return &Error{Kind: IllegalParameter, Message: message}
}

func didNotConverge(message string) *Error {
	return &Error{Kind: DidNotConverge, Message: message}
}

func illegalValue(value float64) *Error {
	return &Error{Kind: IllegalArgument, Message: fmt.Sprintf("illegal argument value %.17g", value)}
}

func illegalIndex(index int) *Error {
	return &Error{Kind: IllegalArgument, Message: fmt.Sprintf("illegal argument value %d", index)}
}
