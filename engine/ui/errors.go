package ui

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the category of an Error.
type ErrorKind int

const (
	// KindBuild is construction-time misuse of a builder.
	KindBuild ErrorKind = iota + 1
	// KindBorrow is a violation of the shared/exclusive access discipline of a Cell.
	KindBorrow
	// KindState is use of a State before (or after re-) binding.
	KindState
	// KindLayout is a node missing from the layout it is dispatched against.
	KindLayout
)

func (k ErrorKind) String() string {
	switch k {
	case KindBuild:
		return "build"
	case KindBorrow:
		return "borrow"
	case KindState:
		return "state"
	case KindLayout:
		return "layout"
	default:
		return "unknown"
	}
}

var (
	ErrNoChildren    = errors.New("container has no children")
	ErrZeroFlex      = errors.New("total flex weight is zero")
	ErrBorrowed      = errors.New("cell already borrowed")
	ErrReleased      = errors.New("borrow already released")
	ErrUnbound       = errors.New("state is not bound")
	ErrAlreadyBound  = errors.New("state is already bound")
	ErrMissingLayout = errors.New("widget has no layout entry")
)

// Error is the structured error raised by the toolkit. Build errors are
// returned; borrow, state and layout errors indicate a logic bug and are
// raised with panic.
type Error struct {
	// Op is the operation that failed (e.g. "Row.Build").
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s [%s]: %v", e.Op, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func fail(op string, kind ErrorKind, err error) {
	panic(&Error{Op: op, Kind: kind, Err: err})
}
