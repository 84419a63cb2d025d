package mininec

import "errors"

type Kind int

const (
	// ParseError: a non-numeric field or a row with the wrong field count.
	ParseError Kind = iota + 1
	// RangeError: a wire, segment or order out of bounds, or an unconnected end point.
	RangeError
	// ShapeError: S-domain orders that do not match the load's field count.
	ShapeError
	// EngineError: the engine rejected the input or failed to solve.
	EngineError
)

func (k Kind) String() string {
	switch k {
	case ParseError:
		return "ParseError"
	case RangeError:
		return "RangeError"
	case ShapeError:
		return "ShapeError"
	case EngineError:
		return "EngineError"
	default:
		return "UnknownError"
	}
}

// Error is returned by every validating Session operation. Index is the
// 1-based offending row, 0 when the error is not tied to a row.
type Error struct {
	Kind    Kind
	Index   int
	Message string
}

func (e *Error) Error() string { return e.Message }

func newError(kind Kind, index int, message string) *Error {
	return &Error{Kind: kind, Index: index, Message: message}
}

func engineError(err error) error {
	if err == nil {
		return nil
	}
	return &Error{Kind: EngineError, Message: err.Error()}
}

// Status turns an operation result into the (success, message) pair shown to
// users: (true, "OK") for nil.
func Status(err error) (bool, string) {
	if err == nil {
		return true, "OK"
	}
	return false, err.Error()
}

// KindOf returns the Kind of a Session error, 0 when err is nil or foreign.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
