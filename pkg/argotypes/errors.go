package argotypes

import (
	"errors"
	"fmt"
)

// ErrorKind identifies which stage of the dispatch pipeline failed.
// The set is closed; every failure a caller can observe carries one of
// these kinds.
type ErrorKind string

const (
	// ErrInvalidTemplate reports a template entry with an unknown type name,
	// an array without a detail clause, or an invalid element type.
	ErrInvalidTemplate ErrorKind = "InvalidTemplate"
	// ErrArgumentMismatch reports too few tokens for a definition, or an
	// array size that evaluated to a negative number.
	ErrArgumentMismatch ErrorKind = "ArgumentMismatch"
	// ErrTypeConversionFailed reports a token that cannot be parsed as its
	// declared primitive type.
	ErrTypeConversionFailed ErrorKind = "TypeConversionFailed"
	// ErrInvalidExpression reports a size expression that cannot be
	// evaluated to a number.
	ErrInvalidExpression ErrorKind = "InvalidExpression"
	// ErrCommandNotFound reports an unregistered keyword.
	ErrCommandNotFound ErrorKind = "CommandNotFound"
	// ErrInvalidInputFormat reports an input line without a keyword/args
	// separator.
	ErrInvalidInputFormat ErrorKind = "InvalidInputFormat"
)

// Error is the structured error value threaded through every pipeline stage.
// Its text form is exactly "<ErrorKind>: <detail>".
type Error struct {
	Kind   ErrorKind
	Detail string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return string(e.Kind) + ": " + e.Detail
}

// NewError builds an Error of the given kind with a formatted detail.
func NewError(kind ErrorKind, format string, args ...interface{}) *Error {
	return &Error{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}

// IsKind reports whether err (or anything it wraps) is an Error of the given
// kind.
func IsKind(err error, kind ErrorKind) bool {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind == kind
	}
	return false
}

// KindOf returns the kind carried by err, or "" when err is not an Error.
func KindOf(err error) ErrorKind {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}
