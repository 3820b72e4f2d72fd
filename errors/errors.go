// Package errors defines the typed failures surfaced by the harmony and
// sboard object models. Lookup codes identify which relationship of the
// document broke; structural codes indicate a malformed or unsupported
// source document. Raw XML parse failures are propagated by the parsers
// unwrapped and never carry one of these codes.
package errors

import (
	"errors"
	"fmt"
)

// Code identifies a failure kind callers can branch on.
type Code string

const (
	// CodeElementNotFound indicates an id or name keyed element lookup had no match.
	CodeElementNotFound Code = "element-not-found"
	// CodeColumnNotFound indicates an id or name keyed column lookup had no match.
	CodeColumnNotFound Code = "column-not-found"
	// CodeCategoryNotFound indicates a library category id lookup had no match.
	CodeCategoryNotFound Code = "category-not-found"
	// CodeChildNotFound indicates a graph node has no descendant with the requested name.
	CodeChildNotFound Code = "child-not-found"
	// CodeRecordNotFound indicates no warp sequence record matches the target id.
	CodeRecordNotFound Code = "record-not-found"

	// CodeMissingAttribute indicates a required attribute is absent.
	CodeMissingAttribute Code = "missing-attribute"
	// CodeMissingChild indicates a required child element is absent.
	CodeMissingChild Code = "missing-child"
	// CodeInvalidAttribute indicates an attribute value failed to parse.
	CodeInvalidAttribute Code = "invalid-attribute"
)

// Error is a coded failure raised by an accessor or lookup.
type Error struct {
	Code    Code
	Message string
}

// Error formats the failure with its code for display.
func (e *Error) Error() string {
	if e == nil {
		return "error <nil>"
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// New builds an Error with a code and message.
func New(code Code, msg string) *Error {
	return &Error{Code: code, Message: msg}
}

// Newf formats a message and builds an Error.
func Newf(code Code, format string, args ...any) *Error {
	return New(code, fmt.Sprintf(format, args...))
}

// As extracts a coded Error from an error chain.
func As(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var coded *Error
	if errors.As(err, &coded) {
		return coded, true
	}
	return nil, false
}

// HasCode reports whether the error chain contains a coded Error with the
// given code.
func HasCode(err error, code Code) bool {
	coded, ok := As(err)
	return ok && coded.Code == code
}

// IsLookup reports whether the error is one of the lookup failures, as
// opposed to a structural problem with the document.
func IsLookup(err error) bool {
	coded, ok := As(err)
	if !ok {
		return false
	}
	switch coded.Code {
	case CodeElementNotFound, CodeColumnNotFound, CodeCategoryNotFound,
		CodeChildNotFound, CodeRecordNotFound:
		return true
	}
	return false
}
