package content

import (
	"errors"
	"fmt"
)

// ErrorKind classifies content-pipeline failures so controllers can map them
// to HTTP statuses and callers can branch without string matching.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindValidation
	KindNotFound
	KindConflict
	KindUpload
	KindStore
)

// Error is the failure result of a content mutation or query. Store errors
// keep the failing step so partial cascades are identifiable.
type Error struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Validation reports a missing or malformed required field
func Validation(format string, args ...interface{}) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

// NotFound reports an absent course, section or lecture
func NotFound(format string, args ...interface{}) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

// Conflict reports a uniqueness violation such as a duplicate slug
func Conflict(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

// Upload reports a collaborator upload failure
func Upload(msg string, err error) *Error {
	return &Error{Kind: KindUpload, Message: msg, Err: err}
}

// Store reports an underlying persistence failure; step names which part of
// the operation failed (e.g. which cascade step)
func Store(step string, err error) *Error {
	return &Error{Kind: KindStore, Message: step, Err: err}
}

// KindOf extracts the ErrorKind from err, or KindUnknown for foreign errors
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
