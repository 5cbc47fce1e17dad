// Package errs defines the error taxonomy shared by the services and the HTTP layer.
// Every failure a handler can report is one of the Kinds below; the HTTP mapping lives in
// middleware so services stay transport agnostic.
package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an error for callers that need to branch on it.
type Kind string

const (
	KindUnauthenticated Kind = "unauthenticated"
	KindNotFound        Kind = "not_found"
	KindConflict        Kind = "conflict"
	KindPaymentRequired Kind = "payment_required"
	KindInvalidArgument Kind = "invalid_argument"
	KindForbidden       Kind = "forbidden"
	KindInternal        Kind = "internal"
)

// Error carries a Kind, a client-facing message and an optional cause.
type Error struct {
	Kind    Kind
	Op      string // operation that failed, e.g. "ledger.Create"
	Message string
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches another *Error of the same Kind, so sentinels below work with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Message == "" || t.Message == e.Message)
}

// New creates an error of the given kind.
func New(kind Kind, op, message string) *Error {
	return &Error{Kind: kind, Op: op, Message: message}
}

// Wrap attaches kind and message to an underlying error.
func Wrap(kind Kind, op, message string, err error) *Error {
	return &Error{Kind: kind, Op: op, Message: message, Err: err}
}

// Invalid builds an InvalidArgument error with per-field details.
func Invalid(op, message string, details map[string]string) *Error {
	return &Error{Kind: KindInvalidArgument, Op: op, Message: message, Details: details}
}

// KindOf returns the Kind of err, or KindInternal for anything unclassified.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the client-facing message of err.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Kind != KindInternal {
		return e.Message
	}
	return "Internal server error"
}

// DetailsOf returns per-field details, if any.
func DetailsOf(err error) map[string]string {
	var e *Error
	if errors.As(err, &e) {
		return e.Details
	}
	return nil
}

// Messages the client matches on. PaymentRequiredMessage in particular is a stable contract.
const (
	PaymentRequiredMessage = "Payment required"
	AlreadyEnrolledMessage = "Already enrolled in this course"
	CourseNotFoundMessage  = "Course not found"
)

var (
	ErrUnauthenticated  = New(KindUnauthenticated, "auth", "Not authenticated")
	ErrAlreadyEnrolled  = New(KindConflict, "enroll", AlreadyEnrolledMessage)
	ErrCourseNotFound   = New(KindNotFound, "enroll", CourseNotFoundMessage)
	ErrPaymentRequired  = New(KindPaymentRequired, "enroll", PaymentRequiredMessage)
	ErrEnrollmentAbsent = New(KindNotFound, "enrollment", "Enrollment not found")
	ErrNotEnrolled      = New(KindForbidden, "enrollment", "You are not enrolled in this course")
	ErrInvalidProgress  = New(KindInvalidArgument, "enrollment", "Progress must be an integer between 0 and 100")
)
