package domain

import "errors"

type ErrorKind string

const (
	ErrorKindNotFound     ErrorKind = "NOT_FOUND"
	ErrorKindUnauthorized ErrorKind = "UNAUTHORIZED"
	ErrorKindValidation   ErrorKind = "VALIDATION_ERROR"
)

// Error is a domain failure carrying a machine-readable kind and a human
// message. Callers match on the kind, never on the message text.
type Error struct {
	Kind    ErrorKind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NewNotFoundError(message string) *Error {
	return &Error{Kind: ErrorKindNotFound, Message: message}
}

func NewUnauthorizedError(message string) *Error {
	return &Error{Kind: ErrorKindUnauthorized, Message: message}
}

func NewValidationError(message string) *Error {
	return &Error{Kind: ErrorKindValidation, Message: message}
}

// ErrEmailTaken is shared between the use-case pre-check and the storage
// adapters so a duplicate insert losing the race surfaces as the same failure.
var ErrEmailTaken = NewValidationError("Email already in use")

func IsNotFound(err error) bool {
	return kindOf(err) == ErrorKindNotFound
}

func IsUnauthorized(err error) bool {
	return kindOf(err) == ErrorKindUnauthorized
}

func IsValidation(err error) bool {
	return kindOf(err) == ErrorKindValidation
}

func kindOf(err error) ErrorKind {
	var domainErr *Error
	if errors.As(err, &domainErr) {
		return domainErr.Kind
	}
	return ""
}
