package apierror

import (
	"errors"
	"fmt"
)

// Canonical error names returned to callers.
const (
	NameMissingProperty   = "MissingPropertyError"
	NameInvalidArgument   = "InvalidArgumentError"
	NameNotFound          = "CommerceServiceResourceNotFoundError"
	NameUnauthorized      = "CommerceServiceUnauthorizedError"
	NameForbidden         = "CommerceServiceForbiddenError"
	NameBadRequest        = "CommerceServiceBadRequestError"
	NameNotImplemented    = "NotImplementedError"
	NameUnexpected        = "UnexpectedError"
	UnexpectedMessage     = "Unknown error while communicating with Magento"
	notFoundMessage       = "Resource not found"
	unauthorizedMessage   = "Unauthorized Request"
	forbiddenMessage      = "Forbidden Request"
	badRequestMessage     = "Bad Request"
	notImplementedMessage = "Not implemented"
)

// Error is the canonical {name, message} pair exposed by every action.
type Error struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Name, e.Message)
}

// New creates a canonical error.
func New(name, message string) *Error {
	return &Error{Name: name, Message: message}
}

// MissingProperty reports a mandatory argument that was not supplied.
func MissingProperty(param string) *Error {
	return New(NameMissingProperty, fmt.Sprintf("Parameter '%s' is missing.", param))
}

// InvalidArgument reports an argument that was supplied with an unusable value.
func InvalidArgument(message string) *Error {
	return New(NameInvalidArgument, message)
}

func NotFound() *Error       { return New(NameNotFound, notFoundMessage) }
func Unauthorized() *Error   { return New(NameUnauthorized, unauthorizedMessage) }
func Forbidden() *Error      { return New(NameForbidden, forbiddenMessage) }
func BadRequest() *Error     { return New(NameBadRequest, badRequestMessage) }
func NotImplemented() *Error { return New(NameNotImplemented, notImplementedMessage) }

// Unexpected hides whatever went wrong behind a fixed message.
func Unexpected() *Error { return New(NameUnexpected, UnexpectedMessage) }

// Is reports whether err carries a canonical error with the given name.
func Is(err error, name string) bool {
	var e *Error
	return errors.As(err, &e) && e.Name == name
}
