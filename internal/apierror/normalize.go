package apierror

import (
	"errors"
	"net/http"
	"strings"
)

// StatusCoder is implemented by backend failures that carry an HTTP status.
type StatusCoder interface {
	error
	HTTPStatusCode() int
}

// BackendMessage is one entry of a batch of errors reported by the backend.
type BackendMessage struct {
	Message  string `json:"message"`
	Category string `json:"category"`
}

// MessageBatch is implemented by failures that carry several backend messages,
// such as a GraphQL response with a populated errors list.
type MessageBatch interface {
	error
	Messages() []BackendMessage
}

// Normalize converts any failure raised while serving an action into a
// canonical error. The second return value overrides the action's error
// type when the failure was a folded batch, and is empty otherwise.
func Normalize(err error) (*Error, string) {
	if err == nil {
		return nil, ""
	}

	var canonical *Error
	if errors.As(err, &canonical) {
		return canonical, ""
	}

	var batch MessageBatch
	if errors.As(err, &batch) {
		return Fold(batch.Messages())
	}

	var backend StatusCoder
	if errors.As(err, &backend) {
		return FromStatus(backend.HTTPStatusCode()), ""
	}

	return Unexpected(), ""
}

// FromStatus maps a backend HTTP status to the canonical taxonomy. The
// original status and body are dropped for anything unrecognised.
func FromStatus(status int) *Error {
	switch status {
	case http.StatusNotFound:
		return NotFound()
	case http.StatusUnauthorized:
		return Unauthorized()
	case http.StatusForbidden:
		return Forbidden()
	case http.StatusBadRequest:
		return BadRequest()
	default:
		return Unexpected()
	}
}

// Fold merges backend messages into a single invalid-argument error. The
// returned error type joins the categories in the same order.
func Fold(msgs []BackendMessage) (*Error, string) {
	if len(msgs) == 0 {
		return Unexpected(), ""
	}
	messages := make([]string, 0, len(msgs))
	categories := make([]string, 0, len(msgs))
	for _, m := range msgs {
		messages = append(messages, m.Message)
		categories = append(categories, m.Category)
	}
	return InvalidArgument(strings.Join(messages, " | ")), strings.Join(categories, " | ")
}
