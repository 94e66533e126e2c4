// Package envelope defines the response object every action returns.
package envelope

import (
	"net/http"

	"magento-commerce-actions/internal/apierror"
)

// Envelope is either a success ({statusCode, body, headers}) or a failure
// ({error, errorType}). The constructors never populate both halves.
type Envelope struct {
	StatusCode int               `json:"statusCode,omitempty"`
	Body       interface{}       `json:"body,omitempty"`
	Headers    map[string]string `json:"headers,omitempty"`
	Error      *apierror.Error   `json:"error,omitempty"`
	ErrorType  string            `json:"errorType,omitempty"`
}

// ErrorBody is the JSON document sent to HTTP callers for a failed action.
type ErrorBody struct {
	Message string `json:"message"`
	Reason  string `json:"reason"`
	Type    string `json:"type"`
}

// Success builds a successful envelope. A zero status defaults to 200.
func Success(body interface{}, headers map[string]string, statusCode int) *Envelope {
	if statusCode == 0 {
		statusCode = http.StatusOK
	}
	if headers == nil {
		headers = map[string]string{}
	}
	return &Envelope{StatusCode: statusCode, Body: body, Headers: headers}
}

// Failure builds a failed envelope.
func Failure(err *apierror.Error, errorType string) *Envelope {
	if err == nil {
		err = apierror.Unexpected()
	}
	return &Envelope{Error: err, ErrorType: errorType}
}

// FromError normalizes err and wraps it in a failed envelope. A folded batch
// of backend errors replaces errorType with the joined categories.
func FromError(err error, errorType string) *Envelope {
	canonical, folded := apierror.Normalize(err)
	if folded != "" {
		errorType = folded
	}
	return Failure(canonical, errorType)
}

// Failed reports whether the envelope carries an error.
func (e *Envelope) Failed() bool {
	return e.Error != nil
}

// HTTPStatus returns the status code a gateway should answer with.
func (e *Envelope) HTTPStatus() int {
	if !e.Failed() {
		if e.StatusCode == 0 {
			return http.StatusOK
		}
		return e.StatusCode
	}

	switch e.Error.Name {
	case apierror.NameMissingProperty, apierror.NameInvalidArgument, apierror.NameBadRequest:
		return http.StatusBadRequest
	case apierror.NameUnauthorized:
		return http.StatusUnauthorized
	case apierror.NameForbidden:
		return http.StatusForbidden
	case apierror.NameNotFound:
		return http.StatusNotFound
	case apierror.NameNotImplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// ResponseBody returns what a gateway should serialize as the HTTP body.
func (e *Envelope) ResponseBody() interface{} {
	if e.Failed() {
		return ErrorBody{
			Message: e.Error.Error(),
			Reason:  e.Error.Name,
			Type:    e.ErrorType,
		}
	}
	return e.Body
}
