package apierror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type statusErr struct{ code int }

func (e *statusErr) Error() string       { return fmt.Sprintf("status %d", e.code) }
func (e *statusErr) HTTPStatusCode() int { return e.code }

type batchErr struct{ msgs []BackendMessage }

func (e *batchErr) Error() string              { return "batch" }
func (e *batchErr) Messages() []BackendMessage { return e.msgs }

func TestNormalizeBackendStatus(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		wantName string
	}{
		{"not found", 404, NameNotFound},
		{"unauthorized", 401, NameUnauthorized},
		{"forbidden", 403, NameForbidden},
		{"bad request", 400, NameBadRequest},
		{"server error", 500, NameUnexpected},
		{"bad gateway", 502, NameUnexpected},
		{"teapot", 418, NameUnexpected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, errType := Normalize(fmt.Errorf("wrapped: %w", &statusErr{code: tt.status}))
			require.NotNil(t, got)
			assert.Equal(t, tt.wantName, got.Name)
			assert.Empty(t, errType)
		})
	}
}

func TestNormalizeHidesUnexpectedDetail(t *testing.T) {
	got, _ := Normalize(errors.New("dial tcp 10.0.0.1:443: connection refused"))
	assert.Equal(t, NameUnexpected, got.Name)
	assert.Equal(t, "Unknown error while communicating with Magento", got.Message)
}

func TestNormalizeKeepsCanonicalErrors(t *testing.T) {
	got, _ := Normalize(fmt.Errorf("validate: %w", MissingProperty("cartId")))
	assert.Equal(t, NameMissingProperty, got.Name)
	assert.Equal(t, "Parameter 'cartId' is missing.", got.Message)
}

func TestNormalizeFoldsBatches(t *testing.T) {
	got, errType := Normalize(&batchErr{msgs: []BackendMessage{
		{Message: "Field \"foo\" is not defined", Category: "graphql"},
		{Message: "Variable \"$search\" is invalid", Category: "graphql-input"},
	}})
	assert.Equal(t, NameInvalidArgument, got.Name)
	assert.Equal(t, "Field \"foo\" is not defined | Variable \"$search\" is invalid", got.Message)
	assert.Equal(t, "graphql | graphql-input", errType)
}

func TestNormalizeNil(t *testing.T) {
	got, errType := Normalize(nil)
	assert.Nil(t, got)
	assert.Empty(t, errType)
}

func TestIs(t *testing.T) {
	assert.True(t, Is(fmt.Errorf("x: %w", NotFound()), NameNotFound))
	assert.False(t, Is(Unauthorized(), NameNotFound))
	assert.False(t, Is(errors.New("plain"), NameNotFound))
}
