package lambda

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/envelope"
)

func TestParamsPrecedence(t *testing.T) {
	req := FromAPIGateway(events.APIGatewayProxyRequest{
		HTTPMethod:            http.MethodPost,
		Path:                  "/carts/abc/entries",
		QueryStringParameters: map[string]string{"id": "from-query", "currency": "EUR"},
		PathParameters:        map[string]string{"id": "abc"},
		Headers:               map[string]string{"Authorization": "Bearer t0k3n"},
		Body:                  `{"productVariantId":"MJ01-XS-Purple","quantity":2}`,
	})

	params, err := req.Params()
	require.NoError(t, err)

	assert.Equal(t, "abc", params["id"])
	assert.Equal(t, "EUR", params["currency"])
	assert.Equal(t, "MJ01-XS-Purple", params["productVariantId"])
	assert.Equal(t, float64(2), params["quantity"])
	assert.Equal(t, map[string]string{"authorization": "Bearer t0k3n"}, params[HeadersArg])
}

func TestParamsMultiValueQuery(t *testing.T) {
	req := FromAPIGateway(events.APIGatewayProxyRequest{
		MultiValueQueryStringParameters: map[string][]string{"cartEntryIds": {"1", "2"}},
	})

	params, err := req.Params()
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2"}, params["cartEntryIds"])
}

func TestParamsRejectsNonObjectBody(t *testing.T) {
	req := &Request{Body: []byte(`[1,2,3]`)}

	_, err := req.Params()
	assert.Error(t, err)
}

func TestNewResponseSuccess(t *testing.T) {
	env := envelope.Success(map[string]string{"id": "abc"}, map[string]string{"Location": "carts/abc"}, http.StatusCreated)

	resp, err := NewResponse(env)
	require.NoError(t, err)

	proxy := resp.APIGateway()
	assert.Equal(t, http.StatusCreated, proxy.StatusCode)
	assert.Equal(t, "carts/abc", proxy.Headers["Location"])
	assert.Equal(t, "application/json", proxy.Headers["Content-Type"])
	assert.JSONEq(t, `{"id":"abc"}`, proxy.Body)
}

func TestNewResponseFailure(t *testing.T) {
	env := envelope.Failure(apierror.NotFound(), "magento-cart-error")

	resp, err := NewResponse(env)
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var body envelope.ErrorBody
	require.NoError(t, json.Unmarshal(resp.Body, &body))
	assert.Equal(t, apierror.NameNotFound, body.Reason)
	assert.Equal(t, "magento-cart-error", body.Type)
}
