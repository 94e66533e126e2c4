package lambda

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/aws/aws-lambda-go/events"

	"magento-commerce-actions/internal/envelope"
)

// HeadersArg is the argument carrying the lower-cased request headers
const HeadersArg = "__ow_headers"

// FromAPIGateway converts an API Gateway proxy event to a generic request
func FromAPIGateway(event events.APIGatewayProxyRequest) *Request {
	query := make(map[string][]string, len(event.QueryStringParameters))
	for k, v := range event.QueryStringParameters {
		query[k] = []string{v}
	}
	for k, v := range event.MultiValueQueryStringParameters {
		query[k] = v
	}

	headers := make(map[string]string, len(event.Headers))
	for k, v := range event.Headers {
		headers[k] = v
	}
	for k, v := range event.MultiValueHeaders {
		if _, ok := headers[k]; !ok && len(v) > 0 {
			headers[k] = strings.Join(v, ",")
		}
	}

	return &Request{
		Method:      event.HTTPMethod,
		Path:        event.Path,
		Headers:     headers,
		QueryParams: query,
		Body:        []byte(event.Body),
		PathParams:  event.PathParameters,
	}
}

// Params assembles the invocation parameters of the request. Later sources
// win: query parameters, then path parameters, then the JSON body. Headers
// are lower-cased into HeadersArg.
func (r *Request) Params() (map[string]interface{}, error) {
	params := make(map[string]interface{})

	for k, values := range r.QueryParams {
		switch len(values) {
		case 0:
		case 1:
			params[k] = values[0]
		default:
			params[k] = values
		}
	}

	for k, v := range r.PathParams {
		params[k] = v
	}

	if body := bytes.TrimSpace(r.Body); len(body) > 0 {
		var fields map[string]interface{}
		if err := json.Unmarshal(body, &fields); err != nil {
			return nil, fmt.Errorf("request body must be a JSON object: %w", err)
		}
		for k, v := range fields {
			params[k] = v
		}
	}

	headers := make(map[string]string, len(r.Headers))
	for k, v := range r.Headers {
		headers[strings.ToLower(k)] = v
	}
	params[HeadersArg] = headers

	return params, nil
}

// NewResponse renders an envelope as an HTTP response
func NewResponse(env *envelope.Envelope) (*Response, error) {
	headers := map[string]string{"Content-Type": "application/json"}
	if !env.Failed() {
		for k, v := range env.Headers {
			headers[k] = v
		}
	}

	var body []byte
	if payload := env.ResponseBody(); payload != nil {
		var err error
		body, err = json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode response body: %w", err)
		}
	}

	return &Response{
		StatusCode: env.HTTPStatus(),
		Headers:    headers,
		Body:       body,
	}, nil
}

// APIGateway converts the response to an API Gateway proxy response
func (r *Response) APIGateway() events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: r.StatusCode,
		Headers:    r.Headers,
		Body:       string(r.Body),
	}
}
