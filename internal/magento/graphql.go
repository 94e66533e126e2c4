package magento

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/magento/wire"
)

// GraphQLErrors is the errors list of a GraphQL response.
type GraphQLErrors []wire.GraphQLError

func (e GraphQLErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ge := range e {
		msgs = append(msgs, ge.Message)
	}
	return "graphql: " + strings.Join(msgs, " | ")
}

// Messages implements apierror.MessageBatch.
func (e GraphQLErrors) Messages() []apierror.BackendMessage {
	out := make([]apierror.BackendMessage, 0, len(e))
	for _, ge := range e {
		category := ge.Category
		if category == "" {
			category = ge.Extensions.Category
		}
		out = append(out, apierror.BackendMessage{Message: ge.Message, Category: category})
	}
	return out
}

type graphQLResponse struct {
	Data   json.RawMessage     `json:"data"`
	Errors []wire.GraphQLError `json:"errors"`
}

// GraphQL posts a query and decodes its data section into out. A populated
// errors list is returned as GraphQLErrors, also when Magento pairs it with
// a non-2xx status.
func (c *Client) GraphQL(ctx context.Context, query string, variables map[string]interface{}, out interface{}) error {
	d := c.Descriptor(http.MethodPost, c.NewRequest(""), wire.GraphQLRequest{
		Query:     query,
		Variables: variables,
	})
	d.URI = c.settings.GraphQLURL()

	var resp graphQLResponse
	if err := c.Execute(ctx, d, &resp); err != nil {
		var be *BackendError
		if errors.As(err, &be) && json.Unmarshal(be.Body, &resp) == nil && len(resp.Errors) > 0 {
			return GraphQLErrors(resp.Errors)
		}
		return err
	}
	if len(resp.Errors) > 0 {
		return GraphQLErrors(resp.Errors)
	}
	if out == nil || len(resp.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode graphql data: %w", err)
	}
	return nil
}
