package handlers

import (
	"context"
	"io"
	"strings"

	"github.com/gin-gonic/gin"

	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/middleware"
	"magento-commerce-actions/pkg/lambda"
)

// Invoker runs actions by name. *server.Container satisfies it.
type Invoker interface {
	Invoke(ctx context.Context, name string, params map[string]interface{}) (*envelope.Envelope, error)
}

// ActionHandler exposes actions over gin
type ActionHandler struct {
	invoker Invoker
}

// NewActionHandler creates a new action handler
func NewActionHandler(invoker Invoker) *ActionHandler {
	return &ActionHandler{invoker: invoker}
}

// Handle returns the gin handler invoking the named action
func (h *ActionHandler) Handle(action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(middleware.ActionKey, action)

		req, err := requestFromGin(c)
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}

		params, err := req.Params()
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypeBind)
			return
		}

		resp, err := invoke(c.Request.Context(), h.invoker, action, params)
		if err != nil {
			_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			return
		}

		for k, v := range resp.Headers {
			c.Header(k, v)
		}
		c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
	}
}

// invoke runs one action and renders its envelope
func invoke(ctx context.Context, invoker Invoker, action string, params map[string]interface{}) (*lambda.Response, error) {
	env, err := invoker.Invoke(ctx, action, params)
	if err != nil {
		return nil, err
	}
	return lambda.NewResponse(env)
}

func requestFromGin(c *gin.Context) (*lambda.Request, error) {
	var body []byte
	if c.Request.Body != nil {
		var err error
		body, err = io.ReadAll(c.Request.Body)
		if err != nil {
			return nil, err
		}
	}

	headers := make(map[string]string, len(c.Request.Header))
	for k, v := range c.Request.Header {
		sep := ","
		if k == "Cookie" {
			sep = "; "
		}
		headers[k] = strings.Join(v, sep)
	}

	pathParams := make(map[string]string, len(c.Params))
	for _, p := range c.Params {
		pathParams[p.Key] = p.Value
	}

	return &lambda.Request{
		Method:      c.Request.Method,
		Path:        c.Request.URL.Path,
		Headers:     headers,
		QueryParams: c.Request.URL.Query(),
		Body:        body,
		PathParams:  pathParams,
	}, nil
}
