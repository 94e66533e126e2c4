package handlers

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/middleware"
	"magento-commerce-actions/pkg/lambda"
)

// LambdaRouter dispatches API Gateway proxy events of one domain to actions
type LambdaRouter struct {
	invoker Invoker
	routes  []Route
	logger  logrus.FieldLogger
}

// NewLambdaRouter creates a router for the routes of domain
func NewLambdaRouter(invoker Invoker, domain string, logger logrus.FieldLogger) *LambdaRouter {
	return &LambdaRouter{invoker: invoker, routes: RoutesFor(domain), logger: logger}
}

// Route finds the action for a request. Path parameters bound by the
// gateway take precedence over those parsed from the path.
func (r *LambdaRouter) Route(req *lambda.Request) (string, bool) {
	for _, route := range r.routes {
		params, ok := route.Match(req.Method, req.Path)
		if !ok {
			continue
		}
		if req.PathParams == nil {
			req.PathParams = make(map[string]string, len(params))
		}
		for k, v := range params {
			if _, set := req.PathParams[k]; !set {
				req.PathParams[k] = v
			}
		}
		return route.Action, true
	}
	return "", false
}

// Handle serves one API Gateway proxy event
func (r *LambdaRouter) Handle(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	req := lambda.FromAPIGateway(event)

	resp, err := r.serve(ctx, req)
	if err != nil {
		r.logger.WithFields(logrus.Fields{
			"method": req.Method,
			"path":   req.Path,
			"error":  err.Error(),
		}).Error("Failed to serve request")
		resp = errorResponse(http.StatusInternalServerError, apierror.Unexpected())
	}
	return resp.APIGateway(), nil
}

func (r *LambdaRouter) serve(ctx context.Context, req *lambda.Request) (*lambda.Response, error) {
	action, ok := r.Route(req)
	if !ok {
		return errorResponse(http.StatusNotFound, apierror.New(apierror.NameNotFound, "No action for "+req.Method+" "+req.Path)), nil
	}

	params, err := req.Params()
	if err != nil {
		return errorResponse(http.StatusBadRequest, apierror.InvalidArgument(err.Error())), nil
	}

	r.logger.WithFields(logrus.Fields{"action": action, "path": req.Path}).Debug("Routing request")
	return invoke(ctx, r.invoker, action, params)
}

func errorResponse(status int, err *apierror.Error) *lambda.Response {
	resp, _ := lambda.NewResponse(envelope.Failure(err, middleware.GatewayErrorType))
	resp.StatusCode = status
	return resp
}
