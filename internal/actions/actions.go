// Package actions implements the commerce actions. Every action takes the
// flat argument bag of one invocation and always returns an envelope;
// failures are reported inside the envelope and never as a Go error.
package actions

import (
	"context"
	"os"
	"sort"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
)

// Error types reported with failed envelopes, one per business domain.
const (
	CartErrorType     = "magento-cart-error"
	CustomerErrorType = "magento-customer-error"
	OrderErrorType    = "magento-order-error"
	ProductErrorType  = "magento-product-error"
)

// Args is the flat argument bag of one invocation.
type Args = map[string]interface{}

// Action is a single business operation.
type Action func(ctx context.Context, args Args) *envelope.Envelope

// Actions holds the collaborators shared by every invocation. It carries no
// per-request state and is safe for concurrent use.
type Actions struct {
	httpClient magento.HTTPDoer
	logger     logrus.FieldLogger
	observer   magento.Observer
	validator  *validator.Validate
}

// Option configures Actions.
type Option func(*Actions)

// WithHTTPClient sets the HTTP client used for backend calls.
func WithHTTPClient(h magento.HTTPDoer) Option {
	return func(a *Actions) { a.httpClient = h }
}

// WithLogger sets the logger.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *Actions) { a.logger = l }
}

// WithObserver sets the backend metrics observer.
func WithObserver(o magento.Observer) Option {
	return func(a *Actions) { a.observer = o }
}

// New creates the action set.
func New(opts ...Option) *Actions {
	a := &Actions{
		logger:    logrus.StandardLogger(),
		validator: newValidator(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Registry maps action names to their implementation.
func (a *Actions) Registry() map[string]Action {
	return map[string]Action{
		"getCart":             a.GetCart,
		"postCart":            a.PostCart,
		"postCartEntry":       a.PostCartEntry,
		"putCartEntry":        a.PutCartEntry,
		"deleteCartEntry":     a.DeleteCartEntry,
		"deleteCartEntries":   a.DeleteCartEntries,
		"postCoupon":          a.PostCoupon,
		"deleteCoupon":        a.DeleteCoupon,
		"postShippingAddress": a.PostShippingAddress,
		"postBillingAddress":  a.PostBillingAddress,
		"getShippingMethods":  a.GetShippingMethods,
		"getPaymentMethods":   a.GetPaymentMethods,
		"postPayment":         a.PostPayment,
		"postCustomerLogin":   a.PostCustomerLogin,
		"postCustomerAuth":    a.PostCustomerAuth,
		"getCustomerById":     a.GetCustomerByID,
		"postOrder":           a.PostOrder,
		"getProductById":      a.GetProductByID,
		"searchProducts":      a.SearchProducts,
	}
}

// Names returns the registered action names in lexical order.
func (a *Actions) Names() []string {
	registry := a.Registry()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the named action.
func (a *Actions) Lookup(name string) (Action, bool) {
	action, ok := a.Registry()[name]
	return action, ok
}

// client builds the per-invocation backend client.
func (a *Actions) client(ctx context.Context, args Args) (*magento.Client, error) {
	settings, err := magento.SettingsFromArgs(args)
	if err != nil {
		return nil, err
	}
	opts := []magento.Option{
		magento.WithHTTPClient(a.httpClient),
		magento.WithLogger(a.logger),
		magento.WithActivationID(activationID(ctx)),
	}
	if a.observer != nil {
		opts = append(opts, magento.WithObserver(a.observer))
	}
	return magento.NewClient(settings, opts...), nil
}

// activationID prefers the id provided by the serverless host and falls
// back to the Lambda request id.
func activationID(ctx context.Context) string {
	if id := os.Getenv("__OW_ACTIVATION_ID"); id != "" {
		return id
	}
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		return lc.AwsRequestID
	}
	return ""
}

// fail converts err into a failed envelope and logs it.
func (a *Actions) fail(err error, errorType string) *envelope.Envelope {
	env := envelope.FromError(err, errorType)
	a.logger.WithFields(logrus.Fields{
		"error_type": env.ErrorType,
		"error_name": env.Error.Name,
		"cause":      err.Error(),
	}).Warn("Action failed")
	return env
}
