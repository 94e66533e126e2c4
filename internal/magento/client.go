package magento

import (
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"magento-commerce-actions/internal/envelope"
)

// ActivationIDHeader is added to success responses in debug mode.
const ActivationIDHeader = "OW-Activation-Id"

// HTTPDoer executes HTTP requests. *http.Client satisfies it.
type HTTPDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Observer records the outcome of every backend call.
type Observer interface {
	ObserveBackendCall(method string, elapsed time.Duration, passed bool)
}

// Client is the shared base for the domain clients. It owns the backend
// settings and the customer token resolved for the current invocation.
type Client struct {
	settings      Settings
	httpClient    HTTPDoer
	logger        logrus.FieldLogger
	observer      Observer
	activationID  string
	customerToken string
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used for backend calls.
func WithHTTPClient(h HTTPDoer) Option {
	return func(c *Client) {
		if h != nil {
			c.httpClient = h
		}
	}
}

// WithLogger sets the logger used for debug call logging.
func WithLogger(l logrus.FieldLogger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithObserver sets the metrics observer.
func WithObserver(o Observer) Option {
	return func(c *Client) {
		c.observer = o
	}
}

// WithActivationID overrides the activation id reported in debug mode.
func WithActivationID(id string) Option {
	return func(c *Client) {
		if id != "" {
			c.activationID = id
		}
	}
}

// NewClient creates a client for one invocation. The customer token is
// taken from the incoming headers carried in the settings.
func NewClient(settings Settings, opts ...Option) *Client {
	settings.applyDefaults()
	c := &Client{
		settings:      settings,
		httpClient:    http.DefaultClient,
		logger:        logrus.StandardLogger(),
		activationID:  os.Getenv("__OW_ACTIVATION_ID"),
		customerToken: ExtractCustomerToken(settings.Headers),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Settings returns the backend settings.
func (c *Client) Settings() Settings {
	return c.settings
}

// CustomerToken returns the current customer token, if any.
func (c *Client) CustomerToken() string {
	return c.customerToken
}

// SetCustomerToken switches the client to customer mode. Requests created
// afterwards target the customer's own resources.
func (c *Client) SetCustomerToken(token string) {
	c.customerToken = token
}

// IsCustomer reports whether the client acts on behalf of a customer.
func (c *Client) IsCustomer() bool {
	return c.customerToken != ""
}

// NewRequest starts a request below the given resource.
func (c *Client) NewRequest(baseEndpoint string) Request {
	r := Request{
		baseEndpoint: baseEndpoint,
		headers:      defaultHeaders(),
		customer:     c.IsCustomer(),
	}
	return r.WithAuthorizationHeader(c.settings.ServiceToken())
}

// Descriptor resolves a request into the HTTP call that will be issued.
// The customer token, when present, replaces any service token.
func (c *Client) Descriptor(method string, r Request, body interface{}) Descriptor {
	r = r.WithAuthorizationHeader(c.customerToken)
	return Descriptor{
		Method:  method,
		URI:     r.uri(c.settings.RESTBaseURL()),
		Headers: r.headers,
		Body:    body,
		JSON:    true,
	}
}

// ActivationID returns the id reported in debug responses, generating one
// when the runtime did not provide it.
func (c *Client) ActivationID() string {
	if c.activationID == "" {
		c.activationID = uuid.NewString()
	}
	return c.activationID
}

// Success builds a success envelope, tagging it with the activation id in
// debug mode.
func (c *Client) Success(body interface{}, headers map[string]string, statusCode int) *envelope.Envelope {
	if c.settings.Debug {
		if headers == nil {
			headers = make(map[string]string)
		}
		headers[ActivationIDHeader] = c.ActivationID()
	}
	return envelope.Success(body, headers, statusCode)
}
