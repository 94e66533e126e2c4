package magento

import (
	"context"
	"net/http"
	"net/url"

	"magento-commerce-actions/internal/magento/wire"
)

const (
	customerTokenEndpoint = "integration/customer/token"
	customersEndpoint     = "customers"
)

// CustomerClient talks to the customer and token endpoints.
type CustomerClient struct {
	*Client
}

// NewCustomerClient wraps a base client.
func NewCustomerClient(c *Client) *CustomerClient {
	return &CustomerClient{Client: c}
}

// LoginSession is the outcome of a successful login.
type LoginSession struct {
	Token    string
	Customer *wire.Customer
	// Cart is nil when the customer has no active cart.
	Cart *wire.AggregatedCart
}

// Token exchanges customer credentials for a customer token.
func (c *CustomerClient) Token(ctx context.Context, email, password string) (string, error) {
	var token string
	body := wire.Credentials{Username: email, Password: password}
	if err := c.Do(ctx, http.MethodPost, c.NewRequest(customerTokenEndpoint), body, &token); err != nil {
		return "", err
	}
	return token, nil
}

// Me returns the customer identified by the current customer token.
func (c *CustomerClient) Me(ctx context.Context) (*wire.Customer, error) {
	var customer wire.Customer
	if err := c.Do(ctx, http.MethodGet, c.NewRequest(customersEndpoint).WithEndpoint("me"), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// ByID returns a customer. Under a customer token Magento only exposes the
// token's own customer, so the id is replaced by "me".
func (c *CustomerClient) ByID(ctx context.Context, id string) (*wire.Customer, error) {
	if c.IsCustomer() {
		return c.Me(ctx)
	}
	var customer wire.Customer
	if err := c.Do(ctx, http.MethodGet, c.NewRequest(customersEndpoint).WithEndpoint(url.PathEscape(id)), nil, &customer); err != nil {
		return nil, err
	}
	return &customer, nil
}

// Login authenticates the customer, loads the profile and the customer's
// cart. When anonymousCartID is set the anonymous cart is merged into the
// customer's cart first, creating that cart if the customer has none.
func (c *CustomerClient) Login(ctx context.Context, email, password, anonymousCartID string) (*LoginSession, error) {
	token, err := c.Token(ctx, email, password)
	if err != nil {
		return nil, err
	}
	c.SetCustomerToken(token)

	customer, err := c.Me(ctx)
	if err != nil {
		return nil, err
	}

	carts := NewCartClient(c.Client)
	if anonymousCartID != "" {
		if err := carts.EnsureCustomerCart(ctx); err != nil {
			return nil, err
		}
		if err := carts.MergeGuestCart(ctx, anonymousCartID); err != nil {
			return nil, err
		}
	}

	session := &LoginSession{Token: token, Customer: customer}
	cart, err := carts.Get(ctx, mine)
	switch {
	case err == nil:
		session.Cart = cart
	case IsNotFound(err):
		// no active cart
	default:
		return nil, err
	}
	return session, nil
}
