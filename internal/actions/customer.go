package actions

import (
	"context"
	"net/http"
	"time"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
	"magento-commerce-actions/internal/mappers"
	"magento-commerce-actions/internal/models"
)

// Authentication types accepted by postCustomerAuth.
const (
	AuthTypeGuest       = "guest"
	AuthTypeCredentials = "credentials"
)

type loginParams struct {
	Email           string `mapstructure:"email" validate:"required"`
	Password        string `mapstructure:"password" validate:"required"`
	AnonymousCartID string `mapstructure:"anonymousCartId"`
}

type authParams struct {
	Type     string `mapstructure:"type" validate:"required,oneof=guest credentials"`
	Email    string `mapstructure:"email" validate:"required_if=Type credentials"`
	Password string `mapstructure:"password" validate:"required_if=Type credentials"`
}

type customerParams struct {
	ID string `mapstructure:"id" validate:"required"`
}

// PostCustomerLogin logs a customer in and returns the profile and cart.
// The token is handed back as a cookie for legacy clients.
func (a *Actions) PostCustomerLogin(ctx context.Context, args Args) *envelope.Envelope {
	var p loginParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CustomerErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}

	session, err := magento.NewCustomerClient(c).Login(ctx, p.Email, p.Password, p.AnonymousCartID)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}

	result := models.LoginResult{Customer: mappers.MapCustomer(session.Customer)}
	if session.Cart != nil {
		result.Cart = mappers.MapCart(session.Cart, "")
	}
	maxAge := magento.TokenMaxAge(session.Token, c.Settings().CustomerTokenExpiration, time.Now())
	headers := map[string]string{
		"Set-Cookie": magento.CustomerTokenSetCookie(session.Token, maxAge),
	}
	return c.Success(result, headers, http.StatusOK)
}

// PostCustomerAuth issues a bearer token for customer credentials. Guest
// tokens are not supported by Magento.
func (a *Actions) PostCustomerAuth(ctx context.Context, args Args) *envelope.Envelope {
	var p authParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CustomerErrorType)
	}
	if p.Type == AuthTypeGuest {
		return envelope.Failure(apierror.NotImplemented(), CustomerErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}

	token, err := magento.NewCustomerClient(c).Token(ctx, p.Email, p.Password)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}
	return c.Success(models.AuthResult{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   magento.TokenMaxAge(token, c.Settings().CustomerTokenExpiration, time.Now()),
	}, nil, http.StatusOK)
}

// GetCustomerByID returns a customer. With a customer token the token's
// own customer is returned.
func (a *Actions) GetCustomerByID(ctx context.Context, args Args) *envelope.Envelope {
	var p customerParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CustomerErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}

	customer, err := magento.NewCustomerClient(c).ByID(ctx, p.ID)
	if err != nil {
		return a.fail(err, CustomerErrorType)
	}
	return c.Success(mappers.MapCustomer(customer), nil, http.StatusOK)
}
