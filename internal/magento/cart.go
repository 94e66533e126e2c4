package magento

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"magento-commerce-actions/internal/magento/wire"
)

const (
	guestCartsEndpoint              = "guest-carts"
	customerCartsEndpoint           = "carts"
	guestAggregatedCartsEndpoint    = "guest-aggregated-carts"
	customerAggregatedCartsEndpoint = "customer-aggregated-carts"
)

// AggregatedAttributes are the product attributes expanded by the
// aggregated cart endpoints.
var AggregatedAttributes = []string{"color", "size"}

// AggregatedCartQuery is the search criteria sent with every aggregated
// cart request.
var AggregatedCartQuery = attributeSearchCriteria(AggregatedAttributes)

func attributeSearchCriteria(codes []string) string {
	parts := make([]string, 0, len(codes)*2)
	for i, code := range codes {
		prefix := "productAttributesSearchCriteria[filter_groups][0][filters][" + strconv.Itoa(i) + "]"
		parts = append(parts, prefix+"[field]=attribute_code", prefix+"[value]="+code)
	}
	return strings.Join(parts, "&")
}

// CartClient talks to the guest and customer cart endpoints. The endpoint
// family follows the presence of a customer token.
type CartClient struct {
	*Client
}

// NewCartClient wraps a base client.
func NewCartClient(c *Client) *CartClient {
	return &CartClient{Client: c}
}

func (c *CartClient) carts() Request {
	if c.IsCustomer() {
		return c.NewRequest(customerCartsEndpoint)
	}
	return c.NewRequest(guestCartsEndpoint)
}

func (c *CartClient) aggregatedCarts() Request {
	if c.IsCustomer() {
		return c.NewRequest(customerAggregatedCartsEndpoint)
	}
	return c.NewRequest(guestAggregatedCartsEndpoint)
}

// Create creates an empty cart and returns its id. Customer carts are
// created below carts/mine.
func (c *CartClient) Create(ctx context.Context) (string, error) {
	r := c.carts()
	if c.IsCustomer() {
		r = r.WithEndpoint(mine)
	}
	var id wire.ID
	if err := c.Do(ctx, http.MethodPost, r, nil, &id); err != nil {
		return "", err
	}
	return id.String(), nil
}

// Get returns the aggregated view of a cart.
func (c *CartClient) Get(ctx context.Context, id string) (*wire.AggregatedCart, error) {
	var cart wire.AggregatedCart
	r := c.aggregatedCarts().ByID(id).WithQueryString(AggregatedCartQuery)
	if err := c.Do(ctx, http.MethodGet, r, nil, &cart); err != nil {
		return nil, err
	}
	return &cart, nil
}

// AddEntry adds a product variant to a cart.
func (c *CartClient) AddEntry(ctx context.Context, id, sku string, quantity int) (*wire.CartItem, error) {
	body := wire.CartItemRequest{CartItem: wire.CartItem{
		SKU:     sku,
		Qty:     float64(quantity),
		QuoteID: wire.ID(id),
	}}
	var item wire.CartItem
	if err := c.Do(ctx, http.MethodPost, c.carts().ByID(id).WithEndpoint("items"), body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateEntry changes the quantity of a cart entry.
func (c *CartClient) UpdateEntry(ctx context.Context, id, entryID string, quantity int) (*wire.CartItem, error) {
	body := wire.CartItemRequest{CartItem: wire.CartItem{
		ItemID:  wire.ID(entryID),
		Qty:     float64(quantity),
		QuoteID: wire.ID(id),
	}}
	r := c.carts().ByID(id).WithEndpoint("items").WithEndpoint(url.PathEscape(entryID))
	var item wire.CartItem
	if err := c.Do(ctx, http.MethodPut, r, body, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// DeleteEntry removes an entry from a cart.
func (c *CartClient) DeleteEntry(ctx context.Context, id, entryID string) error {
	r := c.carts().ByID(id).WithEndpoint("items").WithEndpoint(url.PathEscape(entryID))
	return c.Do(ctx, http.MethodDelete, r, nil, nil)
}

// ApplyCoupon applies a coupon code to a cart.
func (c *CartClient) ApplyCoupon(ctx context.Context, id, code string) error {
	r := c.carts().ByID(id).WithEndpoint("coupons").WithEndpoint(url.PathEscape(code))
	return c.Do(ctx, http.MethodPut, r, nil, nil)
}

// DeleteCoupon removes the coupon applied to a cart. Magento supports a
// single coupon per cart, so no code is sent.
func (c *CartClient) DeleteCoupon(ctx context.Context, id string) error {
	return c.Do(ctx, http.MethodDelete, c.carts().ByID(id).WithEndpoint("coupons"), nil, nil)
}

// SetShippingInformation sets the shipping address and method.
func (c *CartClient) SetShippingInformation(ctx context.Context, id string, info wire.ShippingInformation) error {
	return c.Do(ctx, http.MethodPost, c.carts().ByID(id).WithEndpoint("shipping-information"), info, nil)
}

// SetBillingAddress sets the billing address.
func (c *CartClient) SetBillingAddress(ctx context.Context, id string, address wire.Address) error {
	body := wire.BillingAddressRequest{Address: address}
	return c.Do(ctx, http.MethodPost, c.carts().ByID(id).WithEndpoint("billing-address"), body, nil)
}

// ShippingMethods lists the shipping methods available for a cart.
func (c *CartClient) ShippingMethods(ctx context.Context, id string) ([]wire.ShippingMethod, error) {
	var methods []wire.ShippingMethod
	if err := c.Do(ctx, http.MethodGet, c.carts().ByID(id).WithEndpoint("shipping-methods"), nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// PaymentMethods lists the payment methods available for a cart.
func (c *CartClient) PaymentMethods(ctx context.Context, id string) ([]wire.PaymentMethod, error) {
	var methods []wire.PaymentMethod
	if err := c.Do(ctx, http.MethodGet, c.carts().ByID(id).WithEndpoint("payment-methods"), nil, &methods); err != nil {
		return nil, err
	}
	return methods, nil
}

// SetPaymentMethod selects the payment method of a cart.
func (c *CartClient) SetPaymentMethod(ctx context.Context, id, method string) error {
	body := wire.PaymentMethodRequest{Method: wire.PaymentMethodSelection{Method: method}}
	return c.Do(ctx, http.MethodPut, c.carts().ByID(id).WithEndpoint("selected-payment-method"), body, nil)
}

// EnsureCustomerCart makes sure the authenticated customer has an active
// cart, creating an empty one when Magento reports none.
func (c *CartClient) EnsureCustomerCart(ctx context.Context) error {
	err := c.Do(ctx, http.MethodGet, c.NewRequest(customerCartsEndpoint).WithEndpoint(mine), nil, nil)
	if err == nil {
		return nil
	}
	if !IsNotFound(err) {
		return err
	}
	return c.Do(ctx, http.MethodPost, c.NewRequest(customerCartsEndpoint).WithEndpoint(mine), nil, nil)
}

// MergeGuestCart merges an anonymous cart into the customer's cart.
func (c *CartClient) MergeGuestCart(ctx context.Context, anonymousCartID string) error {
	r := c.NewRequest(customerCartsEndpoint).
		WithResetEndpoint(mine + "/merge-with-guest-cart/" + url.PathEscape(anonymousCartID))
	return c.Do(ctx, http.MethodPut, r, nil, nil)
}
