package magento

import (
	"context"
	"net/http"

	"magento-commerce-actions/internal/magento/wire"
)

// OrderClient places orders from carts.
type OrderClient struct {
	*Client
}

// NewOrderClient wraps a base client.
func NewOrderClient(c *Client) *OrderClient {
	return &OrderClient{Client: c}
}

// Create places an order for the cart and returns the order id.
func (c *OrderClient) Create(ctx context.Context, cartID string) (string, error) {
	base := guestCartsEndpoint
	if c.IsCustomer() {
		base = customerCartsEndpoint
	}
	var id wire.ID
	if err := c.Do(ctx, http.MethodPut, c.NewRequest(base).ByID(cartID).WithEndpoint("order"), nil, &id); err != nil {
		return "", err
	}
	return id.String(), nil
}
