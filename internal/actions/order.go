package actions

import (
	"context"
	"net/http"

	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
	"magento-commerce-actions/internal/mappers"
)

type orderParams struct {
	CartID string `mapstructure:"cartId" validate:"required"`
}

// PostOrder places an order from a cart.
func (a *Actions) PostOrder(ctx context.Context, args Args) *envelope.Envelope {
	var p orderParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, OrderErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, OrderErrorType)
	}

	id, err := magento.NewOrderClient(c).Create(ctx, p.CartID)
	if err != nil {
		return a.fail(err, OrderErrorType)
	}
	headers := map[string]string{"Location": "orders/" + id}
	return c.Success(mappers.MapOrder(id), headers, http.StatusCreated)
}
