package actions

import (
	"context"
	"net/http"

	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
	"magento-commerce-actions/internal/mappers"
)

// DefaultSearchLimit is the page size used when searchProducts gets no limit.
const DefaultSearchLimit = 25

type productParams struct {
	ID       string `mapstructure:"id" validate:"required"`
	Currency string `mapstructure:"currency"`
}

type searchParams struct {
	Text   string `mapstructure:"text"`
	Limit  int    `mapstructure:"limit" validate:"omitempty,min=1"`
	Offset int    `mapstructure:"offset" validate:"omitempty,min=0"`
}

// GetProductByID returns a product by SKU.
func (a *Actions) GetProductByID(ctx context.Context, args Args) *envelope.Envelope {
	var p productParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, ProductErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, ProductErrorType)
	}

	product, err := magento.NewProductClient(c).ByID(ctx, p.ID)
	if err != nil {
		return a.fail(err, ProductErrorType)
	}
	return c.Success(mappers.MapProduct(product, c.Settings().MediaBaseURL(), p.Currency), nil, http.StatusOK)
}

// SearchProducts runs a full text search. GraphQL errors are folded into
// a single error whose type lists their categories.
func (a *Actions) SearchProducts(ctx context.Context, args Args) *envelope.Envelope {
	var p searchParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, ProductErrorType)
	}
	c, err := a.client(ctx, args)
	if err != nil {
		return a.fail(err, ProductErrorType)
	}

	limit := p.Limit
	if limit == 0 {
		limit = DefaultSearchLimit
	}
	data, err := magento.NewProductClient(c).Search(ctx, magento.SearchParams{
		Text:        p.Text,
		PageSize:    limit,
		CurrentPage: p.Offset/limit + 1,
	})
	if err != nil {
		return a.fail(err, ProductErrorType)
	}
	return c.Success(mappers.MapProductSearch(data), nil, http.StatusOK)
}
