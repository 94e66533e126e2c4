package actions

import (
	"context"
	"net/http"

	"golang.org/x/sync/errgroup"

	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/mappers"
	"magento-commerce-actions/internal/models"
)

type cartParams struct {
	ID string `mapstructure:"id" validate:"required"`
}

type postCartParams struct {
	ProductVariantID string `mapstructure:"productVariantId" validate:"required_with=Quantity"`
	Quantity         *int   `mapstructure:"quantity" validate:"required_with=ProductVariantID,omitempty,min=1"`
}

type postCartEntryParams struct {
	ID               string `mapstructure:"id" validate:"required"`
	ProductVariantID string `mapstructure:"productVariantId" validate:"required"`
	Quantity         *int   `mapstructure:"quantity" validate:"required,min=1"`
}

type putCartEntryParams struct {
	ID          string `mapstructure:"id" validate:"required"`
	CartEntryID string `mapstructure:"cartEntryId" validate:"required"`
	Quantity    *int   `mapstructure:"quantity" validate:"required,min=1"`
}

type cartEntryParams struct {
	ID          string `mapstructure:"id" validate:"required"`
	CartEntryID string `mapstructure:"cartEntryId" validate:"required"`
}

type cartEntriesParams struct {
	ID           string   `mapstructure:"id" validate:"required"`
	CartEntryIDs []string `mapstructure:"cartEntryIds" validate:"required,min=1,dive,required"`
}

type postCouponParams struct {
	ID   string `mapstructure:"id" validate:"required"`
	Code string `mapstructure:"code" validate:"required"`
}

type deleteCouponParams struct {
	ID       string `mapstructure:"id" validate:"required"`
	CouponID string `mapstructure:"couponId" validate:"required"`
}

type shippingAddressParams struct {
	ID             string          `mapstructure:"id" validate:"required"`
	Address        *models.Address `mapstructure:"address" validate:"required"`
	DefaultMethod  string          `mapstructure:"default_method"`
	DefaultCarrier string          `mapstructure:"default_carrier"`
}

type billingAddressParams struct {
	ID      string          `mapstructure:"id" validate:"required"`
	Address *models.Address `mapstructure:"address" validate:"required"`
}

type methodsParams struct {
	ID       string `mapstructure:"id" validate:"required"`
	Currency string `mapstructure:"currency"`
}

type paymentParams struct {
	ID      string          `mapstructure:"id" validate:"required"`
	Payment *models.Payment `mapstructure:"payment" validate:"required"`
}

func (a *Actions) cartClient(ctx context.Context, args Args) (*magento.CartClient, error) {
	c, err := a.client(ctx, args)
	if err != nil {
		return nil, err
	}
	return magento.NewCartClient(c), nil
}

// cartResponse fetches the aggregated cart and wraps it in a success
// envelope. Every cart mutation finishes with this call.
func (a *Actions) cartResponse(ctx context.Context, carts *magento.CartClient, id string, status int, headers map[string]string) *envelope.Envelope {
	agg, err := carts.Get(ctx, id)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	// customer carts are addressed as "mine"; keep Magento's quote id
	if carts.IsCustomer() {
		id = ""
	}
	return carts.Success(mappers.MapCart(agg, id), headers, status)
}

// GetCart returns a cart.
func (a *Actions) GetCart(ctx context.Context, args Args) *envelope.Envelope {
	var p cartParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// PostCart creates a cart, optionally with a first entry.
func (a *Actions) PostCart(ctx context.Context, args Args) *envelope.Envelope {
	var p postCartParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	id, err := carts.Create(ctx)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	if p.ProductVariantID != "" {
		if _, err := carts.AddEntry(ctx, id, p.ProductVariantID, *p.Quantity); err != nil {
			return a.fail(err, CartErrorType)
		}
	}
	headers := map[string]string{"Location": "carts/" + id}
	return a.cartResponse(ctx, carts, id, http.StatusCreated, headers)
}

// PostCartEntry adds a product variant to a cart.
func (a *Actions) PostCartEntry(ctx context.Context, args Args) *envelope.Envelope {
	var p postCartEntryParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	item, err := carts.AddEntry(ctx, p.ID, p.ProductVariantID, *p.Quantity)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	headers := map[string]string{"Location": "carts/" + p.ID + "/entries/" + item.ItemID.String()}
	return a.cartResponse(ctx, carts, p.ID, http.StatusCreated, headers)
}

// PutCartEntry changes the quantity of a cart entry.
func (a *Actions) PutCartEntry(ctx context.Context, args Args) *envelope.Envelope {
	var p putCartEntryParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if _, err := carts.UpdateEntry(ctx, p.ID, p.CartEntryID, *p.Quantity); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// DeleteCartEntry removes an entry from a cart.
func (a *Actions) DeleteCartEntry(ctx context.Context, args Args) *envelope.Envelope {
	var p cartEntryParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if err := carts.DeleteEntry(ctx, p.ID, p.CartEntryID); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// DeleteCartEntries removes several entries in parallel and returns the
// cart once every deletion has finished.
func (a *Actions) DeleteCartEntries(ctx context.Context, args Args) *envelope.Envelope {
	var p cartEntriesParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	g, gctx := errgroup.WithContext(ctx)
	for _, entryID := range p.CartEntryIDs {
		entryID := entryID
		g.Go(func() error {
			return carts.DeleteEntry(gctx, p.ID, entryID)
		})
	}
	if err := g.Wait(); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// PostCoupon applies a coupon code to a cart.
func (a *Actions) PostCoupon(ctx context.Context, args Args) *envelope.Envelope {
	var p postCouponParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if err := carts.ApplyCoupon(ctx, p.ID, p.Code); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// DeleteCoupon removes the coupon from a cart. Magento holds one coupon
// per cart, so the coupon id is only checked for presence.
func (a *Actions) DeleteCoupon(ctx context.Context, args Args) *envelope.Envelope {
	var p deleteCouponParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if err := carts.DeleteCoupon(ctx, p.ID); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// PostShippingAddress sets the shipping address together with the default
// shipping method and carrier.
func (a *Actions) PostShippingAddress(ctx context.Context, args Args) *envelope.Envelope {
	var p shippingAddressParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	info := wire.ShippingInformation{AddressInformation: wire.AddressInformation{
		ShippingAddress:     mappers.ToMagentoAddress(*p.Address),
		ShippingMethodCode:  p.DefaultMethod,
		ShippingCarrierCode: p.DefaultCarrier,
	}}
	if err := carts.SetShippingInformation(ctx, p.ID, info); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// PostBillingAddress sets the billing address.
func (a *Actions) PostBillingAddress(ctx context.Context, args Args) *envelope.Envelope {
	var p billingAddressParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if err := carts.SetBillingAddress(ctx, p.ID, mappers.ToMagentoAddress(*p.Address)); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}

// GetShippingMethods lists the shipping methods of a cart.
func (a *Actions) GetShippingMethods(ctx context.Context, args Args) *envelope.Envelope {
	var p methodsParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	methods, err := carts.ShippingMethods(ctx, p.ID)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	return carts.Success(mappers.MapShippingMethods(methods, p.Currency), nil, http.StatusOK)
}

// GetPaymentMethods lists the payment methods of a cart.
func (a *Actions) GetPaymentMethods(ctx context.Context, args Args) *envelope.Envelope {
	var p methodsParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	methods, err := carts.PaymentMethods(ctx, p.ID)
	if err != nil {
		return a.fail(err, CartErrorType)
	}
	return carts.Success(mappers.MapPaymentMethods(methods), nil, http.StatusOK)
}

// PostPayment selects the payment method of a cart.
func (a *Actions) PostPayment(ctx context.Context, args Args) *envelope.Envelope {
	var p paymentParams
	if err := a.bind(args, &p); err != nil {
		return envelope.Failure(err, CartErrorType)
	}
	carts, err := a.cartClient(ctx, args)
	if err != nil {
		return a.fail(err, CartErrorType)
	}

	if err := carts.SetPaymentMethod(ctx, p.ID, p.Payment.Method); err != nil {
		return a.fail(err, CartErrorType)
	}
	return a.cartResponse(ctx, carts, p.ID, http.StatusOK, nil)
}
