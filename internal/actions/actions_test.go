package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"magento-commerce-actions/internal/apierror"
	"magento-commerce-actions/internal/envelope"
	"magento-commerce-actions/internal/magento"
	"magento-commerce-actions/internal/magento/magentotest"
	"magento-commerce-actions/internal/models"
)

func newTestActions(t *testing.T) (*Actions, *magentotest.Server) {
	t.Helper()
	logger, _ := logtest.NewNullLogger()
	return New(WithLogger(logger)), magentotest.NewServer(t)
}

func bodyJSON(t *testing.T, env *envelope.Envelope) map[string]interface{} {
	t.Helper()
	payload, err := json.Marshal(env.Body)
	require.NoError(t, err)
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(payload, &out))
	return out
}

func TestRegistryListsEveryAction(t *testing.T) {
	a := New()
	assert.Equal(t, []string{
		"deleteCartEntries", "deleteCartEntry", "deleteCoupon",
		"getCart", "getCustomerById", "getPaymentMethods", "getProductById", "getShippingMethods",
		"postBillingAddress", "postCart", "postCartEntry", "postCoupon", "postCustomerAuth",
		"postCustomerLogin", "postOrder", "postPayment", "postShippingAddress",
		"putCartEntry", "searchProducts",
	}, a.Names())

	_, ok := a.Lookup("getCart")
	assert.True(t, ok)
	_, ok = a.Lookup("nope")
	assert.False(t, ok)
}

func TestMissingParametersNeverCallBackend(t *testing.T) {
	tests := []struct {
		action  string
		args    Args
		missing string
	}{
		{"getCart", Args{}, "id"},
		{"postCartEntry", Args{"id": "abc"}, "productVariantId"},
		{"putCartEntry", Args{"id": "abc"}, "cartEntryId"},
		{"deleteCartEntry", Args{"id": "abc"}, "cartEntryId"},
		{"deleteCartEntries", Args{"id": "abc"}, "cartEntryIds"},
		{"postCoupon", Args{"id": "abc"}, "code"},
		{"deleteCoupon", Args{}, "id"},
		{"deleteCoupon", Args{"id": "abc"}, "couponId"},
		{"postShippingAddress", Args{"id": "abc"}, "address"},
		{"postBillingAddress", Args{}, "id"},
		{"getShippingMethods", Args{}, "id"},
		{"getPaymentMethods", Args{}, "id"},
		{"postPayment", Args{"id": "abc"}, "payment"},
		{"postPayment", Args{"id": "abc", "payment": map[string]interface{}{}}, "payment.method"},
		{"postCustomerLogin", Args{"password": "secret"}, "email"},
		{"postCustomerLogin", Args{"email": "a@a.com"}, "password"},
		{"postCustomerAuth", Args{}, "type"},
		{"postCustomerAuth", Args{"type": "credentials"}, "email"},
		{"getCustomerById", Args{}, "id"},
		{"postOrder", Args{}, "cartId"},
		{"getProductById", Args{}, "id"},
		{"postCart", Args{"quantity": 2}, "productVariantId"},
		{"postCart", Args{"productVariantId": "MJ01"}, "quantity"},
		{"postCartEntry", Args{"id": "abc", "productVariantId": "MJ01"}, "quantity"},
		{"putCartEntry", Args{"id": "abc", "cartEntryId": "17"}, "quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.action+"/"+tt.missing, func(t *testing.T) {
			a, backend := newTestActions(t)
			action, ok := a.Lookup(tt.action)
			require.True(t, ok)

			env := action(context.Background(), backend.Args(tt.args))

			require.True(t, env.Failed())
			assert.Equal(t, apierror.NameMissingProperty, env.Error.Name)
			assert.Equal(t, "Parameter '"+tt.missing+"' is missing.", env.Error.Message)
			assert.Equal(t, http.StatusBadRequest, env.HTTPStatus())
			assert.Zero(t, env.StatusCode)
			assert.Empty(t, backend.Calls())
		})
	}
}

func TestPostCartRejectsNegativeQuantity(t *testing.T) {
	a, backend := newTestActions(t)

	env := a.PostCart(context.Background(), backend.Args(Args{
		"productVariantId": "meskwielt-Purple-XS",
		"quantity":         -12,
	}))

	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameInvalidArgument, env.Error.Name)
	assert.Equal(t, "Parameter 'quantity' must be greater or equal to 1", env.Error.Message)
	assert.Equal(t, http.StatusBadRequest, env.HTTPStatus())
	assert.Equal(t, CartErrorType, env.ErrorType)
	assert.Empty(t, backend.Calls())
}

func TestZeroQuantityIsInvalidNotMissing(t *testing.T) {
	tests := []struct {
		action string
		args   Args
	}{
		{"postCart", Args{"productVariantId": "MJ01", "quantity": 0}},
		{"postCartEntry", Args{"id": "abc", "productVariantId": "MJ01", "quantity": "0"}},
		{"putCartEntry", Args{"id": "abc", "cartEntryId": "17", "quantity": 0}},
	}

	for _, tt := range tests {
		t.Run(tt.action, func(t *testing.T) {
			a, backend := newTestActions(t)
			action, ok := a.Lookup(tt.action)
			require.True(t, ok)

			env := action(context.Background(), backend.Args(tt.args))

			require.True(t, env.Failed())
			assert.Equal(t, apierror.NameInvalidArgument, env.Error.Name)
			assert.Equal(t, "Parameter 'quantity' must be greater or equal to 1", env.Error.Message)
			assert.Empty(t, backend.Calls())
		})
	}
}

func TestPostCartCreatesCartWithEntry(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "guest-carts", http.StatusOK, "abc")
	backend.Handle(http.MethodPost, "guest-carts/abc/items", http.StatusOK, map[string]interface{}{"item_id": 17})
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.PostCart(context.Background(), backend.Args(Args{
		"productVariantId": "meskwielt-Purple-XS",
		"quantity":         "2",
	}))

	require.False(t, env.Failed())
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "carts/abc", env.Headers["Location"])
	assert.Equal(t, []string{
		"POST guest-carts",
		"POST guest-carts/abc/items",
		"GET guest-aggregated-carts/abc",
	}, backend.Keys())

	cart, ok := env.Body.(*models.Cart)
	require.True(t, ok)
	assert.Equal(t, "abc", cart.ID)
}

func TestPostCartEntrySetsLocation(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "guest-carts/abc/items", http.StatusOK, map[string]interface{}{"item_id": 17})
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.PostCartEntry(context.Background(), backend.Args(Args{
		"id":               "abc",
		"productVariantId": "meskwielt-Purple-XS",
		"quantity":         1,
	}))

	require.False(t, env.Failed())
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "carts/abc/entries/17", env.Headers["Location"])
}

func TestGetCartIsIdempotent(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", "SAVE10"))

	first := a.GetCart(context.Background(), backend.Args(Args{"id": "abc"}))
	second := a.GetCart(context.Background(), backend.Args(Args{"id": "abc"}))

	require.False(t, first.Failed())
	require.False(t, second.Failed())
	assert.Equal(t, bodyJSON(t, first), bodyJSON(t, second))
	assert.Equal(t, []string{"GET guest-aggregated-carts/abc", "GET guest-aggregated-carts/abc"}, backend.Keys())
	assert.Equal(t, magento.AggregatedCartQuery, backend.Calls()[0].RawQuery)
}

func TestCustomerTokenTargetsOwnCart(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodGet, "customer-aggregated-carts/mine", http.StatusOK, magentotest.Cart("5", ""))

	env := a.GetCart(context.Background(), backend.Args(Args{
		"id":           "whatever",
		"__ow_headers": map[string]interface{}{"cookie": "ccs-magento-customer-token=tok"},
	}))

	require.False(t, env.Failed())
	calls := backend.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "GET customer-aggregated-carts/mine", calls[0].Key())
	assert.Equal(t, "Bearer tok", calls[0].Authorization())
	assert.Equal(t, "5", env.Body.(*models.Cart).ID)
}

func TestBackendFailuresAreNormalized(t *testing.T) {
	tests := []struct {
		status  int
		name    string
		message string
		http    int
	}{
		{http.StatusNotFound, apierror.NameNotFound, "Resource not found", http.StatusNotFound},
		{http.StatusUnauthorized, apierror.NameUnauthorized, "Unauthorized Request", http.StatusUnauthorized},
		{http.StatusInternalServerError, apierror.NameUnexpected, apierror.UnexpectedMessage, http.StatusInternalServerError},
		{http.StatusBadGateway, apierror.NameUnexpected, apierror.UnexpectedMessage, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			a, backend := newTestActions(t)
			backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", tt.status,
				map[string]string{"message": "internal detail", "trace": "stack"})

			env := a.GetCart(context.Background(), backend.Args(Args{"id": "abc"}))

			require.True(t, env.Failed())
			assert.Equal(t, tt.name, env.Error.Name)
			assert.Equal(t, tt.message, env.Error.Message)
			assert.Equal(t, tt.http, env.HTTPStatus())
			assert.Nil(t, env.Body)
			assert.NotContains(t, env.Error.Message, "internal detail")
		})
	}
}

func TestDeleteCouponReturnsCartWithoutCoupons(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodDelete, "guest-carts/abc/coupons", http.StatusOK, true)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.DeleteCoupon(context.Background(), backend.Args(Args{"id": "abc", "couponId": "SAVE10"}))

	require.False(t, env.Failed())
	assert.Equal(t, http.StatusOK, env.StatusCode)
	assert.NotContains(t, bodyJSON(t, env), "coupons")
	assert.Equal(t, []string{"DELETE guest-carts/abc/coupons", "GET guest-aggregated-carts/abc"}, backend.Keys())
}

func TestDeleteCouponOnMissingCart(t *testing.T) {
	a, backend := newTestActions(t)

	env := a.DeleteCoupon(context.Background(), backend.Args(Args{"id": "does-not-exist", "couponId": "SAVE10"}))

	require.True(t, env.Failed())
	assert.Equal(t, http.StatusNotFound, env.HTTPStatus())
	assert.Equal(t, apierror.NameNotFound, env.Error.Name)
	body, ok := env.ResponseBody().(envelope.ErrorBody)
	require.True(t, ok)
	assert.Equal(t, "CommerceServiceResourceNotFoundError: Resource not found", body.Message)
	assert.Equal(t, []string{"DELETE guest-carts/does-not-exist/coupons"}, backend.Keys())
}

func TestPostCouponAppliesCode(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPut, "guest-carts/abc/coupons/SAVE10", http.StatusOK, true)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", "SAVE10"))

	env := a.PostCoupon(context.Background(), backend.Args(Args{"id": "abc", "code": "SAVE10"}))

	require.False(t, env.Failed())
	assert.Equal(t, []models.Coupon{{ID: "SAVE10", Code: "SAVE10"}}, env.Body.(*models.Cart).Coupons)
}

func TestPutAndDeleteCartEntry(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPut, "guest-carts/abc/items/17", http.StatusOK, map[string]interface{}{"item_id": 17})
	backend.Handle(http.MethodDelete, "guest-carts/abc/items/17", http.StatusOK, true)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.PutCartEntry(context.Background(), backend.Args(Args{"id": "abc", "cartEntryId": "17", "quantity": 3}))
	require.False(t, env.Failed())

	env = a.DeleteCartEntry(context.Background(), backend.Args(Args{"id": "abc", "cartEntryId": "17"}))
	require.False(t, env.Failed())

	assert.Equal(t, []string{
		"PUT guest-carts/abc/items/17",
		"GET guest-aggregated-carts/abc",
		"DELETE guest-carts/abc/items/17",
		"GET guest-aggregated-carts/abc",
	}, backend.Keys())
}

func TestDeleteCartEntriesWaitsForAllDeletions(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodDelete, "guest-carts/abc/items/1", http.StatusOK, true)
	backend.Handle(http.MethodDelete, "guest-carts/abc/items/2", http.StatusOK, true)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.DeleteCartEntries(context.Background(), backend.Args(Args{"id": "abc", "cartEntryIds": "1,2"}))

	require.False(t, env.Failed())
	keys := backend.Keys()
	require.Len(t, keys, 3)
	assert.ElementsMatch(t, []string{"DELETE guest-carts/abc/items/1", "DELETE guest-carts/abc/items/2"}, keys[:2])
	assert.Equal(t, "GET guest-aggregated-carts/abc", keys[2])
}

func TestDeleteCartEntriesStopsOnFailure(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodDelete, "guest-carts/abc/items/1", http.StatusOK, true)

	env := a.DeleteCartEntries(context.Background(), backend.Args(Args{
		"id":           "abc",
		"cartEntryIds": []interface{}{"1", "2"},
	}))

	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameNotFound, env.Error.Name)
	assert.NotContains(t, backend.Keys(), "GET guest-aggregated-carts/abc")
}

var testAddress = map[string]interface{}{
	"firstName":    "Jane",
	"lastName":     "Doe",
	"streetName":   "Main Street",
	"streetNumber": "1",
	"postalCode":   "4051",
	"city":         "Basel",
	"country":      "CH",
}

func TestPostShippingAddress(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "guest-carts/abc/shipping-information", http.StatusOK, map[string]interface{}{})
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.PostShippingAddress(context.Background(), backend.Args(Args{
		"id":              "abc",
		"address":         testAddress,
		"default_method":  "flatrate",
		"default_carrier": "flatrate",
	}))

	require.False(t, env.Failed())
	assert.NotNil(t, env.Body.(*models.Cart).ShippingAddress)

	calls := backend.Calls()
	require.Len(t, calls, 2)
	assert.JSONEq(t, `{"addressInformation":{
		"shipping_address":{"country_id":"CH","street":["Main Street 1"],"postcode":"4051","city":"Basel","firstname":"Jane","lastname":"Doe"},
		"shipping_method_code":"flatrate",
		"shipping_carrier_code":"flatrate"}}`, string(calls[0].Body))
}

func TestPostBillingAddressAcceptsJSONString(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPost, "guest-carts/abc/billing-address", http.StatusOK, 3)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	raw, err := json.Marshal(testAddress)
	require.NoError(t, err)
	env := a.PostBillingAddress(context.Background(), backend.Args(Args{"id": "abc", "address": string(raw)}))

	require.False(t, env.Failed())
	calls := backend.Calls()
	require.Len(t, calls, 2)
	assert.Contains(t, string(calls[0].Body), `"city":"Basel"`)
}

func TestAddressValidation(t *testing.T) {
	a, backend := newTestActions(t)

	env := a.PostShippingAddress(context.Background(), backend.Args(Args{"id": "abc", "address": "not an address"}))
	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameInvalidArgument, env.Error.Name)

	env = a.PostShippingAddress(context.Background(), backend.Args(Args{
		"id":      "abc",
		"address": map[string]interface{}{"firstName": "Jane"},
	}))
	require.True(t, env.Failed())
	assert.Equal(t, apierror.NameMissingProperty, env.Error.Name)
	assert.Equal(t, "Parameter 'address.lastName' is missing.", env.Error.Message)

	assert.Empty(t, backend.Calls())
}

func TestShippingAndPaymentMethods(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodGet, "guest-carts/abc/shipping-methods", http.StatusOK, []map[string]interface{}{
		{"carrier_code": "flatrate", "method_code": "flatrate", "method_title": "Fixed", "amount": 5, "available": true},
	})
	backend.Handle(http.MethodGet, "guest-carts/abc/payment-methods", http.StatusOK, []map[string]interface{}{
		{"code": "checkmo", "title": "Check / Money order"},
	})
	backend.Handle(http.MethodPut, "guest-carts/abc/selected-payment-method", http.StatusOK, "8")
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.GetShippingMethods(context.Background(), backend.Args(Args{"id": "abc", "currency": "EUR"}))
	require.False(t, env.Failed())
	shipping := env.Body.([]models.ShippingMethod)
	require.Len(t, shipping, 1)
	assert.Equal(t, models.Price{Amount: 500, Currency: "EUR"}, shipping[0].Price)

	env = a.GetPaymentMethods(context.Background(), backend.Args(Args{"id": "abc"}))
	require.False(t, env.Failed())
	assert.Equal(t, []models.PaymentMethod{{ID: "checkmo", Name: "Check / Money order"}}, env.Body)

	env = a.PostPayment(context.Background(), backend.Args(Args{
		"id":      "abc",
		"payment": map[string]interface{}{"method": "checkmo"},
	}))
	require.False(t, env.Failed())
	calls := backend.Calls()
	assert.JSONEq(t, `{"method":{"method":"checkmo"}}`, string(calls[2].Body))
}

func TestPostOrder(t *testing.T) {
	a, backend := newTestActions(t)
	backend.Handle(http.MethodPut, "guest-carts/abc/order", http.StatusOK, "000000123")

	env := a.PostOrder(context.Background(), backend.Args(Args{"cartId": "abc"}))

	require.False(t, env.Failed())
	assert.Equal(t, http.StatusCreated, env.StatusCode)
	assert.Equal(t, "orders/000000123", env.Headers["Location"])
	assert.Equal(t, models.Order{ID: "000000123"}, env.Body)
}

func TestDebugModeAddsActivationID(t *testing.T) {
	t.Setenv("__OW_ACTIVATION_ID", "activation-42")
	a, backend := newTestActions(t)
	backend.Handle(http.MethodGet, "guest-aggregated-carts/abc", http.StatusOK, magentotest.Cart("abc", ""))

	env := a.GetCart(context.Background(), backend.Args(Args{"id": "abc", "DEBUG": true}))

	require.False(t, env.Failed())
	assert.Equal(t, "activation-42", env.Headers[magento.ActivationIDHeader])
}
