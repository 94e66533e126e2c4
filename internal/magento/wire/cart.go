package wire

// AggregatedCart is returned by the guest-aggregated-carts and
// customer-aggregated-carts endpoints.
type AggregatedCart struct {
	CartDetails       CartDetails        `json:"cart_details"`
	Totals            Totals             `json:"totals"`
	ProductAttributes []ProductAttribute `json:"product_attributes"`
}

// CartDetails is the plain quote resource.
type CartDetails struct {
	ID                  ID             `json:"id"`
	CreatedAt           string         `json:"created_at"`
	UpdatedAt           string         `json:"updated_at"`
	IsActive            bool           `json:"is_active"`
	Items               []CartItem     `json:"items"`
	ItemsCount          int            `json:"items_count"`
	ItemsQty            float64        `json:"items_qty"`
	Customer            *CartCustomer  `json:"customer,omitempty"`
	BillingAddress      *Address       `json:"billing_address,omitempty"`
	Currency            *Currency      `json:"currency,omitempty"`
	ExtensionAttributes *CartExtension `json:"extension_attributes,omitempty"`
}

type CartCustomer struct {
	ID    ID     `json:"id,omitempty"`
	Email string `json:"email,omitempty"`
}

type Currency struct {
	QuoteCurrencyCode string `json:"quote_currency_code"`
	BaseCurrencyCode  string `json:"base_currency_code"`
}

type CartExtension struct {
	ShippingAssignments []ShippingAssignment `json:"shipping_assignments,omitempty"`
}

type ShippingAssignment struct {
	Shipping Shipping `json:"shipping"`
}

type Shipping struct {
	Address *Address `json:"address,omitempty"`
	Method  string   `json:"method,omitempty"`
}

// CartItem is a quote line.
type CartItem struct {
	ItemID        ID             `json:"item_id,omitempty"`
	SKU           string         `json:"sku"`
	Qty           float64        `json:"qty"`
	Name          string         `json:"name,omitempty"`
	Price         float64        `json:"price,omitempty"`
	ProductType   string         `json:"product_type,omitempty"`
	QuoteID       ID             `json:"quote_id,omitempty"`
	ProductOption *ProductOption `json:"product_option,omitempty"`
}

type ProductOption struct {
	ExtensionAttributes *ProductOptionExtension `json:"extension_attributes,omitempty"`
}

type ProductOptionExtension struct {
	ConfigurableItemOptions []ConfigurableItemOption `json:"configurable_item_options,omitempty"`
}

type ConfigurableItemOption struct {
	OptionID    ID `json:"option_id"`
	OptionValue ID `json:"option_value"`
}

// CartItemRequest wraps a cart item for the items endpoints.
type CartItemRequest struct {
	CartItem CartItem `json:"cartItem"`
}

// Totals is the totals section of an aggregated cart.
type Totals struct {
	GrandTotal        float64      `json:"grand_total"`
	Subtotal          float64      `json:"subtotal"`
	SubtotalInclTax   float64      `json:"subtotal_incl_tax"`
	DiscountAmount    float64      `json:"discount_amount"`
	TaxAmount         float64      `json:"tax_amount"`
	ShippingAmount    float64      `json:"shipping_amount"`
	ShippingInclTax   float64      `json:"shipping_incl_tax"`
	QuoteCurrencyCode string       `json:"quote_currency_code"`
	CouponCode        string       `json:"coupon_code,omitempty"`
	Items             []TotalsItem `json:"items"`
}

type TotalsItem struct {
	ItemID          ID      `json:"item_id"`
	Price           float64 `json:"price"`
	Qty             float64 `json:"qty"`
	RowTotal        float64 `json:"row_total"`
	RowTotalInclTax float64 `json:"row_total_incl_tax"`
	TaxAmount       float64 `json:"tax_amount"`
	DiscountAmount  float64 `json:"discount_amount"`
}

// ProductAttribute describes a configurable attribute and its options.
type ProductAttribute struct {
	AttributeID          ID                `json:"attribute_id"`
	AttributeCode        string            `json:"attribute_code"`
	DefaultFrontendLabel string            `json:"default_frontend_label"`
	Options              []AttributeOption `json:"options"`
}

type AttributeOption struct {
	Label string `json:"label"`
	Value ID     `json:"value"`
}

// ShippingInformation is the body of the shipping-information endpoint.
type ShippingInformation struct {
	AddressInformation AddressInformation `json:"addressInformation"`
}

type AddressInformation struct {
	ShippingAddress     Address `json:"shipping_address"`
	ShippingMethodCode  string  `json:"shipping_method_code"`
	ShippingCarrierCode string  `json:"shipping_carrier_code"`
}

// BillingAddressRequest is the body of the billing-address endpoint.
type BillingAddressRequest struct {
	Address Address `json:"address"`
}

// ShippingMethod is one entry of the shipping-methods list.
type ShippingMethod struct {
	CarrierCode  string  `json:"carrier_code"`
	MethodCode   string  `json:"method_code"`
	CarrierTitle string  `json:"carrier_title"`
	MethodTitle  string  `json:"method_title"`
	Amount       float64 `json:"amount"`
	PriceInclTax float64 `json:"price_incl_tax"`
	PriceExclTax float64 `json:"price_excl_tax"`
	Available    bool    `json:"available"`
	ErrorMessage string  `json:"error_message,omitempty"`
}

// PaymentMethod is one entry of the payment-methods list.
type PaymentMethod struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// PaymentMethodRequest is the body of the selected-payment-method endpoint.
type PaymentMethodRequest struct {
	Method PaymentMethodSelection `json:"method"`
}

type PaymentMethodSelection struct {
	Method   string `json:"method"`
	PONumber string `json:"po_number,omitempty"`
}
