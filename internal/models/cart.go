package models

// Cart represents a shopping cart in the canonical model
type Cart struct {
	ID                string        `json:"id"`
	CreatedAt         string        `json:"createdAt"`
	LastModifiedAt    string        `json:"lastModifiedAt"`
	CustomerID        string        `json:"customerId,omitempty"`
	Currency          string        `json:"currency,omitempty"`
	Entries           []CartEntry   `json:"entries"`
	ProductTotalPrice Price         `json:"productTotalPrice"`
	NetTotalPrice     Price         `json:"netTotalPrice"`
	GrossTotalPrice   Price         `json:"grossTotalPrice"`
	TotalTaxPrice     *Price        `json:"totalTaxPrice,omitempty"`
	DiscountAmount    *Price        `json:"discountAmount,omitempty"`
	Coupons           []Coupon      `json:"coupons,omitempty"`
	ShippingAddress   *Address      `json:"shippingAddress,omitempty"`
	BillingAddress    *Address      `json:"billingAddress,omitempty"`
	ShippingInfo      *ShippingInfo `json:"shippingInfo,omitempty"`
}

// CartEntry represents a single line in a cart
type CartEntry struct {
	ID             string         `json:"id"`
	Quantity       int            `json:"quantity"`
	Type           string         `json:"type"`
	ProductVariant ProductVariant `json:"productVariant"`
	UnitPrice      Price          `json:"unitPrice"`
	CartEntryPrice Price          `json:"cartEntryPrice"`
	Discounts      []Discount     `json:"discounts,omitempty"`
}

// Coupon represents a coupon code applied to a cart
type Coupon struct {
	ID   string `json:"id"`
	Code string `json:"code"`
}

// Discount represents a discount applied to a cart entry
type Discount struct {
	ID     string `json:"id"`
	Type   string `json:"type"`
	Amount Price  `json:"amount"`
}

// ShippingInfo represents the shipping method selected for a cart
type ShippingInfo struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Price Price  `json:"price"`
}

// ShippingMethod represents a shipping method available for a cart
type ShippingMethod struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Price  `json:"price"`
}

// PaymentMethod represents a payment method available for a cart
type PaymentMethod struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Payment represents the payment selected for a cart
type Payment struct {
	ID     string `json:"id,omitempty" mapstructure:"id"`
	Method string `json:"method" mapstructure:"method" validate:"required"`
}

// Quantity returns the sum of all entry quantities
func (c *Cart) Quantity() int {
	total := 0
	for _, e := range c.Entries {
		total += e.Quantity
	}
	return total
}
