package models

import (
	"math"
	"strings"
)

// Common constants
const (
	// EntryTypeRegular marks a plain product line in a cart
	EntryTypeRegular = "REGULAR"

	// DefaultCurrency is used when the backend does not report one
	DefaultCurrency = "USD"
)

// Price represents an amount of money in minor units (cents)
type Price struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// NewPrice converts a decimal amount into a Price in minor units
func NewPrice(amount float64, currency string) Price {
	if currency == "" {
		currency = DefaultCurrency
	}
	return Price{
		Amount:   int64(math.Round(amount * 100)),
		Currency: strings.ToUpper(currency),
	}
}

// Decimal returns the amount in major units
func (p Price) Decimal() float64 {
	return float64(p.Amount) / 100
}

// Attribute represents a name/value pair on a product or variant
type Attribute struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Value         string `json:"value"`
	IsVariantAxis bool   `json:"isVariantAxis"`
}

// Asset represents a media file attached to a product
type Asset struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// Category references a catalog category
type Category struct {
	ID string `json:"id"`
}

// PagedResponse wraps a page of results
type PagedResponse struct {
	Offset  int         `json:"offset"`
	Count   int         `json:"count"`
	Total   int         `json:"total"`
	Results interface{} `json:"results"`
}
