package models

// Product represents a catalog product in the canonical model
type Product struct {
	ID             string           `json:"id"`
	SKU            string           `json:"sku"`
	Name           string           `json:"name"`
	Description    string           `json:"description,omitempty"`
	CreatedAt      string           `json:"createdAt,omitempty"`
	LastModifiedAt string           `json:"lastModifiedAt,omitempty"`
	Prices         []Price          `json:"prices"`
	Categories     []Category       `json:"categories"`
	Assets         []Asset          `json:"assets"`
	Attributes     []Attribute      `json:"attributes"`
	Variants       []ProductVariant `json:"variants"`
}

// ProductVariant represents a purchasable variant of a product
type ProductVariant struct {
	ID         string      `json:"id"`
	SKU        string      `json:"sku"`
	Name       string      `json:"name"`
	Available  bool        `json:"available"`
	Prices     []Price     `json:"prices"`
	Attributes []Attribute `json:"attributes"`
	Assets     []Asset     `json:"assets,omitempty"`
}
