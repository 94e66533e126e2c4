package wire

// Product is the products/{sku} resource.
type Product struct {
	ID                  ID                `json:"id"`
	SKU                 string            `json:"sku"`
	Name                string            `json:"name"`
	Price               float64           `json:"price"`
	Status              int               `json:"status"`
	TypeID              string            `json:"type_id"`
	CreatedAt           string            `json:"created_at"`
	UpdatedAt           string            `json:"updated_at"`
	CustomAttributes    []CustomAttribute `json:"custom_attributes"`
	MediaGalleryEntries []MediaEntry      `json:"media_gallery_entries"`
	ExtensionAttributes *ProductExtension `json:"extension_attributes,omitempty"`
}

// CustomAttribute values are strings for most attributes and arrays for
// multi-selects, hence the untyped value.
type CustomAttribute struct {
	AttributeCode string      `json:"attribute_code"`
	Value         interface{} `json:"value"`
}

type MediaEntry struct {
	ID        ID       `json:"id"`
	MediaType string   `json:"media_type"`
	Label     string   `json:"label"`
	Position  int      `json:"position"`
	Disabled  bool     `json:"disabled"`
	Types     []string `json:"types"`
	File      string   `json:"file"`
}

type ProductExtension struct {
	CategoryLinks []CategoryLink `json:"category_links,omitempty"`
	StockItem     *StockItem     `json:"stock_item,omitempty"`
}

type CategoryLink struct {
	Position   int `json:"position"`
	CategoryID ID  `json:"category_id"`
}

type StockItem struct {
	Qty       float64 `json:"qty"`
	IsInStock bool    `json:"is_in_stock"`
}

// GraphQLRequest is the body posted to the /graphql endpoint.
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables,omitempty"`
}

// GraphQLError is one entry of a GraphQL errors list. Older Magento releases
// report the category at the top level, newer ones under extensions.
type GraphQLError struct {
	Message    string `json:"message"`
	Category   string `json:"category,omitempty"`
	Extensions struct {
		Category string `json:"category,omitempty"`
	} `json:"extensions"`
}

// ProductSearchData is the data section of a products query.
type ProductSearchData struct {
	Products struct {
		TotalCount int              `json:"total_count"`
		Items      []GraphQLProduct `json:"items"`
		PageInfo   GraphQLPageInfo  `json:"page_info"`
	} `json:"products"`
}

type GraphQLPageInfo struct {
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
	TotalPages  int `json:"total_pages"`
}

type GraphQLProduct struct {
	ID          ID     `json:"id"`
	SKU         string `json:"sku"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
	Description struct {
		HTML string `json:"html"`
	} `json:"description"`
	SmallImage struct {
		URL   string `json:"url"`
		Label string `json:"label"`
	} `json:"small_image"`
	Categories []struct {
		ID ID `json:"id"`
	} `json:"categories"`
	PriceRange struct {
		MinimumPrice struct {
			RegularPrice GraphQLMoney `json:"regular_price"`
			FinalPrice   GraphQLMoney `json:"final_price"`
		} `json:"minimum_price"`
	} `json:"price_range"`
}

type GraphQLMoney struct {
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
}
