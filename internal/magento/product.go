package magento

import (
	"context"
	"net/http"
	"net/url"

	"magento-commerce-actions/internal/magento/wire"
)

const productsEndpoint = "products"

const productSearchQuery = `query ($search: String, $pageSize: Int, $currentPage: Int) {
  products(search: $search, pageSize: $pageSize, currentPage: $currentPage) {
    total_count
    items {
      id
      sku
      name
      created_at
      updated_at
      description { html }
      small_image { url label }
      categories { id }
      price_range {
        minimum_price {
          regular_price { value currency }
          final_price { value currency }
        }
      }
    }
    page_info { current_page page_size total_pages }
  }
}`

// ProductClient reads the catalog.
type ProductClient struct {
	*Client
}

// NewProductClient wraps a base client.
func NewProductClient(c *Client) *ProductClient {
	return &ProductClient{Client: c}
}

// ByID returns a product by SKU.
func (c *ProductClient) ByID(ctx context.Context, sku string) (*wire.Product, error) {
	var product wire.Product
	if err := c.Do(ctx, http.MethodGet, c.NewRequest(productsEndpoint).WithEndpoint(url.PathEscape(sku)), nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// SearchParams narrows a product search.
type SearchParams struct {
	Text        string
	PageSize    int
	CurrentPage int
}

// Search runs a full text product search through GraphQL.
func (c *ProductClient) Search(ctx context.Context, p SearchParams) (*wire.ProductSearchData, error) {
	vars := map[string]interface{}{
		"search":      p.Text,
		"pageSize":    p.PageSize,
		"currentPage": p.CurrentPage,
	}
	var data wire.ProductSearchData
	if err := c.GraphQL(ctx, productSearchQuery, vars, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
