package mappers

import (
	"fmt"
	"strings"

	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/models"
)

// MapProduct converts a Magento product. Image paths are resolved against
// mediaBaseURL.
func MapProduct(p *wire.Product, mediaBaseURL, currency string) models.Product {
	price := models.NewPrice(p.Price, currency)
	assets := mapAssets(p.MediaGalleryEntries, mediaBaseURL)

	out := models.Product{
		ID:             p.SKU,
		SKU:            p.SKU,
		Name:           p.Name,
		CreatedAt:      FormatDate(p.CreatedAt),
		LastModifiedAt: FormatDate(p.UpdatedAt),
		Prices:         []models.Price{price},
		Categories:     []models.Category{},
		Assets:         assets,
		Attributes:     []models.Attribute{},
	}

	for _, ca := range p.CustomAttributes {
		value := attributeValue(ca.Value)
		if ca.AttributeCode == "description" {
			out.Description = value
			continue
		}
		out.Attributes = append(out.Attributes, models.Attribute{
			ID:    ca.AttributeCode,
			Name:  ca.AttributeCode,
			Value: value,
		})
	}

	available := p.Status == 1
	if ext := p.ExtensionAttributes; ext != nil {
		for _, link := range ext.CategoryLinks {
			out.Categories = append(out.Categories, models.Category{ID: link.CategoryID.String()})
		}
		if ext.StockItem != nil {
			available = available && ext.StockItem.IsInStock
		}
	}

	out.Variants = []models.ProductVariant{{
		ID:         p.SKU,
		SKU:        p.SKU,
		Name:       p.Name,
		Available:  available,
		Prices:     []models.Price{price},
		Attributes: []models.Attribute{},
		Assets:     assets,
	}}
	return out
}

// MapProductSearch converts a GraphQL product search into a paged response.
func MapProductSearch(data *wire.ProductSearchData) models.PagedResponse {
	products := data.Products
	results := make([]models.Product, 0, len(products.Items))
	for _, item := range products.Items {
		regular := item.PriceRange.MinimumPrice.RegularPrice
		price := models.NewPrice(regular.Value, regular.Currency)
		p := models.Product{
			ID:             item.SKU,
			SKU:            item.SKU,
			Name:           item.Name,
			Description:    item.Description.HTML,
			CreatedAt:      FormatDate(item.CreatedAt),
			LastModifiedAt: FormatDate(item.UpdatedAt),
			Prices:         []models.Price{price},
			Categories:     make([]models.Category, 0, len(item.Categories)),
			Assets:         []models.Asset{},
			Attributes:     []models.Attribute{},
			Variants:       []models.ProductVariant{},
		}
		for _, c := range item.Categories {
			p.Categories = append(p.Categories, models.Category{ID: c.ID.String()})
		}
		if item.SmallImage.URL != "" {
			p.Assets = append(p.Assets, models.Asset{ID: item.SmallImage.URL, URL: item.SmallImage.URL})
		}
		results = append(results, p)
	}

	offset := 0
	if info := products.PageInfo; info.CurrentPage > 0 {
		offset = (info.CurrentPage - 1) * info.PageSize
	}
	return models.PagedResponse{
		Offset:  offset,
		Count:   len(results),
		Total:   products.TotalCount,
		Results: results,
	}
}

func mapAssets(entries []wire.MediaEntry, mediaBaseURL string) []models.Asset {
	assets := make([]models.Asset, 0, len(entries))
	for _, e := range entries {
		if e.Disabled || e.File == "" {
			continue
		}
		assets = append(assets, models.Asset{
			ID:  e.ID.String(),
			URL: strings.TrimRight(mediaBaseURL, "/") + "/" + strings.TrimLeft(e.File, "/"),
		})
	}
	return assets
}

func attributeValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []interface{}:
		parts := make([]string, 0, len(val))
		for _, p := range val {
			parts = append(parts, fmt.Sprint(p))
		}
		return strings.Join(parts, ",")
	default:
		return fmt.Sprint(val)
	}
}
