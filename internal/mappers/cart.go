package mappers

import (
	"math"

	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/models"
)

// MapCart converts an aggregated cart. When id is non-empty it replaces the
// quote id reported by Magento, which differs from the masked id guests use.
func MapCart(agg *wire.AggregatedCart, id string) *models.Cart {
	details := agg.CartDetails
	currency := cartCurrency(agg)

	if id == "" {
		id = details.ID.String()
	}

	cart := &models.Cart{
		ID:             id,
		CreatedAt:      FormatDate(details.CreatedAt),
		LastModifiedAt: FormatDate(details.UpdatedAt),
		Currency:       currency,
		Entries:        make([]models.CartEntry, 0, len(details.Items)),
	}
	if details.Customer != nil {
		cart.CustomerID = details.Customer.ID.String()
	}

	totalsByItem := make(map[string]wire.TotalsItem, len(agg.Totals.Items))
	for _, ti := range agg.Totals.Items {
		totalsByItem[ti.ItemID.String()] = ti
	}
	for _, item := range details.Items {
		cart.Entries = append(cart.Entries, mapCartEntry(item, totalsByItem[item.ItemID.String()], agg.ProductAttributes, currency))
	}

	t := agg.Totals
	productTotal := t.SubtotalInclTax
	if productTotal == 0 {
		productTotal = t.Subtotal
	}
	cart.ProductTotalPrice = models.NewPrice(productTotal, currency)
	cart.GrossTotalPrice = models.NewPrice(t.GrandTotal, currency)
	cart.NetTotalPrice = models.NewPrice(t.GrandTotal-t.TaxAmount, currency)
	if t.TaxAmount != 0 {
		tax := models.NewPrice(t.TaxAmount, currency)
		cart.TotalTaxPrice = &tax
	}
	if t.DiscountAmount != 0 {
		discount := models.NewPrice(math.Abs(t.DiscountAmount), currency)
		cart.DiscountAmount = &discount
	}

	// Magento applies at most one coupon and reports it through the totals.
	if t.CouponCode != "" {
		cart.Coupons = []models.Coupon{{ID: t.CouponCode, Code: t.CouponCode}}
	}

	cart.BillingAddress = MapAddress(details.BillingAddress)
	if ext := details.ExtensionAttributes; ext != nil && len(ext.ShippingAssignments) > 0 {
		shipping := ext.ShippingAssignments[0].Shipping
		cart.ShippingAddress = MapAddress(shipping.Address)
		if shipping.Method != "" {
			cart.ShippingInfo = &models.ShippingInfo{
				ID:    shipping.Method,
				Name:  shipping.Method,
				Price: models.NewPrice(shippingAmount(t), currency),
			}
		}
	}
	return cart
}

func mapCartEntry(item wire.CartItem, totals wire.TotalsItem, attrs []wire.ProductAttribute, currency string) models.CartEntry {
	qty := int(item.Qty)
	unit := item.Price
	if unit == 0 {
		unit = totals.Price
	}
	rowTotal := totals.RowTotalInclTax
	if rowTotal == 0 {
		rowTotal = totals.RowTotal
	}
	if rowTotal == 0 {
		rowTotal = unit * float64(qty)
	}

	unitPrice := models.NewPrice(unit, currency)
	entry := models.CartEntry{
		ID:       item.ItemID.String(),
		Quantity: qty,
		Type:     models.EntryTypeRegular,
		ProductVariant: models.ProductVariant{
			ID:         item.SKU,
			SKU:        item.SKU,
			Name:       item.Name,
			Available:  true,
			Prices:     []models.Price{unitPrice},
			Attributes: mapVariantAttributes(item, attrs),
		},
		UnitPrice:      unitPrice,
		CartEntryPrice: models.NewPrice(rowTotal, currency),
	}
	if totals.DiscountAmount != 0 {
		entry.Discounts = []models.Discount{{
			ID:     item.ItemID.String(),
			Type:   "CouponDiscount",
			Amount: models.NewPrice(math.Abs(totals.DiscountAmount), currency),
		}}
	}
	return entry
}

// mapVariantAttributes resolves the configurable options of a cart item
// against the attribute metadata returned with the aggregated cart.
func mapVariantAttributes(item wire.CartItem, attrs []wire.ProductAttribute) []models.Attribute {
	out := []models.Attribute{}
	if item.ProductOption == nil || item.ProductOption.ExtensionAttributes == nil {
		return out
	}
	for _, opt := range item.ProductOption.ExtensionAttributes.ConfigurableItemOptions {
		for _, attr := range attrs {
			if attr.AttributeID != opt.OptionID {
				continue
			}
			value := opt.OptionValue.String()
			for _, o := range attr.Options {
				if o.Value == opt.OptionValue {
					value = o.Label
					break
				}
			}
			out = append(out, models.Attribute{
				ID:            attr.AttributeCode,
				Name:          attr.DefaultFrontendLabel,
				Value:         value,
				IsVariantAxis: true,
			})
		}
	}
	return out
}

func cartCurrency(agg *wire.AggregatedCart) string {
	if agg.Totals.QuoteCurrencyCode != "" {
		return agg.Totals.QuoteCurrencyCode
	}
	if c := agg.CartDetails.Currency; c != nil && c.QuoteCurrencyCode != "" {
		return c.QuoteCurrencyCode
	}
	return models.DefaultCurrency
}

func shippingAmount(t wire.Totals) float64 {
	if t.ShippingInclTax != 0 {
		return t.ShippingInclTax
	}
	return t.ShippingAmount
}
