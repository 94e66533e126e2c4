package magentotest

import "magento-commerce-actions/internal/magento/wire"

// Cart returns an aggregated cart with one configurable entry. A non-empty
// coupon is reported as applied.
func Cart(id, coupon string) wire.AggregatedCart {
	return wire.AggregatedCart{
		CartDetails: wire.CartDetails{
			ID:        wire.ID(id),
			CreatedAt: "2018-05-16 09:12:23",
			UpdatedAt: "2018-05-16 10:02:45",
			IsActive:  true,
			Items: []wire.CartItem{{
				ItemID:      "17",
				SKU:         "meskwielt-Purple-XS",
				Qty:         2,
				Name:        "El Gordo Down Jacket",
				Price:       110,
				ProductType: "simple",
				QuoteID:     wire.ID(id),
				ProductOption: &wire.ProductOption{
					ExtensionAttributes: &wire.ProductOptionExtension{
						ConfigurableItemOptions: []wire.ConfigurableItemOption{
							{OptionID: "93", OptionValue: "57"},
							{OptionID: "141", OptionValue: "167"},
						},
					},
				},
			}},
			ItemsCount: 1,
			ItemsQty:   2,
			Currency: &wire.Currency{
				QuoteCurrencyCode: "USD",
				BaseCurrencyCode:  "USD",
			},
			ExtensionAttributes: &wire.CartExtension{
				ShippingAssignments: []wire.ShippingAssignment{{
					Shipping: wire.Shipping{
						Address: &wire.Address{
							Firstname: "Jane",
							Lastname:  "Doe",
							Street:    []string{"Main Street 1"},
							City:      "Basel",
							Postcode:  "4051",
							CountryID: "CH",
						},
						Method: "flatrate_flatrate",
					},
				}},
			},
		},
		Totals: wire.Totals{
			GrandTotal:        225,
			Subtotal:          220,
			SubtotalInclTax:   220,
			ShippingAmount:    5,
			ShippingInclTax:   5,
			QuoteCurrencyCode: "USD",
			CouponCode:        coupon,
			Items: []wire.TotalsItem{{
				ItemID:          "17",
				Price:           110,
				Qty:             2,
				RowTotal:        220,
				RowTotalInclTax: 220,
			}},
		},
		ProductAttributes: []wire.ProductAttribute{
			{
				AttributeID:          "93",
				AttributeCode:        "color",
				DefaultFrontendLabel: "Color",
				Options:              []wire.AttributeOption{{Label: "Purple", Value: "57"}},
			},
			{
				AttributeID:          "141",
				AttributeCode:        "size",
				DefaultFrontendLabel: "Size",
				Options:              []wire.AttributeOption{{Label: "XS", Value: "167"}},
			},
		},
	}
}

// Customer returns the customers/me resource of a test customer.
func Customer() wire.Customer {
	return wire.Customer{
		ID:        "12",
		Email:     "a@a.com",
		Firstname: "Jane",
		Lastname:  "Doe",
		CreatedAt: "2018-03-01 12:00:00",
		UpdatedAt: "2018-03-02 12:00:00",
	}
}

// Product returns a simple product with one image.
func Product(sku string) wire.Product {
	return wire.Product{
		ID:        "1",
		SKU:       sku,
		Name:      "El Gordo Down Jacket",
		Price:     110,
		Status:    1,
		TypeID:    "simple",
		CreatedAt: "2018-01-10 08:00:00",
		UpdatedAt: "2018-01-11 08:00:00",
		CustomAttributes: []wire.CustomAttribute{
			{AttributeCode: "description", Value: "<p>Warm jacket</p>"},
			{AttributeCode: "color", Value: "57"},
		},
		MediaGalleryEntries: []wire.MediaEntry{
			{ID: "5", MediaType: "image", File: "/m/e/jacket.jpg", Types: []string{"image"}},
		},
		ExtensionAttributes: &wire.ProductExtension{
			CategoryLinks: []wire.CategoryLink{{CategoryID: "20"}},
			StockItem:     &wire.StockItem{Qty: 10, IsInStock: true},
		},
	}
}
