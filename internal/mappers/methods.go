package mappers

import (
	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/models"
)

// MapShippingMethods converts the shipping methods of a cart. Methods that
// Magento reports as unavailable are skipped.
func MapShippingMethods(methods []wire.ShippingMethod, currency string) []models.ShippingMethod {
	out := make([]models.ShippingMethod, 0, len(methods))
	for _, m := range methods {
		if !m.Available {
			continue
		}
		amount := m.PriceInclTax
		if amount == 0 {
			amount = m.Amount
		}
		out = append(out, models.ShippingMethod{
			ID:          m.CarrierCode + "_" + m.MethodCode,
			Name:        m.MethodTitle,
			Description: m.CarrierTitle,
			Price:       models.NewPrice(amount, currency),
		})
	}
	return out
}

// MapPaymentMethods converts the payment methods of a cart.
func MapPaymentMethods(methods []wire.PaymentMethod) []models.PaymentMethod {
	out := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		out = append(out, models.PaymentMethod{ID: m.Code, Name: m.Title})
	}
	return out
}
