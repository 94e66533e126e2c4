package mappers

import (
	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/models"
)

// MapCustomer converts a Magento customer.
func MapCustomer(c *wire.Customer) models.Customer {
	return models.Customer{
		ID:             c.ID.String(),
		Email:          c.Email,
		FirstName:      c.Firstname,
		LastName:       c.Lastname,
		CreatedAt:      FormatDate(c.CreatedAt),
		LastModifiedAt: FormatDate(c.UpdatedAt),
	}
}

// MapOrder wraps the id returned when an order is placed.
func MapOrder(id string) models.Order {
	return models.Order{ID: id}
}
