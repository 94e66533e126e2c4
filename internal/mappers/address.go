package mappers

import (
	"strings"

	"magento-commerce-actions/internal/magento/wire"
	"magento-commerce-actions/internal/models"
)

// MapAddress converts a Magento address. A nil or blank address maps to nil.
func MapAddress(a *wire.Address) *models.Address {
	if a == nil || isBlankAddress(a) {
		return nil
	}
	out := &models.Address{
		ID:               a.ID.String(),
		FirstName:        a.Firstname,
		LastName:         a.Lastname,
		Email:            a.Email,
		PostalCode:       a.Postcode,
		City:             a.City,
		Region:           a.Region,
		RegionID:         a.RegionID,
		Country:          a.CountryID,
		OrganizationName: a.Company,
		Phone:            a.Telephone,
	}
	if len(a.Street) > 0 {
		out.StreetName = a.Street[0]
	}
	if len(a.Street) > 1 {
		out.AdditionalAddressInfo = strings.Join(a.Street[1:], ", ")
	}
	return out
}

// ToMagentoAddress converts a canonical address into the Magento shape.
func ToMagentoAddress(a models.Address) wire.Address {
	street := []string{strings.TrimSpace(a.StreetName + " " + a.StreetNumber)}
	if a.AdditionalAddressInfo != "" {
		street = append(street, a.AdditionalAddressInfo)
	}
	return wire.Address{
		Region:    a.Region,
		RegionID:  a.RegionID,
		CountryID: strings.ToUpper(a.Country),
		Street:    street,
		Company:   a.OrganizationName,
		Telephone: a.Phone,
		Postcode:  a.PostalCode,
		City:      a.City,
		Firstname: a.FirstName,
		Lastname:  a.LastName,
		Email:     a.Email,
	}
}

func isBlankAddress(a *wire.Address) bool {
	return a.Firstname == "" && a.Lastname == "" && a.City == "" &&
		a.Postcode == "" && a.CountryID == "" && len(a.Street) == 0
}
