package models

// Address represents a postal address in the canonical model
type Address struct {
	ID                    string `json:"id,omitempty" mapstructure:"id"`
	Title                 string `json:"title,omitempty" mapstructure:"title"`
	FirstName             string `json:"firstName" mapstructure:"firstName" validate:"required"`
	LastName              string `json:"lastName" mapstructure:"lastName" validate:"required"`
	Email                 string `json:"email,omitempty" mapstructure:"email" validate:"omitempty,email"`
	StreetName            string `json:"streetName" mapstructure:"streetName" validate:"required"`
	StreetNumber          string `json:"streetNumber,omitempty" mapstructure:"streetNumber"`
	AdditionalAddressInfo string `json:"additionalAddressInfo,omitempty" mapstructure:"additionalAddressInfo"`
	PostalCode            string `json:"postalCode" mapstructure:"postalCode" validate:"required"`
	City                  string `json:"city" mapstructure:"city" validate:"required"`
	Region                string `json:"region,omitempty" mapstructure:"region"`
	RegionID              int    `json:"regionId,omitempty" mapstructure:"regionId"`
	Country               string `json:"country" mapstructure:"country" validate:"required,len=2"`
	OrganizationName      string `json:"organizationName,omitempty" mapstructure:"organizationName"`
	Phone                 string `json:"phone,omitempty" mapstructure:"phone"`
}

// IsEmpty reports whether no address field is set
func (a *Address) IsEmpty() bool {
	return a == nil || *a == Address{}
}
