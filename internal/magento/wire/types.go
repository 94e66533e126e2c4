// Package wire holds the JSON shapes exchanged with the Magento REST and
// GraphQL APIs.
package wire

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// ID accepts both JSON strings and numbers. Magento returns numeric quote
// ids for customer carts and masked string ids for guest carts.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or a number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string { return string(id) }

// Address is a quote or customer address.
type Address struct {
	ID         ID       `json:"id,omitempty"`
	Region     string   `json:"region,omitempty"`
	RegionID   int      `json:"region_id,omitempty"`
	RegionCode string   `json:"region_code,omitempty"`
	CountryID  string   `json:"country_id,omitempty"`
	Street     []string `json:"street,omitempty"`
	Company    string   `json:"company,omitempty"`
	Telephone  string   `json:"telephone,omitempty"`
	Postcode   string   `json:"postcode,omitempty"`
	City       string   `json:"city,omitempty"`
	Firstname  string   `json:"firstname,omitempty"`
	Lastname   string   `json:"lastname,omitempty"`
	Email      string   `json:"email,omitempty"`
}

// Customer is the customers/me resource.
type Customer struct {
	ID        ID     `json:"id"`
	GroupID   int    `json:"group_id,omitempty"`
	Email     string `json:"email"`
	Firstname string `json:"firstname"`
	Lastname  string `json:"lastname"`
	CreatedAt string `json:"created_at,omitempty"`
	UpdatedAt string `json:"updated_at,omitempty"`
	StoreID   int    `json:"store_id,omitempty"`
}

// Credentials is the body of integration/customer/token.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
