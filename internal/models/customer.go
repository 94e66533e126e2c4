package models

import "strings"

// Customer represents an authenticated shop customer
type Customer struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	CreatedAt      string `json:"createdAt,omitempty"`
	LastModifiedAt string `json:"lastModifiedAt,omitempty"`
}

// GetDisplayName returns the customer's full name
func (c *Customer) GetDisplayName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

// LoginResult is returned by a successful customer login
type LoginResult struct {
	Customer Customer `json:"customer"`
	Cart     *Cart    `json:"cart,omitempty"`
}

// AuthResult is returned by a successful customer authentication
type AuthResult struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}
