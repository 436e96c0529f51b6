package types

import (
	"fmt"
	"strings"
)

// Address is the shipping address captured at checkout. It is stored as a
// JSON document on the order record, never as relational columns.
type Address struct {
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Line1     string  `json:"address1"`
	Line2     *string `json:"address2,omitempty"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	ZipCode   string  `json:"zip_code"`
	Country   string  `json:"country"`
	Phone     string  `json:"phone"`
}

// Validate checks the fields an order cannot ship without.
func (a Address) Validate() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return fmt.Errorf("address: missing first_name")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return fmt.Errorf("address: missing last_name")
	}
	if strings.TrimSpace(a.Line1) == "" {
		return fmt.Errorf("address: missing address1")
	}
	if strings.TrimSpace(a.City) == "" {
		return fmt.Errorf("address: missing city")
	}
	if strings.TrimSpace(a.State) == "" {
		return fmt.Errorf("address: missing state")
	}
	if strings.TrimSpace(a.ZipCode) == "" {
		return fmt.Errorf("address: missing zip_code")
	}
	if strings.TrimSpace(a.Phone) == "" {
		return fmt.Errorf("address: missing phone")
	}
	return nil
}

// Normalized returns a copy with whitespace trimmed and the country defaulted.
func (a Address) Normalized() Address {
	out := a
	out.FirstName = strings.TrimSpace(a.FirstName)
	out.LastName = strings.TrimSpace(a.LastName)
	out.Line1 = strings.TrimSpace(a.Line1)
	out.City = strings.TrimSpace(a.City)
	out.State = strings.ToUpper(strings.TrimSpace(a.State))
	out.ZipCode = strings.TrimSpace(a.ZipCode)
	out.Phone = strings.TrimSpace(a.Phone)

	country := strings.TrimSpace(a.Country)
	if country == "" {
		country = "United States"
	}
	out.Country = country
	return out
}
