package models

import "strings"

// Merchant is the profile record loaded for the merchant submitting a
// transaction.
type Merchant struct {
	MerchantID string
	Name       string
	Premise    string
	Street     string
	City       string
	Postcode   string
	County     string
	Country    Country
}

// Normalize trims surrounding whitespace from every free-text field; it runs
// on every load so downstream consumers never see padded columns.
func (m *Merchant) Normalize() {
	m.Name = strings.TrimSpace(m.Name)
	m.Premise = strings.TrimSpace(m.Premise)
	m.Street = strings.TrimSpace(m.Street)
	m.City = strings.TrimSpace(m.City)
	m.Postcode = strings.TrimSpace(m.Postcode)
	m.County = strings.TrimSpace(m.County)
}
