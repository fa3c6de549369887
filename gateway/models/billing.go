package models

import "strings"

// Billing is the cardholder's billing contact details.
type Billing struct {
	FirstName string
	LastName  string
	Premise   string
	Street    string
	City      string
	County    string
	Country   Country
}

// Normalize trims surrounding whitespace from every free-text field.
func (b *Billing) Normalize() {
	b.FirstName = strings.TrimSpace(b.FirstName)
	b.LastName = strings.TrimSpace(b.LastName)
	b.Premise = strings.TrimSpace(b.Premise)
	b.Street = strings.TrimSpace(b.Street)
	b.City = strings.TrimSpace(b.City)
	b.County = strings.TrimSpace(b.County)
}
