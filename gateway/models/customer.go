package models

import "strings"

// Customer is the optional shopper details a merchant may attach to a
// transaction. It is carried through unaltered; nothing routes on it.
type Customer struct {
	FirstName string
	LastName  string
	Premise   string
	Street    string
	City      string
	County    string
}

func (c *Customer) Normalize() {
	c.FirstName = strings.TrimSpace(c.FirstName)
	c.LastName = strings.TrimSpace(c.LastName)
	c.Premise = strings.TrimSpace(c.Premise)
	c.Street = strings.TrimSpace(c.Street)
	c.City = strings.TrimSpace(c.City)
	c.County = strings.TrimSpace(c.County)
}
