package models

import "fmt"

// Currency is the closed set of settlement currencies the gateway accepts.
type Currency string

const (
	GBP Currency = "GBP"
	EUR Currency = "EUR"
	USD Currency = "USD"
	JPY Currency = "JPY"
)

// DefaultCurrency is used by the convenience Amount constructor; callers that
// know the currency should always pass it explicitly.
const DefaultCurrency = GBP

// ParseCurrency returns the Currency for a three-letter code.
func ParseCurrency(code string) (Currency, error) {
	switch Currency(code) {
	case GBP, EUR, USD, JPY:
		return Currency(code), nil
	}
	return "", fmt.Errorf("%q is not a recognised currency code", code)
}

// DecimalPlaces is fixed per currency and never configurable at runtime.
func (c Currency) DecimalPlaces() int {
	switch c {
	case JPY:
		return 0
	default:
		return 2
	}
}

func (c Currency) String() string {
	return string(c)
}
