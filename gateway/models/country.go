package models

import "fmt"

// Country is a two-letter ISO country code from the closed set the gateway
// ships routes for.
type Country string

const (
	GB Country = "GB"
	US Country = "US"
)

// UnknownCountryError is returned by ParseCountry for codes outside the
// supported set.
type UnknownCountryError struct {
	Code string
}

func (e *UnknownCountryError) Error() string {
	return fmt.Sprintf("%q is not a recognised country code", e.Code)
}

// ParseCountry returns the Country for a two-letter code.
func ParseCountry(code string) (Country, error) {
	switch Country(code) {
	case GB, US:
		return Country(code), nil
	}
	return "", &UnknownCountryError{Code: code}
}

func (c Country) String() string {
	return string(c)
}
