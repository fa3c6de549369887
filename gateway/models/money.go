package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Amount is a monetary value in minor units (pence, cents). All arithmetic and
// storage stays in integers; floats never appear in amount handling.
type Amount struct {
	value    uint64
	currency Currency
}

// NewAmount constructs an Amount from minor units and an explicit currency.
func NewAmount(value uint64, currency Currency) Amount {
	return Amount{value: value, currency: currency}
}

// NewDefaultAmount constructs an Amount in the gateway's default currency.
func NewDefaultAmount(value uint64) Amount {
	return Amount{value: value, currency: DefaultCurrency}
}

func (a Amount) Value() uint64 {
	return a.value
}

func (a Amount) Currency() Currency {
	return a.currency
}

// Base renders the raw minor-unit integer.
func (a Amount) Base() string {
	return strconv.FormatUint(a.value, 10)
}

// Decimal renders the amount split at the currency's decimal-place boundary:
// 12345 minor units of GBP become "123.45". The integer is left-padded with
// zeros to at least decimalPlaces+1 digits first, so zero renders as "0.00"
// for a two-decimal currency rather than "0".
func (a Amount) Decimal() string {
	places := a.currency.DecimalPlaces()
	if places == 0 {
		return a.Base()
	}
	digits := strconv.FormatUint(a.value, 10)
	if pad := places + 1 - len(digits); pad > 0 {
		digits = strings.Repeat("0", pad) + digits
	}
	split := len(digits) - places
	return digits[:split] + "." + digits[split:]
}

// ParseDecimal reverses Decimal. The round trip through Decimal and back
// preserves the minor-unit value exactly.
func ParseDecimal(s string, currency Currency) (Amount, error) {
	places := currency.DecimalPlaces()
	whole, frac, found := strings.Cut(s, ".")
	if places == 0 {
		if found {
			return Amount{}, fmt.Errorf("%s amounts take no decimal places", currency)
		}
	} else if !found || len(frac) != places {
		return Amount{}, fmt.Errorf("%q is not a valid %s decimal amount", s, currency)
	}
	value, err := strconv.ParseUint(whole+frac, 10, 64)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing decimal amount %q: %w", s, err)
	}
	return Amount{value: value, currency: currency}, nil
}
