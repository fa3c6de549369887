package models

import "fmt"

// CardScheme is the card network a Card payment settles through.
type CardScheme string

const (
	Visa       CardScheme = "VISA"
	Mastercard CardScheme = "MASTERCARD"
)

// ParseCardScheme returns the CardScheme for its wire name.
func ParseCardScheme(name string) (CardScheme, error) {
	switch CardScheme(name) {
	case Visa, Mastercard:
		return CardScheme(name), nil
	}
	return "", fmt.Errorf("%q is not a recognised card scheme", name)
}

func (s CardScheme) String() string {
	return string(s)
}

// PaymentKind discriminates the Payment union.
type PaymentKind string

const (
	PaymentCard    PaymentKind = "CARD"
	PaymentAccount PaymentKind = "ACCOUNT"
)

// Payment is a tagged union over the instrument kinds the gateway accepts.
// Values are only created through NewCardPayment and NewAccountPayment, so a
// Payment always carries exactly the fields of its variant.
type Payment struct {
	kind PaymentKind

	// Card
	scheme       CardScheme
	expiryYear   int
	expiryMonth  int
	securityCode string
	pan          string

	// Account
	accountNumber string
	sortCode      string
}

// NewCardPayment builds the Card variant. Field bounds are checked by
// Validate, not here, so callers can report every violation at once.
func NewCardPayment(scheme CardScheme, expiryYear, expiryMonth int, securityCode, pan string) Payment {
	return Payment{
		kind:         PaymentCard,
		scheme:       scheme,
		expiryYear:   expiryYear,
		expiryMonth:  expiryMonth,
		securityCode: securityCode,
		pan:          pan,
	}
}

// NewAccountPayment builds the Account variant.
func NewAccountPayment(accountNumber, sortCode string) Payment {
	return Payment{
		kind:          PaymentAccount,
		accountNumber: accountNumber,
		sortCode:      sortCode,
	}
}

func (p Payment) Kind() PaymentKind     { return p.kind }
func (p Payment) Scheme() CardScheme    { return p.scheme }
func (p Payment) ExpiryYear() int       { return p.expiryYear }
func (p Payment) ExpiryMonth() int      { return p.expiryMonth }
func (p Payment) SecurityCode() string  { return p.securityCode }
func (p Payment) PAN() string           { return p.pan }
func (p Payment) AccountNumber() string { return p.accountNumber }
func (p Payment) SortCode() string      { return p.sortCode }

// FieldError describes one validation violation, carrying the bounds that
// were broken so failures reproduce exactly in tests and logs.
type FieldError struct {
	Field   string
	Code    string
	Message string
	Min     int
	Max     int
	Actual  int
}

func (e FieldError) Error() string {
	return e.Message
}

const (
	panMinLen          = 16
	panMaxLen          = 20
	securityCodeMinLen = 3
	securityCodeMaxLen = 4
)

// Validate checks the variant's field bounds and reports every violation
// found in one pass. It is pure: no network, no database, no coercion.
func (p Payment) Validate() []FieldError {
	var errs []FieldError
	switch p.kind {
	case PaymentCard:
		if n := len(p.pan); n < panMinLen || n > panMaxLen {
			errs = append(errs, FieldError{
				Field:   "pan",
				Code:    "length",
				Message: "invalid pan length",
				Min:     panMinLen,
				Max:     panMaxLen,
				Actual:  n,
			})
		}
		if n := len(p.securityCode); n < securityCodeMinLen || n > securityCodeMaxLen {
			errs = append(errs, FieldError{
				Field:   "security_code",
				Code:    "length",
				Message: "invalid security_code length",
				Min:     securityCodeMinLen,
				Max:     securityCodeMaxLen,
				Actual:  n,
			})
		}
	case PaymentAccount:
		// No length bounds are enforced for account numbers or sort codes
		// yet; presence is guaranteed by the constructors' callers.
	}
	return errs
}
