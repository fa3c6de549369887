package gateway

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/fetidd/gateway/gateway/models"
)

// TransactionRequest is the inbound envelope for POST /transaction. The
// payment sub-object is kept raw so it can be decoded strictly per variant;
// unknown top-level fields are tolerated, unknown payment fields are not.
type TransactionRequest struct {
	Amount          int64            `json:"amount"`
	Currency        string           `json:"currency"`
	TransactionType string           `json:"transaction_type"`
	MerchantID      string           `json:"merchant_id"`
	Payment         json.RawMessage  `json:"payment"`
	Billing         *BillingRequest  `json:"billing"`
	Customer        *CustomerRequest `json:"customer"`
}

// PaymentRequest is the discriminated payment sub-object. Pointer fields
// distinguish absent from empty so per-variant presence rules can be checked.
type PaymentRequest struct {
	PaymentType   string  `json:"payment_type"`
	Type          string  `json:"type"`
	Scheme        *string `json:"scheme"`
	PAN           *string `json:"pan"`
	SecurityCode  *string `json:"security_code"`
	ExpiryMonth   *int    `json:"expiry_month"`
	ExpiryYear    *int    `json:"expiry_year"`
	AccountNumber *string `json:"account_number"`
	SortCode      *string `json:"sort_code"`
}

type BillingRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Premise   string `json:"premise"`
	Street    string `json:"street"`
	City      string `json:"city"`
	County    string `json:"county"`
	Country   string `json:"country"`
}

type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Premise   string `json:"premise"`
	Street    string `json:"street"`
	City      string `json:"city"`
	County    string `json:"county"`
}

// ExtractPayment decodes and validates the payment sub-object into the domain
// union. It aggregates missing required fields into one message and rejects
// fields that belong to the other variant, per the envelope contract.
func (r *TransactionRequest) ExtractPayment() (models.Payment, *Error) {
	if len(r.Payment) == 0 || string(r.Payment) == "null" {
		return models.Payment{}, Validation("missing payment data")
	}

	var req PaymentRequest
	dec := json.NewDecoder(bytes.NewReader(r.Payment))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return models.Payment{}, Validationf("invalid payment data: %s", err)
	}
	return req.toPayment()
}

func (r PaymentRequest) toPayment() (models.Payment, *Error) {
	paymentType := r.PaymentType
	if paymentType == "" {
		paymentType = r.Type
	}

	switch paymentType {
	case string(models.PaymentCard):
		if msg := forbiddenFields("CARD",
			field{"account_number", r.AccountNumber != nil},
			field{"sort_code", r.SortCode != nil},
		); msg != "" {
			return models.Payment{}, Validation(msg)
		}
		if msg := missingFields(
			field{"scheme", r.Scheme == nil || *r.Scheme == ""},
			field{"pan", r.PAN == nil || *r.PAN == ""},
			field{"security_code", r.SecurityCode == nil || *r.SecurityCode == ""},
			field{"expiry_month", r.ExpiryMonth == nil},
			field{"expiry_year", r.ExpiryYear == nil},
		); msg != "" {
			return models.Payment{}, Validation(msg)
		}
		scheme, err := models.ParseCardScheme(*r.Scheme)
		if err != nil {
			return models.Payment{}, Validation(err.Error())
		}
		return models.NewCardPayment(scheme, *r.ExpiryYear, *r.ExpiryMonth, *r.SecurityCode, *r.PAN), nil

	case string(models.PaymentAccount):
		if msg := forbiddenFields("ACCOUNT",
			field{"scheme", r.Scheme != nil},
			field{"pan", r.PAN != nil},
			field{"security_code", r.SecurityCode != nil},
			field{"expiry_month", r.ExpiryMonth != nil},
			field{"expiry_year", r.ExpiryYear != nil},
		); msg != "" {
			return models.Payment{}, Validation(msg)
		}
		if msg := missingFields(
			field{"account_number", r.AccountNumber == nil || *r.AccountNumber == ""},
			field{"sort_code", r.SortCode == nil || *r.SortCode == ""},
		); msg != "" {
			return models.Payment{}, Validation(msg)
		}
		return models.NewAccountPayment(*r.AccountNumber, *r.SortCode), nil

	case "":
		return models.Payment{}, Validation("missing fields: payment_type")
	default:
		return models.Payment{}, Validationf("%q is not a recognised payment type", paymentType)
	}
}

type field struct {
	name string
	hit  bool
}

func missingFields(fields ...field) string {
	var names []string
	for _, f := range fields {
		if f.hit {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "missing fields: " + strings.Join(names, ", ")
}

func forbiddenFields(variant string, fields ...field) string {
	var names []string
	for _, f := range fields {
		if f.hit {
			names = append(names, f.name)
		}
	}
	if len(names) == 0 {
		return ""
	}
	return "unexpected fields for " + variant + " payment: " + strings.Join(names, ", ")
}

// ExtractBilling converts the billing sub-object, trimming text fields and
// parsing the country code.
func (r *TransactionRequest) ExtractBilling() (models.Billing, *Error) {
	if r.Billing == nil {
		return models.Billing{}, Validation("missing billing data")
	}
	country, err := models.ParseCountry(r.Billing.Country)
	if err != nil {
		return models.Billing{}, Validation(err.Error())
	}
	billing := models.Billing{
		FirstName: r.Billing.FirstName,
		LastName:  r.Billing.LastName,
		Premise:   r.Billing.Premise,
		Street:    r.Billing.Street,
		City:      r.Billing.City,
		County:    r.Billing.County,
		Country:   country,
	}
	billing.Normalize()
	return billing, nil
}

// ExtractCustomer converts the optional customer sub-object; it returns nil
// when the request carries none.
func (r *TransactionRequest) ExtractCustomer() *models.Customer {
	if r.Customer == nil {
		return nil
	}
	customer := models.Customer{
		FirstName: r.Customer.FirstName,
		LastName:  r.Customer.LastName,
		Premise:   r.Customer.Premise,
		Street:    r.Customer.Street,
		City:      r.Customer.City,
		County:    r.Customer.County,
	}
	customer.Normalize()
	return &customer
}
