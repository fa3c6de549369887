package gateway

import (
	"encoding/json"
	"testing"

	"github.com/fetidd/gateway/gateway/models"
	"github.com/stretchr/testify/require"
)

func paymentRequest(t *testing.T, payment string) TransactionRequest {
	t.Helper()
	return TransactionRequest{Payment: json.RawMessage(payment)}
}

func TestExtractPaymentCard(t *testing.T) {
	req := paymentRequest(t, `{
        "payment_type": "CARD",
        "scheme": "VISA",
        "pan": "4000111122223333",
        "security_code": "123",
        "expiry_month": 1,
        "expiry_year": 2021
    }`)

	payment, gerr := req.ExtractPayment()
	require.Nil(t, gerr)
	require.Equal(t, models.PaymentCard, payment.Kind())
	require.Equal(t, models.Visa, payment.Scheme())
	require.Equal(t, "4000111122223333", payment.PAN())
	require.Equal(t, "123", payment.SecurityCode())
	require.Equal(t, 1, payment.ExpiryMonth())
	require.Equal(t, 2021, payment.ExpiryYear())
}

func TestExtractPaymentAccount(t *testing.T) {
	req := paymentRequest(t, `{
        "payment_type": "ACCOUNT",
        "account_number": "12341234",
        "sort_code": "123456"
    }`)

	payment, gerr := req.ExtractPayment()
	require.Nil(t, gerr)
	require.Equal(t, models.PaymentAccount, payment.Kind())
	require.Equal(t, "12341234", payment.AccountNumber())
	require.Equal(t, "123456", payment.SortCode())
}

// "type" is accepted as an alias for "payment_type".
func TestExtractPaymentTypeAlias(t *testing.T) {
	req := paymentRequest(t, `{"type": "ACCOUNT", "account_number": "12341234", "sort_code": "123456"}`)

	payment, gerr := req.ExtractPayment()
	require.Nil(t, gerr)
	require.Equal(t, models.PaymentAccount, payment.Kind())
}

func TestExtractPaymentErrors(t *testing.T) {
	cases := []struct {
		name    string
		payment string
		message string
	}{
		{
			name:    "missing payment_type",
			payment: `{"account_number": "12341234", "sort_code": "123456"}`,
			message: "missing fields: payment_type",
		},
		{
			name:    "unknown payment_type",
			payment: `{"payment_type": "CRYPTO"}`,
			message: `"CRYPTO" is not a recognised payment type`,
		},
		{
			name:    "card missing everything",
			payment: `{"payment_type": "CARD"}`,
			message: "missing fields: scheme, pan, security_code, expiry_month, expiry_year",
		},
		{
			name: "card missing pan and security_code",
			payment: `{"payment_type": "CARD", "scheme": "VISA",
                       "expiry_month": 12, "expiry_year": 2026}`,
			message: "missing fields: pan, security_code",
		},
		{
			name: "card with account fields",
			payment: `{"payment_type": "CARD", "scheme": "VISA", "pan": "4000111122223333",
                       "security_code": "123", "expiry_month": 12, "expiry_year": 2026,
                       "account_number": "12341234"}`,
			message: "unexpected fields for CARD payment: account_number",
		},
		{
			name: "account with card fields",
			payment: `{"payment_type": "ACCOUNT", "account_number": "12341234", "sort_code": "123456",
                       "scheme": "VISA", "expiry_month": 12, "expiry_year": 2026, "security_code": "123"}`,
			message: "unexpected fields for ACCOUNT payment: scheme, security_code, expiry_month, expiry_year",
		},
		{
			name:    "account missing sort_code",
			payment: `{"payment_type": "ACCOUNT", "account_number": "12341234"}`,
			message: "missing fields: sort_code",
		},
		{
			name:    "empty strings count as missing",
			payment: `{"payment_type": "ACCOUNT", "account_number": "", "sort_code": ""}`,
			message: "missing fields: account_number, sort_code",
		},
		{
			name:    "invalid scheme",
			payment: `{"payment_type": "CARD", "scheme": "AMEX", "pan": "4000111122223333", "security_code": "123", "expiry_month": 12, "expiry_year": 2026}`,
			message: `"AMEX" is not a recognised card scheme`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			req := paymentRequest(t, c.payment)
			_, gerr := req.ExtractPayment()
			require.NotNil(t, gerr)
			require.Equal(t, KindValidation, gerr.Kind)
			require.Equal(t, c.message, gerr.Message)
		})
	}
}

func TestExtractPaymentRejectsUnknownFields(t *testing.T) {
	req := paymentRequest(t, `{"payment_type": "CARD", "card_holder": "Ben"}`)
	_, gerr := req.ExtractPayment()
	require.NotNil(t, gerr)
	require.Equal(t, KindValidation, gerr.Kind)
	require.Contains(t, gerr.Message, "card_holder")
}

func TestExtractPaymentAbsent(t *testing.T) {
	for _, raw := range []string{"", "null"} {
		req := TransactionRequest{Payment: json.RawMessage(raw)}
		_, gerr := req.ExtractPayment()
		require.NotNil(t, gerr)
		require.Equal(t, "missing payment data", gerr.Message)
	}
}

func TestExtractBilling(t *testing.T) {
	req := TransactionRequest{Billing: &BillingRequest{
		FirstName: "  Ben  ",
		LastName:  "Jones",
		Country:   "GB",
	}}
	billing, gerr := req.ExtractBilling()
	require.Nil(t, gerr)
	require.Equal(t, "Ben", billing.FirstName)
	require.Equal(t, models.GB, billing.Country)

	req = TransactionRequest{}
	_, gerr = req.ExtractBilling()
	require.NotNil(t, gerr)
	require.Equal(t, "missing billing data", gerr.Message)

	req = TransactionRequest{Billing: &BillingRequest{Country: "XX"}}
	_, gerr = req.ExtractBilling()
	require.NotNil(t, gerr)
	require.Equal(t, `"XX" is not a recognised country code`, gerr.Message)
}

func TestExtractCustomer(t *testing.T) {
	req := TransactionRequest{}
	require.Nil(t, req.ExtractCustomer())

	req = TransactionRequest{Customer: &CustomerRequest{FirstName: " Ben "}}
	customer := req.ExtractCustomer()
	require.NotNil(t, customer)
	require.Equal(t, "Ben", customer.FirstName)
}
