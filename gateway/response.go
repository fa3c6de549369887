package gateway

import (
	"github.com/fetidd/gateway/gateway/models"
	"github.com/fetidd/gateway/internal/mask"
)

// TransactionResponse is the outbound projection of a Transaction. It never
// carries a raw PAN, full account number or security code.
type TransactionResponse struct {
	Reference   string          `json:"reference"`
	Amount      string          `json:"amount"`
	Currency    string          `json:"currency"`
	Payment     PaymentResponse `json:"payment"`
	Billing     BillingResponse `json:"billing"`
	Status      string          `json:"status"`
	ErrorDetail string          `json:"error_detail,omitempty"`
}

type PaymentResponse struct {
	Type          string `json:"type"`
	Scheme        string `json:"scheme,omitempty"`
	ExpiryMonth   int    `json:"expiry_month,omitempty"`
	ExpiryYear    int    `json:"expiry_year,omitempty"`
	PAN           string `json:"pan,omitempty"`
	AccountNumber string `json:"account_number,omitempty"`
}

// BillingResponse omits empty fields; only the country always serializes.
type BillingResponse struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Premise   string `json:"premise,omitempty"`
	Street    string `json:"street,omitempty"`
	City      string `json:"city,omitempty"`
	County    string `json:"county,omitempty"`
	Country   string `json:"country"`
}

// NewTransactionResponse projects a Transaction for the caller, decimal-
// rendering the amount and masking the payment identifiers.
func NewTransactionResponse(trx models.Transaction) TransactionResponse {
	return TransactionResponse{
		Reference:   trx.Reference(),
		Amount:      trx.Amount().Decimal(),
		Currency:    trx.Amount().Currency().String(),
		Payment:     newPaymentResponse(trx.Payment()),
		Billing:     newBillingResponse(trx.Billing()),
		Status:      string(trx.Status()),
		ErrorDetail: trx.StatusDetail(),
	}
}

func newPaymentResponse(p models.Payment) PaymentResponse {
	switch p.Kind() {
	case models.PaymentCard:
		return PaymentResponse{
			Type:        string(models.PaymentCard),
			Scheme:      p.Scheme().String(),
			ExpiryMonth: p.ExpiryMonth(),
			ExpiryYear:  p.ExpiryYear(),
			PAN:         mask.PAN(p.PAN()),
		}
	default:
		return PaymentResponse{
			Type:          string(models.PaymentAccount),
			AccountNumber: mask.AccountNumber(p.AccountNumber()),
		}
	}
}

func newBillingResponse(b models.Billing) BillingResponse {
	return BillingResponse{
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Premise:   b.Premise,
		Street:    b.Street,
		City:      b.City,
		County:    b.County,
		Country:   b.Country.String(),
	}
}
