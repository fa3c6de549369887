package gateway_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fetidd/gateway/gateway"
	"github.com/fetidd/gateway/gateway/models"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestRouter(t *testing.T) (chi.Router, *gateway.Repository) {
	t.Helper()

	repo := gateway.NewRepository()
	repo.AddMerchant(models.Merchant{
		MerchantID: "merchant123",
		Name:       "  Test Shop  ",
		Street:     "1 High Street",
		City:       "Llandudno Junction",
		Postcode:   "LL31 9AB",
		Country:    models.GB,
	})
	repo.AddRoute(models.Visa, models.GBP, "merchant123", "bankone", 1)
	repo.AddBankOneAccount(1, models.BankOneAccount{MerchantIdentificationValue: "miv-001"})

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := gateway.NewAPI(gateway.NewService(repo, logger), logger)

	router := chi.NewRouter()
	api.AppendRoutes(router)
	return router, repo
}

// testRequest returns a complete, valid request body that individual tests
// mutate to produce their failure case.
func testRequest() map[string]any {
	return map[string]any{
		"amount":           12345,
		"currency":         "GBP",
		"transaction_type": "Auth",
		"merchant_id":      "merchant123",
		"payment": map[string]any{
			"payment_type":  "CARD",
			"scheme":        "VISA",
			"pan":           "4000111122223333",
			"security_code": "123",
			"expiry_month":  12,
			"expiry_year":   2026,
		},
		"billing": map[string]any{
			"first_name": "Ben",
			"last_name":  "Jones",
			"city":       "Llandudno Junction",
			"country":    "GB",
		},
	}
}

func postTransaction(t *testing.T, router chi.Router, body map[string]any) *httptest.ResponseRecorder {
	t.Helper()

	jsonReq, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/transaction", bytes.NewBuffer(jsonReq))
	router.ServeHTTP(w, req)
	return w
}

func TestPostTransaction(t *testing.T) {
	router, repo := newTestRouter(t)

	w := postTransaction(t, router, testRequest())
	require.Equal(t, http.StatusCreated, w.Code)

	var resp gateway.TransactionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	require.NotEmpty(t, resp.Reference)
	require.Equal(t, "123.45", resp.Amount)
	require.Equal(t, "GBP", resp.Currency)
	require.Equal(t, "SUCCESS", resp.Status)
	require.Empty(t, resp.ErrorDetail)

	require.Equal(t, "CARD", resp.Payment.Type)
	require.Equal(t, "VISA", resp.Payment.Scheme)
	require.Equal(t, "400011######3333", resp.Payment.PAN)
	require.Equal(t, 12, resp.Payment.ExpiryMonth)
	require.Equal(t, 2026, resp.Payment.ExpiryYear)
	require.Empty(t, resp.Payment.AccountNumber)

	require.Equal(t, "Ben", resp.Billing.FirstName)
	require.Equal(t, "GB", resp.Billing.Country)

	stored := repo.StoredTransactions()
	require.Len(t, stored, 1)
	require.Equal(t, resp.Reference, stored[0].Reference())
	require.Equal(t, models.StatusSuccess, stored[0].Status())
}

func TestPostTransactionResponseNeverLeaksRawPAN(t *testing.T) {
	router, _ := newTestRouter(t)

	w := postTransaction(t, router, testRequest())
	require.Equal(t, http.StatusCreated, w.Code)
	require.NotContains(t, w.Body.String(), "4000111122223333")
	require.NotContains(t, w.Body.String(), "security_code")
}

func TestPostTransactionErrors(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(body map[string]any)
		status  int
		kind    string
		message string
	}{
		{
			name:    "merchant does not exist",
			mutate:  func(b map[string]any) { b["merchant_id"] = "invalid123" },
			status:  http.StatusNotFound,
			kind:    "RESOURCE",
			message: "merchant invalid123 does not exist",
		},
		{
			name:    "missing payment",
			mutate:  func(b map[string]any) { delete(b, "payment") },
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: "missing payment data",
		},
		{
			name:    "missing billing",
			mutate:  func(b map[string]any) { delete(b, "billing") },
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: "missing billing data",
		},
		{
			name:    "no route for currency",
			mutate:  func(b map[string]any) { b["currency"] = "JPY" },
			status:  http.StatusNotFound,
			kind:    "RESOURCE",
			message: "no account found",
		},
		{
			name: "invalid pan length",
			mutate: func(b map[string]any) {
				b["payment"].(map[string]any)["pan"] = "400011112222333344445555"
			},
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: "invalid pan length",
		},
		{
			name: "missing pan and security code",
			mutate: func(b map[string]any) {
				payment := b["payment"].(map[string]any)
				delete(payment, "pan")
				delete(payment, "security_code")
			},
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: "missing fields: pan, security_code",
		},
		{
			name: "account payments are not routable",
			mutate: func(b map[string]any) {
				b["payment"] = map[string]any{
					"payment_type":   "ACCOUNT",
					"account_number": "12341234",
					"sort_code":      "010203",
				}
			},
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: "account payments are not routable",
		},
		{
			name:    "unknown country",
			mutate:  func(b map[string]any) { b["billing"].(map[string]any)["country"] = "" },
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: `"" is not a recognised country code`,
		},
		{
			name:    "unknown transaction type",
			mutate:  func(b map[string]any) { b["transaction_type"] = "Query" },
			status:  http.StatusBadRequest,
			kind:    "VALIDATION",
			message: `"Query" is not a recognised transaction type`,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			router, _ := newTestRouter(t)

			body := testRequest()
			c.mutate(body)
			w := postTransaction(t, router, body)
			require.Equal(t, c.status, w.Code)

			var resp struct {
				Error   string `json:"error"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			require.Equal(t, c.kind, resp.Error)
			require.Equal(t, c.message, resp.Message)
		})
	}
}

// An acquirer name in the routing table with no matching account table is a
// data inconsistency: the caller sees a generic internal error, never the
// detail.
func TestPostTransactionUnrecognisedAcquirerIsFatal(t *testing.T) {
	repo := gateway.NewRepository()
	repo.AddMerchant(models.Merchant{MerchantID: "merchant123", Name: "Test Shop", Country: models.GB})
	repo.AddRoute(models.Visa, models.GBP, "merchant123", "bankthree", 9)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	api := gateway.NewAPI(gateway.NewService(repo, logger), logger)
	router := chi.NewRouter()
	api.AppendRoutes(router)

	w := postTransaction(t, router, testRequest())
	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "FATAL", resp.Error)
	require.Equal(t, "internal error", resp.Message)
	require.NotContains(t, w.Body.String(), "bankthree")
}
