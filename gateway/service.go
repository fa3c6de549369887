package gateway

import (
	"context"
	"strings"

	"github.com/fetidd/gateway/gateway/models"
	"golang.org/x/exp/slog"
)

// Service runs the transaction pipeline: validate the request locally, then
// resolve the merchant and settlement account, assemble the immutable record,
// store it and project the masked response. The database round trips are
// strictly sequential; nothing here holds state across requests.
type Service struct {
	repo   *Repository
	logger *slog.Logger
}

func NewService(repo *Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger.With(slog.String("component", "service")),
	}
}

// Process handles one transaction request end to end. All validation runs
// before the first database access; resource and fatal errors map 1:1 from
// the repository.
func (s *Service) Process(ctx context.Context, req TransactionRequest) (TransactionResponse, *Error) {
	payment, gerr := req.ExtractPayment()
	if gerr != nil {
		return TransactionResponse{}, gerr
	}
	if fieldErrs := payment.Validate(); len(fieldErrs) > 0 {
		return TransactionResponse{}, Validation(joinFieldErrors(fieldErrs))
	}

	billing, gerr := req.ExtractBilling()
	if gerr != nil {
		return TransactionResponse{}, gerr
	}

	txType, err := models.ParseTransactionType(req.TransactionType)
	if err != nil {
		return TransactionResponse{}, Validation(err.Error())
	}
	currency, err := models.ParseCurrency(req.Currency)
	if err != nil {
		return TransactionResponse{}, Validation(err.Error())
	}
	if req.Amount < 0 {
		return TransactionResponse{}, Validation("amount must not be negative")
	}
	amount := models.NewAmount(uint64(req.Amount), currency)

	merchant, gerr := s.repo.LoadMerchant(ctx, req.MerchantID)
	if gerr != nil {
		return TransactionResponse{}, gerr
	}

	account, gerr := s.repo.SelectAccount(ctx, req.MerchantID, payment, currency)
	if gerr != nil {
		return TransactionResponse{}, gerr
	}

	builder := models.NewTransactionBuilder(txType).
		Amount(amount).
		Payment(payment).
		Billing(billing).
		Merchant(merchant).
		Account(account)
	if customer := req.ExtractCustomer(); customer != nil {
		builder.Customer(*customer)
	}
	trx, err := builder.Build()
	if err != nil {
		// Every required field was staged above, so an incomplete build here
		// is a programming fault, not caller input.
		return TransactionResponse{}, Fatalf("assembling transaction: %s", err)
	}

	if gerr := s.repo.CreateTransaction(ctx, trx); gerr != nil {
		return TransactionResponse{}, gerr
	}

	s.logger.Info("transaction processed",
		slog.String("reference", trx.Reference()),
		slog.String("merchant_id", merchant.MerchantID),
		slog.String("acquirer", account.Acquirer()),
	)
	return NewTransactionResponse(trx), nil
}

func joinFieldErrors(errs []models.FieldError) string {
	msgs := make([]string, len(errs))
	for i, e := range errs {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}
