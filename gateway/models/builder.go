package models

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// IncompleteError reports every required builder field that was never
// supplied. Build is the only site that can produce it, which keeps the
// completeness check in exactly one place.
type IncompleteError struct {
	Missing []string
}

func (e *IncompleteError) Error() string {
	return fmt.Sprintf("transaction is missing required fields: %s", strings.Join(e.Missing, ", "))
}

// TransactionBuilder stages the inputs to a Transaction. Fields may be set in
// any order and re-set freely (last write wins); Build refuses to assemble
// until every required field has been supplied, so no partially-populated
// Transaction is ever observable.
type TransactionBuilder struct {
	txType   *TransactionType
	amount   *Amount
	payment  *Payment
	billing  *Billing
	merchant *Merchant
	account  AcquirerAccount
	customer *Customer
}

// NewAuth starts a builder for an Auth transaction.
func NewAuth() *TransactionBuilder {
	return NewTransactionBuilder(Auth)
}

// NewRefund starts a builder for a Refund transaction.
func NewRefund() *TransactionBuilder {
	return NewTransactionBuilder(Refund)
}

func NewTransactionBuilder(t TransactionType) *TransactionBuilder {
	return &TransactionBuilder{txType: &t}
}

func (b *TransactionBuilder) Amount(a Amount) *TransactionBuilder {
	b.amount = &a
	return b
}

func (b *TransactionBuilder) Payment(p Payment) *TransactionBuilder {
	b.payment = &p
	return b
}

func (b *TransactionBuilder) Billing(bl Billing) *TransactionBuilder {
	b.billing = &bl
	return b
}

func (b *TransactionBuilder) Merchant(m Merchant) *TransactionBuilder {
	b.merchant = &m
	return b
}

func (b *TransactionBuilder) Account(a AcquirerAccount) *TransactionBuilder {
	b.account = a
	return b
}

// Customer attaches optional customer details; it is the one input Build
// never requires.
func (b *TransactionBuilder) Customer(c Customer) *TransactionBuilder {
	b.customer = &c
	return b
}

// Build assembles the immutable Transaction, generating a fresh unique
// reference and defaulting the status to success. If any required field is
// missing it returns an IncompleteError naming all of them and no Transaction
// value at all.
func (b *TransactionBuilder) Build() (Transaction, error) {
	var missing []string
	if b.txType == nil {
		missing = append(missing, "type")
	}
	if b.amount == nil {
		missing = append(missing, "amount")
	}
	if b.payment == nil {
		missing = append(missing, "payment")
	}
	if b.billing == nil {
		missing = append(missing, "billing")
	}
	if b.merchant == nil {
		missing = append(missing, "merchant")
	}
	if b.account == nil {
		missing = append(missing, "account")
	}
	if len(missing) > 0 {
		return Transaction{}, &IncompleteError{Missing: missing}
	}
	return Transaction{
		reference: uuid.New().String(),
		txType:    *b.txType,
		amount:    *b.amount,
		payment:   *b.payment,
		billing:   *b.billing,
		merchant:  *b.merchant,
		account:   b.account,
		customer:  b.customer,
		status:    StatusSuccess,
	}, nil
}
