package models

import "fmt"

// TransactionType is the operation a transaction performs.
type TransactionType string

const (
	Auth   TransactionType = "Auth"
	Refund TransactionType = "Refund"
)

// ParseTransactionType returns the TransactionType for its wire name.
func ParseTransactionType(name string) (TransactionType, error) {
	switch TransactionType(name) {
	case Auth, Refund:
		return TransactionType(name), nil
	}
	return "", fmt.Errorf("%q is not a recognised transaction type", name)
}

func (t TransactionType) String() string {
	return string(t)
}

// Status is the terminal outcome of a transaction.
type Status string

const (
	StatusSuccess Status = "SUCCESS"
	StatusFailed  Status = "FAILED"
)

// Transaction is the fully-assembled, immutable transaction record. Every
// non-optional field is present in any Transaction that exists: the only way
// to obtain one is TransactionBuilder.Build, which refuses to assemble an
// incomplete record. Fields are unexported so nothing mutates a Transaction
// after construction.
type Transaction struct {
	reference    string
	txType       TransactionType
	amount       Amount
	payment      Payment
	billing      Billing
	merchant     Merchant
	account      AcquirerAccount
	customer     *Customer
	status       Status
	statusDetail string
}

// Reference is the unique identifier assigned when the record was built.
func (t Transaction) Reference() string { return t.reference }

func (t Transaction) Type() TransactionType    { return t.txType }
func (t Transaction) Amount() Amount           { return t.amount }
func (t Transaction) Payment() Payment         { return t.payment }
func (t Transaction) Billing() Billing         { return t.billing }
func (t Transaction) Merchant() Merchant       { return t.merchant }
func (t Transaction) Account() AcquirerAccount { return t.account }
func (t Transaction) Status() Status           { return t.status }

// StatusDetail carries the failure explanation for a failed transaction; it
// is empty on success.
func (t Transaction) StatusDetail() string { return t.statusDetail }

// Customer returns a copy of the optional customer details, or nil.
func (t Transaction) Customer() *Customer {
	if t.customer == nil {
		return nil
	}
	c := *t.customer
	return &c
}
