package models

// AcquirerAccount is the closed union of acquirer-specific settlement account
// shapes. Each acquirer keeps a different column set, so each gets its own
// concrete type; the unexported marker method keeps the set closed to this
// package.
type AcquirerAccount interface {
	// Acquirer names the owning acquirer as it appears in the routing table.
	Acquirer() string

	acquirerAccount()
}

// BankOneAccount is the settlement account shape used by the bankone acquirer.
type BankOneAccount struct {
	MerchantIdentificationValue string
}

func (BankOneAccount) Acquirer() string { return "bankone" }
func (BankOneAccount) acquirerAccount() {}

// BankTwoAccount is the settlement account shape used by the banktwo acquirer.
type BankTwoAccount struct {
	MerchantReference string
}

func (BankTwoAccount) Acquirer() string { return "banktwo" }
func (BankTwoAccount) acquirerAccount() {}
