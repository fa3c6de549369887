package gateway

import (
	"context"
	"database/sql"
	"errors"

	"github.com/fetidd/gateway/gateway/models"
	"github.com/jackc/pgconn"
	"github.com/lib/pq"
)

// Repository resolves merchants, routes and acquirer accounts, and records
// completed transactions. With a nil db it runs against in-memory tables,
// which is how the end-to-end tests exercise the full pipeline; otherwise it
// issues the same lookups against Postgres through the shared pool handle.
type Repository struct {
	db *sql.DB

	merchants map[string]models.Merchant
	routes    []route
	bankOne   map[int]models.BankOneAccount
	bankTwo   map[int]models.BankTwoAccount
	stored    []models.Transaction
}

type route struct {
	scheme     string
	currency   models.Currency
	merchantID string
	acquirer   string
	accountID  int
}

// NewRepository constructs the in-memory backend.
func NewRepository() *Repository {
	return &Repository{
		merchants: make(map[string]models.Merchant),
		bankOne:   make(map[int]models.BankOneAccount),
		bankTwo:   make(map[int]models.BankTwoAccount),
	}
}

// NewPGRepository constructs the Postgres-backed repository over a shared
// connection pool.
func NewPGRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Ping reports backing-store readiness.
func (r *Repository) Ping(ctx context.Context) error {
	if r.db == nil {
		return nil
	}
	return r.db.PingContext(ctx)
}

// AddMerchant seeds a merchant row in the in-memory backend.
func (r *Repository) AddMerchant(m models.Merchant) {
	r.merchants[m.MerchantID] = m
}

// AddRoute seeds a routing row in the in-memory backend.
func (r *Repository) AddRoute(scheme models.CardScheme, currency models.Currency, merchantID, acquirer string, accountID int) {
	r.routes = append(r.routes, route{
		scheme:     scheme.String(),
		currency:   currency,
		merchantID: merchantID,
		acquirer:   acquirer,
		accountID:  accountID,
	})
}

// AddBankOneAccount seeds a bankone account row in the in-memory backend.
func (r *Repository) AddBankOneAccount(id int, account models.BankOneAccount) {
	r.bankOne[id] = account
}

// AddBankTwoAccount seeds a banktwo account row in the in-memory backend.
func (r *Repository) AddBankTwoAccount(id int, account models.BankTwoAccount) {
	r.bankTwo[id] = account
}

// LoadMerchant fetches and normalizes the merchant profile. A missing row is
// a Resource error; anything else from the database is Fatal.
func (r *Repository) LoadMerchant(ctx context.Context, merchantID string) (models.Merchant, *Error) {
	if r.db == nil {
		merchant, ok := r.merchants[merchantID]
		if !ok {
			return models.Merchant{}, Resourcef("merchant %s does not exist", merchantID)
		}
		merchant.Normalize()
		return merchant, nil
	}

	row := r.db.QueryRowContext(ctx, `
        SELECT id, name, premise, street, city, postcode, county, country
          FROM merchant WHERE id = $1
    `, merchantID)
	var merchant models.Merchant
	var country string
	err := row.Scan(
		&merchant.MerchantID, &merchant.Name, &merchant.Premise, &merchant.Street,
		&merchant.City, &merchant.Postcode, &merchant.County, &country,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Merchant{}, Resourcef("merchant %s does not exist", merchantID)
	}
	if err != nil {
		return models.Merchant{}, Fatalf("loading merchant %s: %s", merchantID, err)
	}
	merchant.Country, err = models.ParseCountry(country)
	if err != nil {
		// A bad country column is a schema/data inconsistency, not caller input.
		return models.Merchant{}, Fatalf("merchant %s: %s", merchantID, err)
	}
	merchant.Normalize()
	return merchant, nil
}

// SelectAccount resolves the acquirer account a (merchant, scheme, currency)
// combination settles through. The lookup is deliberately two queries: the
// routing row's acquirer name decides which acquirer-specific table, with its
// own column set, holds the full record.
func (r *Repository) SelectAccount(ctx context.Context, merchantID string, payment models.Payment, currency models.Currency) (models.AcquirerAccount, *Error) {
	var scheme models.CardScheme
	switch payment.Kind() {
	case models.PaymentCard:
		scheme = payment.Scheme()
	default:
		// Bank-account rails have no routing table yet; refuse loudly rather
		// than guess an acquirer.
		return nil, Validation("account payments are not routable")
	}

	acquirer, accountID, gerr := r.selectRoute(ctx, merchantID, scheme, currency)
	if gerr != nil {
		return nil, gerr
	}
	return r.loadAccount(ctx, acquirer, accountID)
}

func (r *Repository) selectRoute(ctx context.Context, merchantID string, scheme models.CardScheme, currency models.Currency) (string, int, *Error) {
	if r.db == nil {
		found := false
		var best route
		for _, rt := range r.routes {
			if rt.scheme != scheme.String() || rt.currency != currency || rt.merchantID != merchantID {
				continue
			}
			if !found || rt.accountID < best.accountID {
				best = rt
				found = true
			}
		}
		if !found {
			return "", 0, Resource("no account found")
		}
		return best.acquirer, best.accountID, nil
	}

	// Ties are broken by the lowest account id so repeated requests route
	// identically even when the table holds more than one legal match.
	row := r.db.QueryRowContext(ctx, `
        SELECT DISTINCT acquirer, account_id FROM paymentroute
         WHERE scheme = $1 AND currency = $2 AND merchant_id = $3
         ORDER BY account_id LIMIT 1
    `, scheme.String(), currency.String(), merchantID)
	var acquirer string
	var accountID int
	err := row.Scan(&acquirer, &accountID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, Resource("no account found")
	}
	if err != nil {
		return "", 0, Fatalf("selecting route for merchant %s: %s", merchantID, err)
	}
	return acquirer, accountID, nil
}

// loadAccount dispatches on the acquirer name from the routing row. The set
// of acquirers is closed; an unrecognised name means the routing table and
// the account tables disagree, which nothing at this layer can repair.
func (r *Repository) loadAccount(ctx context.Context, acquirer string, accountID int) (models.AcquirerAccount, *Error) {
	switch acquirer {
	case "bankone":
		return r.loadBankOne(ctx, accountID)
	case "banktwo":
		return r.loadBankTwo(ctx, accountID)
	default:
		return nil, Fatalf("unrecognised acquirer %q in routing table", acquirer)
	}
}

func (r *Repository) loadBankOne(ctx context.Context, accountID int) (models.AcquirerAccount, *Error) {
	if r.db == nil {
		account, ok := r.bankOne[accountID]
		if !ok {
			return nil, Resource("no account found")
		}
		return account, nil
	}
	row := r.db.QueryRowContext(ctx, `SELECT merchant_identification_value FROM account_bankone WHERE id = $1`, accountID)
	var account models.BankOneAccount
	if err := row.Scan(&account.MerchantIdentificationValue); err != nil {
		return nil, accountLoadError("bankone", accountID, err)
	}
	return account, nil
}

func (r *Repository) loadBankTwo(ctx context.Context, accountID int) (models.AcquirerAccount, *Error) {
	if r.db == nil {
		account, ok := r.bankTwo[accountID]
		if !ok {
			return nil, Resource("no account found")
		}
		return account, nil
	}
	row := r.db.QueryRowContext(ctx, `SELECT merchant_reference FROM account_banktwo WHERE id = $1`, accountID)
	var account models.BankTwoAccount
	if err := row.Scan(&account.MerchantReference); err != nil {
		return nil, accountLoadError("banktwo", accountID, err)
	}
	return account, nil
}

func accountLoadError(acquirer string, accountID int, err error) *Error {
	if errors.Is(err, sql.ErrNoRows) {
		return Resource("no account found")
	}
	return Fatalf("loading %s account %d: %s", acquirer, accountID, err)
}

// CreateTransaction records the completed transaction. The reference was
// assigned at build time; a duplicate means reference generation is broken,
// which is Fatal.
func (r *Repository) CreateTransaction(ctx context.Context, trx models.Transaction) *Error {
	if r.db == nil {
		r.stored = append(r.stored, trx)
		return nil
	}
	_, err := r.db.ExecContext(ctx, `
        INSERT INTO gateway_transaction (reference, type, amount, currency, merchant_id, acquirer, status)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
    `,
		trx.Reference(), trx.Type().String(), int64(trx.Amount().Value()),
		trx.Amount().Currency().String(), trx.Merchant().MerchantID,
		trx.Account().Acquirer(), string(trx.Status()),
	)
	if isUniqueViolation(err) {
		return Fatalf("duplicate transaction reference %s", trx.Reference())
	}
	if err != nil {
		return Fatalf("storing transaction %s: %s", trx.Reference(), err)
	}
	return nil
}

// StoredTransactions returns the transactions recorded by the in-memory
// backend, for tests.
func (r *Repository) StoredTransactions() []models.Transaction {
	return r.stored
}

func isUniqueViolation(err error) bool {
	var pqe *pq.Error
	if errors.As(err, &pqe) && pqe.Code == "23505" {
		return true
	}
	var pge *pgconn.PgError
	if errors.As(err, &pge) && pge.Code == "23505" {
		return true
	}
	return false
}
