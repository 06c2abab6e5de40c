package account

import (
	"context"

	domainaccount "github.com/amirasaad/pinbank/pkg/domain/account"
)

// Repository defines durable keyed storage for account records.
//
// Implementations own the authoritative record and hand out copies; callers
// always load, mutate the copy, then Update.
type Repository interface {
	// Save assigns a fresh unique account number, persists the account and
	// returns it with the number filled in.
	Save(ctx context.Context, acct domainaccount.Account) (domainaccount.Account, error)

	// FindByNumber returns the account or domainaccount.ErrAccountNotFound.
	FindByNumber(ctx context.Context, number int64) (domainaccount.Account, error)

	// GetAll returns every account. Callers must not depend on ordering.
	GetAll(ctx context.Context) ([]domainaccount.Account, error)

	// Update overwrites the whole record keyed by acct.Number.
	// It returns domainaccount.ErrAccountNotFound if the record is missing.
	Update(ctx context.Context, acct domainaccount.Account) (domainaccount.Account, error)

	// UpdateMany overwrites several records atomically: either every record
	// is written or none is. Results come back in argument order.
	UpdateMany(ctx context.Context, accts ...domainaccount.Account) ([]domainaccount.Account, error)

	// Delete removes the record or returns domainaccount.ErrAccountNotFound.
	Delete(ctx context.Context, number int64) error
}
