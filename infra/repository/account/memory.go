package account

import (
	"context"
	"math/rand/v2"
	"sort"
	"sync"
	"time"

	domainaccount "github.com/amirasaad/pinbank/pkg/domain/account"
	repo "github.com/amirasaad/pinbank/pkg/repository/account"
)

const (
	// DefaultMaxNumber is the largest number handed out by the memory store.
	DefaultMaxNumber = 9999
	// DefaultMaxAttempts bounds the random probes before falling back to a scan.
	DefaultMaxAttempts = 64
)

// MemoryOption configures a MemoryRepository.
type MemoryOption func(*MemoryRepository)

// WithNumberSpace sets the highest assignable account number.
func WithNumberSpace(maxNumber int64) MemoryOption {
	return func(r *MemoryRepository) {
		if maxNumber > 0 {
			r.maxNumber = maxNumber
		}
	}
}

// WithMaxAttempts sets how many random candidates are tried per Save.
func WithMaxAttempts(n int) MemoryOption {
	return func(r *MemoryRepository) {
		if n > 0 {
			r.maxAttempts = n
		}
	}
}

// WithRandom replaces the candidate generator; it must return a value in [0, n).
func WithRandom(fn func(n int64) int64) MemoryOption {
	return func(r *MemoryRepository) {
		if fn != nil {
			r.randN = fn
		}
	}
}

// MemoryRepository keeps accounts in a process-local map.
type MemoryRepository struct {
	mu          sync.RWMutex
	accounts    map[int64]domainaccount.Account
	maxNumber   int64
	maxAttempts int
	randN       func(n int64) int64
	now         func() time.Time
}

// NewMemory creates an empty in-memory account repository.
func NewMemory(opts ...MemoryOption) *MemoryRepository {
	r := &MemoryRepository{
		accounts:    make(map[int64]domainaccount.Account),
		maxNumber:   DefaultMaxNumber,
		maxAttempts: DefaultMaxAttempts,
		randN:       rand.Int64N,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ repo.Repository = (*MemoryRepository)(nil)

// Save implements account.Repository.
func (r *MemoryRepository) Save(_ context.Context, acct domainaccount.Account) (domainaccount.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	number, err := r.nextNumber()
	if err != nil {
		return domainaccount.Account{}, err
	}
	now := r.now().UTC()
	acct.Number = number
	acct.CreatedAt = now
	acct.UpdatedAt = now
	r.accounts[number] = acct
	return acct, nil
}

// nextNumber picks a random unused number, then scans once the probes run out.
// Must be called with r.mu held.
func (r *MemoryRepository) nextNumber() (int64, error) {
	if int64(len(r.accounts)) >= r.maxNumber {
		return 0, domainaccount.ErrNumberSpaceExhausted
	}
	for range r.maxAttempts {
		candidate := r.randN(r.maxNumber) + 1
		if _, taken := r.accounts[candidate]; !taken {
			return candidate, nil
		}
	}
	for candidate := int64(1); candidate <= r.maxNumber; candidate++ {
		if _, taken := r.accounts[candidate]; !taken {
			return candidate, nil
		}
	}
	return 0, domainaccount.ErrNumberSpaceExhausted
}

// FindByNumber implements account.Repository.
func (r *MemoryRepository) FindByNumber(_ context.Context, number int64) (domainaccount.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	acct, ok := r.accounts[number]
	if !ok {
		return domainaccount.Account{}, domainaccount.ErrAccountNotFound
	}
	return acct, nil
}

// GetAll implements account.Repository. Accounts are returned by ascending number.
func (r *MemoryRepository) GetAll(_ context.Context) ([]domainaccount.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]domainaccount.Account, 0, len(r.accounts))
	for _, acct := range r.accounts {
		result = append(result, acct)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Number < result[j].Number })
	return result, nil
}

// Update implements account.Repository.
func (r *MemoryRepository) Update(_ context.Context, acct domainaccount.Account) (domainaccount.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.accounts[acct.Number]
	if !ok {
		return domainaccount.Account{}, domainaccount.ErrAccountNotFound
	}
	acct.CreatedAt = existing.CreatedAt
	acct.UpdatedAt = r.now().UTC()
	r.accounts[acct.Number] = acct
	return acct, nil
}

// UpdateMany implements account.Repository.
func (r *MemoryRepository) UpdateMany(
	_ context.Context,
	accts ...domainaccount.Account,
) ([]domainaccount.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, acct := range accts {
		if _, ok := r.accounts[acct.Number]; !ok {
			return nil, domainaccount.ErrAccountNotFound
		}
	}
	now := r.now().UTC()
	result := make([]domainaccount.Account, 0, len(accts))
	for _, acct := range accts {
		acct.CreatedAt = r.accounts[acct.Number].CreatedAt
		acct.UpdatedAt = now
		r.accounts[acct.Number] = acct
		result = append(result, acct)
	}
	return result, nil
}

// Delete implements account.Repository.
func (r *MemoryRepository) Delete(_ context.Context, number int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[number]; !ok {
		return domainaccount.ErrAccountNotFound
	}
	delete(r.accounts, number)
	return nil
}
