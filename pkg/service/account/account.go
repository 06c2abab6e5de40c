// Package account provides the account directory: creating, reading and
// mutating PIN-guarded accounts.
//
// Every mutation runs as one critical section per account: acquire the lock,
// load from the repository, compute the new state with the domain engine,
// persist, release. Transfers lock both accounts in ascending number order.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/pinbank/pkg/domain/account"
	"github.com/amirasaad/pinbank/pkg/lock"
	repo "github.com/amirasaad/pinbank/pkg/repository/account"
	"github.com/shopspring/decimal"
)

// Service coordinates the account repository, the locker and the domain engine.
type Service struct {
	repo   repo.Repository
	locker lock.Locker
	policy account.PinPolicy
	logger *slog.Logger
}

// New creates a Service. A nil logger falls back to slog.Default.
func New(
	repository repo.Repository,
	locker lock.Locker,
	policy account.PinPolicy,
	logger *slog.Logger,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		repo:   repository,
		locker: locker,
		policy: policy,
		logger: logger,
	}
}

// Create opens an account with a zero balance.
func (s *Service) Create(ctx context.Context, ownerName, pin string) (account.Summary, error) {
	logger := s.logger.With("owner", ownerName)
	acct, err := account.New().
		WithOwnerName(ownerName).
		WithPinCode(pin).
		WithPinPolicy(s.policy).
		Build()
	if err != nil {
		logger.Warn("Create failed: domain error", "error", err)
		return account.Summary{}, err
	}
	saved, err := s.repo.Save(ctx, acct)
	if err != nil {
		logger.Error("Create failed: repository error", "error", err)
		return account.Summary{}, err
	}
	logger.Info("Account created", "accountNumber", saved.Number)
	return saved.Summary(), nil
}

// GetByNumber returns the public view of one account.
func (s *Service) GetByNumber(ctx context.Context, number int64) (account.Summary, error) {
	acct, err := s.repo.FindByNumber(ctx, number)
	if err != nil {
		return account.Summary{}, err
	}
	return acct.Summary(), nil
}

// ListAll returns every account in repository order.
func (s *Service) ListAll(ctx context.Context) ([]account.Summary, error) {
	accounts, err := s.repo.GetAll(ctx)
	if err != nil {
		s.logger.Error("ListAll failed", "error", err)
		return nil, err
	}
	summaries := make([]account.Summary, 0, len(accounts))
	for _, a := range accounts {
		summaries = append(summaries, a.Summary())
	}
	return summaries, nil
}

// PerformAction deposits into or withdraws from one account.
func (s *Service) PerformAction(
	ctx context.Context,
	action string,
	amount decimal.Decimal,
	number int64,
	pin string,
) (summary account.Summary, err error) {
	logger := s.logger.With("accountNumber", number, "action", action, "amount", amount.String())
	defer func() {
		if err != nil {
			logger.Warn("PerformAction failed", "error", err)
		} else {
			logger.Info("PerformAction successful", "balance", summary.Balance.String())
		}
	}()

	if !amount.IsPositive() {
		return account.Summary{}, account.ErrAmountMustBePositive
	}
	err = s.withLock(ctx, func() error {
		acct, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if err := account.Authorize(acct, pin); err != nil {
			return err
		}
		parsed, err := account.ParseAction(action)
		if err != nil {
			return err
		}
		next, err := account.Dispatch(acct, parsed, amount)
		if err != nil {
			return err
		}
		saved, err := s.repo.Update(ctx, next)
		if err != nil {
			return err
		}
		summary = saved.Summary()
		return nil
	}, number)
	if err != nil {
		return account.Summary{}, err
	}
	return summary, nil
}

// Transfer moves amount from the sender to the recipient. Only the sender's
// PIN is checked. The returned summaries are sender then recipient.
func (s *Service) Transfer(
	ctx context.Context,
	recipientNumber int64,
	amount decimal.Decimal,
	senderNumber int64,
	pin string,
) (sender, recipient account.Summary, err error) {
	logger := s.logger.With(
		"senderAccountNumber", senderNumber,
		"recipientAccountNumber", recipientNumber,
		"amount", amount.String(),
	)
	defer func() {
		if err != nil {
			logger.Warn("Transfer failed", "error", err)
		} else {
			logger.Info("Transfer successful")
		}
	}()

	if !amount.IsPositive() {
		return account.Summary{}, account.Summary{}, account.ErrAmountMustBePositive
	}
	err = s.withLock(ctx, func() error {
		from, err := s.repo.FindByNumber(ctx, senderNumber)
		if err != nil {
			return err
		}
		to, err := s.repo.FindByNumber(ctx, recipientNumber)
		if err != nil {
			return err
		}
		from, to, err = account.ApplyTransfer(from, to, pin, amount)
		if err != nil {
			return err
		}
		saved, err := s.repo.UpdateMany(ctx, from, to)
		if err != nil {
			return err
		}
		sender, recipient = saved[0].Summary(), saved[1].Summary()
		return nil
	}, senderNumber, recipientNumber)
	if err != nil {
		return account.Summary{}, account.Summary{}, err
	}
	return sender, recipient, nil
}

// Update changes the owner name and/or PIN of an account after checking
// the current PIN.
func (s *Service) Update(
	ctx context.Context,
	number int64,
	pin string,
	changes account.Changes,
) (summary account.Summary, err error) {
	logger := s.logger.With("accountNumber", number)
	err = s.withLock(ctx, func() error {
		acct, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if err := account.Authorize(acct, pin); err != nil {
			return err
		}
		next, err := account.ApplyChanges(acct, changes, s.policy)
		if err != nil {
			return err
		}
		saved, err := s.repo.Update(ctx, next)
		if err != nil {
			return err
		}
		summary = saved.Summary()
		return nil
	}, number)
	if err != nil {
		logger.Warn("Update failed", "error", err)
		return account.Summary{}, err
	}
	logger.Info("Account updated")
	return summary, nil
}

// Close deletes an account. Only accounts with a zero balance can be closed.
func (s *Service) Close(ctx context.Context, number int64, pin string) error {
	logger := s.logger.With("accountNumber", number)
	err := s.withLock(ctx, func() error {
		acct, err := s.repo.FindByNumber(ctx, number)
		if err != nil {
			return err
		}
		if err := account.Authorize(acct, pin); err != nil {
			return err
		}
		if err := account.CanClose(acct); err != nil {
			return err
		}
		return s.repo.Delete(ctx, number)
	}, number)
	if err != nil {
		logger.Warn("Close failed", "error", err)
		return err
	}
	logger.Info("Account closed")
	return nil
}

func (s *Service) withLock(ctx context.Context, fn func() error, keys ...int64) error {
	unlock, err := s.locker.Lock(ctx, keys...)
	if err != nil {
		return err
	}
	defer unlock()
	return fn()
}
