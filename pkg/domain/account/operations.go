package account

import (
	"crypto/subtle"

	"github.com/shopspring/decimal"
)

// Action is the kind of single-account balance operation.
type Action string

const (
	ActionDeposit  Action = "deposit"
	ActionWithdraw Action = "withdraw"
)

// ParseAction maps an action name to an Action. Matching is exact.
func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionDeposit, ActionWithdraw:
		return Action(s), nil
	default:
		return "", ErrUnsupportedAction
	}
}

// Authorize returns ErrUnauthorized unless suppliedPin equals the stored PIN exactly.
func Authorize(a Account, suppliedPin string) error {
	if subtle.ConstantTimeCompare([]byte(a.PinCode), []byte(suppliedPin)) != 1 {
		return ErrUnauthorized
	}
	return nil
}

// ApplyDeposit returns a copy of a with amount added to the balance.
// The caller guarantees amount is positive.
func ApplyDeposit(a Account, amount decimal.Decimal) Account {
	a.Balance = a.Balance.Add(amount)
	return a
}

// ApplyWithdrawal returns a copy of a with amount taken from the balance.
// Withdrawing exactly the full balance is allowed.
func ApplyWithdrawal(a Account, amount decimal.Decimal) (Account, error) {
	if amount.GreaterThan(a.Balance) {
		return a, ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	return a, nil
}

// Dispatch applies action to a. Authorization is the caller's job.
func Dispatch(a Account, action Action, amount decimal.Decimal) (Account, error) {
	switch action {
	case ActionDeposit:
		return ApplyDeposit(a, amount), nil
	case ActionWithdraw:
		return ApplyWithdrawal(a, amount)
	default:
		return a, ErrUnsupportedAction
	}
}

// ApplyTransfer moves amount from sender to recipient.
//
// Checks run in order: distinct accounts, sender PIN, sender funds. The
// recipient PIN is never checked. When any check fails both accounts are
// returned unchanged along with the error.
func ApplyTransfer(sender, recipient Account, senderPin string, amount decimal.Decimal) (Account, Account, error) {
	if sender.Number == recipient.Number {
		return sender, recipient, ErrSameAccount
	}
	if err := Authorize(sender, senderPin); err != nil {
		return sender, recipient, err
	}
	debited, err := ApplyWithdrawal(sender, amount)
	if err != nil {
		return sender, recipient, err
	}
	return debited, ApplyDeposit(recipient, amount), nil
}

// Changes holds optional edits to an account's owner name and PIN.
type Changes struct {
	OwnerName *string
	PinCode   *string
}

// ApplyChanges returns a copy of a with the given changes, validating each one.
func ApplyChanges(a Account, changes Changes, policy PinPolicy) (Account, error) {
	updated := a
	if changes.OwnerName != nil {
		if err := ValidateOwnerName(*changes.OwnerName); err != nil {
			return a, err
		}
		updated.OwnerName = *changes.OwnerName
	}
	if changes.PinCode != nil {
		if err := policy.Validate(*changes.PinCode); err != nil {
			return a, err
		}
		updated.PinCode = *changes.PinCode
	}
	return updated, nil
}

// CanClose returns ErrBalanceNotZero unless the balance is exactly zero.
func CanClose(a Account) error {
	if !a.Balance.IsZero() {
		return ErrBalanceNotZero
	}
	return nil
}
