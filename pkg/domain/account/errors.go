package account

import "github.com/amirasaad/pinbank/pkg/domain"

// accountError carries an account-specific message while still matching the
// generic domain kind with errors.Is.
type accountError struct {
	kind error
	msg  string
}

func newError(kind error, msg string) error {
	return &accountError{kind: kind, msg: msg}
}

func (e *accountError) Error() string { return e.msg }

func (e *accountError) Unwrap() error { return e.kind }

var (
	// ErrAccountNotFound is returned when no account has the requested number.
	ErrAccountNotFound = newError(domain.ErrNotFound, "account not found")

	// ErrUnauthorized is returned when the supplied PIN does not match the stored one.
	ErrUnauthorized = newError(domain.ErrUnauthorized, "incorrect PIN")

	// ErrInvalidPin is returned when a PIN does not match the configured format.
	ErrInvalidPin = newError(domain.ErrValidation, "account has incorrect pin")

	// ErrInvalidOwnerName is returned when the owner name is blank or too long.
	ErrInvalidOwnerName = newError(domain.ErrValidation, "owner name must be 1-50 characters and not blank")

	// ErrAmountMustBePositive is returned when an amount is zero or negative.
	ErrAmountMustBePositive = newError(domain.ErrValidation, "amount must be positive")

	// ErrSameAccount is returned when sender and recipient of a transfer are the same account.
	ErrSameAccount = newError(domain.ErrValidation, "cannot transfer to same account")

	// ErrInsufficientFunds is returned when a withdrawal or transfer exceeds the balance.
	ErrInsufficientFunds = newError(domain.ErrConflict, "there is not enough money in the account")

	// ErrUnsupportedAction is returned for an action kind other than deposit or withdraw.
	ErrUnsupportedAction = newError(domain.ErrValidation, "unsupported action with deposit")

	// ErrBalanceNotZero is returned when closing an account that still holds money.
	ErrBalanceNotZero = newError(domain.ErrConflict, "account balance must be zero to close")

	// ErrNumberSpaceExhausted is returned when the store cannot find a free account number.
	ErrNumberSpaceExhausted = newError(domain.ErrUnavailable, "no free account number available")
)
