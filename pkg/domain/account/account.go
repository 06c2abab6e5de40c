package account

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// MaxOwnerNameLength is the longest owner name accepted, counted in characters.
const MaxOwnerNameLength = 50

// Account is a named, PIN-protected balance record identified by a unique number.
//
// Invariants:
//   - Number is assigned by the store and is always positive once saved.
//   - Balance is never negative after a committed operation.
//   - PinCode is never part of any outbound representation (see Summary).
//
// Account is a value: the mutation functions in this package take a copy and
// return a new one, they never retain or modify the caller's value.
type Account struct {
	Number    int64
	OwnerName string
	PinCode   string
	Balance   decimal.Decimal
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Summary is the outbound view of an account.
type Summary struct {
	AccountNumber int64           `json:"account_number"`
	OwnerName     string          `json:"owner_name"`
	Balance       decimal.Decimal `json:"balance"`
}

// Summary returns the outbound view of the account.
func (a Account) Summary() Summary {
	return Summary{
		AccountNumber: a.Number,
		OwnerName:     a.OwnerName,
		Balance:       a.Balance,
	}
}

// Builder provides a fluent API for constructing new Account instances.
type Builder struct {
	ownerName string
	pinCode   string
	policy    PinPolicy
}

// New creates a new Builder using the default PIN policy.
func New() *Builder {
	return &Builder{policy: DefaultPinPolicy()}
}

// WithOwnerName sets the owner name. This is a mandatory field.
func (b *Builder) WithOwnerName(name string) *Builder {
	b.ownerName = name
	return b
}

// WithPinCode sets the PIN. This is a mandatory field.
func (b *Builder) WithPinCode(pin string) *Builder {
	b.pinCode = pin
	return b
}

// WithPinPolicy overrides the policy the PIN is checked against.
func (b *Builder) WithPinPolicy(policy PinPolicy) *Builder {
	b.policy = policy
	return b
}

// Build validates the PIN format and owner name and returns an account with a
// zero balance. The number is left unset; the store assigns it on save.
func (b *Builder) Build() (Account, error) {
	if err := b.policy.Validate(b.pinCode); err != nil {
		return Account{}, err
	}
	if err := ValidateOwnerName(b.ownerName); err != nil {
		return Account{}, err
	}
	return Account{
		OwnerName: b.ownerName,
		PinCode:   b.pinCode,
		Balance:   decimal.Zero,
	}, nil
}

// ValidateOwnerName checks that name is not blank and at most MaxOwnerNameLength characters.
func ValidateOwnerName(name string) error {
	if strings.TrimSpace(name) == "" || utf8.RuneCountInString(name) > MaxOwnerNameLength {
		return ErrInvalidOwnerName
	}
	return nil
}
