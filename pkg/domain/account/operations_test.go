package account_test

import (
	"testing"

	domainaccount "github.com/amirasaad/pinbank/pkg/domain/account"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestAuthorize(t *testing.T) {
	t.Parallel()
	acc := withBalance(t, "0")

	require.NoError(t, domainaccount.Authorize(acc, "1234"))
	for _, pin := range []string{"1235", "", "12345", " 1234", "123"} {
		assert.ErrorIs(t, domainaccount.Authorize(acc, pin), domainaccount.ErrUnauthorized, "pin %q", pin)
	}
}

func TestApplyDeposit(t *testing.T) {
	t.Parallel()
	acc := withBalance(t, "0")

	updated := domainaccount.ApplyDeposit(acc, dec("12.00"))
	assert.True(t, updated.Balance.Equal(dec("12")))
	assert.True(t, acc.Balance.IsZero(), "input account must not change")
}

func TestApplyDeposit_KeepsPrecision(t *testing.T) {
	t.Parallel()
	acc := withBalance(t, "0.1")

	updated := domainaccount.ApplyDeposit(acc, dec("0.2"))
	assert.Equal(t, "0.3", updated.Balance.String())
}

func TestApplyWithdrawal(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
		wantErr error
	}{
		{name: "partial", balance: "12.00", amount: "6.00", want: "6"},
		{name: "exact balance", balance: "12.00", amount: "12.00", want: "0"},
		{name: "one cent over", balance: "12.00", amount: "12.01", want: "12", wantErr: domainaccount.ErrInsufficientFunds},
		{name: "empty account", balance: "0.00", amount: "120.00", want: "0", wantErr: domainaccount.ErrInsufficientFunds},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			acc := withBalance(t, tt.balance)
			got, err := domainaccount.ApplyWithdrawal(acc, dec(tt.amount))
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.True(t, got.Balance.Equal(dec(tt.want)), "balance %s, want %s", got.Balance, tt.want)
			assert.False(t, got.Balance.IsNegative())
		})
	}
}

func TestParseAction(t *testing.T) {
	t.Parallel()
	a, err := domainaccount.ParseAction("deposit")
	require.NoError(t, err)
	assert.Equal(t, domainaccount.ActionDeposit, a)

	a, err = domainaccount.ParseAction("withdraw")
	require.NoError(t, err)
	assert.Equal(t, domainaccount.ActionWithdraw, a)

	for _, s := range []string{"loan", "Deposit", "put", ""} {
		_, err = domainaccount.ParseAction(s)
		assert.ErrorIs(t, err, domainaccount.ErrUnsupportedAction, "action %q", s)
	}
}

func TestDispatch(t *testing.T) {
	t.Parallel()
	acc := withBalance(t, "10")

	got, err := domainaccount.Dispatch(acc, domainaccount.ActionDeposit, dec("5"))
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("15")))

	got, err = domainaccount.Dispatch(acc, domainaccount.ActionWithdraw, dec("4"))
	require.NoError(t, err)
	assert.True(t, got.Balance.Equal(dec("6")))

	got, err = domainaccount.Dispatch(acc, domainaccount.Action("loan"), dec("4"))
	require.ErrorIs(t, err, domainaccount.ErrUnsupportedAction)
	assert.True(t, got.Balance.Equal(dec("10")))
}

func TestApplyTransfer(t *testing.T) {
	t.Parallel()
	sender := withBalance(t, "12.00")
	recipient := withBalance(t, "3.50")
	recipient.Number = 7
	recipient.PinCode = "9999"

	s, r, err := domainaccount.ApplyTransfer(sender, recipient, "1234", dec("12.00"))
	require.NoError(t, err)
	assert.True(t, s.Balance.IsZero())
	assert.True(t, r.Balance.Equal(dec("15.50")))
	assert.True(t, s.Balance.Add(r.Balance).Equal(sender.Balance.Add(recipient.Balance)), "money must be conserved")
}

func TestApplyTransfer_Failures(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		pin     string
		amount  string
		same    bool
		wantErr error
	}{
		{name: "wrong sender pin", pin: "0000", amount: "1", wantErr: domainaccount.ErrUnauthorized},
		{name: "recipient pin is not accepted", pin: "9999", amount: "1", wantErr: domainaccount.ErrUnauthorized},
		{name: "insufficient funds", pin: "1234", amount: "12.01", wantErr: domainaccount.ErrInsufficientFunds},
		{name: "same account", pin: "1234", amount: "1", same: true, wantErr: domainaccount.ErrSameAccount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sender := withBalance(t, "12.00")
			recipient := withBalance(t, "3.50")
			recipient.PinCode = "9999"
			if !tt.same {
				recipient.Number = 7
			}

			s, r, err := domainaccount.ApplyTransfer(sender, recipient, tt.pin, dec(tt.amount))
			require.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, sender, s, "sender must be untouched")
			assert.Equal(t, recipient, r, "recipient must be untouched")
		})
	}
}

func TestApplyChanges(t *testing.T) {
	t.Parallel()
	policy := domainaccount.DefaultPinPolicy()
	acc := withBalance(t, "5")

	name := "Bob"
	pin := "4321"
	got, err := domainaccount.ApplyChanges(acc, domainaccount.Changes{OwnerName: &name, PinCode: &pin}, policy)
	require.NoError(t, err)
	assert.Equal(t, "Bob", got.OwnerName)
	assert.Equal(t, "4321", got.PinCode)
	assert.True(t, got.Balance.Equal(acc.Balance))

	badPin := "12"
	got, err = domainaccount.ApplyChanges(acc, domainaccount.Changes{OwnerName: &name, PinCode: &badPin}, policy)
	require.ErrorIs(t, err, domainaccount.ErrInvalidPin)
	assert.Equal(t, acc, got, "failed change must not partially apply")

	blank := " "
	_, err = domainaccount.ApplyChanges(acc, domainaccount.Changes{OwnerName: &blank}, policy)
	assert.ErrorIs(t, err, domainaccount.ErrInvalidOwnerName)
}

func TestCanClose(t *testing.T) {
	t.Parallel()
	require.NoError(t, domainaccount.CanClose(withBalance(t, "0.00")))
	assert.ErrorIs(t, domainaccount.CanClose(withBalance(t, "0.01")), domainaccount.ErrBalanceNotZero)
}
