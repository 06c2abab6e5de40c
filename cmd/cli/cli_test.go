package main

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"

	infralock "github.com/amirasaad/pinbank/infra/lock"
	infrarepo "github.com/amirasaad/pinbank/infra/repository/account"
	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/amirasaad/pinbank/pkg/domain/account"
	accountsvc "github.com/amirasaad/pinbank/pkg/service/account"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func newTestCLI(pins string) (*cli, *bytes.Buffer) {
	svc := accountsvc.New(
		infrarepo.NewMemory(),
		infralock.NewLocal(),
		account.DefaultPinPolicy(),
		slog.New(slog.DiscardHandler),
	)
	out := &bytes.Buffer{}
	return &cli{svc: svc, out: out, readPin: lineReader(strings.NewReader(pins))}, out
}

func createdNumber(t *testing.T, c *cli, out *bytes.Buffer, owner string) string {
	t.Helper()
	out.Reset()
	require.NoError(t, c.run(context.Background(), []string{"create", owner}))
	line := out.String()
	require.Contains(t, line, "Account created: number=")
	fields := strings.Fields(line)
	return strings.TrimPrefix(fields[2], "number=")
}

func TestCLI_Flow(t *testing.T) {
	ctx := context.Background()
	c, out := newTestCLI("1234\n4321\n1234\n1234\n1234\n")

	ann := createdNumber(t, c, out, "Ann")
	bob := createdNumber(t, c, out, "Bob")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"deposit", ann, "50"}))
	assert.Contains(t, out.String(), "Deposit done.")
	assert.Contains(t, out.String(), "balance=50.00")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"withdraw", ann, "10.5"}))
	assert.Contains(t, out.String(), "balance=39.50")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"transfer", ann, bob, "9.5"}))
	assert.Contains(t, out.String(), "Transfer done.")
	assert.Contains(t, out.String(), "#"+ann+" Ann balance=30.00")
	assert.Contains(t, out.String(), "#"+bob+" Bob balance=9.50")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"list"}))
	assert.Equal(t, 2, strings.Count(out.String(), "balance="))

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"get", bob}))
	assert.Contains(t, out.String(), "Bob balance=9.50")
}

func TestCLI_WrongPin(t *testing.T) {
	c, out := newTestCLI("1234\n0000\n")
	ann := createdNumber(t, c, out, "Ann")

	err := c.run(context.Background(), []string{"deposit", ann, "5"})
	require.ErrorIs(t, err, account.ErrUnauthorized)
}

func TestCLI_Close(t *testing.T) {
	c, out := newTestCLI("1234\n1234\n")
	ann := createdNumber(t, c, out, "Ann")

	out.Reset()
	require.NoError(t, c.run(context.Background(), []string{"close", ann}))
	assert.Contains(t, out.String(), "closed")

	err := c.run(context.Background(), []string{"get", ann})
	require.ErrorIs(t, err, account.ErrAccountNotFound)
}

func TestCLI_Update(t *testing.T) {
	ctx := context.Background()
	c, out := newTestCLI("1234\n1234\n5678\n5678\n\n1234\n")
	ann := createdNumber(t, c, out, "Ann")

	out.Reset()
	require.NoError(t, c.run(ctx, []string{"update", ann, "Annie"}))
	assert.Contains(t, out.String(), "Account updated. #"+ann+" Annie balance=0.00")

	err := c.run(ctx, []string{"update", ann})
	require.ErrorIs(t, err, errUsage)

	err = c.run(ctx, []string{"deposit", ann, "5"})
	require.ErrorIs(t, err, account.ErrUnauthorized, "the old PIN must stop working")
}

func TestRequirePersistentStore(t *testing.T) {
	cfg := &config.App{Store: &config.Store{Driver: config.StoreMemory}}
	require.ErrorIs(t, requirePersistentStore(cfg), errMemoryStore)

	cfg.Store.Driver = config.StorePostgres
	require.NoError(t, requirePersistentStore(cfg))
}

func TestCLI_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"unknown command", []string{"balance"}},
		{"missing owner", []string{"create"}},
		{"bad number", []string{"get", "abc"}},
		{"bad amount", []string{"deposit", "1", "ten"}},
		{"missing transfer args", []string{"transfer", "1", "2"}},
		{"missing update number", []string{"update"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newTestCLI("")
			err := c.run(context.Background(), tt.args)
			require.ErrorIs(t, err, errUsage)
		})
	}
}

func TestCLI_EmptyList(t *testing.T) {
	c, out := newTestCLI("")
	require.NoError(t, c.run(context.Background(), []string{"list"}))
	assert.Equal(t, "No accounts\n", out.String())
}

func TestLineReader(t *testing.T) {
	read := lineReader(strings.NewReader("1234\r\n5678"))
	pin, err := read("")
	require.NoError(t, err)
	assert.Equal(t, "1234", pin)
	pin, err = read("")
	require.NoError(t, err)
	assert.Equal(t, "5678", pin)
	_, err = read("")
	require.Error(t, err)
}
