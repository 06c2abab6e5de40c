package initializer

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	infralock "github.com/amirasaad/pinbank/infra/lock"
	infrarepo "github.com/amirasaad/pinbank/infra/repository/account"
	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env:   "test",
		Log:   &config.Log{Format: "json", Prefix: "[test]", TimeFormat: "15:04:05"},
		DB:    &config.DB{},
		Store: &config.Store{Driver: config.StoreMemory, MaxNumber: 10, MaxAttempts: 2},
		Lock:  &config.Lock{Driver: config.LockLocal},
		Redis: &config.Redis{URL: "redis://localhost:6379/0"},
		Pin:   &config.Pin{Pattern: `\d{4}`},
	}
}

func TestNewLogger_JSON(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	var buf bytes.Buffer
	logger := newLogger(&buf, &config.Log{Format: "json", Prefix: "[pinbank]"})
	logger.Info("hello", "accountNumber", 42)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.EqualValues(t, 42, entry["accountNumber"])
	assert.Same(t, logger, slog.Default())
}

func TestInitializeDependencies_Memory(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	deps, err := InitializeDependencies(testConfig())
	require.NoError(t, err)
	assert.IsType(t, &infrarepo.MemoryRepository{}, deps.AccountRepository)
	assert.IsType(t, &infralock.Local{}, deps.Locker)
	assert.NoError(t, deps.PinPolicy.Validate("1234"))
	assert.Empty(t, deps.Closers)
}

func TestInitializeDependencies_Errors(t *testing.T) {
	previous := slog.Default()
	t.Cleanup(func() { slog.SetDefault(previous) })

	tests := []struct {
		name   string
		mutate func(*config.App)
	}{
		{name: "bad pin pattern", mutate: func(c *config.App) { c.Pin.Pattern = "[" }},
		{name: "postgres without url", mutate: func(c *config.App) { c.Store.Driver = config.StorePostgres }},
		{name: "unknown store", mutate: func(c *config.App) { c.Store.Driver = "csv" }},
		{name: "unknown lock", mutate: func(c *config.App) { c.Lock.Driver = "zk" }},
		{name: "bad redis url", mutate: func(c *config.App) {
			c.Lock.Driver = config.LockRedis
			c.Redis.URL = "not-a-url"
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			tt.mutate(cfg)
			deps, err := InitializeDependencies(cfg)
			require.Error(t, err)
			assert.Nil(t, deps)
		})
	}
}
