// Package testutils builds fiber apps and requests for HTTP tests.
package testutils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/amirasaad/pinbank/infra"
	infralock "github.com/amirasaad/pinbank/infra/lock"
	infrarepo "github.com/amirasaad/pinbank/infra/repository/account"
	"github.com/amirasaad/pinbank/pkg/app"
	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/amirasaad/pinbank/pkg/domain/account"
	accountrepo "github.com/amirasaad/pinbank/pkg/repository/account"
	"github.com/amirasaad/pinbank/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// Envelope mirrors common.Response with a typed payload.
type Envelope[T any] struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

// Problem mirrors common.ProblemDetails for decoding.
type Problem struct {
	Type     string            `json:"type"`
	Title    string            `json:"title"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail"`
	Instance string            `json:"instance"`
	Errors   map[string]string `json:"errors"`
}

// NewTestConfig returns the configuration used by HTTP tests.
func NewTestConfig() *config.App {
	return &config.App{
		Env:       "test",
		Server:    &config.Server{Port: 3000},
		Log:       &config.Log{},
		DB:        &config.DB{},
		Store:     &config.Store{Driver: config.StoreMemory},
		Lock:      &config.Lock{Driver: config.LockLocal},
		Redis:     &config.Redis{},
		RateLimit: &config.RateLimit{MaxRequests: 10000, Window: time.Second},
		Pin:       &config.Pin{Pattern: account.DefaultPinPattern},
	}
}

// NewApp wires the HTTP app around repo with an in-process locker.
func NewApp(cfg *config.App, repo accountrepo.Repository) *fiber.App {
	policy, err := cfg.PinPolicy()
	if err != nil {
		panic(err)
	}
	a := app.New(&app.Deps{
		AccountRepository: repo,
		Locker:            infralock.NewLocal(),
		PinPolicy:         policy,
		Logger:            slog.New(slog.DiscardHandler),
	}, cfg)
	return webapi.SetupApp(a)
}

// NewMemoryApp wires the HTTP app around a fresh in-memory store.
func NewMemoryApp(cfg *config.App) *fiber.App {
	return NewApp(cfg, infrarepo.NewMemory())
}

// Credentials returns the headers identifying an account.
func Credentials(number int64, pin string) map[string]string {
	return map[string]string{
		"X-User-Account-Number": strconv.FormatInt(number, 10),
		"X-User-Pin-Code":       pin,
	}
}

// MakeRequest is a helper for making HTTP requests in tests
func MakeRequest(app *fiber.App, method, path, body string, headers map[string]string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		panic(err)
	}
	return resp
}

// Decode reads resp's JSON body into out and closes it.
func Decode(t testing.TB, resp *http.Response, out any) {
	t.Helper()
	defer resp.Body.Close() //nolint: errcheck
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(body, out), "body: %s", body)
}

// E2ETestSuite runs HTTP tests against a real Postgres database using Testcontainers.
type E2ETestSuite struct {
	suite.Suite
	pgContainer *tcpostgres.PostgresContainer
	App         *fiber.App
	Cfg         *config.App
}

// SetupSuite starts Postgres, applies migrations and builds the app.
func (s *E2ETestSuite) SetupSuite() {
	if testing.Short() {
		s.T().Skip("skipping postgres e2e tests in short mode")
	}
	ctx := context.Background()

	pg, err := tcpostgres.Run(
		ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).WithStartupTimeout(30*time.Second),
		),
	)
	s.Require().NoError(err)
	s.pgContainer = pg

	dsn, err := pg.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	s.Cfg = NewTestConfig()
	s.Cfg.Store.Driver = config.StorePostgres
	s.Cfg.DB = &config.DB{Url: dsn, MaxOpenConns: 10, MaxIdleConns: 2, ConnMaxLifetime: time.Minute}

	db, err := infra.NewDBConnection(s.Cfg.DB, s.Cfg.Env)
	s.Require().NoError(err)
	s.Require().NoError(infra.RunMigrations(db, slog.New(slog.DiscardHandler)))

	s.App = NewApp(s.Cfg, infrarepo.New(db))
}

// TearDownSuite cleans up the test suite resources
func (s *E2ETestSuite) TearDownSuite() {
	if s.pgContainer != nil {
		_ = s.pgContainer.Terminate(context.Background())
	}
}

// MakeRequest sends a request to the suite's app.
func (s *E2ETestSuite) MakeRequest(method, path, body string, headers map[string]string) *http.Response {
	return MakeRequest(s.App, method, path, body, headers)
}
