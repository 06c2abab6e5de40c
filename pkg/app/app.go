package app

import (
	"errors"
	"io"
	"log/slog"

	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/amirasaad/pinbank/pkg/domain/account"
	"github.com/amirasaad/pinbank/pkg/lock"
	accountrepo "github.com/amirasaad/pinbank/pkg/repository/account"
	accountsvc "github.com/amirasaad/pinbank/pkg/service/account"
)

// Deps contains the infrastructure the services are built from.
type Deps struct {
	AccountRepository accountrepo.Repository
	Locker            lock.Locker
	PinPolicy         account.PinPolicy
	Logger            *slog.Logger
	// Closers are released in reverse order by App.Close.
	Closers []io.Closer
}

type App struct {
	Deps           *Deps
	Config         *config.App
	AccountService *accountsvc.Service
}

func New(deps *Deps, cfg *config.App) *App {
	return &App{
		Deps:   deps,
		Config: cfg,
		AccountService: accountsvc.New(
			deps.AccountRepository,
			deps.Locker,
			deps.PinPolicy,
			deps.Logger,
		),
	}
}

// Close releases database pools and client connections.
func (a *App) Close() error {
	var errs []error
	for i := len(a.Deps.Closers) - 1; i >= 0; i-- {
		if err := a.Deps.Closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
