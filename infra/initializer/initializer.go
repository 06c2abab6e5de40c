package initializer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/pinbank/infra"
	infralock "github.com/amirasaad/pinbank/infra/lock"
	infrarepo "github.com/amirasaad/pinbank/infra/repository/account"
	"github.com/amirasaad/pinbank/pkg/app"
	"github.com/amirasaad/pinbank/pkg/config"
	"github.com/amirasaad/pinbank/pkg/lock"
	accountrepo "github.com/amirasaad/pinbank/pkg/repository/account"
	"github.com/redis/go-redis/v9"
)

// InitializeDependencies builds the logger, account store and locker
// selected by cfg.
func InitializeDependencies(cfg *config.App) (deps *app.Deps, err error) {
	logger := setupLogger(cfg.Log)
	deps = &app.Deps{Logger: logger}
	defer func() {
		if err != nil {
			for i := len(deps.Closers) - 1; i >= 0; i-- {
				_ = deps.Closers[i].Close()
			}
			deps = nil
		}
	}()

	deps.PinPolicy, err = cfg.PinPolicy()
	if err != nil {
		return deps, fmt.Errorf("invalid PIN pattern: %w", err)
	}

	deps.AccountRepository, err = newAccountRepository(cfg, deps, logger)
	if err != nil {
		return deps, err
	}

	deps.Locker, err = newLocker(cfg, deps, logger)
	if err != nil {
		return deps, err
	}

	logger.Info("Dependencies initialized",
		"store", cfg.Store.Driver,
		"lock", cfg.Lock.Driver,
		"pin_pattern", deps.PinPolicy.String(),
	)
	return deps, nil
}

func newAccountRepository(cfg *config.App, deps *app.Deps, logger *slog.Logger) (accountrepo.Repository, error) {
	switch cfg.Store.Driver {
	case config.StorePostgres:
		db, err := infra.NewDBConnection(cfg.DB, cfg.Env)
		if err != nil {
			logger.Error("Failed to initialize database", "error", err)
			return nil, err
		}
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		deps.Closers = append(deps.Closers, sqlDB)
		if cfg.DB.AutoMigrate {
			if err := infra.RunMigrations(db, logger); err != nil {
				return nil, fmt.Errorf("failed to migrate database: %w", err)
			}
		}
		return infrarepo.New(db), nil
	case config.StoreMemory:
		logger.Warn("Using in-memory account store; accounts are lost on restart")
		return infrarepo.NewMemory(
			infrarepo.WithNumberSpace(cfg.Store.MaxNumber),
			infrarepo.WithMaxAttempts(cfg.Store.MaxAttempts),
		), nil
	default:
		return nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
	}
}

func newLocker(cfg *config.App, deps *app.Deps, logger *slog.Logger) (lock.Locker, error) {
	switch cfg.Lock.Driver {
	case config.LockRedis:
		client, err := newRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		deps.Closers = append(deps.Closers, client)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.DialTimeout)
		defer cancel()
		if err := client.Ping(ctx).Err(); err != nil {
			return nil, fmt.Errorf("failed to reach redis: %w", err)
		}
		return infralock.NewRedis(client, infralock.RedisOptions{
			Prefix:           cfg.Lock.Prefix,
			TTL:              cfg.Lock.TTL,
			RetryInterval:    cfg.Lock.RetryInterval,
			MaxRetryInterval: cfg.Lock.MaxRetryInterval,
			WaitTimeout:      cfg.Lock.WaitTimeout,
		}, logger), nil
	case config.LockLocal:
		return infralock.NewLocal(infralock.WithWaitTimeout(cfg.Lock.WaitTimeout)), nil
	default:
		return nil, fmt.Errorf("unknown lock driver %q", cfg.Lock.Driver)
	}
}

func newRedisClient(cfg *config.Redis) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid REDIS_URL: %w", err)
	}
	opt.PoolSize = cfg.PoolSize
	opt.DialTimeout = cfg.DialTimeout
	opt.ReadTimeout = cfg.ReadTimeout
	opt.WriteTimeout = cfg.WriteTimeout
	return redis.NewClient(opt), nil
}
