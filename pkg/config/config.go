package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/pinbank/pkg/domain/account"
)

// Store drivers.
const (
	StoreMemory   = "memory"
	StorePostgres = "postgres"
)

// Lock drivers.
const (
	LockLocal = "local"
	LockRedis = "redis"
)

type DB struct {
	Url             string        `envconfig:"URL"`
	MaxOpenConns    int           `envconfig:"MAX_OPEN_CONNS" default:"25"`
	MaxIdleConns    int           `envconfig:"MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"CONN_MAX_LIFETIME" default:"5m"`
	AutoMigrate     bool          `envconfig:"AUTO_MIGRATE" default:"true"`
}

// Store selects where accounts live.
type Store struct {
	Driver      string `envconfig:"DRIVER" default:"memory"`
	MaxNumber   int64  `envconfig:"MAX_NUMBER" default:"9999"`
	MaxAttempts int    `envconfig:"MAX_ATTEMPTS" default:"64"`
}

// Lock selects how concurrent mutations of one account are serialized.
type Lock struct {
	Driver           string        `envconfig:"DRIVER" default:"local"`
	Prefix           string        `envconfig:"PREFIX" default:"pinbank:lock:account:"`
	TTL              time.Duration `envconfig:"TTL" default:"10s"`
	RetryInterval    time.Duration `envconfig:"RETRY_INTERVAL" default:"10ms"`
	MaxRetryInterval time.Duration `envconfig:"MAX_RETRY_INTERVAL" default:"200ms"`
	WaitTimeout      time.Duration `envconfig:"WAIT_TIMEOUT" default:"5s"`
}

type Redis struct {
	URL          string        `envconfig:"URL" default:"redis://localhost:6379/0"`
	PoolSize     int           `envconfig:"POOL_SIZE" default:"10"`
	DialTimeout  time.Duration `envconfig:"DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"READ_TIMEOUT" default:"3s"`
	WriteTimeout time.Duration `envconfig:"WRITE_TIMEOUT" default:"3s"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// Pin holds the PIN format accepted on create and update.
type Pin struct {
	Pattern string `envconfig:"PATTERN" default:"\\d{4}"`
}

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"json"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[pinbank]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type App struct {
	Env       string     `envconfig:"APP_ENV" default:"development"`
	Server    *Server    `envconfig:"SERVER"`
	Log       *Log       `envconfig:"LOG"`
	DB        *DB        `envconfig:"DATABASE"`
	Store     *Store     `envconfig:"STORE"`
	Lock      *Lock      `envconfig:"LOCK"`
	Redis     *Redis     `envconfig:"REDIS"`
	RateLimit *RateLimit `envconfig:"RATE_LIMIT"`
	Pin       *Pin       `envconfig:"PIN"`
}

// Validate reports settings that cannot work together.
func (c *App) Validate() error {
	var errs []error
	switch c.Store.Driver {
	case StoreMemory:
	case StorePostgres:
		if c.DB.Url == "" {
			errs = append(errs, errors.New("DATABASE_URL is required when STORE_DRIVER=postgres"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORE_DRIVER %q", c.Store.Driver))
	}
	switch c.Lock.Driver {
	case LockLocal, LockRedis:
	default:
		errs = append(errs, fmt.Errorf("unknown LOCK_DRIVER %q", c.Lock.Driver))
	}
	if _, err := c.PinPolicy(); err != nil {
		errs = append(errs, fmt.Errorf("PIN_PATTERN: %w", err))
	}
	return errors.Join(errs...)
}

// PinPolicy compiles the configured PIN pattern.
func (c *App) PinPolicy() (account.PinPolicy, error) {
	return account.NewPinPolicy(c.Pin.Pattern)
}
