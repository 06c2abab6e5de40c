package lock

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/amirasaad/pinbank/pkg/domain"
	"github.com/amirasaad/pinbank/pkg/lock"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultPrefix        = "pinbank:lock:account:"
	defaultTTL           = 10 * time.Second
	defaultRetryInterval = 10 * time.Millisecond
	defaultMaxRetry      = 200 * time.Millisecond
	releaseTimeout       = 2 * time.Second
)

// releaseScript deletes the key only while it still carries our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// RedisOptions tunes the Redis locker. Zero values fall back to defaults.
type RedisOptions struct {
	Prefix           string
	TTL              time.Duration
	RetryInterval    time.Duration
	MaxRetryInterval time.Duration
	// WaitTimeout bounds how long Lock waits for all keys; zero waits until
	// ctx is done.
	WaitTimeout time.Duration
}

// Redis is a Locker shared by every replica connected to the same Redis.
type Redis struct {
	client redis.UniversalClient
	opts   RedisOptions
	logger *slog.Logger
}

// NewRedis creates a Redis-backed locker.
func NewRedis(client redis.UniversalClient, opts RedisOptions, logger *slog.Logger) *Redis {
	if opts.Prefix == "" {
		opts.Prefix = defaultPrefix
	}
	if opts.TTL <= 0 {
		opts.TTL = defaultTTL
	}
	if opts.RetryInterval <= 0 {
		opts.RetryInterval = defaultRetryInterval
	}
	if opts.MaxRetryInterval < opts.RetryInterval {
		opts.MaxRetryInterval = max(defaultMaxRetry, opts.RetryInterval)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Redis{client: client, opts: opts, logger: logger}
}

var _ lock.Locker = (*Redis)(nil)

type heldKey struct {
	key   string
	token string
}

// Lock implements lock.Locker.
func (r *Redis) Lock(ctx context.Context, keys ...int64) (func(), error) {
	if r.opts.WaitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.opts.WaitTimeout)
		defer cancel()
	}
	ordered := lock.OrderedKeys(keys)
	held := make([]heldKey, 0, len(ordered))
	for _, number := range ordered {
		h := heldKey{key: r.key(number), token: uuid.NewString()}
		if err := r.acquire(ctx, h); err != nil {
			r.releaseAll(held)
			return nil, fmt.Errorf("%w: lock account %d: %w", domain.ErrUnavailable, number, err)
		}
		held = append(held, h)
	}
	var once sync.Once
	return func() { once.Do(func() { r.releaseAll(held) }) }, nil
}

func (r *Redis) key(number int64) string {
	return r.opts.Prefix + strconv.FormatInt(number, 10)
}

func (r *Redis) acquire(ctx context.Context, h heldKey) error {
	wait := r.opts.RetryInterval
	for {
		ok, err := r.client.SetNX(ctx, h.key, h.token, r.opts.TTL).Result()
		if err != nil {
			return err
		}
		if ok {
			return nil
		}
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait = min(wait*2, r.opts.MaxRetryInterval)
	}
}

// releaseAll runs on its own deadline so a cancelled request still frees
// its keys.
func (r *Redis) releaseAll(held []heldKey) {
	ctx, cancel := context.WithTimeout(context.Background(), releaseTimeout)
	defer cancel()
	for i := len(held) - 1; i >= 0; i-- {
		h := held[i]
		n, err := releaseScript.Run(ctx, r.client, []string{h.key}, h.token).Int()
		if err != nil {
			r.logger.Error("Redis lock release failed", "key", h.key, "error", err)
			continue
		}
		if n == 0 {
			r.logger.Warn("Redis lock expired before release", "key", h.key, "ttl", r.opts.TTL)
		}
	}
}
