// Package lock provides Locker implementations for a single process and for
// replicas sharing Redis.
package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/amirasaad/pinbank/pkg/domain"
	"github.com/amirasaad/pinbank/pkg/lock"
)

type localEntry struct {
	sem  chan struct{}
	refs int
}

// Local serializes access per key inside one process. Entries are reference
// counted and dropped once no caller holds or waits for them.
type Local struct {
	mu          sync.Mutex
	entries     map[int64]*localEntry
	waitTimeout time.Duration
}

// LocalOption configures a Local locker.
type LocalOption func(*Local)

// WithWaitTimeout bounds how long Lock waits for all keys. Zero waits until
// ctx is done.
func WithWaitTimeout(d time.Duration) LocalOption {
	return func(l *Local) { l.waitTimeout = d }
}

// NewLocal creates an in-process locker.
func NewLocal(opts ...LocalOption) *Local {
	l := &Local{entries: make(map[int64]*localEntry)}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

var _ lock.Locker = (*Local)(nil)

// Lock implements lock.Locker.
func (l *Local) Lock(ctx context.Context, keys ...int64) (func(), error) {
	if l.waitTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, l.waitTimeout)
		defer cancel()
	}
	ordered := lock.OrderedKeys(keys)
	held := make([]int64, 0, len(ordered))
	for _, key := range ordered {
		if err := l.acquire(ctx, key); err != nil {
			l.releaseAll(held)
			return nil, fmt.Errorf("%w: lock account %d: %w", domain.ErrUnavailable, key, err)
		}
		held = append(held, key)
	}
	var once sync.Once
	return func() { once.Do(func() { l.releaseAll(held) }) }, nil
}

func (l *Local) acquire(ctx context.Context, key int64) error {
	l.mu.Lock()
	e, ok := l.entries[key]
	if !ok {
		e = &localEntry{sem: make(chan struct{}, 1)}
		l.entries[key] = e
	}
	e.refs++
	l.mu.Unlock()

	select {
	case e.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		l.drop(key, e)
		return ctx.Err()
	}
}

func (l *Local) releaseAll(keys []int64) {
	for i := len(keys) - 1; i >= 0; i-- {
		l.mu.Lock()
		e := l.entries[keys[i]]
		l.mu.Unlock()
		<-e.sem
		l.drop(keys[i], e)
	}
}

func (l *Local) drop(key int64, e *localEntry) {
	l.mu.Lock()
	defer l.mu.Unlock()
	e.refs--
	if e.refs == 0 {
		delete(l.entries, key)
	}
}

// size reports how many keys are tracked; used by tests.
func (l *Local) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
