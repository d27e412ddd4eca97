package lock

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/korven/backend/internal/application/adapter"
)

// LocalLocker serializes per business inside one process.
// It is used when Redis is disabled.
type LocalLocker struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	ch      chan struct{}
	holders int
}

// NewLocalLocker creates an empty LocalLocker.
func NewLocalLocker() *LocalLocker {
	return &LocalLocker{locks: make(map[string]*keyLock)}
}

// WithLock runs fn while no other caller holds scope:businessID.
// It gives up with ctx.Err() if ctx ends while waiting.
func (l *LocalLocker) WithLock(ctx context.Context, scope string, businessID uuid.UUID, fn func(ctx context.Context) error) error {
	key := lockKey(scope, businessID)
	kl := l.acquire(key)
	defer l.release(key, kl)

	select {
	case kl.ch <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	}
	defer func() { <-kl.ch }()

	return fn(ctx)
}

func (l *LocalLocker) acquire(key string) *keyLock {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl, ok := l.locks[key]
	if !ok {
		kl = &keyLock{ch: make(chan struct{}, 1)}
		l.locks[key] = kl
	}
	kl.holders++
	return kl
}

func (l *LocalLocker) release(key string, kl *keyLock) {
	l.mu.Lock()
	defer l.mu.Unlock()

	kl.holders--
	if kl.holders == 0 {
		delete(l.locks, key)
	}
}

var _ adapter.BusinessLocker = (*LocalLocker)(nil)
