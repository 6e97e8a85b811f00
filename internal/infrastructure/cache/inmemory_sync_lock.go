package cache

import (
	"context"
	"sync"
	"time"

	syncapp "github.com/comunidad/backend/internal/application/sync"
)

// InMemorySyncLock implements the reconciliation run lock with a mutex.
// This is suitable for single-instance deployments and testing.
type InMemorySyncLock struct {
	mu        sync.Mutex
	held      bool
	expiresAt time.Time
	ttl       time.Duration
}

// NewInMemorySyncLock creates a new in-memory run lock. A zero ttl means
// the lock never expires on its own.
func NewInMemorySyncLock(ttl time.Duration) *InMemorySyncLock {
	return &InMemorySyncLock{ttl: ttl}
}

// Acquire attempts to take the run lock. Returns false when a run already
// holds it and the hold has not expired.
func (l *InMemorySyncLock) Acquire(ctx context.Context) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.held && (l.ttl == 0 || time.Now().Before(l.expiresAt)) {
		return false, nil
	}

	l.held = true
	if l.ttl > 0 {
		l.expiresAt = time.Now().Add(l.ttl)
	}
	return true, nil
}

// Release frees the run lock
func (l *InMemorySyncLock) Release(ctx context.Context) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.held = false
	return nil
}

// Ensure InMemorySyncLock implements the reconciler's RunLock
var _ syncapp.RunLock = (*InMemorySyncLock)(nil)
