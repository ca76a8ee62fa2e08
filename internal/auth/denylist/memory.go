package denylist

import (
	"context"
	"sync"
	"time"
)

type InMemoryDenylist struct {
	mu      sync.RWMutex
	entries map[string]time.Time
	now     func() time.Time
	stopCh  chan struct{}
	once    sync.Once
}

// NewInMemoryDenylist starts a sweeper that drops expired entries every
// sweepInterval. Entries are process local.
func NewInMemoryDenylist(sweepInterval time.Duration) *InMemoryDenylist {
	d := &InMemoryDenylist{
		entries: make(map[string]time.Time),
		now:     time.Now,
		stopCh:  make(chan struct{}),
	}

	go d.cleanup(sweepInterval)

	return d
}

func (d *InMemoryDenylist) Revoke(_ context.Context, jti string, expiresAt time.Time) error {
	if !expiresAt.After(d.now()) {
		return nil
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.entries[jti] = expiresAt
	return nil
}

func (d *InMemoryDenylist) IsRevoked(_ context.Context, jti string) (bool, error) {
	d.mu.RLock()
	expiresAt, exists := d.entries[jti]
	d.mu.RUnlock()

	if !exists {
		return false, nil
	}

	if !expiresAt.After(d.now()) {
		d.mu.Lock()
		delete(d.entries, jti)
		d.mu.Unlock()
		return false, nil
	}

	return true, nil
}

func (d *InMemoryDenylist) cleanup(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			d.sweep()
		case <-d.stopCh:
			return
		}
	}
}

func (d *InMemoryDenylist) sweep() {
	now := d.now()

	d.mu.Lock()
	defer d.mu.Unlock()
	for jti, expiresAt := range d.entries {
		if !expiresAt.After(now) {
			delete(d.entries, jti)
		}
	}
}

func (d *InMemoryDenylist) Len() int {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return len(d.entries)
}

func (d *InMemoryDenylist) Stop() {
	d.once.Do(func() { close(d.stopCh) })
}
