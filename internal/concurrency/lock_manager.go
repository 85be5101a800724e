// Package concurrency holds the named locks that serialize work per session.
package concurrency

import (
	"sync"
)

type lockEntry struct {
	mu   sync.Mutex
	refs int
}

// LockManager hands out one mutex per key. An entry lives only while some
// caller holds or waits on it, so idle keys cost nothing.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*lockEntry
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*lockEntry)}
}

// Lock blocks until the lock for key is held and returns the function that
// releases it. Release must be called exactly once.
func (lm *LockManager) Lock(key string) (release func()) {
	lm.mu.Lock()
	entry, ok := lm.locks[key]
	if !ok {
		entry = &lockEntry{}
		lm.locks[key] = entry
	}
	entry.refs++
	lm.mu.Unlock()

	entry.mu.Lock()

	return func() {
		entry.mu.Unlock()

		lm.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(lm.locks, key)
		}
		lm.mu.Unlock()
	}
}

// WithLock runs fn while holding the lock for key
func (lm *LockManager) WithLock(key string, fn func() error) error {
	release := lm.Lock(key)
	defer release()
	return fn()
}

// Len reports how many keys are currently held or waited on
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}
