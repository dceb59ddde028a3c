package concurrency

import (
	"context"
	"sync"
)

// LockManager hands out named, context-aware locks. Entries are dropped once
// no caller holds or waits on them, so the key space can be unbounded.
type LockManager struct {
	mu    sync.Mutex
	locks map[string]*keyLock
}

type keyLock struct {
	sem  chan struct{}
	refs int
}

// NewLockManager creates a new LockManager
func NewLockManager() *LockManager {
	return &LockManager{locks: make(map[string]*keyLock)}
}

// Acquire blocks until the lock for key is held or ctx is done.
// On success the returned release func must be called exactly once.
func (lm *LockManager) Acquire(ctx context.Context, key string) (func(), error) {
	l := lm.ref(key)

	select {
	case l.sem <- struct{}{}:
	case <-ctx.Done():
		lm.unref(key, l)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-l.sem
			lm.unref(key, l)
		})
	}, nil
}

// Len returns the number of keys currently held or awaited
func (lm *LockManager) Len() int {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	return len(lm.locks)
}

func (lm *LockManager) ref(key string) *keyLock {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l, ok := lm.locks[key]
	if !ok {
		l = &keyLock{sem: make(chan struct{}, 1)}
		lm.locks[key] = l
	}
	l.refs++
	return l
}

func (lm *LockManager) unref(key string, l *keyLock) {
	lm.mu.Lock()
	defer lm.mu.Unlock()
	l.refs--
	if l.refs == 0 {
		delete(lm.locks, key)
	}
}
