// Package lock provides keyed advisory locks used to serialize mapping and
// grouping calls that touch overlapping tickets. A single-process deployment
// uses the in-memory locker; multi-instance deployments switch to the redis
// locker via configuration.
package lock

import (
	"context"
	"sync"
)

// Locker serializes work under a string key. Acquire blocks until the key is
// held or ctx is done; the returned release function must be called exactly
// once.
type Locker interface {
	Acquire(ctx context.Context, key string) (release func(), err error)
}

// KeyedMutex is the in-process Locker. Each key maps to a channel-based
// mutex so acquisition can honor context cancellation.
type KeyedMutex struct {
	mu    sync.Mutex
	slots map[string]chan struct{}
}

// NewKeyedMutex creates an in-process keyed locker.
func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{slots: make(map[string]chan struct{})}
}

func (k *KeyedMutex) slot(key string) chan struct{} {
	k.mu.Lock()
	defer k.mu.Unlock()
	slot, ok := k.slots[key]
	if !ok {
		slot = make(chan struct{}, 1)
		k.slots[key] = slot
	}
	return slot
}

// Acquire blocks until the key's slot is free or ctx is done.
func (k *KeyedMutex) Acquire(ctx context.Context, key string) (func(), error) {
	slot := k.slot(key)
	select {
	case slot <- struct{}{}:
		return func() { <-slot }, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}
