// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package server

import (
	"sync"

	"golang.org/x/sync/semaphore"
)

// Guard allows one in-flight submission per (client, form). Distinct forms
// and distinct clients proceed independently. A slot exists only while its
// submission is in flight.
type Guard struct {
	mu    sync.Mutex
	slots map[string]*semaphore.Weighted
}

func NewGuard() *Guard {
	return &Guard{slots: make(map[string]*semaphore.Weighted)}
}

// TryAcquire claims the slot of (client, form). It returns a release func
// and true, or nil and false when a submission is already in flight.
// Calling release more than once has no further effect.
func (g *Guard) TryAcquire(client, form string) (func(), bool) {
	key := client + "\x00" + form

	g.mu.Lock()
	defer g.mu.Unlock()
	sem, ok := g.slots[key]
	if !ok {
		sem = semaphore.NewWeighted(1)
		g.slots[key] = sem
	}
	if !sem.TryAcquire(1) {
		return nil, false
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			g.mu.Lock()
			defer g.mu.Unlock()
			sem.Release(1)
			if g.slots[key] == sem {
				delete(g.slots, key)
			}
		})
	}, true
}

// held returns the number of slots currently claimed.
func (g *Guard) held() int {
	g.mu.Lock()
	defer g.mu.Unlock()
	return len(g.slots)
}
