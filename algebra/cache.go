// SPDX-License-Identifier: MIT
// Package algebra: productCache, the per-Config memo of blade products.

package algebra

import (
	"sync"
	"sync/atomic"
)

// productKey identifies one product under one (metric, allowed-order)
// signature. All fields are comparable values, so a key is immutable once
// built.
type productKey struct {
	signature   string
	left, right string
	ls, rs      Sign
}

// productCache is safe for concurrent readers and writers. Entries are held
// as Alpha values (copied in and out), so callers can never alias cached
// state.
type productCache struct {
	mu      sync.RWMutex
	entries map[productKey]Alpha

	hits, misses atomic.Uint64
}

// CacheStats is a point-in-time view of a Config's product cache.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func newProductCache() *productCache {
	return &productCache{entries: make(map[productKey]Alpha)}
}

func (pc *productCache) get(k productKey) (Alpha, bool) {
	pc.mu.RLock()
	a, ok := pc.entries[k]
	pc.mu.RUnlock()

	if ok {
		pc.hits.Add(1)
	} else {
		pc.misses.Add(1)
	}

	return a, ok
}

func (pc *productCache) put(k productKey, a Alpha) {
	pc.mu.Lock()
	pc.entries[k] = a
	pc.mu.Unlock()
}

// invalidate drops every entry keyed to signature sig and reports how many
// were removed. Entries of other signatures are untouched.
func (pc *productCache) invalidate(sig string) int {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	n := 0
	for k := range pc.entries {
		if k.signature == sig {
			delete(pc.entries, k)
			n++
		}
	}

	return n
}

func (pc *productCache) len() int {
	pc.mu.RLock()
	defer pc.mu.RUnlock()

	return len(pc.entries)
}

func (pc *productCache) stats() CacheStats {
	return CacheStats{Entries: pc.len(), Hits: pc.hits.Load(), Misses: pc.misses.Load()}
}
