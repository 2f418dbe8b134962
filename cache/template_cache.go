// Package cache provides the bounded memoization used by the template
// renderers: parsing a template is deterministic, so parsed segment
// lists are shared across renders of the same source text.
package cache

import (
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// TemplateCache is a thread-safe LRU keyed by template source text.
// Cached entries must be immutable; renders share them without copying.
type TemplateCache[V any] struct {
	cache *lru.Cache[string, V]
	mu    sync.RWMutex
}

// NewTemplateCache creates a cache holding at most size entries.
func NewTemplateCache[V any](size int) *TemplateCache[V] {
	c, _ := lru.New[string, V](size)
	return &TemplateCache[V]{cache: c}
}

func (t *TemplateCache[V]) Get(key string) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cache.Get(key)
}

func (t *TemplateCache[V]) Set(key string, v V) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache.Add(key, v)
}

// Len reports the number of cached entries.
func (t *TemplateCache[V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cache.Len()
}

// Purge drops every cached entry.
func (t *TemplateCache[V]) Purge() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.cache.Purge()
}
