package usecase

import (
	"fmt"
	"sync"

	"skill-atlas/internal/domain/skilltree"
)

// DocumentCache memoizes loaded profile documents. Keys carry the profile
// name and its revision, so a stale entry can never be served after a
// mutation and entries for different profiles never collide.
type DocumentCache interface {
	Get(key string) (skilltree.Document, bool)
	Set(key string, doc skilltree.Document)
	Delete(key string)
}

func documentCacheKey(profile string, revision uint64) string {
	return fmt.Sprintf("doc:%s:%d", profile, revision)
}

// MemoryDocumentCache is the in-process DocumentCache. Values are cloned
// on the way in and out so callers can never mutate a cached document.
type MemoryDocumentCache struct {
	mu      sync.RWMutex
	entries map[string]skilltree.Document
}

func NewMemoryDocumentCache() *MemoryDocumentCache {
	return &MemoryDocumentCache{entries: make(map[string]skilltree.Document)}
}

func (c *MemoryDocumentCache) Get(key string) (skilltree.Document, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.entries[key]
	if !ok {
		return skilltree.Document{}, false
	}
	return doc.Clone(), true
}

func (c *MemoryDocumentCache) Set(key string, doc skilltree.Document) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = doc.Clone()
}

func (c *MemoryDocumentCache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}
