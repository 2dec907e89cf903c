// Package cache provides a small in-process TTL cache. The product
// handlers use it both to short-circuit repeated catalog reads and to
// keep a last-good product list to serve when the store errors.
package cache

import (
	"strings"
	"sync"
	"time"
)

const cleanupInterval = 5 * time.Minute

type item struct {
	value      interface{}
	expiration int64
}

type Cache struct {
	mu    sync.RWMutex
	items map[string]item
	ttl   time.Duration

	stopCleanup chan struct{}
	wg          sync.WaitGroup
}

// New creates a cache whose entries default to the given TTL. Expired
// entries are swept in the background until Close is called.
func New(defaultTTL time.Duration) *Cache {
	c := &Cache{
		items:       make(map[string]item),
		ttl:         defaultTTL,
		stopCleanup: make(chan struct{}),
	}

	c.wg.Add(1)
	go c.cleanupLoop()

	return c
}

// Set stores a value under key. An optional ttl overrides the default.
func (c *Cache) Set(key string, value interface{}, ttl ...time.Duration) {
	duration := c.ttl
	if len(ttl) > 0 {
		duration = ttl[0]
	}
	expiration := time.Now().Add(duration).UnixNano()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = item{value: value, expiration: expiration}
}

// Get returns the value under key, or false if absent or expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	it, found := c.items[key]
	if !found || time.Now().UnixNano() > it.expiration {
		return nil, false
	}
	return it.value, true
}

// Delete removes the value under key.
func (c *Cache) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// DeleteByPrefix removes every key starting with prefix. Used to
// invalidate all cached product listings after an admin write.
func (c *Cache) DeleteByPrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for key := range c.items {
		if strings.HasPrefix(key, prefix) {
			delete(c.items, key)
		}
	}
}

// Size returns the number of entries, expired ones included.
func (c *Cache) Size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Close stops the background sweep and waits for it to finish.
func (c *Cache) Close() {
	close(c.stopCleanup)
	c.wg.Wait()
}

func (c *Cache) cleanupLoop() {
	defer c.wg.Done()

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.removeExpired()
		case <-c.stopCleanup:
			return
		}
	}
}

func (c *Cache) removeExpired() {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UnixNano()
	for key, it := range c.items {
		if now > it.expiration {
			delete(c.items, key)
		}
	}
}
