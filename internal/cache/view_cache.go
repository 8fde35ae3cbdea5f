// Package cache provides the in-process cache of rendered profile views.
//
// Entries are keyed by the logical path of the view they back (e.g.
// "/profile/<subject>"). Mutating operations invalidate by that same logical
// path after a confirmed successful write, so the next render observes the
// change. Invalidation is fire-and-forget: its failure modes are not part of
// the synchronization contract.
package cache

import (
	"strings"
	"sync"
	"time"
)

// ProfilePath returns the logical path of the cached profile view for
// subject. Uses the same shape on both protocol surfaces so that an
// invalidation from either one hits the other's reads.
func ProfilePath(subject string) string {
	return "/profile/" + subject
}

type entry struct {
	value     any
	expiresAt time.Time
}

// ViewCache is a TTL cache of rendered views keyed by logical path.
// Safe for concurrent use.
type ViewCache struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry

	now func() time.Time
}

// NewViewCache constructs a ViewCache whose entries stay fresh for ttl.
func NewViewCache(ttl time.Duration) *ViewCache {
	return &ViewCache{
		ttl:     ttl,
		entries: make(map[string]entry),
		now:     time.Now,
	}
}

// Get returns the cached value for path if present and not expired.
func (c *ViewCache) Get(path string) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[path]
	if !ok || c.now().After(e.expiresAt) {
		return nil, false
	}
	return e.value, true
}

// Set stores value under path with the configured TTL.
func (c *ViewCache) Set(path string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = entry{value: value, expiresAt: c.now().Add(c.ttl)}
}

// Invalidate marks the view at path as stale by dropping it.
func (c *ViewCache) Invalidate(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.entries, path)
}

// InvalidatePrefix drops every view whose path starts with prefix.
func (c *ViewCache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for path := range c.entries {
		if strings.HasPrefix(path, prefix) {
			delete(c.entries, path)
		}
	}
}

// Sweep drops all expired entries and returns how many were evicted.
// Called periodically by the background sweeper worker.
func (c *ViewCache) Sweep() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	evicted := 0
	for path, e := range c.entries {
		if now.After(e.expiresAt) {
			delete(c.entries, path)
			evicted++
		}
	}
	return evicted
}

// Len returns the number of entries currently held, expired or not.
func (c *ViewCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
