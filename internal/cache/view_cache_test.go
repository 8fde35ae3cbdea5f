package cache

import (
	"testing"
	"time"
)

func newTestCache(ttl time.Duration) (*ViewCache, *time.Time) {
	c := NewViewCache(ttl)
	now := time.Now()
	c.now = func() time.Time { return now }
	return c, &now
}

func TestViewCache_SetGet(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("/profile/a", "rendered-a")

	v, ok := c.Get("/profile/a")
	if !ok {
		t.Fatal("expected cache hit")
	}
	if v != "rendered-a" {
		t.Errorf("unexpected value: %v", v)
	}
}

func TestViewCache_MissAfterInvalidate(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("/profile/a", "rendered-a")
	c.Invalidate("/profile/a")

	if _, ok := c.Get("/profile/a"); ok {
		t.Error("expected miss after invalidation")
	}
}

func TestViewCache_InvalidateIsScoped(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("/profile/a", "rendered-a")
	c.Set("/profile/b", "rendered-b")
	c.Invalidate("/profile/a")

	if _, ok := c.Get("/profile/b"); !ok {
		t.Error("invalidation of one view must not evict another")
	}
}

func TestViewCache_InvalidatePrefix(t *testing.T) {
	c, _ := newTestCache(time.Minute)

	c.Set("/profile/a", 1)
	c.Set("/profile/a/games", 2)
	c.Set("/profile/b", 3)

	c.InvalidatePrefix("/profile/a")

	if _, ok := c.Get("/profile/a"); ok {
		t.Error("expected /profile/a to be evicted")
	}
	if _, ok := c.Get("/profile/a/games"); ok {
		t.Error("expected /profile/a/games to be evicted")
	}
	if _, ok := c.Get("/profile/b"); !ok {
		t.Error("expected /profile/b to survive")
	}
}

func TestViewCache_TTLExpiry(t *testing.T) {
	c, now := newTestCache(time.Minute)

	c.Set("/profile/a", "rendered-a")
	*now = now.Add(2 * time.Minute)

	if _, ok := c.Get("/profile/a"); ok {
		t.Error("expected miss after TTL expiry")
	}
}

func TestViewCache_Sweep(t *testing.T) {
	c, now := newTestCache(time.Minute)

	c.Set("/profile/a", 1)
	c.Set("/profile/b", 2)
	*now = now.Add(2 * time.Minute)
	c.Set("/profile/c", 3)

	evicted := c.Sweep()
	if evicted != 2 {
		t.Errorf("expected 2 evictions, got %d", evicted)
	}
	if c.Len() != 1 {
		t.Errorf("expected 1 remaining entry, got %d", c.Len())
	}
	if _, ok := c.Get("/profile/c"); !ok {
		t.Error("expected fresh entry to survive sweep")
	}
}

func TestProfilePath(t *testing.T) {
	if got := ProfilePath("caller-1"); got != "/profile/caller-1" {
		t.Errorf("unexpected path: %s", got)
	}
}
