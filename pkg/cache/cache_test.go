package cache

import (
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func (f *fakeClock) Advance(d time.Duration) { f.t = f.t.Add(d) }

func TestLRUCache(t *testing.T) {
	tests := []struct {
		name     string
		capacity int
		ttl      time.Duration
		actions  func(c *LRUCache[string, int], clock *fakeClock, t *testing.T)
	}{
		{
			name:     "set and get within TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], _ *fakeClock, t *testing.T) {
				c.Set("a", 1)
				if v, ok := c.Get("a"); !ok || v != 1 {
					t.Errorf("expected value=1, got=%v, ok=%v", v, ok)
				}
			},
		},
		{
			name:     "get after expiration",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], clock *fakeClock, t *testing.T) {
				c.Set("a", 1)
				clock.Advance(2 * time.Second)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be expired")
				}
				if c.Size() != 0 {
					t.Errorf("expected expired key to be removed, size=%d", c.Size())
				}
			},
		},
		{
			name:     "evict least recently used when over capacity",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], _ *fakeClock, t *testing.T) {
				c.Set("a", 1)
				c.Set("b", 2)
				c.Get("a")
				c.Set("c", 3)
				if _, ok := c.Get("b"); ok {
					t.Errorf("expected key 'b' to be evicted")
				}
				if v, ok := c.Get("a"); !ok || v != 1 {
					t.Errorf("expected a=1, got %v", v)
				}
				if v, ok := c.Get("c"); !ok || v != 3 {
					t.Errorf("expected c=3, got %v", v)
				}
			},
		},
		{
			name:     "update value resets TTL",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], clock *fakeClock, t *testing.T) {
				c.Set("a", 1)
				clock.Advance(600 * time.Millisecond)
				c.Set("a", 2)
				clock.Advance(600 * time.Millisecond)
				if v, ok := c.Get("a"); !ok || v != 2 {
					t.Errorf("expected updated value=2, got=%v", v)
				}
			},
		},
		{
			name:     "delete",
			capacity: 2,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], _ *fakeClock, t *testing.T) {
				c.Set("a", 1)
				c.Delete("a")
				c.Delete("missing")
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected key to be deleted")
				}
			},
		},
		{
			name:     "zero capacity disables cache",
			capacity: 0,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], _ *fakeClock, t *testing.T) {
				c.Set("a", 1)
				if _, ok := c.Get("a"); ok {
					t.Errorf("expected nothing to be cached")
				}
			},
		},
		{
			name:     "cleanup removes expired",
			capacity: 3,
			ttl:      time.Second,
			actions: func(c *LRUCache[string, int], clock *fakeClock, t *testing.T) {
				c.Set("a", 1)
				clock.Advance(2 * time.Second)
				c.Set("b", 2)

				c.cleanup()

				if c.Size() != 1 {
					t.Errorf("expected one live key, got %d", c.Size())
				}
				if _, ok := c.Get("b"); !ok {
					t.Errorf("expected 'b' to survive cleanup")
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := &fakeClock{t: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
			c := NewLRUCache[string, int](tt.capacity, tt.ttl)
			c.now = clock.Now
			tt.actions(c, clock, t)
		})
	}
}
