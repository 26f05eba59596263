package cache

import (
	"errors"
	"testing"
	"time"
)

// newTestCache creates a cache with a generous TTL and registers cleanup.
func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c := New(5 * time.Minute)
	t.Cleanup(c.Stop)
	return c
}

func TestSetGet(t *testing.T) {
	c := newTestCache(t)

	c.Set("k", "v")
	got, ok := c.Get("k")
	if !ok || got != "v" {
		t.Fatalf("Get = %v, %v; want v, true", got, ok)
	}

	if _, ok := c.Get("missing"); ok {
		t.Fatal("missing key reported as present")
	}
}

func TestExpiry(t *testing.T) {
	c := newTestCache(t)

	c.SetWithTTL("k", "v", time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := c.Get("k"); ok {
		t.Fatal("expired entry still served")
	}

	// Sweep actually removes the expired entry.
	c.Sweep()
	if s := c.Stats(); s.Items != 0 {
		t.Errorf("items after sweep = %d, want 0", s.Items)
	}
}

func TestDeletePrefix(t *testing.T) {
	c := newTestCache(t)

	c.Set("featured:posts:3", 1)
	c.Set("featured:posts:5", 2)
	c.Set("featured:reviews:6", 3)

	c.DeletePrefix("featured:posts:")

	if _, ok := c.Get("featured:posts:3"); ok {
		t.Error("featured:posts:3 survived prefix delete")
	}
	if _, ok := c.Get("featured:reviews:6"); !ok {
		t.Error("unrelated key was deleted")
	}
}

func TestStats(t *testing.T) {
	c := newTestCache(t)

	c.Set("a", 1)
	c.Get("a")
	c.Get("b")

	s := c.Stats()
	if s.Hits != 1 || s.Misses != 1 || s.Sets != 1 {
		t.Errorf("stats = %+v, want 1 hit, 1 miss, 1 set", s)
	}
	if s.HitRate != 0.5 {
		t.Errorf("hit rate = %v, want 0.5", s.HitRate)
	}
}

func TestTypedGetOrSet(t *testing.T) {
	c := newTestCache(t)
	typed := NewTyped[[]string](c)

	calls := 0
	compute := func() ([]string, error) {
		calls++
		return []string{"a", "b"}, nil
	}

	for i := 0; i < 3; i++ {
		got, err := typed.GetOrSet("list", compute)
		if err != nil {
			t.Fatalf("GetOrSet: %v", err)
		}
		if len(got) != 2 {
			t.Fatalf("got %v", got)
		}
	}
	if calls != 1 {
		t.Errorf("compute ran %d times, want 1", calls)
	}
}

func TestTypedGetOrSetError(t *testing.T) {
	c := newTestCache(t)
	typed := NewTyped[int](c)

	wantErr := errors.New("backend down")
	if _, err := typed.GetOrSet("k", func() (int, error) { return 0, wantErr }); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}

	// Errors are not cached; the next call recomputes.
	got, err := typed.GetOrSet("k", func() (int, error) { return 42, nil })
	if err != nil || got != 42 {
		t.Fatalf("GetOrSet after error = %d, %v", got, err)
	}
}

func TestTypedWrongTypeIsMiss(t *testing.T) {
	c := newTestCache(t)
	c.Set("k", "a string")

	typed := NewTyped[int](c)
	if _, ok := typed.Get("k"); ok {
		t.Fatal("wrong-typed value served as hit")
	}
}
