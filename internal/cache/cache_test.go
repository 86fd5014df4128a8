package cache

import (
	"testing"
	"time"
)

func TestTTLCache_SetGet(t *testing.T) {
	c := New(time.Minute)

	c.Set("a", 1, 0)
	c.Set("b", "two", time.Minute)

	if v, ok := c.Get("a"); !ok || v.(int) != 1 {
		t.Errorf("Get(a) = %v, %v", v, ok)
	}
	if c.Count() != 2 {
		t.Errorf("Count = %d, want 2", c.Count())
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("missing key should not resolve")
	}
}

func TestTTLCache_Expiry(t *testing.T) {
	c := New(time.Minute)
	c.Set("short", true, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if _, ok := c.Get("short"); ok {
		t.Error("expired item should not be returned")
	}
}

func TestTTLCache_CountSkipsExpired(t *testing.T) {
	// Cleanup runs every two minutes, so expired items are still stored when counted
	c := New(time.Minute)
	c.Set("live", 1, time.Minute)
	c.Set("short", 2, 10*time.Millisecond)

	time.Sleep(30 * time.Millisecond)

	if c.Count() != 1 {
		t.Errorf("Count = %d, want 1 live item", c.Count())
	}
}
