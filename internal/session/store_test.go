package session

import (
	"testing"
	"time"

	"github.com/kirychukyurii/deck-status/internal/cache"
	"github.com/kirychukyurii/deck-status/internal/dom"
)

func TestStore_CreateAndGet(t *testing.T) {
	s := NewStore(cache.New(time.Minute), time.Minute)

	id, doc := s.Create()
	if id == "" {
		t.Fatal("empty session id")
	}
	if doc.GetElementByID(dom.IDRefreshButton) == nil {
		t.Fatal("new session document lacks deck elements")
	}

	got, ok := s.Get(id)
	if !ok || got != doc {
		t.Fatalf("Get(%q) = %p, %v; want %p", id, got, ok, doc)
	}
	if s.Count() != 1 {
		t.Errorf("Count = %d, want 1", s.Count())
	}
}

func TestStore_GetUnknown(t *testing.T) {
	s := NewStore(cache.New(time.Minute), time.Minute)

	if _, ok := s.Get(""); ok {
		t.Error("empty id should not resolve")
	}
	if _, ok := s.Get("nope"); ok {
		t.Error("unknown id should not resolve")
	}
}

func TestStore_GetOrCreate(t *testing.T) {
	s := NewStore(cache.New(time.Minute), time.Minute)

	id, doc, created := s.GetOrCreate("stale-cookie")
	if !created || id == "stale-cookie" {
		t.Fatalf("expected a new session, got id=%q created=%v", id, created)
	}

	sameID, sameDoc, created := s.GetOrCreate(id)
	if created || sameID != id || sameDoc != doc {
		t.Errorf("expected existing session %q, got %q created=%v", id, sameID, created)
	}
}

func TestStore_Expiry(t *testing.T) {
	s := NewStore(cache.New(time.Minute), 10*time.Millisecond)

	id, _ := s.Create()
	time.Sleep(30 * time.Millisecond)

	if _, ok := s.Get(id); ok {
		t.Error("session should have expired")
	}
}

func TestStore_CountExcludesExpired(t *testing.T) {
	s := NewStore(cache.New(time.Minute), 10*time.Millisecond)

	s.Create()
	s.Create()
	if s.Count() != 2 {
		t.Fatalf("Count = %d, want 2", s.Count())
	}

	time.Sleep(30 * time.Millisecond)

	if s.Count() != 0 {
		t.Errorf("Count = %d after expiry, want 0", s.Count())
	}
}
