// Package session keeps the documents of open deck pages in memory,
// keyed by an opaque id carried in a cookie.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/kirychukyurii/deck-status/internal/cache"
	"github.com/kirychukyurii/deck-status/internal/dom"
)

const keyPrefix = "session:"

// Store maps session ids to page documents with sliding expiry
type Store struct {
	cache cache.Cache
	ttl   time.Duration
}

// NewStore creates a session store on top of c
func NewStore(c cache.Cache, ttl time.Duration) *Store {
	return &Store{cache: c, ttl: ttl}
}

// Get returns the document for id and extends its lifetime
func (s *Store) Get(id string) (*dom.Document, bool) {
	if id == "" {
		return nil, false
	}

	cached, ok := s.cache.Get(keyPrefix + id)
	if !ok {
		return nil, false
	}
	doc, ok := cached.(*dom.Document)
	if !ok {
		return nil, false
	}

	s.cache.Set(keyPrefix+id, doc, s.ttl)
	return doc, true
}

// Create registers a fresh deck page document under a new id
func (s *Store) Create() (string, *dom.Document) {
	id := uuid.NewString()
	doc := dom.NewDeckDocument()
	s.cache.Set(keyPrefix+id, doc, s.ttl)
	return id, doc
}

// GetOrCreate returns the document for id, or a new session when id is unknown.
// The returned id is the one the caller should hand back to the client.
func (s *Store) GetOrCreate(id string) (string, *dom.Document, bool) {
	if doc, ok := s.Get(id); ok {
		return id, doc, false
	}
	newID, doc := s.Create()
	return newID, doc, true
}

// Count returns the number of live sessions
func (s *Store) Count() int {
	return s.cache.Count()
}
