// ABOUTME: In-memory document store backing the development API
// ABOUTME: Thread-safe named collections of JSON documents keyed by _id

package store

import (
	"log/slog"
	"maps"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Document is one JSON object as decoded from a request body
type Document map[string]any

// ID returns the document's _id
func (d Document) ID() string {
	id, _ := d["_id"].(string)
	return id
}

// String returns field as a string, or "" when absent or not a string
func (d Document) String(field string) string {
	s, _ := d[field].(string)
	return s
}

type collection struct {
	docs  map[string]Document
	order []string
}

// Store holds every collection. Reads and writes return copies, so callers
// may modify what they get back.
type Store struct {
	mu          sync.RWMutex
	collections map[string]*collection
	now         func() time.Time
}

func New() *Store {
	return &Store{
		collections: make(map[string]*collection),
		now:         time.Now,
	}
}

func (s *Store) coll(name string) *collection {
	c, ok := s.collections[name]
	if !ok {
		c = &collection{docs: make(map[string]Document)}
		s.collections[name] = c
	}
	return c
}

// List returns documents in insertion order. A nil match returns all.
func (s *Store) List(name string, match func(Document) bool) []Document {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return []Document{}
	}
	out := make([]Document, 0, len(c.order))
	for _, id := range c.order {
		d := c.docs[id]
		if match == nil || match(d) {
			out = append(out, maps.Clone(d))
		}
	}
	return out
}

// Count returns the number of documents in a collection
func (s *Store) Count(name string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if c, ok := s.collections[name]; ok {
		return len(c.order)
	}
	return 0
}

func (s *Store) Get(name, id string) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	d, ok := c.docs[id]
	if !ok {
		return nil, false
	}
	return maps.Clone(d), true
}

// FindOne returns the first document that matches
func (s *Store) FindOne(name string, match func(Document) bool) (Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.findLocked(name, match)
}

func (s *Store) findLocked(name string, match func(Document) bool) (Document, bool) {
	c, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	for _, id := range c.order {
		if d := c.docs[id]; match(d) {
			return maps.Clone(d), true
		}
	}
	return nil, false
}

// Insert stores a copy of doc under a fresh _id and stamps createdAt/updatedAt
func (s *Store) Insert(name string, doc Document) Document {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.insertLocked(name, doc)
}

func (s *Store) insertLocked(name string, doc Document) Document {
	d := maps.Clone(doc)
	if d == nil {
		d = Document{}
	}
	id := uuid.NewString()
	now := s.now().UTC()
	d["_id"] = id
	d["createdAt"] = now
	d["updatedAt"] = now

	c := s.coll(name)
	c.docs[id] = d
	c.order = append(c.order, id)
	slog.Debug("Document inserted", "collection", name, "id", id)
	return maps.Clone(d)
}

// InsertIfEmpty inserts doc only when the collection has no documents.
// The second result reports whether the insert happened.
func (s *Store) InsertIfEmpty(name string, doc Document) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.collections[name]; ok && len(c.order) > 0 {
		return nil, false
	}
	return s.insertLocked(name, doc), true
}

// Patch merges fields into an existing document. _id and createdAt are
// never overwritten.
func (s *Store) Patch(name, id string, fields Document) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.patchLocked(name, id, fields)
}

func (s *Store) patchLocked(name, id string, fields Document) (Document, bool) {
	c, ok := s.collections[name]
	if !ok {
		return nil, false
	}
	d, ok := c.docs[id]
	if !ok {
		return nil, false
	}
	for k, v := range fields {
		if k == "_id" || k == "createdAt" {
			continue
		}
		d[k] = v
	}
	d["updatedAt"] = s.now().UTC()
	slog.Debug("Document patched", "collection", name, "id", id)
	return maps.Clone(d), true
}

// Upsert patches the first document matching match, or inserts fields as a
// new document when none does. The second result reports an insert.
func (s *Store) Upsert(name string, match func(Document) bool, fields Document) (Document, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if existing, ok := s.findLocked(name, match); ok {
		d, _ := s.patchLocked(name, existing.ID(), fields)
		return d, false
	}
	return s.insertLocked(name, fields), true
}

func (s *Store) Delete(name, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, ok := s.collections[name]
	if !ok {
		return false
	}
	if _, ok := c.docs[id]; !ok {
		return false
	}
	delete(c.docs, id)
	for i, v := range c.order {
		if v == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	slog.Debug("Document deleted", "collection", name, "id", id)
	return true
}
