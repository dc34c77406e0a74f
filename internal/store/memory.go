package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/resumeforge/backend/internal/model/chat"
)

// MemoryStore keeps session records in process memory. It backs tests and
// the development mode selected when no database is configured.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]chat.Record
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{records: make(map[string]chat.Record)}
}

// Get retrieves a record by session identifier.
func (s *MemoryStore) Get(_ context.Context, id string) (chat.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.records[id]
	if !ok {
		return chat.Record{}, ErrNotFound
	}
	return cloneRecord(rec), nil
}

// ListByOwner returns the caller's session summaries, newest first.
func (s *MemoryStore) ListByOwner(_ context.Context, ownerID string) ([]chat.Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	recs := make([]chat.Record, 0, len(s.records))
	for _, rec := range s.records {
		if rec.OwnerID == ownerID {
			recs = append(recs, rec)
		}
	}
	sort.Slice(recs, func(i, j int) bool {
		return recs[i].UpdatedAt.After(recs[j].UpdatedAt)
	})

	summaries := make([]chat.Summary, 0, len(recs))
	for _, rec := range recs {
		summaries = append(summaries, chat.Summary{ID: rec.ID, Title: rec.Title})
	}
	return summaries, nil
}

// Upsert stores a record when its current version matches expectedVersion.
func (s *MemoryStore) Upsert(_ context.Context, rec chat.Record, expectedVersion int64) (chat.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, exists := s.records[rec.ID]
	switch {
	case !exists && expectedVersion != 0:
		return chat.Record{}, ErrVersionConflict
	case exists && current.Version != expectedVersion:
		return chat.Record{}, ErrVersionConflict
	}

	if !exists {
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = time.Now().UTC()
		}
	} else {
		rec.CreatedAt = current.CreatedAt
	}
	rec.Version = expectedVersion + 1
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = time.Now().UTC()
	}

	s.records[rec.ID] = cloneRecord(rec)
	return rec, nil
}

// Rename updates a record's title.
func (s *MemoryStore) Rename(_ context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, ok := s.records[id]
	if !ok {
		return ErrNotFound
	}
	rec.Title = title
	rec.UpdatedAt = time.Now().UTC()
	s.records[id] = rec
	return nil
}

// Delete removes a record.
func (s *MemoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.records[id]; !ok {
		return ErrNotFound
	}
	delete(s.records, id)
	return nil
}

func cloneRecord(rec chat.Record) chat.Record {
	out := rec
	out.Transcript = append([]chat.Turn(nil), rec.Transcript...)
	return out
}
