package store

import (
	"context"
	"errors"

	"github.com/resumeforge/backend/internal/model/chat"
)

var (
	ErrNotFound        = errors.New("session not found")
	ErrVersionConflict = errors.New("session version conflict")
)

// Store persists session records keyed by session identifier. Upsert writes
// the transcript and document as one unit; expectedVersion implements
// optimistic concurrency, where 0 means the record must not exist yet.
// Records are created lazily, on the first successful turn only.
type Store interface {
	Get(ctx context.Context, id string) (chat.Record, error)
	ListByOwner(ctx context.Context, ownerID string) ([]chat.Summary, error)
	Upsert(ctx context.Context, rec chat.Record, expectedVersion int64) (chat.Record, error)
	Rename(ctx context.Context, id, title string) error
	Delete(ctx context.Context, id string) error
}
