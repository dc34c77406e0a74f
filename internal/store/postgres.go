package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"

	"github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
)

// PostgresStore persists session records in a single table. Transcript and
// document land in one row, so every turn commits atomically.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresPool connects a pgx pool for the given DSN.
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	return pgxpool.Connect(ctx, dsn)
}

// NewPostgresStore wraps an existing pool.
func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{pool: pool}
}

// EnsureSchema creates the sessions table when missing.
func (s *PostgresStore) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS chat_sessions (
		id TEXT PRIMARY KEY,
		owner_id TEXT NOT NULL,
		title TEXT NOT NULL,
		transcript JSONB NOT NULL,
		document JSONB NOT NULL,
		template_id TEXT NOT NULL DEFAULT '',
		version BIGINT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("ensure chat_sessions schema: %w", err)
	}
	_, err = s.pool.Exec(ctx,
		`CREATE INDEX IF NOT EXISTS chat_sessions_owner_idx ON chat_sessions (owner_id, updated_at DESC)`)
	return err
}

// Get retrieves a record by session identifier.
func (s *PostgresStore) Get(ctx context.Context, id string) (chat.Record, error) {
	row := s.pool.QueryRow(ctx, `SELECT id, owner_id, title, transcript, document, template_id, version, created_at, updated_at
		FROM chat_sessions WHERE id = $1`, id)

	var rec chat.Record
	var transcriptB, documentB []byte
	err := row.Scan(&rec.ID, &rec.OwnerID, &rec.Title, &transcriptB, &documentB,
		&rec.TemplateID, &rec.Version, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return chat.Record{}, ErrNotFound
	}
	if err != nil {
		return chat.Record{}, err
	}

	rec.Transcript = []chat.Turn{}
	if err := json.Unmarshal(transcriptB, &rec.Transcript); err != nil {
		return chat.Record{}, fmt.Errorf("decode transcript for session %s: %w", id, err)
	}
	rec.Document = resume.NewDocument()
	if err := json.Unmarshal(documentB, &rec.Document); err != nil {
		return chat.Record{}, fmt.Errorf("decode document for session %s: %w", id, err)
	}
	return rec, nil
}

// ListByOwner returns the caller's session summaries, newest first.
func (s *PostgresStore) ListByOwner(ctx context.Context, ownerID string) ([]chat.Summary, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, title FROM chat_sessions WHERE owner_id = $1 ORDER BY updated_at DESC`, ownerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := []chat.Summary{}
	for rows.Next() {
		var sum chat.Summary
		if err := rows.Scan(&sum.ID, &sum.Title); err != nil {
			return nil, err
		}
		summaries = append(summaries, sum)
	}
	return summaries, rows.Err()
}

// Upsert stores a record when its current version matches expectedVersion.
func (s *PostgresStore) Upsert(ctx context.Context, rec chat.Record, expectedVersion int64) (chat.Record, error) {
	transcriptB, err := json.Marshal(rec.Transcript)
	if err != nil {
		return chat.Record{}, err
	}
	documentB, err := json.Marshal(rec.Document)
	if err != nil {
		return chat.Record{}, err
	}

	now := time.Now().UTC()
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	if expectedVersion == 0 {
		if rec.CreatedAt.IsZero() {
			rec.CreatedAt = now
		}
		tag, err := s.pool.Exec(ctx, `INSERT INTO chat_sessions (id, owner_id, title, transcript, document, template_id, version, created_at, updated_at)
			VALUES ($1,$2,$3,$4,$5,$6,1,$7,$8)
			ON CONFLICT (id) DO NOTHING`,
			rec.ID, rec.OwnerID, rec.Title, transcriptB, documentB, rec.TemplateID, rec.CreatedAt, rec.UpdatedAt)
		if err != nil {
			return chat.Record{}, err
		}
		if tag.RowsAffected() == 0 {
			return chat.Record{}, ErrVersionConflict
		}
		rec.Version = 1
		return rec, nil
	}

	tag, err := s.pool.Exec(ctx, `UPDATE chat_sessions
		SET title = $3, transcript = $4, document = $5, template_id = $6, version = version + 1, updated_at = $7
		WHERE id = $1 AND version = $2`,
		rec.ID, expectedVersion, rec.Title, transcriptB, documentB, rec.TemplateID, rec.UpdatedAt)
	if err != nil {
		return chat.Record{}, err
	}
	if tag.RowsAffected() == 0 {
		return chat.Record{}, ErrVersionConflict
	}
	rec.Version = expectedVersion + 1
	return rec, nil
}

// Rename updates a record's title.
func (s *PostgresStore) Rename(ctx context.Context, id, title string) error {
	tag, err := s.pool.Exec(ctx,
		`UPDATE chat_sessions SET title = $2, updated_at = $3 WHERE id = $1`,
		id, title, time.Now().UTC())
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a record.
func (s *PostgresStore) Delete(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM chat_sessions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
