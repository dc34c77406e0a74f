package chat

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/resumeforge/backend/internal/config"
	"github.com/resumeforge/backend/internal/model/chat"
	"github.com/resumeforge/backend/internal/model/resume"
	"github.com/resumeforge/backend/internal/service/ai"
	"github.com/resumeforge/backend/internal/store"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrEngineUnavailable     = errors.New("suggestion engine unavailable")
	ErrEngineResponseInvalid = errors.New("suggestion engine response invalid")
)

// parseFailureNotice is the transcript entry shown in place of an
// acknowledgement when the engine reply could not be parsed.
const parseFailureNotice = "Sorry, the response could not be parsed. Your message was kept; please try again."

// defaultAcknowledgement stands in when the engine omits its own.
const defaultAcknowledgement = "Resume updated."

// Engine is the external suggestion collaborator. The trailing transcript
// turn is the user utterance under processing.
type Engine interface {
	Suggest(ctx context.Context, transcript []chat.Turn, doc resume.Document) (string, error)
}

// Service orchestrates one turn of the conversational resume protocol:
// append the user turn, consult the engine, merge its partial update, and
// persist transcript and document as one unit.
type Service struct {
	store  store.Store
	engine Engine
	cfg    config.ChatConfig
}

// NewService wires the turn processor to its collaborators. A nil engine is
// allowed; turns then fail with ErrEngineUnavailable while the session
// management operations keep working.
func NewService(st store.Store, engine Engine, cfg config.ChatConfig) *Service {
	if cfg.TitleMaxLen <= 0 {
		cfg = config.DefaultChatConfig()
	}
	return &Service{store: st, engine: engine, cfg: cfg}
}

// TurnResult is the outcome of one processed turn.
type TurnResult struct {
	Transcript      []chat.Turn
	Document        resume.Document
	Acknowledgement string
	UpdatedSection  resume.Partial
}

// ProcessTurn runs one request/response cycle for a session. The transcript
// and document arguments are the caller's view of the session before this
// utterance; the persisted record is the source of truth afterwards.
//
// On a parse failure the user turn and a fixed notice turn are still
// committed, the document stays unchanged, and ErrEngineResponseInvalid is
// returned alongside the committed state.
func (s *Service) ProcessTurn(ctx context.Context, sessionID, ownerID string, transcript []chat.Turn, doc resume.Document, utterance string) (TurnResult, error) {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return TurnResult{}, fmt.Errorf("%w: empty message", ErrInvalidInput)
	}
	if sessionID == "" {
		return TurnResult{}, fmt.Errorf("%w: missing session id", ErrInvalidInput)
	}
	if ownerID == "" {
		return TurnResult{}, fmt.Errorf("%w: no authenticated identity", ErrUnauthorized)
	}
	for i, turn := range transcript {
		if turn.Role != chat.RoleUser && turn.Role != chat.RoleModel {
			return TurnResult{}, fmt.Errorf("%w: history entry %d has unknown role %q", ErrInvalidInput, i, turn.Role)
		}
	}
	if s.engine == nil {
		return TurnResult{}, fmt.Errorf("%w: engine not configured", ErrEngineUnavailable)
	}

	rec, err := s.store.Get(ctx, sessionID)
	exists := true
	switch {
	case errors.Is(err, store.ErrNotFound):
		exists = false
	case err != nil:
		return TurnResult{}, fmt.Errorf("load session %s: %w", sessionID, err)
	case rec.OwnerID != ownerID:
		return TurnResult{}, fmt.Errorf("%w: session belongs to another user", ErrUnauthorized)
	}

	pending := append(append([]chat.Turn{}, transcript...), chat.NewTurn(chat.RoleUser, utterance))

	// Sole suspension point: the engine call may take arbitrary latency.
	raw, err := s.engine.Suggest(ctx, pending, doc)
	if err != nil {
		return TurnResult{}, fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	merged := doc
	ack := ""
	updated := resume.Partial{}
	reply, parseErr := ai.ParseReply(raw)
	if parseErr == nil {
		merged, parseErr = resume.Merge(doc, reply.UpdatedSection)
	}

	var final []chat.Turn
	var turnErr error
	if parseErr != nil {
		// The user's turn still commits; the model slot carries a notice
		// instead of the unusable reply.
		merged = doc
		final = append(pending, chat.NewTurn(chat.RoleModel, parseFailureNotice))
		turnErr = fmt.Errorf("%w: %v", ErrEngineResponseInvalid, parseErr)
		log.Printf("[chat] session=%s engine reply rejected: %v", sessionID, parseErr)
	} else {
		ack = strings.TrimSpace(reply.Acknowledgement)
		if ack == "" {
			ack = defaultAcknowledgement
		}
		updated = reply.UpdatedSection
		final = append(pending, chat.NewTurn(chat.RoleModel, ack))
	}

	now := time.Now().UTC()
	if !exists {
		rec = chat.Record{
			ID:        sessionID,
			OwnerID:   ownerID,
			Title:     deriveTitle(utterance, s.cfg.TitleMaxLen, s.cfg.TitleFallback),
			CreatedAt: now,
		}
	}
	rec.Transcript = final
	rec.Document = merged
	rec.UpdatedAt = now

	stored, err := s.store.Upsert(ctx, rec, rec.Version)
	if err != nil {
		if errors.Is(err, store.ErrVersionConflict) {
			return TurnResult{}, err
		}
		return TurnResult{}, fmt.Errorf("persist session %s: %w", sessionID, err)
	}

	return TurnResult{
		Transcript:      stored.Transcript,
		Document:        stored.Document,
		Acknowledgement: ack,
		UpdatedSection:  updated,
	}, turnErr
}

// EnsureSession returns the current state for a session without creating a
// persisted record; brand-new identifiers get an empty transcript and a
// default document. Idempotent until the first successful turn.
func (s *Service) EnsureSession(ctx context.Context, sessionID, ownerID string) (chat.Record, error) {
	if sessionID == "" {
		return chat.Record{}, fmt.Errorf("%w: missing session id", ErrInvalidInput)
	}
	if ownerID == "" {
		return chat.Record{}, fmt.Errorf("%w: no authenticated identity", ErrUnauthorized)
	}

	rec, err := s.store.Get(ctx, sessionID)
	if errors.Is(err, store.ErrNotFound) {
		return chat.Record{
			ID:         sessionID,
			OwnerID:    ownerID,
			Transcript: []chat.Turn{},
			Document:   resume.NewDocument(),
		}, nil
	}
	if err != nil {
		return chat.Record{}, fmt.Errorf("load session %s: %w", sessionID, err)
	}
	if rec.OwnerID != ownerID {
		return chat.Record{}, fmt.Errorf("%w: session belongs to another user", ErrUnauthorized)
	}
	return rec, nil
}

// ListSessions returns the caller's session summaries, newest first.
func (s *Service) ListSessions(ctx context.Context, ownerID string) ([]chat.Summary, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("%w: no authenticated identity", ErrUnauthorized)
	}
	return s.store.ListByOwner(ctx, ownerID)
}

// Rename changes a session's title after an ownership check.
func (s *Service) Rename(ctx context.Context, sessionID, ownerID, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return fmt.Errorf("%w: empty title", ErrInvalidInput)
	}
	if _, err := s.requireOwned(ctx, sessionID, ownerID); err != nil {
		return err
	}
	return s.store.Rename(ctx, sessionID, title)
}

// Delete removes a session after an ownership check.
func (s *Service) Delete(ctx context.Context, sessionID, ownerID string) error {
	if _, err := s.requireOwned(ctx, sessionID, ownerID); err != nil {
		return err
	}
	return s.store.Delete(ctx, sessionID)
}

// SetTemplate records the render template the session previews with.
func (s *Service) SetTemplate(ctx context.Context, sessionID, ownerID, templateID string) error {
	rec, err := s.requireOwned(ctx, sessionID, ownerID)
	if err != nil {
		return err
	}
	rec.TemplateID = templateID
	rec.UpdatedAt = time.Now().UTC()
	_, err = s.store.Upsert(ctx, rec, rec.Version)
	return err
}

func (s *Service) requireOwned(ctx context.Context, sessionID, ownerID string) (chat.Record, error) {
	if sessionID == "" {
		return chat.Record{}, fmt.Errorf("%w: missing session id", ErrInvalidInput)
	}
	if ownerID == "" {
		return chat.Record{}, fmt.Errorf("%w: no authenticated identity", ErrUnauthorized)
	}
	rec, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return chat.Record{}, err
	}
	if rec.OwnerID != ownerID {
		return chat.Record{}, fmt.Errorf("%w: session belongs to another user", ErrUnauthorized)
	}
	return rec, nil
}

// deriveTitle names a new session from a prefix of its first utterance.
func deriveTitle(utterance string, maxLen int, fallback string) string {
	title := strings.TrimSpace(utterance)
	if title == "" {
		return fallback
	}
	if runes := []rune(title); len(runes) > maxLen {
		return string(runes[:maxLen])
	}
	return title
}
