package chat

import (
	"time"

	"github.com/resumeforge/backend/internal/model/resume"
)

// Record is the persisted unit for one session: the transcript and the
// resume document always travel together so a turn commits both or neither.
type Record struct {
	ID         string          `json:"id"`
	OwnerID    string          `json:"ownerId"`
	Title      string          `json:"title"`
	Transcript []Turn          `json:"transcript"`
	Document   resume.Document `json:"document"`
	TemplateID string          `json:"templateId,omitempty"`
	Version    int64           `json:"version"`
	CreatedAt  time.Time       `json:"createdAt"`
	UpdatedAt  time.Time       `json:"updatedAt"`
}

// Summary is the list-view projection of a Record.
type Summary struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
