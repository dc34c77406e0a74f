package ai

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/resumeforge/backend/internal/model/resume"
)

// ErrMalformedReply reports a model reply that could not be decoded into
// the expected two-key object.
var ErrMalformedReply = errors.New("malformed engine reply")

// Reply is the structured payload the engine is instructed to emit.
type Reply struct {
	Acknowledgement string
	UpdatedSection  resume.Partial
}

// ParseReply strips any Markdown fence wrapping, decodes the reply, and
// validates the partial update against the document schema.
func ParseReply(raw string) (Reply, error) {
	clean := stripFences(raw)

	var decoded struct {
		Acknowledgement string          `json:"acknowledgement"`
		UpdatedSection  json.RawMessage `json:"updatedSection"`
	}
	if err := json.Unmarshal([]byte(clean), &decoded); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}

	reply := Reply{
		Acknowledgement: decoded.Acknowledgement,
		UpdatedSection:  resume.Partial{},
	}
	if len(decoded.UpdatedSection) == 0 || string(decoded.UpdatedSection) == "null" {
		return reply, nil
	}

	if err := resume.ValidatePartial(decoded.UpdatedSection); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	if err := json.Unmarshal(decoded.UpdatedSection, &reply.UpdatedSection); err != nil {
		return Reply{}, fmt.Errorf("%w: %v", ErrMalformedReply, err)
	}
	return reply, nil
}

// stripFences removes the ```json wrapping models sometimes add despite the
// system instruction.
func stripFences(raw string) string {
	clean := strings.TrimSpace(raw)
	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
