package chat

import "strings"

// Role identifies the author of a transcript turn.
type Role string

const (
	RoleUser  Role = "user"
	RoleModel Role = "model"
)

// Part is one text fragment inside a turn.
type Part struct {
	Text string `json:"text"`
}

// Turn is a single transcript entry. Turns are append-only; identity is the
// index within the session transcript.
type Turn struct {
	Role  Role   `json:"role"`
	Parts []Part `json:"parts"`
}

// NewTurn builds a single-part turn.
func NewTurn(role Role, text string) Turn {
	return Turn{Role: role, Parts: []Part{{Text: text}}}
}

// Text flattens the ordered parts into one string.
func (t Turn) Text() string {
	if len(t.Parts) == 1 {
		return t.Parts[0].Text
	}
	var b strings.Builder
	for _, part := range t.Parts {
		b.WriteString(part.Text)
	}
	return b.String()
}
