package ai

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReplyPlainJSON(t *testing.T) {
	reply, err := ParseReply(`{"acknowledgement": "Added Python.", "updatedSection": {"skills": ["Go", "Python"]}}`)
	require.NoError(t, err)

	assert.Equal(t, "Added Python.", reply.Acknowledgement)
	require.Contains(t, reply.UpdatedSection, "skills")

	var skills []string
	require.NoError(t, json.Unmarshal(reply.UpdatedSection["skills"], &skills))
	assert.Equal(t, []string{"Go", "Python"}, skills)
}

func TestParseReplyStripsJSONFence(t *testing.T) {
	raw := "```json\n{\"acknowledgement\": \"Done.\", \"updatedSection\": {\"name\": \"Sam\"}}\n```"

	reply, err := ParseReply(raw)
	require.NoError(t, err)
	assert.Equal(t, "Done.", reply.Acknowledgement)
	assert.Contains(t, reply.UpdatedSection, "name")
}

func TestParseReplyStripsBareFence(t *testing.T) {
	raw := "```\n{\"acknowledgement\": \"Done.\", \"updatedSection\": {}}\n```"

	reply, err := ParseReply(raw)
	require.NoError(t, err)
	assert.Equal(t, "Done.", reply.Acknowledgement)
	assert.Empty(t, reply.UpdatedSection)
}

func TestParseReplyMissingUpdatedSection(t *testing.T) {
	reply, err := ParseReply(`{"acknowledgement": "Just chatting."}`)
	require.NoError(t, err)

	assert.Equal(t, "Just chatting.", reply.Acknowledgement)
	assert.NotNil(t, reply.UpdatedSection)
	assert.Empty(t, reply.UpdatedSection)
}

func TestParseReplyNullUpdatedSection(t *testing.T) {
	reply, err := ParseReply(`{"acknowledgement": "Noted.", "updatedSection": null}`)
	require.NoError(t, err)
	assert.Empty(t, reply.UpdatedSection)
}

func TestParseReplyRejectsNonJSON(t *testing.T) {
	_, err := ParseReply("Sure! I added Python to your skills.")
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestParseReplyRejectsSchemaViolation(t *testing.T) {
	_, err := ParseReply(`{"acknowledgement": "Done.", "updatedSection": {"skills": "Python"}}`)
	assert.ErrorIs(t, err, ErrMalformedReply)
}

func TestParseReplyRejectsNonObjectUpdatedSection(t *testing.T) {
	_, err := ParseReply(`{"acknowledgement": "Done.", "updatedSection": ["skills"]}`)
	assert.ErrorIs(t, err, ErrMalformedReply)
}
