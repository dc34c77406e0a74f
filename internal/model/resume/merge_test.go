package resume

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func partialFrom(t *testing.T, raw string) Partial {
	t.Helper()
	var p Partial
	require.NoError(t, json.Unmarshal([]byte(raw), &p))
	return p
}

func TestMergeOverwritesOnlyPresentKeys(t *testing.T) {
	base := NewDocument()
	base.Name = "Sam"
	base.Summary = "Backend engineer"
	base.Skills = []string{"Go"}

	out, err := Merge(base, partialFrom(t, `{"skills": ["Go", "Python"]}`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Go", "Python"}, out.Skills)
	assert.Equal(t, "Sam", out.Name)
	assert.Equal(t, "Backend engineer", out.Summary)
}

func TestMergeReplacesContactWholesale(t *testing.T) {
	base := NewDocument()
	base.Contact = Contact{Email: "old@example.com", Phone: "123-4567", Location: "Berlin"}

	out, err := Merge(base, partialFrom(t, `{"contact": {"email": "new@example.com"}}`))
	require.NoError(t, err)

	assert.Equal(t, "new@example.com", out.Contact.Email)
	assert.Empty(t, out.Contact.Phone, "omitted contact subfields must not survive the overwrite")
	assert.Empty(t, out.Contact.Location)
}

func TestMergeReplacesListsWholesale(t *testing.T) {
	base := NewDocument()
	base.Experience = []Experience{
		{Title: "Engineer", Company: "Acme"},
		{Title: "Intern", Company: "Beta"},
	}

	out, err := Merge(base, partialFrom(t, `{"experience": [{"title": "Staff Engineer", "company": "Acme"}]}`))
	require.NoError(t, err)

	require.Len(t, out.Experience, 1)
	assert.Equal(t, "Staff Engineer", out.Experience[0].Title)
}

func TestMergeClearsFieldWithEmptyValue(t *testing.T) {
	base := NewDocument()
	base.Summary = "Seasoned engineer"
	base.Achievements = []string{"Award"}

	out, err := Merge(base, partialFrom(t, `{"summary": "", "achievements": []}`))
	require.NoError(t, err)

	assert.Empty(t, out.Summary)
	assert.Empty(t, out.Achievements)
	assert.NotNil(t, out.Achievements)
}

func TestMergeIgnoresUnknownKeys(t *testing.T) {
	base := NewDocument()
	base.Name = "Sam"

	out, err := Merge(base, partialFrom(t, `{"hobbies": ["chess"], "name": "Sam Doe"}`))
	require.NoError(t, err)

	assert.Equal(t, "Sam Doe", out.Name)
}

func TestMergeTypeMismatchLeavesBaseUntouched(t *testing.T) {
	base := NewDocument()
	base.Name = "Sam"
	base.Skills = []string{"Go"}

	out, err := Merge(base, partialFrom(t, `{"skills": "not a list", "name": "Other"}`))
	require.Error(t, err)

	assert.Equal(t, base, out)
}

func TestMergeEmptyPartialIsNoOp(t *testing.T) {
	base := NewDocument()
	base.Name = "Sam"

	out, err := Merge(base, Partial{})
	require.NoError(t, err)
	assert.Equal(t, base, out)
}

func TestNewDocumentHasNonNilLists(t *testing.T) {
	doc := NewDocument()

	raw, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &decoded))
	for _, key := range []string{"experience", "education", "skills", "projects", "achievements"} {
		assert.JSONEq(t, "[]", string(decoded[key]), key)
	}
}
