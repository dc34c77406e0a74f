package resume

import (
	"encoding/json"
	"fmt"
)

// Partial is the loosely-typed update emitted by the suggestion engine.
// Keys map to raw JSON so recognized fields can be projected individually.
type Partial map[string]json.RawMessage

// Merge applies a partial update to base using key-wise shallow overwrite.
// A key present in the partial replaces the whole field, lists and the
// contact record included; a key absent from the partial leaves the base
// value untouched; keys outside the document shape are ignored. Clearing a
// field is a regular overwrite with an empty value. A type mismatch on a
// recognized key returns an error and leaves base unchanged.
func Merge(base Document, partial Partial) (Document, error) {
	out := base
	for key, raw := range partial {
		var err error
		switch key {
		case "name":
			err = json.Unmarshal(raw, &out.Name)
		case "title":
			err = json.Unmarshal(raw, &out.Title)
		case "contact":
			contact := Contact{}
			if err = json.Unmarshal(raw, &contact); err == nil {
				out.Contact = contact
			}
		case "summary":
			err = json.Unmarshal(raw, &out.Summary)
		case "experience":
			list := []Experience{}
			if err = json.Unmarshal(raw, &list); err == nil {
				out.Experience = list
			}
		case "education":
			list := []Education{}
			if err = json.Unmarshal(raw, &list); err == nil {
				out.Education = list
			}
		case "skills":
			list := []string{}
			if err = json.Unmarshal(raw, &list); err == nil {
				out.Skills = list
			}
		case "projects":
			list := []Project{}
			if err = json.Unmarshal(raw, &list); err == nil {
				out.Projects = list
			}
		case "achievements":
			list := []string{}
			if err = json.Unmarshal(raw, &list); err == nil {
				out.Achievements = list
			}
		default:
			continue
		}
		if err != nil {
			return base, fmt.Errorf("updated section field %q: %w", key, err)
		}
	}
	return out, nil
}
