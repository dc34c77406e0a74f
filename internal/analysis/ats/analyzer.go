package ats

import "github.com/resumeforge/backend/internal/model/resume"

// Report scores how completely a resume document fills the sections
// applicant-tracking parsers look for. The score is deterministic for a
// given document.
type Report struct {
	Score     int      `json:"score"`
	Strengths []string `json:"strengths"`
	Gaps      []string `json:"gaps"`
}

type check struct {
	weight int
	label  string
	filled func(resume.Document) bool
}

var checks = []check{
	{10, "name", func(d resume.Document) bool { return d.Name != "" }},
	{10, "professional title", func(d resume.Document) bool { return d.Title != "" }},
	{10, "contact details", func(d resume.Document) bool { return d.Contact.Email != "" || d.Contact.Phone != "" }},
	{15, "summary", func(d resume.Document) bool { return d.Summary != "" }},
	{20, "work experience", func(d resume.Document) bool { return len(d.Experience) > 0 }},
	{10, "education", func(d resume.Document) bool { return len(d.Education) > 0 }},
	{15, "at least three skills", func(d resume.Document) bool { return len(d.Skills) >= 3 }},
	{5, "projects", func(d resume.Document) bool { return len(d.Projects) > 0 }},
	{5, "achievements", func(d resume.Document) bool { return len(d.Achievements) > 0 }},
}

// Evaluate produces a completeness score between 0 and 100 with the filled
// and missing sections called out.
func Evaluate(doc resume.Document) Report {
	report := Report{
		Strengths: []string{},
		Gaps:      []string{},
	}
	for _, c := range checks {
		if c.filled(doc) {
			report.Score += c.weight
			report.Strengths = append(report.Strengths, c.label)
		} else {
			report.Gaps = append(report.Gaps, c.label)
		}
	}
	return report
}
