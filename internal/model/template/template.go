package template

// Template couples a render template's metadata with its HTML body. The
// body is an html/template document executed against a resume document.
type Template struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	HTML        string `json:"-"`
}

// DefaultID is the template used when a session has not picked one.
const DefaultID = "classic"

// Seed provides the built-in render templates.
func Seed() []Template {
	return []Template{
		{
			ID:          "classic",
			Name:        "Classic",
			Description: "Single-column serif layout with understated section rules.",
			HTML:        classicHTML,
		},
		{
			ID:          "modern",
			Name:        "Modern",
			Description: "Sans-serif layout with a tinted header band and skill chips.",
			HTML:        modernHTML,
		},
	}
}

const classicHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Georgia, serif; color: #1a1a1a; margin: 40px 48px; }
  h1 { margin: 0; font-size: 28px; }
  .headline { font-size: 15px; color: #444; margin-bottom: 4px; }
  .contact { font-size: 12px; color: #555; margin-bottom: 18px; }
  h2 { font-size: 14px; text-transform: uppercase; letter-spacing: 1px;
       border-bottom: 1px solid #999; padding-bottom: 3px; margin: 18px 0 8px; }
  .entry { margin-bottom: 10px; }
  .entry-head { font-weight: bold; font-size: 13px; }
  .entry-sub { font-size: 12px; color: #555; }
  p, li { font-size: 12px; line-height: 1.45; margin: 3px 0; }
  ul { margin: 4px 0 4px 18px; padding: 0; }
</style>
</head>
<body>
  <h1>{{.Name}}</h1>
  {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
  <div class="contact">
    {{.Contact.Email}}{{if .Contact.Phone}} &middot; {{.Contact.Phone}}{{end}}{{if .Contact.Location}} &middot; {{.Contact.Location}}{{end}}
    {{if .Contact.LinkedIn}} &middot; {{.Contact.LinkedIn}}{{end}}{{if .Contact.GitHub}} &middot; {{.Contact.GitHub}}{{end}}{{if .Contact.Blogs}} &middot; {{.Contact.Blogs}}{{end}}
  </div>
  {{if .Summary}}<h2>Summary</h2><p>{{.Summary}}</p>{{end}}
  {{if .Experience}}<h2>Experience</h2>
  {{range .Experience}}<div class="entry">
    <div class="entry-head">{{.Title}}{{if .Company}} — {{.Company}}{{end}}</div>
    <div class="entry-sub">{{.Period}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
    <p>{{.Description}}</p>
  </div>{{end}}{{end}}
  {{if .Education}}<h2>Education</h2>
  {{range .Education}}<div class="entry">
    <div class="entry-head">{{.Degree}}</div>
    <div class="entry-sub">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
  </div>{{end}}{{end}}
  {{if .Skills}}<h2>Skills</h2><p>{{range $i, $s := .Skills}}{{if $i}}, {{end}}{{$s}}{{end}}</p>{{end}}
  {{if .Projects}}<h2>Projects</h2>
  {{range .Projects}}<div class="entry">
    <div class="entry-head">{{.Name}}</div>
    <p>{{.Description}}</p>
    {{if .TechStack}}<div class="entry-sub">{{range $i, $t := .TechStack}}{{if $i}}, {{end}}{{$t}}{{end}}</div>{{end}}
  </div>{{end}}{{end}}
  {{if .Achievements}}<h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
</body>
</html>`

const modernHTML = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: 'Helvetica Neue', Arial, sans-serif; color: #222; margin: 0; }
  header { background: #eef3f8; padding: 32px 48px 24px; }
  h1 { margin: 0; font-size: 26px; color: #15314b; }
  .headline { font-size: 14px; color: #3a556b; }
  main { padding: 20px 48px 40px; }
  h2 { font-size: 13px; text-transform: uppercase; letter-spacing: 1.5px; color: #15314b; margin: 20px 0 8px; }
  .contact { font-size: 11px; color: #4a5b6c; margin-top: 6px; }
  .entry { margin-bottom: 10px; }
  .entry-head { font-weight: 600; font-size: 13px; }
  .entry-sub { font-size: 11px; color: #667; }
  p, li { font-size: 12px; line-height: 1.5; margin: 3px 0; }
  .chip { display: inline-block; background: #e2eaf2; border-radius: 10px;
          padding: 2px 10px; font-size: 11px; margin: 2px 4px 2px 0; }
  ul { margin: 4px 0 4px 18px; padding: 0; }
</style>
</head>
<body>
  <header>
    <h1>{{.Name}}</h1>
    {{if .Title}}<div class="headline">{{.Title}}</div>{{end}}
    <div class="contact">
      {{.Contact.Email}}{{if .Contact.Phone}} &middot; {{.Contact.Phone}}{{end}}{{if .Contact.Location}} &middot; {{.Contact.Location}}{{end}}
      {{if .Contact.LinkedIn}} &middot; {{.Contact.LinkedIn}}{{end}}{{if .Contact.GitHub}} &middot; {{.Contact.GitHub}}{{end}}
    </div>
  </header>
  <main>
    {{if .Summary}}<h2>Profile</h2><p>{{.Summary}}</p>{{end}}
    {{if .Skills}}<h2>Skills</h2><div>{{range .Skills}}<span class="chip">{{.}}</span>{{end}}</div>{{end}}
    {{if .Experience}}<h2>Experience</h2>
    {{range .Experience}}<div class="entry">
      <div class="entry-head">{{.Title}}{{if .Company}} &middot; {{.Company}}{{end}}</div>
      <div class="entry-sub">{{.Period}}{{if .Location}} &middot; {{.Location}}{{end}}</div>
      <p>{{.Description}}</p>
    </div>{{end}}{{end}}
    {{if .Projects}}<h2>Projects</h2>
    {{range .Projects}}<div class="entry">
      <div class="entry-head">{{.Name}}</div>
      <p>{{.Description}}</p>
      {{if .TechStack}}<div>{{range .TechStack}}<span class="chip">{{.}}</span>{{end}}</div>{{end}}
    </div>{{end}}{{end}}
    {{if .Education}}<h2>Education</h2>
    {{range .Education}}<div class="entry">
      <div class="entry-head">{{.Degree}}</div>
      <div class="entry-sub">{{.Institution}}{{if .Year}} &middot; {{.Year}}{{end}}</div>
    </div>{{end}}{{end}}
    {{if .Achievements}}<h2>Achievements</h2><ul>{{range .Achievements}}<li>{{.}}</li>{{end}}</ul>{{end}}
  </main>
</body>
</html>`
