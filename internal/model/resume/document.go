package resume

// Contact holds the fixed contact channels shown in the resume header.
type Contact struct {
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Location string `json:"location"`
	LinkedIn string `json:"linkedin"`
	GitHub   string `json:"github"`
	Blogs    string `json:"blogs"`
}

// Experience is one work-history entry.
type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	Period      string `json:"period"`
	Description string `json:"description"`
}

// Education is one degree entry.
type Education struct {
	Degree      string `json:"degree"`
	Institution string `json:"institution"`
	Year        string `json:"year"`
}

// Project is one portfolio entry.
type Project struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	TechStack   []string `json:"techStack"`
}

// Document is the structured resume state the assistant edits turn by turn.
type Document struct {
	Name         string       `json:"name"`
	Title        string       `json:"title"`
	Contact      Contact      `json:"contact"`
	Summary      string       `json:"summary"`
	Experience   []Experience `json:"experience"`
	Education    []Education  `json:"education"`
	Skills       []string     `json:"skills"`
	Projects     []Project    `json:"projects"`
	Achievements []string     `json:"achievements"`
}

// NewDocument returns an empty document with non-nil list fields so the
// JSON form always carries every key.
func NewDocument() Document {
	return Document{
		Experience:   []Experience{},
		Education:    []Education{},
		Skills:       []string{},
		Projects:     []Project{},
		Achievements: []string{},
	}
}
