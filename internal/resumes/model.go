package resumes

import "time"

const DefaultTemplate = "modern"

// Resume is the parent row. There is at most one per user.
type Resume struct {
	ID           int64
	UserID       int64
	TemplateName string
	FullName     string
	Email        string
	Phone        string
	Address      string
	LinkedIn     string
	Website      string
	Summary      string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type Experience struct {
	Company     string
	Position    string
	StartDate   string
	EndDate     string
	Description string
	IsCurrent   bool
}

type Education struct {
	Institution  string
	Degree       string
	FieldOfStudy string
	StartDate    string
	EndDate      string
	GPA          string
}

type Skill struct {
	Name        string
	Category    string
	Proficiency string
}

type Project struct {
	Name         string
	Description  string
	Technologies string
	URL          string
	StartDate    string
	EndDate      string
}

type Certification struct {
	Name          string
	Issuer        string
	DateEarned    string
	ExpiryDate    string
	CredentialURL string
}

// Aggregate is a resume together with its ordered child collections.
// Slice position is the stored order_index.
type Aggregate struct {
	Resume         Resume
	Experience     []Experience
	Education      []Education
	Skills         []Skill
	Projects       []Project
	Certifications []Certification
}

func (a Aggregate) clone() Aggregate {
	return Aggregate{
		Resume:         a.Resume,
		Experience:     append([]Experience{}, a.Experience...),
		Education:      append([]Education{}, a.Education...),
		Skills:         append([]Skill{}, a.Skills...),
		Projects:       append([]Project{}, a.Projects...),
		Certifications: append([]Certification{}, a.Certifications...),
	}
}
