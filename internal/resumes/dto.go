package resumes

import "career-backend/internal/shared/fields"

// Document is the external resume shape exchanged with clients.
type Document struct {
	PersonalInfo   PersonalInfo        `json:"personalInfo"`
	Experience     []ExperienceItem    `json:"experience"`
	Education      []EducationItem     `json:"education"`
	Skills         []SkillItem         `json:"skills"`
	Projects       []ProjectItem       `json:"projects"`
	Certifications []CertificationItem `json:"certifications"`
	TemplateName   fields.Text         `json:"templateName"`
}

type PersonalInfo struct {
	FullName fields.Text `json:"fullName"`
	Email    fields.Text `json:"email"`
	Phone    fields.Text `json:"phone"`
	Address  fields.Text `json:"address"`
	LinkedIn fields.Text `json:"linkedin"`
	Website  fields.Text `json:"website"`
	Summary  fields.Text `json:"summary"`
}

type ExperienceItem struct {
	Company     fields.Text `json:"company"`
	Position    fields.Text `json:"position"`
	StartDate   fields.Text `json:"startDate"`
	EndDate     fields.Text `json:"endDate"`
	IsCurrent   fields.Flag `json:"isCurrent"`
	Description fields.Text `json:"description"`
}

type EducationItem struct {
	Institution  fields.Text `json:"institution"`
	Degree       fields.Text `json:"degree"`
	FieldOfStudy fields.Text `json:"fieldOfStudy"`
	StartDate    fields.Text `json:"startDate"`
	EndDate      fields.Text `json:"endDate"`
	GPA          fields.Text `json:"gpa"`
}

type SkillItem struct {
	Name        fields.Text `json:"name"`
	Category    fields.Text `json:"category"`
	Proficiency fields.Text `json:"proficiency"`
}

type ProjectItem struct {
	Name         fields.Text `json:"name"`
	Description  fields.Text `json:"description"`
	Technologies fields.Text `json:"technologies"`
	URL          fields.Text `json:"url"`
	StartDate    fields.Text `json:"startDate"`
	EndDate      fields.Text `json:"endDate"`
}

type CertificationItem struct {
	Name          fields.Text `json:"name"`
	Issuer        fields.Text `json:"issuer"`
	DateEarned    fields.Text `json:"dateEarned"`
	ExpiryDate    fields.Text `json:"expiryDate"`
	CredentialURL fields.Text `json:"credentialUrl"`
}

type saveResponse struct {
	Message  string `json:"message"`
	ResumeID int64  `json:"resumeId"`
}
