package coverletters

import "career-backend/internal/shared/fields"

// Letter is the external cover letter shape.
type Letter struct {
	PersonalInfo     PersonalInfo `json:"personalInfo"`
	JobInfo          JobInfo      `json:"jobInfo"`
	Background       Background   `json:"background"`
	Motivation       Motivation   `json:"motivation"`
	Content          Content      `json:"content"`
	GeneratedContent fields.Text  `json:"generatedContent"`
}

type PersonalInfo struct {
	Name    fields.Text `json:"name"`
	Email   fields.Text `json:"email"`
	Phone   fields.Text `json:"phone"`
	Address fields.Text `json:"address"`
}

type JobInfo struct {
	Company       fields.Text `json:"company"`
	Position      fields.Text `json:"position"`
	HiringManager fields.Text `json:"hiringManager"`
}

type Background struct {
	Skills       fields.Text `json:"skills"`
	Experience   fields.Text `json:"experience"`
	Education    fields.Text `json:"education"`
	Achievements fields.Text `json:"achievements"`
}

type Motivation struct {
	WhyCompany  fields.Text `json:"whyCompany"`
	WhyPosition fields.Text `json:"whyPosition"`
}

type Content struct {
	Introduction fields.Text `json:"introduction"`
	Body         fields.Text `json:"body"`
	Conclusion   fields.Text `json:"conclusion"`
}
