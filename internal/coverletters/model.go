package coverletters

import "time"

// Record is the single stored cover letter of a user.
type Record struct {
	ID               int64
	UserID           int64
	FullName         string
	Email            string
	Phone            string
	Address          string
	CompanyName      string
	JobTitle         string
	HiringManager    string
	Skills           string
	Experience       string
	Education        string
	Achievements     string
	WhyCompany       string
	WhyPosition      string
	Introduction     string
	Body             string
	Conclusion       string
	GeneratedContent string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
