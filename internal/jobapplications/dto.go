package jobapplications

import (
	"time"

	"career-backend/internal/shared/fields"
)

type applicationRequest struct {
	Company       fields.Text `json:"company"`
	Position      fields.Text `json:"position"`
	Location      fields.Text `json:"location"`
	Salary        fields.Text `json:"salary"`
	JobURL        fields.Text `json:"jobUrl"`
	Status        fields.Text `json:"status"`
	DateApplied   fields.Text `json:"dateApplied"`
	FollowUpDate  fields.Text `json:"followUpDate"`
	Notes         fields.Text `json:"notes"`
	ContactPerson fields.Text `json:"contactPerson"`
	ContactEmail  fields.Text `json:"contactEmail"`
}

type applicationResponse struct {
	ID            int64     `json:"id"`
	Company       string    `json:"company"`
	Position      string    `json:"position"`
	Location      string    `json:"location"`
	Salary        string    `json:"salary"`
	JobURL        string    `json:"jobUrl"`
	Status        string    `json:"status"`
	DateApplied   string    `json:"dateApplied"`
	FollowUpDate  string    `json:"followUpDate"`
	Notes         string    `json:"notes"`
	ContactPerson string    `json:"contactPerson"`
	ContactEmail  string    `json:"contactEmail"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}
