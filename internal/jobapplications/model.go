package jobapplications

import "time"

type Status string

const (
	StatusApplied      Status = "applied"
	StatusInterviewing Status = "interviewing"
	StatusOffered      Status = "offered"
	StatusRejected     Status = "rejected"
	StatusAccepted     Status = "accepted"
	StatusWithdrawn    Status = "withdrawn"
)

func (s Status) Valid() bool {
	switch s {
	case StatusApplied, StatusInterviewing, StatusOffered, StatusRejected, StatusAccepted, StatusWithdrawn:
		return true
	default:
		return false
	}
}

type Application struct {
	ID            int64
	UserID        int64
	Company       string
	Position      string
	Location      string
	Salary        string
	JobURL        string
	Status        Status
	DateApplied   string
	FollowUpDate  string
	Notes         string
	ContactPerson string
	ContactEmail  string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
