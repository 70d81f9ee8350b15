package interviews

import (
	"time"

	"career-backend/internal/shared/fields"
)

type sessionRequest struct {
	Category   fields.Text `json:"category"`
	Question   fields.Text `json:"question"`
	UserAnswer fields.Text `json:"userAnswer"`
	Difficulty fields.Text `json:"difficulty"`
	TimeTaken  *fields.Int `json:"timeTaken"`
}

type sessionResponse struct {
	ID          int64  `json:"id"`
	Category    string `json:"category"`
	Question    string `json:"question"`
	UserAnswer  string `json:"userAnswer"`
	Difficulty  string `json:"difficulty"`
	TimeTaken   int64  `json:"timeTaken"`
	SessionDate string `json:"sessionDate"`
}

func fromRecord(s Session) sessionResponse {
	return sessionResponse{
		ID:          s.ID,
		Category:    s.Category,
		Question:    s.Question,
		UserAnswer:  s.UserAnswer,
		Difficulty:  s.Difficulty,
		TimeTaken:   s.TimeTaken,
		SessionDate: s.SessionDate.UTC().Format(time.RFC3339),
	}
}

func fromRecords(list []Session) []sessionResponse {
	out := make([]sessionResponse, 0, len(list))
	for _, s := range list {
		out = append(out, fromRecord(s))
	}
	return out
}
