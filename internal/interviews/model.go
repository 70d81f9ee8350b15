package interviews

import "time"

// Session is one answered practice question.
type Session struct {
	ID          int64
	UserID      int64
	Category    string
	Question    string
	UserAnswer  string
	Difficulty  string
	TimeTaken   int64
	SessionDate time.Time
}
