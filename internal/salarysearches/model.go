package salarysearches

import (
	"encoding/json"
	"time"
)

// Search is a saved salary lookup. Details holds every key of the original
// payload that has no column of its own.
type Search struct {
	ID          int64
	UserID      int64
	JobTitle    string
	Location    string
	Experience  string
	Company     string
	SavedName   string
	SalaryRange json.RawMessage
	Details     map[string]json.RawMessage
	SearchDate  time.Time
}
