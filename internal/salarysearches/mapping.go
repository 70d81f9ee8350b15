package salarysearches

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"

	"career-backend/internal/shared/apperr"
	"career-backend/internal/shared/fields"
)

const msgRequired = "Job title, location, experience and salary range are required"

// keys stored in dedicated columns; everything else goes to details
var columnKeys = map[string]bool{
	"id":          true,
	"jobTitle":    true,
	"location":    true,
	"experience":  true,
	"company":     true,
	"savedName":   true,
	"salaryRange": true,
	"savedDate":   true,
}

func toRecord(ownerID int64, payload map[string]json.RawMessage) (Search, error) {
	s := Search{UserID: ownerID, Details: map[string]json.RawMessage{}}
	var err error
	if s.JobTitle, err = textField(payload, "jobTitle"); err != nil {
		return Search{}, err
	}
	if s.Location, err = textField(payload, "location"); err != nil {
		return Search{}, err
	}
	if s.Experience, err = textField(payload, "experience"); err != nil {
		return Search{}, err
	}
	if s.Company, err = textField(payload, "company"); err != nil {
		return Search{}, err
	}
	if s.SavedName, err = textField(payload, "savedName"); err != nil {
		return Search{}, err
	}
	if strings.TrimSpace(s.JobTitle) == "" || strings.TrimSpace(s.Location) == "" || strings.TrimSpace(s.Experience) == "" {
		return Search{}, apperr.Validation(msgRequired)
	}
	rng := bytes.TrimSpace(payload["salaryRange"])
	if len(rng) == 0 || bytes.Equal(rng, []byte("null")) {
		return Search{}, apperr.Validation(msgRequired)
	}
	s.SalaryRange = append(json.RawMessage{}, rng...)

	for key, raw := range payload {
		if columnKeys[key] {
			continue
		}
		s.Details[key] = append(json.RawMessage{}, raw...)
	}
	return s, nil
}

func textField(payload map[string]json.RawMessage, key string) (string, error) {
	raw, ok := payload[key]
	if !ok {
		return "", nil
	}
	var t fields.Text
	if err := json.Unmarshal(raw, &t); err != nil {
		return "", apperr.Validation("Invalid " + key)
	}
	return t.String(), nil
}

// fromRecord flattens a search back into the client's shape.
func fromRecord(s Search) map[string]any {
	out := make(map[string]any, len(s.Details)+8)
	for key, raw := range s.Details {
		out[key] = raw
	}
	out["id"] = s.ID
	out["jobTitle"] = s.JobTitle
	out["location"] = s.Location
	out["experience"] = s.Experience
	out["company"] = s.Company
	out["savedName"] = s.SavedName
	out["salaryRange"] = s.SalaryRange
	out["savedDate"] = s.SearchDate.UTC().Format(time.RFC3339)
	return out
}

func fromRecords(list []Search) []map[string]any {
	out := make([]map[string]any, 0, len(list))
	for _, s := range list {
		out = append(out, fromRecord(s))
	}
	return out
}
