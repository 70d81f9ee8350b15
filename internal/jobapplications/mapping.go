package jobapplications

import "strings"

func toRecord(ownerID int64, req applicationRequest) Application {
	return Application{
		UserID:        ownerID,
		Company:       req.Company.String(),
		Position:      req.Position.String(),
		Location:      req.Location.String(),
		Salary:        req.Salary.String(),
		JobURL:        req.JobURL.String(),
		Status:        Status(strings.ToLower(req.Status.Trimmed())),
		DateApplied:   req.DateApplied.String(),
		FollowUpDate:  req.FollowUpDate.String(),
		Notes:         req.Notes.String(),
		ContactPerson: req.ContactPerson.String(),
		ContactEmail:  req.ContactEmail.String(),
	}
}

func fromRecord(a Application) applicationResponse {
	return applicationResponse{
		ID:            a.ID,
		Company:       a.Company,
		Position:      a.Position,
		Location:      a.Location,
		Salary:        a.Salary,
		JobURL:        a.JobURL,
		Status:        string(a.Status),
		DateApplied:   a.DateApplied,
		FollowUpDate:  a.FollowUpDate,
		Notes:         a.Notes,
		ContactPerson: a.ContactPerson,
		ContactEmail:  a.ContactEmail,
		CreatedAt:     a.CreatedAt,
		UpdatedAt:     a.UpdatedAt,
	}
}

func fromRecords(list []Application) []applicationResponse {
	out := make([]applicationResponse, 0, len(list))
	for _, a := range list {
		out = append(out, fromRecord(a))
	}
	return out
}
