package coverletters

import "career-backend/internal/shared/fields"

func toRecord(ownerID int64, l Letter) Record {
	return Record{
		UserID:           ownerID,
		FullName:         l.PersonalInfo.Name.String(),
		Email:            l.PersonalInfo.Email.String(),
		Phone:            l.PersonalInfo.Phone.String(),
		Address:          l.PersonalInfo.Address.String(),
		CompanyName:      l.JobInfo.Company.String(),
		JobTitle:         l.JobInfo.Position.String(),
		HiringManager:    l.JobInfo.HiringManager.String(),
		Skills:           l.Background.Skills.String(),
		Experience:       l.Background.Experience.String(),
		Education:        l.Background.Education.String(),
		Achievements:     l.Background.Achievements.String(),
		WhyCompany:       l.Motivation.WhyCompany.String(),
		WhyPosition:      l.Motivation.WhyPosition.String(),
		Introduction:     l.Content.Introduction.String(),
		Body:             l.Content.Body.String(),
		Conclusion:       l.Content.Conclusion.String(),
		GeneratedContent: l.GeneratedContent.String(),
	}
}

func fromRecord(r Record) Letter {
	return Letter{
		PersonalInfo: PersonalInfo{
			Name:    fields.Text(r.FullName),
			Email:   fields.Text(r.Email),
			Phone:   fields.Text(r.Phone),
			Address: fields.Text(r.Address),
		},
		JobInfo: JobInfo{
			Company:       fields.Text(r.CompanyName),
			Position:      fields.Text(r.JobTitle),
			HiringManager: fields.Text(r.HiringManager),
		},
		Background: Background{
			Skills:       fields.Text(r.Skills),
			Experience:   fields.Text(r.Experience),
			Education:    fields.Text(r.Education),
			Achievements: fields.Text(r.Achievements),
		},
		Motivation: Motivation{
			WhyCompany:  fields.Text(r.WhyCompany),
			WhyPosition: fields.Text(r.WhyPosition),
		},
		Content: Content{
			Introduction: fields.Text(r.Introduction),
			Body:         fields.Text(r.Body),
			Conclusion:   fields.Text(r.Conclusion),
		},
		GeneratedContent: fields.Text(r.GeneratedContent),
	}
}
