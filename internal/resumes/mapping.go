package resumes

import "career-backend/internal/shared/fields"

func toAggregate(ownerID int64, doc Document) Aggregate {
	template := doc.TemplateName.Trimmed()
	if template == "" {
		template = DefaultTemplate
	}
	p := doc.PersonalInfo
	agg := Aggregate{
		Resume: Resume{
			UserID:       ownerID,
			TemplateName: template,
			FullName:     p.FullName.String(),
			Email:        p.Email.String(),
			Phone:        p.Phone.String(),
			Address:      p.Address.String(),
			LinkedIn:     p.LinkedIn.String(),
			Website:      p.Website.String(),
			Summary:      p.Summary.String(),
		},
		Experience:     make([]Experience, 0, len(doc.Experience)),
		Education:      make([]Education, 0, len(doc.Education)),
		Skills:         make([]Skill, 0, len(doc.Skills)),
		Projects:       make([]Project, 0, len(doc.Projects)),
		Certifications: make([]Certification, 0, len(doc.Certifications)),
	}
	for _, e := range doc.Experience {
		agg.Experience = append(agg.Experience, Experience{
			Company:     e.Company.String(),
			Position:    e.Position.String(),
			StartDate:   e.StartDate.String(),
			EndDate:     e.EndDate.String(),
			Description: e.Description.String(),
			IsCurrent:   bool(e.IsCurrent),
		})
	}
	for _, e := range doc.Education {
		agg.Education = append(agg.Education, Education{
			Institution:  e.Institution.String(),
			Degree:       e.Degree.String(),
			FieldOfStudy: e.FieldOfStudy.String(),
			StartDate:    e.StartDate.String(),
			EndDate:      e.EndDate.String(),
			GPA:          e.GPA.String(),
		})
	}
	for _, s := range doc.Skills {
		agg.Skills = append(agg.Skills, Skill{
			Name:        s.Name.String(),
			Category:    s.Category.String(),
			Proficiency: s.Proficiency.String(),
		})
	}
	for _, p := range doc.Projects {
		agg.Projects = append(agg.Projects, Project{
			Name:         p.Name.String(),
			Description:  p.Description.String(),
			Technologies: p.Technologies.String(),
			URL:          p.URL.String(),
			StartDate:    p.StartDate.String(),
			EndDate:      p.EndDate.String(),
		})
	}
	for _, c := range doc.Certifications {
		agg.Certifications = append(agg.Certifications, Certification{
			Name:          c.Name.String(),
			Issuer:        c.Issuer.String(),
			DateEarned:    c.DateEarned.String(),
			ExpiryDate:    c.ExpiryDate.String(),
			CredentialURL: c.CredentialURL.String(),
		})
	}
	return agg
}

func fromAggregate(agg Aggregate) Document {
	r := agg.Resume
	template := r.TemplateName
	if template == "" {
		template = DefaultTemplate
	}
	doc := Document{
		PersonalInfo: PersonalInfo{
			FullName: fields.Text(r.FullName),
			Email:    fields.Text(r.Email),
			Phone:    fields.Text(r.Phone),
			Address:  fields.Text(r.Address),
			LinkedIn: fields.Text(r.LinkedIn),
			Website:  fields.Text(r.Website),
			Summary:  fields.Text(r.Summary),
		},
		Experience:     make([]ExperienceItem, 0, len(agg.Experience)),
		Education:      make([]EducationItem, 0, len(agg.Education)),
		Skills:         make([]SkillItem, 0, len(agg.Skills)),
		Projects:       make([]ProjectItem, 0, len(agg.Projects)),
		Certifications: make([]CertificationItem, 0, len(agg.Certifications)),
		TemplateName:   fields.Text(template),
	}
	for _, e := range agg.Experience {
		doc.Experience = append(doc.Experience, ExperienceItem{
			Company:     fields.Text(e.Company),
			Position:    fields.Text(e.Position),
			StartDate:   fields.Text(e.StartDate),
			EndDate:     fields.Text(e.EndDate),
			IsCurrent:   fields.Flag(e.IsCurrent),
			Description: fields.Text(e.Description),
		})
	}
	for _, e := range agg.Education {
		doc.Education = append(doc.Education, EducationItem{
			Institution:  fields.Text(e.Institution),
			Degree:       fields.Text(e.Degree),
			FieldOfStudy: fields.Text(e.FieldOfStudy),
			StartDate:    fields.Text(e.StartDate),
			EndDate:      fields.Text(e.EndDate),
			GPA:          fields.Text(e.GPA),
		})
	}
	for _, s := range agg.Skills {
		doc.Skills = append(doc.Skills, SkillItem{
			Name:        fields.Text(s.Name),
			Category:    fields.Text(s.Category),
			Proficiency: fields.Text(s.Proficiency),
		})
	}
	for _, p := range agg.Projects {
		doc.Projects = append(doc.Projects, ProjectItem{
			Name:         fields.Text(p.Name),
			Description:  fields.Text(p.Description),
			Technologies: fields.Text(p.Technologies),
			URL:          fields.Text(p.URL),
			StartDate:    fields.Text(p.StartDate),
			EndDate:      fields.Text(p.EndDate),
		})
	}
	for _, c := range agg.Certifications {
		doc.Certifications = append(doc.Certifications, CertificationItem{
			Name:          fields.Text(c.Name),
			Issuer:        fields.Text(c.Issuer),
			DateEarned:    fields.Text(c.DateEarned),
			ExpiryDate:    fields.Text(c.ExpiryDate),
			CredentialURL: fields.Text(c.CredentialURL),
		})
	}
	return doc
}
