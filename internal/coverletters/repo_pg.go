package coverletters

import (
	"context"
	"database/sql"
	"errors"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) GetByUser(ctx context.Context, userID int64) (Record, error) {
	const query = `
SELECT id, user_id, full_name, email, phone, address, company_name, job_title, hiring_manager,
       skills, experience, education, achievements, why_company, why_position,
       introduction, body, conclusion, generated_content, created_at, updated_at
FROM cover_letters
WHERE user_id = $1`
	var rec Record
	err := r.DB.QueryRowContext(ctx, query, userID).Scan(
		&rec.ID,
		&rec.UserID,
		&rec.FullName,
		&rec.Email,
		&rec.Phone,
		&rec.Address,
		&rec.CompanyName,
		&rec.JobTitle,
		&rec.HiringManager,
		&rec.Skills,
		&rec.Experience,
		&rec.Education,
		&rec.Achievements,
		&rec.WhyCompany,
		&rec.WhyPosition,
		&rec.Introduction,
		&rec.Body,
		&rec.Conclusion,
		&rec.GeneratedContent,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Record{}, ErrNotFound
		}
		return Record{}, err
	}
	return rec, nil
}

func (r *PGRepo) Upsert(ctx context.Context, rec Record) error {
	const query = `
INSERT INTO cover_letters (
  user_id, full_name, email, phone, address, company_name, job_title, hiring_manager,
  skills, experience, education, achievements, why_company, why_position,
  introduction, body, conclusion, generated_content
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
ON CONFLICT (user_id) DO UPDATE SET
  full_name = EXCLUDED.full_name,
  email = EXCLUDED.email,
  phone = EXCLUDED.phone,
  address = EXCLUDED.address,
  company_name = EXCLUDED.company_name,
  job_title = EXCLUDED.job_title,
  hiring_manager = EXCLUDED.hiring_manager,
  skills = EXCLUDED.skills,
  experience = EXCLUDED.experience,
  education = EXCLUDED.education,
  achievements = EXCLUDED.achievements,
  why_company = EXCLUDED.why_company,
  why_position = EXCLUDED.why_position,
  introduction = EXCLUDED.introduction,
  body = EXCLUDED.body,
  conclusion = EXCLUDED.conclusion,
  generated_content = EXCLUDED.generated_content,
  updated_at = now()`
	_, err := r.DB.ExecContext(ctx, query,
		rec.UserID,
		rec.FullName,
		rec.Email,
		rec.Phone,
		rec.Address,
		rec.CompanyName,
		rec.JobTitle,
		rec.HiringManager,
		rec.Skills,
		rec.Experience,
		rec.Education,
		rec.Achievements,
		rec.WhyCompany,
		rec.WhyPosition,
		rec.Introduction,
		rec.Body,
		rec.Conclusion,
		rec.GeneratedContent,
	)
	return err
}
