package jobapplications

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, userID int64) ([]Application, error) {
	const query = `
SELECT id, user_id, company, position, location, salary, job_url, status, date_applied,
       follow_up_date, notes, contact_person, contact_email, created_at, updated_at
FROM job_applications
WHERE user_id = $1
ORDER BY created_at DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Application{}
	for rows.Next() {
		var a Application
		if err := rows.Scan(
			&a.ID,
			&a.UserID,
			&a.Company,
			&a.Position,
			&a.Location,
			&a.Salary,
			&a.JobURL,
			&a.Status,
			&a.DateApplied,
			&a.FollowUpDate,
			&a.Notes,
			&a.ContactPerson,
			&a.ContactEmail,
			&a.CreatedAt,
			&a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, a Application) (Application, error) {
	const query = `
INSERT INTO job_applications (
  user_id, company, position, location, salary, job_url, status, date_applied,
  follow_up_date, notes, contact_person, contact_email
) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING id, created_at, updated_at`
	err := r.DB.QueryRowContext(ctx, query,
		a.UserID,
		a.Company,
		a.Position,
		a.Location,
		a.Salary,
		a.JobURL,
		a.Status,
		a.DateApplied,
		a.FollowUpDate,
		a.Notes,
		a.ContactPerson,
		a.ContactEmail,
	).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return Application{}, err
	}
	return a, nil
}

func (r *PGRepo) Update(ctx context.Context, a Application) error {
	const query = `
UPDATE job_applications
SET company = $3, position = $4, location = $5, salary = $6, job_url = $7, status = $8,
    date_applied = $9, follow_up_date = $10, notes = $11, contact_person = $12,
    contact_email = $13, updated_at = now()
WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query,
		a.ID,
		a.UserID,
		a.Company,
		a.Position,
		a.Location,
		a.Salary,
		a.JobURL,
		a.Status,
		a.DateApplied,
		a.FollowUpDate,
		a.Notes,
		a.ContactPerson,
		a.ContactEmail,
	)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func (r *PGRepo) Delete(ctx context.Context, userID, id int64) error {
	const query = `DELETE FROM job_applications WHERE id = $1 AND user_id = $2`
	res, err := r.DB.ExecContext(ctx, query, id, userID)
	if err != nil {
		return err
	}
	return expectOneRow(res)
}

func expectOneRow(res sql.Result) error {
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
