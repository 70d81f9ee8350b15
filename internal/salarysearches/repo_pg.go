package salarysearches

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, userID int64) ([]Search, error) {
	const query = `
SELECT id, user_id, job_title, location, experience_level, company, saved_name, salary_range, details, search_date
FROM salary_searches
WHERE user_id = $1
ORDER BY search_date DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Search{}
	for rows.Next() {
		var (
			s       Search
			rng     []byte
			details []byte
		)
		if err := rows.Scan(&s.ID, &s.UserID, &s.JobTitle, &s.Location, &s.Experience, &s.Company, &s.SavedName, &rng, &details, &s.SearchDate); err != nil {
			return nil, err
		}
		s.SalaryRange = json.RawMessage(rng)
		s.Details = map[string]json.RawMessage{}
		if len(details) > 0 {
			if err := json.Unmarshal(details, &s.Details); err != nil {
				return nil, fmt.Errorf("decode details for search %d: %w", s.ID, err)
			}
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, s Search) (Search, error) {
	const query = `
INSERT INTO salary_searches (user_id, job_title, location, experience_level, company, saved_name, salary_range, details)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
RETURNING id, search_date`
	details, err := json.Marshal(s.Details)
	if err != nil {
		return Search{}, fmt.Errorf("encode details: %w", err)
	}
	err = r.DB.QueryRowContext(ctx, query,
		s.UserID,
		s.JobTitle,
		s.Location,
		s.Experience,
		s.Company,
		s.SavedName,
		string(s.SalaryRange),
		string(details),
	).Scan(&s.ID, &s.SearchDate)
	if err != nil {
		return Search{}, err
	}
	return s, nil
}

func (r *PGRepo) Clear(ctx context.Context, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM salary_searches WHERE user_id = $1`, userID)
	return err
}
