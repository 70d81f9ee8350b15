package interviews

import (
	"context"
	"database/sql"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) List(ctx context.Context, userID int64) ([]Session, error) {
	const query = `
SELECT id, user_id, category, question, user_answer, difficulty, time_taken, session_date
FROM interview_practice
WHERE user_id = $1
ORDER BY session_date DESC, id DESC`
	rows, err := r.DB.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Session{}
	for rows.Next() {
		var s Session
		if err := rows.Scan(&s.ID, &s.UserID, &s.Category, &s.Question, &s.UserAnswer, &s.Difficulty, &s.TimeTaken, &s.SessionDate); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r *PGRepo) Create(ctx context.Context, s Session) (Session, error) {
	const query = `
INSERT INTO interview_practice (user_id, category, question, user_answer, difficulty, time_taken)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id, session_date`
	err := r.DB.QueryRowContext(ctx, query, s.UserID, s.Category, s.Question, s.UserAnswer, s.Difficulty, s.TimeTaken).
		Scan(&s.ID, &s.SessionDate)
	if err != nil {
		return Session{}, err
	}
	return s, nil
}

func (r *PGRepo) Clear(ctx context.Context, userID int64) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM interview_practice WHERE user_id = $1`, userID)
	return err
}
