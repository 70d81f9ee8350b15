package resumes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"career-backend/internal/shared/storage/db"
)

type PGRepo struct {
	DB *sql.DB
}

type childTable struct {
	name    string
	columns []string
}

// Tables are replaced in this order on every save.
var (
	experienceTable = childTable{
		name:    "resume_experience",
		columns: []string{"company", "position", "start_date", "end_date", "description", "is_current"},
	}
	educationTable = childTable{
		name:    "resume_education",
		columns: []string{"institution", "degree", "field_of_study", "start_date", "end_date", "gpa"},
	}
	skillsTable = childTable{
		name:    "resume_skills",
		columns: []string{"skill_name", "category", "proficiency"},
	}
	projectsTable = childTable{
		name:    "resume_projects",
		columns: []string{"name", "description", "technologies", "url", "start_date", "end_date"},
	}
	certificationsTable = childTable{
		name:    "resume_certifications",
		columns: []string{"name", "issuer", "date_earned", "expiry_date", "credential_url"},
	}
)

func (t childTable) selectQuery() string {
	return "SELECT " + strings.Join(t.columns, ", ") +
		" FROM " + t.name +
		" WHERE resume_id = $1 ORDER BY order_index, id"
}

// insertQuery builds one multi-row INSERT for n rows.
func (t childTable) insertQuery(n int) string {
	width := len(t.columns) + 2
	var b strings.Builder
	b.WriteString("INSERT INTO ")
	b.WriteString(t.name)
	b.WriteString(" (resume_id, ")
	b.WriteString(strings.Join(t.columns, ", "))
	b.WriteString(", order_index) VALUES ")
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte('(')
		for j := 0; j < width; j++ {
			if j > 0 {
				b.WriteString(", ")
			}
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(i*width + j + 1))
		}
		b.WriteByte(')')
	}
	return b.String()
}

const upsertResumeQuery = `
INSERT INTO resumes (user_id, template_name, full_name, email, phone, address, linkedin, website, summary)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
ON CONFLICT (user_id) DO UPDATE SET
  template_name = EXCLUDED.template_name,
  full_name = EXCLUDED.full_name,
  email = EXCLUDED.email,
  phone = EXCLUDED.phone,
  address = EXCLUDED.address,
  linkedin = EXCLUDED.linkedin,
  website = EXCLUDED.website,
  summary = EXCLUDED.summary,
  updated_at = now()
RETURNING id`

const selectResumeQuery = `
SELECT id, user_id, template_name, full_name, email, phone, address, linkedin, website, summary, created_at, updated_at
FROM resumes
WHERE user_id = $1`

func (r *PGRepo) Save(ctx context.Context, agg Aggregate) (int64, error) {
	var resumeID int64
	err := db.WithTx(ctx, r.DB, nil, func(ctx context.Context, tx db.DBTX) error {
		res := agg.Resume
		err := tx.QueryRowContext(ctx, upsertResumeQuery,
			res.UserID,
			res.TemplateName,
			res.FullName,
			res.Email,
			res.Phone,
			res.Address,
			res.LinkedIn,
			res.Website,
			res.Summary,
		).Scan(&resumeID)
		if err != nil {
			return fmt.Errorf("upsert resume: %w", err)
		}

		children := []struct {
			table childTable
			rows  [][]any
		}{
			{experienceTable, experienceRows(agg.Experience)},
			{educationTable, educationRows(agg.Education)},
			{skillsTable, skillRows(agg.Skills)},
			{projectsTable, projectRows(agg.Projects)},
			{certificationsTable, certificationRows(agg.Certifications)},
		}
		for _, child := range children {
			if err := replaceChildren(ctx, tx, child.table, resumeID, child.rows); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return resumeID, nil
}

// replaceChildren deletes every row of the table for the resume and inserts
// rows with order_index equal to their position.
func replaceChildren(ctx context.Context, tx db.DBTX, table childTable, resumeID int64, rows [][]any) error {
	if _, err := tx.ExecContext(ctx, "DELETE FROM "+table.name+" WHERE resume_id = $1", resumeID); err != nil {
		return fmt.Errorf("clear %s: %w", table.name, err)
	}
	if len(rows) == 0 {
		return nil
	}
	args := make([]any, 0, len(rows)*(len(table.columns)+2))
	for i, row := range rows {
		args = append(args, resumeID)
		args = append(args, row...)
		args = append(args, i)
	}
	if _, err := tx.ExecContext(ctx, table.insertQuery(len(rows)), args...); err != nil {
		return fmt.Errorf("insert %s: %w", table.name, err)
	}
	return nil
}

func (r *PGRepo) GetByUser(ctx context.Context, userID int64) (Aggregate, error) {
	var agg Aggregate
	err := db.WithTx(ctx, r.DB, db.ReadSnapshot, func(ctx context.Context, tx db.DBTX) error {
		res := &agg.Resume
		err := tx.QueryRowContext(ctx, selectResumeQuery, userID).Scan(
			&res.ID,
			&res.UserID,
			&res.TemplateName,
			&res.FullName,
			&res.Email,
			&res.Phone,
			&res.Address,
			&res.LinkedIn,
			&res.Website,
			&res.Summary,
			&res.CreatedAt,
			&res.UpdatedAt,
		)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return ErrNotFound
			}
			return fmt.Errorf("load resume: %w", err)
		}

		if agg.Experience, err = queryChildren(ctx, tx, experienceTable, res.ID, func(rows *sql.Rows) (Experience, error) {
			var e Experience
			err := rows.Scan(&e.Company, &e.Position, &e.StartDate, &e.EndDate, &e.Description, &e.IsCurrent)
			return e, err
		}); err != nil {
			return err
		}
		if agg.Education, err = queryChildren(ctx, tx, educationTable, res.ID, func(rows *sql.Rows) (Education, error) {
			var e Education
			err := rows.Scan(&e.Institution, &e.Degree, &e.FieldOfStudy, &e.StartDate, &e.EndDate, &e.GPA)
			return e, err
		}); err != nil {
			return err
		}
		if agg.Skills, err = queryChildren(ctx, tx, skillsTable, res.ID, func(rows *sql.Rows) (Skill, error) {
			var s Skill
			err := rows.Scan(&s.Name, &s.Category, &s.Proficiency)
			return s, err
		}); err != nil {
			return err
		}
		if agg.Projects, err = queryChildren(ctx, tx, projectsTable, res.ID, func(rows *sql.Rows) (Project, error) {
			var p Project
			err := rows.Scan(&p.Name, &p.Description, &p.Technologies, &p.URL, &p.StartDate, &p.EndDate)
			return p, err
		}); err != nil {
			return err
		}
		if agg.Certifications, err = queryChildren(ctx, tx, certificationsTable, res.ID, func(rows *sql.Rows) (Certification, error) {
			var c Certification
			err := rows.Scan(&c.Name, &c.Issuer, &c.DateEarned, &c.ExpiryDate, &c.CredentialURL)
			return c, err
		}); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return Aggregate{}, err
	}
	return agg, nil
}

func queryChildren[T any](ctx context.Context, tx db.DBTX, table childTable, resumeID int64, scan func(*sql.Rows) (T, error)) ([]T, error) {
	rows, err := tx.QueryContext(ctx, table.selectQuery(), resumeID)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", table.name, err)
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("scan %s: %w", table.name, err)
		}
		out = append(out, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("load %s: %w", table.name, err)
	}
	return out, nil
}

func experienceRows(items []Experience) [][]any {
	out := make([][]any, 0, len(items))
	for _, e := range items {
		out = append(out, []any{e.Company, e.Position, e.StartDate, e.EndDate, e.Description, e.IsCurrent})
	}
	return out
}

func educationRows(items []Education) [][]any {
	out := make([][]any, 0, len(items))
	for _, e := range items {
		out = append(out, []any{e.Institution, e.Degree, e.FieldOfStudy, e.StartDate, e.EndDate, e.GPA})
	}
	return out
}

func skillRows(items []Skill) [][]any {
	out := make([][]any, 0, len(items))
	for _, s := range items {
		out = append(out, []any{s.Name, s.Category, s.Proficiency})
	}
	return out
}

func projectRows(items []Project) [][]any {
	out := make([][]any, 0, len(items))
	for _, p := range items {
		out = append(out, []any{p.Name, p.Description, p.Technologies, p.URL, p.StartDate, p.EndDate})
	}
	return out
}

func certificationRows(items []Certification) [][]any {
	out := make([][]any, 0, len(items))
	for _, c := range items {
		out = append(out, []any{c.Name, c.Issuer, c.DateEarned, c.ExpiryDate, c.CredentialURL})
	}
	return out
}
