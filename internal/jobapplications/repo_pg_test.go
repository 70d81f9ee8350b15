package jobapplications

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoScopesWritesToOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	repo := &PGRepo{DB: db}

	mock.ExpectExec("UPDATE job_applications").
		WithArgs(int64(10), int64(2), "Acme", "Dev", "", "", "", "applied", "", "", "", "", "").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("DELETE FROM job_applications WHERE id = \\$1 AND user_id = \\$2").
		WithArgs(int64(10), int64(2)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(context.Background(), Application{ID: 10, UserID: 2, Company: "Acme", Position: "Dev", Status: StatusApplied})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on update, got %v", err)
	}
	if err := repo.Delete(context.Background(), 2, 10); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on delete, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoCreateReturnsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ts := time.Date(2026, time.June, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery("INSERT INTO job_applications").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).AddRow(int64(5), ts, ts))

	got, err := (&PGRepo{DB: db}).Create(context.Background(), Application{UserID: 1, Company: "Acme", Position: "Dev", Status: StatusApplied})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if got.ID != 5 || !got.CreatedAt.Equal(ts) {
		t.Fatalf("unexpected application: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}
