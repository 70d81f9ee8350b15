package coverletters

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestPGRepoUpsertTargetsOwnerRow(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	rec := Record{UserID: 4, FullName: "Ada", CompanyName: "Acme", GeneratedContent: "Dear team"}
	mock.ExpectExec("INSERT INTO cover_letters .* ON CONFLICT \\(user_id\\) DO UPDATE").
		WithArgs(int64(4), "Ada", "", "", "", "Acme", "", "", "", "", "", "", "", "", "", "", "", "Dear team").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := (&PGRepo{DB: db}).Upsert(context.Background(), rec); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("ExpectationsWereMet: %v", err)
	}
}

func TestPGRepoGetByUserMissing(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	mock.ExpectQuery("FROM cover_letters").WithArgs(int64(4)).WillReturnRows(sqlmock.NewRows([]string{"id"}))
	if _, err := (&PGRepo{DB: db}).GetByUser(context.Background(), 4); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
