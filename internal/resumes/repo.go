package resumes

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("resume not found")

// Repo persists resume aggregates keyed by owner.
type Repo interface {
	// GetByUser returns ErrNotFound when the user has not saved a resume.
	GetByUser(ctx context.Context, userID int64) (Aggregate, error)
	// Save replaces the user's resume and every child collection atomically.
	Save(ctx context.Context, agg Aggregate) (int64, error)
}
