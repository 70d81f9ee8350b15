package jobapplications

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("job application not found")

// Repo stores job applications. Every lookup is scoped to the owner, so a
// foreign id behaves like a missing one.
type Repo interface {
	List(ctx context.Context, userID int64) ([]Application, error)
	Create(ctx context.Context, app Application) (Application, error)
	Update(ctx context.Context, app Application) error
	Delete(ctx context.Context, userID, id int64) error
}
