package coverletters

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("cover letter not found")

type Repo interface {
	GetByUser(ctx context.Context, userID int64) (Record, error)
	Upsert(ctx context.Context, rec Record) error
}
