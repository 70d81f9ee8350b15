package salarysearches

import "context"

type Repo interface {
	List(ctx context.Context, userID int64) ([]Search, error)
	Create(ctx context.Context, s Search) (Search, error)
	Clear(ctx context.Context, userID int64) error
}
