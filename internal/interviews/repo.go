package interviews

import "context"

type Repo interface {
	List(ctx context.Context, userID int64) ([]Session, error)
	Create(ctx context.Context, s Session) (Session, error)
	Clear(ctx context.Context, userID int64) error
}
