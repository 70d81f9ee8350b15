package coverletters

import (
	"context"
	"errors"
	"fmt"

	"career-backend/internal/shared/apperr"
)

type Service struct {
	Repo Repo
}

func (s *Service) Fetch(ctx context.Context, ownerID int64) (Letter, bool, error) {
	rec, err := s.Repo.GetByUser(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Letter{}, false, nil
		}
		return Letter{}, false, apperr.Persistence(fmt.Errorf("fetch cover letter: %w", err))
	}
	return fromRecord(rec), true, nil
}

func (s *Service) Save(ctx context.Context, ownerID int64, letter Letter) error {
	if err := s.Repo.Upsert(ctx, toRecord(ownerID, letter)); err != nil {
		return apperr.Persistence(fmt.Errorf("save cover letter: %w", err))
	}
	return nil
}
