package salarysearches

import (
	"context"
	"encoding/json"
	"fmt"

	"career-backend/internal/shared/apperr"
)

type Service struct {
	Repo Repo
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Search, error) {
	list, err := s.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence(fmt.Errorf("list salary searches: %w", err))
	}
	return list, nil
}

func (s *Service) Save(ctx context.Context, ownerID int64, payload map[string]json.RawMessage) (Search, error) {
	search, err := toRecord(ownerID, payload)
	if err != nil {
		return Search{}, err
	}
	created, err := s.Repo.Create(ctx, search)
	if err != nil {
		return Search{}, apperr.Persistence(fmt.Errorf("save salary search: %w", err))
	}
	return created, nil
}

func (s *Service) Clear(ctx context.Context, ownerID int64) error {
	if err := s.Repo.Clear(ctx, ownerID); err != nil {
		return apperr.Persistence(fmt.Errorf("clear salary searches: %w", err))
	}
	return nil
}
