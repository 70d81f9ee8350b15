package interviews

import (
	"context"
	"fmt"

	"career-backend/internal/shared/apperr"
)

type Service struct {
	Repo Repo
}

func (s *Service) History(ctx context.Context, ownerID int64) ([]Session, error) {
	list, err := s.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence(fmt.Errorf("list interview sessions: %w", err))
	}
	return list, nil
}

func (s *Service) Record(ctx context.Context, ownerID int64, req sessionRequest) (Session, error) {
	session := Session{
		UserID:     ownerID,
		Category:   req.Category.String(),
		Question:   req.Question.String(),
		UserAnswer: req.UserAnswer.String(),
		Difficulty: req.Difficulty.String(),
	}
	if req.Category.Trimmed() == "" || req.Question.Trimmed() == "" || req.UserAnswer.Trimmed() == "" || req.TimeTaken == nil {
		return Session{}, apperr.Validation("Category, question, user answer and time taken are required")
	}
	if *req.TimeTaken < 0 {
		return Session{}, apperr.Validation("Time taken must be zero or more seconds")
	}
	session.TimeTaken = int64(*req.TimeTaken)

	created, err := s.Repo.Create(ctx, session)
	if err != nil {
		return Session{}, apperr.Persistence(fmt.Errorf("save interview session: %w", err))
	}
	return created, nil
}

func (s *Service) Clear(ctx context.Context, ownerID int64) error {
	if err := s.Repo.Clear(ctx, ownerID); err != nil {
		return apperr.Persistence(fmt.Errorf("clear interview sessions: %w", err))
	}
	return nil
}
