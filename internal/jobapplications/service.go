package jobapplications

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"career-backend/internal/shared/apperr"
)

const msgNotFound = "Job application not found"

type Service struct {
	Repo Repo
}

func (s *Service) List(ctx context.Context, ownerID int64) ([]Application, error) {
	list, err := s.Repo.List(ctx, ownerID)
	if err != nil {
		return nil, apperr.Persistence(fmt.Errorf("list job applications: %w", err))
	}
	return list, nil
}

func (s *Service) Create(ctx context.Context, app Application) (Application, error) {
	if err := normalize(&app); err != nil {
		return Application{}, err
	}
	created, err := s.Repo.Create(ctx, app)
	if err != nil {
		return Application{}, apperr.Persistence(fmt.Errorf("create job application: %w", err))
	}
	return created, nil
}

func (s *Service) Update(ctx context.Context, app Application) error {
	if err := normalize(&app); err != nil {
		return err
	}
	if err := s.Repo.Update(ctx, app); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound(msgNotFound)
		}
		return apperr.Persistence(fmt.Errorf("update job application: %w", err))
	}
	return nil
}

func (s *Service) Delete(ctx context.Context, ownerID, id int64) error {
	if err := s.Repo.Delete(ctx, ownerID, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return apperr.NotFound(msgNotFound)
		}
		return apperr.Persistence(fmt.Errorf("delete job application: %w", err))
	}
	return nil
}

func normalize(app *Application) error {
	if strings.TrimSpace(app.Company) == "" || strings.TrimSpace(app.Position) == "" {
		return apperr.Validation("Company and position are required")
	}
	if app.Status == "" {
		app.Status = StatusApplied
	}
	if !app.Status.Valid() {
		return apperr.Validation("Invalid status")
	}
	return nil
}
