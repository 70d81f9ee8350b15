package resumes

import (
	"context"
	"errors"
	"fmt"

	"career-backend/internal/shared/apperr"
	"career-backend/internal/shared/metrics"
)

// MaxEntries caps each child collection so a save stays within one
// multi-row insert per kind.
const MaxEntries = 500

type Service struct {
	Repo Repo
}

// Fetch returns the owner's resume. found is false when none was saved yet.
func (s *Service) Fetch(ctx context.Context, ownerID int64) (Document, bool, error) {
	agg, err := s.Repo.GetByUser(ctx, ownerID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return Document{}, false, nil
		}
		return Document{}, false, apperr.Persistence(fmt.Errorf("fetch resume: %w", err))
	}
	return fromAggregate(agg), true, nil
}

// Save replaces the owner's resume with doc and returns the resume id.
func (s *Service) Save(ctx context.Context, ownerID int64, doc Document) (int64, error) {
	if err := checkSizes(doc); err != nil {
		return 0, err
	}
	id, err := s.Repo.Save(ctx, toAggregate(ownerID, doc))
	metrics.ObserveResumeSave(err)
	if err != nil {
		return 0, apperr.Persistence(fmt.Errorf("save resume: %w", err))
	}
	return id, nil
}

func checkSizes(doc Document) error {
	counts := []struct {
		kind string
		n    int
	}{
		{"experience", len(doc.Experience)},
		{"education", len(doc.Education)},
		{"skills", len(doc.Skills)},
		{"projects", len(doc.Projects)},
		{"certifications", len(doc.Certifications)},
	}
	for _, c := range counts {
		if c.n > MaxEntries {
			return apperr.Validation(fmt.Sprintf("Too many %s entries (max %d)", c.kind, MaxEntries))
		}
	}
	return nil
}
