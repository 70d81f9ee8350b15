package resumes

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byOwner map[int64]Aggregate
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byOwner: make(map[int64]Aggregate), now: time.Now}
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID int64) (Aggregate, error) {
	if err := ctx.Err(); err != nil {
		return Aggregate{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	agg, ok := r.byOwner[userID]
	if !ok {
		return Aggregate{}, ErrNotFound
	}
	return agg.clone(), nil
}

// Save builds the replacement aggregate before taking the lock so readers
// never observe a partial update.
func (r *MemoryRepo) Save(ctx context.Context, agg Aggregate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	next := agg.clone()
	now := r.now().UTC()

	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byOwner[agg.Resume.UserID]; ok {
		next.Resume.ID = prev.Resume.ID
		next.Resume.CreatedAt = prev.Resume.CreatedAt
	} else {
		r.nextID++
		next.Resume.ID = r.nextID
		next.Resume.CreatedAt = now
	}
	next.Resume.UpdatedAt = now
	r.byOwner[agg.Resume.UserID] = next
	return next.Resume.ID, nil
}
