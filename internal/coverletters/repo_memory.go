package coverletters

import (
	"context"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byOwner map[int64]Record
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byOwner: make(map[int64]Record)}
}

func (r *MemoryRepo) GetByUser(ctx context.Context, userID int64) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.byOwner[userID]
	if !ok {
		return Record{}, ErrNotFound
	}
	return rec, nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, rec Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	now := time.Now().UTC()
	r.mu.Lock()
	defer r.mu.Unlock()
	if prev, ok := r.byOwner[rec.UserID]; ok {
		rec.ID = prev.ID
		rec.CreatedAt = prev.CreatedAt
	} else {
		r.nextID++
		rec.ID = r.nextID
		rec.CreatedAt = now
	}
	rec.UpdatedAt = now
	r.byOwner[rec.UserID] = rec
	return nil
}
