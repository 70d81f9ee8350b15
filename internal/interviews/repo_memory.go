package interviews

import (
	"context"
	"sort"
	"sync"
	"time"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	nextID  int64
	byOwner map[int64][]Session
	now     func() time.Time
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byOwner: make(map[int64][]Session), now: time.Now}
}

func (r *MemoryRepo) List(ctx context.Context, userID int64) ([]Session, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	out := append([]Session{}, r.byOwner[userID]...)
	r.mu.RUnlock()
	sort.Slice(out, func(i, j int) bool {
		if out[i].SessionDate.Equal(out[j].SessionDate) {
			return out[i].ID > out[j].ID
		}
		return out[i].SessionDate.After(out[j].SessionDate)
	})
	return out, nil
}

func (r *MemoryRepo) Create(ctx context.Context, s Session) (Session, error) {
	if err := ctx.Err(); err != nil {
		return Session{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	s.ID = r.nextID
	s.SessionDate = r.now().UTC()
	r.byOwner[s.UserID] = append(r.byOwner[s.UserID], s)
	return s, nil
}

func (r *MemoryRepo) Clear(ctx context.Context, userID int64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byOwner, userID)
	return nil
}
