package history

import (
	"context"
	"sync"
)

const memoryCap = 500

// MemoryRepo is an in-process Repo used when no database is configured.
type MemoryRepo struct {
	mu      sync.RWMutex
	records []Prediction
}

// NewMemoryRepo constructs an empty in-memory repo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) Insert(ctx context.Context, p Prediction) error {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	// Newest first; bounded so a long-running dev process doesn't grow forever.
	r.records = append([]Prediction{p}, r.records...)
	if len(r.records) > memoryCap {
		r.records = r.records[:memoryCap]
	}
	return nil
}

func (r *MemoryRepo) ListRecent(ctx context.Context, limit int) ([]Prediction, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	if limit <= 0 || limit > len(r.records) {
		limit = len(r.records)
	}
	out := make([]Prediction, limit)
	copy(out, r.records[:limit])
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
