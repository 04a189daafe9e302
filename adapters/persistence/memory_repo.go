package persistence

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/hanntran/folio-forge/internal/domain/portfolio"
	"github.com/hanntran/folio-forge/pkg/apperror"
)

// memoryPortfolioRepo keeps records in a process-local map. Used for tests
// and for running without a configured database; state is lost on exit.
type memoryPortfolioRepo struct {
	mu      sync.RWMutex
	records map[uuid.UUID]portfolio.Record
}

func NewMemoryPortfolioRepo() portfolio.Repository {
	return &memoryPortfolioRepo{records: make(map[uuid.UUID]portfolio.Record)}
}

func (r *memoryPortfolioRepo) Save(ctx context.Context, rec *portfolio.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records[rec.ShareID] = *rec
	return nil
}

func (r *memoryPortfolioRepo) FindByID(ctx context.Context, shareID uuid.UUID) (*portfolio.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	rec, ok := r.records[shareID]
	if !ok {
		return nil, apperror.NewNotFound("portfolio", shareID.String())
	}
	copied := rec
	return &copied, nil
}

func (r *memoryPortfolioRepo) Update(ctx context.Context, rec *portfolio.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ShareID]; !ok {
		return apperror.NewNotFound("portfolio", rec.ShareID.String())
	}
	r.records[rec.ShareID] = *rec
	return nil
}

func (r *memoryPortfolioRepo) ListRecent(ctx context.Context, limit int) ([]*portfolio.Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	records := make([]*portfolio.Record, 0, len(r.records))
	for id := range r.records {
		rec := r.records[id]
		records = append(records, &rec)
	}
	sort.Slice(records, func(i, j int) bool {
		return records[i].CreatedAt.After(records[j].CreatedAt)
	})
	if len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}
