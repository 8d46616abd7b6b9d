package analyses

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo is an in-memory Repo used when no database is configured and in
// tests.
type MemoryRepo struct {
	mu     sync.RWMutex
	nextID int64
	items  map[int64]Analysis
}

// NewMemoryRepo constructs an empty MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1, items: make(map[int64]Analysis)}
}

func (r *MemoryRepo) Create(ctx context.Context, analysis Analysis) (int64, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	analysis.ID = r.nextID
	r.nextID++
	r.items[analysis.ID] = analysis
	return analysis.ID, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int64) (Analysis, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.items[id]
	if !ok {
		return Analysis{}, ErrNotFound
	}
	return a, nil
}

func (r *MemoryRepo) List(ctx context.Context, limit, offset int) ([]Analysis, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if offset >= len(all) {
		return nil, nil
	}
	all = all[offset:]
	if limit >= 0 && limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (r *MemoryRepo) ListAll(ctx context.Context) ([]Analysis, error) {
	_ = ctx
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Analysis, 0, len(r.items))
	for _, a := range r.items {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (r *MemoryRepo) Search(ctx context.Context, query string, limit int) ([]Analysis, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []Analysis
	for _, a := range all {
		if strings.Contains(a.Text, query) {
			out = append(out, a)
			if limit >= 0 && len(out) == limit {
				break
			}
		}
	}
	return out, nil
}

func (r *MemoryRepo) Delete(ctx context.Context, id int64) (bool, error) {
	_ = ctx
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return false, nil
	}
	delete(r.items, id)
	return true, nil
}

func (r *MemoryRepo) Stats(ctx context.Context) (Stats, error) {
	all, err := r.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	var s Stats
	for _, a := range all {
		s.TotalAnalyses++
		s.TotalWords += int64(a.WordCount)
		s.TotalCredits += int64(a.Credits)
		created := a.CreatedAt
		if s.FirstAnalysis == nil || created.Before(*s.FirstAnalysis) {
			t := created
			s.FirstAnalysis = &t
		}
		if s.LastAnalysis == nil || created.After(*s.LastAnalysis) {
			t := created
			s.LastAnalysis = &t
		}
	}
	return s, nil
}
