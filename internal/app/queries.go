package app

import (
	"context"
	"time"

	"uni_advisor/internal/domain"
)

const suggestionsKey = "suggestions"

func programsKey(q domain.ProgramsQuery) string { return "programs:" + q.Key() }

// CatalogQueryService serves catalog searches from the repository through a
// read-through cache.
type CatalogQueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewCatalogQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *CatalogQueryService {
	return &CatalogQueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *CatalogQueryService) FilterPrograms(ctx context.Context, q domain.ProgramsQuery) ([]domain.Program, error) {
	key := programsKey(q)
	var out []domain.Program
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	ps, err := s.repo.FilterPrograms(ctx, q)
	if err != nil {
		return nil, err
	}
	// copy so callers mutating the result can't reach the cached value
	out = make([]domain.Program, len(ps))
	copy(out, ps)
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// Suggestions lists the domain of every stored program in id order.
func (s *CatalogQueryService) Suggestions(ctx context.Context) ([]string, error) {
	var out []string
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, suggestionsKey, &out); ok {
			return out, nil
		}
	}
	ds, err := s.repo.ListDomains(ctx)
	if err != nil {
		return nil, err
	}
	out = make([]string, len(ds))
	copy(out, ds)
	if s.cache != nil {
		_ = s.cache.Set(ctx, suggestionsKey, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}
