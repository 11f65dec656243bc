package app

import (
	"context"
	"fmt"

	"uni_advisor/internal/domain"
)

// CatalogIngestionService writes programs to the catalog store and
// drops cached search results the write may have made stale.
type CatalogIngestionService struct {
	repo  domain.CatalogRepository
	cache domain.Cache
}

func NewCatalogIngestionService(r domain.CatalogRepository, cache domain.Cache) *CatalogIngestionService {
	return &CatalogIngestionService{repo: r, cache: cache}
}

// IngestBatch upserts ps. Blank-id rows are rejected with ErrInvalidInput
// before anything is written.
func (s *CatalogIngestionService) IngestBatch(ctx context.Context, ps []domain.Program) error {
	if len(ps) == 0 {
		return nil
	}
	for i, p := range ps {
		if p.ID == "" {
			return fmt.Errorf("program %d has no id: %w", i, domain.ErrInvalidInput)
		}
	}
	if err := s.repo.UpsertPrograms(ctx, ps); err != nil {
		return fmt.Errorf("upsert %d programs: %w", len(ps), err)
	}
	if s.cache != nil {
		s.invalidate(ctx, ps)
	}
	return nil
}

// Filter results are keyed by the full query. Only suggestions and the
// simple single-field keys of the written rows are evicted; the rest expire by TTL.
func (s *CatalogIngestionService) invalidate(ctx context.Context, ps []domain.Program) {
	_ = s.cache.Del(ctx, suggestionsKey)
	_ = s.cache.Del(ctx, programsKey(domain.ProgramsQuery{}))
	seen := make(map[string]struct{}, len(ps))
	for _, p := range ps {
		id, dom := p.ID, p.Domain
		_ = s.cache.Del(ctx, programsKey(domain.ProgramsQuery{ID: &id}))
		if _, ok := seen[dom]; ok {
			continue
		}
		seen[dom] = struct{}{}
		_ = s.cache.Del(ctx, programsKey(domain.ProgramsQuery{Domain: &dom}))
	}
}
