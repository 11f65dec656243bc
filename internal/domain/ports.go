package domain

import (
	"context"
	"strconv"
	"strings"
)

type CatalogRepository interface {
	// Write paths
	UpsertPrograms(ctx context.Context, ps []Program) error

	// Read paths
	FilterPrograms(ctx context.Context, q ProgramsQuery) ([]Program, error)
	ListDomains(ctx context.Context) ([]string, error)
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}

// Scorer returns a compound polarity in [-1, 1] for one review text.
type Scorer interface {
	Score(text string) float64
}

// ProgramsQuery filters the catalog. Nil fields are not constrained.
// Numeric fields hold already-normalized text (see catalog.NormalizeNumber).
type ProgramsQuery struct {
	ID                     *string
	Domain                 *string
	Duration               *string
	University             *string
	Fees                   *string
	CGPA                   *string
	IELTS                  *string
	IndependentScholarship *string
	UniversityScholarship  *string
}

// Key is a stable cache key fragment for the query.
func (q ProgramsQuery) Key() string {
	var b strings.Builder
	for _, p := range []*string{q.ID, q.Domain, q.Duration, q.University, q.Fees, q.CGPA, q.IELTS,
		q.IndependentScholarship, q.UniversityScholarship} {
		if p == nil {
			b.WriteString("-,")
			continue
		}
		b.WriteString(strconv.Quote(*p))
		b.WriteByte(',')
	}
	return b.String()
}
