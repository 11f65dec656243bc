// Package corpus holds the review dataset, resolved once at startup into
// canonical reviews and indexed by entity. An Index is read-only after New.
package corpus

import (
	"strings"

	"uni_advisor/internal/domain"
)

type Index struct {
	records []domain.Record
	reviews []domain.Review

	// folded entity name -> review texts of grouped records, in record order
	buckets map[string][]string
	// folded entity name -> first original spelling seen
	names map[string]string
}

// fold is the lookup key: trimmed and lower-cased.
func fold(name string) string { return strings.ToLower(strings.TrimSpace(name)) }

func New(records []domain.Record) *Index {
	idx := &Index{
		records: records,
		buckets: make(map[string][]string),
		names:   make(map[string]string),
	}
	for _, rec := range records {
		idx.reviews = append(idx.reviews, rec.Reviews...)
		if !rec.HasEntity || rec.Kind != domain.GroupedRecord {
			continue
		}
		k := fold(rec.Entity)
		if _, seen := idx.names[k]; !seen {
			idx.names[k] = rec.Entity
		}
		for _, rv := range rec.Reviews {
			idx.buckets[k] = append(idx.buckets[k], rv.Text)
		}
	}
	return idx
}

// ReviewsFor returns the review texts of every grouped record whose entity
// matches name after trimming and case folding. Flat records never match.
func (x *Index) ReviewsFor(name string) []string {
	src := x.buckets[fold(name)]
	if len(src) == 0 {
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// HasEntity reports whether any record, flat or grouped, carries an entity
// exactly equal to name. Unlike ReviewsFor it neither trims nor folds case,
// so the two can disagree.
func (x *Index) HasEntity(name string) bool {
	for _, rec := range x.records {
		if rec.HasEntity && rec.Entity == name {
			return true
		}
	}
	return false
}

// CanonicalName returns the stored spelling of the entity ReviewsFor would match.
func (x *Index) CanonicalName(name string) (string, bool) {
	n, ok := x.names[fold(name)]
	return n, ok
}

// GroupReviews returns the nested reviews of the first grouped record whose
// entity equals name exactly, or nil.
func (x *Index) GroupReviews(name string) []domain.Review {
	for _, rec := range x.records {
		if rec.HasEntity && rec.Entity == name {
			if rec.Kind != domain.GroupedRecord {
				return nil
			}
			out := make([]domain.Review, len(rec.Reviews))
			copy(out, rec.Reviews)
			return out
		}
	}
	return nil
}

// Reviews is the canonical review list: one per flat record plus every
// nested review of grouped records, in dataset order. Callers must not mutate it.
func (x *Index) Reviews() []domain.Review { return x.reviews }

func (x *Index) Len() int { return len(x.records) }

// Entities is the number of distinct folded entity names among grouped records.
func (x *Index) Entities() int { return len(x.names) }
