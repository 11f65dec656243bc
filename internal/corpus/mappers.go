package corpus

import (
	"fmt"
	"strconv"
	"strings"

	"uni_advisor/internal/domain"
)

/********** alias registries (single source of truth) **********/

var recordAliases = map[string][]string{
	"entity":  {"university", "entity"},
	"text":    {"review"},
	"rating":  {"rating"},
	"reviews": {"reviews"},
}

/********** tiny helpers **********/

// lookupFirst returns the value of the first alias key present in m.
func lookupFirst(m map[string]any, key string) (any, bool) {
	for _, k := range recordAliases[key] {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	return nil, false
}

// getFloatFlexible: number from float64/int/string like "8,0".
func getFloatFlexible(v any) *float64 {
	switch t := v.(type) {
	case float64:
		f := t
		return &f
	case int:
		f := float64(t)
		return &f
	case string:
		s := strings.TrimSpace(strings.ReplaceAll(t, ",", "."))
		if s == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return &f
		}
	}
	return nil
}

/********** record resolution **********/

// mapRecord resolves one raw dataset entry into its tagged form.
func mapRecord(i int, m map[string]any) (domain.Record, error) {
	var rec domain.Record
	if v, ok := lookupFirst(m, "entity"); ok {
		name, ok := v.(string)
		if !ok {
			return rec, fmt.Errorf("record %d: entity is %T, want string", i, v)
		}
		rec.Entity, rec.HasEntity = name, true
	}

	raw, grouped := lookupFirst(m, "reviews")
	if !grouped {
		rec.Kind = domain.FlatRecord
		rv, err := mapReview(m, false)
		if err != nil {
			return rec, fmt.Errorf("record %d: %w", i, err)
		}
		rv.Entity = rec.Entity
		rec.Reviews = []domain.Review{rv}
		return rec, nil
	}

	items, ok := raw.([]any)
	if !ok {
		return rec, fmt.Errorf("record %d: reviews is %T, want list", i, raw)
	}
	rec.Kind = domain.GroupedRecord
	rec.Reviews = make([]domain.Review, 0, len(items))
	for j, it := range items {
		obj, ok := it.(map[string]any)
		if !ok {
			return rec, fmt.Errorf("record %d review %d: %T, want object", i, j, it)
		}
		rv, err := mapReview(obj, true)
		if err != nil {
			return rec, fmt.Errorf("record %d review %d: %w", i, j, err)
		}
		rv.Entity = rec.Entity
		rec.Reviews = append(rec.Reviews, rv)
	}
	return rec, nil
}

// mapReview reads text and rating. Nested reviews must carry text; a flat
// record without one stands for an empty review.
func mapReview(m map[string]any, requireText bool) (domain.Review, error) {
	var rv domain.Review
	v, ok := lookupFirst(m, "text")
	switch {
	case ok:
		s, isStr := v.(string)
		if !isStr {
			return rv, fmt.Errorf("review is %T, want string", v)
		}
		rv.Text = s
	case requireText:
		return rv, fmt.Errorf("missing review text")
	}
	if r, ok := lookupFirst(m, "rating"); ok {
		rv.Rating = getFloatFlexible(r)
	}
	return rv, nil
}
