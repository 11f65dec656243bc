package recommend

import (
	"fmt"

	"uni_advisor/internal/domain"
)

// NoReviews is returned when an entity is unknown or has no reviews.
const NoReviews = "No reviews found for this university."

const counts = " There are %d positive reviews, %d negative reviews, and %d neutral reviews."

var templates = map[domain.Label]string{
	domain.Favorable:   "Based on %d reviews, %s is highly recommended for admission." + counts,
	domain.Unfavorable: "Based on %d reviews, %s is not recommended for admission." + counts,
	domain.Neutral:     "Based on %d reviews, %s is neutral for admission." + counts,
}

// Render formats v for the entity as the caller spelled it.
func Render(name string, v domain.Verdict) string {
	tpl, ok := templates[v.Label]
	if !ok {
		tpl = templates[domain.Neutral]
	}
	return fmt.Sprintf(tpl, v.Total, name, v.Positive, v.Negative, v.Neutral)
}
