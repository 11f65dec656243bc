package recommend

import (
	"github.com/rs/zerolog"

	"uni_advisor/internal/adapters/observability"
	"uni_advisor/internal/domain"
)

// ReviewSource is the read side of the corpus index.
type ReviewSource interface {
	HasEntity(name string) bool
	ReviewsFor(name string) []string
}

// Recommender wires lookup, scoring, aggregation and rendering. It keeps no
// per-request state and is safe for concurrent use.
type Recommender struct {
	src    ReviewSource
	scorer domain.Scorer
	log    zerolog.Logger
}

func NewRecommender(src ReviewSource, sc domain.Scorer, l zerolog.Logger) *Recommender {
	return &Recommender{src: src, scorer: sc, log: l}
}

// Verdict scores the entity's reviews. ok is false when the entity is
// unknown or has no reviews.
func (r *Recommender) Verdict(name string) (v domain.Verdict, ok bool) {
	if !r.src.HasEntity(name) {
		return domain.Verdict{}, false
	}
	reviews := r.src.ReviewsFor(name)
	if len(reviews) == 0 {
		return domain.Verdict{}, false
	}
	scores := make([]float64, len(reviews))
	for i, text := range reviews {
		scores[i] = r.scorer.Score(text)
	}
	return Aggregate(scores), true
}

// Recommend returns the recommendation sentence for name, or NoReviews.
func (r *Recommender) Recommend(name string) string {
	v, ok := r.Verdict(name)
	if !ok {
		observability.ObserveRecommendation("no_reviews")
		r.log.Debug().Str("university", name).Msg("no reviews")
		return NoReviews
	}
	observability.ObserveRecommendation(v.Label.String())
	r.log.Debug().
		Str("university", name).
		Int("total", v.Total).
		Int("positive", v.Positive).
		Int("negative", v.Negative).
		Int("neutral", v.Neutral).
		Str("label", v.Label.String()).
		Msg("verdict")
	return Render(name, v)
}
