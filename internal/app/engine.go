package app

import (
	"fmt"

	"github.com/rs/zerolog"

	"uni_advisor/internal/adapters/observability"
	"uni_advisor/internal/catalog"
	"uni_advisor/internal/classifier"
	"uni_advisor/internal/corpus"
	"uni_advisor/internal/domain"
	"uni_advisor/internal/recommend"
	"uni_advisor/internal/sentiment"
	"uni_advisor/internal/shared"
)

// Engine is everything built from the datasets at startup. It is immutable
// once returned by Build and is shared by all request handlers.
type Engine struct {
	index       *corpus.Index
	recommender *recommend.Recommender
	model       *classifier.Model
	catalog     *catalog.Catalog
}

// NewEngine assembles an Engine from already-loaded parts.
func NewEngine(idx *corpus.Index, sc domain.Scorer, m *classifier.Model, cat *catalog.Catalog, l zerolog.Logger) *Engine {
	return &Engine{
		index:       idx,
		recommender: recommend.NewRecommender(idx, sc, observability.Component(l, "recommend")),
		model:       m,
		catalog:     cat,
	}
}

// Build loads the review corpus and catalog files named by cfg, trains the
// classifier and returns the ready engine. Any load failure wraps
// domain.ErrDataLoad.
func Build(cfg shared.Config, l zerolog.Logger) (*Engine, error) {
	idx, err := corpus.Load(cfg.ReviewsPath)
	if err != nil {
		return nil, err
	}
	l.Info().
		Str("path", cfg.ReviewsPath).
		Int("records", idx.Len()).
		Int("entities", idx.Entities()).
		Int("reviews", len(idx.Reviews())).
		Msg("review corpus loaded")

	m, err := classifier.Train(idx.Reviews())
	if err != nil {
		return nil, fmt.Errorf("train classifier: %w", err)
	}
	neg, pos := m.ClassCounts()
	l.Info().
		Int("vocabulary", m.VocabularySize()).
		Int("positive", pos).
		Int("negative", neg).
		Msg("classifier trained")

	cat, err := catalog.Load(cfg.ProgramsPath, cfg.DescriptionsPath)
	if err != nil {
		return nil, err
	}
	l.Info().
		Str("programs", cfg.ProgramsPath).
		Str("descriptions", cfg.DescriptionsPath).
		Int("count", len(cat.Programs())).
		Msg("catalog loaded")

	sc := sentiment.NewVaderScorer(observability.Component(l, "sentiment"))
	return NewEngine(idx, sc, m, cat, l), nil
}

// Recommend returns the recommendation sentence for a university name.
func (e *Engine) Recommend(name string) string { return e.recommender.Recommend(name) }

// Verdict exposes the aggregated counts behind Recommend.
func (e *Engine) Verdict(name string) (domain.Verdict, bool) { return e.recommender.Verdict(name) }

// Classification is the classifier's opinion of one text.
type Classification struct {
	Positive    bool    `json:"positive"`
	Probability float64 `json:"probability"`
}

func (e *Engine) Classify(text string) Classification {
	c := Classification{Positive: e.model.Predict(text), Probability: e.model.PredictProba(text)}
	observability.ObservePrediction(c.Positive)
	return c
}

// GroupReviews returns the nested reviews of the first record named exactly name.
func (e *Engine) GroupReviews(name string) []domain.Review { return e.index.GroupReviews(name) }

func (e *Engine) Catalog() *catalog.Catalog { return e.catalog }
