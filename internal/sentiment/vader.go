// Package sentiment scores review polarity with VADER's compound score.
package sentiment

import (
	"fmt"

	"github.com/jonreiter/govader"
	"github.com/rs/zerolog"

	"uni_advisor/internal/adapters/observability"
)

// polarityScorer is the slice of govader we depend on.
type polarityScorer interface {
	PolarityScores(text string) govader.Sentiment
}

// VaderScorer implements domain.Scorer. It holds no mutable state after
// construction and is safe for concurrent use.
type VaderScorer struct {
	analyzer polarityScorer
	log      zerolog.Logger
}

func NewVaderScorer(l zerolog.Logger) *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer(), log: l}
}

// Score returns the compound polarity of text in [-1, 1]. It never fails:
// a panic inside the analyzer is logged and scored as 0.
func (s *VaderScorer) Score(text string) (score float64) {
	defer func() {
		if r := recover(); r != nil {
			observability.ObserveScoringFailure()
			s.log.Warn().
				Int("review_len", len(text)).
				Str("cause", fmt.Sprint(r)).
				Msg("sentiment scoring failed, using 0")
			score = 0
		}
	}()
	return clamp(s.analyzer.PolarityScores(text).Compound)
}

func clamp(v float64) float64 {
	switch {
	case v > 1:
		return 1
	case v < -1:
		return -1
	case v != v: // NaN
		return 0
	}
	return v
}
