// Package recommend turns per-review polarity scores into a verdict and a
// recommendation sentence.
package recommend

import "uni_advisor/internal/domain"

// Polarity thresholds. Fixed policy, not configuration.
const (
	PositiveThreshold = 0.05
	NegativeThreshold = -0.05
)

// Aggregate counts scores above PositiveThreshold as positive, below
// NegativeThreshold as negative and the rest as neutral, then picks the
// label whose count strictly exceeds both others. Any tie is Neutral.
// Callers short-circuit empty input before aggregating.
func Aggregate(scores []float64) domain.Verdict {
	v := domain.Verdict{Total: len(scores)}
	for _, s := range scores {
		switch {
		case s > PositiveThreshold:
			v.Positive++
		case s < NegativeThreshold:
			v.Negative++
		}
	}
	v.Neutral = v.Total - v.Positive - v.Negative

	switch {
	case v.Positive > v.Negative && v.Positive > v.Neutral:
		v.Label = domain.Favorable
	case v.Negative > v.Positive && v.Negative > v.Neutral:
		v.Label = domain.Unfavorable
	default:
		v.Label = domain.Neutral
	}
	return v
}
