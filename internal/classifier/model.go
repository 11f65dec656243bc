// Package classifier is a multinomial naive Bayes text classifier over
// unigram and bigram counts, trained once on rating-labelled reviews.
// A Model is immutable after Train and safe for concurrent use.
package classifier

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"

	"uni_advisor/internal/domain"
)

// PositiveRating is the threshold above which a review is labelled positive.
const PositiveRating = 5

// alpha is the additive (Laplace) smoothing constant.
const alpha = 1.0

var (
	ErrNoExamples      = errors.New("classifier: no training examples")
	ErrEmptyVocabulary = errors.New("classifier: empty vocabulary")
)

// Label derives the binary training label of a review.
func Label(r domain.Review) bool { return r.RatingOrZero() > PositiveRating }

// class index: 0 = negative, 1 = positive
func classOf(positive bool) int {
	if positive {
		return 1
	}
	return 0
}

type Model struct {
	vocab          vocabulary
	classCount     [2]int
	classLogPrior  [2]float64
	featureLogProb [2][]float64
}

// Train fits a model on every review given.
func Train(reviews []domain.Review) (*Model, error) {
	if len(reviews) == 0 {
		return nil, ErrNoExamples
	}
	docs := make([][]string, len(reviews))
	for i, r := range reviews {
		docs[i] = analyze(r.Text)
	}
	vocab := buildVocabulary(docs)
	if len(vocab) == 0 {
		return nil, ErrEmptyVocabulary
	}

	m := &Model{vocab: vocab}
	var featCount [2][]float64
	for c := range featCount {
		featCount[c] = make([]float64, len(vocab))
	}
	for i, r := range reviews {
		c := classOf(Label(r))
		m.classCount[c]++
		for j, n := range vocab.counts(docs[i]) {
			featCount[c][j] += n
		}
	}

	n := float64(len(reviews))
	v := float64(len(vocab))
	for c := 0; c < 2; c++ {
		if m.classCount[c] == 0 {
			m.classLogPrior[c] = math.Inf(-1)
		} else {
			m.classLogPrior[c] = math.Log(float64(m.classCount[c]) / n)
		}
		denom := math.Log(floats.Sum(featCount[c]) + alpha*v)
		m.featureLogProb[c] = make([]float64, len(vocab))
		for j, cnt := range featCount[c] {
			m.featureLogProb[c][j] = math.Log(cnt+alpha) - denom
		}
	}
	return m, nil
}

// jointLogLikelihood returns log P(c) + sum_j x_j log P(f_j | c) per class.
func (m *Model) jointLogLikelihood(text string) []float64 {
	x := m.vocab.counts(analyze(text))
	jll := []float64{m.classLogPrior[0], m.classLogPrior[1]}
	for c := range jll {
		if math.IsInf(jll[c], -1) {
			continue
		}
		for j, n := range x {
			jll[c] += n * m.featureLogProb[c][j]
		}
	}
	return jll
}

// Predict reports whether text is classified positive. Ties go to negative.
func (m *Model) Predict(text string) bool {
	jll := m.jointLogLikelihood(text)
	return jll[1] > jll[0]
}

// PredictProba returns the posterior probability that text is positive.
func (m *Model) PredictProba(text string) float64 {
	jll := m.jointLogLikelihood(text)
	return math.Exp(jll[1] - floats.LogSumExp(jll))
}

// VocabularySize is the number of distinct unigram and bigram features.
func (m *Model) VocabularySize() int { return len(m.vocab) }

// ClassCounts returns the number of negative and positive training examples.
func (m *Model) ClassCounts() (negative, positive int) {
	return m.classCount[0], m.classCount[1]
}
