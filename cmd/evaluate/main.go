// Command evaluate trains the review classifier on a seeded split of the
// corpus, prints its held-out report, then prints one recommendation.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"

	"uni_advisor/internal/adapters/observability"
	"uni_advisor/internal/classifier"
	"uni_advisor/internal/corpus"
	"uni_advisor/internal/recommend"
	"uni_advisor/internal/sentiment"
	"uni_advisor/internal/shared"
)

const defaultUniversity = "University of Hull"

func main() {
	cfg := shared.Load()
	log.Logger = observability.NewLogger(cfg.AppEnv, cfg.LogLevel)

	idx, err := corpus.Load(cfg.ReviewsPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load reviews failed")
	}

	train, test, err := classifier.Split(idx.Reviews(), cfg.EvalTestSize, cfg.EvalSeed)
	if err != nil {
		log.Fatal().Err(err).Msg("split failed")
	}
	m, err := classifier.Train(train)
	if err != nil {
		log.Fatal().Err(err).Msg("train failed")
	}
	log.Info().
		Int("train", len(train)).
		Int("test", len(test)).
		Int("vocabulary", m.VocabularySize()).
		Msg("classifier trained")

	fmt.Print(classifier.Evaluate(m, test).String())

	name := defaultUniversity
	if len(os.Args) > 1 {
		name = os.Args[1]
	}
	rec := recommend.NewRecommender(idx, sentiment.NewVaderScorer(log.Logger), log.Logger)
	fmt.Println(rec.Recommend(name))
}
